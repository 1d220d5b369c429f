package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/chatter-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/chatter-metrics-api/internal/domain"
)

const (
	accountRankingTable = "account_ranking ar"
)

type AccountRankingRepository interface {
	GetByAccountID(accountID string, month string) (*domain.AccountRankingItem, error)
	ListByMonth(month string) ([]*domain.AccountRankingItem, error)
	SaveOrUpdate(rankings []*domain.AccountRankingItem) error
}

type accountRankingRepository struct {
	conn *postgres.Connection
}

func NewAccountRankingRepository(conn *postgres.Connection) AccountRankingRepository {
	return &accountRankingRepository{
		conn: conn,
	}
}

// ListByMonth devolve o ranking do mês (MM-YYYY) ordenado por posição
func (r *accountRankingRepository) ListByMonth(month string) ([]*domain.AccountRankingItem, error) {
	rankingSQL, rankingArgs, err := squirrel.
		Select(
			"ar.id",
			"ar.account_id",
			"ar.account_name",
			"ar.month",
			"ar.net_revenue",
			"ar.impact_percentage",
			"ar.position",
			"ar.previous_position",
			"ar.position_change",
			"ar.updated_at",
		).
		From(accountRankingTable).
		Where(squirrel.Eq{"ar.month": month}).
		OrderBy("ar.position ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(rankingSQL, rankingArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.AccountRankingItem{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	rankings := make([]*domain.AccountRankingItem, 0)
	for rows.Next() {
		item := &domain.AccountRankingItem{}

		if err := rows.Scan(
			&item.ID,
			&item.AccountID,
			&item.AccountName,
			&item.Month,
			&item.NetRevenue,
			&item.ImpactPercentage,
			&item.Position,
			&item.PreviousPosition,
			&item.PositionChange,
			&item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear item do ranking: %w", err)
		}

		rankings = append(rankings, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return rankings, nil
}

func (r *accountRankingRepository) GetByAccountID(accountID string, month string) (*domain.AccountRankingItem, error) {
	rankingSQL, rankingArgs, err := squirrel.
		Select("ar.id, ar.account_id, ar.account_name, ar.month, ar.net_revenue, ar.impact_percentage, ar.position, ar.previous_position, ar.position_change, ar.updated_at").
		From(accountRankingTable).
		Where(squirrel.Eq{"ar.account_id": accountID, "ar.month": month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(rankingSQL, rankingArgs...)

	item := &domain.AccountRankingItem{}
	if err := row.Scan(
		&item.ID,
		&item.AccountID,
		&item.AccountName,
		&item.Month,
		&item.NetRevenue,
		&item.ImpactPercentage,
		&item.Position,
		&item.PreviousPosition,
		&item.PositionChange,
		&item.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear ranking: %w", err)
	}

	return item, nil
}

func (r *accountRankingRepository) SaveOrUpdate(rankings []*domain.AccountRankingItem) error {
	if len(rankings) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("account_ranking").
		Columns(
			"id",
			"account_id",
			"account_name",
			"month",
			"net_revenue",
			"impact_percentage",
			"position",
			"previous_position",
			"position_change",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, ranking := range rankings {
		query = query.Values(
			ranking.ID,
			ranking.AccountID,
			ranking.AccountName,
			ranking.Month,
			ranking.NetRevenue,
			ranking.ImpactPercentage,
			ranking.Position,
			ranking.PreviousPosition,
			ranking.PositionChange,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (account_id, month) DO UPDATE SET
			account_name = EXCLUDED.account_name,
			net_revenue = EXCLUDED.net_revenue,
			impact_percentage = EXCLUDED.impact_percentage,
			position = EXCLUDED.position,
			previous_position = EXCLUDED.previous_position,
			position_change = EXCLUDED.position_change,
			updated_at = CURRENT_TIMESTAMP
	`)

	rankingSQL, rankingArgs, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err = r.conn.Exec(rankingSQL, rankingArgs...); err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}
