// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/chatter-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/chatter-metrics-api/internal/domain"
)

const (
	chattersTable        = "chatters c"
	chatterAccountsTable = "chatter_accounts ca"
)

type ChatterRepository interface {
	GetChatterByID(chatterID string) (*domain.Chatter, error)
	ListChatters(availableStatus []domain.ChatterStatus) ([]*domain.Chatter, error)
}

type chatterRepository struct {
	conn *postgres.Connection
}

func NewChatterRepository(conn *postgres.Connection) ChatterRepository {
	return &chatterRepository{
		conn: conn,
	}
}

// ListChatters devolve os chatters do cadastro com as contas atribuídas
// agregadas em uma única consulta
func (r *chatterRepository) ListChatters(availableStatus []domain.ChatterStatus) ([]*domain.Chatter, error) {
	queryBuilder := squirrel.
		Select(
			"c.id",
			"c.name",
			"c.status",
			"COALESCE(ARRAY_AGG(ca.account_id) FILTER (WHERE ca.account_id IS NOT NULL), '{}')",
		).
		From(chattersTable).
		LeftJoin("chatter_accounts ca ON ca.chatter_id = c.id").
		GroupBy("c.id", "c.name", "c.status").
		OrderBy("c.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"c.status": availableStatus})
	}

	chattersSQL, chattersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(chattersSQL, chattersArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	chatters := make([]*domain.Chatter, 0)
	for rows.Next() {
		chatter := &domain.Chatter{}

		if err := rows.Scan(
			&chatter.ID,
			&chatter.Name,
			&chatter.Status,
			pq.Array(&chatter.AccountIDs),
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear chatter: %w", err)
		}

		chatters = append(chatters, chatter)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return chatters, nil
}

func (r *chatterRepository) GetChatterByID(chatterID string) (*domain.Chatter, error) {
	chatterSQL, chatterArgs, err := squirrel.
		Select(
			"c.id",
			"c.name",
			"c.status",
			"COALESCE(ARRAY_AGG(ca.account_id) FILTER (WHERE ca.account_id IS NOT NULL), '{}')",
		).
		From(chattersTable).
		LeftJoin("chatter_accounts ca ON ca.chatter_id = c.id").
		Where(squirrel.Eq{"c.id": chatterID}).
		GroupBy("c.id", "c.name", "c.status").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(chatterSQL, chatterArgs...)

	chatter := &domain.Chatter{}
	if err := row.Scan(
		&chatter.ID,
		&chatter.Name,
		&chatter.Status,
		pq.Array(&chatter.AccountIDs),
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear chatter: %w", err)
	}

	return chatter, nil
}
