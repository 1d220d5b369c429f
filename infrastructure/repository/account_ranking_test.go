package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/chatter-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/chatter-metrics-api/internal/domain"
)

func newMockConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &postgres.Connection{DB: db}, mock
}

func TestListByMonth_RetornaRankingOrdenadoPorPosicao(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewAccountRankingRepository(conn)

	updatedAt := time.Date(2026, 8, 30, 6, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"id", "account_id", "account_name", "month", "net_revenue",
		"impact_percentage", "position", "previous_position", "position_change", "updated_at",
	}).
		AddRow("rk-1", "acc-1", "Luna", "08-2026", 1200.50, 60.0, 1, 2, 1, updatedAt).
		AddRow("rk-2", "acc-2", "Mia", "08-2026", 800.25, 40.0, 2, 1, -1, updatedAt)

	mock.ExpectQuery("SELECT (.+) FROM account_ranking ar WHERE ar.month = \\$1 ORDER BY ar.position ASC").
		WithArgs("08-2026").
		WillReturnRows(rows)

	ranking, err := repo.ListByMonth("08-2026")
	require.NoError(t, err)
	require.Len(t, ranking, 2)

	assert.Equal(t, "acc-1", ranking[0].AccountID)
	assert.Equal(t, 1, ranking[0].Position)
	assert.Equal(t, 1, ranking[0].PositionChange)
	assert.Equal(t, "acc-2", ranking[1].AccountID)
	assert.Equal(t, -1, ranking[1].PositionChange)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByAccountID_SemRegistroRetornaNil(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewAccountRankingRepository(conn)

	mock.ExpectQuery("SELECT (.+) FROM account_ranking ar WHERE").
		WithArgs("acc-1", "08-2026").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	item, err := repo.GetByAccountID("acc-1", "08-2026")
	require.NoError(t, err)
	assert.Nil(t, item)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveOrUpdate_FazUpsertPorContaEMes(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewAccountRankingRepository(conn)

	mock.ExpectExec("INSERT INTO account_ranking (.+) ON CONFLICT \\(account_id, month\\) DO UPDATE SET").
		WithArgs(
			"rk-1", "acc-1", "Luna", "08-2026", 1200.50, 60.0, 1, 2, 1,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveOrUpdate([]*domain.AccountRankingItem{
		{
			ID:               "rk-1",
			AccountID:        "acc-1",
			AccountName:      "Luna",
			Month:            "08-2026",
			NetRevenue:       1200.50,
			ImpactPercentage: 60.0,
			Position:         1,
			PreviousPosition: 2,
			PositionChange:   1,
		},
	})
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveOrUpdate_ListaVaziaNaoTocaOBanco(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewAccountRankingRepository(conn)

	require.NoError(t, repo.SaveOrUpdate(nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}
