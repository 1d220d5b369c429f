package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/chatter-metrics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/chatter-metrics-api/internal/domain"
	reportingmocks "github.com/vfg2006/chatter-metrics-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func newSnapshotService(
	reporter *reportingmocks.MockReporter,
	rankingRepo *repomocks.MockAccountRankingRepository,
	now time.Time,
) *RankingSnapshotService {
	return &RankingSnapshotService{
		reporter:    reporter,
		rankingRepo: rankingRepo,
		config: RankingSnapshotConfig{
			CronSchedule: "0 6 * * *",
			Enabled:      true,
		},
		now: func() time.Time { return now },
	}
}

func TestUpdateAccountRanking_GeraSnapshotDoMesDeOntem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// rodando no dia 1º, o snapshot ainda pertence ao mês anterior
	now := time.Date(2026, 9, 1, 6, 0, 0, 0, time.UTC)

	reporter := reportingmocks.NewMockReporter(ctrl)
	rankingRepo := repomocks.NewMockAccountRankingRepository(ctrl)

	reporter.EXPECT().
		GetAccountMetrics(gomock.Any()).
		DoAndReturn(func(filters *domain.ReportFilters) (*domain.AccountMetricsReport, error) {
			assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), *filters.StartDate)
			assert.Equal(t, time.Date(2026, 8, 31, 6, 0, 0, 0, time.UTC), *filters.EndDate)

			return &domain.AccountMetricsReport{
				Accounts: []*domain.AccountMetrics{
					{AccountID: "acc-2", AccountName: "Mia", TotalNet: 900.0, ImpactPercentage: 60.0},
					{AccountID: "acc-1", AccountName: "Luna", TotalNet: 600.0, ImpactPercentage: 40.0},
				},
			}, nil
		})

	rankingRepo.EXPECT().
		ListByMonth("08-2026").
		Return([]*domain.AccountRankingItem{
			{ID: "rk-1", AccountID: "acc-1", Position: 1},
			{ID: "rk-2", AccountID: "acc-2", Position: 2},
		}, nil)

	rankingRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(rankings []*domain.AccountRankingItem) error {
			require.Len(t, rankings, 2)

			// acc-2 subiu da 2ª para a 1ª posição
			assert.Equal(t, "rk-2", rankings[0].ID)
			assert.Equal(t, "acc-2", rankings[0].AccountID)
			assert.Equal(t, "08-2026", rankings[0].Month)
			assert.Equal(t, 1, rankings[0].Position)
			assert.Equal(t, 2, rankings[0].PreviousPosition)
			assert.Equal(t, 1, rankings[0].PositionChange)

			assert.Equal(t, "rk-1", rankings[1].ID)
			assert.Equal(t, 2, rankings[1].Position)
			assert.Equal(t, 1, rankings[1].PreviousPosition)
			assert.Equal(t, -1, rankings[1].PositionChange)

			return nil
		})

	service := newSnapshotService(reporter, rankingRepo, now)

	require.NoError(t, service.UpdateAccountRanking())

	status := service.GetStatus()
	assert.Equal(t, now, status["last_sync_started_at"])
}

func TestUpdateAccountRanking_ContaNovaGanhaIDProprio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, 8, 15, 6, 0, 0, 0, time.UTC)

	reporter := reportingmocks.NewMockReporter(ctrl)
	rankingRepo := repomocks.NewMockAccountRankingRepository(ctrl)

	reporter.EXPECT().
		GetAccountMetrics(gomock.Any()).
		Return(&domain.AccountMetricsReport{
			Accounts: []*domain.AccountMetrics{
				{AccountID: "acc-1", AccountName: "Luna", TotalNet: 100.0},
			},
		}, nil)

	rankingRepo.EXPECT().ListByMonth("08-2026").Return(nil, nil)

	rankingRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(rankings []*domain.AccountRankingItem) error {
			require.Len(t, rankings, 1)
			assert.NotEmpty(t, rankings[0].ID)
			assert.Equal(t, 1, rankings[0].Position)
			assert.Equal(t, 0, rankings[0].PreviousPosition)
			assert.Equal(t, 0, rankings[0].PositionChange)
			return nil
		})

	service := newSnapshotService(reporter, rankingRepo, now)

	require.NoError(t, service.UpdateAccountRanking())
}
