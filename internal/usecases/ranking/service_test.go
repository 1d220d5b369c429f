package ranking

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/chatter-metrics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/chatter-metrics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestGetAccountRanking_MesInformado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rankingRepo := mocks.NewMockAccountRankingRepository(ctrl)
	rankingRepo.EXPECT().
		ListByMonth("07-2026").
		Return([]*domain.AccountRankingItem{
			{AccountID: "acc-1", Position: 1},
		}, nil)

	service := NewAccountRankingService(rankingRepo)

	response, err := service.GetAccountRanking("07-2026")
	require.NoError(t, err)

	assert.Equal(t, "07-2026", response.Month)
	require.Len(t, response.Ranking, 1)
	assert.Equal(t, "acc-1", response.Ranking[0].AccountID)
}

func TestGetAccountRanking_SemMesUsaMesCorrente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	currentMonth := time.Now().UTC().Format("01-2006")

	rankingRepo := mocks.NewMockAccountRankingRepository(ctrl)
	rankingRepo.EXPECT().
		ListByMonth(currentMonth).
		Return([]*domain.AccountRankingItem{}, nil)

	service := NewAccountRankingService(rankingRepo)

	response, err := service.GetAccountRanking("")
	require.NoError(t, err)
	assert.Equal(t, currentMonth, response.Month)
	assert.Empty(t, response.Ranking)
}

func TestGetAccountRanking_PropagaErroDoBanco(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rankingRepo := mocks.NewMockAccountRankingRepository(ctrl)
	rankingRepo.EXPECT().
		ListByMonth("07-2026").
		Return(nil, errors.New("conexão perdida"))

	service := NewAccountRankingService(rankingRepo)

	_, err := service.GetAccountRanking("07-2026")
	assert.Error(t, err)
}
