package ranking

import (
	"time"

	"github.com/vfg2006/chatter-metrics-api/infrastructure/repository"
	"github.com/vfg2006/chatter-metrics-api/internal/domain"
)

type RankingService interface {
	GetAccountRanking(month string) (*domain.AccountRankingResponse, error)
}

type AccountRankingService struct {
	RankingRepository repository.AccountRankingRepository
}

func NewAccountRankingService(rankingRepository repository.AccountRankingRepository) RankingService {
	return &AccountRankingService{
		RankingRepository: rankingRepository,
	}
}

// GetAccountRanking devolve o ranking persistido do mês informado
// (MM-YYYY). Sem mês informado, usa o mês corrente.
func (s *AccountRankingService) GetAccountRanking(month string) (*domain.AccountRankingResponse, error) {
	if month == "" {
		month = time.Now().UTC().Format("01-2006")
	}

	ranking, err := s.RankingRepository.ListByMonth(month)
	if err != nil {
		return nil, err
	}

	return &domain.AccountRankingResponse{
		Month:   month,
		Ranking: ranking,
	}, nil
}
