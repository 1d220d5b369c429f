package history

import (
	"math"
	"time"

	"github.com/vfg2006/chatter-metrics-api/infrastructure/integrator/infloww"
	inflowwdomain "github.com/vfg2006/chatter-metrics-api/infrastructure/integrator/infloww/domain"
	"github.com/vfg2006/chatter-metrics-api/internal/config"
	"github.com/vfg2006/chatter-metrics-api/internal/domain"
	"github.com/vfg2006/chatter-metrics-api/internal/roster"
	"github.com/vfg2006/chatter-metrics-api/pkg/utils"
)

// Historian re-deriva as séries diárias de receita e engajamento a partir
// do feed bruto de transações do provedor
type Historian interface {
	GetChatterHistory(chatterID string, days int) (*domain.DailyHistoryReport, error)
	GetAccountHistory(accountID string, days int) (*domain.DailyHistoryReport, error)
	GetAccountEarnings(accountID string, filters *domain.ReportFilters) (*domain.EarningsSummary, error)
}

type Service struct {
	cfg     *config.Config
	infloww infloww.Integrator
	roster  *roster.Roster
	sleep   func(time.Duration)
	now     func() time.Time
}

func NewService(cfg *config.Config, integrator infloww.Integrator, rst *roster.Roster) Historian {
	return &Service{
		cfg:     cfg,
		infloww: integrator,
		roster:  rst,
		sleep:   time.Sleep,
		now:     time.Now,
	}
}

// splitEquallyAmongAssigned é a política de rateio da receita entre os
// chatters atribuídos à mesma conta. O sistema não sabe a participação
// real de cada chatter em uma transação, então assume divisão uniforme.
// Mantida como função nomeada para poder ser trocada por uma fonte de
// atribuição mais precisa sem mexer no bucketing.
func splitEquallyAmongAssigned(numChatters int) float64 {
	if numChatters <= 0 {
		return 0
	}
	return 1.0 / float64(numChatters)
}

// dayBucket acumula as contribuições de um dia antes do arredondamento.
// Mensagens ficam em float porque a contribuição de cada transação também
// é rateada entre os chatters da conta.
type dayBucket struct {
	net      float64
	messages float64
	fans     map[string]struct{}
}

// GetChatterHistory monta a série diária de um chatter somando as contas
// atribuídas a ele. As contas são consultadas estritamente em sequência,
// com pausa fixa entre elas, para não rajar o provedor.
func (s *Service) GetChatterHistory(chatterID string, days int) (*domain.DailyHistoryReport, error) {
	chatter, ok := s.roster.Chatter(chatterID)
	if !ok {
		return nil, ErrChatterNotFound
	}

	if days <= 0 {
		return nil, ErrInvalidDays
	}

	today := utils.TruncateToDay(s.now().UTC())
	windowStart := today.AddDate(0, 0, -days)

	buckets := make(map[time.Time]*dayBucket)
	partial := false

	accountDelay := time.Duration(s.cfg.History.AccountDelayMillis) * time.Millisecond

	for i, accountID := range chatter.AccountIDs {
		if _, known := s.roster.Account(accountID); !known {
			continue
		}

		if i > 0 {
			s.sleep(accountDelay)
		}

		result, err := s.infloww.AccountTransactions(accountID, windowStart, s.now().UTC())
		if err != nil {
			return nil, err
		}

		if result.Partial {
			partial = true
		}

		share := splitEquallyAmongAssigned(s.roster.NumChatters(accountID))
		foldTransactions(buckets, result.Items, windowStart, today, share)
	}

	return &domain.DailyHistoryReport{
		Points:  buildPoints(buckets, windowStart, today),
		Days:    days,
		Partial: partial,
	}, nil
}

// GetAccountHistory monta a série diária de uma conta. Aqui não há rateio:
// a conta é dona da transação inteira; a divisão igualitária é uma política
// de atribuição entre chatters, não entre contas.
func (s *Service) GetAccountHistory(accountID string, days int) (*domain.DailyHistoryReport, error) {
	if _, ok := s.roster.Account(accountID); !ok {
		return nil, ErrAccountNotFound
	}

	if days <= 0 {
		return nil, ErrInvalidDays
	}

	today := utils.TruncateToDay(s.now().UTC())
	windowStart := today.AddDate(0, 0, -days)

	result, err := s.infloww.AccountTransactions(accountID, windowStart, s.now().UTC())
	if err != nil {
		return nil, err
	}

	buckets := make(map[time.Time]*dayBucket)
	foldTransactions(buckets, result.Items, windowStart, today, 1.0)

	return &domain.DailyHistoryReport{
		Points:  buildPoints(buckets, windowStart, today),
		Days:    days,
		Partial: result.Partial,
	}, nil
}

// foldTransactions distribui as transações realizadas nos buckets diários.
// Só status done e loading contam como receita realizada; failed e rejected
// não contribuem com nada, e pending_return fica de fora desta visão (a
// visão de billing a inclui — divergência herdada do sistema de origem).
func foldTransactions(
	buckets map[time.Time]*dayBucket,
	transactions []inflowwdomain.Transaction,
	windowStart, today time.Time,
	share float64,
) {
	for i := range transactions {
		tx := &transactions[i]

		if !tx.CountsForDailyHistory() {
			continue
		}

		day := utils.TruncateToDay(tx.CreatedAt.UTC())
		if day.Before(windowStart) || day.After(today) {
			continue
		}

		bucket, ok := buckets[day]
		if !ok {
			bucket = &dayBucket{fans: make(map[string]struct{})}
			buckets[day] = bucket
		}

		bucket.net += tx.Amount * (1 - domain.PlatformFeeRate) * share

		if tx.IsMessage() {
			bucket.messages += share
		}

		if tx.FanID != "" {
			bucket.fans[tx.FanID] = struct{}{}
		}
	}
}

// buildPoints materializa a faixa completa de datas, do dia mais recente
// para o mais antigo. Dias sem transações aparecem zerados; a faixa nunca
// é esparsa.
func buildPoints(buckets map[time.Time]*dayBucket, windowStart, today time.Time) []*domain.DailyHistoryPoint {
	var points []*domain.DailyHistoryPoint

	for day := today; !day.Before(windowStart); day = day.AddDate(0, 0, -1) {
		point := &domain.DailyHistoryPoint{Date: day}

		if bucket, ok := buckets[day]; ok {
			point.NetSales = utils.RoundWithTwoDecimalPlace(bucket.net)
			point.Messages = int(math.Round(bucket.messages))
			point.Fans = len(bucket.fans)

			if point.Fans > 0 {
				point.Conversion = utils.RoundWithOneDecimalPlace(
					float64(point.Messages) / float64(point.Fans) * 100,
				)
			}
		}

		points = append(points, point)
	}

	return points
}

// GetAccountEarnings soma o faturamento da conta no período (visão billing).
// Diferente do histórico diário, o status pending_return entra na soma;
// a inconsistência entre as duas visões é comportamento observado do
// sistema de origem e foi mantida de propósito.
func (s *Service) GetAccountEarnings(accountID string, filters *domain.ReportFilters) (*domain.EarningsSummary, error) {
	account, ok := s.roster.Account(accountID)
	if !ok {
		return nil, ErrAccountNotFound
	}

	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return nil, ErrMissingPeriod
	}

	end := filters.EndDate.AddDate(0, 0, 1) // fim do dia informado

	result, err := s.infloww.AccountTransactions(accountID, *filters.StartDate, end)
	if err != nil {
		return nil, err
	}

	summary := &domain.EarningsSummary{
		AccountID:   account.ID,
		AccountName: account.Name,
		PeriodStart: filters.StartDate,
		PeriodEnd:   filters.EndDate,
		Partial:     result.Partial,
	}

	gross := 0.0
	for i := range result.Items {
		tx := &result.Items[i]

		if tx.Status == inflowwdomain.TransactionRejected {
			summary.Chargebacks++
			continue
		}

		if !tx.CountsForBilling() {
			continue
		}

		gross += tx.Amount
		summary.Transactions++
	}

	summary.GrossTotal = utils.RoundWithTwoDecimalPlace(gross)
	summary.NetTotal = utils.RoundWithTwoDecimalPlace(gross * (1 - domain.PlatformFeeRate))

	return summary, nil
}
