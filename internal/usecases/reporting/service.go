package reporting

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/chatter-metrics-api/infrastructure/integrator/infloww"
	inflowwdomain "github.com/vfg2006/chatter-metrics-api/infrastructure/integrator/infloww/domain"
	"github.com/vfg2006/chatter-metrics-api/internal/config"
	"github.com/vfg2006/chatter-metrics-api/internal/domain"
	"github.com/vfg2006/chatter-metrics-api/internal/roster"
	"github.com/vfg2006/chatter-metrics-api/internal/usecases/ranking"
	"github.com/vfg2006/chatter-metrics-api/pkg/utils"
)

// Service resolve a atribuição de métricas por chatter: visão global,
// visão escopada por conta ou fallback global filtrado localmente
type Service struct {
	cfg     *config.Config
	infloww infloww.Integrator
	roster  *roster.Roster
	sleep   func(time.Duration)
}

func NewService(cfg *config.Config, integrator infloww.Integrator, rst *roster.Roster) Reporter {
	return &Service{
		cfg:     cfg,
		infloww: integrator,
		roster:  rst,
		sleep:   time.Sleep,
	}
}

func validateFilters(filters *domain.ReportFilters) error {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return ErrMissingPeriod
	}

	if filters.StartDate.After(*filters.EndDate) {
		return ErrInvalidPeriod
	}

	return nil
}

func (s *Service) GetChatterMetrics(filters *domain.ReportFilters, accountID string) (*domain.ChatterMetricsReport, error) {
	if err := validateFilters(filters); err != nil {
		return nil, err
	}

	if accountID == "" {
		return s.globalReport(filters)
	}

	metrics, partial, err := s.resolveAccountChatters(accountID, filters)
	if err != nil {
		return nil, err
	}

	ranking.Apply(metrics)

	return &domain.ChatterMetricsReport{
		Chatters: metrics,
		Filters:  filters,
		Partial:  partial,
	}, nil
}

func (s *Service) globalReport(filters *domain.ReportFilters) (*domain.ChatterMetricsReport, error) {
	result, err := s.infloww.GlobalUsage(filters)
	if err != nil {
		// Só quebras de contrato chegam aqui; indisponibilidade vira
		// resultado parcial dentro do client
		return nil, err
	}

	metrics := s.normalizeRecords(result.Items, filters, nil, "", false)
	ranking.Apply(metrics)

	return &domain.ChatterMetricsReport{
		Chatters: metrics,
		Filters:  filters,
		Partial:  result.Partial,
	}, nil
}

// resolveAccountChatters aplica a estratégia de duas camadas: tenta a visão
// escopada da conta e, quando ela não está disponível (404, rejeição ou
// coleta degradada/vazia), recorre à visão global filtrada pelo subconjunto
// de chatters atribuídos. O fallback nunca passa despercebido: cada métrica
// sai marcada com IsGlobalFallback.
func (s *Service) resolveAccountChatters(accountID string, filters *domain.ReportFilters) ([]*domain.ChatterMetrics, bool, error) {
	account, known := s.roster.Account(accountID)
	assigned := s.roster.AssignedChatters(accountID)

	// Subconjunto vazio: resposta vazia imediata, sem chamada ao provedor
	if !known || len(assigned) == 0 {
		return []*domain.ChatterMetrics{}, false, nil
	}

	allowed := make(map[string]struct{}, len(assigned))
	for _, chatter := range assigned {
		allowed[chatter.ID] = struct{}{}
	}

	scoped, err := s.infloww.AccountUsage(accountID, filters)
	if err != nil {
		return nil, false, err
	}

	if !scoped.Partial && len(scoped.Items) > 0 {
		metrics := s.normalizeRecords(scoped.Items, filters, allowed, account.Name, false)
		return metrics, false, nil
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"reason":     scoped.Reason,
	}).Warn("reporting: account-scoped usage unavailable, falling back to global view")

	global, err := s.infloww.GlobalUsage(filters)
	if err != nil {
		return nil, false, err
	}

	metrics := s.normalizeRecords(global.Items, filters, allowed, account.Name, true)
	return metrics, global.Partial, nil
}

// normalizeRecords aplica o filtro do roster e normaliza cada registro.
// Identificadores desconhecidos do cadastro são descartados antes da
// normalização. Com allowed preenchido, apenas o subconjunto atribuído à
// conta entra no resultado.
func (s *Service) normalizeRecords(
	records []inflowwdomain.UsageRecord,
	filters *domain.ReportFilters,
	allowed map[string]struct{},
	accountName string,
	globalFallback bool,
) []*domain.ChatterMetrics {
	metrics := make([]*domain.ChatterMetrics, 0, len(records))

	for i := range records {
		record := &records[i]

		chatter, ok := s.roster.Chatter(record.ChatterID)
		if !ok {
			continue
		}

		if allowed != nil {
			if _, ok := allowed[record.ChatterID]; !ok {
				continue
			}
		}

		m := Normalize(record, filters)
		m.ChatterName = chatter.Name
		m.IsGlobalFallback = globalFallback

		if accountName != "" {
			m.AccountNames = []string{accountName}
		} else {
			m.AccountNames = s.roster.AccountNames(chatter)
		}

		metrics = append(metrics, m)
	}

	return metrics
}

// GetAccountMetrics monta o relatório geral com uma linha por conta do
// roster. As contas são consultadas em lotes concorrentes com pausa entre
// lotes; dentro do lote as buscas correm em paralelo.
func (s *Service) GetAccountMetrics(filters *domain.ReportFilters) (*domain.AccountMetricsReport, error) {
	if err := validateFilters(filters); err != nil {
		return nil, err
	}

	accounts := s.roster.Accounts()
	results := make([]*domain.AccountMetrics, len(accounts))

	batchSize := s.cfg.Report.BatchSize
	if batchSize <= 0 {
		batchSize = 2
	}
	batchDelay := time.Duration(s.cfg.Report.BatchDelayMillis) * time.Millisecond

	var mu sync.Mutex
	anyPartial := false

	for start := 0; start < len(accounts); start += batchSize {
		if start > 0 {
			s.sleep(batchDelay)
		}

		end := start + batchSize
		if end > len(accounts) {
			end = len(accounts)
		}

		wg := sync.WaitGroup{}
		for i := start; i < end; i++ {
			wg.Add(1)

			go func(idx int, account *domain.Account) {
				defer wg.Done()

				entry := &domain.AccountMetrics{
					AccountID:     account.ID,
					AccountName:   account.Name,
					PeriodStart:   filters.StartDate,
					PeriodEnd:     filters.EndDate,
					ChattersCount: s.roster.NumChatters(account.ID),
				}
				results[idx] = entry

				if entry.ChattersCount == 0 {
					return
				}

				chatters, partial, err := s.resolveAccountChatters(account.ID, filters)
				if err != nil {
					logrus.WithError(err).WithField("account_id", account.ID).
						Error("reporting: failed to resolve account metrics, keeping zeroed entry")

					mu.Lock()
					anyPartial = true
					mu.Unlock()
					return
				}

				total := 0.0
				fallback := false
				for _, chatter := range chatters {
					total += chatter.Revenue.TotalNet
					fallback = fallback || chatter.IsGlobalFallback
				}

				entry.TotalNet = utils.RoundWithTwoDecimalPlace(total)
				entry.IsGlobalFallback = fallback

				if partial {
					mu.Lock()
					anyPartial = true
					mu.Unlock()
				}
			}(i, accounts[i])
		}
		wg.Wait()
	}

	ranking.Apply(results)

	return &domain.AccountMetricsReport{
		Accounts: results,
		Filters:  filters,
		Partial:  anyPartial,
	}, nil
}
