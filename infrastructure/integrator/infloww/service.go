package infloww

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/chatter-metrics-api/infrastructure/integrator/infloww/inflowwclient"
	"github.com/vfg2006/chatter-metrics-api/internal/config"
	"github.com/vfg2006/chatter-metrics-api/internal/domain"
)

// Integrator é a fachada sobre o provedor de métricas consumida pelos
// usecases. Resultados parciais não viram erro; a flag Partial acompanha
// o retorno para o chamador decidir entre degradar ou recorrer ao fallback.
type Integrator interface {
	GlobalUsage(filters *domain.ReportFilters) (inflowwclient.UsageResult, error)
	AccountUsage(accountID string, filters *domain.ReportFilters) (inflowwclient.UsageResult, error)
	AccountTransactions(accountID string, start, end time.Time) (inflowwclient.TransactionsResult, error)
}

type InflowwService struct {
	cfg    *config.Config
	Client inflowwclient.Client
}

func New(cfg *config.Config, client inflowwclient.Client) Integrator {
	return &InflowwService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *InflowwService) GlobalUsage(filters *domain.ReportFilters) (inflowwclient.UsageResult, error) {
	result, err := s.Client.GetChattersUsage(filters)
	if err != nil {
		logrus.WithError(err).Error("infloww: failed to fetch global chatters usage")
		return result, err
	}

	if result.Partial {
		logrus.WithFields(logrus.Fields{
			"items":  len(result.Items),
			"reason": result.Reason,
		}).Warn("infloww: global usage fetch degraded")
	}

	return result, nil
}

func (s *InflowwService) AccountUsage(accountID string, filters *domain.ReportFilters) (inflowwclient.UsageResult, error) {
	result, err := s.Client.GetAccountChattersUsage(accountID, filters)
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountID).
			Error("infloww: failed to fetch account chatters usage")
		return result, err
	}

	if result.Partial {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"items":      len(result.Items),
			"reason":     result.Reason,
		}).Warn("infloww: account usage fetch degraded")
	}

	return result, nil
}

func (s *InflowwService) AccountTransactions(accountID string, start, end time.Time) (inflowwclient.TransactionsResult, error) {
	result, err := s.Client.GetAccountTransactions(accountID, start, end)
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountID).
			Error("infloww: failed to fetch account transactions")
		return result, err
	}

	if result.Partial {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"items":      len(result.Items),
			"reason":     result.Reason,
		}).Warn("infloww: transactions fetch degraded")
	}

	return result, nil
}
