package inflowwclient

import (
	"net/http"
	"time"

	inflowwdomain "github.com/vfg2006/chatter-metrics-api/infrastructure/integrator/infloww/domain"
	"github.com/vfg2006/chatter-metrics-api/internal/config"
	"github.com/vfg2006/chatter-metrics-api/internal/domain"
	"github.com/vfg2006/chatter-metrics-api/pkg/retry"
)

// UsageResult é o retorno paginado dos endpoints de uso por chatter
type UsageResult = PageResult[inflowwdomain.UsageRecord]

// TransactionsResult é o retorno paginado do feed de transações
type TransactionsResult = PageResult[inflowwdomain.Transaction]

type Client interface {
	GetChattersUsage(filters *domain.ReportFilters) (UsageResult, error)
	GetAccountChattersUsage(accountID string, filters *domain.ReportFilters) (UsageResult, error)
	GetAccountTransactions(accountID string, start, end time.Time) (TransactionsResult, error)
}

type InflowwClient struct {
	cfg        *config.Config
	httpClient *http.Client
	policy     retry.Policy
}

func NewClient(cfg *config.Config) Client {
	return &InflowwClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		policy: retry.Policy{
			MaxAttempts: cfg.Infloww.MaxRetries,
			BaseDelay:   2 * time.Second,
			Retryable:   isRetryable,
		},
	}
}
