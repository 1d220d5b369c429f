package reporting

import (
	"github.com/vfg2006/chatter-metrics-api/internal/domain"
)

// Reporter define os relatórios de métricas servidos ao dashboard
type Reporter interface {
	// GetChatterMetrics monta o relatório por chatter. Com accountID vazio
	// usa a visão global; com accountID preenchido tenta a visão escopada
	// da conta e recorre ao fallback global filtrado quando indisponível.
	GetChatterMetrics(filters *domain.ReportFilters, accountID string) (*domain.ChatterMetricsReport, error)

	// GetAccountMetrics monta o relatório geral com uma linha por conta do
	// roster, consultando o provedor em lotes com pausa entre eles.
	GetAccountMetrics(filters *domain.ReportFilters) (*domain.AccountMetricsReport, error)
}
