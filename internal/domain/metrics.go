package domain

import (
	"time"
)

// PlatformFeeRate é a taxa fixa retida pela plataforma sobre toda receita bruta.
// Todo cálculo de receita líquida aplica (1 - PlatformFeeRate).
const PlatformFeeRate = 0.20

// ReportFilters delimita o período de um relatório
type ReportFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// RevenueMetrics agrupa os componentes de receita de um chatter no período
type RevenueMetrics struct {
	TotalNet          float64 `json:"total_net"`
	SoldMessagesGross float64 `json:"sold_messages_gross"`
	TipsGross         float64 `json:"tips_gross"`
	SoldPostsGross    float64 `json:"sold_posts_gross"`
	ImpactPercentage  float64 `json:"impact_percentage"`
}

// MessageMetrics agrupa os contadores de mensagens por categoria
type MessageMetrics struct {
	Sent          int `json:"sent"`
	AIGenerated   int `json:"ai_generated"`
	Media         int `json:"media"`
	PaidSent      int `json:"paid_sent"`
	PaidSold      int `json:"paid_sold"`
	Words         int `json:"words"`
	FansContacted int `json:"fans_contacted"`
	Posts         int `json:"posts"`
}

// PerformanceMetrics agrupa os indicadores derivados de desempenho
type PerformanceMetrics struct {
	AvgReplyTimeMinutes        float64 `json:"avg_reply_time_minutes"`
	AvgPurchaseIntervalMinutes float64 `json:"avg_purchase_interval_minutes"`
	RevenuePerMessage          float64 `json:"revenue_per_message"`
	ConversionRate             float64 `json:"conversion_rate"`
}

// ChargebackMetrics agrupa os estornos do período
type ChargebackMetrics struct {
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// ChatterMetrics é a unidade canônica de saída dos relatórios por chatter
type ChatterMetrics struct {
	ChatterID    string     `json:"chatter_id"`
	ChatterName  string     `json:"chatter_name"`
	AccountNames []string   `json:"account_names,omitempty"`
	PeriodStart  *time.Time `json:"period_start,omitempty"`
	PeriodEnd    *time.Time `json:"period_end,omitempty"`

	Revenue     RevenueMetrics     `json:"revenue"`
	Messages    MessageMetrics     `json:"messages"`
	Performance PerformanceMetrics `json:"performance"`
	Chargebacks ChargebackMetrics  `json:"chargebacks"`

	// IsGlobalFallback indica que os números vieram da visão global filtrada
	// localmente e podem incluir receita obtida em outras contas
	IsGlobalFallback bool `json:"is_global_fallback"`
}

// AccountMetrics é o equivalente por conta usado no relatório geral
type AccountMetrics struct {
	AccountID   string     `json:"account_id"`
	AccountName string     `json:"account_name"`
	PeriodStart *time.Time `json:"period_start,omitempty"`
	PeriodEnd   *time.Time `json:"period_end,omitempty"`

	TotalNet         float64 `json:"total_net"`
	ImpactPercentage float64 `json:"impact_percentage"`
	ChattersCount    int     `json:"chatters_count"`

	// IsGlobalFallback espelha a flag dos chatters agregados nesta conta
	IsGlobalFallback bool `json:"is_global_fallback"`
}

// NetTotal retorna a receita líquida usada pela passada de ranking
func (m *ChatterMetrics) NetTotal() float64 {
	return m.Revenue.TotalNet
}

// SetImpactPercentage registra a fatia do chatter na receita do relatório
func (m *ChatterMetrics) SetImpactPercentage(p float64) {
	m.Revenue.ImpactPercentage = p
}

// NetTotal retorna a receita líquida usada pela passada de ranking
func (m *AccountMetrics) NetTotal() float64 {
	return m.TotalNet
}

// SetImpactPercentage registra a fatia da conta na receita do relatório
func (m *AccountMetrics) SetImpactPercentage(p float64) {
	m.ImpactPercentage = p
}

// ChatterMetricsReport é a resposta do relatório de chatters
type ChatterMetricsReport struct {
	Chatters []*ChatterMetrics `json:"chatters"`
	Filters  *ReportFilters    `json:"filters,omitempty"`

	// Partial indica que o provedor degradou durante a coleta e o
	// relatório pode conter menos linhas do que o esperado
	Partial bool `json:"partial,omitempty"`
}

// AccountMetricsReport é a resposta do relatório geral por conta
type AccountMetricsReport struct {
	Accounts []*AccountMetrics `json:"accounts"`
	Filters  *ReportFilters    `json:"filters,omitempty"`
	Partial  bool              `json:"partial,omitempty"`
}
