package domain

import "time"

// DailyHistoryPoint é um dia da série histórica de um chatter ou conta.
// Dias sem transações aparecem com todos os campos zerados.
type DailyHistoryPoint struct {
	Date       time.Time `json:"date"`
	NetSales   float64   `json:"net_sales"`
	Messages   int       `json:"messages"`
	Fans       int       `json:"fans"`
	Conversion float64   `json:"conversion"`
}

// DailyHistoryReport é a resposta de uma consulta de histórico.
// Os pontos vêm ordenados do dia mais recente para o mais antigo.
type DailyHistoryReport struct {
	Points  []*DailyHistoryPoint `json:"points"`
	Days    int                  `json:"days"`
	Partial bool                 `json:"partial,omitempty"`
}

// EarningsSummary resume o faturamento de uma conta no período (visão billing)
type EarningsSummary struct {
	AccountID    string     `json:"account_id"`
	AccountName  string     `json:"account_name"`
	PeriodStart  *time.Time `json:"period_start,omitempty"`
	PeriodEnd    *time.Time `json:"period_end,omitempty"`
	GrossTotal   float64    `json:"gross_total"`
	NetTotal     float64    `json:"net_total"`
	Transactions int        `json:"transactions"`
	Chargebacks  int        `json:"chargebacks"`
	Partial      bool       `json:"partial,omitempty"`
}
