package domain

import "time"

// AccountRankingItem é uma linha do ranking mensal de contas persistido
// pelo agendador diário
type AccountRankingItem struct {
	ID               string    `json:"id"`
	AccountID        string    `json:"account_id"`
	AccountName      string    `json:"account_name"`
	Month            string    `json:"month"` // formato MM-YYYY
	NetRevenue       float64   `json:"net_revenue"`
	ImpactPercentage float64   `json:"impact_percentage"`
	Position         int       `json:"position"`
	PreviousPosition int       `json:"previous_position"`
	PositionChange   int       `json:"position_change"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// AccountRankingResponse é a resposta do endpoint de ranking de contas
type AccountRankingResponse struct {
	Month   string                `json:"month"`
	Ranking []*AccountRankingItem `json:"ranking"`
}
