package domain

// UsageRecord é uma linha de uso por chatter na janela consultada,
// exatamente como o provedor devolve. Nenhum campo derivado é calculado
// aqui; a normalização acontece no usecase de relatórios.
type UsageRecord struct {
	ChatterID   string `json:"chatter_id"`
	ChatterName string `json:"chatter_name"`

	MessagesSentCount     int `json:"messages_sent_count"`
	AIMessagesCount       int `json:"ai_messages_count"`
	MediaMessagesCount    int `json:"media_messages_count"`
	PaidMessagesSentCount int `json:"paid_messages_sent_count"`
	PaidMessagesSoldCount int `json:"paid_messages_sold_count"`
	WordsCount            int `json:"words_count"`
	FansContactedCount    int `json:"fans_contacted_count"`
	PostsCount            int `json:"posts_count"`

	SoldMessagesPriceSum float64 `json:"sold_messages_price_sum"`
	TipsCount            int     `json:"tips_count"`
	TipsAmountSum        float64 `json:"tips_amount_sum"`
	SoldPostsPriceSum    float64 `json:"sold_posts_price_sum"`

	ChargebacksCount     int     `json:"chargebacks_count"`
	ChargebacksAmountSum float64 `json:"chargebacks_amount_sum"`

	AvgResponseTimeSeconds     float64 `json:"avg_response_time_seconds"`
	AvgPurchaseIntervalSeconds float64 `json:"avg_purchase_interval_seconds"`
}
