package domain

import (
	"strings"
	"time"
)

type TransactionStatus string

const (
	TransactionDone          TransactionStatus = "done"
	TransactionLoading       TransactionStatus = "loading"
	TransactionPendingReturn TransactionStatus = "pending_return"
	TransactionFailed        TransactionStatus = "failed"
	TransactionRejected      TransactionStatus = "rejected"
)

// Transaction é um evento monetário de uma conta no feed de transações
type Transaction struct {
	ID        string            `json:"id"`
	Amount    float64           `json:"amount"`
	Status    TransactionStatus `json:"status"`
	Type      string            `json:"type"`
	CreatedAt time.Time         `json:"created_at"`
	FanID     string            `json:"fan_id,omitempty"`
}

// CountsForDailyHistory informa se a transação entra nos buckets diários.
// Atenção: o filtro de billing (CountsForBilling) também aceita
// pending_return; a divergência entre as duas visões é comportamento
// observado do sistema de origem e foi mantida de propósito.
func (t *Transaction) CountsForDailyHistory() bool {
	return t.Status == TransactionDone || t.Status == TransactionLoading
}

// CountsForBilling informa se a transação entra no somatório de faturamento
func (t *Transaction) CountsForBilling() bool {
	return t.Status == TransactionDone ||
		t.Status == TransactionLoading ||
		t.Status == TransactionPendingReturn
}

// IsMessage informa se a transação conta para a métrica de mensagens.
// O campo type do provedor é texto livre; a checagem por substring
// reproduz o contrato frouxo do upstream.
func (t *Transaction) IsMessage() bool {
	return strings.Contains(strings.ToLower(t.Type), "message")
}
