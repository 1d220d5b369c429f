package domain

type ChatterStatus string

const (
	ChatterStatusActive   ChatterStatus = "ACTIVE"
	ChatterStatusInactive ChatterStatus = "INACTIVE"
)

// Chatter é o operador humano cuja atividade de mensagens é medida.
// A lista de contas atribuídas vem do cadastro e não muda em runtime.
type Chatter struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Status     ChatterStatus `json:"status"`
	AccountIDs []string      `json:"account_ids"`
}

// Account é um perfil monetizado acompanhado pelo provedor de métricas
type Account struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Nickname *string       `json:"nickname"`
	Status   ChatterStatus `json:"status"`
}

// AssignedTo informa se o chatter está atribuído à conta
func (c *Chatter) AssignedTo(accountID string) bool {
	for _, id := range c.AccountIDs {
		if id == accountID {
			return true
		}
	}
	return false
}
