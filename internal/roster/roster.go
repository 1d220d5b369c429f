package roster

import (
	"github.com/vfg2006/chatter-metrics-api/internal/domain"
)

// Roster é o cadastro de chatters, contas e atribuições carregado uma única
// vez na inicialização do processo. Depois de construído é somente leitura,
// por isso pode ser compartilhado entre requisições sem locks.
type Roster struct {
	chatters  map[string]*domain.Chatter
	accounts  map[string]*domain.Account
	byAccount map[string][]*domain.Chatter

	orderedChatters []*domain.Chatter
	orderedAccounts []*domain.Account
}

// New monta o roster a partir das listas do cadastro.
// A ordem de inserção é preservada nas listagens.
func New(chatters []*domain.Chatter, accounts []*domain.Account) *Roster {
	r := &Roster{
		chatters:  make(map[string]*domain.Chatter, len(chatters)),
		accounts:  make(map[string]*domain.Account, len(accounts)),
		byAccount: make(map[string][]*domain.Chatter),
	}

	for _, account := range accounts {
		if account == nil {
			continue
		}
		if _, exists := r.accounts[account.ID]; exists {
			continue
		}
		r.accounts[account.ID] = account
		r.orderedAccounts = append(r.orderedAccounts, account)
	}

	for _, chatter := range chatters {
		if chatter == nil {
			continue
		}
		if _, exists := r.chatters[chatter.ID]; exists {
			continue
		}
		r.chatters[chatter.ID] = chatter
		r.orderedChatters = append(r.orderedChatters, chatter)

		for _, accountID := range chatter.AccountIDs {
			// Atribuições para contas fora do cadastro são ignoradas
			if _, known := r.accounts[accountID]; !known {
				continue
			}
			r.byAccount[accountID] = append(r.byAccount[accountID], chatter)
		}
	}

	return r
}

// Chatter busca um chatter pelo identificador
func (r *Roster) Chatter(id string) (*domain.Chatter, bool) {
	chatter, ok := r.chatters[id]
	return chatter, ok
}

// Account busca uma conta pelo identificador
func (r *Roster) Account(id string) (*domain.Account, bool) {
	account, ok := r.accounts[id]
	return account, ok
}

// Chatters retorna todos os chatters na ordem do cadastro
func (r *Roster) Chatters() []*domain.Chatter {
	return r.orderedChatters
}

// Accounts retorna todas as contas na ordem do cadastro
func (r *Roster) Accounts() []*domain.Account {
	return r.orderedAccounts
}

// AssignedChatters retorna os chatters atribuídos à conta
func (r *Roster) AssignedChatters(accountID string) []*domain.Chatter {
	return r.byAccount[accountID]
}

// NumChatters retorna quantos chatters estão atribuídos à conta.
// É o divisor da política de rateio igualitário do histórico diário.
func (r *Roster) NumChatters(accountID string) int {
	return len(r.byAccount[accountID])
}

// AccountNames resolve os nomes das contas atribuídas ao chatter
func (r *Roster) AccountNames(chatter *domain.Chatter) []string {
	if chatter == nil {
		return nil
	}

	names := make([]string, 0, len(chatter.AccountIDs))
	for _, accountID := range chatter.AccountIDs {
		if account, ok := r.accounts[accountID]; ok {
			names = append(names, account.Name)
		}
	}
	return names
}
