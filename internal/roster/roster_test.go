package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/chatter-metrics-api/internal/domain"
)

func buildTestRoster() *Roster {
	accounts := []*domain.Account{
		{ID: "acc-1", Name: "Luna"},
		{ID: "acc-2", Name: "Mia"},
	}

	chatters := []*domain.Chatter{
		{ID: "ch-1", Name: "Carlos", AccountIDs: []string{"acc-1"}},
		{ID: "ch-2", Name: "Renata", AccountIDs: []string{"acc-1", "acc-2"}},
		{ID: "ch-3", Name: "Pedro", AccountIDs: []string{"acc-3"}}, // conta fora do cadastro
	}

	return New(chatters, accounts)
}

func TestRoster_AtribuicoesPorConta(t *testing.T) {
	r := buildTestRoster()

	assigned := r.AssignedChatters("acc-1")
	assert.Len(t, assigned, 2)
	assert.Equal(t, "ch-1", assigned[0].ID)
	assert.Equal(t, "ch-2", assigned[1].ID)

	assert.Equal(t, 2, r.NumChatters("acc-1"))
	assert.Equal(t, 1, r.NumChatters("acc-2"))

	// Conta desconhecida não tem chatters atribuídos
	assert.Equal(t, 0, r.NumChatters("acc-3"))
}

func TestRoster_AtribuicaoParaContaDesconhecidaIgnorada(t *testing.T) {
	r := buildTestRoster()

	chatter, ok := r.Chatter("ch-3")
	assert.True(t, ok)
	assert.Empty(t, r.AccountNames(chatter))
}

func TestRoster_OrdemDoCadastroPreservada(t *testing.T) {
	r := buildTestRoster()

	chatters := r.Chatters()
	assert.Equal(t, []string{"ch-1", "ch-2", "ch-3"}, []string{chatters[0].ID, chatters[1].ID, chatters[2].ID})

	accounts := r.Accounts()
	assert.Equal(t, "acc-1", accounts[0].ID)
	assert.Equal(t, "acc-2", accounts[1].ID)
}

func TestRoster_AccountNames(t *testing.T) {
	r := buildTestRoster()

	chatter, _ := r.Chatter("ch-2")
	assert.Equal(t, []string{"Luna", "Mia"}, r.AccountNames(chatter))
}
