package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/chatter-metrics-api/internal/roster"
	"github.com/vfg2006/chatter-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/chatter-metrics-api/pkg/log"
)

// ListChatters retorna o cadastro de chatters carregado na inicialização
func ListChatters(rst *roster.Roster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		chatters := rst.Chatters()
		logger.WithField("chatters", len(chatters)).Info("roster: listing chatters")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(chatters); err != nil {
			logger.WithError(err).Error("roster: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// ListAccounts retorna o cadastro de contas carregado na inicialização
func ListAccounts(rst *roster.Roster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accounts := rst.Accounts()
		logger.WithField("accounts", len(accounts)).Info("roster: listing accounts")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(accounts); err != nil {
			logger.WithError(err).Error("roster: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
