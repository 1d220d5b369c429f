package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/chatter-metrics-api/internal/usecases/ranking"
	"github.com/vfg2006/chatter-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/chatter-metrics-api/pkg/log"
)

// GetAccountRanking retorna o snapshot persistido do ranking mensal de contas
func GetAccountRanking(service ranking.RankingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		month := r.URL.Query().Get("month")
		logger.WithField("month", month).Info("ranking: fetching account ranking")

		response, err := service.GetAccountRanking(month)
		if err != nil {
			logger.WithFields(log.Fields{
				"month": month,
				"error": err.Error(),
			}).Error("ranking: failed to fetch account ranking")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar ranking de contas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("ranking: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
