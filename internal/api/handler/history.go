package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/chatter-metrics-api/internal/usecases/history"
	"github.com/vfg2006/chatter-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/chatter-metrics-api/pkg/log"
)

const defaultHistoryDays = 30

// parseDays lê o parâmetro days da query; ausente, usa o padrão de 30 dias
func parseDays(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("days")
	if raw == "" {
		return defaultHistoryDays, nil
	}

	days, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}

	return days, nil
}

func writeHistoryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, history.ErrChatterNotFound):
		apiErrors.WriteError(w, apiErrors.ErrUnknownChatter, err.Error(), nil)
	case errors.Is(err, history.ErrAccountNotFound):
		apiErrors.WriteError(w, apiErrors.ErrUnknownAccount, err.Error(), nil)
	case errors.Is(err, history.ErrInvalidDays):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	case errors.Is(err, history.ErrMissingPeriod):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar o provedor de métricas", nil)
	}
}

func GetChatterHistory(service history.Historian) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		chatterID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		days, err := parseDays(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"chatter_id": chatterID,
				"days":       r.URL.Query().Get("days"),
			}).Warn("history: invalid days parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "O parâmetro days deve ser um inteiro", nil)
			return
		}

		logger.WithFields(log.Fields{
			"chatter_id": chatterID,
			"days":       days,
		}).Info("history: building chatter daily history")

		report, err := service.GetChatterHistory(chatterID, days)
		if err != nil {
			logger.WithFields(log.Fields{
				"chatter_id": chatterID,
				"error":      err.Error(),
			}).Error("history: failed to build chatter history")

			writeHistoryError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("history: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

func GetAccountHistory(service history.Historian) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		days, err := parseDays(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"days":       r.URL.Query().Get("days"),
			}).Warn("history: invalid days parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "O parâmetro days deve ser um inteiro", nil)
			return
		}

		logger.WithFields(log.Fields{
			"account_id": accountID,
			"days":       days,
		}).Info("history: building account daily history")

		report, err := service.GetAccountHistory(accountID, days)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("history: failed to build account history")

			writeHistoryError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("history: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

func GetAccountEarnings(service history.Historian) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		filters, err := parsePeriodFilters(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"start_date": r.URL.Query().Get("start_date"),
				"end_date":   r.URL.Query().Get("end_date"),
			}).Warn("history: invalid period parameters")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas devem estar no formato YYYY-MM-DD", nil)
			return
		}

		logger.WithField("account_id", accountID).Info("history: building account earnings summary")

		summary, err := service.GetAccountEarnings(accountID, filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("history: failed to build earnings summary")

			writeHistoryError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithError(err).Error("history: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
