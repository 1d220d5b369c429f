package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vfg2006/chatter-metrics-api/infrastructure/integrator/infloww/inflowwclient"
	"github.com/vfg2006/chatter-metrics-api/internal/domain"
	"github.com/vfg2006/chatter-metrics-api/internal/usecases/reporting"
	"github.com/vfg2006/chatter-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/chatter-metrics-api/pkg/log"
	"github.com/vfg2006/chatter-metrics-api/pkg/utils"
)

// parsePeriodFilters extrai start_date e end_date (YYYY-MM-DD) da query.
// Parâmetro ausente vira ponteiro nulo; a validação de obrigatoriedade
// fica no usecase.
func parsePeriodFilters(r *http.Request) (*domain.ReportFilters, error) {
	filters := &domain.ReportFilters{}

	if raw := r.URL.Query().Get("start_date"); raw != "" {
		startDate, err := utils.ParseDate(raw)
		if err != nil {
			return nil, err
		}
		filters.StartDate = startDate
	}

	if raw := r.URL.Query().Get("end_date"); raw != "" {
		endDate, err := utils.ParseDate(raw)
		if err != nil {
			return nil, err
		}
		filters.EndDate = endDate
	}

	return filters, nil
}

// writeReportError traduz os erros dos relatórios para códigos da API
func writeReportError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, reporting.ErrMissingPeriod):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, reporting.ErrInvalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	case errors.Is(err, inflowwclient.ErrMalformedPayload):
		apiErrors.WriteError(w, apiErrors.ErrUpstreamContract, "Resposta inesperada do provedor de métricas", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar o provedor de métricas", nil)
	}
}

func GetChatterMetrics(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accountID := r.URL.Query().Get("account_id")

		filters, err := parsePeriodFilters(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": r.URL.Query().Get("start_date"),
				"end_date":   r.URL.Query().Get("end_date"),
				"error":      err.Error(),
			}).Warn("metrics: invalid period parameters")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas devem estar no formato YYYY-MM-DD", nil)
			return
		}

		logger.WithField("account_id", accountID).Info("metrics: fetching chatter metrics report")

		report, err := service.GetChatterMetrics(filters, accountID)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("metrics: failed to build chatter metrics report")

			writeReportError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"account_id": accountID,
			"chatters":   len(report.Chatters),
			"partial":    report.Partial,
		}).Info("metrics: chatter metrics report built")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("metrics: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

func GetAccountMetrics(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parsePeriodFilters(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": r.URL.Query().Get("start_date"),
				"end_date":   r.URL.Query().Get("end_date"),
				"error":      err.Error(),
			}).Warn("metrics: invalid period parameters")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas devem estar no formato YYYY-MM-DD", nil)
			return
		}

		logger.Info("metrics: fetching account metrics report")

		report, err := service.GetAccountMetrics(filters)
		if err != nil {
			logger.WithError(err).Error("metrics: failed to build account metrics report")
			writeReportError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"accounts": len(report.Accounts),
			"partial":  report.Partial,
		}).Info("metrics: account metrics report built")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("metrics: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
