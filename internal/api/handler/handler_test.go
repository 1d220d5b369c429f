package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/chatter-metrics-api/internal/domain"
	"github.com/vfg2006/chatter-metrics-api/internal/usecases/history"
	historymocks "github.com/vfg2006/chatter-metrics-api/internal/usecases/history/mocks"
	rankingmocks "github.com/vfg2006/chatter-metrics-api/internal/usecases/ranking/mocks"
	"github.com/vfg2006/chatter-metrics-api/internal/usecases/reporting"
	reportingmocks "github.com/vfg2006/chatter-metrics-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/chatter-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/chatter-metrics-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

// serve registra o handler numa rota do httprouter para que os parâmetros
// de path cheguem pelo contexto, como em produção
func serve(method, pattern string, h http.Handler, r *http.Request) *httptest.ResponseRecorder {
	rt := httprouter.New()
	rt.Handler(method, pattern, h)

	recorder := httptest.NewRecorder()
	rt.ServeHTTP(recorder, r)
	return recorder
}

func decodeAPIError(t *testing.T, recorder *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&apiErr))
	return apiErr
}

func TestGetChatterMetrics_PeriodoAusenteRetorna400(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reporter := reportingmocks.NewMockReporter(ctrl)
	reporter.EXPECT().
		GetChatterMetrics(gomock.Any(), "").
		Return(nil, reporting.ErrMissingPeriod)

	req := httptest.NewRequest(http.MethodGet, "/v1/metrics/chatters", nil)
	recorder := serve(http.MethodGet, "/v1/metrics/chatters", GetChatterMetrics(reporter), req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeAPIError(t, recorder).Code)
}

func TestGetChatterMetrics_DataMalFormatadaRetorna400(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reporter := reportingmocks.NewMockReporter(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/v1/metrics/chatters?start_date=30-08-2026&end_date=2026-08-31", nil)
	recorder := serve(http.MethodGet, "/v1/metrics/chatters", GetChatterMetrics(reporter), req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, recorder).Code)
}

func TestGetChatterMetrics_RespondeRelatorio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reporter := reportingmocks.NewMockReporter(ctrl)
	reporter.EXPECT().
		GetChatterMetrics(gomock.Any(), "acc-1").
		DoAndReturn(func(filters *domain.ReportFilters, accountID string) (*domain.ChatterMetricsReport, error) {
			require.NotNil(t, filters.StartDate)
			require.NotNil(t, filters.EndDate)
			assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), *filters.StartDate)

			return &domain.ChatterMetricsReport{
				Chatters: []*domain.ChatterMetrics{
					{ChatterID: "ch-1", ChatterName: "Carlos", IsGlobalFallback: true},
				},
			}, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/v1/metrics/chatters?start_date=2026-08-01&end_date=2026-08-31&account_id=acc-1", nil)
	recorder := serve(http.MethodGet, "/v1/metrics/chatters", GetChatterMetrics(reporter), req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var report domain.ChatterMetricsReport
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&report))
	require.Len(t, report.Chatters, 1)
	assert.True(t, report.Chatters[0].IsGlobalFallback)
}

func TestGetChatterHistory_ChatterDesconhecidoRetorna404(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	historian := historymocks.NewMockHistorian(ctrl)
	historian.EXPECT().
		GetChatterHistory("ch-fantasma", 30).
		Return(nil, history.ErrChatterNotFound)

	req := httptest.NewRequest(http.MethodGet, "/v1/chatters/ch-fantasma/history", nil)
	recorder := serve(http.MethodGet, "/v1/chatters/:id/history", GetChatterHistory(historian), req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, apiErrors.ErrUnknownChatter, decodeAPIError(t, recorder).Code)
}

func TestGetChatterHistory_RepassaDiasDaQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	historian := historymocks.NewMockHistorian(ctrl)
	historian.EXPECT().
		GetChatterHistory("ch-1", 7).
		Return(&domain.DailyHistoryReport{Days: 7}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/chatters/ch-1/history?days=7", nil)
	recorder := serve(http.MethodGet, "/v1/chatters/:id/history", GetChatterHistory(historian), req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var report domain.DailyHistoryReport
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&report))
	assert.Equal(t, 7, report.Days)
}

func TestGetAccountEarnings_RespondeResumo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	historian := historymocks.NewMockHistorian(ctrl)
	historian.EXPECT().
		GetAccountEarnings("acc-1", gomock.Any()).
		Return(&domain.EarningsSummary{
			AccountID:  "acc-1",
			GrossTotal: 150.0,
			NetTotal:   120.0,
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/accounts/acc-1/earnings?start_date=2026-08-01&end_date=2026-08-31", nil)
	recorder := serve(http.MethodGet, "/v1/accounts/:id/earnings", GetAccountEarnings(historian), req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var summary domain.EarningsSummary
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&summary))
	assert.Equal(t, 120.0, summary.NetTotal)
}

func TestGetAccountRanking_RepassaMes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rankingService := rankingmocks.NewMockRankingService(ctrl)
	rankingService.EXPECT().
		GetAccountRanking("07-2026").
		Return(&domain.AccountRankingResponse{Month: "07-2026"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/rankings/accounts?month=07-2026", nil)
	recorder := serve(http.MethodGet, "/v1/rankings/accounts", GetAccountRanking(rankingService), req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response domain.AccountRankingResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "07-2026", response.Month)
}

func TestRunCronJob_ExigePerfilDeAdministrador(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/cron/ranking/run", nil)
	ctx := context.WithValue(req.Context(), middleware.ContextKeyUser, &domain.Claims{UserRoleID: 2})

	recorder := serve(http.MethodPost, "/v1/cron/:type/run", RunCronJob(CronJobServices{}), req.WithContext(ctx))

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Equal(t, apiErrors.ErrInsufficientPrivilege, decodeAPIError(t, recorder).Code)
}

func TestRunCronJob_TipoInvalidoRetorna400(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/cron/inexistente/run", nil)
	ctx := context.WithValue(req.Context(), middleware.ContextKeyUser, &domain.Claims{UserRoleID: 1})

	recorder := serve(http.MethodPost, "/v1/cron/:type/run", RunCronJob(CronJobServices{}), req.WithContext(ctx))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, recorder).Code)
}
