package handler

import (
	"net/http"

	"github.com/vfg2006/chatter-metrics-api/internal/api/handler/router"
	"github.com/vfg2006/chatter-metrics-api/internal/roster"
	"github.com/vfg2006/chatter-metrics-api/internal/usecases/history"
	"github.com/vfg2006/chatter-metrics-api/internal/usecases/ranking"
	"github.com/vfg2006/chatter-metrics-api/internal/usecases/reporting"
	"github.com/vfg2006/chatter-metrics-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/metrics/chatters",
			Method:      http.MethodGet,
			Handler:     GetChatterMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/metrics/accounts",
			Method:      http.MethodGet,
			Handler:     GetAccountMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func History(service history.Historian) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/chatters/:id/history",
			Method:      http.MethodGet,
			Handler:     GetChatterHistory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id/history",
			Method:      http.MethodGet,
			Handler:     GetAccountHistory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id/earnings",
			Method:      http.MethodGet,
			Handler:     GetAccountEarnings(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Roster(rst *roster.Roster) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/chatters",
			Method:      http.MethodGet,
			Handler:     ListChatters(rst),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/accounts",
			Method:      http.MethodGet,
			Handler:     ListAccounts(rst),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func AccountRanking(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/rankings/accounts",
			Method:      http.MethodGet,
			Handler:     GetAccountRanking(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
