package handler

import (
	"net/http"

	"github.com/vfg2006/pharmacy-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/pharmacy-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/pharmacy-dashboard-api/pkg/metrics"
)

func Healthcheck(service dashboard.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(service),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Dashboard(service dashboard.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/status",
			Method:  http.MethodGet,
			Handler: GetBusinessStatus(service),
		},
		{
			Path:    "/v1/dashboard/sales",
			Method:  http.MethodGet,
			Handler: GetSalesSeries(service),
		},
		{
			Path:    "/v1/dashboard/sales/export",
			Method:  http.MethodGet,
			Handler: ExportSalesSeries(service),
		},
		{
			Path:    "/v1/dashboard/overview",
			Method:  http.MethodGet,
			Handler: GetOverview(service),
		},
		{
			Path:    "/v1/dashboard/stock",
			Method:  http.MethodGet,
			Handler: GetStock(service),
		},
		{
			Path:    "/v1/dashboard/today",
			Method:  http.MethodGet,
			Handler: GetToday(service),
		},
		{
			Path:    "/v1/dashboard/quick-actions",
			Method:  http.MethodPost,
			Handler: PostQuickAction(service),
		},
		{
			Path:    "/v1/quote",
			Method:  http.MethodGet,
			Handler: GetQuote(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
