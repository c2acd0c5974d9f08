package handler

import (
	"net/http"

	"github.com/vfg2006/sales-panel-api/internal/api/handler/router"
	"github.com/vfg2006/sales-panel-api/internal/scheduler"
	"github.com/vfg2006/sales-panel-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-panel-api/internal/usecases/loading"
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

// Dashboard retorna as rotas das quatro visões do painel e dos controles
// de filtro
func Dashboard(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/filters",
			Method:  http.MethodGet,
			Handler: GetFilterOptions(service),
		},
		{
			Path:    "/v1/dashboard/summary",
			Method:  http.MethodGet,
			Handler: GetSummary(service),
		},
		{
			Path:    "/v1/dashboard/salespeople",
			Method:  http.MethodGet,
			Handler: GetQuotaCompliance(service),
		},
		{
			Path:    "/v1/dashboard/customers",
			Method:  http.MethodGet,
			Handler: GetCustomers(service),
		},
		{
			Path:    "/v1/dashboard/products",
			Method:  http.MethodGet,
			Handler: GetProducts(service),
		},
	}
}

// Cache retorna a rota de invalidação manual do cache do dataset
func Cache(loader loading.DatasetLoader) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/refresh",
			Method:  http.MethodPost,
			Handler: InvalidateCache(loader),
		},
	}
}

func CronJobs(refreshService *scheduler.DatasetRefreshService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(refreshService),
		},
		{
			Path:    "/v1/cron/dataset-refresh/run",
			Method:  http.MethodPost,
			Handler: RunDatasetRefresh(refreshService),
		},
	}
}
