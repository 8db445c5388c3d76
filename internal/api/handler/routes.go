package handler

import (
	"net/http"

	"github.com/vfg2006/metrics-scraper-api/internal/api/handler/router"
	"github.com/vfg2006/metrics-scraper-api/internal/usecases/collecting"
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

func MidiaMax(service collecting.Collector) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/midiamax/accounts/:id/fetch",
			Method:  http.MethodPost,
			Handler: FetchAccountMetrics(service),
		},
		{
			Path:    "/v1/midiamax/accounts/:id/test-login",
			Method:  http.MethodPost,
			Handler: TestAccountLogin(service),
		},
		{
			Path:    "/v1/midiamax/accounts/:id/results",
			Method:  http.MethodGet,
			Handler: GetExtractionResults(service),
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
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
