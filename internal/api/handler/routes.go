package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/seller-calc-api/internal/api/handler/router"
	"github.com/vfg2006/seller-calc-api/internal/usecases/exchanging"
	"github.com/vfg2006/seller-calc-api/pkg/metrics"
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

func Units(recorder metrics.Recorder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/units/:family",
			Method:  http.MethodGet,
			Handler: GetUnitFamily(),
		},
		{
			Path:    "/v1/units/:family/convert",
			Method:  http.MethodGet,
			Handler: ConvertUnits(recorder),
		},
	}
}

func Calculators(recorder metrics.Recorder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/calculators/fba",
			Method:  http.MethodPost,
			Handler: CalculateFBA(recorder),
		},
		{
			Path:    "/v1/calculators/amazon",
			Method:  http.MethodPost,
			Handler: CalculateAmazon(recorder),
		},
	}
}

func ExchangeRates(cache exchanging.Cache, recorder metrics.Recorder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/exchange-rates",
			Method:  http.MethodGet,
			Handler: GetExchangeRates(cache),
		},
		{
			Path:    "/v1/exchange-rates/refresh",
			Method:  http.MethodPost,
			Handler: RefreshExchangeRates(cache),
		},
		{
			Path:    "/v1/exchange-rates/convert",
			Method:  http.MethodGet,
			Handler: ConvertCurrency(cache, recorder),
		},
		{
			Path:    "/v1/exchange-rates/status",
			Method:  http.MethodGet,
			Handler: GetExchangeRateStatus(cache),
		},
	}
}

func Content(recorder metrics.Recorder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/content/analyze",
			Method:  http.MethodPost,
			Handler: AnalyzeContent(recorder),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/run/:type",
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

func Metrics(gatherer prometheus.Gatherer) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}),
		},
	}
}
