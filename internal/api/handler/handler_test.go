package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/seller-calc-api/internal/api/handler/router"
	"github.com/vfg2006/seller-calc-api/internal/domain"
	"github.com/vfg2006/seller-calc-api/internal/usecases/exchanging/mocks"
	"github.com/vfg2006/seller-calc-api/pkg/apiErrors"
	"github.com/vfg2006/seller-calc-api/pkg/log"
	"github.com/vfg2006/seller-calc-api/pkg/metrics"
	"go.uber.org/mock/gomock"
)

func init() {
	log.SetupTestLogger()
}

var fetchedAt = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func cnySnapshot() *domain.ExchangeRateSnapshot {
	return &domain.ExchangeRateSnapshot{
		ID:           "abc123defg",
		BaseCurrency: "CNY",
		Rates:        map[string]float64{"USD": 0.14, "EUR": 0.128},
		FetchedAt:    fetchedAt,
	}
}

func serve(t *testing.T, routes []router.Route, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	rt := router.New(router.WithJSONErrors(), router.WithRoutes(routes...))
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(method, target, reader))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealthcheck(t *testing.T) {
	rec := serve(t, Healthcheck(), http.MethodGet, "/healthcheck", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]string](t, rec)
	assert.Equal(t, "ok", body["status"])
}

func TestRouter_UnknownRoute(t *testing.T) {
	rec := serve(t, Healthcheck(), http.MethodGet, "/v1/nothing", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrNotFound, decode[apiErrors.APIError](t, rec).Code)
}

func TestUnits(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "lista unidades de comprimento",
			target: "/v1/units/length",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, rec.Code)
				body := decode[domain.UnitFamilyResponse](t, rec)
				assert.Equal(t, "cm", body.DefaultUnit)
				assert.Contains(t, body.Units, "in")
			},
		},
		{
			name:   "converte polegadas",
			target: "/v1/units/length/convert?value=1&unit=in",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, rec.Code)
				body := decode[domain.UnitConversionResponse](t, rec)
				assert.Equal(t, "in", body.FromUnit)
				assert.InDelta(t, 2.54, body.Conversions["cm"], 1e-9)
			},
		},
		{
			name:   "unidade padrão quando omitida",
			target: "/v1/units/weight/convert?value=1000",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, rec.Code)
				body := decode[domain.UnitConversionResponse](t, rec)
				assert.Equal(t, "g", body.FromUnit)
				assert.InDelta(t, 1.0, body.Conversions["kg"], 1e-9)
			},
		},
		{
			name:   "valor não numérico gera conversões vazias",
			target: "/v1/units/length/convert?value=abc&unit=cm",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, rec.Code)
				assert.Empty(t, decode[domain.UnitConversionResponse](t, rec).Conversions)
			},
		},
		{
			name:   "valor com unidade não é numérico",
			target: "/v1/units/weight/convert?value=12%20lb&unit=lb",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, rec.Code)
				assert.Empty(t, decode[domain.UnitConversionResponse](t, rec).Conversions)
			},
		},
		{
			name:   "família desconhecida",
			target: "/v1/units/volume/convert?value=1&unit=l",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNotFound, rec.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, Units(metrics.Nop{}), http.MethodGet, tt.target, "")
			tt.validate(t, rec)
		})
	}
}

func TestCalculateFBA(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	rec := serve(t, Calculators(m), http.MethodPost, "/v1/calculators/fba",
		`{"product_cost": "10", "selling_price": 30, "category": "electronics", "advertising_costs": 20}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[domain.FBACalculationResponse](t, rec)
	require.NotNil(t, body.Calculation)
	assert.Equal(t, 5.9, body.Calculation.TotalFees)
	assert.Equal(t, 14.1, body.Calculation.GrossProfit)
	assert.Equal(t, 47.0, body.Calculation.ProfitMargin)
	assert.Equal(t, 22.71, body.Calculation.RecommendedPrice)
	assert.Equal(t, domain.ProfitStatusProfitable, body.Calculation.ProfitStatus)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Calculations().WithLabelValues(metrics.CalculatorFBA)))
}

func TestCalculateAmazon(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "cenário com despesas",
			body: `{"product_cost": 10, "selling_price": "30", "category": "electronics",
				"advertising_costs": 3, "return_rate": "10", "return_processing_fee": 1, "miscellaneous_expenses": 0.5}`,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, rec.Code)
				body := decode[domain.CalculationResponse](t, rec)
				require.NotNil(t, body.Calculation)
				assert.Equal(t, 23.4, body.Calculation.TotalExpenses)
				assert.Equal(t, 6.6, body.Calculation.NetProfitAfterExpenses)
				assert.Equal(t, 85.0, body.Calculation.ProfitabilityScore)
				assert.Equal(t, domain.RiskLevelMedium, body.Calculation.RiskLevel)
			},
		},
		{
			name: "texto após o número é ignorado",
			body: `{"product_cost": "10", "selling_price": "30usd", "category": "electronics"}`,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, rec.Code)
				body := decode[domain.CalculationResponse](t, rec)
				require.NotNil(t, body.Calculation)
				assert.Equal(t, 30.0, body.Calculation.SellingPrice)
				assert.Equal(t, 14.1, body.Calculation.GrossProfit)
			},
		},
		{
			name: "entrada insuficiente",
			body: `{"product_cost": "", "selling_price": "abc"}`,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, rec.Code)
				assert.JSONEq(t, `{"calculation": null}`, rec.Body.String())
			},
		},
		{
			name: "json inválido",
			body: `{"product_cost":`,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrInvalidFormat, decode[apiErrors.APIError](t, rec).Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, Calculators(metrics.Nop{}), http.MethodPost, "/v1/calculators/amazon", tt.body)
			tt.validate(t, rec)
		})
	}
}

func TestAnalyzeContent(t *testing.T) {
	rec := serve(t, Content(metrics.Nop{}), http.MethodPost, "/v1/content/analyze",
		`{"title": "`+strings.Repeat("a", 81)+`", "bullet_points": ["curto"]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	report := decode[domain.ContentReport](t, rec)
	assert.Equal(t, domain.ContentStatusOver, report.Title.Status)
	assert.Equal(t, -1, report.Title.Remaining)
	require.Len(t, report.BulletPoints, 1)
	assert.Equal(t, domain.ContentStatusOK, report.BulletPoints[0].Status)
	assert.False(t, report.WithinLimits)
}

func TestExchangeRates(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		target   string
		setup    func(cache *mocks.MockCache)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "snapshot atual",
			method: http.MethodGet,
			target: "/v1/exchange-rates",
			setup: func(cache *mocks.MockCache) {
				cache.EXPECT().Get(gomock.Any()).Return(cnySnapshot())
				cache.EXPECT().Currencies().Return([]string{"CNY", "USD", "EUR"})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, rec.Code)
				body := decode[domain.ExchangeRatesResponse](t, rec)
				require.NotNil(t, body.Snapshot)
				assert.Equal(t, "abc123defg", body.Snapshot.ID)
				assert.Equal(t, []string{"CNY", "USD", "EUR"}, body.Currencies)
			},
		},
		{
			name:   "refresh força nova busca",
			method: http.MethodPost,
			target: "/v1/exchange-rates/refresh",
			setup: func(cache *mocks.MockCache) {
				snapshot := cnySnapshot()
				snapshot.Fallback = true
				cache.EXPECT().Refresh(gomock.Any()).Return(snapshot)
				cache.EXPECT().Currencies().Return([]string{"CNY"})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, rec.Code)
				assert.True(t, decode[domain.ExchangeRatesResponse](t, rec).Snapshot.Fallback)
			},
		},
		{
			name:   "conversão entre moedas",
			method: http.MethodGet,
			target: "/v1/exchange-rates/convert?amount=100&from=cny&to=USD",
			setup: func(cache *mocks.MockCache) {
				cache.EXPECT().Get(gomock.Any()).Return(cnySnapshot())
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, rec.Code)
				body := decode[domain.CurrencyConversionResponse](t, rec)
				assert.Equal(t, "CNY", body.From)
				assert.InDelta(t, 14.0, body.Converted, 1e-9)
			},
		},
		{
			name:   "moeda não suportada",
			method: http.MethodGet,
			target: "/v1/exchange-rates/convert?amount=100&from=CNY&to=BRL",
			setup: func(cache *mocks.MockCache) {
				cache.EXPECT().Get(gomock.Any()).Return(cnySnapshot())
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrUnsupportedCurrency, decode[apiErrors.APIError](t, rec).Code)
			},
		},
		{
			name:   "valor inválido",
			method: http.MethodGet,
			target: "/v1/exchange-rates/convert?amount=abc&from=CNY&to=USD",
			setup:  func(cache *mocks.MockCache) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrInvalidRequest, decode[apiErrors.APIError](t, rec).Code)
			},
		},
		{
			name:   "moedas ausentes",
			method: http.MethodGet,
			target: "/v1/exchange-rates/convert?amount=1",
			setup:  func(cache *mocks.MockCache) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrMissingRequiredData, decode[apiErrors.APIError](t, rec).Code)
			},
		},
		{
			name:   "status do cache",
			method: http.MethodGet,
			target: "/v1/exchange-rates/status",
			setup: func(cache *mocks.MockCache) {
				cache.EXPECT().Status(gomock.Any()).Return(domain.ExchangeRateStatus{
					State:        domain.CacheStateStale,
					BaseCurrency: "CNY",
					LastError:    "network down",
				})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, rec.Code)
				body := decode[domain.ExchangeRateStatus](t, rec)
				assert.Equal(t, domain.CacheStateStale, body.State)
				assert.Equal(t, "network down", body.LastError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cache := mocks.NewMockCache(ctrl)
			tt.setup(cache)

			rec := serve(t, ExchangeRates(cache, metrics.Nop{}), tt.method, tt.target, "")
			tt.validate(t, rec)
		})
	}
}

type stubCronJob struct {
	accept    bool
	triggered int
}

func (s *stubCronJob) TriggerManualSync() bool {
	s.triggered++
	return s.accept
}

func (s *stubCronJob) GetStatus() map[string]any {
	return map[string]any{"sync_enabled": true}
}

func TestCronJobs(t *testing.T) {
	tests := []struct {
		name     string
		job      *stubCronJob
		method   string
		target   string
		validate func(t *testing.T, job *stubCronJob, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "dispara atualização",
			job:    &stubCronJob{accept: true},
			method: http.MethodPost,
			target: "/v1/cron/run/exchange-rates",
			validate: func(t *testing.T, job *stubCronJob, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusAccepted, rec.Code)
				assert.Equal(t, 1, job.triggered)
			},
		},
		{
			name:   "atualização em andamento",
			job:    &stubCronJob{accept: false},
			method: http.MethodPost,
			target: "/v1/cron/run/exchange-rates",
			validate: func(t *testing.T, job *stubCronJob, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusConflict, rec.Code)
				assert.Equal(t, apiErrors.ErrConflict, decode[apiErrors.APIError](t, rec).Code)
			},
		},
		{
			name:   "tipo desconhecido",
			job:    &stubCronJob{accept: true},
			method: http.MethodPost,
			target: "/v1/cron/run/meta",
			validate: func(t *testing.T, job *stubCronJob, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Zero(t, job.triggered)
			},
		},
		{
			name:   "status",
			job:    &stubCronJob{},
			method: http.MethodGet,
			target: "/v1/cron/status",
			validate: func(t *testing.T, job *stubCronJob, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, rec.Code)
				assert.JSONEq(t, `{"exchange-rates": {"sync_enabled": true}}`, rec.Body.String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := CronJobServices{ExchangeRateRefreshService: tt.job}
			rec := serve(t, CronJobs(services), tt.method, tt.target, "")
			tt.validate(t, tt.job, rec)
		})
	}
}

func TestMetricsRoute(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	m.Calculation(metrics.CalculatorUnits)

	rec := serve(t, Metrics(reg), http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `seller_calc_calculations_total{calculator="units"} 1`)
}
