package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Resultados possíveis de uma consulta ao cache de cotações
const (
	OutcomeFresh    = "fresh"
	OutcomeFetched  = "fetched"
	OutcomeStale    = "stale"
	OutcomeFallback = "fallback"
)

const (
	CalculatorFBA    = "fba"
	CalculatorAmazon = "amazon"
	CalculatorUnits  = "units"
	CalculatorRates  = "currency"
	CalculatorText   = "content"
)

// Recorder registra os contadores da aplicação
type Recorder interface {
	ExchangeRateLookup(outcome string)
	Calculation(calculator string)
}

type Metrics struct {
	exchangeRateLookups *prometheus.CounterVec
	calculations        *prometheus.CounterVec
}

// New cria os contadores e os registra em reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		exchangeRateLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "seller_calc",
			Name:      "exchange_rate_lookups_total",
			Help:      "Exchange rate cache lookups by outcome.",
		}, []string{"outcome"}),
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "seller_calc",
			Name:      "calculations_total",
			Help:      "Calculations served by calculator.",
		}, []string{"calculator"}),
	}

	if reg != nil {
		reg.MustRegister(m.exchangeRateLookups, m.calculations)
	}

	return m
}

func (m *Metrics) ExchangeRateLookup(outcome string) {
	m.exchangeRateLookups.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Calculation(calculator string) {
	m.calculations.WithLabelValues(calculator).Inc()
}

// ExchangeRateLookups expõe o vetor para inspeção em testes
func (m *Metrics) ExchangeRateLookups() *prometheus.CounterVec {
	return m.exchangeRateLookups
}

func (m *Metrics) Calculations() *prometheus.CounterVec {
	return m.calculations
}

// Nop descarta todos os registros
type Nop struct{}

func (Nop) ExchangeRateLookup(string) {}
func (Nop) Calculation(string)        {}
