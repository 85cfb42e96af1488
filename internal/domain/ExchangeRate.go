package domain

import (
	"time"
)

type CacheState string

const (
	CacheStateEmpty CacheState = "empty"
	CacheStateFresh CacheState = "fresh"
	CacheStateStale CacheState = "stale"
)

// ExchangeRateSnapshot guarda as cotações relativas a uma moeda base.
// A moeda base não aparece em Rates e vale sempre 1.
type ExchangeRateSnapshot struct {
	ID                string             `json:"id" msgpack:"id"`
	BaseCurrency      string             `json:"base_currency" msgpack:"base_currency"`
	Rates             map[string]float64 `json:"rates" msgpack:"rates"`
	Names             map[string]string  `json:"names,omitempty" msgpack:"names"`
	FetchedAt         time.Time          `json:"fetched_at" msgpack:"fetched_at"`
	ProviderUpdatedAt time.Time          `json:"provider_updated_at" msgpack:"provider_updated_at"`
	Fallback          bool               `json:"fallback" msgpack:"fallback"`
}

// Rate retorna a cotação de um código, tratando a moeda base como 1
func (s *ExchangeRateSnapshot) Rate(code string) (float64, bool) {
	if s == nil {
		return 0, false
	}
	if code == s.BaseCurrency {
		return 1, true
	}
	rate, ok := s.Rates[code]
	return rate, ok
}

// Age retorna quanto tempo se passou desde a busca do snapshot
func (s *ExchangeRateSnapshot) Age(now time.Time) time.Duration {
	return now.Sub(s.FetchedAt)
}

// CrossNormalize converte cotações cotadas contra uma moeda para cotações cotadas contra
// newBase, dividindo cada valor pela cotação de newBase. A moeda base é omitida do resultado.
// Se codes não for vazio, apenas esses códigos são mantidos.
func CrossNormalize(rates map[string]float64, newBase string, codes []string) (map[string]float64, bool) {
	baseRate, ok := rates[newBase]
	if !ok || baseRate <= 0 {
		return nil, false
	}

	normalized := make(map[string]float64)
	if len(codes) == 0 {
		for code, rate := range rates {
			if code == newBase {
				continue
			}
			normalized[code] = rate / baseRate
		}
		return normalized, true
	}

	for _, code := range codes {
		if code == newBase {
			continue
		}
		if rate, exists := rates[code]; exists {
			normalized[code] = rate / baseRate
		}
	}
	return normalized, true
}

type ExchangeRateStatus struct {
	State             CacheState `json:"state"`
	BaseCurrency      string     `json:"base_currency"`
	SnapshotID        string     `json:"snapshot_id,omitempty"`
	FetchedAt         *time.Time `json:"fetched_at,omitempty"`
	ProviderUpdatedAt *time.Time `json:"provider_updated_at,omitempty"`
	AgeSeconds        float64    `json:"age_seconds"`
	TTLSeconds        float64    `json:"ttl_seconds"`
	LastAttemptAt     *time.Time `json:"last_attempt_at,omitempty"`
	LastError         string     `json:"last_error,omitempty"`
}

type CurrencyConversionResponse struct {
	Amount     float64   `json:"amount"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	Rate       float64   `json:"rate"`
	Converted  float64   `json:"converted"`
	SnapshotID string    `json:"snapshot_id"`
	FetchedAt  time.Time `json:"fetched_at"`
	Fallback   bool      `json:"fallback"`
}

type ExchangeRatesResponse struct {
	Snapshot   *ExchangeRateSnapshot `json:"snapshot"`
	Currencies []string              `json:"currencies"`
}
