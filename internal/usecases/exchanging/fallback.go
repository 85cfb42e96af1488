package exchanging

import (
	"time"

	"github.com/vfg2006/seller-calc-api/internal/domain"
)

const (
	FallbackBaseCurrency = "CNY"
	FallbackSnapshotID   = "fallback"
)

// FallbackRates são cotações aproximadas em relação ao CNY, usadas apenas quando
// nenhuma cotação do provedor está disponível
var FallbackRates = map[string]float64{
	"USD": 0.1391,
	"EUR": 0.1287,
	"GBP": 0.1103,
	"JPY": 20.19,
	"KRW": 191.0,
	"HKD": 1.092,
	"SGD": 0.1789,
	"AUD": 0.2139,
	"CAD": 0.1904,
}

// FallbackSnapshot monta a tabela fixa na moeda base pedida. Quando a base não está
// na tabela, o snapshot continua cotado em CNY.
func FallbackSnapshot(base string, codes []string, now time.Time) *domain.ExchangeRateSnapshot {
	table := make(map[string]float64, len(FallbackRates)+1)
	for code, rate := range FallbackRates {
		table[code] = rate
	}
	table[FallbackBaseCurrency] = 1

	rates, ok := domain.CrossNormalize(table, base, codes)
	if !ok {
		base = FallbackBaseCurrency
		rates, _ = domain.CrossNormalize(table, base, codes)
	}

	return &domain.ExchangeRateSnapshot{
		ID:                FallbackSnapshotID,
		BaseCurrency:      base,
		Rates:             rates,
		FetchedAt:         now,
		ProviderUpdatedAt: now,
		Fallback:          true,
	}
}
