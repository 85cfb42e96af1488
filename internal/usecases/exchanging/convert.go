package exchanging

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/seller-calc-api/internal/domain"
	"github.com/vfg2006/seller-calc-api/pkg/utils"
)

var ErrUnsupportedCurrency = errors.New("unsupported currency")

// QuoteRatePlaces é a precisão da taxa exibida; taxas abaixo de SmallRate usam
// SmallQuoteRatePlaces para não virarem zero
const (
	QuoteRatePlaces      = 4
	SmallQuoteRatePlaces = 6
	SmallRate            = 0.01
)

// Convert converte amount de from para to usando o snapshot. A moeda base vale 1.
// Retorna 0 quando alguma das moedas não tem cotação.
func Convert(amount float64, from, to string, snapshot *domain.ExchangeRateSnapshot) float64 {
	fromRate, okFrom := snapshot.Rate(from)
	toRate, okTo := snapshot.Rate(to)
	if !okFrom || !okTo || fromRate == 0 || toRate == 0 {
		return 0
	}

	return decimal.NewFromFloat(amount).
		Div(decimal.NewFromFloat(fromRate)).
		Mul(decimal.NewFromFloat(toRate)).
		InexactFloat64()
}

// Quote converte e descreve a conversão, falhando quando a moeda não tem cotação
func Quote(amount float64, from, to string, snapshot *domain.ExchangeRateSnapshot) (*domain.CurrencyConversionResponse, error) {
	fromRate, okFrom := snapshot.Rate(from)
	if !okFrom || fromRate == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCurrency, from)
	}
	toRate, okTo := snapshot.Rate(to)
	if !okTo || toRate == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCurrency, to)
	}

	rate := decimal.NewFromFloat(toRate).Div(decimal.NewFromFloat(fromRate)).InexactFloat64()
	places := QuoteRatePlaces
	if rate < SmallRate {
		places = SmallQuoteRatePlaces
	}

	return &domain.CurrencyConversionResponse{
		Amount:     amount,
		From:       from,
		To:         to,
		Rate:       utils.RoundWithPlaces(rate, places),
		Converted:  Convert(amount, from, to, snapshot),
		SnapshotID: snapshot.ID,
		FetchedAt:  snapshot.FetchedAt,
		Fallback:   snapshot.Fallback,
	}, nil
}
