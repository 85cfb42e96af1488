package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/vfg2006/seller-calc-api/internal/domain"
	"github.com/vfg2006/seller-calc-api/internal/usecases/calculating"
	"github.com/vfg2006/seller-calc-api/internal/usecases/exchanging"
	"github.com/vfg2006/seller-calc-api/pkg/apiErrors"
	"github.com/vfg2006/seller-calc-api/pkg/log"
	"github.com/vfg2006/seller-calc-api/pkg/metrics"
)

func GetExchangeRates(cache exchanging.Cache) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		snapshot := cache.Get(r.Context())
		logger.WithFields(log.Fields{
			"snapshot_id": snapshot.ID,
			"fallback":    snapshot.Fallback,
		}).Debug("exchange rates: serving snapshot")

		writeJSON(w, logger, domain.ExchangeRatesResponse{
			Snapshot:   snapshot,
			Currencies: cache.Currencies(),
		})
	})
}

// RefreshExchangeRates descarta o snapshot atual e busca novas cotações de forma síncrona
func RefreshExchangeRates(cache exchanging.Cache) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		snapshot := cache.Refresh(r.Context())
		if snapshot.Fallback {
			logger.Warn("exchange rates: refresh failed, serving fallback rates")
		} else {
			logger.WithField("snapshot_id", snapshot.ID).Info("exchange rates: refreshed")
		}

		writeJSON(w, logger, domain.ExchangeRatesResponse{
			Snapshot:   snapshot,
			Currencies: cache.Currencies(),
		})
	})
}

func GetExchangeRateStatus(cache exchanging.Cache) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		writeJSON(w, logger, cache.Status(r.Context()))
	})
}

func ConvertCurrency(cache exchanging.Cache, recorder metrics.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query := r.URL.Query()
		from := strings.ToUpper(strings.TrimSpace(query.Get("from")))
		to := strings.ToUpper(strings.TrimSpace(query.Get("to")))
		if from == "" || to == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetros from e to são obrigatórios", nil)
			return
		}

		amount, ok := calculating.ParseNumeric(query.Get("amount"))
		if !ok {
			logger.WithField("amount", query.Get("amount")).Warn("exchange rates: invalid amount parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Valor inválido", map[string]string{"amount": query.Get("amount")})
			return
		}

		quote, err := exchanging.Quote(amount, from, to, cache.Get(r.Context()))
		if err != nil {
			if errors.Is(err, exchanging.ErrUnsupportedCurrency) {
				logger.WithFields(log.Fields{
					"from":  from,
					"to":    to,
					"error": err.Error(),
				}).Warn("exchange rates: unsupported currency")
				apiErrors.WriteError(w, apiErrors.ErrUnsupportedCurrency, err.Error(), nil)
				return
			}

			logger.WithError(err).Error("exchange rates: failed to convert amount")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		recorder.Calculation(metrics.CalculatorRates)
		writeJSON(w, logger, quote)
	})
}
