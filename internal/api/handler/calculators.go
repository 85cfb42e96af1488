package handler

import (
	"net/http"

	"github.com/vfg2006/seller-calc-api/internal/domain"
	"github.com/vfg2006/seller-calc-api/internal/usecases/calculating"
	"github.com/vfg2006/seller-calc-api/pkg/apiErrors"
	"github.com/vfg2006/seller-calc-api/pkg/log"
	"github.com/vfg2006/seller-calc-api/pkg/metrics"
)

func decodeCalculationInput(w http.ResponseWriter, r *http.Request, logger log.Logger) (domain.CalculationInput, bool) {
	var raw calculating.RawCalculationInput
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		logger.WithError(err).Warn("calculator: invalid request body")
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", nil)
		return domain.CalculationInput{}, false
	}

	return raw.ToInput(), true
}

// CalculateFBA responde a calculadora simples. Sem custo e preço válidos a resposta
// traz calculation nulo.
func CalculateFBA(recorder metrics.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		input, ok := decodeCalculationInput(w, r, logger)
		if !ok {
			return
		}

		result := calculating.ComputeFBA(input)
		if result == nil {
			logger.Debug("calculator: insufficient input for fba calculation")
		} else {
			recorder.Calculation(metrics.CalculatorFBA)
			logger.WithFields(log.Fields{
				"category":      input.Category,
				"profit_margin": result.ProfitMargin,
				"profit_status": result.ProfitStatus,
			}).Info("calculator: fba calculation completed")
		}

		writeJSON(w, logger, domain.FBACalculationResponse{Calculation: calculating.RoundedFBA(result)})
	})
}

func CalculateAmazon(recorder metrics.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		input, ok := decodeCalculationInput(w, r, logger)
		if !ok {
			return
		}

		result := calculating.Compute(input)
		if result == nil {
			logger.Debug("calculator: insufficient input for amazon calculation")
		} else {
			recorder.Calculation(metrics.CalculatorAmazon)
			logger.WithFields(log.Fields{
				"category":            input.Category,
				"profitability_score": result.ProfitabilityScore,
				"risk_level":          result.RiskLevel,
			}).Info("calculator: amazon calculation completed")
		}

		writeJSON(w, logger, domain.CalculationResponse{Calculation: calculating.Rounded(result)})
	})
}
