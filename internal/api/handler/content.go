package handler

import (
	"net/http"

	"github.com/vfg2006/seller-calc-api/internal/domain"
	"github.com/vfg2006/seller-calc-api/internal/usecases/analyzing"
	"github.com/vfg2006/seller-calc-api/pkg/apiErrors"
	"github.com/vfg2006/seller-calc-api/pkg/log"
	"github.com/vfg2006/seller-calc-api/pkg/metrics"
)

func AnalyzeContent(recorder metrics.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var listing domain.Listing
		if err := json.NewDecoder(r.Body).Decode(&listing); err != nil {
			logger.WithError(err).Warn("content: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", nil)
			return
		}

		report := analyzing.Analyze(listing)
		recorder.Calculation(metrics.CalculatorText)

		if !report.WithinLimits {
			logger.WithField("title_length", report.Title.Current).Info("content: listing exceeds field limits")
		}

		writeJSON(w, logger, report)
	})
}
