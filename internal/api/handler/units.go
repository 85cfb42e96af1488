package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/seller-calc-api/internal/domain"
	"github.com/vfg2006/seller-calc-api/internal/usecases/calculating"
	"github.com/vfg2006/seller-calc-api/internal/usecases/converting"
	"github.com/vfg2006/seller-calc-api/pkg/apiErrors"
	"github.com/vfg2006/seller-calc-api/pkg/log"
	"github.com/vfg2006/seller-calc-api/pkg/metrics"
)

func GetUnitFamily() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		family := domain.UnitFamily(httprouter.ParamsFromContext(r.Context()).ByName("family"))

		units := converting.Units(family)
		if units == nil {
			logger.WithField("family", family).Warn("units: unknown unit family")
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Família de unidades não encontrada", map[string]string{"family": string(family)})
			return
		}

		writeJSON(w, logger, domain.UnitFamilyResponse{
			Family:      family,
			Units:       units,
			DefaultUnit: converting.DefaultUnit(family),
		})
	})
}

// ConvertUnits converte o valor informado para todas as unidades da família.
// Valor não numérico ou unidade desconhecida resultam em conversões vazias.
func ConvertUnits(recorder metrics.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		family := domain.UnitFamily(httprouter.ParamsFromContext(r.Context()).ByName("family"))
		rawValue := r.URL.Query().Get("value")
		unit := strings.TrimSpace(r.URL.Query().Get("unit"))
		if unit == "" {
			unit = converting.DefaultUnit(family)
		}

		logger.WithFields(log.Fields{
			"family": family,
			"value":  rawValue,
			"unit":   unit,
		}).Debug("units: converting value")

		value, numeric := calculating.ParseNumeric(rawValue)

		response, err := converting.ConvertInFamily(family, value, unit)
		if err != nil {
			if errors.Is(err, converting.ErrUnknownFamily) {
				logger.WithField("family", family).Warn("units: unknown unit family")
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Família de unidades não encontrada", map[string]string{"family": string(family)})
				return
			}

			logger.WithError(err).Error("units: failed to convert value")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		if !numeric {
			response.Conversions = map[string]float64{}
		}

		recorder.Calculation(metrics.CalculatorUnits)
		writeJSON(w, logger, response)
	})
}
