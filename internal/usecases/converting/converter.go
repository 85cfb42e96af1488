package converting

import (
	"errors"
	"math"

	"github.com/vfg2006/seller-calc-api/internal/domain"
)

var ErrUnknownFamily = errors.New("unknown unit family")

// Convert converte value de fromUnit para todas as unidades da tabela.
// Retorna um mapa vazio quando fromUnit não pertence à tabela ou tem fator não positivo.
func Convert(value float64, fromUnit string, table domain.ConversionTable) map[string]float64 {
	results := make(map[string]float64)

	factor, ok := table[fromUnit]
	if !ok || factor <= 0 {
		return results
	}

	baseValue := value * factor
	for unit, unitFactor := range table {
		if unitFactor <= 0 {
			continue
		}
		converted := baseValue / unitFactor
		if math.IsNaN(converted) || math.IsInf(converted, 0) {
			continue
		}
		results[unit] = converted
	}

	return results
}

// ConvertInFamily resolve a tabela pelo nome da família e converte o valor
func ConvertInFamily(name domain.UnitFamily, value float64, fromUnit string) (*domain.UnitConversionResponse, error) {
	table, ok := Table(name)
	if !ok {
		return nil, ErrUnknownFamily
	}

	return &domain.UnitConversionResponse{
		Family:      name,
		Value:       value,
		FromUnit:    fromUnit,
		Conversions: Convert(value, fromUnit, table),
	}, nil
}
