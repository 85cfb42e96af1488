package converting

import "github.com/vfg2006/seller-calc-api/internal/domain"

// Fatores de conversão para a unidade base (metro para comprimento, grama para peso)
var (
	LengthTable = domain.ConversionTable{
		"mm": 0.001,
		"cm": 0.01,
		"m":  1,
		"in": 0.0254,
		"ft": 0.3048,
		"yd": 0.9144,
	}

	WeightTable = domain.ConversionTable{
		"mg":  0.001,
		"g":   1,
		"kg":  1000,
		"oz":  28.3495,
		"lb":  453.592,
		"ton": 1000000,
	}
)

type family struct {
	table       domain.ConversionTable
	units       []string
	defaultUnit string
}

var families = map[domain.UnitFamily]family{
	domain.UnitFamilyLength: {
		table:       LengthTable,
		units:       []string{"mm", "cm", "m", "in", "ft", "yd"},
		defaultUnit: "cm",
	},
	domain.UnitFamilyWeight: {
		table:       WeightTable,
		units:       []string{"mg", "g", "kg", "oz", "lb", "ton"},
		defaultUnit: "g",
	},
}

// Table retorna a tabela de conversão da família
func Table(name domain.UnitFamily) (domain.ConversionTable, bool) {
	f, ok := families[name]
	return f.table, ok
}

// Units retorna as unidades da família na ordem de exibição
func Units(name domain.UnitFamily) []string {
	f, ok := families[name]
	if !ok {
		return nil
	}
	return append([]string(nil), f.units...)
}

func DefaultUnit(name domain.UnitFamily) string {
	return families[name].defaultUnit
}
