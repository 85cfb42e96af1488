package domain

// ConversionTable mapeia o símbolo da unidade para o fator relativo à unidade base
// (metro para comprimento, grama para peso). A unidade base vale 1.
type ConversionTable map[string]float64

type UnitFamily string

const (
	UnitFamilyLength UnitFamily = "length"
	UnitFamilyWeight UnitFamily = "weight"
)

type UnitConversionResponse struct {
	Family      UnitFamily         `json:"family"`
	Value       float64            `json:"value"`
	FromUnit    string             `json:"from_unit"`
	Conversions map[string]float64 `json:"conversions"`
}

type UnitFamilyResponse struct {
	Family      UnitFamily `json:"family"`
	Units       []string   `json:"units"`
	DefaultUnit string     `json:"default_unit"`
}
