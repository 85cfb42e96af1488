package calculating

import (
	"regexp"
	"strings"

	"github.com/spf13/cast"
	"github.com/vfg2006/seller-calc-api/internal/domain"
	"github.com/vfg2006/seller-calc-api/pkg/utils"
)

// ParseNumeric converte números e textos numéricos. Valores vazios, booleanos,
// não numéricos ou não finitos retornam ok falso.
func ParseNumeric(v any) (float64, bool) {
	switch value := v.(type) {
	case nil, bool:
		return 0, false
	case string:
		value = strings.TrimSpace(value)
		if value == "" {
			return 0, false
		}
		v = value
	}

	f, err := cast.ToFloat64E(v)
	if err != nil || !utils.IsFinite(f) {
		return 0, false
	}
	return f, true
}

// leadingNumber casa o maior prefixo decimal de um texto: sinal opcional, dígitos com
// ponto opcional e expoente opcional
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseLeadingNumeric lê o número no início do texto e ignora o que vier depois,
// então "30usd" vale 30 e "12 lb" vale 12. Outros tipos seguem ParseNumeric.
func ParseLeadingNumeric(v any) (float64, bool) {
	text, ok := v.(string)
	if !ok {
		return ParseNumeric(v)
	}

	prefix := leadingNumber.FindString(strings.TrimSpace(text))
	if prefix == "" {
		return 0, false
	}
	return ParseNumeric(prefix)
}

// ParseNumericOrZero aplica a política de entrada silenciosa das calculadoras: o
// prefixo numérico é aproveitado e o resto vira 0. Valores negativos são mantidos.
func ParseNumericOrZero(v any) float64 {
	f, _ := ParseLeadingNumeric(v)
	return f
}

// RawCalculationInput guarda os campos como digitados pelo usuário
type RawCalculationInput struct {
	ProductCost           any    `json:"product_cost"`
	SellingPrice          any    `json:"selling_price"`
	ShippingToAmazon      any    `json:"shipping_to_amazon"`
	Weight                any    `json:"weight"`
	Length                any    `json:"length"`
	Width                 any    `json:"width"`
	Height                any    `json:"height"`
	Category              string `json:"category"`
	AdvertisingCosts      any    `json:"advertising_costs"`
	ReturnRate            any    `json:"return_rate"`
	ReturnProcessingFee   any    `json:"return_processing_fee"`
	MiscellaneousExpenses any    `json:"miscellaneous_expenses"`
	LongTermStorageFee    any    `json:"long_term_storage_fee"`
	RemovalFee            any    `json:"removal_fee"`
	InventoryPlacementFee any    `json:"inventory_placement_fee"`
}

func (r RawCalculationInput) ToInput() domain.CalculationInput {
	return domain.CalculationInput{
		ProductCost:      ParseNumericOrZero(r.ProductCost),
		SellingPrice:     ParseNumericOrZero(r.SellingPrice),
		ShippingToAmazon: ParseNumericOrZero(r.ShippingToAmazon),
		Weight:           ParseNumericOrZero(r.Weight),
		Length:           ParseNumericOrZero(r.Length),
		Width:            ParseNumericOrZero(r.Width),
		Height:           ParseNumericOrZero(r.Height),
		Category:         domain.Category(strings.TrimSpace(r.Category)),
		Expenses: domain.ExtendedExpenses{
			AdvertisingCosts:      ParseNumericOrZero(r.AdvertisingCosts),
			ReturnRatePercent:     ParseNumericOrZero(r.ReturnRate),
			ReturnProcessingFee:   ParseNumericOrZero(r.ReturnProcessingFee),
			MiscellaneousExpenses: ParseNumericOrZero(r.MiscellaneousExpenses),
			LongTermStorageFee:    ParseNumericOrZero(r.LongTermStorageFee),
			RemovalFee:            ParseNumericOrZero(r.RemovalFee),
			InventoryPlacementFee: ParseNumericOrZero(r.InventoryPlacementFee),
		},
	}
}
