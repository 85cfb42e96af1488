package calculating

import "github.com/vfg2006/seller-calc-api/internal/domain"

const (
	DefaultReferralRate = 0.15

	// Valores usados quando peso ou dimensões estão incompletos
	DefaultFulfillmentFee = 3.00
	DefaultStorageFee     = 0.50

	cubicInchesPerCubicFoot = 1728.0
	dimensionalWeightFactor = 139.0
	storageFeePerCubicFoot  = 0.75
)

// ReferralRates é a comissão da Amazon por categoria, em fração do preço
var ReferralRates = map[domain.Category]float64{
	domain.CategoryElectronics: 0.08,
	domain.CategoryClothing:    0.17,
	domain.CategoryBooks:       0.15,
	domain.CategoryHomeGarden:  0.15,
	domain.CategoryToys:        0.15,
	domain.CategorySports:      0.15,
	domain.CategoryBeauty:      0.15,
	domain.CategoryAutomotive:  0.12,
}

// FulfillmentTier cobra Base + (peso - From) * PerPound até UpTo libras.
// UpTo zero marca a última faixa, sem limite.
type FulfillmentTier struct {
	UpTo     float64
	Base     float64
	From     float64
	PerPound float64
}

var FulfillmentTiers = []FulfillmentTier{
	{UpTo: 1, Base: 2.50},
	{UpTo: 2, Base: 3.48},
	{UpTo: 3, Base: 4.09},
	{UpTo: 12, Base: 4.75, From: 3, PerPound: 0.38},
	{UpTo: 70, Base: 8.17, From: 12, PerPound: 0.42},
	{Base: 32.53, From: 70, PerPound: 0.83},
}

// ReferralRate retorna a comissão da categoria ou a comissão padrão
func ReferralRate(category domain.Category) float64 {
	if rate, ok := ReferralRates[category]; ok {
		return rate
	}
	return DefaultReferralRate
}

func ReferralFee(category domain.Category, price float64) float64 {
	return price * ReferralRate(category)
}

// CubicFeet converte dimensões em polegadas para pés cúbicos
func CubicFeet(length, width, height float64) float64 {
	return length * width * height / cubicInchesPerCubicFoot
}

// BillableWeight é o maior valor entre o peso real e o peso dimensional
func BillableWeight(weight, length, width, height float64) float64 {
	dimensionalWeight := CubicFeet(length, width, height) * dimensionalWeightFactor
	return max(weight, dimensionalWeight)
}

// FulfillmentFee aplica a tabela de faixas sobre o peso faturável
func FulfillmentFee(weight, length, width, height float64) float64 {
	billable := BillableWeight(weight, length, width, height)

	for _, tier := range FulfillmentTiers {
		if tier.UpTo == 0 || billable <= tier.UpTo {
			return tier.Base + (billable-tier.From)*tier.PerPound
		}
	}

	return 0
}

func StorageFee(length, width, height float64) float64 {
	return CubicFeet(length, width, height) * storageFeePerCubicFoot
}

func hasDimensions(in domain.CalculationInput) bool {
	return in.Length > 0 && in.Width > 0 && in.Height > 0
}

// fulfillmentFeeFor substitui a taxa padrão quando peso ou dimensões faltam
func fulfillmentFeeFor(in domain.CalculationInput) float64 {
	if in.Weight <= 0 || !hasDimensions(in) {
		return DefaultFulfillmentFee
	}
	return FulfillmentFee(in.Weight, in.Length, in.Width, in.Height)
}

func storageFeeFor(in domain.CalculationInput) float64 {
	if !hasDimensions(in) {
		return DefaultStorageFee
	}
	return StorageFee(in.Length, in.Width, in.Height)
}
