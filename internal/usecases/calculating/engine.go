package calculating

import (
	"github.com/vfg2006/seller-calc-api/internal/domain"
	"github.com/vfg2006/seller-calc-api/pkg/utils"
)

// Margem alvo usada no preço recomendado da calculadora FBA
const targetMarginDivisor = 0.7

// Compute calcula o resultado completo. Retorna nil quando custo ou preço não são
// positivos, o que indica entrada insuficiente e não um erro.
func Compute(in domain.CalculationInput) *domain.CalculationResult {
	if in.ProductCost <= 0 || in.SellingPrice <= 0 {
		return nil
	}

	price := in.SellingPrice
	exp := in.Expenses

	referralFee := ReferralFee(in.Category, price)
	fulfillmentFee := fulfillmentFeeFor(in)
	storageFee := storageFeeFor(in)
	totalAmazonFees := referralFee + fulfillmentFee + storageFee

	returnLosses := price*exp.ReturnRatePercent/100 + exp.ReturnProcessingFee

	totalExpenses := in.ProductCost + in.ShippingToAmazon + totalAmazonFees +
		exp.AdvertisingCosts + returnLosses + exp.MiscellaneousExpenses +
		exp.LongTermStorageFee + exp.RemovalFee + exp.InventoryPlacementFee

	grossProfit := price - (in.ProductCost + in.ShippingToAmazon + totalAmazonFees)
	netProfit := price - totalExpenses

	var margin, acos float64
	if price > 0 {
		margin = netProfit / price * 100
		acos = exp.AdvertisingCosts / price * 100
	}
	roi := netProfit / in.ProductCost * 100

	return &domain.CalculationResult{
		ProductCost:      in.ProductCost,
		SellingPrice:     price,
		ShippingToAmazon: in.ShippingToAmazon,
		Category:         in.Category,

		ReferralFee:    referralFee,
		FulfillmentFee: fulfillmentFee,
		StorageFee:     storageFee,

		AdvertisingCosts:      exp.AdvertisingCosts,
		ReturnRate:            exp.ReturnRatePercent,
		ReturnProcessingFee:   exp.ReturnProcessingFee,
		MiscellaneousExpenses: exp.MiscellaneousExpenses,
		LongTermStorageFee:    exp.LongTermStorageFee,
		RemovalFee:            exp.RemovalFee,
		InventoryPlacementFee: exp.InventoryPlacementFee,

		TotalAmazonFees:        totalAmazonFees,
		TotalAdvertisingCost:   exp.AdvertisingCosts,
		ReturnLosses:           returnLosses,
		TotalExpenses:          totalExpenses,
		GrossProfit:            grossProfit,
		NetProfitAfterExpenses: netProfit,
		EffectiveProfitMargin:  margin,
		AdvertisingCostOfSales: acos,
		ROI:                    roi,

		ProfitabilityScore: ProfitabilityScore(margin, acos, exp.ReturnRatePercent),
		RiskLevel:          Risk(margin, acos, exp.ReturnRatePercent),
		ProfitStatus:       Status(margin),
	}
}

// ComputeFBA calcula a projeção FBA ignorando as despesas estendidas
func ComputeFBA(in domain.CalculationInput) *domain.FBACalculation {
	in.Expenses = domain.ExtendedExpenses{}

	result := Compute(in)
	if result == nil {
		return nil
	}

	fba := FBA(result)
	return &fba
}

// FBA projeta o resultado completo na calculadora simples, onde a margem considera
// apenas custo, frete e taxas da Amazon
func FBA(r *domain.CalculationResult) domain.FBACalculation {
	totalCosts := r.ProductCost + r.ShippingToAmazon + r.TotalAmazonFees
	grossProfit := r.SellingPrice - totalCosts

	var margin float64
	if r.SellingPrice > 0 {
		margin = grossProfit / r.SellingPrice * 100
	}

	var roi float64
	if r.ProductCost > 0 {
		roi = grossProfit / r.ProductCost * 100
	}

	return domain.FBACalculation{
		ProductCost:      r.ProductCost,
		SellingPrice:     r.SellingPrice,
		ShippingToAmazon: r.ShippingToAmazon,
		ReferralFee:      r.ReferralFee,
		FulfillmentFee:   r.FulfillmentFee,
		StorageFee:       r.StorageFee,
		TotalFees:        r.TotalAmazonFees,
		TotalCosts:       totalCosts,
		GrossProfit:      grossProfit,
		ProfitMargin:     margin,
		ROI:              roi,
		BreakEvenPrice:   totalCosts,
		RecommendedPrice: totalCosts / targetMarginDivisor,
		ProfitStatus:     FBAStatus(margin),
	}
}

// Rounded devolve uma cópia com valores monetários e percentuais em duas casas
func Rounded(r *domain.CalculationResult) *domain.CalculationResult {
	if r == nil {
		return nil
	}

	out := *r
	for _, f := range []*float64{
		&out.ReferralFee, &out.FulfillmentFee, &out.StorageFee,
		&out.TotalAmazonFees, &out.TotalAdvertisingCost, &out.ReturnLosses,
		&out.TotalExpenses, &out.GrossProfit, &out.NetProfitAfterExpenses,
		&out.EffectiveProfitMargin, &out.AdvertisingCostOfSales, &out.ROI,
	} {
		*f = utils.RoundWithTwoDecimalPlace(*f)
	}
	return &out
}

func RoundedFBA(f *domain.FBACalculation) *domain.FBACalculation {
	if f == nil {
		return nil
	}

	out := *f
	for _, v := range []*float64{
		&out.ReferralFee, &out.FulfillmentFee, &out.StorageFee,
		&out.TotalFees, &out.TotalCosts, &out.GrossProfit,
		&out.ProfitMargin, &out.ROI, &out.BreakEvenPrice, &out.RecommendedPrice,
	} {
		*v = utils.RoundWithTwoDecimalPlace(*v)
	}
	return &out
}
