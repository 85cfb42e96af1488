package domain

type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryClothing    Category = "clothing"
	CategoryBooks       Category = "books"
	CategoryHomeGarden  Category = "homeGarden"
	CategoryToys        Category = "toys"
	CategorySports      Category = "sports"
	CategoryBeauty      Category = "beauty"
	CategoryAutomotive  Category = "automotive"
)

// Categories lista as categorias na ordem em que são exibidas
var Categories = []Category{
	CategoryElectronics,
	CategoryClothing,
	CategoryBooks,
	CategoryHomeGarden,
	CategoryToys,
	CategorySports,
	CategoryBeauty,
	CategoryAutomotive,
}

type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

type ProfitStatus string

const (
	ProfitStatusExcellent    ProfitStatus = "excellent"
	ProfitStatusGood         ProfitStatus = "good"
	ProfitStatusFair         ProfitStatus = "fair"
	ProfitStatusPoor         ProfitStatus = "poor"
	ProfitStatusProfitable   ProfitStatus = "profitable"
	ProfitStatusMarginal     ProfitStatus = "marginal"
	ProfitStatusUnprofitable ProfitStatus = "unprofitable"
)

// ExtendedExpenses são as despesas adicionais da calculadora completa.
// O valor zero corresponde à calculadora FBA simples.
type ExtendedExpenses struct {
	AdvertisingCosts      float64 `json:"advertising_costs"`
	ReturnRatePercent     float64 `json:"return_rate"`
	ReturnProcessingFee   float64 `json:"return_processing_fee"`
	MiscellaneousExpenses float64 `json:"miscellaneous_expenses"`
	LongTermStorageFee    float64 `json:"long_term_storage_fee"`
	RemovalFee            float64 `json:"removal_fee"`
	InventoryPlacementFee float64 `json:"inventory_placement_fee"`
}

// CalculationInput reúne os campos numéricos informados pelo vendedor.
// Dimensões em polegadas e peso em libras.
type CalculationInput struct {
	ProductCost      float64          `json:"product_cost"`
	SellingPrice     float64          `json:"selling_price"`
	ShippingToAmazon float64          `json:"shipping_to_amazon"`
	Weight           float64          `json:"weight"`
	Length           float64          `json:"length"`
	Width            float64          `json:"width"`
	Height           float64          `json:"height"`
	Category         Category         `json:"category"`
	Expenses         ExtendedExpenses `json:"expenses"`
}

// CalculationResult é o resultado completo, recalculado a cada alteração de entrada
type CalculationResult struct {
	ProductCost      float64  `json:"product_cost"`
	SellingPrice     float64  `json:"selling_price"`
	ShippingToAmazon float64  `json:"shipping_to_amazon"`
	Category         Category `json:"category"`

	ReferralFee    float64 `json:"referral_fee"`
	FulfillmentFee float64 `json:"fulfillment_fee"`
	StorageFee     float64 `json:"storage_fee"`

	AdvertisingCosts      float64 `json:"advertising_costs"`
	ReturnRate            float64 `json:"return_rate"`
	ReturnProcessingFee   float64 `json:"return_processing_fee"`
	MiscellaneousExpenses float64 `json:"miscellaneous_expenses"`
	LongTermStorageFee    float64 `json:"long_term_storage_fee"`
	RemovalFee            float64 `json:"removal_fee"`
	InventoryPlacementFee float64 `json:"inventory_placement_fee"`

	TotalAmazonFees        float64 `json:"total_amazon_fees"`
	TotalAdvertisingCost   float64 `json:"total_advertising_cost"`
	ReturnLosses           float64 `json:"return_losses"`
	TotalExpenses          float64 `json:"total_expenses"`
	GrossProfit            float64 `json:"gross_profit"`
	NetProfitAfterExpenses float64 `json:"net_profit_after_expenses"`
	EffectiveProfitMargin  float64 `json:"effective_profit_margin"`
	AdvertisingCostOfSales float64 `json:"advertising_cost_of_sales"`
	ROI                    float64 `json:"roi"`

	ProfitabilityScore float64      `json:"profitability_score"`
	RiskLevel          RiskLevel    `json:"risk_level"`
	ProfitStatus       ProfitStatus `json:"profit_status"`
}

// FBACalculation é a projeção da calculadora FBA simples, onde a margem considera
// apenas custo, frete e taxas da Amazon.
type FBACalculation struct {
	ProductCost      float64      `json:"product_cost"`
	SellingPrice     float64      `json:"selling_price"`
	ShippingToAmazon float64      `json:"shipping_to_amazon"`
	ReferralFee      float64      `json:"referral_fee"`
	FulfillmentFee   float64      `json:"fulfillment_fee"`
	StorageFee       float64      `json:"storage_fee"`
	TotalFees        float64      `json:"total_fees"`
	TotalCosts       float64      `json:"total_costs"`
	GrossProfit      float64      `json:"gross_profit"`
	ProfitMargin     float64      `json:"profit_margin"`
	ROI              float64      `json:"roi"`
	BreakEvenPrice   float64      `json:"break_even_price"`
	RecommendedPrice float64      `json:"recommended_price"`
	ProfitStatus     ProfitStatus `json:"profit_status"`
}

type CalculationResponse struct {
	Calculation *CalculationResult `json:"calculation"`
}

type FBACalculationResponse struct {
	Calculation *FBACalculation `json:"calculation"`
}
