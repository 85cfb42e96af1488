package calculating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/seller-calc-api/internal/domain"
)

func TestReferralFee(t *testing.T) {
	tests := []struct {
		name     string
		category domain.Category
		price    float64
		want     float64
	}{
		{name: "eletrônicos", category: domain.CategoryElectronics, price: 30, want: 2.40},
		{name: "vestuário", category: domain.CategoryClothing, price: 100, want: 17},
		{name: "automotivo", category: domain.CategoryAutomotive, price: 50, want: 6},
		{name: "livros", category: domain.CategoryBooks, price: 20, want: 3},
		{name: "categoria desconhecida usa padrão", category: "garden-gnomes", price: 20, want: 3},
		{name: "categoria vazia usa padrão", category: "", price: 10, want: 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ReferralFee(tt.category, tt.price), 1e-9)
		})
	}
}

func TestReferralRates_CoverAllCategories(t *testing.T) {
	for _, c := range domain.Categories {
		rate, ok := ReferralRates[c]
		assert.True(t, ok, "categoria %s sem comissão", c)
		assert.True(t, rate > 0 && rate <= 1)
	}
}

// weightOnly usa dimensões mínimas para que o peso real seja o faturável
func weightOnly(weight float64) float64 {
	return FulfillmentFee(weight, 1, 1, 1)
}

func TestFulfillmentFee_Tiers(t *testing.T) {
	tests := []struct {
		weight float64
		want   float64
	}{
		{weight: 0.5, want: 2.50},
		{weight: 1, want: 2.50},
		{weight: 1.5, want: 3.48},
		{weight: 2, want: 3.48},
		{weight: 3, want: 4.09},
		{weight: 3.01, want: 4.7538},
		{weight: 12, want: 8.17},
		{weight: 13, want: 8.59},
		{weight: 70, want: 32.53},
		{weight: 71, want: 33.36},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, weightOnly(tt.weight), 1e-9, "peso %v", tt.weight)
	}
}

func TestFulfillmentFee_MonotonicNonDecreasing(t *testing.T) {
	previous := weightOnly(0.1)
	for w := 0.11; w <= 100; w += 0.01 {
		fee := weightOnly(w)
		assert.GreaterOrEqual(t, fee+1e-9, previous, "peso %v", w)
		previous = fee
	}
}

func TestBillableWeight_UsesDimensionalWeight(t *testing.T) {
	// 12x12x12 polegadas = 1 pé cúbico = 139 libras dimensionais
	assert.InDelta(t, 139.0, BillableWeight(1, 12, 12, 12), 1e-9)
	assert.InDelta(t, 200.0, BillableWeight(200, 12, 12, 12), 1e-9)
	assert.InDelta(t, 32.53+69*0.83, FulfillmentFee(1, 12, 12, 12), 1e-9)
}

func TestStorageFee(t *testing.T) {
	assert.InDelta(t, 0.75, StorageFee(12, 12, 12), 1e-9)
	assert.InDelta(t, 0.375, StorageFee(12, 12, 6), 1e-9)
}

func TestDefaultsWhenIncomplete(t *testing.T) {
	tests := []struct {
		name            string
		input           domain.CalculationInput
		wantFulfillment float64
		wantStorage     float64
	}{
		{
			name:            "sem peso nem dimensões",
			input:           domain.CalculationInput{},
			wantFulfillment: DefaultFulfillmentFee,
			wantStorage:     DefaultStorageFee,
		},
		{
			name:            "dimensões sem peso",
			input:           domain.CalculationInput{Length: 12, Width: 12, Height: 12},
			wantFulfillment: DefaultFulfillmentFee,
			wantStorage:     0.75,
		},
		{
			name:            "dimensão negativa",
			input:           domain.CalculationInput{Weight: 2, Length: 12, Width: -1, Height: 12},
			wantFulfillment: DefaultFulfillmentFee,
			wantStorage:     DefaultStorageFee,
		},
		{
			name:            "completo",
			input:           domain.CalculationInput{Weight: 2, Length: 2, Width: 2, Height: 2},
			wantFulfillment: 3.48,
			wantStorage:     8.0 / 1728 * 0.75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.wantFulfillment, fulfillmentFeeFor(tt.input), 1e-9)
			assert.InDelta(t, tt.wantStorage, storageFeeFor(tt.input), 1e-9)
		})
	}
}
