package calculating

import "github.com/vfg2006/seller-calc-api/internal/domain"

// bracket desconta Penalty quando o valor cai na faixa. Cada eixo usa apenas a
// primeira faixa que casar, as faixas não se acumulam.
type bracket struct {
	Limit   float64
	Penalty float64
}

var (
	marginBrackets = []bracket{{Limit: 10, Penalty: 40}, {Limit: 20, Penalty: 20}, {Limit: 30, Penalty: 10}}
	acosBrackets   = []bracket{{Limit: 50, Penalty: 30}, {Limit: 30, Penalty: 15}, {Limit: 20, Penalty: 5}}
	returnBrackets = []bracket{{Limit: 15, Penalty: 20}, {Limit: 10, Penalty: 10}, {Limit: 5, Penalty: 5}}
)

func penaltyBelow(value float64, brackets []bracket) float64 {
	for _, b := range brackets {
		if value < b.Limit {
			return b.Penalty
		}
	}
	return 0
}

func penaltyAbove(value float64, brackets []bracket) float64 {
	for _, b := range brackets {
		if value > b.Limit {
			return b.Penalty
		}
	}
	return 0
}

// ProfitabilityScore parte de 100 e desconta no máximo uma faixa por eixo, limitado a [0, 100]
func ProfitabilityScore(margin, acos, returnRate float64) float64 {
	score := 100.0
	score -= penaltyBelow(margin, marginBrackets)
	score -= penaltyAbove(acos, acosBrackets)
	score -= penaltyAbove(returnRate, returnBrackets)

	return min(max(score, 0), 100)
}

// Risk avalia primeiro as condições de risco alto
func Risk(margin, acos, returnRate float64) domain.RiskLevel {
	switch {
	case margin < 15 || acos > 40 || returnRate > 12:
		return domain.RiskLevelHigh
	case margin < 25 || acos > 25 || returnRate > 8:
		return domain.RiskLevelMedium
	default:
		return domain.RiskLevelLow
	}
}

// Status classifica a margem da calculadora completa
func Status(margin float64) domain.ProfitStatus {
	switch {
	case margin >= 25:
		return domain.ProfitStatusExcellent
	case margin >= 15:
		return domain.ProfitStatusGood
	case margin >= 5:
		return domain.ProfitStatusFair
	default:
		return domain.ProfitStatusPoor
	}
}

// FBAStatus classifica a margem da calculadora FBA simples
func FBAStatus(margin float64) domain.ProfitStatus {
	switch {
	case margin >= 30:
		return domain.ProfitStatusProfitable
	case margin >= 15:
		return domain.ProfitStatusMarginal
	default:
		return domain.ProfitStatusUnprofitable
	}
}
