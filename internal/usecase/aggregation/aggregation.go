package aggregation

import (
	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthdash/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Totals represents the portfolio-wide aggregate for the active period
type Totals struct {
	TotalValue              decimal.Decimal
	TotalPerformanceValue   decimal.Decimal
	TotalPerformancePercent decimal.Decimal
}

// Aggregate sums value and value-weighted performance across assets
// Logic:
//   - TotalValue = sum(value)
//   - TotalPerformanceValue = sum(value * performance / 100)
//   - TotalPerformancePercent = TotalPerformanceValue / TotalValue * 100, or 0 when TotalValue is 0
//
// Assets are expected to be validated by the caller.
func Aggregate(assets []domain.Asset) Totals {
	totalValue := decimal.Zero
	performanceValue := decimal.Zero

	for _, asset := range assets {
		totalValue = totalValue.Add(asset.Value)
		performanceValue = performanceValue.Add(asset.Value.Mul(asset.Performance).Shift(-2))
	}

	performancePercent := decimal.Zero
	if totalValue.IsPositive() {
		performancePercent = performanceValue.Div(totalValue).Mul(hundred)
	}

	return Totals{
		TotalValue:              totalValue,
		TotalPerformanceValue:   performanceValue,
		TotalPerformancePercent: performancePercent,
	}
}
