package correlation

import (
	"fmt"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"

	"github.com/simaogato/wealthdash/internal/domain"
	"github.com/simaogato/wealthdash/internal/usecase/period"
)

// minAlignedPoints is the smallest history overlap giving two returns to correlate
const minAlignedPoints = 3

// Pair is the correlation of two assets' period returns
type Pair struct {
	AssetA      string
	AssetB      string
	Coefficient float64
	Points      int
}

// Result holds the lower triangle of the correlation matrix and its summary
type Result struct {
	Period domain.Period
	Pairs  []Pair
	Mean   float64
	Min    float64
	Max    float64
}

// Matrix correlates the returns of every pair of assets over the period.
// Histories are aligned on common timestamps; pairs sharing fewer than
// three points are skipped. Summary fields are zero when no pair qualifies.
func Matrix(assets []domain.Asset, p domain.Period) (*Result, error) {
	if err := domain.ValidateAssets(assets); err != nil {
		return nil, err
	}

	windows := make([][]domain.HistoricalPoint, len(assets))
	for i, asset := range assets {
		w, err := period.ResolveAnchored(p, asset.HistoricalData)
		if err != nil {
			return nil, err
		}
		windows[i] = w
	}

	result := &Result{Period: p, Pairs: []Pair{}}
	for i := 1; i < len(assets); i++ {
		for j := 0; j < i; j++ {
			a, b := align(windows[i], windows[j])
			if len(a) < minAlignedPoints {
				continue
			}
			ra, rb := returns(a, b)
			if len(ra) < minAlignedPoints-1 {
				continue
			}
			coef, err := stats.Correlation(ra, rb)
			if err != nil {
				return nil, fmt.Errorf("failed to correlate %s and %s: %w", assets[i].ID, assets[j].ID, err)
			}
			result.Pairs = append(result.Pairs, Pair{
				AssetA:      assets[i].ID,
				AssetB:      assets[j].ID,
				Coefficient: coef,
				Points:      len(a),
			})
		}
	}

	if len(result.Pairs) == 0 {
		return result, nil
	}

	coefs := make(stats.Float64Data, len(result.Pairs))
	for i, pair := range result.Pairs {
		coefs[i] = pair.Coefficient
	}
	// Errors only occur on empty input, excluded above
	result.Mean, _ = stats.Mean(coefs)
	result.Min, _ = stats.Min(coefs)
	result.Max, _ = stats.Max(coefs)

	return result, nil
}

// align keeps the values observed at timestamps present in both histories.
// With repeated timestamps the last observation wins.
func align(a, b []domain.HistoricalPoint) ([]decimal.Decimal, []decimal.Decimal) {
	byTime := make(map[int64]decimal.Decimal, len(b))
	for _, p := range b {
		byTime[p.Timestamp.UnixNano()] = p.Value
	}

	var (
		outA, outB []decimal.Decimal
		last       time.Time
	)
	for _, p := range a {
		v, ok := byTime[p.Timestamp.UnixNano()]
		if !ok {
			continue
		}
		if len(outA) > 0 && p.Timestamp.Equal(last) {
			outA[len(outA)-1] = p.Value
			continue
		}
		outA = append(outA, p.Value)
		outB = append(outB, v)
		last = p.Timestamp
	}
	return outA, outB
}

// returns converts aligned values into simple period-over-period returns,
// skipping steps whose starting value is zero in either series
func returns(a, b []decimal.Decimal) (stats.Float64Data, stats.Float64Data) {
	var ra, rb stats.Float64Data
	for i := 1; i < len(a); i++ {
		if a[i-1].IsZero() || b[i-1].IsZero() {
			continue
		}
		ra = append(ra, a[i].Div(a[i-1]).Sub(decimal.NewFromInt(1)).InexactFloat64())
		rb = append(rb, b[i].Div(b[i-1]).Sub(decimal.NewFromInt(1)).InexactFloat64())
	}
	return ra, rb
}
