package period

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthdash/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Resolve returns the points of data falling within the window of p ending at now.
// Logic:
//   - The window is [start, now], both bounds inclusive
//   - PeriodAll keeps every point up to now
//   - Empty data yields an empty (non-nil) slice
//
// The input slice is never mutated; the result is a fresh copy.
func Resolve(p domain.Period, data []domain.HistoricalPoint, now time.Time) ([]domain.HistoricalPoint, error) {
	start, bounded, err := p.Start(now)
	if err != nil {
		return nil, err
	}

	window := make([]domain.HistoricalPoint, 0, len(data))
	for _, point := range data {
		if bounded && point.Timestamp.Before(start) {
			continue
		}
		if point.Timestamp.After(now) {
			continue
		}
		window = append(window, point)
	}

	return window, nil
}

// ResolveAnchored resolves the window using the latest point's timestamp as now
func ResolveAnchored(p domain.Period, data []domain.HistoricalPoint) ([]domain.HistoricalPoint, error) {
	if len(data) == 0 {
		// Still reject unknown periods on empty data
		if _, _, err := p.Start(time.Time{}); err != nil {
			return nil, err
		}
		return []domain.HistoricalPoint{}, nil
	}
	return Resolve(p, data, data[len(data)-1].Timestamp)
}

// Performance computes the percentage change across a resolved window.
// Returns false when the window has fewer than two points or a non-positive baseline,
// in which case the caller keeps the externally supplied performance.
func Performance(window []domain.HistoricalPoint) (decimal.Decimal, bool) {
	if len(window) < 2 {
		return decimal.Zero, false
	}

	baseline := window[0].Value
	if !baseline.IsPositive() {
		return decimal.Zero, false
	}

	last := window[len(window)-1].Value
	return last.Sub(baseline).Div(baseline).Mul(hundred), true
}

// ApplyPeriod returns a copy of asset with HistoricalData narrowed to the window of p
// and Performance recomputed from that window when possible
func ApplyPeriod(p domain.Period, asset domain.Asset) (domain.Asset, error) {
	window, err := ResolveAnchored(p, asset.HistoricalData)
	if err != nil {
		return domain.Asset{}, err
	}

	resolved := asset
	resolved.HistoricalData = window
	if perf, ok := Performance(window); ok {
		resolved.Performance = perf
	}

	return resolved, nil
}
