package portfolio

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthdash/internal/domain"
)

// BuildSeries merges the asset histories into one portfolio series.
// Each timestamp carries, per asset, the latest value observed at or before it.
// Assets with no observation yet contribute nothing.
func BuildSeries(assets []domain.Asset) []domain.SeriesPoint {
	timestamps := make([]time.Time, 0)
	seen := make(map[int64]struct{})
	for _, asset := range assets {
		for _, p := range asset.HistoricalData {
			key := p.Timestamp.UnixNano()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			timestamps = append(timestamps, p.Timestamp)
		}
	}
	sort.Slice(timestamps, func(i, j int) bool {
		return timestamps[i].Before(timestamps[j])
	})

	series := make([]domain.SeriesPoint, 0, len(timestamps))
	cursors := make([]int, len(assets))
	latest := make([]*decimal.Decimal, len(assets))

	for _, ts := range timestamps {
		total := decimal.Zero
		for i, asset := range assets {
			data := asset.HistoricalData
			for cursors[i] < len(data) && !data[cursors[i]].Timestamp.After(ts) {
				v := data[cursors[i]].Value
				latest[i] = &v
				cursors[i]++
			}
			if latest[i] != nil {
				total = total.Add(*latest[i])
			}
		}
		series = append(series, domain.SeriesPoint{Timestamp: ts, Value: total})
	}

	return series
}
