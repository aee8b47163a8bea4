package allocation

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthdash/internal/domain"
)

const shortLabelLength = 8

var hundred = decimal.NewFromInt(100)

// DefaultShortLabels holds the explicit short forms; other categories are truncated
var DefaultShortLabels = map[domain.Category]string{
	domain.CategoryRealEstate: "Property",
}

// Options configures the grouper
type Options struct {
	PaletteSize int
	ShortLabels map[domain.Category]string
}

// DefaultOptions returns the grouper configuration used by the dashboard
func DefaultOptions() Options {
	return Options{
		PaletteSize: len(DefaultPalette),
		ShortLabels: DefaultShortLabels,
	}
}

// CalculateAllocation groups assets by category and computes each bucket's share
// Logic:
//  1. Sum value per category present in the input (absent categories get no bucket)
//  2. Percentage = bucket value / total value * 100, kept at full precision
//  3. Sort by value descending, ties by category name ascending
//  4. ColorIndex = rank % PaletteSize
//
// An empty input yields an empty (non-nil) slice.
func CalculateAllocation(assets []domain.Asset, opts Options) ([]domain.AllocationBucket, error) {
	if opts.PaletteSize <= 0 {
		return nil, errors.New("palette size must be positive")
	}

	totals := make(map[domain.Category]decimal.Decimal)
	totalValue := decimal.Zero
	for _, asset := range assets {
		totals[asset.Category] = totals[asset.Category].Add(asset.Value)
		totalValue = totalValue.Add(asset.Value)
	}

	buckets := make([]domain.AllocationBucket, 0, len(totals))
	for category, value := range totals {
		percentage := decimal.Zero
		if totalValue.IsPositive() {
			percentage = value.Div(totalValue).Mul(hundred)
		}
		buckets = append(buckets, domain.AllocationBucket{
			Category:   category,
			ShortLabel: shortLabel(category, opts.ShortLabels),
			Value:      value,
			Percentage: percentage,
		})
	}

	sort.Slice(buckets, func(i, j int) bool {
		if cmp := buckets[i].Value.Cmp(buckets[j].Value); cmp != 0 {
			return cmp > 0
		}
		return buckets[i].Category < buckets[j].Category
	})

	for rank := range buckets {
		buckets[rank].ColorIndex = ColorIndex(rank, opts.PaletteSize)
	}

	return buckets, nil
}

// ColorIndex maps a bucket rank onto the palette
func ColorIndex(rank, paletteSize int) int {
	return rank % paletteSize
}

// RoundPercentages returns a copy of buckets with percentages rounded to one decimal place
func RoundPercentages(buckets []domain.AllocationBucket) []domain.AllocationBucket {
	rounded := make([]domain.AllocationBucket, len(buckets))
	for i, b := range buckets {
		b.Percentage = b.Percentage.Round(1)
		rounded[i] = b
	}
	return rounded
}

func shortLabel(category domain.Category, explicit map[domain.Category]string) string {
	if label, ok := explicit[category]; ok && label != "" {
		return label
	}
	runes := []rune(string(category))
	if len(runes) > shortLabelLength {
		runes = runes[:shortLabelLength]
	}
	return string(runes)
}
