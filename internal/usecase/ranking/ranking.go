package ranking

import (
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/simaogato/wealthdash/internal/domain"
)

// Rank returns a new ordering of assets narrowed by filter and sorted by key
// Logic:
//  1. Keep only assets whose category passes the filter
//  2. Sort descending by performance or value, ascending by name
//  3. Ties keep their input order (stable)
//
// Names are compared with a root-locale collator ignoring case, so "alpha" sorts before "Beta".
// The input slice is never mutated.
func Rank(assets []domain.Asset, key domain.SortKey, filter domain.CategoryFilter) ([]domain.Asset, error) {
	less, err := lessFunc(key)
	if err != nil {
		return nil, err
	}

	ranked := make([]domain.Asset, 0, len(assets))
	for _, asset := range assets {
		if filter.Match(asset.Category) {
			ranked = append(ranked, asset)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return less(ranked[i], ranked[j])
	})

	return ranked, nil
}

func lessFunc(key domain.SortKey) (func(a, b domain.Asset) bool, error) {
	switch key {
	case domain.SortByPerformance:
		return func(a, b domain.Asset) bool {
			return a.Performance.GreaterThan(b.Performance)
		}, nil
	case domain.SortByValue:
		return func(a, b domain.Asset) bool {
			return a.Value.GreaterThan(b.Value)
		}, nil
	case domain.SortByName:
		// Collators keep internal buffers, one per call
		collator := collate.New(language.Und, collate.IgnoreCase)
		return func(a, b domain.Asset) bool {
			return collator.CompareString(a.Name, b.Name) < 0
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidSortKey, key)
	}
}
