package domain

import (
	"fmt"
	"strings"
)

// SortKey selects the ordering of ranked assets
type SortKey string

const (
	SortByPerformance SortKey = "performance"
	SortByValue       SortKey = "value"
	SortByName        SortKey = "name"
)

// ParseSortKey parses a sort key from the closed set {performance, value, name}
func ParseSortKey(raw string) (SortKey, error) {
	k := SortKey(strings.ToLower(strings.TrimSpace(raw)))
	switch k {
	case SortByPerformance, SortByValue, SortByName:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSortKey, raw)
	}
}

// CategoryFilter narrows the working set of assets before ranking.
// A nil or empty filter means "all".
type CategoryFilter map[Category]struct{}

// ParseCategoryFilter parses filter tokens. "all" (or no token) selects every category.
func ParseCategoryFilter(tokens []string) (CategoryFilter, error) {
	filter := CategoryFilter{}
	for _, tok := range tokens {
		t := strings.ToLower(strings.TrimSpace(tok))
		if t == "" {
			continue
		}
		if t == "all" {
			return nil, nil
		}
		c := Category(t)
		if !c.IsValid() {
			return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidCategoryFilter, tok)
		}
		filter[c] = struct{}{}
	}
	if len(filter) == 0 {
		return nil, nil
	}
	return filter, nil
}

// IsAll reports whether the filter selects every category
func (f CategoryFilter) IsAll() bool {
	return len(f) == 0
}

// Match reports whether the category passes the filter
func (f CategoryFilter) Match(c Category) bool {
	if f.IsAll() {
		return true
	}
	_, ok := f[c]
	return ok
}
