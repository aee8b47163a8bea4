package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Category represents the asset class a holding is grouped under
type Category string

const (
	CategoryStocks     Category = "stocks"
	CategoryCrypto     Category = "crypto"
	CategoryRealEstate Category = "real-estate"
	CategorySavings    Category = "savings"
	CategoryOther      Category = "other"
)

// Categories lists the closed set of categories in lexical order
var Categories = []Category{
	CategoryCrypto,
	CategoryOther,
	CategoryRealEstate,
	CategorySavings,
	CategoryStocks,
}

// IsValid reports whether c belongs to the closed category set
func (c Category) IsValid() bool {
	switch c {
	case CategoryStocks, CategoryCrypto, CategoryRealEstate, CategorySavings, CategoryOther:
		return true
	default:
		return false
	}
}

// NormalizeCategory maps a raw category label onto the closed set.
// Unknown labels fall back to CategoryOther.
func NormalizeCategory(raw string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if c.IsValid() {
		return c
	}
	return CategoryOther
}

// Asset represents one tracked holding
type Asset struct {
	ID             string
	Name           string
	Category       Category
	Value          decimal.Decimal // Current value in the portfolio base currency
	Performance    decimal.Decimal // Signed percentage change over the active period
	HistoricalData []HistoricalPoint
}

// Validate ensures the asset adheres to domain rules.
// Returned errors wrap ErrInvalidAsset.
func (a *Asset) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("%w: asset id cannot be empty", ErrInvalidAsset)
	}

	if a.Value.IsNegative() {
		return fmt.Errorf("%w: asset %s has negative value %s", ErrInvalidAsset, a.ID, a.Value)
	}

	for i := 1; i < len(a.HistoricalData); i++ {
		if a.HistoricalData[i].Timestamp.Before(a.HistoricalData[i-1].Timestamp) {
			return fmt.Errorf("%w: asset %s historical data is not chronological at index %d", ErrInvalidAsset, a.ID, i)
		}
	}

	return nil
}

// ValidateAssets validates every asset of a snapshot and rejects duplicate IDs
func ValidateAssets(assets []Asset) error {
	seen := make(map[string]struct{}, len(assets))
	for i := range assets {
		if err := assets[i].Validate(); err != nil {
			return err
		}
		if _, dup := seen[assets[i].ID]; dup {
			return fmt.Errorf("%w: duplicate asset id %s", ErrInvalidAsset, assets[i].ID)
		}
		seen[assets[i].ID] = struct{}{}
	}
	return nil
}
