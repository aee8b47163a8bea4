package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PortfolioSnapshot is the engine input: an ordered asset list plus the requested period
type PortfolioSnapshot struct {
	Assets []Asset
	Period string
}

// AllocationBucket aggregates value and share-of-total for one category
type AllocationBucket struct {
	Category   Category
	ShortLabel string
	Value      decimal.Decimal
	Percentage decimal.Decimal
	ColorIndex int
}

// SeriesPoint is one point of the portfolio-level historical series
type SeriesPoint struct {
	Timestamp time.Time
	Value     decimal.Decimal
}

// PortfolioViewModel is the render-ready payload consumed by the presentation layer
type PortfolioViewModel struct {
	Period                  Period
	TotalValue              decimal.Decimal
	TotalPerformancePercent decimal.Decimal
	TotalPerformanceValue   decimal.Decimal
	SortedAssets            []Asset
	AllocationBuckets       []AllocationBucket
	HistoricalSeries        []SeriesPoint
}
