package portfolio

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/simaogato/wealthdash/internal/domain"
	"github.com/simaogato/wealthdash/internal/usecase/aggregation"
	"github.com/simaogato/wealthdash/internal/usecase/allocation"
	"github.com/simaogato/wealthdash/internal/usecase/period"
	"github.com/simaogato/wealthdash/internal/usecase/ranking"
)

// Query selects how the assembled assets are ranked
type Query struct {
	SortKey domain.SortKey
	Filter  domain.CategoryFilter
}

// Assembler composes period resolution, aggregation, allocation and ranking
// into a single view-model. It holds no state across calls.
type Assembler struct {
	Allocation allocation.Options
}

// NewAssembler creates a new Assembler instance
func NewAssembler(opts allocation.Options) *Assembler {
	return &Assembler{Allocation: opts}
}

// Assemble builds the view-model of a snapshot
// Logic:
//  1. Parse the period token (fails fast with ErrInvalidPeriod)
//  2. Validate every asset (fails with ErrInvalidAsset, nothing is dropped)
//  3. Narrow each asset's history to the period and recompute its performance
//  4. Aggregate, allocate, rank and build the series independently
//  5. Round bucket percentages for display
//
// Any failure aborts the whole assembly; no partial view-model is returned.
func (a *Assembler) Assemble(ctx context.Context, snapshot domain.PortfolioSnapshot, q Query) (*domain.PortfolioViewModel, error) {
	p, err := domain.ParsePeriod(snapshot.Period)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateAssets(snapshot.Assets); err != nil {
		return nil, err
	}

	sortKey := q.SortKey
	if sortKey == "" {
		sortKey = domain.SortByValue
	}

	resolved := make([]domain.Asset, len(snapshot.Assets))
	for i, asset := range snapshot.Assets {
		asset.Category = domain.NormalizeCategory(string(asset.Category))
		r, err := period.ApplyPeriod(p, asset)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve period for asset %s: %w", asset.ID, err)
		}
		resolved[i] = r
	}

	var (
		totals  aggregation.Totals
		buckets []domain.AllocationBucket
		sorted  []domain.Asset
		series  []domain.SeriesPoint
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		totals = aggregation.Aggregate(resolved)
		return nil
	})
	g.Go(func() error {
		var err error
		buckets, err = allocation.CalculateAllocation(resolved, a.Allocation)
		return err
	})
	g.Go(func() error {
		var err error
		sorted, err = ranking.Rank(resolved, sortKey, q.Filter)
		return err
	})
	g.Go(func() error {
		series = BuildSeries(resolved)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.PortfolioViewModel{
		Period:                  p,
		TotalValue:              totals.TotalValue,
		TotalPerformancePercent: totals.TotalPerformancePercent,
		TotalPerformanceValue:   totals.TotalPerformanceValue,
		SortedAssets:            sorted,
		AllocationBuckets:       allocation.RoundPercentages(buckets),
		HistoricalSeries:        series,
	}, nil
}
