package portfolio

import (
	"context"
	"fmt"
	"time"

	"github.com/simaogato/wealthdash/internal/domain"
	"github.com/simaogato/wealthdash/internal/logger"
)

// PortfolioService builds view-models from the persisted holdings
type PortfolioService struct {
	AssetRepo   domain.AssetRepository
	HistoryRepo domain.HistoryRepository
	Assembler   *Assembler
}

// NewPortfolioService creates a new PortfolioService instance
func NewPortfolioService(
	assetRepo domain.AssetRepository,
	historyRepo domain.HistoryRepository,
	assembler *Assembler,
) *PortfolioService {
	return &PortfolioService{
		AssetRepo:   assetRepo,
		HistoryRepo: historyRepo,
		Assembler:   assembler,
	}
}

// LoadSnapshot materialises the full asset list with its history
func (s *PortfolioService) LoadSnapshot(ctx context.Context, periodToken string) (*domain.PortfolioSnapshot, error) {
	assets, err := s.AssetRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	snapshot := &domain.PortfolioSnapshot{
		Assets: make([]domain.Asset, 0, len(assets)),
		Period: periodToken,
	}
	for _, asset := range assets {
		entries, err := s.HistoryRepo.ListByAsset(ctx, asset.ID, time.Time{})
		if err != nil {
			return nil, fmt.Errorf("failed to list history for asset %s: %w", asset.ID, err)
		}

		a := *asset
		a.HistoricalData = make([]domain.HistoricalPoint, 0, len(entries))
		for _, e := range entries {
			a.HistoricalData = append(a.HistoricalData, e.Point())
		}
		snapshot.Assets = append(snapshot.Assets, a)
	}

	return snapshot, nil
}

// GetViewModel loads the current holdings and assembles them for the requested period.
// The period token is checked before any repository access.
func (s *PortfolioService) GetViewModel(ctx context.Context, periodToken string, q Query) (*domain.PortfolioViewModel, error) {
	if _, err := domain.ParsePeriod(periodToken); err != nil {
		return nil, err
	}

	snapshot, err := s.LoadSnapshot(ctx, periodToken)
	if err != nil {
		return nil, err
	}

	vm, err := s.Assembler.Assemble(ctx, *snapshot, q)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Debugw("assembled view-model",
		"period", vm.Period.String(),
		"assets", len(snapshot.Assets),
		"buckets", len(vm.AllocationBuckets),
		"total_value", vm.TotalValue.String(),
	)

	return vm, nil
}
