package valuation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthdash/internal/domain"
)

// ValuationService handles recording observed asset values
type ValuationService struct {
	AssetRepo   domain.AssetRepository
	HistoryRepo domain.HistoryRepository
	now         func() time.Time
}

// NewValuationService creates a new ValuationService instance
func NewValuationService(assetRepo domain.AssetRepository, historyRepo domain.HistoryRepository) *ValuationService {
	return &ValuationService{
		AssetRepo:   assetRepo,
		HistoryRepo: historyRepo,
		now:         time.Now,
	}
}

// RecordValue appends a historical point for an asset and updates its current value
// Logic:
//   - value must not be negative (zero records a sold-out holding)
//   - a zero at defaults to the current time
//   - at must not precede the asset's latest point (history stays chronological)
//
// Returns the created history entry
func (s *ValuationService) RecordValue(ctx context.Context, assetID string, value decimal.Decimal, at time.Time) (*domain.HistoryEntry, error) {
	if value.IsNegative() {
		return nil, fmt.Errorf("%w: value cannot be negative", domain.ErrInvalidAsset)
	}

	if _, err := s.AssetRepo.GetByID(ctx, assetID); err != nil {
		return nil, err
	}

	if at.IsZero() {
		at = s.now()
	}

	latest, err := s.HistoryRepo.GetLatest(ctx, assetID)
	switch {
	case errors.Is(err, domain.ErrNoHistory):
		// First observation
	case err != nil:
		return nil, err
	case at.Before(latest.Timestamp):
		return nil, fmt.Errorf("%w: point at %s precedes latest point at %s",
			domain.ErrInvalidAsset, at.Format(time.RFC3339), latest.Timestamp.Format(time.RFC3339))
	}

	entry := &domain.HistoryEntry{
		ID:        uuid.New(),
		AssetID:   assetID,
		Timestamp: at,
		Value:     value,
	}

	if err := s.HistoryRepo.Add(ctx, entry); err != nil {
		return nil, err
	}

	if err := s.AssetRepo.UpdateValue(ctx, assetID, value); err != nil {
		return nil, err
	}

	return entry, nil
}
