package holdings

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/simaogato/wealthdash/internal/domain"
)

// AssetService adds holdings to and removes them from the portfolio
type AssetService struct {
	AssetRepo domain.AssetRepository
	newID     func() string
}

// NewAssetService creates a new AssetService instance
func NewAssetService(assetRepo domain.AssetRepository) *AssetService {
	return &AssetService{
		AssetRepo: assetRepo,
		newID:     uuid.NewString,
	}
}

// TrackAsset starts tracking a new holding
// Logic:
//   - an empty ID is replaced by a generated one
//   - the name is required
//   - the category label is normalized onto the closed set
//   - the asset is validated before it is stored
//
// Returns the stored asset
func (s *AssetService) TrackAsset(ctx context.Context, asset domain.Asset) (*domain.Asset, error) {
	asset.ID = strings.TrimSpace(asset.ID)
	if asset.ID == "" {
		asset.ID = s.newID()
	}

	asset.Name = strings.TrimSpace(asset.Name)
	if asset.Name == "" {
		return nil, fmt.Errorf("%w: asset name cannot be empty", domain.ErrInvalidAsset)
	}

	asset.Category = domain.NormalizeCategory(string(asset.Category))
	asset.HistoricalData = nil

	if err := asset.Validate(); err != nil {
		return nil, err
	}

	if err := s.AssetRepo.Create(ctx, &asset); err != nil {
		return nil, err
	}

	return &asset, nil
}

// UntrackAsset stops tracking a holding and drops its history
func (s *AssetService) UntrackAsset(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: asset id cannot be empty", domain.ErrInvalidAsset)
	}
	return s.AssetRepo.Delete(ctx, id)
}
