package seeder

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthdash/internal/domain"
)

// Fixed IDs for the demo holdings so reseeding is idempotent
var (
	DEMO_INDEX_FUND = uuid.MustParse("00000000-0000-0000-0000-000000000101").String()
	DEMO_BITCOIN    = uuid.MustParse("00000000-0000-0000-0000-000000000102").String()
	DEMO_APARTMENT  = uuid.MustParse("00000000-0000-0000-0000-000000000103").String()
	DEMO_SAVINGS    = uuid.MustParse("00000000-0000-0000-0000-000000000104").String()
)

// DemoAsset defines a holding to be seeded with its daily closing values, oldest first
type DemoAsset struct {
	ID          string
	Name        string
	Category    domain.Category
	Performance string
	Closes      []string
}

// DemoAssets is the holdings set used by the in-memory backend
var DemoAssets = []DemoAsset{
	{
		ID:          DEMO_INDEX_FUND,
		Name:        "Global Index Fund",
		Category:    domain.CategoryStocks,
		Performance: "6.4",
		Closes:      []string{"12000", "12080", "11950", "12110", "12240", "12190", "12310", "12420"},
	},
	{
		ID:          DEMO_BITCOIN,
		Name:        "Bitcoin",
		Category:    domain.CategoryCrypto,
		Performance: "-3.2",
		Closes:      []string{"5400", "5510", "5290", "5150", "5230", "5080", "5190", "5120"},
	},
	{
		ID:          DEMO_APARTMENT,
		Name:        "Apartment",
		Category:    domain.CategoryRealEstate,
		Performance: "2.1",
		Closes:      []string{"250000", "250000", "250000", "250000", "250000", "250000", "250000", "251000"},
	},
	{
		ID:          DEMO_SAVINGS,
		Name:        "emergency savings",
		Category:    domain.CategorySavings,
		Performance: "0.5",
		Closes:      []string{"8000", "8000", "8001", "8001", "8002", "8002", "8003", "8003"},
	},
}

// DemoSeeder populates an empty store with demo holdings
type DemoSeeder struct {
	assetRepo   domain.AssetRepository
	historyRepo domain.HistoryRepository
}

// NewDemoSeeder creates a new DemoSeeder instance
func NewDemoSeeder(assetRepo domain.AssetRepository, historyRepo domain.HistoryRepository) *DemoSeeder {
	return &DemoSeeder{
		assetRepo:   assetRepo,
		historyRepo: historyRepo,
	}
}

// Seed ensures all demo holdings exist. Closes are written one day apart,
// the last one at now. Assets that already have history are left untouched.
func (s *DemoSeeder) Seed(ctx context.Context, now time.Time) error {
	for _, demo := range DemoAssets {
		if len(demo.Closes) == 0 {
			continue
		}
		latest := decimal.RequireFromString(demo.Closes[len(demo.Closes)-1])

		// Try to get the asset by ID
		_, err := s.assetRepo.GetByID(ctx, demo.ID)
		switch {
		case errors.Is(err, domain.ErrAssetNotFound):
			asset := &domain.Asset{
				ID:          demo.ID,
				Name:        demo.Name,
				Category:    demo.Category,
				Value:       latest,
				Performance: decimal.RequireFromString(demo.Performance),
			}

			// Validate before creating
			if err := asset.Validate(); err != nil {
				return err
			}

			if err := s.assetRepo.Create(ctx, asset); err != nil {
				return err
			}
		case err != nil:
			return err
		}

		_, err = s.historyRepo.GetLatest(ctx, demo.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNoHistory) {
			return err
		}

		start := now.AddDate(0, 0, -(len(demo.Closes) - 1))
		for i, value := range demo.Closes {
			entry := &domain.HistoryEntry{
				ID:        uuid.New(),
				AssetID:   demo.ID,
				Timestamp: start.AddDate(0, 0, i),
				Value:     decimal.RequireFromString(value),
			}
			if err := s.historyRepo.Add(ctx, entry); err != nil {
				return err
			}
		}
	}

	return nil
}
