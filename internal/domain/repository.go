package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// AssetRepository defines the interface for asset persistence operations
type AssetRepository interface {
	// GetByID retrieves an asset by its ID, without historical data
	GetByID(ctx context.Context, id string) (*Asset, error)

	// Create creates a new asset
	Create(ctx context.Context, asset *Asset) error

	// List retrieves every asset in insertion order, without historical data
	List(ctx context.Context) ([]*Asset, error)

	// UpdateValue sets the current value of an asset
	UpdateValue(ctx context.Context, id string, value decimal.Decimal) error

	// Delete removes an asset together with its history
	Delete(ctx context.Context, id string) error
}

// HistoryRepository defines the interface for historical value persistence operations
type HistoryRepository interface {
	// Add creates a new history entry
	Add(ctx context.Context, entry *HistoryEntry) error

	// GetLatest retrieves the most recent history entry for a given asset
	GetLatest(ctx context.Context, assetID string) (*HistoryEntry, error)

	// ListByAsset retrieves the entries of an asset recorded at or after since,
	// in ascending timestamp order. A zero since returns the full history.
	ListByAsset(ctx context.Context, assetID string, since time.Time) ([]*HistoryEntry, error)
}
