package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthdash/internal/domain"
)

// Store keeps assets and their history in process memory.
// It backs both the asset and the history repository.
type Store struct {
	mu      sync.RWMutex
	order   []string
	assets  map[string]domain.Asset
	history map[string][]domain.HistoryEntry
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		assets:  make(map[string]domain.Asset),
		history: make(map[string][]domain.HistoryEntry),
	}
}

// Assets returns the store as a domain.AssetRepository
func (s *Store) Assets() domain.AssetRepository {
	return assetRepository{s}
}

// History returns the store as a domain.HistoryRepository
func (s *Store) History() domain.HistoryRepository {
	return historyRepository{s}
}

type assetRepository struct {
	s *Store
}

func (r assetRepository) GetByID(ctx context.Context, id string) (*domain.Asset, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	asset, ok := r.s.assets[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrAssetNotFound, id)
	}
	return &asset, nil
}

func (r assetRepository) Create(ctx context.Context, asset *domain.Asset) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.assets[asset.ID]; exists {
		return fmt.Errorf("%w: %s", domain.ErrAssetExists, asset.ID)
	}

	stored := *asset
	stored.HistoricalData = nil
	r.s.assets[asset.ID] = stored
	r.s.order = append(r.s.order, asset.ID)
	return nil
}

func (r assetRepository) List(ctx context.Context) ([]*domain.Asset, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	assets := make([]*domain.Asset, 0, len(r.s.order))
	for _, id := range r.s.order {
		asset := r.s.assets[id]
		assets = append(assets, &asset)
	}
	return assets, nil
}

func (r assetRepository) UpdateValue(ctx context.Context, id string, value decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	asset, ok := r.s.assets[id]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrAssetNotFound, id)
	}
	asset.Value = value
	r.s.assets[id] = asset
	return nil
}

func (r assetRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.assets[id]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrAssetNotFound, id)
	}

	delete(r.s.assets, id)
	delete(r.s.history, id)
	for i, existing := range r.s.order {
		if existing == id {
			r.s.order = append(r.s.order[:i], r.s.order[i+1:]...)
			break
		}
	}
	return nil
}

type historyRepository struct {
	s *Store
}

func (r historyRepository) Add(ctx context.Context, entry *domain.HistoryEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.assets[entry.AssetID]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrAssetNotFound, entry.AssetID)
	}

	entries := append(r.s.history[entry.AssetID], *entry)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.Before(entries[j].Timestamp)
	})
	r.s.history[entry.AssetID] = entries
	return nil
}

func (r historyRepository) GetLatest(ctx context.Context, assetID string) (*domain.HistoryEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	entries := r.s.history[assetID]
	if len(entries) == 0 {
		return nil, fmt.Errorf("asset %s: %w", assetID, domain.ErrNoHistory)
	}
	latest := entries[len(entries)-1]
	return &latest, nil
}

func (r historyRepository) ListByAsset(ctx context.Context, assetID string, since time.Time) ([]*domain.HistoryEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*domain.HistoryEntry, 0)
	for _, e := range r.s.history[assetID] {
		if e.Timestamp.Before(since) {
			continue
		}
		e := e
		out = append(out, &e)
	}
	return out, nil
}
