package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthdash/internal/domain"
)

// historyRepository implements domain.HistoryRepository
type historyRepository struct {
	db *DB
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(db *DB) domain.HistoryRepository {
	return &historyRepository{db: db}
}

// Add creates a new history entry
func (r *historyRepository) Add(ctx context.Context, entry *domain.HistoryEntry) error {
	query := `
		INSERT INTO asset_history (id, asset_id, ts, value)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.AssetID,
		entry.Timestamp,
		entry.Value.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert history entry: %w", err)
	}

	return nil
}

// GetLatest retrieves the most recent history entry for a given asset
func (r *historyRepository) GetLatest(ctx context.Context, assetID string) (*domain.HistoryEntry, error) {
	query := `
		SELECT id, asset_id, ts, value::text
		FROM asset_history
		WHERE asset_id = $1
		ORDER BY ts DESC
		LIMIT 1
	`

	entry, err := scanEntry(r.db.QueryRowContext(ctx, query, assetID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("asset %s: %w", assetID, domain.ErrNoHistory)
		}
		return nil, fmt.Errorf("failed to get latest history entry: %w", err)
	}

	return entry, nil
}

// ListByAsset retrieves the entries of an asset recorded at or after since
func (r *historyRepository) ListByAsset(ctx context.Context, assetID string, since time.Time) ([]*domain.HistoryEntry, error) {
	query := `
		SELECT id, asset_id, ts, value::text
		FROM asset_history
		WHERE asset_id = $1 AND ts >= $2
		ORDER BY ts ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, assetID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list history entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.HistoryEntry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history entries: %w", err)
	}

	return entries, nil
}

func scanEntry(row rowScanner) (*domain.HistoryEntry, error) {
	var (
		entry    domain.HistoryEntry
		valueStr string
	)

	if err := row.Scan(&entry.ID, &entry.AssetID, &entry.Timestamp, &valueStr); err != nil {
		return nil, err
	}

	// Parse value (NUMERIC)
	value, err := decimal.NewFromString(valueStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse value: %w", err)
	}
	entry.Value = value

	return &entry, nil
}
