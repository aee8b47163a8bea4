package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthdash/internal/domain"
)

// uniqueViolation is the PostgreSQL error code for a duplicate key
const uniqueViolation = "23505"


// assetRepository implements domain.AssetRepository
type assetRepository struct {
	db *DB
}

// NewAssetRepository creates a new asset repository
func NewAssetRepository(db *DB) domain.AssetRepository {
	return &assetRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAsset(row rowScanner) (*domain.Asset, error) {
	var (
		asset          domain.Asset
		category       string
		valueStr       string
		performanceStr string
	)

	if err := row.Scan(&asset.ID, &asset.Name, &category, &valueStr, &performanceStr); err != nil {
		return nil, err
	}

	asset.Category = domain.NormalizeCategory(category)

	// Parse value (NUMERIC)
	value, err := decimal.NewFromString(valueStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse value: %w", err)
	}
	asset.Value = value

	// Parse performance (NUMERIC)
	performance, err := decimal.NewFromString(performanceStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse performance: %w", err)
	}
	asset.Performance = performance

	return &asset, nil
}

// GetByID retrieves an asset by its ID
func (r *assetRepository) GetByID(ctx context.Context, id string) (*domain.Asset, error) {
	query := `
		SELECT id, name, category, value::text, performance::text
		FROM assets
		WHERE id = $1
	`

	asset, err := scanAsset(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrAssetNotFound, id)
		}
		return nil, fmt.Errorf("failed to get asset by ID: %w", err)
	}

	return asset, nil
}

// Create creates a new asset
func (r *assetRepository) Create(ctx context.Context, asset *domain.Asset) error {
	query := `
		INSERT INTO assets (id, name, category, value, performance)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(ctx, query,
		asset.ID,
		asset.Name,
		string(asset.Category),
		asset.Value.String(),
		asset.Performance.String(),
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fmt.Errorf("%w: %s", domain.ErrAssetExists, asset.ID)
		}
		return fmt.Errorf("failed to create asset: %w", err)
	}

	return nil
}

// List retrieves every asset in insertion order
func (r *assetRepository) List(ctx context.Context) ([]*domain.Asset, error) {
	query := `
		SELECT id, name, category, value::text, performance::text
		FROM assets
		ORDER BY created_at, id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	assets := make([]*domain.Asset, 0)
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		assets = append(assets, asset)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate assets: %w", err)
	}

	return assets, nil
}

// UpdateValue sets the current value of an asset
func (r *assetRepository) UpdateValue(ctx context.Context, id string, value decimal.Decimal) error {
	query := `UPDATE assets SET value = $2 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, value.String())
	if err != nil {
		return fmt.Errorf("failed to update asset value: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", domain.ErrAssetNotFound, id)
	}

	return nil
}

// Delete removes an asset; its history rows go with it through ON DELETE CASCADE
func (r *assetRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", domain.ErrAssetNotFound, id)
	}

	return nil
}
