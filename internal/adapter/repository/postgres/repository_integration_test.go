//go:build integration

package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/wealthdash/internal/domain"
)

var db *DB

// TestMain connects to the database and makes sure the schema exists
func TestMain(m *testing.M) {
	connStr := os.Getenv("DB_CONN_STR")
	if connStr == "" {
		connStr = "host=localhost port=5432 user=postgres password=postgres dbname=wealthdash sslmode=disable"
	}

	var err error
	db, err = NewDB(connStr)
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}

	if err := db.EnsureSchema(context.Background()); err != nil {
		panic(fmt.Sprintf("Failed to ensure schema: %v", err))
	}

	code := m.Run()
	db.Close()
	os.Exit(code)
}

func TestAssetRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewAssetRepository(db)
	id := "it-" + uuid.NewString()

	asset := &domain.Asset{
		ID:          id,
		Name:        "Integration ETF",
		Category:    domain.CategoryStocks,
		Value:       decimal.RequireFromString("1234.56"),
		Performance: decimal.RequireFromString("-2.5"),
	}
	require.NoError(t, repo.Create(ctx, asset))
	t.Cleanup(func() {
		_, _ = db.ExecContext(ctx, `DELETE FROM assets WHERE id = $1`, id)
	})

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Integration ETF", got.Name)
	assert.True(t, got.Value.Equal(asset.Value))
	assert.True(t, got.Performance.Equal(asset.Performance))

	require.NoError(t, repo.UpdateValue(ctx, id, decimal.NewFromInt(2000)))
	got, err = repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, got.Value.Equal(decimal.NewFromInt(2000)))

	_, err = repo.GetByID(ctx, "missing-"+uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)
}

func TestHistoryRepository_OrderingAndLatest(t *testing.T) {
	ctx := context.Background()
	assets := NewAssetRepository(db)
	history := NewHistoryRepository(db)
	id := "it-" + uuid.NewString()

	require.NoError(t, assets.Create(ctx, &domain.Asset{ID: id, Name: "H", Category: domain.CategoryCrypto, Value: decimal.NewFromInt(1)}))
	t.Cleanup(func() {
		_, _ = db.ExecContext(ctx, `DELETE FROM assets WHERE id = $1`, id)
	})

	_, err := history.GetLatest(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNoHistory)

	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, h := range []int{2, 0, 1} {
		require.NoError(t, history.Add(ctx, &domain.HistoryEntry{
			ID:        uuid.New(),
			AssetID:   id,
			Timestamp: t0.Add(time.Duration(h) * time.Hour),
			Value:     decimal.NewFromInt(int64(h + 10)),
		}))
	}

	entries, err := history.ListByAsset(ctx, id, time.Time{})
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.True(t, entries[0].Timestamp.Equal(t0))

	latest, err := history.GetLatest(ctx, id)
	require.NoError(t, err)
	assert.True(t, latest.Value.Equal(decimal.NewFromInt(12)))
}

func TestAssetRepository_DeleteCascadesHistory(t *testing.T) {
	ctx := context.Background()
	assets := NewAssetRepository(db)
	history := NewHistoryRepository(db)
	id := "it-" + uuid.NewString()

	asset := &domain.Asset{ID: id, Name: "Gone", Category: domain.CategorySavings, Value: decimal.NewFromInt(5)}
	require.NoError(t, assets.Create(ctx, asset))
	assert.ErrorIs(t, assets.Create(ctx, asset), domain.ErrAssetExists)

	require.NoError(t, history.Add(ctx, &domain.HistoryEntry{
		ID:        uuid.New(),
		AssetID:   id,
		Timestamp: time.Now().UTC(),
		Value:     decimal.NewFromInt(5),
	}))

	require.NoError(t, assets.Delete(ctx, id))

	_, err := assets.GetByID(ctx, id)
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)

	var remaining int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM asset_history WHERE asset_id = $1`, id).Scan(&remaining))
	assert.Zero(t, remaining)

	assert.ErrorIs(t, assets.Delete(ctx, id), domain.ErrAssetNotFound)
}
