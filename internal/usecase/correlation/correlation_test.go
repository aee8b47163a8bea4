package correlation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/wealthdash/internal/domain"
)

var t0 = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func history(values ...string) []domain.HistoricalPoint {
	points := make([]domain.HistoricalPoint, len(values))
	for i, v := range values {
		points[i] = domain.HistoricalPoint{
			Timestamp: t0.Add(time.Duration(i) * 24 * time.Hour),
			Value:     decimal.RequireFromString(v),
		}
	}
	return points
}

func TestMatrix_PerfectCorrelations(t *testing.T) {
	assets := []domain.Asset{
		{ID: "a", Value: decimal.NewFromInt(1), HistoricalData: history("100", "110", "99", "118.8")},
		{ID: "b", Value: decimal.NewFromInt(1), HistoricalData: history("200", "220", "198", "237.6")},
		{ID: "c", Value: decimal.NewFromInt(1), HistoricalData: history("100", "90", "99", "79.2")},
	}

	result, err := Matrix(assets, domain.PeriodAll)

	require.NoError(t, err)
	require.Len(t, result.Pairs, 3)

	coefs := map[string]float64{}
	for _, p := range result.Pairs {
		coefs[p.AssetA+p.AssetB] = p.Coefficient
		assert.Equal(t, 4, p.Points)
	}
	assert.InDelta(t, 1.0, coefs["ba"], 1e-9)
	assert.InDelta(t, -1.0, coefs["ca"], 1e-9)
	assert.InDelta(t, -1.0, coefs["cb"], 1e-9)

	assert.InDelta(t, -1.0/3.0, result.Mean, 1e-9)
	assert.InDelta(t, -1.0, result.Min, 1e-9)
	assert.InDelta(t, 1.0, result.Max, 1e-9)
}

func TestMatrix_SkipsShortOverlap(t *testing.T) {
	assets := []domain.Asset{
		{ID: "a", Value: decimal.NewFromInt(1), HistoricalData: history("100", "110", "99", "118.8")},
		{ID: "b", Value: decimal.NewFromInt(1), HistoricalData: history("10", "11")},
	}

	result, err := Matrix(assets, domain.PeriodAll)

	require.NoError(t, err)
	assert.Empty(t, result.Pairs)
	assert.Zero(t, result.Mean)
}

func TestMatrix_RespectsPeriod(t *testing.T) {
	assets := []domain.Asset{
		{ID: "a", Value: decimal.NewFromInt(1), HistoricalData: history("100", "110", "99", "118.8")},
		{ID: "b", Value: decimal.NewFromInt(1), HistoricalData: history("200", "220", "198", "237.6")},
	}

	// The 1d window holds two points per asset: not enough to correlate
	result, err := Matrix(assets, domain.PeriodOneDay)

	require.NoError(t, err)
	assert.Empty(t, result.Pairs)
}

func TestMatrix_InvalidAsset(t *testing.T) {
	_, err := Matrix([]domain.Asset{{ID: "neg", Value: decimal.NewFromInt(-1)}}, domain.PeriodAll)
	assert.ErrorIs(t, err, domain.ErrInvalidAsset)
}
