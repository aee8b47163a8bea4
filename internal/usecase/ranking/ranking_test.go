package ranking

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/wealthdash/internal/domain"
)

func ids(assets []domain.Asset) []string {
	out := make([]string, len(assets))
	for i, a := range assets {
		out[i] = a.ID
	}
	return out
}

func names(assets []domain.Asset) []string {
	out := make([]string, len(assets))
	for i, a := range assets {
		out[i] = a.Name
	}
	return out
}

func fixture() []domain.Asset {
	return []domain.Asset{
		{ID: "1", Name: "Beta", Category: domain.CategoryStocks, Value: decimal.NewFromInt(100), Performance: decimal.NewFromInt(2)},
		{ID: "2", Name: "alpha", Category: domain.CategoryCrypto, Value: decimal.NewFromInt(300), Performance: decimal.NewFromInt(-4)},
		{ID: "3", Name: "Gamma", Category: domain.CategoryStocks, Value: decimal.NewFromInt(100), Performance: decimal.NewFromInt(7)},
		{ID: "4", Name: "delta", Category: domain.CategorySavings, Value: decimal.NewFromInt(50), Performance: decimal.NewFromInt(2)},
	}
}

func TestRank_ByName_CaseInsensitive(t *testing.T) {
	assets := []domain.Asset{
		{ID: "1", Name: "Beta"},
		{ID: "2", Name: "alpha"},
	}

	ranked, err := Rank(assets, domain.SortByName, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "Beta"}, names(ranked))
}

func TestRank_ByName_Accents(t *testing.T) {
	assets := []domain.Asset{
		{ID: "1", Name: "Zeta"},
		{ID: "2", Name: "Épargne"},
		{ID: "3", Name: "euro fund"},
	}

	ranked, err := Rank(assets, domain.SortByName, nil)

	require.NoError(t, err)
	assert.Equal(t, "Zeta", ranked[2].Name)
}

func TestRank_ByValue_StableOnTies(t *testing.T) {
	ranked, err := Rank(fixture(), domain.SortByValue, nil)

	require.NoError(t, err)
	// 1 and 3 tie at 100 and keep input order
	assert.Equal(t, []string{"2", "1", "3", "4"}, ids(ranked))
}

func TestRank_ByPerformance(t *testing.T) {
	ranked, err := Rank(fixture(), domain.SortByPerformance, nil)

	require.NoError(t, err)
	// 1 and 4 tie at +2% and keep input order
	assert.Equal(t, []string{"3", "1", "4", "2"}, ids(ranked))
}

func TestRank_Idempotent(t *testing.T) {
	byName, err := Rank(fixture(), domain.SortByName, nil)
	require.NoError(t, err)
	once, err := Rank(byName, domain.SortByValue, nil)
	require.NoError(t, err)

	twice, err := Rank(once, domain.SortByValue, nil)

	require.NoError(t, err)
	assert.Equal(t, ids(once), ids(twice))
	// value desc, then name asc
	assert.Equal(t, []string{"2", "1", "3", "4"}, ids(once))
}

func TestRank_FilterBeforeSort(t *testing.T) {
	filter, err := domain.ParseCategoryFilter([]string{"stocks"})
	require.NoError(t, err)

	ranked, err := Rank(fixture(), domain.SortByPerformance, filter)

	require.NoError(t, err)
	assert.Equal(t, []string{"3", "1"}, ids(ranked))
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	assets := fixture()

	_, err := Rank(assets, domain.SortByValue, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(assets))
}

func TestRank_InvalidSortKey(t *testing.T) {
	ranked, err := Rank(fixture(), domain.SortKey("date"), nil)

	assert.ErrorIs(t, err, domain.ErrInvalidSortKey)
	assert.Nil(t, ranked)
}

func TestRank_EmptyInput(t *testing.T) {
	ranked, err := Rank(nil, domain.SortByName, nil)

	require.NoError(t, err)
	assert.Empty(t, ranked)
}
