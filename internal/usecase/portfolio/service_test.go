package portfolio

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/wealthdash/internal/domain"
	"github.com/simaogato/wealthdash/internal/usecase/allocation"
)

// MockAssetRepository is a mock implementation of AssetRepository for testing
type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) GetByID(ctx context.Context, id string) (*domain.Asset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) Create(ctx context.Context, asset *domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) List(ctx context.Context) ([]*domain.Asset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) UpdateValue(ctx context.Context, id string, value decimal.Decimal) error {
	args := m.Called(ctx, id, value)
	return args.Error(0)
}

func (m *MockAssetRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockHistoryRepository is a mock implementation of HistoryRepository for testing
type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) Add(ctx context.Context, entry *domain.HistoryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockHistoryRepository) GetLatest(ctx context.Context, assetID string) (*domain.HistoryEntry, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HistoryEntry), args.Error(1)
}

func (m *MockHistoryRepository) ListByAsset(ctx context.Context, assetID string, since time.Time) ([]*domain.HistoryEntry, error) {
	args := m.Called(ctx, assetID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.HistoryEntry), args.Error(1)
}

func TestGetViewModel_LoadsHistoryAndAssembles(t *testing.T) {
	ctx := context.Background()
	mockAssetRepo := new(MockAssetRepository)
	mockHistoryRepo := new(MockHistoryRepository)
	service := NewPortfolioService(mockAssetRepo, mockHistoryRepo, NewAssembler(allocation.DefaultOptions()))

	latest := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	mockAssetRepo.On("List", ctx).Return([]*domain.Asset{
		{ID: "etf", Name: "ETF", Category: domain.CategoryStocks, Value: d("120"), Performance: d("0")},
		{ID: "cash", Name: "Cash", Category: domain.CategorySavings, Value: d("80"), Performance: d("0")},
	}, nil)
	mockHistoryRepo.On("ListByAsset", ctx, "etf", time.Time{}).Return([]*domain.HistoryEntry{
		{ID: uuid.New(), AssetID: "etf", Timestamp: latest.Add(-12 * time.Hour), Value: d("100")},
		{ID: uuid.New(), AssetID: "etf", Timestamp: latest, Value: d("120")},
	}, nil)
	mockHistoryRepo.On("ListByAsset", ctx, "cash", time.Time{}).Return([]*domain.HistoryEntry{}, nil)

	vm, err := service.GetViewModel(ctx, "1d", Query{SortKey: domain.SortByValue})

	require.NoError(t, err)
	assert.True(t, vm.TotalValue.Equal(d("200")))
	// 120 * 20% = 24
	assert.True(t, vm.TotalPerformanceValue.Equal(d("24")), "got %s", vm.TotalPerformanceValue)
	assert.Equal(t, "etf", vm.SortedAssets[0].ID)

	mockAssetRepo.AssertExpectations(t)
	mockHistoryRepo.AssertExpectations(t)
}

func TestGetViewModel_InvalidPeriodSkipsRepository(t *testing.T) {
	mockAssetRepo := new(MockAssetRepository)
	mockHistoryRepo := new(MockHistoryRepository)
	service := NewPortfolioService(mockAssetRepo, mockHistoryRepo, NewAssembler(allocation.DefaultOptions()))

	vm, err := service.GetViewModel(context.Background(), "5y", Query{})

	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
	assert.Nil(t, vm)
	mockAssetRepo.AssertNotCalled(t, "List", mock.Anything)
}

func TestGetViewModel_RepositoryError(t *testing.T) {
	ctx := context.Background()
	mockAssetRepo := new(MockAssetRepository)
	mockHistoryRepo := new(MockHistoryRepository)
	service := NewPortfolioService(mockAssetRepo, mockHistoryRepo, NewAssembler(allocation.DefaultOptions()))

	mockAssetRepo.On("List", ctx).Return(nil, errors.New("connection refused"))

	vm, err := service.GetViewModel(ctx, "all", Query{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list assets")
	assert.Nil(t, vm)
}

func TestGetViewModel_InvalidAssetFailsWholeRequest(t *testing.T) {
	ctx := context.Background()
	mockAssetRepo := new(MockAssetRepository)
	mockHistoryRepo := new(MockHistoryRepository)
	service := NewPortfolioService(mockAssetRepo, mockHistoryRepo, NewAssembler(allocation.DefaultOptions()))

	mockAssetRepo.On("List", ctx).Return([]*domain.Asset{
		{ID: "ok", Value: d("10")},
		{ID: "bad", Value: d("-10")},
	}, nil)
	mockHistoryRepo.On("ListByAsset", ctx, mock.Anything, time.Time{}).Return([]*domain.HistoryEntry{}, nil)

	vm, err := service.GetViewModel(ctx, "all", Query{})

	assert.ErrorIs(t, err, domain.ErrInvalidAsset)
	assert.Nil(t, vm)
}
