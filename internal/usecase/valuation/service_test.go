package valuation

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/wealthdash/internal/domain"
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

func TestRecordValue_FirstObservation(t *testing.T) {
	ctx := context.Background()
	mockAssetRepo := new(MockAssetRepository)
	mockHistoryRepo := new(MockHistoryRepository)
	service := NewValuationService(mockAssetRepo, mockHistoryRepo)

	at := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	value := decimal.NewFromInt(1200)

	mockAssetRepo.On("GetByID", ctx, "etf").Return(&domain.Asset{ID: "etf"}, nil)
	mockHistoryRepo.On("GetLatest", ctx, "etf").Return(nil, fmt.Errorf("asset etf: %w", domain.ErrNoHistory))
	mockHistoryRepo.On("Add", ctx, mock.MatchedBy(func(e *domain.HistoryEntry) bool {
		return e.AssetID == "etf" && e.Timestamp.Equal(at) && e.Value.Equal(value)
	})).Return(nil)
	mockAssetRepo.On("UpdateValue", ctx, "etf", value).Return(nil)

	entry, err := service.RecordValue(ctx, "etf", value, at)

	require.NoError(t, err)
	assert.Equal(t, "etf", entry.AssetID)
	assert.NotEqual(t, uuid.Nil, entry.ID)

	mockAssetRepo.AssertExpectations(t)
	mockHistoryRepo.AssertExpectations(t)
}

func TestRecordValue_ZeroValueSoldOut(t *testing.T) {
	ctx := context.Background()
	mockAssetRepo := new(MockAssetRepository)
	mockHistoryRepo := new(MockHistoryRepository)
	service := NewValuationService(mockAssetRepo, mockHistoryRepo)

	latest := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	at := latest.Add(24 * time.Hour)

	mockAssetRepo.On("GetByID", ctx, "etf").Return(&domain.Asset{ID: "etf"}, nil)
	mockHistoryRepo.On("GetLatest", ctx, "etf").Return(&domain.HistoryEntry{AssetID: "etf", Timestamp: latest}, nil)
	mockHistoryRepo.On("Add", ctx, mock.MatchedBy(func(e *domain.HistoryEntry) bool {
		return e.Value.IsZero() && e.Timestamp.Equal(at)
	})).Return(nil)
	mockAssetRepo.On("UpdateValue", ctx, "etf", decimal.Zero).Return(nil)

	entry, err := service.RecordValue(ctx, "etf", decimal.Zero, at)

	require.NoError(t, err)
	assert.True(t, entry.Value.IsZero())
	mockAssetRepo.AssertExpectations(t)
	mockHistoryRepo.AssertExpectations(t)
}

func TestRecordValue_DefaultsToNow(t *testing.T) {
	ctx := context.Background()
	mockAssetRepo := new(MockAssetRepository)
	mockHistoryRepo := new(MockHistoryRepository)
	service := NewValuationService(mockAssetRepo, mockHistoryRepo)
	fixed := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return fixed }

	mockAssetRepo.On("GetByID", ctx, "etf").Return(&domain.Asset{ID: "etf"}, nil)
	mockHistoryRepo.On("GetLatest", ctx, "etf").Return(&domain.HistoryEntry{AssetID: "etf", Timestamp: fixed.Add(-time.Hour)}, nil)
	mockHistoryRepo.On("Add", ctx, mock.Anything).Return(nil)
	mockAssetRepo.On("UpdateValue", ctx, "etf", mock.Anything).Return(nil)

	entry, err := service.RecordValue(ctx, "etf", decimal.NewFromInt(5), time.Time{})

	require.NoError(t, err)
	assert.True(t, entry.Timestamp.Equal(fixed))
}

func TestRecordValue_Validation(t *testing.T) {
	ctx := context.Background()
	latest := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		value   decimal.Decimal
		at      time.Time
		setup   func(a *MockAssetRepository, h *MockHistoryRepository)
		wantErr error
		errMsg  string
	}{
		{
			name:    "Negative value",
			value:   decimal.NewFromInt(-1),
			at:      latest,
			setup:   func(a *MockAssetRepository, h *MockHistoryRepository) {},
			wantErr: domain.ErrInvalidAsset,
			errMsg:  "value cannot be negative",
		},
		{
			name:  "Unknown asset",
			value: decimal.NewFromInt(1),
			at:    latest,
			setup: func(a *MockAssetRepository, h *MockHistoryRepository) {
				a.On("GetByID", ctx, "etf").Return(nil, fmt.Errorf("%w: etf", domain.ErrAssetNotFound))
			},
			wantErr: domain.ErrAssetNotFound,
		},
		{
			name:  "Point before latest",
			value: decimal.NewFromInt(1),
			at:    latest.Add(-time.Hour),
			setup: func(a *MockAssetRepository, h *MockHistoryRepository) {
				a.On("GetByID", ctx, "etf").Return(&domain.Asset{ID: "etf"}, nil)
				h.On("GetLatest", ctx, "etf").Return(&domain.HistoryEntry{Timestamp: latest}, nil)
			},
			wantErr: domain.ErrInvalidAsset,
			errMsg:  "precedes latest point",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAssetRepo := new(MockAssetRepository)
			mockHistoryRepo := new(MockHistoryRepository)
			tt.setup(mockAssetRepo, mockHistoryRepo)
			service := NewValuationService(mockAssetRepo, mockHistoryRepo)

			entry, err := service.RecordValue(ctx, "etf", tt.value, tt.at)

			assert.Nil(t, entry)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.errMsg != "" {
				assert.Contains(t, err.Error(), tt.errMsg)
			}
			mockHistoryRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		})
	}
}

func TestRecordValue_HistoryLookupFailure(t *testing.T) {
	ctx := context.Background()
	mockAssetRepo := new(MockAssetRepository)
	mockHistoryRepo := new(MockHistoryRepository)
	service := NewValuationService(mockAssetRepo, mockHistoryRepo)

	mockAssetRepo.On("GetByID", ctx, "etf").Return(&domain.Asset{ID: "etf"}, nil)
	mockHistoryRepo.On("GetLatest", ctx, "etf").Return(nil, errors.New("connection reset"))

	_, err := service.RecordValue(ctx, "etf", decimal.NewFromInt(1), time.Now())

	assert.EqualError(t, err, "connection reset")
}
