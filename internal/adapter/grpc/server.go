package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/simaogato/wealthdash/internal/domain"
	"github.com/simaogato/wealthdash/internal/usecase/allocation"
	"github.com/simaogato/wealthdash/internal/usecase/correlation"
	"github.com/simaogato/wealthdash/internal/usecase/holdings"
	"github.com/simaogato/wealthdash/internal/usecase/portfolio"
	"github.com/simaogato/wealthdash/internal/usecase/rebalance"
	"github.com/simaogato/wealthdash/internal/usecase/valuation"
)

// Server implements the PortfolioService gRPC server
type Server struct {
	UnimplementedPortfolioServiceServer

	PortfolioService *portfolio.PortfolioService
	ValuationService *valuation.ValuationService
	AssetService     *holdings.AssetService
	Palette          []string
}

// NewServer creates a new gRPC server instance
func NewServer(
	portfolioService *portfolio.PortfolioService,
	valuationService *valuation.ValuationService,
	assetService *holdings.AssetService,
	palette []string,
) *Server {
	return &Server{
		PortfolioService: portfolioService,
		ValuationService: valuationService,
		AssetService:     assetService,
		Palette:          palette,
	}
}

// GetViewModel handles the GetViewModel RPC
func (s *Server) GetViewModel(ctx context.Context, req *GetViewModelRequest) (*GetViewModelResponse, error) {
	var sortKey domain.SortKey
	if req.SortKey != "" {
		key, err := domain.ParseSortKey(req.SortKey)
		if err != nil {
			return nil, mapError(err)
		}
		sortKey = key
	}

	filter, err := domain.ParseCategoryFilter(req.Categories)
	if err != nil {
		return nil, mapError(err)
	}

	vm, err := s.PortfolioService.GetViewModel(ctx, req.Period, portfolio.Query{SortKey: sortKey, Filter: filter})
	if err != nil {
		return nil, mapError(err)
	}

	return ViewModelResponse(vm, s.Palette), nil
}

// RecordValue handles the RecordValue RPC
func (s *Server) RecordValue(ctx context.Context, req *RecordValueRequest) (*RecordValueResponse, error) {
	if req.AssetId == "" {
		return nil, status.Error(codes.InvalidArgument, "asset_id is required")
	}

	value, err := decimal.NewFromString(req.Value)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid value format: %v", err)
	}

	var at time.Time
	if req.Timestamp != nil {
		at = *req.Timestamp
	}

	entry, err := s.ValuationService.RecordValue(ctx, req.AssetId, value, at)
	if err != nil {
		return nil, mapError(err)
	}

	return &RecordValueResponse{
		EntryId:   entry.ID.String(),
		Timestamp: entry.Timestamp,
	}, nil
}

// GetCorrelation handles the GetCorrelation RPC
func (s *Server) GetCorrelation(ctx context.Context, req *GetCorrelationRequest) (*GetCorrelationResponse, error) {
	p, err := domain.ParsePeriod(req.Period)
	if err != nil {
		return nil, mapError(err)
	}

	snapshot, err := s.PortfolioService.LoadSnapshot(ctx, req.Period)
	if err != nil {
		return nil, mapError(err)
	}

	result, err := correlation.Matrix(snapshot.Assets, p)
	if err != nil {
		return nil, mapError(err)
	}

	pairs := make([]CorrelationPair, 0, len(result.Pairs))
	for _, pair := range result.Pairs {
		pairs = append(pairs, CorrelationPair{
			AssetA:      pair.AssetA,
			AssetB:      pair.AssetB,
			Coefficient: pair.Coefficient,
			Points:      pair.Points,
		})
	}

	return &GetCorrelationResponse{
		Pairs: pairs,
		Mean:  result.Mean,
		Min:   result.Min,
		Max:   result.Max,
	}, nil
}

// PlanContribution handles the PlanContribution RPC
// Current holdings are the per-category totals of the stored assets.
func (s *Server) PlanContribution(ctx context.Context, req *PlanContributionRequest) (*PlanContributionResponse, error) {
	contribution, err := decimal.NewFromString(req.Contribution)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid contribution format: %v", err)
	}

	targets := make(map[domain.Category]decimal.Decimal, len(req.Targets))
	for raw, weightStr := range req.Targets {
		category := domain.Category(raw)
		if !category.IsValid() {
			return nil, status.Errorf(codes.InvalidArgument, "invalid target category %q", raw)
		}
		weight, err := decimal.NewFromString(weightStr)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid weight format for %s: %v", raw, err)
		}
		targets[category] = weight
	}

	snapshot, err := s.PortfolioService.LoadSnapshot(ctx, domain.PeriodAll.String())
	if err != nil {
		return nil, mapError(err)
	}

	current := make(map[domain.Category]decimal.Decimal)
	for _, asset := range snapshot.Assets {
		current[asset.Category] = current[asset.Category].Add(asset.Value)
	}

	plan, err := rebalance.CalculatePlan(current, targets, contribution)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s", err.Error())
	}

	resp := &PlanContributionResponse{
		Contributions: make(map[string]string, len(plan.Contributions)),
		After:         make(map[string]string, len(plan.After)),
	}
	for c, amount := range plan.Contributions {
		resp.Contributions[string(c)] = amount.String()
	}
	for c, amount := range plan.After {
		resp.After[string(c)] = amount.String()
	}

	return resp, nil
}

// TrackAsset handles the TrackAsset RPC
func (s *Server) TrackAsset(ctx context.Context, req *TrackAssetRequest) (*TrackAssetResponse, error) {
	value, err := decimal.NewFromString(req.Value)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid value format: %v", err)
	}

	asset, err := s.AssetService.TrackAsset(ctx, domain.Asset{
		ID:       req.Id,
		Name:     req.Name,
		Category: domain.Category(req.Category),
		Value:    value,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &TrackAssetResponse{
		Asset: AssetView{
			Id:          asset.ID,
			Name:        asset.Name,
			Category:    string(asset.Category),
			Value:       asset.Value.String(),
			Performance: asset.Performance.String(),
		},
	}, nil
}

// UntrackAsset handles the UntrackAsset RPC
func (s *Server) UntrackAsset(ctx context.Context, req *UntrackAssetRequest) (*UntrackAssetResponse, error) {
	if req.AssetId == "" {
		return nil, status.Error(codes.InvalidArgument, "asset_id is required")
	}

	if err := s.AssetService.UntrackAsset(ctx, req.AssetId); err != nil {
		return nil, mapError(err)
	}

	return &UntrackAssetResponse{}, nil
}

// ViewModelResponse converts a domain view-model to its wire form.
// Colors are left empty when palette is empty.
func ViewModelResponse(vm *domain.PortfolioViewModel, palette []string) *GetViewModelResponse {
	resp := &GetViewModelResponse{
		Period:                  vm.Period.String(),
		TotalValue:              vm.TotalValue.String(),
		TotalPerformancePercent: vm.TotalPerformancePercent.String(),
		TotalPerformanceValue:   vm.TotalPerformanceValue.String(),
		Assets:                  make([]AssetView, 0, len(vm.SortedAssets)),
		Allocation:              make([]AllocationView, 0, len(vm.AllocationBuckets)),
		Segments:                make([]SegmentView, 0, len(vm.AllocationBuckets)),
		Series:                  make([]SeriesPointView, 0, len(vm.HistoricalSeries)),
	}

	for _, a := range vm.SortedAssets {
		resp.Assets = append(resp.Assets, AssetView{
			Id:          a.ID,
			Name:        a.Name,
			Category:    string(a.Category),
			Value:       a.Value.String(),
			Performance: a.Performance.String(),
		})
	}

	for _, b := range vm.AllocationBuckets {
		view := AllocationView{
			Category:   string(b.Category),
			ShortLabel: b.ShortLabel,
			Value:      b.Value.String(),
			Percentage: b.Percentage.StringFixed(1),
			ColorIndex: b.ColorIndex,
		}
		if len(palette) > 0 {
			view.Color = allocation.ColorFor(palette, b.ColorIndex)
		}
		resp.Allocation = append(resp.Allocation, view)
	}

	for _, seg := range allocation.Segments(vm.AllocationBuckets) {
		resp.Segments = append(resp.Segments, SegmentView{
			Category:    string(seg.Category),
			ColorIndex:  seg.ColorIndex,
			StartOffset: seg.StartOffset.String(),
			Length:      seg.Length.String(),
		})
	}

	for _, p := range vm.HistoricalSeries {
		resp.Series = append(resp.Series, SeriesPointView{
			Timestamp: p.Timestamp,
			Value:     p.Value.String(),
		})
	}

	return resp
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrInvalidPeriod),
		errors.Is(err, domain.ErrInvalidAsset),
		errors.Is(err, domain.ErrInvalidSortKey),
		errors.Is(err, domain.ErrInvalidCategoryFilter):
		return status.Errorf(codes.InvalidArgument, "%s", err.Error())
	case errors.Is(err, domain.ErrAssetNotFound):
		return status.Errorf(codes.NotFound, "%s", err.Error())
	case errors.Is(err, domain.ErrAssetExists):
		return status.Errorf(codes.AlreadyExists, "%s", err.Error())
	case errors.Is(err, context.Canceled):
		return status.Errorf(codes.Canceled, "%s", err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Errorf(codes.DeadlineExceeded, "%s", err.Error())
	}

	// Default to Internal error for unknown errors
	return status.Errorf(codes.Internal, "%s", err.Error())
}
