package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const serviceName = "wealthdash.v1.PortfolioService"

const (
	methodGetViewModel     = "/" + serviceName + "/GetViewModel"
	methodRecordValue      = "/" + serviceName + "/RecordValue"
	methodGetCorrelation   = "/" + serviceName + "/GetCorrelation"
	methodPlanContribution = "/" + serviceName + "/PlanContribution"
	methodTrackAsset       = "/" + serviceName + "/TrackAsset"
	methodUntrackAsset     = "/" + serviceName + "/UntrackAsset"
)

// PortfolioServiceServer is the server API for the portfolio service
type PortfolioServiceServer interface {
	GetViewModel(context.Context, *GetViewModelRequest) (*GetViewModelResponse, error)
	RecordValue(context.Context, *RecordValueRequest) (*RecordValueResponse, error)
	GetCorrelation(context.Context, *GetCorrelationRequest) (*GetCorrelationResponse, error)
	PlanContribution(context.Context, *PlanContributionRequest) (*PlanContributionResponse, error)
	TrackAsset(context.Context, *TrackAssetRequest) (*TrackAssetResponse, error)
	UntrackAsset(context.Context, *UntrackAssetRequest) (*UntrackAssetResponse, error)
}

// UnimplementedPortfolioServiceServer can be embedded to have forward compatible implementations
type UnimplementedPortfolioServiceServer struct{}

func (UnimplementedPortfolioServiceServer) GetViewModel(context.Context, *GetViewModelRequest) (*GetViewModelResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetViewModel not implemented")
}

func (UnimplementedPortfolioServiceServer) RecordValue(context.Context, *RecordValueRequest) (*RecordValueResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RecordValue not implemented")
}

func (UnimplementedPortfolioServiceServer) GetCorrelation(context.Context, *GetCorrelationRequest) (*GetCorrelationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCorrelation not implemented")
}

func (UnimplementedPortfolioServiceServer) PlanContribution(context.Context, *PlanContributionRequest) (*PlanContributionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PlanContribution not implemented")
}

func (UnimplementedPortfolioServiceServer) TrackAsset(context.Context, *TrackAssetRequest) (*TrackAssetResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method TrackAsset not implemented")
}

func (UnimplementedPortfolioServiceServer) UntrackAsset(context.Context, *UntrackAssetRequest) (*UntrackAssetResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UntrackAsset not implemented")
}

// RegisterPortfolioServiceServer registers srv on s
func RegisterPortfolioServiceServer(s grpc.ServiceRegistrar, srv PortfolioServiceServer) {
	s.RegisterService(&PortfolioService_ServiceDesc, srv)
}

// unaryHandler adapts a typed method into a grpc.MethodDesc handler
func unaryHandler[Req any, Resp any](fullMethod string, call func(PortfolioServiceServer, context.Context, *Req) (*Resp, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(PortfolioServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(PortfolioServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// PortfolioService_ServiceDesc is the grpc.ServiceDesc for the portfolio service
var PortfolioService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*PortfolioServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetViewModel",
			Handler:    unaryHandler(methodGetViewModel, PortfolioServiceServer.GetViewModel),
		},
		{
			MethodName: "RecordValue",
			Handler:    unaryHandler(methodRecordValue, PortfolioServiceServer.RecordValue),
		},
		{
			MethodName: "GetCorrelation",
			Handler:    unaryHandler(methodGetCorrelation, PortfolioServiceServer.GetCorrelation),
		},
		{
			MethodName: "PlanContribution",
			Handler:    unaryHandler(methodPlanContribution, PortfolioServiceServer.PlanContribution),
		},
		{
			MethodName: "TrackAsset",
			Handler:    unaryHandler(methodTrackAsset, PortfolioServiceServer.TrackAsset),
		},
		{
			MethodName: "UntrackAsset",
			Handler:    unaryHandler(methodUntrackAsset, PortfolioServiceServer.UntrackAsset),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "wealthdash/v1/portfolio",
}

// PortfolioServiceClient is the client API for the portfolio service
type PortfolioServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewPortfolioServiceClient creates a client speaking the JSON codec over cc
func NewPortfolioServiceClient(cc grpc.ClientConnInterface) *PortfolioServiceClient {
	return &PortfolioServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *PortfolioServiceClient) GetViewModel(ctx context.Context, in *GetViewModelRequest, opts ...grpc.CallOption) (*GetViewModelResponse, error) {
	return invoke[GetViewModelResponse](ctx, c.cc, methodGetViewModel, in, opts)
}

func (c *PortfolioServiceClient) RecordValue(ctx context.Context, in *RecordValueRequest, opts ...grpc.CallOption) (*RecordValueResponse, error) {
	return invoke[RecordValueResponse](ctx, c.cc, methodRecordValue, in, opts)
}

func (c *PortfolioServiceClient) GetCorrelation(ctx context.Context, in *GetCorrelationRequest, opts ...grpc.CallOption) (*GetCorrelationResponse, error) {
	return invoke[GetCorrelationResponse](ctx, c.cc, methodGetCorrelation, in, opts)
}

func (c *PortfolioServiceClient) PlanContribution(ctx context.Context, in *PlanContributionRequest, opts ...grpc.CallOption) (*PlanContributionResponse, error) {
	return invoke[PlanContributionResponse](ctx, c.cc, methodPlanContribution, in, opts)
}

func (c *PortfolioServiceClient) TrackAsset(ctx context.Context, in *TrackAssetRequest, opts ...grpc.CallOption) (*TrackAssetResponse, error) {
	return invoke[TrackAssetResponse](ctx, c.cc, methodTrackAsset, in, opts)
}

func (c *PortfolioServiceClient) UntrackAsset(ctx context.Context, in *UntrackAssetRequest, opts ...grpc.CallOption) (*UntrackAssetResponse, error) {
	return invoke[UntrackAssetResponse](ctx, c.cc, methodUntrackAsset, in, opts)
}
