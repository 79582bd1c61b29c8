package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// The service is declared by hand over protobuf well-known types, JSON-like
// payloads travel as structpb values.
const ServiceName = "altitudeguard.AltitudeService"

func fullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

type AltitudeServiceServer interface {
	StartTracking(context.Context, *emptypb.Empty) (*wrapperspb.BoolValue, error)
	StopTracking(context.Context, *emptypb.Empty) (*wrapperspb.BoolValue, error)
	GetCurrentAltitude(context.Context, *emptypb.Empty) (*wrapperspb.DoubleValue, error)
	GetAltitudeHistory(context.Context, *wrapperspb.DoubleValue) (*structpb.ListValue, error)
	GetTrackSummary(context.Context, *wrapperspb.DoubleValue) (*structpb.Struct, error)
	PushFix(context.Context, *structpb.Struct) (*emptypb.Empty, error)
	GetAltitudeEvents(context.Context, *wrapperspb.BoolValue) (*structpb.ListValue, error)
	ResolveEvent(context.Context, *wrapperspb.StringValue) (*wrapperspb.BoolValue, error)
	LogSymptoms(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetSymptomLogs(context.Context, *wrapperspb.DoubleValue) (*structpb.ListValue, error)
	GetRecommendation(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	GetAMSInfo(context.Context, *wrapperspb.DoubleValue) (*structpb.Struct, error)
	GetSettings(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	UpdateSettings(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetProfile(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	UpdateProfile(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

func unaryMethod[Req any, PReq interface {
	*Req
	proto.Message
}, Resp proto.Message](
	method string,
	call func(AltitudeServiceServer, context.Context, PReq) (Resp, error),
) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := PReq(new(Req))
			if err := dec(in); err != nil {
				return nil, err
			}
			s := srv.(AltitudeServiceServer)
			if interceptor == nil {
				return call(s, ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(method)}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				return call(s, ctx, req.(PReq))
			})
		},
	}
}

var AltitudeServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AltitudeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod("StartTracking", AltitudeServiceServer.StartTracking),
		unaryMethod("StopTracking", AltitudeServiceServer.StopTracking),
		unaryMethod("GetCurrentAltitude", AltitudeServiceServer.GetCurrentAltitude),
		unaryMethod("GetAltitudeHistory", AltitudeServiceServer.GetAltitudeHistory),
		unaryMethod("GetTrackSummary", AltitudeServiceServer.GetTrackSummary),
		unaryMethod("PushFix", AltitudeServiceServer.PushFix),
		unaryMethod("GetAltitudeEvents", AltitudeServiceServer.GetAltitudeEvents),
		unaryMethod("ResolveEvent", AltitudeServiceServer.ResolveEvent),
		unaryMethod("LogSymptoms", AltitudeServiceServer.LogSymptoms),
		unaryMethod("GetSymptomLogs", AltitudeServiceServer.GetSymptomLogs),
		unaryMethod("GetRecommendation", AltitudeServiceServer.GetRecommendation),
		unaryMethod("GetAMSInfo", AltitudeServiceServer.GetAMSInfo),
		unaryMethod("GetSettings", AltitudeServiceServer.GetSettings),
		unaryMethod("UpdateSettings", AltitudeServiceServer.UpdateSettings),
		unaryMethod("GetProfile", AltitudeServiceServer.GetProfile),
		unaryMethod("UpdateProfile", AltitudeServiceServer.UpdateProfile),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "altitudeguard/altitude_service",
}

func RegisterAltitudeServiceServer(s grpc.ServiceRegistrar, srv AltitudeServiceServer) {
	s.RegisterService(&AltitudeServiceDesc, srv)
}

// WriteMethods are the methods the rate limit interceptor guards.
var WriteMethods = []string{
	fullMethod("StartTracking"),
	fullMethod("StopTracking"),
	fullMethod("PushFix"),
	fullMethod("ResolveEvent"),
	fullMethod("LogSymptoms"),
	fullMethod("UpdateSettings"),
	fullMethod("UpdateProfile"),
}
