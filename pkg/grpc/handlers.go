package grpc

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
	"liyu1981.xyz/altitude-guard/pkg/altitude"
	"liyu1981.xyz/altitude-guard/pkg/common"
	"liyu1981.xyz/altitude-guard/pkg/models"
)

// toStatus maps validation failures to InvalidArgument and anything else to
// Internal.
func toStatus(method string, err error) error {
	switch {
	case errors.Is(err, models.ErrInvalidSettings),
		errors.Is(err, models.ErrInvalidProfile),
		errors.Is(err, models.ErrInvalidSymptoms),
		errors.Is(err, models.ErrInvalidFix):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		common.GetLoggerWith(common.LoggerNameGrpcServer).
			Error("Request failed", zap.String("method", method), zap.Error(err))
		return status.Error(codes.Internal, err.Error())
	}
}

func decodeRequest(s *structpb.Struct, out any) error {
	if err := fromStruct(s, out); err != nil {
		return status.Errorf(codes.InvalidArgument, "malformed request: %v", err)
	}
	return nil
}

func (s *AltitudeServer) StartTracking(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.BoolValue, error) {
	return wrapperspb.Bool(s.Engine.StartTracking(ctx)), nil
}

func (s *AltitudeServer) StopTracking(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.BoolValue, error) {
	return wrapperspb.Bool(s.Engine.StopTracking(ctx)), nil
}

func (s *AltitudeServer) GetCurrentAltitude(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.DoubleValue, error) {
	current, ok := s.Engine.GetCurrentAltitude()
	if !ok {
		return nil, status.Error(codes.NotFound, "no altitude recorded yet")
	}
	return wrapperspb.Double(current), nil
}

func (s *AltitudeServer) GetAltitudeHistory(ctx context.Context, req *wrapperspb.DoubleValue) (*structpb.ListValue, error) {
	if req.GetValue() < 0 {
		return nil, status.Error(codes.InvalidArgument, "hours must not be negative")
	}
	return toList(s.Engine.GetAltitudeHistory(req.GetValue()))
}

func (s *AltitudeServer) GetTrackSummary(ctx context.Context, req *wrapperspb.DoubleValue) (*structpb.Struct, error) {
	if req.GetValue() < 0 {
		return nil, status.Error(codes.InvalidArgument, "hours must not be negative")
	}
	return toStruct(s.Engine.GetTrackSummary(req.GetValue()))
}

func (s *AltitudeServer) PushFix(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	if s.Location == nil {
		return nil, status.Error(codes.FailedPrecondition, "location push is not enabled")
	}

	var fix models.Fix
	if err := decodeRequest(req, &fix); err != nil {
		return nil, err
	}
	if err := s.Location.Push(fix); err != nil {
		return nil, toStatus("PushFix", err)
	}
	return &emptypb.Empty{}, nil
}

func (s *AltitudeServer) GetAltitudeEvents(ctx context.Context, req *wrapperspb.BoolValue) (*structpb.ListValue, error) {
	return toList(s.Engine.GetAltitudeEvents(req.GetValue()))
}

func (s *AltitudeServer) ResolveEvent(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	if req.GetValue() == "" {
		return nil, status.Error(codes.InvalidArgument, "event id is required")
	}
	ok, err := s.Engine.ResolveEvent(ctx, req.GetValue())
	if err != nil {
		return nil, toStatus("ResolveEvent", err)
	}
	return wrapperspb.Bool(ok), nil
}

type symptomsRequest struct {
	Symptoms map[models.SymptomKind]int `json:"symptoms"`
	Notes    string                     `json:"notes"`
}

func (s *AltitudeServer) LogSymptoms(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in symptomsRequest
	if err := decodeRequest(req, &in); err != nil {
		return nil, err
	}
	entry, err := s.Engine.LogSymptoms(ctx, in.Symptoms, in.Notes)
	if err != nil {
		return nil, toStatus("LogSymptoms", err)
	}
	return toStruct(entry)
}

func (s *AltitudeServer) GetSymptomLogs(ctx context.Context, req *wrapperspb.DoubleValue) (*structpb.ListValue, error) {
	if req.GetValue() < 0 {
		return nil, status.Error(codes.InvalidArgument, "hours must not be negative")
	}
	return toList(s.Engine.GetSymptomLogs(req.GetValue()))
}

func (s *AltitudeServer) GetRecommendation(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	return toStruct(s.Engine.GetRecommendation())
}

func (s *AltitudeServer) GetAMSInfo(ctx context.Context, req *wrapperspb.DoubleValue) (*structpb.Struct, error) {
	return toStruct(altitude.GetAMSInfo(req.GetValue()))
}

func (s *AltitudeServer) GetSettings(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	return toStruct(s.Engine.Settings())
}

func (s *AltitudeServer) UpdateSettings(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var patch models.SettingsPatch
	if err := decodeRequest(req, &patch); err != nil {
		return nil, err
	}
	settings, err := s.Engine.UpdateSettings(ctx, patch)
	if err != nil {
		return nil, toStatus("UpdateSettings", err)
	}
	return toStruct(settings)
}

func (s *AltitudeServer) GetProfile(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	return toStruct(s.Engine.GetProfile())
}

func (s *AltitudeServer) UpdateProfile(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var patch models.ProfilePatch
	if err := decodeRequest(req, &patch); err != nil {
		return nil, err
	}
	profile, err := s.Engine.UpdateProfile(ctx, patch)
	if err != nil {
		return nil, toStatus("UpdateProfile", err)
	}
	return toStruct(profile)
}
