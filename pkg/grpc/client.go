package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
	"liyu1981.xyz/altitude-guard/pkg/models"
)

// AltitudeClient calls AltitudeService and decodes replies into the models
// types.
type AltitudeClient struct {
	cc grpc.ClientConnInterface
}

func NewAltitudeClient(cc grpc.ClientConnInterface) *AltitudeClient {
	return &AltitudeClient{cc: cc}
}

func (c *AltitudeClient) invoke(ctx context.Context, method string, in any, out any, opts ...grpc.CallOption) error {
	return c.cc.Invoke(ctx, fullMethod(method), in, out, opts...)
}

func (c *AltitudeClient) StartTracking(ctx context.Context, opts ...grpc.CallOption) (bool, error) {
	out := new(wrapperspb.BoolValue)
	if err := c.invoke(ctx, "StartTracking", &emptypb.Empty{}, out, opts...); err != nil {
		return false, err
	}
	return out.GetValue(), nil
}

func (c *AltitudeClient) StopTracking(ctx context.Context, opts ...grpc.CallOption) (bool, error) {
	out := new(wrapperspb.BoolValue)
	if err := c.invoke(ctx, "StopTracking", &emptypb.Empty{}, out, opts...); err != nil {
		return false, err
	}
	return out.GetValue(), nil
}

func (c *AltitudeClient) GetCurrentAltitude(ctx context.Context, opts ...grpc.CallOption) (float64, error) {
	out := new(wrapperspb.DoubleValue)
	if err := c.invoke(ctx, "GetCurrentAltitude", &emptypb.Empty{}, out, opts...); err != nil {
		return 0, err
	}
	return out.GetValue(), nil
}

func (c *AltitudeClient) GetAltitudeHistory(ctx context.Context, hoursBack float64, opts ...grpc.CallOption) ([]models.AltitudeSample, error) {
	out := new(structpb.ListValue)
	if err := c.invoke(ctx, "GetAltitudeHistory", wrapperspb.Double(hoursBack), out, opts...); err != nil {
		return nil, err
	}
	return decodeList[models.AltitudeSample](out)
}

func (c *AltitudeClient) GetTrackSummary(ctx context.Context, hoursBack float64, opts ...grpc.CallOption) (models.TrackSummary, error) {
	out := new(structpb.Struct)
	var summary models.TrackSummary
	if err := c.invoke(ctx, "GetTrackSummary", wrapperspb.Double(hoursBack), out, opts...); err != nil {
		return summary, err
	}
	return decodeStruct[models.TrackSummary](out)
}

func (c *AltitudeClient) PushFix(ctx context.Context, fix models.Fix, opts ...grpc.CallOption) error {
	in, err := toStruct(fix)
	if err != nil {
		return err
	}
	return c.invoke(ctx, "PushFix", in, new(emptypb.Empty), opts...)
}

func (c *AltitudeClient) GetAltitudeEvents(ctx context.Context, includeResolved bool, opts ...grpc.CallOption) ([]models.AltitudeEvent, error) {
	out := new(structpb.ListValue)
	if err := c.invoke(ctx, "GetAltitudeEvents", wrapperspb.Bool(includeResolved), out, opts...); err != nil {
		return nil, err
	}
	return decodeList[models.AltitudeEvent](out)
}

func (c *AltitudeClient) ResolveEvent(ctx context.Context, id string, opts ...grpc.CallOption) (bool, error) {
	out := new(wrapperspb.BoolValue)
	if err := c.invoke(ctx, "ResolveEvent", wrapperspb.String(id), out, opts...); err != nil {
		return false, err
	}
	return out.GetValue(), nil
}

func (c *AltitudeClient) LogSymptoms(ctx context.Context, symptoms map[models.SymptomKind]int, notes string, opts ...grpc.CallOption) (models.SymptomLog, error) {
	var entry models.SymptomLog
	in, err := toStruct(symptomsRequest{Symptoms: symptoms, Notes: notes})
	if err != nil {
		return entry, err
	}
	out := new(structpb.Struct)
	if err := c.invoke(ctx, "LogSymptoms", in, out, opts...); err != nil {
		return entry, err
	}
	return decodeStruct[models.SymptomLog](out)
}

func (c *AltitudeClient) GetSymptomLogs(ctx context.Context, hoursBack float64, opts ...grpc.CallOption) ([]models.SymptomLog, error) {
	out := new(structpb.ListValue)
	if err := c.invoke(ctx, "GetSymptomLogs", wrapperspb.Double(hoursBack), out, opts...); err != nil {
		return nil, err
	}
	return decodeList[models.SymptomLog](out)
}

func (c *AltitudeClient) GetRecommendation(ctx context.Context, opts ...grpc.CallOption) (models.Recommendation, error) {
	out := new(structpb.Struct)
	var rec models.Recommendation
	if err := c.invoke(ctx, "GetRecommendation", &emptypb.Empty{}, out, opts...); err != nil {
		return rec, err
	}
	return decodeStruct[models.Recommendation](out)
}

func (c *AltitudeClient) GetAMSInfo(ctx context.Context, altitude float64, opts ...grpc.CallOption) (models.AMSInfo, error) {
	out := new(structpb.Struct)
	var info models.AMSInfo
	if err := c.invoke(ctx, "GetAMSInfo", wrapperspb.Double(altitude), out, opts...); err != nil {
		return info, err
	}
	return decodeStruct[models.AMSInfo](out)
}

func (c *AltitudeClient) GetSettings(ctx context.Context, opts ...grpc.CallOption) (models.AltitudeSettings, error) {
	out := new(structpb.Struct)
	var settings models.AltitudeSettings
	if err := c.invoke(ctx, "GetSettings", &emptypb.Empty{}, out, opts...); err != nil {
		return settings, err
	}
	return decodeStruct[models.AltitudeSettings](out)
}

func (c *AltitudeClient) UpdateSettings(ctx context.Context, patch models.SettingsPatch, opts ...grpc.CallOption) (models.AltitudeSettings, error) {
	var settings models.AltitudeSettings
	in, err := toStruct(patch)
	if err != nil {
		return settings, err
	}
	out := new(structpb.Struct)
	if err := c.invoke(ctx, "UpdateSettings", in, out, opts...); err != nil {
		return settings, err
	}
	return decodeStruct[models.AltitudeSettings](out)
}

func (c *AltitudeClient) GetProfile(ctx context.Context, opts ...grpc.CallOption) (models.AltitudeProfile, error) {
	out := new(structpb.Struct)
	var profile models.AltitudeProfile
	if err := c.invoke(ctx, "GetProfile", &emptypb.Empty{}, out, opts...); err != nil {
		return profile, err
	}
	return decodeStruct[models.AltitudeProfile](out)
}

func (c *AltitudeClient) UpdateProfile(ctx context.Context, patch models.ProfilePatch, opts ...grpc.CallOption) (models.AltitudeProfile, error) {
	var profile models.AltitudeProfile
	in, err := toStruct(patch)
	if err != nil {
		return profile, err
	}
	out := new(structpb.Struct)
	if err := c.invoke(ctx, "UpdateProfile", in, out, opts...); err != nil {
		return profile, err
	}
	return decodeStruct[models.AltitudeProfile](out)
}

func decodeStruct[T any](s *structpb.Struct) (T, error) {
	var v T
	err := fromStruct(s, &v)
	return v, err
}

func decodeList[T any](l *structpb.ListValue) ([]T, error) {
	var v []T
	err := fromList(l, &v)
	return v, err
}
