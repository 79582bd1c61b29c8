package grpc

import (
	"golang.org/x/time/rate"
	"liyu1981.xyz/altitude-guard/pkg/altitude"
	"liyu1981.xyz/altitude-guard/pkg/location"
)

type AltitudeServer struct {
	Engine *altitude.Engine
	// Location is nil when fixes are not pushed by the phone.
	Location         *location.Latest
	RateLimiterStore *altitude.RateLimiterStore
}

func (s *AltitudeServer) GetLimiter(clientID string) *rate.Limiter {
	if s.RateLimiterStore == nil {
		return nil
	} else {
		return s.RateLimiterStore.GetLimiter(clientID)
	}
}

func (s *AltitudeServer) CheckClientLimiter(clientID string) bool {
	limiter := s.GetLimiter(clientID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}
