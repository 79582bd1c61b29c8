package location

import (
	"context"
	"math/rand/v2"
	"sync"

	"liyu1981.xyz/altitude-guard/pkg/models"
)

// Simulated walks a fixed trail north from Lukla, gaining ClimbPerFix metres
// per fix with some jitter, and holds at Ceiling. Used for development and
// load runs.
type Simulated struct {
	ClimbPerFix float64
	Ceiling     float64

	mu        sync.Mutex
	altitude  float64
	latitude  float64
	longitude float64
	rng       *rand.Rand
}

func NewSimulated(startAltitude float64, climbPerFix float64, ceiling float64, seed uint64) *Simulated {
	return &Simulated{
		ClimbPerFix: climbPerFix,
		Ceiling:     ceiling,
		altitude:    startAltitude,
		latitude:    27.6869,
		longitude:   86.7314,
		rng:         rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (s *Simulated) RequestPermission(ctx context.Context) error {
	return nil
}

func (s *Simulated) CurrentFix(ctx context.Context) (*models.Fix, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	jitter := (s.rng.Float64() - 0.5) * s.ClimbPerFix * 0.2
	s.altitude = min(s.altitude+s.ClimbPerFix+jitter, s.Ceiling)
	s.latitude += 0.001
	s.longitude += (s.rng.Float64() - 0.5) * 0.0005

	altitude := s.altitude
	accuracy := 5 + s.rng.Float64()*10
	return &models.Fix{
		Altitude:  &altitude,
		Latitude:  s.latitude,
		Longitude: s.longitude,
		Accuracy:  &accuracy,
	}, nil
}
