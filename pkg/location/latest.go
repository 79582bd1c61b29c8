package location

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/altitude-guard/pkg/altitude"
	"liyu1981.xyz/altitude-guard/pkg/common"
	"liyu1981.xyz/altitude-guard/pkg/models"
)

// DefaultMaxFixAge bounds how old a pushed fix may be and still count for a
// tick.
const DefaultMaxFixAge = 2 * time.Minute

// Latest is a LocationProvider fed by the phone. Fixes arrive through Push
// (HTTP, gRPC or MQTT), and CurrentFix hands out the freshest one, waiting
// for the next push when the stored fix is stale.
type Latest struct {
	MaxAge time.Duration
	Now    func() time.Time

	mu       sync.Mutex
	granted  bool
	fix      *models.Fix
	received time.Time
	// pushed is closed and replaced on every push.
	pushed chan struct{}
}

func NewLatest(maxAge time.Duration) *Latest {
	if maxAge <= 0 {
		maxAge = DefaultMaxFixAge
	}
	return &Latest{
		MaxAge:  maxAge,
		Now:     time.Now,
		granted: true,
		pushed:  make(chan struct{}),
	}
}

// SetPermission records whether the phone currently allows location access.
func (l *Latest) SetPermission(granted bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.granted != granted {
		common.GetCategoryLogger(common.LoggerNameAltitudeCore, common.LoggerCategoryLocation).
			Info("Location permission changed", zap.Bool("granted", granted))
	}
	l.granted = granted
}

func (l *Latest) RequestPermission(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.granted {
		return altitude.ErrPermissionDenied
	}
	return nil
}

// Push validates and stores a fix. A zero timestamp is stamped with the
// receive time.
func (l *Latest) Push(fix models.Fix) error {
	if err := models.ValidateFix(&fix); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.Now()
	if fix.Timestamp == 0 {
		fix.Timestamp = now.UnixMilli()
	}
	fix.Altitude = clone(fix.Altitude)
	fix.Accuracy = clone(fix.Accuracy)

	l.fix = &fix
	l.received = now
	close(l.pushed)
	l.pushed = make(chan struct{})
	return nil
}

func (l *Latest) CurrentFix(ctx context.Context) (*models.Fix, error) {
	for {
		l.mu.Lock()
		if !l.granted {
			l.mu.Unlock()
			return nil, altitude.ErrPermissionDenied
		}
		if l.fix != nil && l.Now().Sub(l.received) <= l.MaxAge {
			fix := *l.fix
			fix.Altitude = clone(fix.Altitude)
			fix.Accuracy = clone(fix.Accuracy)
			l.mu.Unlock()
			return &fix, nil
		}
		pushed := l.pushed
		l.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-pushed:
		}
	}
}

func clone(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
