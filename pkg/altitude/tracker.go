package altitude

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/altitude-guard/pkg/common"
	"liyu1981.xyz/altitude-guard/pkg/models"
)

// Tracker is the only writer of samples and events.
type Tracker struct {
	engine *Engine

	mu      sync.Mutex
	cancel  func()
	running bool

	tickMu sync.Mutex
}

func (t *Tracker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Start arms the periodic tick and records one sample straight away. A
// running tracker is re-armed, never doubled. It returns false when the
// location permission is refused.
func (t *Tracker) Start(ctx context.Context) bool {
	logger := common.GetCategoryLogger(common.LoggerNameAltitudeCore, common.LoggerCategoryTracker)
	e := t.engine

	if err := e.Location.RequestPermission(ctx); err != nil {
		logger.Warn("Location permission refused, tracking not started", zap.Error(err))
		return false
	}

	interval := time.Duration(e.Settings().TrackingIntervalMinutes) * time.Minute

	t.mu.Lock()
	if t.cancel != nil {
		t.cancel()
	}
	t.cancel = e.Scheduler.Every(interval, t.Tick)
	t.running = true
	t.mu.Unlock()

	logger.Info("Tracking started", zap.Duration("interval", interval))

	t.Tick(ctx)
	return true
}

func (t *Tracker) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	if t.running {
		common.GetCategoryLogger(common.LoggerNameAltitudeCore, common.LoggerCategoryTracker).
			Info("Tracking stopped")
	}
	t.running = false
	return true
}

// Tick takes one fix, appends it and runs event detection. A missing
// altitude, a refused permission or a timed out fix make it a no-op.
func (t *Tracker) Tick(ctx context.Context) {
	t.tickMu.Lock()
	defer t.tickMu.Unlock()

	logger := common.GetCategoryLogger(common.LoggerNameAltitudeCore, common.LoggerCategoryTracker)
	e := t.engine

	fixCtx, cancel := context.WithTimeout(ctx, e.FixTimeout)
	fix, err := e.Location.CurrentFix(fixCtx)
	cancel()
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, ErrNoFix) {
			logger.Debug("No fix this tick", zap.Error(err))
		} else {
			logger.Warn("Location fix failed", zap.Error(err))
		}
		return
	}
	if fix == nil || fix.Altitude == nil {
		logger.Debug("Fix without altitude, skipping tick")
		return
	}

	sample := models.AltitudeSample{
		Altitude:  *fix.Altitude,
		Latitude:  fix.Latitude,
		Longitude: fix.Longitude,
		Accuracy:  fix.Accuracy,
		Timestamp: e.nowMillis(),
	}

	if err := e.History.Append(ctx, sample); err != nil {
		logger.Error("Failed to persist sample", zap.Error(err))
	}
	logger.Debug("Sample recorded", zap.Reflect("sample", sample))

	e.evaluateEvents(ctx)
}
