package altitude

import (
	"context"
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/altitude-guard/pkg/common"
	"liyu1981.xyz/altitude-guard/pkg/models"
)

// StartTracking starts the tracker and persists trackingEnabled.
func (e *Engine) StartTracking(ctx context.Context) bool {
	e.updateMu.Lock()
	defer e.updateMu.Unlock()

	if !e.tracker.Start(ctx) {
		e.persistTrackingFlag(ctx, false)
		return false
	}
	e.persistTrackingFlag(ctx, true)
	return true
}

func (e *Engine) StopTracking(ctx context.Context) bool {
	e.updateMu.Lock()
	defer e.updateMu.Unlock()

	ok := e.tracker.Stop()
	e.persistTrackingFlag(ctx, false)
	return ok
}

// Resume re-arms the tracker when the persisted settings say it was on.
func (e *Engine) Resume(ctx context.Context) bool {
	if !e.Settings().TrackingEnabled {
		return false
	}
	return e.StartTracking(ctx)
}

// Close stops the tracker without touching persisted settings.
func (e *Engine) Close() {
	e.tracker.Stop()
}

func (e *Engine) persistTrackingFlag(ctx context.Context, enabled bool) {
	e.cfgMu.Lock()
	defer e.cfgMu.Unlock()

	if e.settings.TrackingEnabled == enabled {
		return
	}
	next := e.settings
	next.TrackingEnabled = enabled
	if err := e.Repos.Settings.Save(ctx, next); err != nil {
		common.GetCategoryLogger(common.LoggerNameAltitudeCore, common.LoggerCategorySettings).
			Error("Failed to persist tracking flag", zap.Bool("enabled", enabled), zap.Error(err))
	}
	e.settings = next
}

func (e *Engine) GetCurrentAltitude() (float64, bool) {
	latest, ok := e.History.Latest()
	if !ok {
		return 0, false
	}
	return latest.Altitude, true
}

func (e *Engine) GetPreviousAltitude() (float64, bool) {
	prev, ok := e.History.Previous()
	if !ok {
		return 0, false
	}
	return prev.Altitude, true
}

// GetAltitudeHistory returns samples of the last hoursBack hours, oldest
// first. A non-positive hoursBack means the full 24 hour window.
func (e *Engine) GetAltitudeHistory(hoursBack float64) []models.AltitudeSample {
	window := HistoryWindow
	if hoursBack > 0 {
		window = time.Duration(hoursBack * float64(time.Hour))
	}
	return e.History.Since(e.Now().Add(-window).UnixMilli())
}

func (e *Engine) GetAltitudeEvents(includeResolved bool) []models.AltitudeEvent {
	return e.Events.List(includeResolved)
}

func (e *Engine) ResolveEvent(ctx context.Context, id string) (bool, error) {
	ok, err := e.Events.Resolve(ctx, id)
	if err == nil && ok {
		common.GetCategoryLogger(common.LoggerNameAltitudeCore, common.LoggerCategoryEvent).
			Info("Event resolved", zap.String("id", id))
	}
	return ok, err
}

// evaluateEvents runs the detector over the latest pair of samples, stores
// what it finds and notifies.
func (e *Engine) evaluateEvents(ctx context.Context) {
	prev, curr, ok := e.History.LastTwo()
	if !ok {
		return
	}

	logger := common.GetCategoryLogger(common.LoggerNameAltitudeCore, common.LoggerCategoryEvent)
	settings := e.Settings()

	detected := DetectEvents(prev, curr, settings)
	if len(detected) == 0 {
		return
	}

	recorded, err := e.Events.Record(ctx, detected)
	if err != nil {
		logger.Error("Failed to persist events", zap.Error(err))
	}

	for _, event := range recorded {
		logger.Info("Event found", zap.Reflect("event", event))
		if settings.NotificationsEnabled {
			title, urgent := notificationFor(event)
			e.dispatch(ctx, title, event.Message, urgent)
		}
	}
}

// dispatch is best effort: throttled, failed or missing notifiers are only
// logged. Urgent alerts are never throttled.
func (e *Engine) dispatch(ctx context.Context, title string, body string, urgent bool) {
	logger := common.GetCategoryLogger(common.LoggerNameAltitudeCore, common.LoggerCategoryNotify)

	if e.Notifier == nil {
		return
	}
	if !e.NotifyLimiter.AllowAlert(title, body, urgent) {
		logger.Info("Notification throttled", zap.String("title", title))
		return
	}
	if err := e.Notifier.Notify(ctx, title, body, urgent); err != nil {
		logger.Warn("Notification failed", zap.String("title", title), zap.Error(err))
		return
	}
	logger.Info("Notification sent", zap.String("title", title), zap.Bool("urgent", urgent))
}
