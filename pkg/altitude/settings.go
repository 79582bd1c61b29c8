package altitude

import (
	"context"

	"go.uber.org/zap"
	"liyu1981.xyz/altitude-guard/pkg/common"
	"liyu1981.xyz/altitude-guard/pkg/models"
)

func (e *Engine) Settings() models.AltitudeSettings {
	e.cfgMu.RLock()
	defer e.cfgMu.RUnlock()
	return e.settings
}

func applySettingsPatch(s models.AltitudeSettings, p models.SettingsPatch) models.AltitudeSettings {
	if p.TrackingEnabled != nil {
		s.TrackingEnabled = *p.TrackingEnabled
	}
	if p.NotificationsEnabled != nil {
		s.NotificationsEnabled = *p.NotificationsEnabled
	}
	if p.TrackingIntervalMinutes != nil {
		s.TrackingIntervalMinutes = *p.TrackingIntervalMinutes
	}
	if p.DangerousAscentRateMPerHour != nil {
		s.DangerousAscentRateMPerHour = *p.DangerousAscentRateMPerHour
	}
	if p.DangerousAltitudeThresholdM != nil {
		s.DangerousAltitudeThresholdM = *p.DangerousAltitudeThresholdM
	}
	if p.AutoRecording != nil {
		s.AutoRecording = *p.AutoRecording
	}
	return s
}

// UpdateSettings merges patch over the current settings and persists the
// result. Flipping trackingEnabled starts or stops the tracker, and a new
// interval re-arms a running tracker. If the tracker cannot start the
// returned settings show trackingEnabled false.
func (e *Engine) UpdateSettings(ctx context.Context, patch models.SettingsPatch) (models.AltitudeSettings, error) {
	logger := common.GetCategoryLogger(common.LoggerNameAltitudeCore, common.LoggerCategorySettings)

	if err := models.ValidateSettingsPatch(&patch); err != nil {
		return e.Settings(), err
	}

	e.updateMu.Lock()
	defer e.updateMu.Unlock()

	e.cfgMu.Lock()
	prev := e.settings
	next := applySettingsPatch(prev, patch)
	if err := models.ValidateSettings(&next); err != nil {
		e.cfgMu.Unlock()
		return prev, err
	}
	if err := e.Repos.Settings.Save(ctx, next); err != nil {
		e.cfgMu.Unlock()
		return prev, err
	}
	e.settings = next
	e.cfgMu.Unlock()

	logger.Info("Settings updated", zap.Reflect("settings", next))

	// cfgMu must be released here, stopping the tracker waits for a tick
	// that reads settings.
	switch {
	case !prev.TrackingEnabled && next.TrackingEnabled:
		if !e.tracker.Start(ctx) {
			e.persistTrackingFlag(ctx, false)
		}
	case prev.TrackingEnabled && !next.TrackingEnabled:
		e.tracker.Stop()
	case next.TrackingEnabled && prev.TrackingIntervalMinutes != next.TrackingIntervalMinutes && e.tracker.Running():
		if !e.tracker.Start(ctx) {
			e.tracker.Stop()
			e.persistTrackingFlag(ctx, false)
		}
	}

	return e.Settings(), nil
}
