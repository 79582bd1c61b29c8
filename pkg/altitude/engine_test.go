package altitude

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"

	"liyu1981.xyz/altitude-guard/pkg/altitude/mocks"
	"liyu1981.xyz/altitude-guard/pkg/models"
)

func TestEngine_ScenarioA_RapidAscent(t *testing.T) {
	_, notifier := newMockNotifier(t)
	notifier.EXPECT().
		Notify(gomock.Any(), titleRapidAscent, gomock.Any(), false).
		DoAndReturn(func(_ context.Context, _ string, body string, _ bool) error {
			assert.Contains(t, body, "600 m/hour")
			return nil
		}).
		Times(1)

	loc := &fakeLocation{}
	loc.Set(2000)
	te := newTestEngine(t, loc, notifier)
	require.True(t, te.StartTracking(context.Background()))

	te.tickAt(t, loc, time.Hour, 2600)

	events := te.GetAltitudeEvents(false)
	require.Len(t, events, 1)
	assert.Equal(t, models.EventTypeRapidAscent, events[0].Type)
	require.NotNil(t, events[0].RateMPerHour)
	assert.InDelta(t, 600, *events[0].RateMPerHour, 1e-9)

	rec := te.GetRecommendation()
	assert.Equal(t, models.SeverityWarning, rec.Severity)
	assert.Contains(t, rec.Actions, "Slow your ascent")
}

func TestEngine_ConsecutiveRapidAscentsNotified(t *testing.T) {
	_, notifier := newMockNotifier(t)
	notifier.EXPECT().Notify(gomock.Any(), titleRapidAscent, gomock.Any(), false).Return(nil).Times(2)
	notifier.EXPECT().Notify(gomock.Any(), titleThreshold, gomock.Any(), false).Return(nil).Times(1)

	loc := &fakeLocation{}
	loc.Set(2000)
	te := newTestEngine(t, loc, notifier)
	te.NotifyLimiter = NewRateLimiterStore(rate.Limit(1.0/300), 1)
	require.True(t, te.StartTracking(context.Background()))

	te.tickAt(t, loc, time.Hour, 2600)
	te.tickAt(t, loc, time.Hour, 3300)

	assert.Len(t, te.GetAltitudeEvents(false), 3)
}

func TestEngine_ScenarioA_WithLog(t *testing.T) {
	buf := captureLogs(t, zapcore.InfoLevel)

	loc := &fakeLocation{}
	loc.Set(2000)
	te := newTestEngine(t, loc, nil)
	require.True(t, te.StartTracking(context.Background()))
	te.tickAt(t, loc, time.Hour, 2600)

	logs := ParseLogs(buf)

	assert.True(t, findLog(logs, "Tracking started", func(entry map[string]any) bool {
		return entry["logger"] == "altitude_core" && entry["category"] == "tracker"
	}))
	assert.True(t, findLog(logs, "Event found", func(entry map[string]any) bool {
		event, ok := entry["event"].(map[string]any)
		return ok &&
			entry["logger"] == "altitude_core" &&
			entry["category"] == "event" &&
			event["type"] == "rapid-ascent" &&
			event["severity"] == "warning" &&
			event["rateMPerHour"] == 600.0
	}))
	// Debug entries are filtered at info level.
	assert.False(t, findLog(logs, "Sample recorded", nil))
}

func TestEngine_ScenarioB_SevereSymptoms(t *testing.T) {
	_, notifier := newMockNotifier(t)
	notifier.EXPECT().Notify(gomock.Any(), titleAMSRisk, gomock.Any(), true).Return(nil)

	loc := &fakeLocation{}
	loc.Set(4000)
	te := newTestEngine(t, loc, notifier)
	require.True(t, te.StartTracking(context.Background()))

	entry, err := te.LogSymptoms(context.Background(), map[models.SymptomKind]int{
		models.SymptomHeadache: 3,
		models.SymptomNausea:   2,
	}, "")
	require.NoError(t, err)
	assert.Equal(t, 10, SeverityScore(entry.Symptoms))
	assert.Equal(t, 4000.0, entry.Altitude)

	rec := te.GetRecommendation()
	assert.Equal(t, models.SeverityDanger, rec.Severity)
	assert.Contains(t, rec.Actions, "Descend immediately")
}

func TestEngine_ScenarioC_LowAltitude(t *testing.T) {
	loc := &fakeLocation{}
	loc.Set(1800)
	te := newTestEngine(t, loc, nil)

	rec := te.GetRecommendation()
	assert.Equal(t, models.SeverityInfo, rec.Severity)
	assert.Equal(t, []string{"Start altitude tracking"}, rec.Actions)

	require.True(t, te.StartTracking(context.Background()))
	rec = te.GetRecommendation()
	assert.Equal(t, models.SeverityInfo, rec.Severity)
	assert.True(t, strings.Contains(rec.Message, "Low risk"))
}

func TestEngine_ScenarioD_ExtremeAltitude(t *testing.T) {
	_, notifier := newMockNotifier(t)
	notifier.EXPECT().Notify(gomock.Any(), titleHighAltitude, gomock.Any(), true).Return(nil).Times(1)
	notifier.EXPECT().Notify(gomock.Any(), titleRapidAscent, gomock.Any(), false).Return(nil).AnyTimes()

	loc := &fakeLocation{}
	loc.Set(5900)
	te := newTestEngine(t, loc, notifier)
	require.True(t, te.StartTracking(context.Background()))
	te.tickAt(t, loc, time.Hour, 6000)
	te.tickAt(t, loc, time.Hour, 6050)

	// The open high-altitude event holds back duplicates.
	var high int
	for _, e := range te.GetAltitudeEvents(true) {
		if e.Type == models.EventTypeHighAltitude {
			high++
		}
	}
	assert.Equal(t, 1, high)

	_, err := te.LogSymptoms(context.Background(), map[models.SymptomKind]int{models.SymptomDizziness: 1}, "")
	require.NoError(t, err)

	rec := te.GetRecommendation()
	assert.Equal(t, models.SeverityDanger, rec.Severity)
	assert.Contains(t, rec.Actions, "Descend immediately")
}

func TestEngine_RecommendationIgnoresOldSymptoms(t *testing.T) {
	loc := &fakeLocation{}
	loc.Set(3000)
	te := newTestEngine(t, loc, nil)
	ctx := context.Background()
	require.True(t, te.StartTracking(ctx))

	_, err := te.LogSymptoms(ctx, map[models.SymptomKind]int{models.SymptomHeadache: 3}, "")
	require.NoError(t, err)
	assert.Contains(t, te.GetRecommendation().Actions, "Rest for 24 hours before going higher")

	te.tickAt(t, loc, 25*time.Hour, 3000)
	rec := te.GetRecommendation()
	assert.Equal(t, models.SeverityInfo, rec.Severity)
}

func TestEngine_NotificationsDisabledStillRecords(t *testing.T) {
	_, notifier := newMockNotifier(t)

	loc := &fakeLocation{}
	loc.Set(2900)
	te := newTestEngine(t, loc, notifier)
	ctx := context.Background()

	off := false
	_, err := te.UpdateSettings(ctx, models.SettingsPatch{NotificationsEnabled: &off})
	require.NoError(t, err)
	require.True(t, te.StartTracking(ctx))
	te.tickAt(t, loc, time.Hour, 4600)

	assert.Len(t, te.GetAltitudeEvents(false), 3)
}

func TestEngine_NotifierFailureLogged(t *testing.T) {
	buf := captureLogs(t, zapcore.InfoLevel)

	_, notifier := newMockNotifier(t)
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(assert.AnError).AnyTimes()

	loc := &fakeLocation{}
	loc.Set(2900)
	te := newTestEngine(t, loc, notifier)
	require.True(t, te.StartTracking(context.Background()))
	te.tickAt(t, loc, time.Hour, 3100)

	assert.Len(t, te.GetAltitudeEvents(false), 1)
	assert.True(t, findLog(ParseLogs(buf), "Notification failed", func(entry map[string]any) bool {
		return entry["category"] == "notify" && entry["title"] == titleThreshold
	}))
}

func TestEngine_WithServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	events := mocks.NewMockIEvents(ctrl)
	events.EXPECT().List(true).Return([]models.AltitudeEvent{{ID: "e1"}})
	events.EXPECT().Resolve(gomock.Any(), "e1").Return(true, nil)

	te := newTestEngine(t, &fakeLocation{}, nil)
	te.WithServices(ServiceOpts{Events: events})

	got := te.GetAltitudeEvents(true)
	require.Len(t, got, 1)
	ok, err := te.ResolveEvent(context.Background(), "e1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEngine_TrackSummary(t *testing.T) {
	te := newTestEngine(t, &fakeLocation{}, nil)
	assert.Equal(t, models.TrackSummary{}, te.GetTrackSummary(0))

	loc := &fakeLocation{}
	loc.Set(2800)
	te = newTestEngine(t, loc, nil)
	require.True(t, te.StartTracking(context.Background()))
	te.tickAt(t, loc, time.Hour, 3000)
	te.tickAt(t, loc, time.Hour, 2900)

	summary := te.GetTrackSummary(0)
	assert.Equal(t, 3, summary.Samples)
	assert.Equal(t, 200.0, summary.ElevationGainM)
	assert.Equal(t, 100.0, summary.ElevationLossM)
	assert.Equal(t, 2800.0, summary.MinAltitude)
	assert.Equal(t, 3000.0, summary.MaxAltitude)
	assert.Equal(t, 0.0, summary.DistanceM)
	assert.Equal(t, (2 * time.Hour).Milliseconds(), summary.ToTime-summary.FromTime)
}

func TestSummarizeTrack_Distance(t *testing.T) {
	samples := []models.AltitudeSample{
		{Altitude: 2860, Latitude: 27.6869, Longitude: 86.7314, Timestamp: baseMs},
		{Altitude: 3440, Latitude: 27.8069, Longitude: 86.7140, Timestamp: baseMs + 6*hourMs},
	}

	summary := SummarizeTrack(samples)
	assert.Greater(t, summary.DistanceM, 12_000.0)
	assert.Less(t, summary.DistanceM, 15_000.0)
	assert.Equal(t, 580.0, summary.ElevationGainM)
}
