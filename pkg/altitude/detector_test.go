package altitude

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liyu1981.xyz/altitude-guard/pkg/models"
)

const hourMs = int64(60 * 60 * 1000)

func eventsOfType(events []models.AltitudeEvent, eventType models.EventType) []models.AltitudeEvent {
	var out []models.AltitudeEvent
	for _, e := range events {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}

func TestAscentRate(t *testing.T) {
	rate, ok := AscentRate(sampleAt(0, 2000), sampleAt(hourMs, 2600))
	require.True(t, ok)
	assert.InDelta(t, 600, rate, 1e-9)

	rate, ok = AscentRate(sampleAt(0, 3000), sampleAt(hourMs/2, 2900))
	require.True(t, ok)
	assert.InDelta(t, -200, rate, 1e-9)

	_, ok = AscentRate(sampleAt(hourMs, 3000), sampleAt(hourMs, 3100))
	assert.False(t, ok, "zero elapsed time has no rate")
}

func TestDetectEvents_RapidAscent(t *testing.T) {
	settings := models.DefaultSettings()

	cases := []struct {
		prev, curr models.AltitudeSample
	}{
		{sampleAt(0, 2000), sampleAt(hourMs, 2600)},
		{sampleAt(0, 1000), sampleAt(hourMs/4, 1200)},
		{sampleAt(5*hourMs, 2400), sampleAt(5*hourMs+60_000, 2410)},
		{sampleAt(0, 100), sampleAt(2*hourMs, 1200)},
	}

	for _, c := range cases {
		events := DetectEvents(c.prev, c.curr, settings)
		rapid := eventsOfType(events, models.EventTypeRapidAscent)
		require.Len(t, rapid, 1, "pair %v -> %v", c.prev, c.curr)

		expected, _ := AscentRate(c.prev, c.curr)
		event := rapid[0]
		require.NotNil(t, event.RateMPerHour)
		assert.InDelta(t, expected, *event.RateMPerHour, 1e-9)
		assert.Equal(t, models.SeverityWarning, event.Severity)
		assert.Equal(t, c.prev.Timestamp, event.StartTime)
		assert.Equal(t, c.curr.Timestamp, *event.EndTime)
		assert.Equal(t, c.prev.Altitude, event.StartAltitude)
		assert.Equal(t, c.curr.Altitude, *event.EndAltitude)
		assert.Contains(t, event.Message, "300 m/hour")
		assert.Empty(t, event.ID)
		assert.False(t, event.Resolved)
	}
}

func TestDetectEvents_RapidAscentMessageRoundsRate(t *testing.T) {
	events := DetectEvents(sampleAt(0, 2000), sampleAt(hourMs, 2600.6), models.DefaultSettings())
	rapid := eventsOfType(events, models.EventTypeRapidAscent)
	require.Len(t, rapid, 1)
	assert.Contains(t, rapid[0].Message, "601 m/hour")
}

func TestDetectEvents_NoRapidAscent(t *testing.T) {
	settings := models.DefaultSettings()

	cases := map[string][2]models.AltitudeSample{
		"rate equal to limit": {sampleAt(0, 2000), sampleAt(hourMs, 2500)},
		"slow ascent":         {sampleAt(0, 2000), sampleAt(hourMs, 2200)},
		"descent":             {sampleAt(0, 2600), sampleAt(hourMs/10, 2000)},
		"same timestamp":      {sampleAt(hourMs, 2000), sampleAt(hourMs, 2900)},
		"flat":                {sampleAt(0, 2000), sampleAt(hourMs, 2000)},
	}

	for name, pair := range cases {
		events := DetectEvents(pair[0], pair[1], settings)
		assert.Empty(t, eventsOfType(events, models.EventTypeRapidAscent), name)
	}
}

func TestDetectEvents_RapidAscentUsesSettings(t *testing.T) {
	settings := models.DefaultSettings()
	settings.DangerousAscentRateMPerHour = 1000

	events := DetectEvents(sampleAt(0, 2000), sampleAt(hourMs, 2600), settings)
	assert.Empty(t, eventsOfType(events, models.EventTypeRapidAscent))

	settings.DangerousAscentRateMPerHour = 100
	events = DetectEvents(sampleAt(0, 2000), sampleAt(hourMs, 2200), settings)
	assert.Len(t, eventsOfType(events, models.EventTypeRapidAscent), 1)
}

func TestDetectEvents_Threshold(t *testing.T) {
	settings := models.DefaultSettings() // threshold 3000

	cases := []struct {
		name     string
		prev     float64
		curr     float64
		expected int
	}{
		{"upward crossing", 2950, 3050, 1},
		{"from exactly threshold", 3000, 3001, 1},
		{"to exactly threshold", 2900, 3000, 0},
		{"both above", 3100, 3200, 0},
		{"both below", 2000, 2100, 0},
		{"downward crossing", 3100, 2900, 0},
	}

	for _, c := range cases {
		// a long interval keeps rapid-ascent out of the picture
		events := DetectEvents(sampleAt(0, c.prev), sampleAt(10*hourMs, c.curr), settings)
		threshold := eventsOfType(events, models.EventTypeThreshold)
		require.Len(t, threshold, c.expected, c.name)
		if c.expected == 1 {
			assert.Equal(t, models.SeverityInfo, threshold[0].Severity)
			assert.Equal(t, c.curr, threshold[0].StartAltitude)
		}
	}
}

func TestDetectEvents_ThresholdSequence(t *testing.T) {
	settings := models.DefaultSettings()
	settings.DangerousAltitudeThresholdM = 3500

	altitudes := []float64{3200, 3400, 3600, 3700, 3400, 3550, 3600}
	crossings := 0
	for i := 1; i < len(altitudes); i++ {
		prev := sampleAt(int64(i-1)*hourMs*10, altitudes[i-1])
		curr := sampleAt(int64(i)*hourMs*10, altitudes[i])
		crossings += len(eventsOfType(DetectEvents(prev, curr, settings), models.EventTypeThreshold))
	}
	assert.Equal(t, 2, crossings)
}

func TestDetectEvents_HighAltitude(t *testing.T) {
	settings := models.DefaultSettings()
	settings.DangerousAltitudeThresholdM = 10000

	events := DetectEvents(sampleAt(0, 4600), sampleAt(10*hourMs, 4700), settings)
	high := eventsOfType(events, models.EventTypeHighAltitude)
	require.Len(t, high, 1)
	assert.Equal(t, models.SeverityDanger, high[0].Severity)
	assert.Equal(t, 4700.0, high[0].StartAltitude)
	require.NotNil(t, high[0].Location)
	assert.Equal(t, 27.98, high[0].Location.Latitude)

	events = DetectEvents(sampleAt(0, 4400), sampleAt(10*hourMs, 4500), settings)
	assert.Empty(t, eventsOfType(events, models.EventTypeHighAltitude))
}

func TestDetectEvents_AllThree(t *testing.T) {
	events := DetectEvents(sampleAt(0, 2900), sampleAt(hourMs, 4600), models.DefaultSettings())
	require.Len(t, events, 3)
	assert.Equal(t, models.EventTypeRapidAscent, events[0].Type)
	assert.Equal(t, models.EventTypeThreshold, events[1].Type)
	assert.Equal(t, models.EventTypeHighAltitude, events[2].Type)
}

func TestNotificationFor(t *testing.T) {
	title, urgent := notificationFor(models.AltitudeEvent{Type: models.EventTypeHighAltitude})
	assert.Equal(t, "Extreme Altitude Warning", title)
	assert.True(t, urgent)

	title, urgent = notificationFor(models.AltitudeEvent{Type: models.EventTypeRapidAscent})
	assert.Equal(t, "Rapid Ascent Warning", title)
	assert.False(t, urgent)

	_, urgent = notificationFor(models.AltitudeEvent{Type: models.EventTypeThreshold})
	assert.False(t, urgent)
}
