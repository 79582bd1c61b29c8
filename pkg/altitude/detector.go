package altitude

import (
	"fmt"
	"math"

	"liyu1981.xyz/altitude-guard/pkg/models"
)

// ExtremeAltitudeM is fixed and not taken from settings.
const ExtremeAltitudeM = 4500.0

const (
	titleRapidAscent  = "Rapid Ascent Warning"
	titleThreshold    = "Altitude Threshold Crossed"
	titleHighAltitude = "Extreme Altitude Warning"
	titleAMSRisk      = "Altitude Sickness Risk"
)

// AscentRate is metres per hour between two samples. ok is false when the
// samples are not strictly ordered in time.
func AscentRate(prev, curr models.AltitudeSample) (rate float64, ok bool) {
	elapsedMs := curr.Timestamp - prev.Timestamp
	if elapsedMs <= 0 {
		return 0, false
	}
	hours := float64(elapsedMs) / float64(60*60*1000)
	return (curr.Altitude - prev.Altitude) / hours, true
}

// DetectEvents compares the two most recent samples against settings. The
// result carries no ids, the event store assigns them.
func DetectEvents(prev, curr models.AltitudeSample, settings models.AltitudeSettings) []models.AltitudeEvent {
	var events []models.AltitudeEvent
	location := &models.Location{Latitude: curr.Latitude, Longitude: curr.Longitude}

	if rate, ok := AscentRate(prev, curr); ok &&
		curr.Altitude > prev.Altitude &&
		rate > settings.DangerousAscentRateMPerHour {
		endTime := curr.Timestamp
		endAltitude := curr.Altitude
		events = append(events, models.AltitudeEvent{
			Type:          models.EventTypeRapidAscent,
			StartTime:     prev.Timestamp,
			EndTime:       &endTime,
			StartAltitude: prev.Altitude,
			EndAltitude:   &endAltitude,
			RateMPerHour:  &rate,
			Location:      location,
			Severity:      models.SeverityWarning,
			Message: fmt.Sprintf(
				"Rapid ascent detected: %d m/hour. Keep your ascent rate below 300 m/hour to reduce the risk of altitude sickness.",
				int(math.Round(rate)),
			),
		})
	}

	threshold := settings.DangerousAltitudeThresholdM
	if curr.Altitude > threshold && prev.Altitude <= threshold {
		events = append(events, models.AltitudeEvent{
			Type:          models.EventTypeThreshold,
			StartTime:     curr.Timestamp,
			StartAltitude: curr.Altitude,
			Location:      location,
			Severity:      models.SeverityInfo,
			Message: fmt.Sprintf(
				"You are now above %.0f m (current %.0f m). Watch for headache, nausea or dizziness.",
				threshold, curr.Altitude,
			),
		})
	}

	if curr.Altitude > ExtremeAltitudeM {
		events = append(events, models.AltitudeEvent{
			Type:          models.EventTypeHighAltitude,
			StartTime:     curr.Timestamp,
			StartAltitude: curr.Altitude,
			Location:      location,
			Severity:      models.SeverityDanger,
			Message: fmt.Sprintf(
				"Extreme altitude: %.0f m. Risk of altitude sickness is high, descend at the first sign of symptoms.",
				curr.Altitude,
			),
		})
	}

	return events
}

func notificationFor(event models.AltitudeEvent) (title string, urgent bool) {
	switch event.Type {
	case models.EventTypeRapidAscent:
		return titleRapidAscent, false
	case models.EventTypeThreshold:
		return titleThreshold, false
	case models.EventTypeHighAltitude:
		return titleHighAltitude, true
	default:
		return string(event.Type), event.Severity == models.SeverityDanger
	}
}
