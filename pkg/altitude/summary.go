package altitude

import (
	"liyu1981.xyz/altitude-guard/pkg/geo"
	"liyu1981.xyz/altitude-guard/pkg/models"
)

// GetTrackSummary aggregates the history window: horizontal distance,
// cumulative gain and loss, and the altitude range.
func (e *Engine) GetTrackSummary(hoursBack float64) models.TrackSummary {
	return SummarizeTrack(e.GetAltitudeHistory(hoursBack))
}

func SummarizeTrack(samples []models.AltitudeSample) models.TrackSummary {
	summary := models.TrackSummary{Samples: len(samples)}
	if len(samples) == 0 {
		return summary
	}

	first := samples[0]
	summary.FromTime = first.Timestamp
	summary.ToTime = samples[len(samples)-1].Timestamp
	summary.MinAltitude = first.Altitude
	summary.MaxAltitude = first.Altitude

	for i := 1; i < len(samples); i++ {
		prev, curr := samples[i-1], samples[i]
		summary.DistanceM += geo.DistanceMeters(prev.Latitude, prev.Longitude, curr.Latitude, curr.Longitude)

		delta := curr.Altitude - prev.Altitude
		if delta > 0 {
			summary.ElevationGainM += delta
		} else {
			summary.ElevationLossM -= delta
		}

		summary.MinAltitude = min(summary.MinAltitude, curr.Altitude)
		summary.MaxAltitude = max(summary.MaxAltitude, curr.Altitude)
	}

	return summary
}
