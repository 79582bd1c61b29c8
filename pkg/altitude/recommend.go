package altitude

import (
	"time"

	"liyu1981.xyz/altitude-guard/pkg/models"
)

// Band boundaries, lower bound inclusive.
const (
	ModerateAltitudeM = 2500.0
	HighAltitudeM     = 3500.0
	VeryHighAltitudeM = 5500.0
)

const (
	moderateMaxAscentRate = 500.0
	highMaxAscentRate     = 300.0
)

// Recommend maps the latest sample, ascent rate and symptom score to exactly
// one row of the decision table. A nil sample means no data yet.
func Recommend(latest *models.AltitudeSample, ascentRateMPerHour float64, severityScore int) models.Recommendation {
	if latest == nil {
		return models.Recommendation{
			Message:  "No altitude data yet. Start tracking to get recommendations.",
			Severity: models.SeverityInfo,
			Actions:  []string{"Start altitude tracking"},
		}
	}

	altitude := latest.Altitude
	switch {
	case altitude < ModerateAltitudeM:
		return models.Recommendation{
			Message:  "Low risk of altitude sickness below 2500 m.",
			Severity: models.SeverityInfo,
			Actions:  []string{"Continue monitoring your altitude", "Stay hydrated"},
		}

	case altitude < HighAltitudeM:
		switch {
		case severityScore >= amsRiskScore:
			return models.Recommendation{
				Message:  "You have symptoms of altitude sickness.",
				Severity: models.SeverityWarning,
				Actions: []string{
					"Rest for 24 hours before going higher",
					"Avoid further ascent until symptoms improve",
					"Consider a mild analgesic for headache",
				},
			}
		case ascentRateMPerHour > moderateMaxAscentRate:
			return models.Recommendation{
				Message:  "You are ascending too quickly for this altitude.",
				Severity: models.SeverityWarning,
				Actions:  []string{"Slow your ascent", "Gain no more than 500 m per day"},
			}
		default:
			return models.Recommendation{
				Message:  "Moderate altitude. Mild symptoms are possible.",
				Severity: models.SeverityInfo,
				Actions:  []string{"Watch for headache or nausea", "Avoid alcohol", "Stay hydrated"},
			}
		}

	case altitude < VeryHighAltitudeM:
		switch {
		case severityScore >= amsUrgentScore:
			return models.Recommendation{
				Message:  "Severe altitude sickness symptoms at high altitude.",
				Severity: models.SeverityDanger,
				Actions: []string{
					"Descend immediately",
					"Seek medical help",
					"Use supplemental oxygen if available",
				},
			}
		case severityScore >= amsRiskScore:
			return models.Recommendation{
				Message:  "You have symptoms of altitude sickness at high altitude.",
				Severity: models.SeverityWarning,
				Actions: []string{
					"Stop ascending",
					"Rest for 24 to 48 hours",
					"Descend if symptoms get worse",
				},
			}
		case ascentRateMPerHour > highMaxAscentRate:
			return models.Recommendation{
				Message:  "You are ascending too quickly for high altitude.",
				Severity: models.SeverityWarning,
				Actions:  []string{"Slow your ascent", "Take a rest day", "Gain no more than 300 m per day"},
			}
		default:
			return models.Recommendation{
				Message:  "High altitude. Acclimatize carefully.",
				Severity: models.SeverityWarning,
				Actions:  []string{"Ascend slowly", "Consider rest days", "Monitor yourself for symptoms"},
			}
		}

	default:
		if severityScore > 0 {
			return models.Recommendation{
				Message:  "Any symptom at extreme altitude is dangerous.",
				Severity: models.SeverityDanger,
				Actions:  []string{"Descend immediately", "Seek medical help"},
			}
		}
		return models.Recommendation{
			Message:  "Extreme altitude. Risk is high even without symptoms.",
			Severity: models.SeverityDanger,
			Actions:  []string{"Minimize time at this altitude", "Descend at the first sign of symptoms"},
		}
	}
}

// GetRecommendation is recomputed on every call. The score comes from the
// most recent symptom log of the last 24 hours.
func (e *Engine) GetRecommendation() models.Recommendation {
	latest, ok := e.History.Latest()
	if !ok {
		return Recommend(nil, 0, 0)
	}

	rate := 0.0
	if prev, curr, ok := e.History.LastTwo(); ok {
		if r, ok := AscentRate(prev, curr); ok {
			rate = r
		}
	}

	score := 0
	if log, ok := e.Symptoms.Latest(); ok && log.Timestamp >= e.Now().Add(-24*time.Hour).UnixMilli() {
		score = SeverityScore(log.Symptoms)
	}

	return Recommend(&latest, rate, score)
}
