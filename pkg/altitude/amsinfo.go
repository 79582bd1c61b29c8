package altitude

import "liyu1981.xyz/altitude-guard/pkg/models"

var amsInfoTable = []struct {
	below float64
	info  models.AMSInfo
}{
	{
		below: ModerateAltitudeM,
		info: models.AMSInfo{
			RiskLevel:            "low",
			Symptoms:             []string{"Rarely any", "Mild breathlessness on exertion"},
			Recommendations:      []string{"No special precautions needed", "Stay hydrated"},
			MaxAscentRateMPerDay: 1000,
		},
	},
	{
		below: HighAltitudeM,
		info: models.AMSInfo{
			RiskLevel:            "moderate",
			Symptoms:             []string{"Headache", "Nausea", "Fatigue", "Trouble sleeping"},
			Recommendations:      []string{"Ascend gradually", "Avoid alcohol", "Stay hydrated"},
			MaxAscentRateMPerDay: 500,
		},
	},
	{
		below: VeryHighAltitudeM,
		info: models.AMSInfo{
			RiskLevel:            "high",
			Symptoms:             []string{"Severe headache", "Vomiting", "Dizziness", "Shortness of breath"},
			Recommendations:      []string{"Sleep no more than 300 m higher per day", "Rest day every 1000 m", "Descend if symptoms worsen"},
			MaxAscentRateMPerDay: 300,
		},
	},
}

var extremeAMSInfo = models.AMSInfo{
	RiskLevel:            "extreme",
	Symptoms:             []string{"Confusion", "Loss of coordination", "Breathlessness at rest", "Persistent cough"},
	Recommendations:      []string{"Use supplemental oxygen", "Limit time at altitude", "Descend at the first sign of symptoms"},
	MaxAscentRateMPerDay: 300,
}

// GetAMSInfo is a static lookup by altitude band, independent of live state.
func GetAMSInfo(altitude float64) models.AMSInfo {
	for _, row := range amsInfoTable {
		if altitude < row.below {
			return cloneAMSInfo(row.info)
		}
	}
	return cloneAMSInfo(extremeAMSInfo)
}

func cloneAMSInfo(info models.AMSInfo) models.AMSInfo {
	info.Symptoms = append([]string(nil), info.Symptoms...)
	info.Recommendations = append([]string(nil), info.Recommendations...)
	return info
}
