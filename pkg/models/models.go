package models

import "time"

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

type EventType string

const (
	EventTypeAscent       EventType = "ascent"
	EventTypeDescent      EventType = "descent"
	EventTypeThreshold    EventType = "threshold"
	EventTypeRapidAscent  EventType = "rapid-ascent"
	EventTypeHighAltitude EventType = "high-altitude"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type FitnessLevel string

const (
	FitnessLow      FitnessLevel = "low"
	FitnessModerate FitnessLevel = "moderate"
	FitnessHigh     FitnessLevel = "high"
)

type SymptomKind string

const (
	SymptomHeadache          SymptomKind = "headache"
	SymptomNausea            SymptomKind = "nausea"
	SymptomVomiting          SymptomKind = "vomiting"
	SymptomConfusion         SymptomKind = "confusion"
	SymptomShortnessOfBreath SymptomKind = "shortness_of_breath"
	SymptomDizziness         SymptomKind = "dizziness"
	SymptomFatigue           SymptomKind = "fatigue"
	SymptomInsomnia          SymptomKind = "insomnia"
	SymptomLossOfAppetite    SymptomKind = "loss_of_appetite"
	SymptomSwelling          SymptomKind = "swelling"
)

// AltitudeSample is one altitude fix. Timestamp is milliseconds since epoch.
type AltitudeSample struct {
	Altitude  float64  `json:"altitude"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Accuracy  *float64 `json:"accuracy,omitempty"`
	Timestamp int64    `json:"timestamp"`
}

func (s AltitudeSample) Time() time.Time {
	return time.UnixMilli(s.Timestamp)
}

// Fix is what a location provider hands back. Altitude is nil when the
// device could not determine it.
type Fix struct {
	Altitude  *float64 `json:"altitude,omitempty"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Accuracy  *float64 `json:"accuracy,omitempty"`
	Timestamp int64    `json:"timestamp"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type AltitudeProfile struct {
	ID                 string        `json:"id"`
	HeightCm           *float64      `json:"heightCm,omitempty"`
	WeightKg           *float64      `json:"weightKg,omitempty"`
	Age                *int          `json:"age,omitempty"`
	Gender             *Gender       `json:"gender,omitempty"`
	FitnessLevel       *FitnessLevel `json:"fitnessLevel,omitempty"`
	PreviousAMSHistory bool          `json:"previousAMSHistory"`
	MedicalConditions  []string      `json:"medicalConditions,omitempty"`
	Medications        []string      `json:"medications,omitempty"`
	StartingAltitude   *float64      `json:"startingAltitude,omitempty"`
}

// ProfilePatch is a partial profile update, nil fields are left unchanged.
type ProfilePatch struct {
	HeightCm           *float64      `json:"heightCm,omitempty"`
	WeightKg           *float64      `json:"weightKg,omitempty"`
	Age                *int          `json:"age,omitempty"`
	Gender             *Gender       `json:"gender,omitempty"`
	FitnessLevel       *FitnessLevel `json:"fitnessLevel,omitempty"`
	PreviousAMSHistory *bool         `json:"previousAMSHistory,omitempty"`
	MedicalConditions  *[]string     `json:"medicalConditions,omitempty"`
	Medications        *[]string     `json:"medications,omitempty"`
	StartingAltitude   *float64      `json:"startingAltitude,omitempty"`
}

type AltitudeSettings struct {
	TrackingEnabled             bool    `json:"trackingEnabled"`
	NotificationsEnabled        bool    `json:"notificationsEnabled"`
	TrackingIntervalMinutes     int     `json:"trackingIntervalMinutes"`
	DangerousAscentRateMPerHour float64 `json:"dangerousAscentRateMPerHour"`
	DangerousAltitudeThresholdM float64 `json:"dangerousAltitudeThresholdM"`
	AutoRecording               bool    `json:"autoRecording"`
}

// SettingsPatch is a partial settings update, nil fields are left unchanged.
type SettingsPatch struct {
	TrackingEnabled             *bool    `json:"trackingEnabled,omitempty"`
	NotificationsEnabled        *bool    `json:"notificationsEnabled,omitempty"`
	TrackingIntervalMinutes     *int     `json:"trackingIntervalMinutes,omitempty"`
	DangerousAscentRateMPerHour *float64 `json:"dangerousAscentRateMPerHour,omitempty"`
	DangerousAltitudeThresholdM *float64 `json:"dangerousAltitudeThresholdM,omitempty"`
	AutoRecording               *bool    `json:"autoRecording,omitempty"`
}

type AltitudeEvent struct {
	ID            string    `json:"id"`
	Type          EventType `json:"type"`
	StartTime     int64     `json:"startTime"`
	EndTime       *int64    `json:"endTime,omitempty"`
	StartAltitude float64   `json:"startAltitude"`
	EndAltitude   *float64  `json:"endAltitude,omitempty"`
	RateMPerHour  *float64  `json:"rateMPerHour,omitempty"`
	Location      *Location `json:"location,omitempty"`
	Resolved      bool      `json:"resolved"`
	Severity      Severity  `json:"severity"`
	Message       string    `json:"message"`
}

type SymptomLog struct {
	ID        string              `json:"id"`
	Timestamp int64               `json:"timestamp"`
	Altitude  float64             `json:"altitude"`
	Symptoms  map[SymptomKind]int `json:"symptoms"`
	Notes     string              `json:"notes,omitempty"`
	Location  *Location           `json:"location,omitempty"`
}

type Recommendation struct {
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
	Actions  []string `json:"actions"`
}

type AMSInfo struct {
	RiskLevel            string   `json:"riskLevel"`
	Symptoms             []string `json:"symptoms"`
	Recommendations      []string `json:"recommendations"`
	MaxAscentRateMPerDay float64  `json:"maxAscentRateMPerDay"`
}

type TrackSummary struct {
	Samples        int     `json:"samples"`
	FromTime       int64   `json:"fromTime,omitempty"`
	ToTime         int64   `json:"toTime,omitempty"`
	DistanceM      float64 `json:"distanceM"`
	ElevationGainM float64 `json:"elevationGainM"`
	ElevationLossM float64 `json:"elevationLossM"`
	MinAltitude    float64 `json:"minAltitude"`
	MaxAltitude    float64 `json:"maxAltitude"`
}

// Notification is the payload published to the alert topic.
type Notification struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	Urgent    bool   `json:"urgent"`
	Timestamp int64  `json:"timestamp"`
}

// KVRecord backs the key-value persistence on top of gorm.
type KVRecord struct {
	Key       string `gorm:"primaryKey;type:varchar(64)"`
	Value     []byte
	UpdatedAt time.Time
}
