package models

import (
	"errors"
	"fmt"

	z "github.com/Oudwins/zog"
)

const (
	SymptomSeverityNone     = 0
	SymptomSeverityMild     = 1
	SymptomSeverityModerate = 2
	SymptomSeveritySevere   = 3

	DefaultProfileID = "default"
)

var (
	ErrInvalidSettings = errors.New("invalid settings")
	ErrInvalidProfile  = errors.New("invalid profile")
	ErrInvalidSymptoms = errors.New("invalid symptoms")
	ErrInvalidFix      = errors.New("invalid fix")
)

func DefaultSettings() AltitudeSettings {
	return AltitudeSettings{
		TrackingEnabled:             false,
		NotificationsEnabled:        true,
		TrackingIntervalMinutes:     5,
		DangerousAscentRateMPerHour: 500,
		DangerousAltitudeThresholdM: 3000,
		AutoRecording:               false,
	}
}

func DefaultProfile() AltitudeProfile {
	return AltitudeProfile{ID: DefaultProfileID}
}

var settingsSchema = z.Struct(z.Shape{
	"TrackingIntervalMinutes":     z.Int().GTE(1).Required(),
	"DangerousAscentRateMPerHour": z.Float64().GT(0).Required(),
	"DangerousAltitudeThresholdM": z.Float64().GTE(0),
})

// A set pointer to a zero interval or rate must fail, hence Required inside
// the Ptr.
var settingsPatchSchema = z.Struct(z.Shape{
	"TrackingIntervalMinutes":     z.Ptr(z.Int().GTE(1).Required()),
	"DangerousAscentRateMPerHour": z.Ptr(z.Float64().GT(0).Required()),
	"DangerousAltitudeThresholdM": z.Ptr(z.Float64().GTE(0)),
})

var profilePatchSchema = z.Struct(z.Shape{
	"HeightCm":         z.Ptr(z.Float64().GTE(0)),
	"WeightKg":         z.Ptr(z.Float64().GTE(0)),
	"Age":              z.Ptr(z.Int().GTE(0)),
	"StartingAltitude": z.Ptr(z.Float64().GTE(-500)),
})

var fixSchema = z.Struct(z.Shape{
	"Latitude":  z.Float64().GTE(-90).LTE(90),
	"Longitude": z.Float64().GTE(-180).LTE(180),
	"Accuracy":  z.Ptr(z.Float64().GTE(0)),
})

func ValidateSettings(s *AltitudeSettings) error {
	if errs := settingsSchema.Validate(s); len(errs) > 0 {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, errs)
	}
	return nil
}

func ValidateSettingsPatch(p *SettingsPatch) error {
	if errs := settingsPatchSchema.Validate(p); len(errs) > 0 {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, errs)
	}
	return nil
}

func ValidateProfilePatch(p *ProfilePatch) error {
	if errs := profilePatchSchema.Validate(p); len(errs) > 0 {
		return fmt.Errorf("%w: %v", ErrInvalidProfile, errs)
	}
	if p.Gender != nil {
		switch *p.Gender {
		case GenderMale, GenderFemale, GenderOther:
		default:
			return fmt.Errorf("%w: unknown gender %q", ErrInvalidProfile, *p.Gender)
		}
	}
	if p.FitnessLevel != nil {
		switch *p.FitnessLevel {
		case FitnessLow, FitnessModerate, FitnessHigh:
		default:
			return fmt.Errorf("%w: unknown fitness level %q", ErrInvalidProfile, *p.FitnessLevel)
		}
	}
	return nil
}

func ValidateProfile(p *AltitudeProfile) error {
	if p.ID != DefaultProfileID {
		return fmt.Errorf("%w: unexpected id %q", ErrInvalidProfile, p.ID)
	}
	return ValidateProfilePatch(&ProfilePatch{
		HeightCm:         p.HeightCm,
		WeightKg:         p.WeightKg,
		Age:              p.Age,
		Gender:           p.Gender,
		FitnessLevel:     p.FitnessLevel,
		StartingAltitude: p.StartingAltitude,
	})
}

// ValidateSymptoms restricts severities to 0..3 and rejects blank kinds.
func ValidateSymptoms(symptoms map[SymptomKind]int) error {
	for kind, severity := range symptoms {
		if kind == "" {
			return fmt.Errorf("%w: empty symptom kind", ErrInvalidSymptoms)
		}
		if severity < SymptomSeverityNone || severity > SymptomSeveritySevere {
			return fmt.Errorf("%w: %s severity %d not in 0..3", ErrInvalidSymptoms, kind, severity)
		}
	}
	return nil
}

func ValidateFix(f *Fix) error {
	if errs := fixSchema.Validate(f); len(errs) > 0 {
		return fmt.Errorf("%w: %v", ErrInvalidFix, errs)
	}
	return nil
}

func ValidateEvent(e *AltitudeEvent) error {
	if e.ID == "" {
		return errors.New("event without id")
	}
	switch e.Severity {
	case SeverityInfo, SeverityWarning, SeverityDanger:
	default:
		return fmt.Errorf("event %s has unknown severity %q", e.ID, e.Severity)
	}
	return nil
}
