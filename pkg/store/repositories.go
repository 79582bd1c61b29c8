package store

import (
	"fmt"

	"liyu1981.xyz/altitude-guard/pkg/models"
)

// Repositories groups one typed repository per persisted entity.
type Repositories struct {
	Settings *Repository[models.AltitudeSettings]
	Profile  *Repository[models.AltitudeProfile]
	History  *Repository[[]models.AltitudeSample]
	Events   *Repository[[]models.AltitudeEvent]
	Symptoms *Repository[[]models.SymptomLog]
}

func NewRepositories(kv KV) *Repositories {
	return &Repositories{
		Settings: NewRepository(kv, KeySettings, models.DefaultSettings, models.ValidateSettings),
		Profile:  NewRepository(kv, KeyProfile, models.DefaultProfile, models.ValidateProfile),
		History:  NewRepository(kv, KeyHistory, emptySlice[models.AltitudeSample], checkHistory),
		Events:   NewRepository(kv, KeyEvents, emptySlice[models.AltitudeEvent], checkEvents),
		Symptoms: NewRepository(kv, KeySymptomLogs, emptySlice[models.SymptomLog], checkSymptomLogs),
	}
}

func emptySlice[T any]() []T {
	return []T{}
}

func checkHistory(samples *[]models.AltitudeSample) error {
	var last int64
	for i, s := range *samples {
		if s.Timestamp <= 0 {
			return fmt.Errorf("sample %d has no timestamp", i)
		}
		if s.Timestamp < last {
			return fmt.Errorf("sample %d out of order", i)
		}
		last = s.Timestamp
	}
	return nil
}

func checkEvents(events *[]models.AltitudeEvent) error {
	for i := range *events {
		if err := models.ValidateEvent(&(*events)[i]); err != nil {
			return err
		}
	}
	return nil
}

func checkSymptomLogs(logs *[]models.SymptomLog) error {
	for _, l := range *logs {
		if l.ID == "" {
			return fmt.Errorf("symptom log without id")
		}
		if err := models.ValidateSymptoms(l.Symptoms); err != nil {
			return err
		}
	}
	return nil
}
