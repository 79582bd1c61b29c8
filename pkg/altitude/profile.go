package altitude

import (
	"context"
	"slices"

	"go.uber.org/zap"
	"liyu1981.xyz/altitude-guard/pkg/common"
	"liyu1981.xyz/altitude-guard/pkg/models"
)

func (e *Engine) GetProfile() models.AltitudeProfile {
	e.cfgMu.RLock()
	defer e.cfgMu.RUnlock()
	return cloneProfile(e.profile)
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneProfile(p models.AltitudeProfile) models.AltitudeProfile {
	p.HeightCm = clonePtr(p.HeightCm)
	p.WeightKg = clonePtr(p.WeightKg)
	p.Age = clonePtr(p.Age)
	p.Gender = clonePtr(p.Gender)
	p.FitnessLevel = clonePtr(p.FitnessLevel)
	p.StartingAltitude = clonePtr(p.StartingAltitude)
	p.MedicalConditions = slices.Clone(p.MedicalConditions)
	p.Medications = slices.Clone(p.Medications)
	return p
}

func applyProfilePatch(p models.AltitudeProfile, patch models.ProfilePatch) models.AltitudeProfile {
	if patch.HeightCm != nil {
		p.HeightCm = clonePtr(patch.HeightCm)
	}
	if patch.WeightKg != nil {
		p.WeightKg = clonePtr(patch.WeightKg)
	}
	if patch.Age != nil {
		p.Age = clonePtr(patch.Age)
	}
	if patch.Gender != nil {
		p.Gender = clonePtr(patch.Gender)
	}
	if patch.FitnessLevel != nil {
		p.FitnessLevel = clonePtr(patch.FitnessLevel)
	}
	if patch.PreviousAMSHistory != nil {
		p.PreviousAMSHistory = *patch.PreviousAMSHistory
	}
	if patch.MedicalConditions != nil {
		p.MedicalConditions = slices.Clone(*patch.MedicalConditions)
	}
	if patch.Medications != nil {
		p.Medications = slices.Clone(*patch.Medications)
	}
	if patch.StartingAltitude != nil {
		p.StartingAltitude = clonePtr(patch.StartingAltitude)
	}
	return p
}

// UpdateProfile merges patch into the singleton profile. Only range checks
// apply, no cross-field validation.
func (e *Engine) UpdateProfile(ctx context.Context, patch models.ProfilePatch) (models.AltitudeProfile, error) {
	if err := models.ValidateProfilePatch(&patch); err != nil {
		return e.GetProfile(), err
	}

	e.cfgMu.Lock()
	defer e.cfgMu.Unlock()

	next := applyProfilePatch(cloneProfile(e.profile), patch)
	next.ID = models.DefaultProfileID
	if err := e.Repos.Profile.Save(ctx, next); err != nil {
		return cloneProfile(e.profile), err
	}
	e.profile = next

	common.GetCategoryLogger(common.LoggerNameAltitudeCore, common.LoggerCategoryProfile).
		Info("Profile updated", zap.Reflect("profile", next))

	return cloneProfile(next), nil
}
