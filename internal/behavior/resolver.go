package behavior

import (
	"github.com/povarna/generative-ai-agents/voice-agent/internal/models"
)

type Resolver struct{}

func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve maps a personality and an optional empty/error state category to a
// behavior profile. The mapping is fixed: identical inputs give identical output.
func (r *Resolver) Resolve(p models.Personality, category models.StateCategory) models.BehaviorProfile {
	profile := base(p.Key)

	// Promises are forbidden platform wide.
	profile.ForbidPromises = true

	switch category {
	case models.CategoryHardError, models.CategoryRecoverableError:
		profile.MotionIntensity = models.MotionNone
		profile.SoundEnabled = false
		profile.SoundMaxVolume = 0
		profile.SarcasmAllowed = false
		profile.PersonalityCopy = false
		profile.VisualNoise = models.NoiseLow
	case models.CategoryEmptyUnexpected:
		if profile.MotionIntensity != models.MotionNone {
			profile.MotionIntensity = models.MotionLow
		}
		profile.SoundEnabled = false
		profile.SoundMaxVolume = 0
		profile.SarcasmAllowed = false
	case models.CategoryEmptyExpected, models.CategoryNone:
		// full personality bandwidth
	default:
		// Unrecognised categories get the error treatment.
		return r.Resolve(p, models.CategoryRecoverableError)
	}

	return profile
}

func base(key models.PersonalityKey) models.BehaviorProfile {
	switch key {
	case models.PersonalityRocket:
		return models.BehaviorProfile{
			HeadlineLength:  models.HeadlineShort,
			SubcopyDensity:  models.SubcopyMinimal,
			MotionIntensity: models.MotionHigh,
			SoundEnabled:    true,
			SoundMaxVolume:  0.6,
			VisualNoise:     models.NoiseHigh,
			PersonalityCopy: true,
		}
	case models.PersonalityBoost:
		return models.BehaviorProfile{
			HeadlineLength:  models.HeadlineShort,
			SubcopyDensity:  models.SubcopyExplained,
			MotionIntensity: models.MotionMedium,
			SoundEnabled:    true,
			SoundMaxVolume:  0.3,
			VisualNoise:     models.NoiseMedium,
			PersonalityCopy: true,
		}
	case models.PersonalityGuide:
		return models.BehaviorProfile{
			HeadlineLength:  models.HeadlineMedium,
			SubcopyDensity:  models.SubcopyExplained,
			MotionIntensity: models.MotionLow,
			SoundEnabled:    true,
			SoundMaxVolume:  0.2,
			VisualNoise:     models.NoiseLow,
			PersonalityCopy: true,
		}
	case models.PersonalitySpark:
		return models.BehaviorProfile{
			HeadlineLength:  models.HeadlineShort,
			SubcopyDensity:  models.SubcopyExplained,
			MotionIntensity: models.MotionMedium,
			VisualNoise:     models.NoiseMedium,
			PersonalityCopy: true,
		}
	case models.PersonalityWry:
		return models.BehaviorProfile{
			HeadlineLength:  models.HeadlineShort,
			SubcopyDensity:  models.SubcopyMinimal,
			SarcasmAllowed:  true,
			MotionIntensity: models.MotionLow,
			SoundEnabled:    true,
			SoundMaxVolume:  0.2,
			VisualNoise:     models.NoiseLow,
			PersonalityCopy: true,
		}
	}

	// calm, and the fallback for anything unknown
	return models.BehaviorProfile{
		HeadlineLength:  models.HeadlineMedium,
		SubcopyDensity:  models.SubcopyExplained,
		MotionIntensity: models.MotionLow,
		VisualNoise:     models.NoiseLow,
		PersonalityCopy: true,
	}
}
