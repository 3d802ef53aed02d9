package behavior

import (
	"testing"

	"github.com/povarna/generative-ai-agents/voice-agent/internal/models"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/personality"
	"github.com/stretchr/testify/assert"
)

func TestResolve_ErrorStatesAreInert(t *testing.T) {
	resolver := NewResolver()

	for _, p := range personality.All() {
		for _, category := range []models.StateCategory{models.CategoryHardError, models.CategoryRecoverableError} {
			t.Run(string(p.Key)+"/"+string(category), func(t *testing.T) {
				profile := resolver.Resolve(p, category)

				assert.Equal(t, models.MotionNone, profile.MotionIntensity)
				assert.False(t, profile.SoundEnabled)
				assert.Zero(t, profile.SoundMaxVolume)
				assert.False(t, profile.SarcasmAllowed)
				assert.False(t, profile.PersonalityCopy)
				assert.True(t, profile.ForbidPromises)
			})
		}
	}
}

func TestResolve_ForbidPromisesAlwaysTrue(t *testing.T) {
	resolver := NewResolver()
	categories := []models.StateCategory{
		models.CategoryNone,
		models.CategoryEmptyExpected,
		models.CategoryEmptyUnexpected,
		models.CategoryRecoverableError,
		models.CategoryHardError,
		"something-new",
	}

	for _, p := range personality.All() {
		for _, category := range categories {
			assert.True(t, resolver.Resolve(p, category).ForbidPromises, "%s/%s", p.Key, category)
		}
	}
}

func TestResolve_EmptyExpectedKeepsFullBandwidth(t *testing.T) {
	resolver := NewResolver()

	for _, p := range personality.All() {
		assert.Equal(t, resolver.Resolve(p, models.CategoryNone), resolver.Resolve(p, models.CategoryEmptyExpected), p.Key)
	}

	rocket := resolver.Resolve(personality.Get(models.PersonalityRocket), models.CategoryEmptyExpected)
	assert.Equal(t, models.MotionHigh, rocket.MotionIntensity)
	assert.True(t, rocket.SoundEnabled)
	assert.True(t, rocket.PersonalityCopy)

	wry := resolver.Resolve(personality.Get(models.PersonalityWry), models.CategoryEmptyExpected)
	assert.True(t, wry.SarcasmAllowed)
}

func TestResolve_EmptyUnexpectedIsDampened(t *testing.T) {
	resolver := NewResolver()

	rocket := resolver.Resolve(personality.Get(models.PersonalityRocket), models.CategoryEmptyUnexpected)
	assert.Equal(t, models.MotionLow, rocket.MotionIntensity)
	assert.False(t, rocket.SoundEnabled)

	wry := resolver.Resolve(personality.Get(models.PersonalityWry), models.CategoryEmptyUnexpected)
	assert.False(t, wry.SarcasmAllowed)
}

func TestResolve_UnknownCategoryTreatedAsError(t *testing.T) {
	resolver := NewResolver()
	p := personality.Get(models.PersonalityRocket)

	assert.Equal(t, resolver.Resolve(p, models.CategoryRecoverableError), resolver.Resolve(p, "glitch"))
}

func TestResolve_Deterministic(t *testing.T) {
	resolver := NewResolver()
	p := personality.Get(models.PersonalityBoost)
	first := resolver.Resolve(p, models.CategoryNone)

	for i := 0; i < 50; i++ {
		assert.Equal(t, first, resolver.Resolve(p, models.CategoryNone))
	}
}

func TestResolve_SoundVolumeInRange(t *testing.T) {
	resolver := NewResolver()

	for _, p := range personality.All() {
		profile := resolver.Resolve(p, models.CategoryNone)
		assert.GreaterOrEqual(t, profile.SoundMaxVolume, 0.0)
		assert.LessOrEqual(t, profile.SoundMaxVolume, 1.0)
		if !profile.SoundEnabled {
			assert.Zero(t, profile.SoundMaxVolume, p.Key)
		}
	}
}
