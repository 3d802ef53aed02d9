package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/povarna/generative-ai-agents/voice-agent/internal/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveValidation(t *testing.T) {
	m := New()

	m.ObserveValidation(models.ValidationResult{
		Personality: models.PersonalityRocket,
		Violations: []models.Violation{
			{Rule: models.RulePlatformBanned, Phrase: "guaranteed"},
			{Rule: models.RulePersonalityForbidden, Phrase: "viral"},
		},
	})
	m.ObserveValidation(models.ValidationResult{Personality: models.PersonalityRocket, Approved: true})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.validations.WithLabelValues("rocket", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.validations.WithLabelValues("rocket", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.violations.WithLabelValues("platform_banned")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.violations.WithLabelValues("personality_forbidden")))
}

func TestObserveGenerationAndResolution(t *testing.T) {
	m := New()

	m.ObserveGeneration(models.PersonalityBoost, OutcomeSuccess)
	m.ObserveGeneration(models.PersonalityBoost, OutcomeSuccess)
	m.ObserveGeneration(models.PersonalityBoost, OutcomeFailed)
	m.ObserveResolution(models.SourcePath)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.generations.WithLabelValues("boost", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.generations.WithLabelValues("boost", OutcomeFailed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.resolutions.WithLabelValues("path")))
}

func TestObserveTokens(t *testing.T) {
	m := New()

	m.ObserveTokens(120, 30)
	m.ObserveTokens(0, 10)

	assert.Equal(t, 120.0, testutil.ToFloat64(m.tokens.WithLabelValues("input")))
	assert.Equal(t, 40.0, testutil.ToFloat64(m.tokens.WithLabelValues("output")))
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveResolution(models.SourceDefault)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), `voice_agent_resolutions_total{source="default"} 1`))
}
