package mcpadapter

import (
	"context"
	"errors"
	"testing"

	"github.com/povarna/generative-ai-agents/voice-agent/internal/behavior"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/generation"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/guardrails"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/models"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/personality"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/prompt"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/validator"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/voice"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cannedLLM struct {
	content string
	err     error
}

func (c cannedLLM) InvokeModel(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	if c.err != nil {
		return nil, c.err
	}
	return &llm.LLMResponse{Content: c.content}, nil
}

func (c cannedLLM) InvokeModelWithRetry(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	return c.InvokeModel(ctx, request)
}

func newTestService(t *testing.T, client llm.LLMClient) *generation.Service {
	t.Helper()
	logger := zerolog.Nop()
	registry, err := voice.NewRegistry(voice.Canonical())
	require.NoError(t, err)

	return generation.NewService(generation.Components{
		Resolver:   personality.NewResolver(&logger),
		Behavior:   behavior.NewResolver(),
		Guardrails: guardrails.NewGuardrails(guardrails.NewDefaultSanitizer(), &logger),
		Builder:    prompt.NewBuilder(registry),
		Validator:  validator.NewDefaultValidator(),
	}, client, nil, &logger)
}

func TestNewServer_RegistersTools(t *testing.T) {
	assert.NotNil(t, NewServer(newTestService(t, cannedLLM{})))
}

func TestResolveHandler(t *testing.T) {
	handler := NewResolveHandler(newTestService(t, cannedLLM{}))

	_, out, err := handler(context.Background(), nil, ResolveInput{Path: "/dashboard/analytics", Category: "hard-error"})
	require.NoError(t, err)
	assert.Equal(t, "boost", out.Personality)
	assert.Equal(t, "path", out.Source)
	assert.Equal(t, models.MotionNone, out.Behavior.MotionIntensity)
}

func TestSanitizeHandler(t *testing.T) {
	handler := NewSanitizeHandler(newTestService(t, cannedLLM{}))

	_, out, err := handler(context.Background(), nil, SanitizeInput{Input: "Become a millionaire guru"})
	require.NoError(t, err)
	assert.Equal(t, "Become a [removed] [removed]", out.Sanitized)
	assert.Equal(t, 2, out.Redactions)
}

func TestEnvelopeHandler(t *testing.T) {
	handler := NewEnvelopeHandler(newTestService(t, cannedLLM{}))

	_, out, err := handler(context.Background(), nil, EnvelopeInput{
		Personality:  "spark",
		Task:         "Write onboarding tip",
		OutputSchema: `{"tip": string}`,
	})
	require.NoError(t, err)
	assert.Equal(t, "spark", out.Personality)
	assert.Contains(t, out.Envelope, "## USER INPUT\nNone")

	_, _, err = handler(context.Background(), nil, EnvelopeInput{Task: "no schema"})
	assert.ErrorIs(t, err, generation.ErrInvalidRequest)
}

func TestValidateHandler(t *testing.T) {
	handler := NewValidateHandler(newTestService(t, cannedLLM{}))

	_, out, err := handler(context.Background(), nil, ValidateInput{Content: "Obviously the best plan", Personality: "wry"})
	require.NoError(t, err)
	assert.False(t, out.Approved)
	require.Len(t, out.Violations, 1)
	assert.Equal(t, models.RulePersonalityForbidden, out.Violations[0].Rule)
}

func TestGenerateHandler(t *testing.T) {
	handler := NewGenerateHandler(newTestService(t, cannedLLM{content: `{"headline":"Ready when you are"}`}))

	_, out, err := handler(context.Background(), nil, models.GenerateRequest{
		Path:         "/welcome",
		Task:         "Write hero headline",
		OutputSchema: `{"headline": string}`,
	})
	require.NoError(t, err)
	assert.Equal(t, "guide", out.Personality)
	assert.True(t, out.Validation.Approved)
	assert.NotEmpty(t, out.CreatedAt)
}

func TestGenerateHandler_Failure(t *testing.T) {
	handler := NewGenerateHandler(newTestService(t, cannedLLM{err: errors.New("boom")}))

	_, _, err := handler(context.Background(), nil, models.GenerateRequest{Task: "t", OutputSchema: "{}"})
	assert.ErrorIs(t, err, generation.ErrGenerationFailed)
}
