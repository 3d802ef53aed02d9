package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/behavior"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/config"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/guardrails"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/metrics"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/models"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/personality"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/prompt"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/validator"
	"github.com/rs/zerolog"
)

var (
	ErrGenerationFailed     = errors.New("generation failed")
	ErrInvalidRequest       = errors.New("invalid generation request")
	ErrStreamingUnsupported = errors.New("llm client does not support streaming")
)

// ValidationStore persists validation outcomes.
type ValidationStore interface {
	SaveValidation(ctx context.Context, record models.ValidationRecord) error
}

// ModeStore looks up the brand mode stored for a funnel. An empty key with a
// nil error means nothing is stored.
type ModeStore interface {
	GetMode(ctx context.Context, funnelID string) (models.PersonalityKey, error)
}

// Components are the deterministic stages every generation runs through.
type Components struct {
	Resolver   *personality.Resolver
	Behavior   *behavior.Resolver
	Guardrails *guardrails.Guardrails
	Builder    *prompt.Builder
	Validator  *validator.Validator
}

// Prepared is everything computed before the model is called.
type Prepared struct {
	RequestID  string
	Resolution personality.Resolution
	Behavior   models.BehaviorProfile
	Input      guardrails.SanitizedText
	Envelope   string
}

type Option func(*Service)

func WithValidationStore(store ValidationStore) Option {
	return func(s *Service) {
		s.store = store
	}
}

func WithModeStore(modes ModeStore) Option {
	return func(s *Service) {
		s.modes = modes
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

type Service struct {
	components Components
	client     llm.LLMClient
	cfg        *config.GenerationConfig
	store      ValidationStore
	modes      ModeStore
	metrics    *metrics.Metrics
	now        func() time.Time
	logger     *zerolog.Logger
}

func NewService(components Components, client llm.LLMClient, cfg *config.GenerationConfig, logger *zerolog.Logger, opts ...Option) *Service {
	if cfg == nil {
		cfg = config.Default()
	}

	s := &Service{
		components: components,
		client:     client,
		cfg:        cfg,
		now:        time.Now,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = metrics.New()
	}
	return s
}

// Prepare resolves the personality and behavior, sanitizes the user input and
// builds the envelope. It never calls the model.
func (s *Service) Prepare(ctx context.Context, req models.GenerateRequest) (Prepared, error) {
	if strings.TrimSpace(req.Task) == "" {
		return Prepared{}, fmt.Errorf("%w: task is required", ErrInvalidRequest)
	}
	if strings.TrimSpace(req.OutputSchema) == "" {
		return Prepared{}, fmt.Errorf("%w: output_schema is required", ErrInvalidRequest)
	}
	if !req.Category.Valid() {
		s.logger.Warn().
			Str("category", string(req.Category)).
			Msg("Unknown state category, treating as recoverable error")
	}

	requestID := req.RequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}

	resolution := s.ResolvePersonality(ctx, req.FunnelID, models.ResolveContext{
		ExplicitKey: req.Personality,
		StoredMode:  req.StoredMode,
		Path:        req.Path,
	})

	profile := s.components.Behavior.Resolve(resolution.Personality, req.Category)
	input, _ := s.components.Guardrails.PrepareInput(req.UserInput)
	envelope := s.components.Builder.Build(resolution.Personality, req.Task, input, req.OutputSchema)

	return Prepared{
		RequestID:  requestID,
		Resolution: resolution,
		Behavior:   profile,
		Input:      input,
		Envelope:   envelope,
	}, nil
}

// ResolvePersonality fills the stored mode from the mode store when a funnel id
// is given and the caller did not pass one. Store failures fall back to the
// remaining resolution steps.
func (s *Service) ResolvePersonality(ctx context.Context, funnelID string, rc models.ResolveContext) personality.Resolution {
	if rc.StoredMode == "" && funnelID != "" && s.modes != nil {
		mode, err := s.modes.GetMode(ctx, funnelID)
		if err != nil {
			s.logger.Warn().Err(err).Str("funnelID", funnelID).Msg("Failed to load brand mode")
		} else {
			rc.StoredMode = mode
		}
	}

	resolution := s.components.Resolver.ResolveWithSource(rc)
	s.metrics.ObserveResolution(resolution.Source)
	return resolution
}

// Generate runs the full pipeline. A rejected validation is a normal result;
// only a failed model call is an error.
func (s *Service) Generate(ctx context.Context, req models.GenerateRequest) (*models.GenerateResult, error) {
	prepared, err := s.Prepare(ctx, req)
	if err != nil {
		return nil, err
	}

	key := prepared.Resolution.Personality.Key
	s.logger.Info().
		Str("requestID", prepared.RequestID).
		Str("personality", string(key)).
		Str("source", string(prepared.Resolution.Source)).
		Msg("Starting generation")

	response, err := s.invoke(ctx, req.Task, prepared.Envelope)
	if err != nil {
		s.metrics.ObserveGeneration(key, metrics.OutcomeFailed)
		s.logger.Error().Err(err).Str("requestID", prepared.RequestID).Msg("Model invocation failed")
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	return s.finish(ctx, prepared, response), nil
}

// GenerateStream behaves like Generate but forwards text chunks to callback as
// they arrive. Validation runs once on the complete content.
func (s *Service) GenerateStream(ctx context.Context, req models.GenerateRequest, callback llm.StreamCallback) (*models.GenerateResult, error) {
	streamer, ok := s.client.(llm.StreamingClient)
	if !ok {
		return nil, ErrStreamingUnsupported
	}

	prepared, err := s.Prepare(ctx, req)
	if err != nil {
		return nil, err
	}

	model := s.cfg.ModelFor(req.Task)
	response, err := streamer.InvokeModelStream(ctx, llm.LLMRequest{
		Prompt:      prepared.Envelope,
		MaxTokens:   model.MaxTokens,
		Temperature: model.Temperature,
	}, callback)
	if err != nil {
		s.metrics.ObserveGeneration(prepared.Resolution.Personality.Key, metrics.OutcomeFailed)
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	return s.finish(ctx, prepared, response), nil
}

// Validate checks content authored outside the pipeline and records the outcome.
func (s *Service) Validate(ctx context.Context, requestID string, content string, personalityID string) models.ValidationResult {
	if requestID == "" {
		requestID = uuid.NewString()
	}
	result := s.components.Validator.Validate(content, personalityID)
	s.metrics.ObserveValidation(result)
	s.persist(ctx, requestID, content, result)
	return result
}

func (s *Service) SupportsStreaming() bool {
	_, ok := s.client.(llm.StreamingClient)
	return ok
}

func (s *Service) Behavior(p models.Personality, category models.StateCategory) models.BehaviorProfile {
	return s.components.Behavior.Resolve(p, category)
}

func (s *Service) SanitizeInput(raw string) (guardrails.SanitizedText, guardrails.InputReport) {
	return s.components.Guardrails.PrepareInput(raw)
}

func (s *Service) invoke(ctx context.Context, task string, envelope string) (*llm.LLMResponse, error) {
	model := s.cfg.ModelFor(task)
	request := llm.LLMRequest{
		Prompt:      envelope,
		MaxTokens:   model.MaxTokens,
		Temperature: model.Temperature,
	}

	if model.Retry {
		return s.client.InvokeModelWithRetry(ctx, request)
	}
	return s.client.InvokeModel(ctx, request)
}

func (s *Service) finish(ctx context.Context, prepared Prepared, response *llm.LLMResponse) *models.GenerateResult {
	key := prepared.Resolution.Personality.Key
	validation := s.components.Validator.Validate(response.Content, string(key))
	s.metrics.ObserveValidation(validation)

	outcome := metrics.OutcomeSuccess
	if !validation.Approved {
		outcome = metrics.OutcomeRejected
	}
	s.metrics.ObserveGeneration(key, outcome)
	s.metrics.ObserveTokens(response.Usage.InputTokens, response.Usage.OutputTokens)

	s.logger.Info().
		Str("requestID", prepared.RequestID).
		Bool("approved", validation.Approved).
		Int("violations", len(validation.Violations)).
		Float64("score", validation.Score).
		Int("inputTokens", response.Usage.InputTokens).
		Int("outputTokens", response.Usage.OutputTokens).
		Msg("Generation complete")

	if s.cfg.Generation.PersistResults {
		s.persist(ctx, prepared.RequestID, response.Content, validation)
	}

	return &models.GenerateResult{
		RequestID:      prepared.RequestID,
		Personality:    key,
		Source:         prepared.Resolution.Source,
		Behavior:       prepared.Behavior,
		SanitizedInput: prepared.Input.String(),
		Content:        response.Content,
		StopReason:     response.StopReason,
		Usage: models.TokenUsage{
			InputTokens:  response.Usage.InputTokens,
			OutputTokens: response.Usage.OutputTokens,
		},
		Validation: validation,
		CreatedAt:  s.now(),
	}
}

func (s *Service) persist(ctx context.Context, requestID string, content string, result models.ValidationResult) {
	if s.store == nil {
		return
	}

	record := models.ValidationRecord{
		ID:        uuid.NewString(),
		RequestID: requestID,
		Content:   content,
		Result:    result,
		CreatedAt: s.now(),
	}
	if err := s.store.SaveValidation(ctx, record); err != nil {
		s.logger.Error().Err(err).Str("requestID", requestID).Msg("Failed to persist validation")
	}
}
