package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/generation"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/models"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/personality"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/voice"
	"github.com/rs/zerolog"
)

// BrandModeStore reads and writes the brand mode stored per funnel.
type BrandModeStore interface {
	GetMode(ctx context.Context, funnelID string) (models.PersonalityKey, error)
	SetMode(ctx context.Context, funnelID string, key models.PersonalityKey) error
}

type Handler struct {
	service  *generation.Service
	registry *voice.Registry
	modes    BrandModeStore
	logger   *zerolog.Logger
}

// NewHandler accepts a nil modes store; the brand-mode routes then answer 503.
func NewHandler(service *generation.Service, registry *voice.Registry, modes BrandModeStore, logger *zerolog.Logger) *Handler {
	return &Handler{
		service:  service,
		registry: registry,
		modes:    modes,
		logger:   logger,
	}
}

// Health handler GET API /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}

// GET /api/v1/personalities
func (h *Handler) Personalities(req *restful.Request, resp *restful.Response) {
	all := personality.All()
	entries := make([]PersonalityEntry, 0, len(all))
	for _, p := range all {
		entry := PersonalityEntry{Personality: p}
		if v, ok := h.registry.Get(p.Key); ok {
			entry.Header = v.Header
		}
		entries = append(entries, entry)
	}

	resp.WriteHeaderAndEntity(http.StatusOK, PersonalitiesResponse{
		Default:       personality.DefaultKey,
		Personalities: entries,
	})
}

// POST /api/v1/personality/resolve
func (h *Handler) ResolvePersonality(req *restful.Request, resp *restful.Response) {
	var resolveRequest ResolveRequest
	if err := req.ReadEntity(&resolveRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	if err := resolveRequest.Validate(); err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	resolution := h.service.ResolvePersonality(req.Request.Context(), resolveRequest.FunnelID, models.ResolveContext{
		ExplicitKey: resolveRequest.ExplicitKey,
		StoredMode:  resolveRequest.StoredMode,
		Path:        resolveRequest.Path,
	})

	resp.WriteHeaderAndEntity(http.StatusOK, ResolveResponse{
		Personality: resolution.Personality,
		Source:      resolution.Source,
		Reason:      resolution.Reason,
		Behavior:    h.service.Behavior(resolution.Personality, resolveRequest.Category),
	})
}

// POST /api/v1/behavior
func (h *Handler) Behavior(req *restful.Request, resp *restful.Response) {
	var behaviorRequest BehaviorRequest
	if err := req.ReadEntity(&behaviorRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	behaviorRequest.SetDefaults()
	if err := behaviorRequest.Validate(); err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	p := personality.Get(normalizeKey(behaviorRequest.Personality))
	resp.WriteHeaderAndEntity(http.StatusOK, h.service.Behavior(p, behaviorRequest.Category))
}

// POST /api/v1/sanitize
func (h *Handler) Sanitize(req *restful.Request, resp *restful.Response) {
	var sanitizeRequest SanitizeRequest
	if err := req.ReadEntity(&sanitizeRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	if err := sanitizeRequest.Validate(); err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	sanitized, report := h.service.SanitizeInput(sanitizeRequest.Input)

	resp.WriteHeaderAndEntity(http.StatusOK, SanitizeResponse{
		Sanitized:     sanitized.String(),
		Redactions:    report.Redactions,
		MarkupRemoved: report.MarkupRemoved,
	})
}

// POST /api/v1/envelope
func (h *Handler) Envelope(req *restful.Request, resp *restful.Response) {
	var envelopeRequest EnvelopeRequest
	if err := req.ReadEntity(&envelopeRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	if err := envelopeRequest.Validate(); err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	prepared, err := h.service.Prepare(req.Request.Context(), models.GenerateRequest{
		FunnelID:     envelopeRequest.FunnelID,
		Path:         envelopeRequest.Path,
		Personality:  envelopeRequest.Personality,
		Task:         envelopeRequest.Task,
		UserInput:    envelopeRequest.Input,
		OutputSchema: envelopeRequest.OutputSchema,
	})
	if err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, EnvelopeResponse{
		Personality:    prepared.Resolution.Personality.Key,
		Source:         prepared.Resolution.Source,
		SanitizedInput: prepared.Input.String(),
		Envelope:       prepared.Envelope,
	})
}

// POST /api/v1/validate
func (h *Handler) Validate(req *restful.Request, resp *restful.Response) {
	var validateRequest ValidateRequest
	if err := req.ReadEntity(&validateRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	validateRequest.SetDefaults()
	if err := validateRequest.Validate(); err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	result := h.service.Validate(req.Request.Context(), validateRequest.RequestID, validateRequest.Content, validateRequest.Personality)

	h.logger.Info().
		Str("personality", string(result.Personality)).
		Bool("approved", result.Approved).
		Float64("score", result.Score).
		Msg("Validation complete")

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// POST /api/v1/generate
func (h *Handler) Generate(req *restful.Request, resp *restful.Response) {
	var generateRequest models.GenerateRequest
	if err := req.ReadEntity(&generateRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	if err := validateGenerateRequest(generateRequest); err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Generate(req.Request.Context(), generateRequest)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to generate copy")
		middleware.HandleError(resp, err, statusFor(err))
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// POST /api/v1/generate/sections
func (h *Handler) GenerateSections(req *restful.Request, resp *restful.Response) {
	var sectionsRequest models.SectionsRequest
	if err := req.ReadEntity(&sectionsRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	if err := validateSectionsRequest(sectionsRequest); err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	results, err := h.service.GenerateSections(req.Request.Context(), sectionsRequest)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to generate sections")
		middleware.HandleError(resp, err, statusFor(err))
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, results)
}

// GET /api/v1/funnels/{funnel_id}/brand-mode
func (h *Handler) GetBrandMode(req *restful.Request, resp *restful.Response) {
	funnelID := req.PathParameter("funnel_id")
	if h.modes == nil {
		middleware.HandleError(resp, middleware.ErrModeStoreDisabled, http.StatusServiceUnavailable)
		return
	}

	key, err := h.modes.GetMode(req.Request.Context(), funnelID)
	if err != nil {
		h.logger.Error().Err(err).Str("funnelID", funnelID).Msg("Failed to read brand mode")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, BrandModeResponse{
		FunnelID:    funnelID,
		Personality: key,
		Stored:      key != "",
	})
}

// PUT /api/v1/funnels/{funnel_id}/brand-mode
func (h *Handler) SetBrandMode(req *restful.Request, resp *restful.Response) {
	funnelID := req.PathParameter("funnel_id")
	if h.modes == nil {
		middleware.HandleError(resp, middleware.ErrModeStoreDisabled, http.StatusServiceUnavailable)
		return
	}

	var modeRequest BrandModeRequest
	if err := req.ReadEntity(&modeRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	if err := modeRequest.Validate(); err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	key := normalizeKey(modeRequest.Personality)
	if err := h.modes.SetMode(req.Request.Context(), funnelID, key); err != nil {
		h.logger.Error().Err(err).Str("funnelID", funnelID).Msg("Failed to store brand mode")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	h.logger.Info().Str("funnelID", funnelID).Str("personality", string(key)).Msg("Brand mode stored")

	resp.WriteHeaderAndEntity(http.StatusOK, BrandModeResponse{
		FunnelID:    funnelID,
		Personality: key,
		Stored:      true,
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, generation.ErrInvalidRequest), errors.Is(err, generation.ErrNoSections):
		return http.StatusBadRequest
	case errors.Is(err, generation.ErrGenerationFailed):
		return http.StatusBadGateway
	case errors.Is(err, generation.ErrStreamingUnsupported):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
