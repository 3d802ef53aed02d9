package api

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/povarna/generative-ai-agents/voice-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/models"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/personality"
)

const maxSections = 20

type HealthResponse struct {
	Status  string `json:"status" description:"Service status"`
	Version string `json:"version" description:"API version"`
}

type PersonalityEntry struct {
	models.Personality
	Header string `json:"header" description:"Voice header used in prompts"`
}

type PersonalitiesResponse struct {
	Default       models.PersonalityKey `json:"default" description:"Fallback personality"`
	Personalities []PersonalityEntry    `json:"personalities"`
}

type ResolveRequest struct {
	ExplicitKey models.PersonalityKey `json:"explicit_key,omitempty" description:"Explicit personality override"`
	StoredMode  models.PersonalityKey `json:"stored_mode,omitempty" description:"Persisted brand mode"`
	Path        string                `json:"path,omitempty" description:"Page path"`
	FunnelID    string                `json:"funnel_id,omitempty" description:"Funnel whose stored brand mode applies"`
	Category    models.StateCategory  `json:"category,omitempty" description:"Empty/error state category"`
}

type ResolveResponse struct {
	Personality models.Personality      `json:"personality"`
	Source      models.ResolutionSource `json:"source" description:"explicit, stored, path or default"`
	Reason      string                  `json:"reason"`
	Behavior    models.BehaviorProfile  `json:"behavior"`
}

type BehaviorRequest struct {
	Personality models.PersonalityKey `json:"personality" description:"Personality key (default: calm)"`
	Category    models.StateCategory  `json:"category,omitempty" description:"Empty/error state category"`
}

type SanitizeRequest struct {
	Input string `json:"input" description:"Free text to sanitize"`
}

type SanitizeResponse struct {
	Sanitized     string `json:"sanitized"`
	Redactions    int    `json:"redactions"`
	MarkupRemoved bool   `json:"markup_removed"`
}

type EnvelopeRequest struct {
	Personality  models.PersonalityKey `json:"personality,omitempty" description:"Personality key"`
	FunnelID     string                `json:"funnel_id,omitempty"`
	Path         string                `json:"path,omitempty"`
	Task         string                `json:"task" description:"What the generator should write"`
	Input        string                `json:"input,omitempty" description:"Raw user input, sanitized before use"`
	OutputSchema string                `json:"output_schema" description:"Expected JSON shape"`
}

type EnvelopeResponse struct {
	Personality    models.PersonalityKey   `json:"personality"`
	Source         models.ResolutionSource `json:"source"`
	SanitizedInput string                  `json:"sanitized_input"`
	Envelope       string                  `json:"envelope"`
}

type ValidateRequest struct {
	RequestID   string `json:"request_id,omitempty"`
	Content     string `json:"content" description:"Generated copy to validate"`
	Personality string `json:"personality,omitempty" description:"Personality key (default: calm)"`
}

type BrandModeRequest struct {
	Personality models.PersonalityKey `json:"personality" description:"Personality key to store"`
}

type BrandModeResponse struct {
	FunnelID    string                `json:"funnel_id"`
	Personality models.PersonalityKey `json:"personality,omitempty"`
	Stored      bool                  `json:"stored"`
}

// SSE payloads
type StreamStartEvent struct {
	Task string `json:"task"`
}

type StreamChunkEvent struct {
	Text string `json:"text"`
}

type StreamErrorEvent struct {
	Error string `json:"error"`
}

type SSEEvent struct {
	Event string `json:"-"`
	Data  any    `json:"-"`
}

func (e SSEEvent) Format() (string, error) {
	jsonData, err := json.Marshal(e.Data)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("event: %s\ndata: %s\n\n", e.Event, string(jsonData)), nil
}

func (r *BehaviorRequest) SetDefaults() {
	if r.Personality == "" {
		r.Personality = personality.DefaultKey
	}
}

func (r *BehaviorRequest) Validate() error {
	if !personality.IsValid(normalizeKey(r.Personality)) {
		return middleware.ErrInvalidPersonality
	}
	if !r.Category.Valid() {
		return middleware.ErrInvalidCategory
	}
	return nil
}

func (r *ResolveRequest) Validate() error {
	if !r.Category.Valid() {
		return middleware.ErrInvalidCategory
	}
	return nil
}

func (r *SanitizeRequest) Validate() error {
	if r.Input == "" {
		return middleware.ErrEmptyInput
	}
	return nil
}

func (r *EnvelopeRequest) Validate() error {
	return validateTaskAndSchema(r.Task, r.OutputSchema)
}

func (r *ValidateRequest) SetDefaults() {
	if r.Personality == "" {
		r.Personality = string(personality.DefaultKey)
	}
}

func (r *ValidateRequest) Validate() error {
	if strings.TrimSpace(r.Content) == "" {
		return middleware.ErrEmptyContent
	}
	return nil
}

func (r *BrandModeRequest) Validate() error {
	if !personality.IsValid(normalizeKey(r.Personality)) {
		return middleware.ErrInvalidPersonality
	}
	return nil
}

func validateGenerateRequest(r models.GenerateRequest) error {
	if err := validateTaskAndSchema(r.Task, r.OutputSchema); err != nil {
		return err
	}
	if !r.Category.Valid() {
		return middleware.ErrInvalidCategory
	}
	return nil
}

func validateSectionsRequest(r models.SectionsRequest) error {
	if len(r.Sections) == 0 {
		return middleware.ErrNoSections
	}
	if len(r.Sections) > maxSections {
		return middleware.ErrTooManySections
	}
	for _, section := range r.Sections {
		if err := validateTaskAndSchema(section.Task, section.OutputSchema); err != nil {
			return fmt.Errorf("section %q: %w", section.Name, err)
		}
	}
	if !r.Category.Valid() {
		return middleware.ErrInvalidCategory
	}
	return nil
}

func validateTaskAndSchema(task, schema string) error {
	if strings.TrimSpace(task) == "" {
		return middleware.ErrEmptyTask
	}
	if strings.TrimSpace(schema) == "" {
		return middleware.ErrEmptySchema
	}
	return nil
}

func normalizeKey(key models.PersonalityKey) models.PersonalityKey {
	return models.PersonalityKey(strings.ToLower(strings.TrimSpace(string(key))))
}
