package mcpadapter

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/generation"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/models"
)

// ResolveInput is the MCP tool input schema (matches HTTP API field names).
type ResolveInput struct {
	ExplicitKey string `json:"explicit_key,omitempty" jsonschema:"explicit personality override"`
	StoredMode  string `json:"stored_mode,omitempty" jsonschema:"persisted brand mode"`
	Path        string `json:"path,omitempty" jsonschema:"page path"`
	FunnelID    string `json:"funnel_id,omitempty" jsonschema:"funnel whose stored brand mode applies"`
	Category    string `json:"category,omitempty" jsonschema:"empty-expected, empty-unexpected, recoverable-error or hard-error"`
}

type ResolveOutput struct {
	Personality string                 `json:"personality"`
	Label       string                 `json:"label"`
	Source      string                 `json:"source"`
	Reason      string                 `json:"reason"`
	Behavior    models.BehaviorProfile `json:"behavior"`
}

type SanitizeInput struct {
	Input string `json:"input" jsonschema:"free text to sanitize"`
}

type SanitizeOutput struct {
	Sanitized     string `json:"sanitized"`
	Redactions    int    `json:"redactions"`
	MarkupRemoved bool   `json:"markup_removed"`
}

type EnvelopeInput struct {
	Personality  string `json:"personality,omitempty" jsonschema:"personality key"`
	Path         string `json:"path,omitempty" jsonschema:"page path"`
	Task         string `json:"task" jsonschema:"what the generator should write"`
	UserInput    string `json:"user_input,omitempty" jsonschema:"raw user input, sanitized before use"`
	OutputSchema string `json:"output_schema" jsonschema:"expected JSON shape"`
}

type EnvelopeOutput struct {
	Personality string `json:"personality"`
	Source      string `json:"source"`
	Envelope    string `json:"envelope"`
}

type ValidateInput struct {
	Content     string `json:"content" jsonschema:"generated copy to validate"`
	Personality string `json:"personality,omitempty" jsonschema:"personality key (default: calm)"`
}

type GenerateOutput struct {
	RequestID      string                  `json:"request_id"`
	Personality    string                  `json:"personality"`
	Source         string                  `json:"source"`
	SanitizedInput string                  `json:"sanitized_input"`
	Content        string                  `json:"content"`
	Behavior       models.BehaviorProfile  `json:"behavior"`
	Validation     models.ValidationResult `json:"validation"`
	CreatedAt      string                  `json:"created_at"`
}

func NewResolveHandler(service *generation.Service) func(context.Context, *mcp.CallToolRequest, ResolveInput) (*mcp.CallToolResult, ResolveOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ResolveInput) (*mcp.CallToolResult, ResolveOutput, error) {
		resolution := service.ResolvePersonality(ctx, input.FunnelID, models.ResolveContext{
			ExplicitKey: models.PersonalityKey(input.ExplicitKey),
			StoredMode:  models.PersonalityKey(input.StoredMode),
			Path:        input.Path,
		})

		return nil, ResolveOutput{
			Personality: string(resolution.Personality.Key),
			Label:       resolution.Personality.Label,
			Source:      string(resolution.Source),
			Reason:      resolution.Reason,
			Behavior:    service.Behavior(resolution.Personality, models.StateCategory(input.Category)),
		}, nil
	}
}

func NewSanitizeHandler(service *generation.Service) func(context.Context, *mcp.CallToolRequest, SanitizeInput) (*mcp.CallToolResult, SanitizeOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SanitizeInput) (*mcp.CallToolResult, SanitizeOutput, error) {
		sanitized, report := service.SanitizeInput(input.Input)
		return nil, SanitizeOutput{
			Sanitized:     sanitized.String(),
			Redactions:    report.Redactions,
			MarkupRemoved: report.MarkupRemoved,
		}, nil
	}
}

func NewEnvelopeHandler(service *generation.Service) func(context.Context, *mcp.CallToolRequest, EnvelopeInput) (*mcp.CallToolResult, EnvelopeOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input EnvelopeInput) (*mcp.CallToolResult, EnvelopeOutput, error) {
		prepared, err := service.Prepare(ctx, models.GenerateRequest{
			Personality:  models.PersonalityKey(input.Personality),
			Path:         input.Path,
			Task:         input.Task,
			UserInput:    input.UserInput,
			OutputSchema: input.OutputSchema,
		})
		if err != nil {
			return nil, EnvelopeOutput{}, err
		}

		return nil, EnvelopeOutput{
			Personality: string(prepared.Resolution.Personality.Key),
			Source:      string(prepared.Resolution.Source),
			Envelope:    prepared.Envelope,
		}, nil
	}
}

func NewValidateHandler(service *generation.Service) func(context.Context, *mcp.CallToolRequest, ValidateInput) (*mcp.CallToolResult, models.ValidationResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ValidateInput) (*mcp.CallToolResult, models.ValidationResult, error) {
		return nil, service.Validate(ctx, "", input.Content, input.Personality), nil
	}
}

func NewGenerateHandler(service *generation.Service) func(context.Context, *mcp.CallToolRequest, models.GenerateRequest) (*mcp.CallToolResult, GenerateOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input models.GenerateRequest) (*mcp.CallToolResult, GenerateOutput, error) {
		result, err := service.Generate(ctx, input)
		if err != nil {
			return nil, GenerateOutput{}, err
		}

		return nil, GenerateOutput{
			RequestID:      result.RequestID,
			Personality:    string(result.Personality),
			Source:         string(result.Source),
			SanitizedInput: result.SanitizedInput,
			Content:        result.Content,
			Behavior:       result.Behavior,
			Validation:     result.Validation,
			CreatedAt:      result.CreatedAt.Format(time.RFC3339),
		}, nil
	}
}
