package models

import (
	"time"
)

type PersonalityKey string

const (
	PersonalityCalm   PersonalityKey = "calm"
	PersonalityRocket PersonalityKey = "rocket"
	PersonalityBoost  PersonalityKey = "boost"
	PersonalityGuide  PersonalityKey = "guide"
	PersonalitySpark  PersonalityKey = "spark"
	PersonalityWry    PersonalityKey = "wry"
)

type Tone string

const (
	ToneSteady     Tone = "steady"
	ToneEnergetic  Tone = "energetic"
	ToneAnalytical Tone = "analytical"
	ToneWarm       Tone = "warm"
	ToneInventive  Tone = "inventive"
	ToneDry        Tone = "dry"
)

type Accent struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

// Personality is a fixed brand voice preset. Values are built once and never mutated.
type Personality struct {
	Key       PersonalityKey `json:"key"`
	Label     string         `json:"label"`
	Worldview string         `json:"worldview"`
	Forbidden []string       `json:"forbidden"`
	Tone      Tone           `json:"tone"`
	Accent    Accent         `json:"accent"`
}

// ResolveContext describes where copy is being rendered.
type ResolveContext struct {
	ExplicitKey PersonalityKey `json:"explicit_key,omitempty"`
	StoredMode  PersonalityKey `json:"stored_mode,omitempty"`
	Path        string         `json:"path,omitempty"`
}

type ResolutionSource string

const (
	SourceExplicit ResolutionSource = "explicit"
	SourceStored   ResolutionSource = "stored"
	SourcePath     ResolutionSource = "path"
	SourceDefault  ResolutionSource = "default"
)

type StateCategory string

const (
	CategoryNone             StateCategory = ""
	CategoryEmptyExpected    StateCategory = "empty-expected"
	CategoryEmptyUnexpected  StateCategory = "empty-unexpected"
	CategoryRecoverableError StateCategory = "recoverable-error"
	CategoryHardError        StateCategory = "hard-error"
)

func (c StateCategory) Valid() bool {
	switch c {
	case CategoryNone, CategoryEmptyExpected, CategoryEmptyUnexpected, CategoryRecoverableError, CategoryHardError:
		return true
	}
	return false
}

type HeadlineLength string

const (
	HeadlineShort  HeadlineLength = "short"
	HeadlineMedium HeadlineLength = "medium"
)

type SubcopyDensity string

const (
	SubcopyMinimal   SubcopyDensity = "minimal"
	SubcopyExplained SubcopyDensity = "explained"
)

type MotionIntensity string

const (
	MotionNone   MotionIntensity = "none"
	MotionLow    MotionIntensity = "low"
	MotionMedium MotionIntensity = "medium"
	MotionHigh   MotionIntensity = "high"
)

type NoiseLevel string

const (
	NoiseLow    NoiseLevel = "low"
	NoiseMedium NoiseLevel = "medium"
	NoiseHigh   NoiseLevel = "high"
)

type BehaviorProfile struct {
	HeadlineLength  HeadlineLength  `json:"headline_length"`
	SubcopyDensity  SubcopyDensity  `json:"subcopy_density"`
	SarcasmAllowed  bool            `json:"sarcasm_allowed"`
	ForbidPromises  bool            `json:"forbid_promises"`
	MotionIntensity MotionIntensity `json:"motion_intensity"`
	SoundEnabled    bool            `json:"sound_enabled"`
	SoundMaxVolume  float64         `json:"sound_max_volume"`
	VisualNoise     NoiseLevel      `json:"visual_noise"`
	PersonalityCopy bool            `json:"personality_copy"`
}

type ViolationRule string

const (
	RulePersonalityForbidden ViolationRule = "personality_forbidden"
	RulePlatformBanned       ViolationRule = "platform_banned"
	RuleEmoji                ViolationRule = "emoji"
	RuleRepeatedPunctuation  ViolationRule = "repeated_punctuation"
	RuleShouting             ViolationRule = "shouting"
)

type Violation struct {
	Rule   ViolationRule `json:"rule"`
	Phrase string        `json:"phrase"`
	Span   string        `json:"span"`
}

type ValidationResult struct {
	Personality PersonalityKey `json:"personality"`
	Violations  []Violation    `json:"violations"`
	Warnings    []Violation    `json:"warnings,omitempty"`
	Score       float64        `json:"score"`
	Approved    bool           `json:"approved"`
}

// GenerateRequest is the input of the copy pipeline.
type GenerateRequest struct {
	RequestID    string         `json:"request_id,omitempty" jsonschema:"optional request identifier"`
	FunnelID     string         `json:"funnel_id,omitempty" jsonschema:"funnel whose stored brand mode applies"`
	Path         string         `json:"path,omitempty" jsonschema:"page path used for personality heuristics"`
	Personality  PersonalityKey `json:"personality,omitempty" jsonschema:"explicit personality override"`
	StoredMode   PersonalityKey `json:"stored_mode,omitempty" jsonschema:"persisted brand mode"`
	Category     StateCategory  `json:"category,omitempty" jsonschema:"empty/error state category"`
	Task         string         `json:"task" jsonschema:"what the generator should write"`
	UserInput    string         `json:"user_input,omitempty" jsonschema:"free text supplied by the user"`
	OutputSchema string         `json:"output_schema" jsonschema:"plain-text description of the expected JSON shape"`
}

type GenerateResult struct {
	RequestID      string           `json:"request_id"`
	Personality    PersonalityKey   `json:"personality"`
	Source         ResolutionSource `json:"source"`
	Behavior       BehaviorProfile  `json:"behavior"`
	SanitizedInput string           `json:"sanitized_input"`
	Content        string           `json:"content"`
	StopReason     string           `json:"stop_reason"`
	Usage          TokenUsage       `json:"usage"`
	Validation     ValidationResult `json:"validation"`
	CreatedAt      time.Time        `json:"created_at"`
}

type TokenUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// Section is one independently generated part of a page.
type Section struct {
	Name         string `json:"name"`
	Task         string `json:"task"`
	OutputSchema string `json:"output_schema"`
}

type SectionsRequest struct {
	GenerateRequest
	Sections []Section `json:"sections"`
}

type SectionResult struct {
	Name   string          `json:"name"`
	Result *GenerateResult `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// ValidationRecord is what gets persisted for each validation.
type ValidationRecord struct {
	ID        string           `json:"id"`
	RequestID string           `json:"request_id"`
	Content   string           `json:"content"`
	Result    ValidationResult `json:"result"`
	CreatedAt time.Time        `json:"created_at"`
}

// GenerationOutcome is published to the results stream for every consumed request.
type GenerationOutcome struct {
	RequestID string          `json:"request_id"`
	Result    *GenerateResult `json:"result,omitempty"`
	Error     string          `json:"error,omitempty"`
}
