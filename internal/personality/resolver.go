package personality

import (
	"strings"

	"github.com/povarna/generative-ai-agents/voice-agent/internal/models"
	"github.com/rs/zerolog"
)

type Resolution struct {
	Personality models.Personality      `json:"personality"`
	Source      models.ResolutionSource `json:"source"`
	Reason      string                  `json:"reason"`
}

type pathRule struct {
	name      string
	fragments []string
	key       models.PersonalityKey
}

// Evaluated top to bottom, first match wins.
var pathRules = []pathRule{
	{
		name:      "onboarding",
		fragments: []string{"/onboarding", "/welcome", "/getting-started", "/setup"},
		key:       models.PersonalityGuide,
	},
	{
		name:      "ai surface",
		fragments: []string{"/ai", "/generate", "/assistant", "/copilot"},
		key:       models.PersonalitySpark,
	},
	{
		name:      "analytics",
		fragments: []string{"/analytics", "/reports", "/insights", "/stats"},
		key:       models.PersonalityBoost,
	},
}

type Resolver struct {
	logger *zerolog.Logger
}

func NewResolver(logger *zerolog.Logger) *Resolver {
	return &Resolver{
		logger: logger,
	}
}

// Resolve always returns a valid personality. Unknown keys fall through to the
// next step instead of failing.
func (r *Resolver) Resolve(rc models.ResolveContext) models.Personality {
	return r.ResolveWithSource(rc).Personality
}

func (r *Resolver) ResolveWithSource(rc models.ResolveContext) Resolution {
	resolution := r.resolve(rc)

	r.logger.Debug().
		Str("personality", string(resolution.Personality.Key)).
		Str("source", string(resolution.Source)).
		Str("path", rc.Path).
		Msg("personality resolved")

	return resolution
}

func (r *Resolver) resolve(rc models.ResolveContext) Resolution {
	if rc.ExplicitKey != "" {
		if p, ok := Lookup(normalizeKey(rc.ExplicitKey)); ok {
			return Resolution{Personality: p, Source: models.SourceExplicit, Reason: "explicit override"}
		}
		r.logger.Warn().Str("explicit_key", string(rc.ExplicitKey)).Msg("unknown explicit personality, ignoring")
	}

	if rc.StoredMode != "" {
		if p, ok := Lookup(normalizeKey(rc.StoredMode)); ok {
			return Resolution{Personality: p, Source: models.SourceStored, Reason: "stored brand mode"}
		}
		r.logger.Warn().Str("stored_mode", string(rc.StoredMode)).Msg("unknown stored brand mode, ignoring")
	}

	if rule, ok := matchPath(rc.Path); ok {
		return Resolution{Personality: Get(rule.key), Source: models.SourcePath, Reason: rule.name + " path"}
	}

	return Resolution{Personality: Default(), Source: models.SourceDefault, Reason: "safe default"}
}

func matchPath(path string) (pathRule, bool) {
	path = strings.ToLower(strings.TrimSpace(path))
	if path == "" {
		return pathRule{}, false
	}

	for _, rule := range pathRules {
		for _, fragment := range rule.fragments {
			if strings.Contains(path, fragment) {
				return rule, true
			}
		}
	}

	return pathRule{}, false
}

func normalizeKey(key models.PersonalityKey) models.PersonalityKey {
	return models.PersonalityKey(strings.ToLower(strings.TrimSpace(string(key))))
}
