package validator

import (
	"strings"

	"github.com/povarna/generative-ai-agents/voice-agent/internal/guardrails"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/models"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/personality"
)

// MaxScore is returned for content without violations.
const MaxScore = 1.0

type Validator struct {
	platform  *guardrails.PhraseMatcher
	forbidden map[models.PersonalityKey]*guardrails.PhraseMatcher
	checkers  []Checker
}

// NewValidator builds matchers for the platform list and for every personality
// once. bannedPhrases must be the same list the input sanitizer uses.
func NewValidator(bannedPhrases []string, checkers []Checker) *Validator {
	forbidden := make(map[models.PersonalityKey]*guardrails.PhraseMatcher)
	for _, p := range personality.All() {
		forbidden[p.Key] = guardrails.NewPhraseMatcher(p.Forbidden)
	}

	return &Validator{
		platform:  guardrails.NewPhraseMatcher(bannedPhrases),
		forbidden: forbidden,
		checkers:  checkers,
	}
}

func NewDefaultValidator() *Validator {
	return NewValidator(guardrails.DefaultBannedPhrases, DefaultCheckers())
}

// Validate checks content against the personality's forbidden words, then the
// platform banned phrases. Each distinct phrase is one violation. Unknown
// personality ids are validated as the default personality.
func (v *Validator) Validate(content string, personalityID string) models.ValidationResult {
	p := personality.Get(models.PersonalityKey(strings.ToLower(strings.TrimSpace(personalityID))))

	violations := []models.Violation{}
	seen := make(map[string]bool)

	add := func(rule models.ViolationRule, matches []guardrails.PhraseMatch) {
		for _, m := range matches {
			key := strings.ToLower(m.Phrase)
			if seen[key] {
				continue
			}
			seen[key] = true
			violations = append(violations, models.Violation{Rule: rule, Phrase: m.Phrase, Span: m.Span})
		}
	}

	if matcher, ok := v.forbidden[p.Key]; ok {
		add(models.RulePersonalityForbidden, matcher.Find(content))
	}
	add(models.RulePlatformBanned, v.platform.Find(content))

	var warnings []models.Violation
	for _, checker := range v.checkers {
		warnings = append(warnings, checker.Check(content)...)
	}

	return models.ValidationResult{
		Personality: p.Key,
		Violations:  violations,
		Warnings:    warnings,
		Score:       Score(len(violations)),
		Approved:    len(violations) == 0,
	}
}

// Score is 1 for no violations and strictly decreases with every violation.
func Score(violations int) float64 {
	if violations <= 0 {
		return MaxScore
	}
	return MaxScore / float64(1+violations)
}
