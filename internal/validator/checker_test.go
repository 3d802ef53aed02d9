package validator

import (
	"testing"

	"github.com/povarna/generative-ai-agents/voice-agent/internal/models"
)

func TestCheckers(t *testing.T) {
	tests := []struct {
		name    string
		checker Checker
		content string
		rule    models.ViolationRule
		flagged bool
	}{
		{"Emoji present", &EmojiChecker{}, "Launch day 🚀", models.RuleEmoji, true},
		{"No emoji", &EmojiChecker{}, "Launch day", models.RuleEmoji, false},
		{"Repeated punctuation", &RepeatedPunctuationChecker{}, "Hello!!! How are you?", models.RuleRepeatedPunctuation, true},
		{"Ellipsis counts", &RepeatedPunctuationChecker{}, "Wait for it...", models.RuleRepeatedPunctuation, true},
		{"Single punctuation", &RepeatedPunctuationChecker{}, "Hello! How are you?", models.RuleRepeatedPunctuation, false},
		{"Shouting", &ShoutingChecker{}, "BUY THIS PAGE today", models.RuleShouting, true},
		{"Acronym only", &ShoutingChecker{}, "Read the FAQ about HTML", models.RuleShouting, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			findings := test.checker.Check(test.content)
			if test.flagged && len(findings) == 0 {
				t.Fatalf("expected a finding for %q", test.content)
			}
			if !test.flagged && len(findings) != 0 {
				t.Fatalf("unexpected finding for %q: %+v", test.content, findings)
			}
			if test.flagged && findings[0].Rule != test.rule {
				t.Errorf("Rule: %s, want: %s", findings[0].Rule, test.rule)
			}
		})
	}
}
