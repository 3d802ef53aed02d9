package prompt

import (
	"strings"

	"github.com/povarna/generative-ai-agents/voice-agent/internal/guardrails"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/models"
)

// GlobalRules apply to every envelope, whatever the personality.
var GlobalRules = []string{
	"No income claims or earnings figures.",
	"No guarantees of results.",
	"No hype or exaggerated superlatives.",
	"No guru tone and no self-proclaimed expertise.",
	"No urgency manipulation (countdowns, scarcity, pressure to act now).",
	"No emojis unless explicitly allowed in the task.",
	"Humor must increase trust, never reduce it.",
}

const (
	NoneMarker = "None"

	ClosingInstruction = "If you cannot comply exactly with every rule above, return a safe, compliant alternative in the required output format instead of refusing or failing."
)

// RuleSource supplies the voice rules for a personality.
type RuleSource interface {
	Rules(key models.PersonalityKey) []string
}

type Builder struct {
	rules RuleSource
}

func NewBuilder(rules RuleSource) *Builder {
	return &Builder{
		rules: rules,
	}
}

// Build assembles the envelope sections in a fixed order: global rules,
// personality rules, task, user input, output schema, closing instruction.
// The schema is copied verbatim.
func (b *Builder) Build(p models.Personality, task string, input guardrails.SanitizedText, outputSchema string) string {
	var sb strings.Builder

	section(&sb, "GLOBAL RULES")
	list(&sb, GlobalRules)
	sb.WriteString("\n")

	section(&sb, "PERSONALITY: "+p.Label)
	if p.Worldview != "" {
		sb.WriteString(p.Worldview)
		sb.WriteString("\n")
	}
	list(&sb, b.rules.Rules(p.Key))
	if len(p.Forbidden) > 0 {
		sb.WriteString("Forbidden words: ")
		sb.WriteString(strings.Join(p.Forbidden, ", "))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	section(&sb, "TASK")
	sb.WriteString(strings.TrimSpace(task))
	sb.WriteString("\n\n")

	section(&sb, "USER INPUT")
	if strings.TrimSpace(string(input)) == "" {
		sb.WriteString(NoneMarker)
	} else {
		sb.WriteString(string(input))
	}
	sb.WriteString("\n\n")

	section(&sb, "OUTPUT SCHEMA")
	sb.WriteString(outputSchema)
	sb.WriteString("\n\n")

	sb.WriteString(ClosingInstruction)

	return sb.String()
}

func section(sb *strings.Builder, title string) {
	sb.WriteString("## ")
	sb.WriteString(title)
	sb.WriteString("\n")
}

func list(sb *strings.Builder, items []string) {
	for _, item := range items {
		sb.WriteString("- ")
		sb.WriteString(item)
		sb.WriteString("\n")
	}
}
