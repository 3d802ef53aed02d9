package prompt

import (
	"strings"
	"testing"

	"github.com/povarna/generative-ai-agents/voice-agent/internal/guardrails"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/models"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/personality"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/voice"
)

func newTestBuilder(t *testing.T) (*Builder, *voice.Registry) {
	t.Helper()
	registry, err := voice.NewRegistry(voice.Canonical())
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	return NewBuilder(registry), registry
}

func TestBuild_SectionOrder(t *testing.T) {
	builder, registry := newTestBuilder(t)
	rocket := personality.Get(models.PersonalityRocket)
	schema := `{"headline":"string"}`

	envelope := builder.Build(rocket, "write hero headline", "launch a pottery class", schema)

	ordered := []string{
		"## GLOBAL RULES",
		GlobalRules[0],
		GlobalRules[len(GlobalRules)-1],
		"## PERSONALITY: Rocket",
		registry.Rules(models.PersonalityRocket)[0],
		"Forbidden words: skyrocket",
		"## TASK",
		"write hero headline",
		"## USER INPUT",
		"launch a pottery class",
		"## OUTPUT SCHEMA",
		schema,
		ClosingInstruction,
	}

	last := -1
	for _, part := range ordered {
		idx := strings.Index(envelope, part)
		if idx < 0 {
			t.Fatalf("envelope missing %q", part)
		}
		if idx <= last {
			t.Errorf("%q is out of order", part)
		}
		last = idx
	}
}

func TestBuild_NoneMarkerWhenInputAbsent(t *testing.T) {
	builder, _ := newTestBuilder(t)

	for _, input := range []guardrails.SanitizedText{"", "   \n"} {
		envelope := builder.Build(personality.Default(), "write a subheading", input, "{}")
		if !strings.Contains(envelope, "## USER INPUT\n"+NoneMarker+"\n") {
			t.Errorf("expected None marker for input %q", input)
		}
	}
}

func TestBuild_SchemaAlwaysVerbatim(t *testing.T) {
	builder, _ := newTestBuilder(t)
	schemas := []string{
		`{"headline":"string"}`,
		`{"headline":"string (max 8 words)","subcopy":"string (max 25 words)","cta":"string"}`,
		"  leading and trailing whitespace kept  ",
		"",
	}
	tasks := []string{"write hero headline", "", "write three FAQ answers"}

	for _, p := range personality.All() {
		for _, task := range tasks {
			for _, schema := range schemas {
				envelope := builder.Build(p, task, "some input", schema)
				if !strings.Contains(envelope, "## OUTPUT SCHEMA\n"+schema+"\n") {
					t.Errorf("%s/%q: schema %q not present verbatim", p.Key, task, schema)
				}
			}
		}
	}
}

func TestBuild_Deterministic(t *testing.T) {
	builder, _ := newTestBuilder(t)
	p := personality.Get(models.PersonalityGuide)

	first := builder.Build(p, "welcome message", "my shop", `{"title":"string"}`)
	for i := 0; i < 20; i++ {
		if got := builder.Build(p, "welcome message", "my shop", `{"title":"string"}`); got != first {
			t.Fatal("envelope changed between identical calls")
		}
	}
}

func TestBuild_RocketScenario(t *testing.T) {
	builder, registry := newTestBuilder(t)
	sanitizer := guardrails.NewDefaultSanitizer()
	rocket := personality.Get(models.PersonalityRocket)
	schema := `{"headline":"string"}`

	sanitized := sanitizer.Sanitize("guaranteed passive income overnight")
	if sanitized != "[removed] [removed] [removed]" {
		t.Fatalf("unexpected sanitized input %q", sanitized)
	}

	envelope := builder.Build(rocket, "write hero headline", sanitized, schema)

	for _, rule := range GlobalRules {
		if !strings.Contains(envelope, rule) {
			t.Errorf("missing global rule %q", rule)
		}
	}
	for _, rule := range registry.Rules(models.PersonalityRocket) {
		if !strings.Contains(envelope, rule) {
			t.Errorf("missing rocket rule %q", rule)
		}
	}
	for _, want := range []string{"write hero headline", "[removed] [removed] [removed]", schema} {
		if !strings.Contains(envelope, want) {
			t.Errorf("missing %q", want)
		}
	}
	if strings.Contains(strings.ToLower(envelope), "passive income") {
		t.Error("raw user input leaked into the envelope")
	}
}
