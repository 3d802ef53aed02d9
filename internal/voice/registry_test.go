package voice

import (
	"errors"
	"testing"

	"github.com/povarna/generative-ai-agents/voice-agent/internal/models"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/personality"
)

func TestNewRegistry_Empty(t *testing.T) {
	_, err := NewRegistry(nil)
	if !errors.Is(err, ErrEmptyRegistry) {
		t.Errorf("expected ErrEmptyRegistry, got %v", err)
	}
}

func TestNewRegistry_Duplicate(t *testing.T) {
	_, err := NewRegistry([]Voice{
		{Key: models.PersonalityCalm, Header: "a"},
		{Key: models.PersonalityCalm, Header: "b"},
	})
	if !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestCanonical_CoversEveryPersonality(t *testing.T) {
	registry, err := NewRegistry(Canonical())
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	if err := registry.Require(personality.Keys()); err != nil {
		t.Fatalf("canonical voices incomplete: %v", err)
	}

	for _, key := range registry.Keys() {
		v, _ := registry.Get(key)
		if v.Header == "" {
			t.Errorf("voice %s has no header", key)
		}
		if len(v.Rules) == 0 {
			t.Errorf("voice %s has no rules", key)
		}
		if len(v.Examples) == 0 {
			t.Errorf("voice %s has no examples", key)
		}
	}
}

func TestRegistry_Require_Missing(t *testing.T) {
	registry, err := NewRegistry([]Voice{{Key: models.PersonalityCalm, Rules: []string{"x"}}})
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	err = registry.Require([]models.PersonalityKey{models.PersonalityCalm, models.PersonalityRocket})
	if !errors.Is(err, ErrMissingVoice) {
		t.Errorf("expected ErrMissingVoice, got %v", err)
	}
}

func TestRegistry_IsReadOnly(t *testing.T) {
	entries := []Voice{{Key: models.PersonalityRocket, Rules: []string{"original"}}}
	registry, err := NewRegistry(entries)
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	entries[0].Rules[0] = "changed after construction"
	rules := registry.Rules(models.PersonalityRocket)
	if rules[0] != "original" {
		t.Errorf("registry changed through the input slice: %q", rules[0])
	}

	rules[0] = "changed through accessor"
	if got := registry.Rules(models.PersonalityRocket)[0]; got != "original" {
		t.Errorf("registry changed through Rules(): %q", got)
	}

	if registry.Rules("unknown") != nil {
		t.Error("expected nil rules for unknown key")
	}
}
