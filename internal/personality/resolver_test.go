package personality

import (
	"testing"

	"github.com/povarna/generative-ai-agents/voice-agent/internal/models"
	"github.com/rs/zerolog"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func TestResolver_Resolve(t *testing.T) {
	resolver := NewResolver(newTestLogger())

	tests := []struct {
		name   string
		rc     models.ResolveContext
		want   models.PersonalityKey
		source models.ResolutionSource
	}{
		{
			name:   "explicit key wins",
			rc:     models.ResolveContext{ExplicitKey: "rocket", StoredMode: "wry", Path: "/dashboard/analytics"},
			want:   models.PersonalityRocket,
			source: models.SourceExplicit,
		},
		{
			name:   "explicit key is case insensitive",
			rc:     models.ResolveContext{ExplicitKey: " Rocket "},
			want:   models.PersonalityRocket,
			source: models.SourceExplicit,
		},
		{
			name:   "unknown explicit key falls through to stored mode",
			rc:     models.ResolveContext{ExplicitKey: "pirate", StoredMode: "wry"},
			want:   models.PersonalityWry,
			source: models.SourceStored,
		},
		{
			name:   "stored mode beats path",
			rc:     models.ResolveContext{StoredMode: "guide", Path: "/dashboard/analytics"},
			want:   models.PersonalityGuide,
			source: models.SourceStored,
		},
		{
			name:   "unknown stored mode falls through to path",
			rc:     models.ResolveContext{StoredMode: "unknown", Path: "/reports/weekly"},
			want:   models.PersonalityBoost,
			source: models.SourcePath,
		},
		{
			name:   "onboarding path",
			rc:     models.ResolveContext{Path: "/onboarding/step-2"},
			want:   models.PersonalityGuide,
			source: models.SourcePath,
		},
		{
			name:   "ai surface path",
			rc:     models.ResolveContext{Path: "/funnels/42/ai/headline"},
			want:   models.PersonalitySpark,
			source: models.SourcePath,
		},
		{
			name:   "path match is case insensitive",
			rc:     models.ResolveContext{Path: "/Dashboard/ANALYTICS"},
			want:   models.PersonalityBoost,
			source: models.SourcePath,
		},
		{
			name:   "first matching rule wins",
			rc:     models.ResolveContext{Path: "/welcome/analytics"},
			want:   models.PersonalityGuide,
			source: models.SourcePath,
		},
		{
			name:   "no match falls back to default",
			rc:     models.ResolveContext{Path: "/funnels/42/edit"},
			want:   DefaultKey,
			source: models.SourceDefault,
		},
		{
			name:   "empty context falls back to default",
			rc:     models.ResolveContext{},
			want:   DefaultKey,
			source: models.SourceDefault,
		},
		{
			name:   "unknown everything falls back to default",
			rc:     models.ResolveContext{ExplicitKey: "nope", StoredMode: "nada", Path: "/billing"},
			want:   DefaultKey,
			source: models.SourceDefault,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			resolution := resolver.ResolveWithSource(test.rc)
			if resolution.Personality.Key != test.want {
				t.Errorf("Personality: %s, want: %s", resolution.Personality.Key, test.want)
			}
			if resolution.Source != test.source {
				t.Errorf("Source: %s, want: %s", resolution.Source, test.source)
			}
		})
	}
}

func TestResolver_AnalyticsPathIsDeterministic(t *testing.T) {
	resolver := NewResolver(newTestLogger())
	rc := models.ResolveContext{Path: "/dashboard/analytics"}

	for i := 0; i < 100; i++ {
		p := resolver.Resolve(rc)
		if p.Key != models.PersonalityBoost {
			t.Fatalf("iteration %d: expected boost, got %s", i, p.Key)
		}
	}
}

func TestResolver_UnmatchedPathsAlwaysDefault(t *testing.T) {
	resolver := NewResolver(newTestLogger())
	paths := []string{"", "/", "/funnels", "/billing/invoices", "/settings/profile", "/leads/export", "not-a-path"}

	for _, path := range paths {
		if p := resolver.Resolve(models.ResolveContext{Path: path}); p.Key != DefaultKey {
			t.Errorf("path %q: expected default %s, got %s", path, DefaultKey, p.Key)
		}
	}
}

func TestCatalogue(t *testing.T) {
	if len(All()) != len(Keys()) {
		t.Fatalf("expected %d personalities, got %d", len(Keys()), len(All()))
	}

	for _, key := range Keys() {
		p, ok := Lookup(key)
		if !ok {
			t.Fatalf("missing personality %s", key)
		}
		if p.Label == "" || p.Worldview == "" || p.Tone == "" {
			t.Errorf("personality %s has empty attributes", key)
		}
		if len(p.Forbidden) == 0 {
			t.Errorf("personality %s has no forbidden words", key)
		}
	}

	if !IsValid(models.PersonalityRocket) {
		t.Error("rocket should be valid")
	}
	if IsValid("pirate") {
		t.Error("pirate should not be valid")
	}
	if Get("pirate").Key != DefaultKey {
		t.Error("unknown key should return the default personality")
	}
}

func TestLookup_ReturnsCopy(t *testing.T) {
	p, _ := Lookup(models.PersonalityRocket)
	p.Forbidden[0] = "mutated"

	again, _ := Lookup(models.PersonalityRocket)
	if again.Forbidden[0] == "mutated" {
		t.Error("catalogue entry was mutated through a returned value")
	}
}
