package personality

import (
	"slices"

	"github.com/povarna/generative-ai-agents/voice-agent/internal/models"
)

// DefaultKey is the safe default every resolution falls back to.
const DefaultKey = models.PersonalityCalm

var keys = []models.PersonalityKey{
	models.PersonalityCalm,
	models.PersonalityRocket,
	models.PersonalityBoost,
	models.PersonalityGuide,
	models.PersonalitySpark,
	models.PersonalityWry,
}

var catalogue = buildCatalogue()

func buildCatalogue() map[models.PersonalityKey]models.Personality {
	entries := make(map[models.PersonalityKey]models.Personality, len(keys))
	for _, key := range keys {
		entries[key] = define(key)
	}
	return entries
}

// define is the single place each personality is described. The switch has no
// default branch so a new key without a definition panics at init.
func define(key models.PersonalityKey) models.Personality {
	switch key {
	case models.PersonalityCalm:
		return models.Personality{
			Key:       key,
			Label:     "Calm Operator",
			Worldview: "Clarity beats excitement. Say what the product does and let the results speak for themselves.",
			Forbidden: []string{"revolutionary", "game-changer", "insane", "mind-blowing"},
			Tone:      models.ToneSteady,
			Accent:    models.Accent{Primary: "#2F4858", Secondary: "#86BBD8"},
		}
	case models.PersonalityRocket:
		return models.Personality{
			Key:       key,
			Label:     "Rocket",
			Worldview: "Momentum is earned by shipping. Bring energy to the work, never hype to the outcome.",
			Forbidden: []string{"skyrocket", "explode", "10x", "crush it", "viral"},
			Tone:      models.ToneEnergetic,
			Accent:    models.Accent{Primary: "#FF5A36", Secondary: "#FFB627"},
		}
	case models.PersonalityBoost:
		return models.Personality{
			Key:       key,
			Label:     "Boost",
			Worldview: "Numbers are a record of effort. Celebrate honest progress and never inflate it.",
			Forbidden: []string{"record-breaking", "unbeatable", "massive gains", "always up"},
			Tone:      models.ToneAnalytical,
			Accent:    models.Accent{Primary: "#00A676", Secondary: "#C2F970"},
		}
	case models.PersonalityGuide:
		return models.Personality{
			Key:       key,
			Label:     "Guide",
			Worldview: "Every first step should feel small and safe. Explain, then invite.",
			Forbidden: []string{"easy money", "just click", "no effort", "effortless"},
			Tone:      models.ToneWarm,
			Accent:    models.Accent{Primary: "#6C63FF", Secondary: "#F3F0FF"},
		}
	case models.PersonalitySpark:
		return models.Personality{
			Key:       key,
			Label:     "Spark",
			Worldview: "The assistant is a collaborator with limits. Say what it drafted and what the user should check.",
			Forbidden: []string{"magic", "genius", "perfect copy", "flawless"},
			Tone:      models.ToneInventive,
			Accent:    models.Accent{Primary: "#8E44AD", Secondary: "#F5B7B1"},
		}
	case models.PersonalityWry:
		return models.Personality{
			Key:       key,
			Label:     "Wry",
			Worldview: "Dry humor builds trust when the joke is on the situation, never on the user.",
			Forbidden: []string{"stupid", "idiot", "obviously", "loser"},
			Tone:      models.ToneDry,
			Accent:    models.Accent{Primary: "#37474F", Secondary: "#FFCA28"},
		}
	}
	panic("personality: no definition for " + string(key))
}

// Keys returns the closed set of personality keys in catalogue order.
func Keys() []models.PersonalityKey {
	return slices.Clone(keys)
}

func IsValid(key models.PersonalityKey) bool {
	_, ok := catalogue[key]
	return ok
}

// Lookup returns a copy of the personality for key.
func Lookup(key models.PersonalityKey) (models.Personality, bool) {
	p, ok := catalogue[key]
	if !ok {
		return models.Personality{}, false
	}
	p.Forbidden = slices.Clone(p.Forbidden)
	return p, true
}

// Get returns the personality for key, or the safe default when key is unknown.
func Get(key models.PersonalityKey) models.Personality {
	if p, ok := Lookup(key); ok {
		return p
	}
	return Default()
}

func Default() models.Personality {
	p, _ := Lookup(DefaultKey)
	return p
}

func All() []models.Personality {
	all := make([]models.Personality, 0, len(keys))
	for _, key := range keys {
		p, _ := Lookup(key)
		all = append(all, p)
	}
	return all
}
