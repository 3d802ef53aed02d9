package guardrails

import (
	"regexp"
	"slices"
)

// RedactionToken replaces every banned phrase found in user input.
const RedactionToken = "[removed]"

// DefaultBannedPhrases is the platform-wide list shared by input redaction and
// content validation. Order matters: phrases are applied top to bottom.
var DefaultBannedPhrases = []string{
	"guaranteed",
	"passive income",
	"overnight",
	"get rich",
	"make money fast",
	"risk-free",
	"no risk",
	"financial freedom",
	"six figures",
	"6-figure",
	"7-figure",
	"millionaire",
	"secret formula",
	"act now",
	"limited time",
	"last chance",
	"only a few spots left",
	"100% success",
	"guru",
}

func BannedPhrases() []string {
	return slices.Clone(DefaultBannedPhrases)
}

// PhraseMatch is one phrase found in a text. Span is the first occurrence as
// written in the text.
type PhraseMatch struct {
	Phrase string
	Span   string
	Count  int
}

// PhraseMatcher does case-insensitive substring matching with no word
// boundaries: "guru" also matches inside "gurus".
type PhraseMatcher struct {
	phrases  []string
	patterns []*regexp.Regexp
}

func NewPhraseMatcher(phrases []string) *PhraseMatcher {
	m := &PhraseMatcher{
		phrases:  make([]string, 0, len(phrases)),
		patterns: make([]*regexp.Regexp, 0, len(phrases)),
	}

	for _, phrase := range phrases {
		if phrase == "" {
			continue
		}
		m.phrases = append(m.phrases, phrase)
		m.patterns = append(m.patterns, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(phrase)))
	}

	return m
}

func (m *PhraseMatcher) Phrases() []string {
	return slices.Clone(m.phrases)
}

// Find returns the phrases present in text, in list order.
func (m *PhraseMatcher) Find(text string) []PhraseMatch {
	var matches []PhraseMatch
	for i, pattern := range m.patterns {
		found := pattern.FindAllString(text, -1)
		if len(found) == 0 {
			continue
		}
		matches = append(matches, PhraseMatch{
			Phrase: m.phrases[i],
			Span:   found[0],
			Count:  len(found),
		})
	}
	return matches
}

// Replace substitutes every phrase with token, one phrase at a time in list order.
func (m *PhraseMatcher) Replace(text string, token string) (string, int) {
	replaced := 0
	for _, pattern := range m.patterns {
		n := len(pattern.FindAllStringIndex(text, -1))
		if n == 0 {
			continue
		}
		replaced += n
		text = pattern.ReplaceAllLiteralString(text, token)
	}
	return text, replaced
}
