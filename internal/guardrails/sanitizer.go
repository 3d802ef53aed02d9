package guardrails

// SanitizedText is user input that went through a Sanitizer. Prompt building
// only accepts this type.
type SanitizedText string

func (s SanitizedText) String() string {
	return string(s)
}

type Sanitizer struct {
	matcher *PhraseMatcher
	token   string
}

func NewSanitizer(phrases []string) *Sanitizer {
	return &Sanitizer{
		matcher: NewPhraseMatcher(phrases),
		token:   RedactionToken,
	}
}

func NewDefaultSanitizer() *Sanitizer {
	return NewSanitizer(DefaultBannedPhrases)
}

// Sanitize redacts every banned phrase. It never fails.
func (s *Sanitizer) Sanitize(input string) SanitizedText {
	out, _ := s.matcher.Replace(input, s.token)
	return SanitizedText(out)
}

// SanitizeWithCount also reports how many occurrences were redacted.
func (s *Sanitizer) SanitizeWithCount(input string) (SanitizedText, int) {
	out, n := s.matcher.Replace(input, s.token)
	return SanitizedText(out), n
}

func (s *Sanitizer) Phrases() []string {
	return s.matcher.Phrases()
}
