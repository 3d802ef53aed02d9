package guardrails

import (
	"strings"

	"github.com/rs/zerolog"
)

type InputReport struct {
	Redactions    int  `json:"redactions"`
	MarkupRemoved bool `json:"markup_removed"`
}

// Guardrails prepares free text from outer surfaces (HTTP, MCP, stream) before
// it reaches a prompt.
type Guardrails struct {
	sanitizer *Sanitizer
	logger    *zerolog.Logger
}

func NewGuardrails(sanitizer *Sanitizer, logger *zerolog.Logger) *Guardrails {
	return &Guardrails{
		sanitizer: sanitizer,
		logger:    logger,
	}
}

func (g *Guardrails) Sanitizer() *Sanitizer {
	return g.sanitizer
}

// PrepareInput strips markup, trims and redacts banned phrases. Redaction is the
// last step so its output never contains a banned phrase.
func (g *Guardrails) PrepareInput(raw string) (SanitizedText, InputReport) {
	stripped := StripMarkup(raw)
	report := InputReport{MarkupRemoved: stripped != raw}

	sanitized, n := g.sanitizer.SanitizeWithCount(strings.TrimSpace(stripped))
	report.Redactions = n

	if n > 0 || report.MarkupRemoved {
		g.logger.Info().
			Int("redactions", n).
			Bool("markup_removed", report.MarkupRemoved).
			Msg("User input sanitized")
	}

	return sanitized, report
}
