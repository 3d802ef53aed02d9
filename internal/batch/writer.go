package batch

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/rs/zerolog"
)

const (
	FormatJSONL   = "jsonl"
	FormatSummary = "summary"
)

type Summary struct {
	Total      int            `json:"total"`
	Approved   int            `json:"approved"`
	Rejected   int            `json:"rejected"`
	Redacted   int            `json:"redacted"`
	Errors     int            `json:"errors"`
	Violations map[string]int `json:"violations"`
}

// Writer emits one JSON line per record (jsonl) or a single summary object
// when closed (summary). The summary is tracked in both formats.
type Writer struct {
	out     io.Writer
	format  string
	encoder *json.Encoder
	summary Summary
	logger  *zerolog.Logger
}

func NewWriter(out io.Writer, format string, logger *zerolog.Logger) (*Writer, error) {
	if format != FormatJSONL && format != FormatSummary {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	return &Writer{
		out:     out,
		format:  format,
		encoder: json.NewEncoder(out),
		summary: Summary{Violations: map[string]int{}},
		logger:  logger,
	}, nil
}

func (w *Writer) Write(record OutputRecord) error {
	w.track(record)

	if w.format != FormatJSONL {
		return nil
	}
	if err := w.encoder.Encode(record); err != nil {
		return fmt.Errorf("failed to write record %s: %w", record.ID, err)
	}
	return nil
}

func (w *Writer) Summary() Summary {
	return w.summary
}

func (w *Writer) Close() error {
	w.logger.Info().
		Int("total", w.summary.Total).
		Int("approved", w.summary.Approved).
		Int("rejected", w.summary.Rejected).
		Int("errors", w.summary.Errors).
		Msg("Batch summary")

	if w.format != FormatSummary {
		return nil
	}

	encoder := json.NewEncoder(w.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(w.summary)
}

func (w *Writer) track(record OutputRecord) {
	w.summary.Total++

	switch {
	case record.Error != "":
		w.summary.Errors++
	case record.Validation != nil:
		if record.Validation.Approved {
			w.summary.Approved++
		} else {
			w.summary.Rejected++
		}
		for _, v := range record.Validation.Violations {
			w.summary.Violations[v.Phrase]++
		}
	case record.Sanitize != nil:
		if record.Sanitize.Redactions > 0 {
			w.summary.Redacted++
		}
	}
}

// TopViolations returns the n most frequent violated phrases.
func (s Summary) TopViolations(n int) []string {
	phrases := make([]string, 0, len(s.Violations))
	for phrase := range s.Violations {
		phrases = append(phrases, phrase)
	}
	sort.Slice(phrases, func(i, j int) bool {
		if s.Violations[phrases[i]] != s.Violations[phrases[j]] {
			return s.Violations[phrases[i]] > s.Violations[phrases[j]]
		}
		return phrases[i] < phrases[j]
	})
	if n < len(phrases) {
		phrases = phrases[:n]
	}
	return phrases
}
