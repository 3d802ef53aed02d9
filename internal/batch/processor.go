package batch

import (
	"context"
	"fmt"
	"sync"

	"github.com/povarna/generative-ai-agents/voice-agent/internal/guardrails"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/models"
	"github.com/rs/zerolog"
)

type Mode string

const (
	ModeValidate Mode = "validate"
	ModeSanitize Mode = "sanitize"
)

// Engine is the part of the copy pipeline a batch run needs.
type Engine interface {
	Validate(ctx context.Context, requestID string, content string, personalityID string) models.ValidationResult
	SanitizeInput(raw string) (guardrails.SanitizedText, guardrails.InputReport)
}

type SanitizeOutput struct {
	Sanitized     string `json:"sanitized"`
	Redactions    int    `json:"redactions"`
	MarkupRemoved bool   `json:"markup_removed"`
}

type OutputRecord struct {
	ID         string                   `json:"id"`
	LineNumber int                      `json:"line"`
	Validation *models.ValidationResult `json:"validation,omitempty"`
	Sanitize   *SanitizeOutput          `json:"sanitize,omitempty"`
	Error      string                   `json:"error,omitempty"`
}

type Processor struct {
	engine  Engine
	mode    Mode
	workers int
	logger  *zerolog.Logger
}

func NewProcessor(engine Engine, mode Mode, workers int, logger *zerolog.Logger) (*Processor, error) {
	if mode != ModeValidate && mode != ModeSanitize {
		return nil, fmt.Errorf("unsupported mode: %s", mode)
	}
	if workers <= 0 {
		workers = 1
	}

	return &Processor{
		engine:  engine,
		mode:    mode,
		workers: workers,
		logger:  logger,
	}, nil
}

// Process fans records out to the worker pool. Output order is not the input
// order; every record carries its line number.
func (p *Processor) Process(ctx context.Context, records []InputRecord) <-chan OutputRecord {
	jobs := make(chan InputRecord)
	results := make(chan OutputRecord)

	var wg sync.WaitGroup
	for range p.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for record := range jobs {
				select {
				case results <- p.processOne(ctx, record):
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, record := range records {
			select {
			case jobs <- record:
			case <-ctx.Done():
				p.logger.Warn().Int("line", record.LineNumber).Msg("Batch cancelled before all records were processed")
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

func (p *Processor) processOne(ctx context.Context, record InputRecord) OutputRecord {
	out := OutputRecord{ID: record.Request.ID, LineNumber: record.LineNumber}
	if record.Error != nil {
		out.Error = record.Error.Error()
		return out
	}

	switch p.mode {
	case ModeValidate:
		result := p.engine.Validate(ctx, record.Request.ID, record.Request.Content, record.Request.Personality)
		out.Validation = &result
	case ModeSanitize:
		sanitized, report := p.engine.SanitizeInput(record.Request.Content)
		out.Sanitize = &SanitizeOutput{
			Sanitized:     sanitized.String(),
			Redactions:    report.Redactions,
			MarkupRemoved: report.MarkupRemoved,
		}
	}
	return out
}
