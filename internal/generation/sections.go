package generation

import (
	"context"
	"errors"
	"fmt"

	"github.com/povarna/generative-ai-agents/voice-agent/internal/models"
	"golang.org/x/sync/errgroup"
)

var ErrNoSections = errors.New("no sections requested")

// GenerateSections generates every section concurrently with the shared
// request context. Results keep the input order. A failed section is reported
// in its result and does not cancel the others.
func (s *Service) GenerateSections(ctx context.Context, req models.SectionsRequest) ([]models.SectionResult, error) {
	if len(req.Sections) == 0 {
		return nil, ErrNoSections
	}

	results := make([]models.SectionResult, len(req.Sections))

	g, gctx := errgroup.WithContext(ctx)
	if limit := s.cfg.Generation.SectionsConcurrency; limit > 0 {
		g.SetLimit(limit)
	}

	for i, section := range req.Sections {
		g.Go(func() error {
			sectionReq := req.GenerateRequest
			sectionReq.Task = section.Task
			sectionReq.OutputSchema = section.OutputSchema
			if req.RequestID != "" {
				sectionReq.RequestID = fmt.Sprintf("%s-%d", req.RequestID, i)
			}

			results[i] = models.SectionResult{Name: section.Name}

			result, err := s.Generate(gctx, sectionReq)
			if err != nil {
				s.logger.Warn().Err(err).Str("section", section.Name).Msg("Section generation failed")
				results[i].Error = err.Error()
				return nil
			}
			results[i].Result = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}

	return results, nil
}
