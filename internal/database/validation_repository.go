package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/models"
)

type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

const insertValidation = `
	INSERT INTO copy_validations
	  (id, request_id, personality, content, approved, score, violations, warnings, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

// ValidationRepository stores one row per validation in copy_validations.
type ValidationRepository struct {
	db execer
}

func NewValidationRepository(db *DB) *ValidationRepository {
	return &ValidationRepository{db: db.Pool}
}

func (r *ValidationRepository) SaveValidation(ctx context.Context, record models.ValidationRecord) error {
	violations, err := marshalViolations(record.Result.Violations)
	if err != nil {
		return err
	}
	warnings, err := marshalViolations(record.Result.Warnings)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, insertValidation,
		record.ID,
		record.RequestID,
		string(record.Result.Personality),
		record.Content,
		record.Result.Approved,
		record.Result.Score,
		violations,
		warnings,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save validation for request %s: %w", record.RequestID, err)
	}
	return nil
}

func marshalViolations(violations []models.Violation) ([]byte, error) {
	if violations == nil {
		violations = []models.Violation{}
	}
	data, err := json.Marshal(violations)
	if err != nil {
		return nil, fmt.Errorf("failed to encode violations: %w", err)
	}
	return data, nil
}
