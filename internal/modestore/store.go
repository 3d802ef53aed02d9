package modestore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/povarna/generative-ai-agents/voice-agent/internal/models"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/personality"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "voice-agent:brand-mode:"

var (
	ErrEmptyFunnelID      = errors.New("funnel id is required")
	ErrUnknownPersonality = errors.New("unknown personality")
)

// Store keeps the brand mode chosen for each funnel in Redis. A zero ttl keeps
// modes forever.
type Store struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewStore(client redis.Cmdable, ttl time.Duration) *Store {
	return &Store{
		client: client,
		ttl:    ttl,
	}
}

// GetMode returns an empty key when nothing is stored for the funnel.
func (s *Store) GetMode(ctx context.Context, funnelID string) (models.PersonalityKey, error) {
	if funnelID == "" {
		return "", ErrEmptyFunnelID
	}

	value, err := s.client.Get(ctx, key(funnelID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read brand mode for %s: %w", funnelID, err)
	}

	return models.PersonalityKey(value), nil
}

func (s *Store) SetMode(ctx context.Context, funnelID string, mode models.PersonalityKey) error {
	if funnelID == "" {
		return ErrEmptyFunnelID
	}

	mode = models.PersonalityKey(strings.ToLower(strings.TrimSpace(string(mode))))
	if !personality.IsValid(mode) {
		return fmt.Errorf("%w: %q", ErrUnknownPersonality, mode)
	}

	if err := s.client.Set(ctx, key(funnelID), string(mode), s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store brand mode for %s: %w", funnelID, err)
	}
	return nil
}

func (s *Store) DeleteMode(ctx context.Context, funnelID string) error {
	if funnelID == "" {
		return ErrEmptyFunnelID
	}
	return s.client.Del(ctx, key(funnelID)).Err()
}

func key(funnelID string) string {
	return keyPrefix + funnelID
}
