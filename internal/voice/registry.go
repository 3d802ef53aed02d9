package voice

import (
	"errors"
	"fmt"
	"slices"

	"github.com/povarna/generative-ai-agents/voice-agent/internal/models"
)

var (
	ErrEmptyRegistry = errors.New("voice registry is empty")
	ErrMissingVoice  = errors.New("personality has no voice")
	ErrDuplicateKey  = errors.New("duplicate voice key")
)

type Voice struct {
	Key      models.PersonalityKey `json:"key"`
	Header   string                `json:"header"`
	Rules    []string              `json:"rules"`
	Examples []string              `json:"examples"`
}

// Registry is a read-only catalogue of voices. It has no registration API; the
// entries passed to NewRegistry are copied and never change afterwards.
type Registry struct {
	order  []models.PersonalityKey
	voices map[models.PersonalityKey]Voice
}

func NewRegistry(entries []Voice) (*Registry, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyRegistry
	}

	r := &Registry{
		order:  make([]models.PersonalityKey, 0, len(entries)),
		voices: make(map[models.PersonalityKey]Voice, len(entries)),
	}

	for _, entry := range entries {
		if _, exists := r.voices[entry.Key]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateKey, entry.Key)
		}
		r.order = append(r.order, entry.Key)
		r.voices[entry.Key] = clone(entry)
	}

	return r, nil
}

// Require fails when any of keys has no voice entry.
func (r *Registry) Require(keys []models.PersonalityKey) error {
	for _, key := range keys {
		if _, ok := r.voices[key]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingVoice, key)
		}
	}
	return nil
}

func (r *Registry) Get(key models.PersonalityKey) (Voice, bool) {
	v, ok := r.voices[key]
	if !ok {
		return Voice{}, false
	}
	return clone(v), true
}

// Rules returns the rule list for key, or nil for an unknown key.
func (r *Registry) Rules(key models.PersonalityKey) []string {
	v, ok := r.voices[key]
	if !ok {
		return nil
	}
	return slices.Clone(v.Rules)
}

func (r *Registry) Keys() []models.PersonalityKey {
	return slices.Clone(r.order)
}

func (r *Registry) Len() int {
	return len(r.order)
}

func clone(v Voice) Voice {
	v.Rules = slices.Clone(v.Rules)
	v.Examples = slices.Clone(v.Examples)
	return v
}
