package setup

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/povarna/generative-ai-agents/voice-agent/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"DEFAULT_LLM_PROVIDER", "REDIS_ADDR", "BRAND_MODE_TTL", "DATABASE_HOST", "VOICE_AGENT_API_PORT", "REDIS_MAX_RETRIES"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, "bedrock", cfg.DefaultProvider)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 5, cfg.RedisMaxRetries)
	assert.Zero(t, cfg.BrandModeTTL)
	assert.Empty(t, cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "18082", cfg.APIPort)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("DEFAULT_LLM_PROVIDER", "openai")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("BRAND_MODE_TTL", "24h")
	t.Setenv("DATABASE_HOST", "db")
	t.Setenv("VOICE_AGENT_API_PORT", "9000")

	cfg := LoadConfig()

	assert.Equal(t, "openai", cfg.DefaultProvider)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 24*time.Hour, cfg.BrandModeTTL)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, "9000", cfg.APIPort)
}

func TestGetEnvInt_InvalidValue(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")
	assert.Equal(t, 7, getEnvInt("REDIS_DB", 7))
}

func TestNewRegistry_CoversEveryPersonality(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	for _, key := range []models.PersonalityKey{models.PersonalityCalm, models.PersonalityRocket} {
		_, ok := registry.Get(key)
		assert.True(t, ok, "missing voice for %s", key)
	}
}

func TestWireLocal_ValidatesWithoutModel(t *testing.T) {
	deps, err := WireLocal(newTestLogger())
	require.NoError(t, err)
	defer deps.Close()

	assert.Nil(t, deps.Modes)
	assert.False(t, deps.Service.SupportsStreaming())

	result := deps.Service.Validate(context.Background(), "req-1", "A guaranteed win", "calm")
	assert.False(t, result.Approved)
	assert.Equal(t, 0.5, result.Score)
}

func TestLoadGenerationConfig_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("GENERATION_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := loadGenerationConfig(newTestLogger())
	require.NoError(t, err)
	assert.Equal(t, 512, cfg.Generation.DefaultModel.MaxTokens)
}

func TestLoadGenerationConfig_InvalidFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "generation.yaml")
	require.NoError(t, os.WriteFile(path, []byte("generation: [broken"), 0o600))
	t.Setenv("GENERATION_CONFIG_PATH", path)

	_, err := loadGenerationConfig(newTestLogger())
	assert.Error(t, err)
}
