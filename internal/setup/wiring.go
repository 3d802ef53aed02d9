package setup

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/povarna/generative-ai-agents/voice-agent/internal/behavior"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/config"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/database"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/generation"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/guardrails"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/llm/bedrock"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/llm/gpt"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/metrics"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/modestore"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/personality"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/prompt"
	red "github.com/povarna/generative-ai-agents/voice-agent/internal/redis"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/validator"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/voice"
	"github.com/rs/zerolog"
)

type Config struct {
	AWSRegion       string
	ClaudeModelID   string
	OpenAIKey       string
	OpenAIModelID   string
	DefaultProvider string

	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	RedisMaxRetries int
	BrandModeTTL    time.Duration

	Database database.Config

	APIPort  string
	LogLevel string
}

type Dependencies struct {
	Service  *generation.Service
	Registry *voice.Registry
	// Modes is nil when REDIS_ADDR is not set.
	Modes   *modestore.Store
	Metrics *metrics.Metrics
	Logger  *zerolog.Logger

	closers []func()
}

func LoadConfig() *Config {
	return &Config{
		AWSRegion:       getEnv("AWS_REGION", "us-east-1"),
		ClaudeModelID:   getEnv("CLAUDE_MODEL_ID", ""),
		OpenAIKey:       getEnv("OPEN_AI_KEY", ""),
		OpenAIModelID:   getEnv("OPEN_AI_MODEL_ID", ""),
		DefaultProvider: getEnv("DEFAULT_LLM_PROVIDER", "bedrock"),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		RedisMaxRetries: getEnvInt("REDIS_MAX_RETRIES", 5),
		BrandModeTTL:    getEnvDuration("BRAND_MODE_TTL", 0),
		Database: database.Config{
			Host:     getEnv("DATABASE_HOST", ""),
			Port:     getEnv("DATABASE_PORT", "5432"),
			User:     getEnv("DATABASE_USER", "postgres"),
			Password: getEnv("DATABASE_PASSWORD", ""),
			Database: getEnv("DATABASE_NAME", "voice_agent"),
			SSLMode:  getEnv("DATABASE_SSLMODE", "disable"),
		},
		APIPort:  getEnv("VOICE_AGENT_API_PORT", "18082"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// NewRegistry builds the voice registry and checks it covers every personality.
func NewRegistry() (*voice.Registry, error) {
	registry, err := voice.NewRegistry(voice.Canonical())
	if err != nil {
		return nil, fmt.Errorf("failed to build voice registry: %w", err)
	}
	if err := registry.Require(personality.Keys()); err != nil {
		return nil, err
	}
	return registry, nil
}

func NewComponents(registry *voice.Registry, logger *zerolog.Logger) generation.Components {
	return generation.Components{
		Resolver:   personality.NewResolver(logger),
		Behavior:   behavior.NewResolver(),
		Guardrails: guardrails.NewGuardrails(guardrails.NewDefaultSanitizer(), logger),
		Builder:    prompt.NewBuilder(registry),
		Validator:  validator.NewDefaultValidator(),
	}
}

// WireLocal builds a service without a model client or stores. Only the
// deterministic operations (resolve, sanitize, envelope, validate) are usable.
func WireLocal(logger *zerolog.Logger) (*Dependencies, error) {
	registry, err := NewRegistry()
	if err != nil {
		return nil, err
	}

	m := metrics.New()
	service := generation.NewService(NewComponents(registry, logger), nil, config.Default(), logger,
		generation.WithMetrics(m),
	)

	return &Dependencies{
		Service:  service,
		Registry: registry,
		Metrics:  m,
		Logger:   logger,
	}, nil
}

func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	llmClient, err := createLLMClient(ctx, cfg.DefaultProvider, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.DefaultProvider, err)
	}

	registry, err := NewRegistry()
	if err != nil {
		return nil, err
	}

	genCfg, err := loadGenerationConfig(logger)
	if err != nil {
		return nil, err
	}

	deps := &Dependencies{
		Registry: registry,
		Metrics:  metrics.New(),
		Logger:   logger,
	}
	opts := []generation.Option{generation.WithMetrics(deps.Metrics)}

	if cfg.RedisAddr != "" {
		client, err := red.ConnectRedis(ctx, red.Options{
			Addr:       cfg.RedisAddr,
			Password:   cfg.RedisPassword,
			DB:         cfg.RedisDB,
			MaxRetries: cfg.RedisMaxRetries,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		deps.closers = append(deps.closers, func() { _ = client.Close() })

		deps.Modes = modestore.NewStore(client, cfg.BrandModeTTL)
		opts = append(opts, generation.WithModeStore(deps.Modes))
	} else {
		logger.Warn().Msg("REDIS_ADDR not set, brand modes are disabled")
	}

	if cfg.Database.Host != "" {
		db, err := database.New(ctx, cfg.Database)
		if err != nil {
			deps.Close()
			return nil, err
		}
		deps.closers = append(deps.closers, db.Close)

		if err := db.Ping(ctx); err != nil {
			deps.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
		if err := db.Migrate(ctx); err != nil {
			deps.Close()
			return nil, err
		}
		opts = append(opts, generation.WithValidationStore(database.NewValidationRepository(db)))
	} else {
		logger.Warn().Msg("DATABASE_HOST not set, validation results are not persisted")
	}

	deps.Service = generation.NewService(NewComponents(registry, logger), llmClient, genCfg, logger, opts...)
	return deps, nil
}

// Close releases the Redis and Postgres connections opened by Wire.
func (d *Dependencies) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
	d.closers = nil
}

func loadGenerationConfig(logger *zerolog.Logger) (*config.GenerationConfig, error) {
	cfg, err := config.LoadGenerationConfig()
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn().Msg("Generation config not found, using defaults")
		return config.Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load generation config: %w", err)
	}
	return cfg, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		value = defaultValue
	}

	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		value = defaultValue
	}

	return value
}

func createLLMClient(ctx context.Context, provider string, cfg *Config) (llm.LLMClient, error) {
	switch provider {
	case "bedrock":
		return bedrock.NewClient(ctx, cfg.AWSRegion, cfg.ClaudeModelID)
	case "openai":
		return gpt.NewClient(cfg.OpenAIKey, cfg.OpenAIModelID)
	default:
		return bedrock.NewClient(ctx, cfg.AWSRegion, cfg.ClaudeModelID)
	}
}
