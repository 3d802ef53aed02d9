package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/setup"
	applog "github.com/povarna/generative-ai-agents/voice-agent/internal/setup/logger"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/stream"
	streamredis "github.com/povarna/generative-ai-agents/voice-agent/internal/stream/redis"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load env
	envErr := godotenv.Load()

	cfg := setup.LoadConfig()

	// The worker runs unattended, so it logs JSON.
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := applog.New("voice-worker", cfg.LogLevel)
	log.Logger = logger

	if envErr != nil {
		logger.Warn().Msg("No .env file found")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if cfg.RedisAddr == "" {
		logger.Fatal().Msg("REDIS_ADDR is required for the worker")
	}

	deps, err := setup.Wire(ctx, cfg, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to wire dependencies")
	}
	defer deps.Close()

	streamCfg := stream.NewStreamConfig(streamredis.NewRedisStreamConfig(
		cfg.RedisAddr,
		cfg.RedisPassword,
		stream.DefaultRequestStream,
		stream.DefaultResultStream,
		stream.DefaultGroup,
		consumerName(),
	))
	streamCfg.Provider = os.Getenv("STREAM_PROVIDER")

	consumer, err := stream.NewStreamConsumer(ctx, streamCfg, deps.Service, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create stream consumer")
	}
	defer consumer.Stop()

	if err := consumer.Setup(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Failed to setup consumer")
	}

	go func() {
		if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error().Err(err).Msg("Consumer stopped with error")
			cancel()
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("Voice Agent worker stopped")
}

func consumerName() string {
	if name := os.Getenv("HOSTNAME"); name != "" {
		return name
	}
	return "voice-worker"
}
