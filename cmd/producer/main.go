package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/models"
	red "github.com/povarna/generative-ai-agents/voice-agent/internal/redis"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/stream"
	streamredis "github.com/povarna/generative-ai-agents/voice-agent/internal/stream/redis"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	data := flag.String("d", "", "Inline JSON GenerateRequest")
	streamName := flag.String("stream", stream.DefaultRequestStream, "Stream name")
	flag.Parse()

	if *data == "" {
		fmt.Fprintln(os.Stderr, "Usage: producer -d '<json>'")
		flag.PrintDefaults()
		os.Exit(1)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := run(*data, *streamName); err != nil {
		log.Error().Err(err).Msg("producer failed")
		os.Exit(1)
	}
}

func run(data, streamName string) error {
	_ = godotenv.Load()

	var req models.GenerateRequest
	if err := json.Unmarshal([]byte(data), &req); err != nil {
		return fmt.Errorf("invalid request JSON: %w", err)
	}

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	ctx := context.Background()
	client, err := red.ConnectRedis(ctx, red.Options{
		Addr:       addr,
		Password:   os.Getenv("REDIS_PASSWORD"),
		MaxRetries: 3,
	})
	if err != nil {
		return err
	}
	defer client.Close()

	id, err := streamredis.NewProducer(client, streamName).Publish(ctx, req)
	if err != nil {
		return err
	}

	log.Info().Str("stream", streamName).Str("id", id).Str("request_id", req.RequestID).Msg("Published successfully!")
	return nil
}
