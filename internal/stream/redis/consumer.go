package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/povarna/generative-ai-agents/voice-agent/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const payloadField = "payload"

// readErrorPause keeps a broken connection from turning Start into a busy loop.
const readErrorPause = time.Second

const claimBatch = 10

// Processor runs the copy pipeline for one request.
type Processor interface {
	Generate(ctx context.Context, req models.GenerateRequest) (*models.GenerateResult, error)
}

type Consumer struct {
	client       *redis.Client
	stream       string
	resultStream string
	groupID      string
	consumerName string
	block        time.Duration
	claimIdle    time.Duration
	processor    Processor
	logger       *zerolog.Logger
}

func NewConsumer(client *redis.Client, cfg *RedisStreamConfig, processor Processor, logger *zerolog.Logger) *Consumer {
	block := cfg.Block
	if block <= 0 {
		block = 2 * time.Second
	}
	claimIdle := cfg.ClaimIdle
	if claimIdle <= 0 {
		claimIdle = time.Minute
	}

	return &Consumer{
		client:       client,
		stream:       cfg.Stream,
		resultStream: cfg.ResultStream,
		groupID:      cfg.Group,
		consumerName: cfg.ConsumerName,
		block:        block,
		claimIdle:    claimIdle,
		processor:    processor,
		logger:       logger,
	}
}

func (c *Consumer) Setup(ctx context.Context) error {
	err := c.client.XGroupCreateMkStream(ctx, c.stream, c.groupID, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return err
	}
	return nil
}

func (c *Consumer) Start(ctx context.Context) error {
	c.logger.Info().
		Str("stream", c.stream).
		Str("group", c.groupID).
		Str("consumer", c.consumerName).
		Msg("Consumer started")

	var lastSweep time.Time
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if time.Since(lastSweep) >= c.claimIdle {
			if err := c.reclaim(ctx); err != nil && ctx.Err() == nil {
				c.logger.Error().Err(err).Msg("Failed to reclaim pending messages")
			}
			lastSweep = time.Now()
		}

		msgs, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    c.groupID,
			Consumer: c.consumerName,
			Streams:  []string{c.stream, ">"},
			Count:    1,
			Block:    c.block,
		}).Result()

		if err != nil {
			if errors.Is(err, redis.Nil) {
				// timeout, no message -> loop again
				continue
			}

			if ctx.Err() != nil {
				return ctx.Err() // context cancelled during block
			}

			c.logger.Error().Err(err).Msg("Failed to read from stream")
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(readErrorPause):
			}
			continue
		}

		for _, stream := range msgs {
			for _, msg := range stream.Messages {
				c.process(ctx, msg)
			}
		}
	}
}

// reclaim takes over messages another consumer (or an earlier run of this one)
// read but never acknowledged, and processes them again.
func (c *Consumer) reclaim(ctx context.Context) error {
	start := "0-0"
	for {
		msgs, next, err := c.client.XAutoClaim(ctx, &redis.XAutoClaimArgs{
			Stream:   c.stream,
			Group:    c.groupID,
			Consumer: c.consumerName,
			MinIdle:  c.claimIdle,
			Start:    start,
			Count:    claimBatch,
		}).Result()
		if err != nil {
			return err
		}

		for _, msg := range msgs {
			c.logger.Warn().Str("id", msg.ID).Msg("Reclaimed pending message")
			c.process(ctx, msg)
		}

		if next == "0-0" || next == "" || ctx.Err() != nil {
			return ctx.Err()
		}
		start = next
	}
}

func (c *Consumer) Stop() error {
	return c.client.Close()
}

func (c *Consumer) process(ctx context.Context, msg redis.XMessage) {
	c.logger.Info().Str("id", msg.ID).Msg("Message received")

	payload, ok := msg.Values[payloadField].(string)
	if !ok {
		c.logger.Error().Str("id", msg.ID).Msg("Missing payload field")
		c.ack(ctx, msg.ID)
		return
	}

	var req models.GenerateRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Failed to decode message")
		c.ack(ctx, msg.ID) // bad message, ACK to skip it
		return
	}
	if req.RequestID == "" {
		req.RequestID = msg.ID
	}

	outcome := models.GenerationOutcome{RequestID: req.RequestID}

	result, err := c.processor.Generate(ctx, req)
	if err != nil {
		c.logger.Error().Err(err).Str("id", msg.ID).Str("requestID", req.RequestID).Msg("Generation failed")
		outcome.Error = err.Error()
	} else {
		outcome.Result = result
		c.logger.Info().
			Str("id", msg.ID).
			Str("requestID", req.RequestID).
			Str("personality", string(result.Personality)).
			Bool("approved", result.Validation.Approved).
			Float64("score", result.Validation.Score).
			Msg("Generation complete")
	}

	if err := c.publish(ctx, outcome); err != nil {
		// left pending; reclaim picks it up once it has been idle for claimIdle
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Failed to publish result")
		return
	}

	c.ack(ctx, msg.ID)
}

func (c *Consumer) publish(ctx context.Context, outcome models.GenerationOutcome) error {
	if c.resultStream == "" {
		return nil
	}

	data, err := json.Marshal(outcome)
	if err != nil {
		return err
	}

	return c.client.XAdd(ctx, &redis.XAddArgs{
		Stream: c.resultStream,
		Values: map[string]any{
			"request_id": outcome.RequestID,
			payloadField: string(data),
		},
	}).Err()
}

func (c *Consumer) ack(ctx context.Context, msgID string) {
	if err := c.client.XAck(ctx, c.stream, c.groupID, msgID).Err(); err != nil {
		c.logger.Error().Err(err).Str("id", msgID).Msg("Failed to ACK message")
	}
}
