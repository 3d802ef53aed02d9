package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

type fakeProcessor struct {
	mu       sync.Mutex
	requests []models.GenerateRequest
	err      error
}

func (f *fakeProcessor) Generate(ctx context.Context, req models.GenerateRequest) (*models.GenerateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &models.GenerateResult{
		RequestID:   req.RequestID,
		Personality: models.PersonalityCalm,
		Content:     "steady copy",
		Validation:  models.ValidationResult{Personality: models.PersonalityCalm, Score: 1, Approved: true},
	}, nil
}

func setupConsumer(t *testing.T, processor Processor) (*Consumer, *redis.Client) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	cfg := NewRedisStreamConfig(server.Addr(), "", "copy-requests", "copy-results", "copy-group", "worker-1")
	cfg.Block = 50 * time.Millisecond

	consumer := NewConsumer(client, cfg, processor, newTestLogger())
	require.NoError(t, consumer.Setup(context.Background()))
	return consumer, client
}

func readOutcomes(t *testing.T, client *redis.Client) []models.GenerationOutcome {
	t.Helper()
	entries, err := client.XRange(context.Background(), "copy-results", "-", "+").Result()
	require.NoError(t, err)

	outcomes := make([]models.GenerationOutcome, 0, len(entries))
	for _, entry := range entries {
		var outcome models.GenerationOutcome
		require.NoError(t, json.Unmarshal([]byte(entry.Values["payload"].(string)), &outcome))
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

func pending(t *testing.T, client *redis.Client) int64 {
	t.Helper()
	summary, err := client.XPending(context.Background(), "copy-requests", "copy-group").Result()
	require.NoError(t, err)
	return summary.Count
}

func TestConsumer_SetupIsIdempotent(t *testing.T) {
	consumer, _ := setupConsumer(t, &fakeProcessor{})
	assert.NoError(t, consumer.Setup(context.Background()))
}

func TestConsumer_ProcessesAndPublishes(t *testing.T) {
	processor := &fakeProcessor{}
	consumer, client := setupConsumer(t, processor)

	producer := NewProducer(client, "copy-requests")
	_, err := producer.Publish(context.Background(), models.GenerateRequest{
		RequestID:    "req-1",
		Task:         "Write hero headline",
		OutputSchema: "{}",
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- consumer.Start(ctx) }()

	require.Eventually(t, func() bool {
		entries, err := client.XLen(context.Background(), "copy-results").Result()
		return err == nil && entries == 1
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	outcomes := readOutcomes(t, client)
	require.Len(t, outcomes, 1)
	assert.Equal(t, "req-1", outcomes[0].RequestID)
	require.NotNil(t, outcomes[0].Result)
	assert.True(t, outcomes[0].Result.Validation.Approved)
	assert.Empty(t, outcomes[0].Error)
	assert.Equal(t, int64(0), pending(t, client))
}

func TestConsumer_GenerationFailurePublishesError(t *testing.T) {
	consumer, client := setupConsumer(t, &fakeProcessor{err: errors.New("generation failed: throttled")})

	consumer.process(context.Background(), redis.XMessage{
		ID:     "1-1",
		Values: map[string]any{"payload": `{"task":"t","output_schema":"{}"}`},
	})

	outcomes := readOutcomes(t, client)
	require.Len(t, outcomes, 1)
	assert.Equal(t, "1-1", outcomes[0].RequestID)
	assert.Nil(t, outcomes[0].Result)
	assert.Contains(t, outcomes[0].Error, "throttled")
}

func TestConsumer_BadPayloadIsSkipped(t *testing.T) {
	processor := &fakeProcessor{}
	consumer, client := setupConsumer(t, processor)

	ctx := context.Background()
	require.NoError(t, client.XAdd(ctx, &redis.XAddArgs{
		Stream: "copy-requests",
		Values: map[string]any{"payload": "not json"},
	}).Err())
	require.NoError(t, client.XAdd(ctx, &redis.XAddArgs{
		Stream: "copy-requests",
		Values: map[string]any{"other": "x"},
	}).Err())

	msgs, err := client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    "copy-group",
		Consumer: "worker-1",
		Streams:  []string{"copy-requests", ">"},
		Count:    10,
	}).Result()
	require.NoError(t, err)
	require.Len(t, msgs[0].Messages, 2)

	for _, msg := range msgs[0].Messages {
		consumer.process(ctx, msg)
	}

	assert.Empty(t, processor.requests)
	assert.Empty(t, readOutcomes(t, client))
	assert.Equal(t, int64(0), pending(t, client))
}

func TestConsumer_ReclaimsIdlePendingMessages(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	cfg := NewRedisStreamConfig(server.Addr(), "", "copy-requests", "copy-results", "copy-group", "worker-1")
	cfg.ClaimIdle = time.Minute

	processor := &fakeProcessor{}
	consumer := NewConsumer(client, cfg, processor, newTestLogger())
	ctx := context.Background()
	require.NoError(t, consumer.Setup(ctx))

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	server.SetTime(now)

	producer := NewProducer(client, "copy-requests")
	for _, id := range []string{"req-stale", "req-fresh"} {
		_, err := producer.Publish(ctx, models.GenerateRequest{RequestID: id, Task: "Write hero headline", OutputSchema: "{}"})
		require.NoError(t, err)
	}

	// A consumer that crashed after reading the first message.
	read := func(consumerName string) {
		_, err := client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    "copy-group",
			Consumer: consumerName,
			Streams:  []string{"copy-requests", ">"},
			Count:    1,
		}).Result()
		require.NoError(t, err)
	}
	read("worker-0")

	server.SetTime(now.Add(90 * time.Second))
	read("worker-2")
	require.Equal(t, int64(2), pending(t, client))

	require.NoError(t, consumer.reclaim(ctx))

	outcomes := readOutcomes(t, client)
	require.Len(t, outcomes, 1)
	assert.Equal(t, "req-stale", outcomes[0].RequestID)
	assert.Equal(t, int64(1), pending(t, client))

	// Nothing idle long enough: a second sweep is a no-op.
	require.NoError(t, consumer.reclaim(ctx))
	assert.Len(t, readOutcomes(t, client), 1)
	assert.Len(t, processor.requests, 1)
}
