package stream

import (
	streamredis "github.com/povarna/generative-ai-agents/voice-agent/internal/stream/redis"
)

const (
	DefaultRequestStream = "copy-requests"
	DefaultResultStream  = "copy-results"
	DefaultGroup         = "copy-group"
)

type StreamConfig struct {
	Provider    string // redis, kafka, sqs, etc
	RedisConfig *streamredis.RedisStreamConfig
}

func NewStreamConfig(redisConfig *streamredis.RedisStreamConfig) *StreamConfig {
	return &StreamConfig{
		Provider:    "redis",
		RedisConfig: redisConfig,
	}
}
