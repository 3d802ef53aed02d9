package redis

import "time"

type RedisStreamConfig struct {
	RedisAddr     string
	RedisPassword string
	Stream        string
	ResultStream  string
	Group         string
	ConsumerName  string
	Block         time.Duration
	// ClaimIdle is how long a delivered message may stay unacknowledged
	// before any consumer in the group takes it over.
	ClaimIdle time.Duration
}

func NewRedisStreamConfig(redisAddr string, redisPassword string, stream string, resultStream string, group string, consumerName string) *RedisStreamConfig {
	return &RedisStreamConfig{
		RedisAddr:     redisAddr,
		RedisPassword: redisPassword,
		Stream:        stream,
		ResultStream:  resultStream,
		Group:         group,
		ConsumerName:  consumerName,
		Block:         2 * time.Second,
		ClaimIdle:     time.Minute,
	}
}
