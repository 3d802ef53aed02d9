package stream

import "context"

// StreamConsumer turns queued generation requests into published outcomes.
type StreamConsumer interface {
	// Setup creates the consumer group when it does not exist yet.
	Setup(ctx context.Context) error
	// Start blocks until ctx is cancelled.
	Start(ctx context.Context) error
	Stop() error
}
