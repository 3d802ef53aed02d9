package llm

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// ErrNonRetryable wraps the first error a RetryPolicy refuses to retry.
var ErrNonRetryable = errors.New("non-retryable error")

type RetryPolicy struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	// Retryable classifies provider errors. Context errors are never retried.
	Retryable func(error) bool
}

// Retry calls fn until it succeeds, the policy refuses the error, attempts run
// out or ctx is done.
func Retry(ctx context.Context, policy RetryPolicy, fn func(context.Context) (*LLMResponse, error)) (*LLMResponse, error) {
	attempts := max(policy.MaxAttempts, 1)

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		response, err := fn(ctx)
		if err == nil {
			return response, nil
		}
		lastErr = err

		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		if policy.Retryable == nil || !policy.Retryable(err) {
			return nil, fmt.Errorf("%w: %w", ErrNonRetryable, err)
		}
		if attempt == attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(Backoff(attempt, policy.InitialDelay, policy.MaxDelay)):
		}
	}

	return nil, fmt.Errorf("max retries %d exceeded: %w", attempts, lastErr)
}

// Backoff doubles initialDelay per attempt, caps at maxDelay and adds +-20%
// jitter.
func Backoff(attempt int, initialDelay, maxDelay time.Duration) time.Duration {
	backoff := float64(initialDelay) * math.Pow(2, float64(attempt))
	if backoff > float64(maxDelay) {
		backoff = float64(maxDelay)
	}

	jitter := backoff * 0.2 * (2*rand.Float64() - 1)
	return time.Duration(backoff + jitter)
}
