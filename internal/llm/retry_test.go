package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errThrottled = errors.New("throttled")

func fastPolicy(attempts int) RetryPolicy {
	return RetryPolicy{
		MaxAttempts:  attempts,
		InitialDelay: time.Millisecond,
		MaxDelay:     2 * time.Millisecond,
		Retryable:    func(err error) bool { return errors.Is(err, errThrottled) },
	}
}

func TestRetry_SucceedsAfterRetryableErrors(t *testing.T) {
	calls := 0
	response, err := Retry(context.Background(), fastPolicy(3), func(ctx context.Context) (*LLMResponse, error) {
		calls++
		if calls < 3 {
			return nil, errThrottled
		}
		return &LLMResponse{Content: "ok"}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", response.Content)
	assert.Equal(t, 3, calls)
}

func TestRetry_StopsOnNonRetryable(t *testing.T) {
	calls := 0
	cause := errors.New("validation failed")
	_, err := Retry(context.Background(), fastPolicy(5), func(ctx context.Context) (*LLMResponse, error) {
		calls++
		return nil, cause
	})

	assert.ErrorIs(t, err, ErrNonRetryable)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 1, calls)
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	calls := 0
	_, err := Retry(context.Background(), fastPolicy(2), func(ctx context.Context) (*LLMResponse, error) {
		calls++
		return nil, errThrottled
	})

	assert.ErrorIs(t, err, errThrottled)
	assert.Contains(t, err.Error(), "max retries 2 exceeded")
	assert.Equal(t, 2, calls)
}

func TestRetry_ContextErrorsAreReturnedAsIs(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Retry(ctx, fastPolicy(3), func(ctx context.Context) (*LLMResponse, error) {
		return nil, ctx.Err()
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrNonRetryable)
}

func TestBackoff(t *testing.T) {
	initial := 100 * time.Millisecond
	maxDelay := time.Second

	for attempt := 0; attempt < 6; attempt++ {
		backoff := Backoff(attempt, initial, maxDelay)
		if backoff <= 0 || backoff > time.Duration(float64(maxDelay)*1.2) {
			t.Errorf("attempt %d: backoff %s out of range", attempt, backoff)
		}
	}

	// attempt 3 is 800ms before jitter
	if b := Backoff(3, initial, maxDelay); b < 640*time.Millisecond {
		t.Errorf("backoff did not grow: %s", b)
	}
}
