package bedrock

import (
	"errors"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/llm"
)

func (c *Client) retryPolicy() llm.RetryPolicy {
	return llm.RetryPolicy{
		MaxAttempts:  c.MaxRetries,
		InitialDelay: c.InitialDelay,
		MaxDelay:     c.MaxDelay,
		Retryable:    isRetryableError,
	}
}

// transientMessages covers errors that reach us untyped: wrapped transport
// failures and HTTP status text.
var transientMessages = []string{
	"ThrottlingException",
	"TooManyRequestsException",
	"Rate exceeded",
	"InternalServerException",
	"ServiceUnavailableException",
	"ModelNotReadyException",
	"StatusCode: 500",
	"StatusCode: 503",
	"connection reset",
	"EOF",
	"timeout",
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var (
		throttling  *types.ThrottlingException
		internal    *types.InternalServerException
		unavailable *types.ServiceUnavailableException
		notReady    *types.ModelNotReadyException
		modelTime   *types.ModelTimeoutException
	)
	switch {
	case errors.As(err, &throttling),
		errors.As(err, &internal),
		errors.As(err, &unavailable),
		errors.As(err, &notReady),
		errors.As(err, &modelTime):
		return true
	}

	msg := err.Error()
	for _, transient := range transientMessages {
		if strings.Contains(msg, transient) {
			return true
		}
	}
	return false
}
