package llm

import (
	"context"
)

// LLMClient is the text-generation boundary. Implementations own transport
// concerns only; callers decide whether to use the retrying variant.
type LLMClient interface {
	InvokeModel(ctx context.Context, request LLMRequest) (*LLMResponse, error)
	InvokeModelWithRetry(ctx context.Context, request LLMRequest) (*LLMResponse, error)
}

// StreamCallback receives generated text as it arrives.
type StreamCallback func(chunk string) error

// StreamingClient is implemented by providers that can stream tokens.
type StreamingClient interface {
	InvokeModelStream(ctx context.Context, request LLMRequest, callback StreamCallback) (*LLMResponse, error)
}
