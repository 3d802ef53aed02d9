package gpt

import (
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type Client struct {
	Client     openai.Client
	ModelID    string
	MaxRetries int
}

// NewClient disables the SDK's built-in retries for InvokeModel; the retrying
// variant opts back in per call.
func NewClient(apiKey string, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("OpenAI model ID is required")
	}

	openaiClient := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	)

	return &Client{
		Client:     openaiClient,
		ModelID:    model,
		MaxRetries: 3,
	}, nil
}
