package gpt

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/llm"
)

func (c *Client) InvokeModel(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	return c.invoke(ctx, request)
}

func (c *Client) InvokeModelWithRetry(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	return c.invoke(ctx, request, option.WithMaxRetries(c.MaxRetries))
}

func (c *Client) invoke(ctx context.Context, request llm.LLMRequest, opts ...option.RequestOption) (*llm.LLMResponse, error) {
	params := newParams(c.ModelID, request)

	output, err := c.Client.Chat.Completions.New(ctx, params, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to invoke gpt model: %w", err)
	}

	if len(output.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	choice := output.Choices[0]
	return &llm.LLMResponse{
		Content:    choice.Message.Content,
		StopReason: fmt.Sprint(choice.FinishReason),
		Model:      output.Model,
		Usage: llm.Usage{
			InputTokens:  int(output.Usage.PromptTokens),
			OutputTokens: int(output.Usage.CompletionTokens),
		},
	}, nil
}

func newParams(model string, request llm.LLMRequest) openai.ChatCompletionNewParams {
	return openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(request.Prompt),
		},
		MaxCompletionTokens: openai.Int(int64(request.MaxTokens)),
		Temperature:         openai.Float(request.Temperature),
		Model:               openai.ChatModel(model),
	}
}
