package bedrock

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/povarna/generative-ai-agents/voice-agent/internal/llm"
)

type streamChunk struct {
	Type  string `json:"type"`
	Delta struct {
		Text       string `json:"text"`
		StopReason string `json:"stop_reason"`
	} `json:"delta"`
	ContentBlock struct {
		Text string `json:"text"`
	} `json:"content_block"`
	Message struct {
		Usage claudeUsage `json:"usage"`
	} `json:"message"`
	Usage claudeUsage `json:"usage"`
}

// chunkEvent is what one stream event contributes to the response.
type chunkEvent struct {
	Text         string
	StopReason   string
	InputTokens  int
	OutputTokens int
}

func (c *Client) InvokeModelStream(ctx context.Context, request llm.LLMRequest, callback llm.StreamCallback) (*llm.LLMResponse, error) {
	body, err := newPayload(request)
	if err != nil {
		return nil, err
	}

	output, err := c.Client.InvokeModelWithResponseStream(ctx, &bedrockruntime.InvokeModelWithResponseStreamInput{
		ModelId:     &c.ModelID,
		Body:        body,
		Accept:      aws.String("application/json"),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to invoke model stream: %w", err)
	}

	stream := output.GetStream()
	defer stream.Close()

	var content strings.Builder
	var stopReason string
	var usage llm.Usage

	for event := range stream.Events() {
		chunk, ok := event.(*types.ResponseStreamMemberChunk)
		if !ok {
			continue
		}

		parsed := parseChunk(chunk.Value.Bytes)
		if parsed.StopReason != "" {
			stopReason = parsed.StopReason
		}
		usage.InputTokens += parsed.InputTokens
		usage.OutputTokens += parsed.OutputTokens
		if parsed.Text == "" {
			continue
		}

		content.WriteString(parsed.Text)
		if callback != nil {
			if err := callback(parsed.Text); err != nil {
				return nil, fmt.Errorf("callback error: %w", err)
			}
		}
	}

	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("stream error: %w", err)
	}

	return &llm.LLMResponse{
		Content:    content.String(),
		StopReason: stopReason,
		Model:      c.ModelID,
		Usage:      usage,
	}, nil
}

// parseChunk reads one Claude stream event. message_start carries the input
// token count, message_delta the output count. Unparseable chunks are skipped.
func parseChunk(data []byte) chunkEvent {
	var chunk streamChunk
	if err := json.Unmarshal(data, &chunk); err != nil {
		return chunkEvent{}
	}

	text := chunk.Delta.Text
	if text == "" {
		text = chunk.ContentBlock.Text
	}

	return chunkEvent{
		Text:         text,
		StopReason:   chunk.Delta.StopReason,
		InputTokens:  chunk.Message.Usage.InputTokens,
		OutputTokens: chunk.Usage.OutputTokens,
	}
}
