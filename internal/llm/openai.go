package llm

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/mattedesign/figmant-759992b3-sub008/internal/metrics"
	"github.com/sashabaranov/go-openai"
)

// OpenAI talks to any OpenAI-compatible chat completions endpoint.
type OpenAI struct {
	client *openai.Client
	model  string
}

func NewOpenAI(baseURL, apiKey, model string) *OpenAI {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	return &OpenAI{client: openai.NewClientWithConfig(cfg), model: model}
}

func (o *OpenAI) Complete(ctx context.Context, req Request) (string, error) {
	parts := make([]openai.ChatMessagePart, 0, len(req.Images)+1)
	parts = append(parts, openai.ChatMessagePart{Type: openai.ChatMessagePartTypeText, Text: req.Prompt})
	for _, img := range req.Images {
		parts = append(parts, openai.ChatMessagePart{
			Type: openai.ChatMessagePartTypeImageURL,
			ImageURL: &openai.ChatMessageImageURL{
				URL:    "data:" + img.MediaType + ";base64," + base64.StdEncoding.EncodeToString(img.Data),
				Detail: openai.ImageURLDetailAuto,
			},
		})
	}

	chatReq := openai.ChatCompletionRequest{
		Model: o.model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, MultiContent: parts},
		},
	}
	// Reasoning models reject max_tokens.
	if strings.HasPrefix(o.model, "o1") || strings.HasPrefix(o.model, "o3") || strings.HasPrefix(o.model, "o4") || strings.HasPrefix(o.model, "gpt-5") {
		chatReq.MaxCompletionTokens = maxTokens
	} else {
		chatReq.MaxTokens = maxTokens
	}

	start := time.Now()
	resp, err := o.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		metrics.LLMLatency.WithLabelValues(ProviderOpenAI, "error").Observe(time.Since(start).Seconds())
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	metrics.LLMLatency.WithLabelValues(ProviderOpenAI, "ok").Observe(time.Since(start).Seconds())

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}
