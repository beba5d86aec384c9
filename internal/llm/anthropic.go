package llm

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mattedesign/figmant-759992b3-sub008/internal/metrics"
	"github.com/mattedesign/figmant-759992b3-sub008/pkg/clients"
	"go.uber.org/zap"
)

const (
	anthropicVersion = "2023-06-01"
	maxRetries       = 3
	retryInterval    = time.Second * 1
)

type anthropicContent struct {
	Type   string           `json:"type"`
	Text   string           `json:"text,omitempty"`
	Source *anthropicSource `json:"source,omitempty"`
}

type anthropicSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

type anthropicMessage struct {
	Role    string             `json:"role"`
	Content []anthropicContent `json:"content"`
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []anthropicContent `json:"content"`
	Error   *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Anthropic calls the Messages API directly over HTTP.
type Anthropic struct {
	client  clients.HTTPClientI
	url     string
	apiKey  string
	model   string
	backoff func(attempt int) time.Duration
}

func NewAnthropic(client clients.HTTPClientI, baseURL, apiKey, model string) *Anthropic {
	return &Anthropic{
		client: client,
		url:    strings.TrimRight(baseURL, "/") + "/v1/messages",
		apiKey: apiKey,
		model:  model,
		backoff: func(attempt int) time.Duration {
			return retryInterval * time.Duration(attempt)
		},
	}
}

func (a *Anthropic) Complete(ctx context.Context, req Request) (string, error) {
	content := make([]anthropicContent, 0, len(req.Images)+1)
	for _, img := range req.Images {
		content = append(content, anthropicContent{
			Type: "image",
			Source: &anthropicSource{
				Type:      "base64",
				MediaType: img.MediaType,
				Data:      base64.StdEncoding.EncodeToString(img.Data),
			},
		})
	}
	content = append(content, anthropicContent{Type: "text", Text: req.Prompt})

	body, err := json.Marshal(anthropicRequest{
		Model:     a.model,
		MaxTokens: maxTokens,
		System:    req.System,
		Messages:  []anthropicMessage{{Role: "user", Content: content}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("x-api-key", a.apiKey)
	headers.Set("anthropic-version", anthropicVersion)

	start := time.Now()
	text, err := a.send(ctx, headers, body)
	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.LLMLatency.WithLabelValues(ProviderAnthropic, status).Observe(time.Since(start).Seconds())
	return text, err
}

// send posts body, retrying transport errors, 429 and 5xx responses. A
// Retry-After header on a 429 overrides the linear backoff.
func (a *Anthropic) send(ctx context.Context, headers http.Header, body []byte) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		statusCode, respBody, respHeaders, err := a.client.Post(ctx, a.url, headers, body)
		wait := a.backoff(attempt)
		switch {
		case err != nil:
			lastErr = err
		case statusCode == http.StatusOK:
			return parseAnthropic(respBody)
		case statusCode == http.StatusTooManyRequests:
			lastErr = fmt.Errorf("rate limited: %s", strings.TrimSpace(string(respBody)))
			if seconds, convErr := strconv.Atoi(respHeaders.Get("Retry-After")); convErr == nil {
				wait = time.Duration(seconds) * time.Second
			}
		case statusCode >= http.StatusInternalServerError:
			lastErr = fmt.Errorf("server error %d: %s", statusCode, strings.TrimSpace(string(respBody)))
		default:
			return "", fmt.Errorf("unexpected status code %d: %s", statusCode, strings.TrimSpace(string(respBody)))
		}

		if attempt == maxRetries {
			break
		}
		zap.L().Warn("LLM request failed, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("retryAfter", wait),
			zap.Error(lastErr),
		)
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(wait):
		}
	}
	return "", fmt.Errorf("llm request failed after %d attempts: %w", maxRetries, lastErr)
}

func parseAnthropic(body []byte) (string, error) {
	var resp anthropicResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to parse response body: %w", err)
	}
	if resp.Error != nil {
		return "", fmt.Errorf("%s: %s", resp.Error.Type, resp.Error.Message)
	}

	var sb strings.Builder
	for _, c := range resp.Content {
		if c.Type == "text" {
			sb.WriteString(c.Text)
		}
	}
	if sb.Len() == 0 {
		return "", ErrEmptyResponse
	}
	return sb.String(), nil
}
