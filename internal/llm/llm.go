// Package llm talks to the language model that writes design critiques.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mattedesign/figmant-759992b3-sub008/internal/config"
	"github.com/mattedesign/figmant-759992b3-sub008/pkg/clients"
)

//go:generate mockgen -source=llm.go -destination=mock_llm.go -package=llm

const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"

	maxTokens = 2048
)

var (
	ErrEmptyResponse   = errors.New("llm returned no content")
	ErrUnknownProvider = errors.New("unknown llm provider")
)

// Image is a design file attached to a prompt.
type Image struct {
	MediaType string
	Data      []byte
}

type Request struct {
	System string
	Prompt string
	Images []Image
}

// Client asks the model for a JSON answer and returns its raw text.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// New builds the client for cfg.Provider.
func New(cfg config.LLMConfig, httpClient clients.HTTPClientI) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case ProviderAnthropic, "":
		return NewAnthropic(httpClient, cfg.BaseURL, cfg.APIKey, cfg.Model), nil
	case ProviderOpenAI:
		return NewOpenAI(cfg.BaseURL, cfg.APIKey, cfg.Model), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
}
