package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mattedesign/figmant-759992b3-sub008/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAI_Complete(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"{\"confidence\":0.5}"},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	o := NewOpenAI(srv.URL, "key", "gpt-4o")
	got, err := o.Complete(context.Background(), Request{
		System: "sys",
		Prompt: "review",
		Images: []Image{{MediaType: "image/png", Data: []byte("png")}},
	})

	require.NoError(t, err)
	assert.Equal(t, `{"confidence":0.5}`, got)
	assert.Equal(t, "gpt-4o", gotBody["model"])
	assert.Equal(t, map[string]any{"type": "json_object"}, gotBody["response_format"])
}

func TestOpenAI_CompleteEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","choices":[]}`))
	}))
	defer srv.Close()

	_, err := NewOpenAI(srv.URL, "key", "gpt-4o").Complete(context.Background(), Request{Prompt: "review"})
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestOpenAI_CompleteServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"bad model","type":"invalid_request_error"}}`))
	}))
	defer srv.Close()

	_, err := NewOpenAI(srv.URL, "key", "nope").Complete(context.Background(), Request{Prompt: "review"})
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		provider  string
		expected  any
		expectErr bool
	}{
		{name: "anthropic", provider: "anthropic", expected: &Anthropic{}},
		{name: "default", provider: "", expected: &Anthropic{}},
		{name: "openai", provider: "OpenAI", expected: &OpenAI{}},
		{name: "unknown", provider: "bard", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(config.LLMConfig{Provider: tt.provider, BaseURL: "https://llm.test"}, nil)
			if tt.expectErr {
				assert.ErrorIs(t, err, ErrUnknownProvider)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.expected, c)
		})
	}
}
