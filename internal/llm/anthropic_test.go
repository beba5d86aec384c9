package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/mattedesign/figmant-759992b3-sub008/pkg/clients"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const anthropicOK = `{"content":[{"type":"text","text":"{\"confidence\":0.8}"}]}`

func NewMock(t *testing.T) (*Anthropic, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := clients.NewMockHTTPClientI(ctrl)
	a := NewAnthropic(client, "https://llm.test/", "key", "claude-test")
	a.backoff = func(int) time.Duration { return 0 }
	return a, client
}

func TestAnthropic_Complete(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(client *clients.MockHTTPClientI)
		expected  string
		expectErr bool
	}{
		{
			name: "success",
			setup: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Post(gomock.Any(), "https://llm.test/v1/messages", gomock.Any(), gomock.Any()).
					Return(http.StatusOK, []byte(anthropicOK), http.Header{}, nil)
			},
			expected: `{"confidence":0.8}`,
		},
		{
			name: "retries on server error",
			setup: func(client *clients.MockHTTPClientI) {
				gomock.InOrder(
					client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
						Return(http.StatusBadGateway, []byte("bad gateway"), http.Header{}, nil),
					client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
						Return(http.StatusOK, []byte(anthropicOK), http.Header{}, nil),
				)
			},
			expected: `{"confidence":0.8}`,
		},
		{
			name: "honours Retry-After on rate limit",
			setup: func(client *clients.MockHTTPClientI) {
				gomock.InOrder(
					client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
						Return(http.StatusTooManyRequests, nil, http.Header{"Retry-After": []string{"0"}}, nil),
					client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
						Return(http.StatusOK, []byte(anthropicOK), http.Header{}, nil),
				)
			},
			expected: `{"confidence":0.8}`,
		},
		{
			name: "gives up after max retries",
			setup: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(0, nil, nil, errors.New("connection refused")).Times(maxRetries)
			},
			expectErr: true,
		},
		{
			name: "client error is not retried",
			setup: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(http.StatusBadRequest, []byte(`{"error":{"type":"invalid_request_error","message":"bad"}}`), http.Header{}, nil)
			},
			expectErr: true,
		},
		{
			name: "empty content",
			setup: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(http.StatusOK, []byte(`{"content":[]}`), http.Header{}, nil)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, client := NewMock(t)
			tt.setup(client)

			got, err := a.Complete(context.Background(), Request{System: "sys", Prompt: "review"})
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestAnthropic_CompleteRequestShape(t *testing.T) {
	a, client := NewMock(t)

	client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, headers http.Header, body []byte) (int, []byte, http.Header, error) {
			assert.Equal(t, "key", headers.Get("x-api-key"))
			assert.Equal(t, anthropicVersion, headers.Get("anthropic-version"))

			var req anthropicRequest
			require.NoError(t, json.Unmarshal(body, &req))
			assert.Equal(t, "claude-test", req.Model)
			assert.Equal(t, "sys", req.System)
			require.Len(t, req.Messages, 1)
			require.Len(t, req.Messages[0].Content, 2)
			assert.Equal(t, "image", req.Messages[0].Content[0].Type)
			assert.Equal(t, "image/png", req.Messages[0].Content[0].Source.MediaType)
			assert.Equal(t, "text", req.Messages[0].Content[1].Type)
			return http.StatusOK, []byte(anthropicOK), http.Header{}, nil
		})

	_, err := a.Complete(context.Background(), Request{
		System: "sys",
		Prompt: "review",
		Images: []Image{{MediaType: "image/png", Data: []byte{0x89, 0x50}}},
	})
	require.NoError(t, err)
}

func TestAnthropic_CompleteCanceled(t *testing.T) {
	a, _ := NewMock(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Complete(ctx, Request{Prompt: "review"})
	assert.ErrorIs(t, err, context.Canceled)
}
