package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespondWithJSON(t *testing.T) {
	tests := []struct {
		name         string
		code         int
		payload      interface{}
		expectedBody string
	}{
		{
			name:         "Payload is encoded",
			code:         http.StatusOK,
			payload:      map[string]int{"current_balance": 15},
			expectedBody: `{"current_balance":15}`,
		},
		{
			name:         "Nil payload writes only the status",
			code:         http.StatusNoContent,
			payload:      nil,
			expectedBody: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			RespondWithJSON(rec, tt.code, tt.payload)

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			if tt.expectedBody == "" {
				assert.Empty(t, rec.Body.String())
			} else {
				assert.JSONEq(t, tt.expectedBody, rec.Body.String())
			}
		})
	}
}

func TestRespondWithError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondWithError(rec, http.StatusPaymentRequired, "insufficient credits")

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.JSONEq(t, `{"message":"insufficient credits"}`, rec.Body.String())
}
