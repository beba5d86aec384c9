package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	jwtService := NewMockJWTServiceInterface(ctrl)

	var gotID int
	var gotRole string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = UserID(r.Context())
		gotRole, _ = r.Context().Value(UserRoleKey).(string)
		w.WriteHeader(http.StatusOK)
	})
	handler := AuthMiddleware(jwtService)(next)

	tests := []struct {
		name         string
		header       string
		mockSetup    func()
		expectedCode int
		expectedID   int
	}{
		{
			name:         "Missing header",
			mockSetup:    func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Not a bearer token",
			header:       "Basic dXNlcjpwYXNz",
			mockSetup:    func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "Invalid token",
			header: "Bearer bad",
			mockSetup: func() {
				jwtService.EXPECT().ValidateToken("bad").Return(nil, errors.New("invalid token"))
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "Valid token",
			header: "Bearer good",
			mockSetup: func() {
				jwtService.EXPECT().ValidateToken("good").Return(&Claims{UserID: 7, Role: "user"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedID:   7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotID = 0
			tt.mockSetup()
			req := httptest.NewRequest(http.MethodGet, "/api/user/credits", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.expectedID, gotID)
			if tt.expectedID != 0 {
				assert.Equal(t, "user", gotRole)
			}
		})
	}
}

func TestAdminOnly(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name         string
		role         string
		expectedCode int
	}{
		{name: "Admin passes", role: "admin", expectedCode: http.StatusNoContent},
		{name: "User is forbidden", role: "user", expectedCode: http.StatusForbidden},
		{name: "No role is forbidden", role: "", expectedCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/admin/credits/adjust", nil)
			req = req.WithContext(WithUser(req.Context(), 1, tt.role))
			rec := httptest.NewRecorder()

			AdminOnly(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}
