package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateJWT(t *testing.T) {
	jwtService := NewJWTService(testSecret)

	tests := []struct {
		name           string
		userID         int
		role           string
		expirationTime time.Time
	}{
		{
			name:           "Valid Token",
			userID:         123,
			role:           "user",
			expirationTime: time.Now().Add(time.Hour),
		},
		{
			name:           "Expired Token",
			userID:         123,
			role:           "admin",
			expirationTime: time.Now().Add(-time.Hour),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwtService.GenerateJWT(tt.userID, tt.role, tt.expirationTime)
			assert.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}

func TestValidateToken(t *testing.T) {
	jwtService := NewJWTService(testSecret)

	tests := []struct {
		name         string
		tokenString  string
		setup        func() string
		expectError  bool
		expectedRole string
	}{
		{
			name: "Valid Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(123, "admin", time.Now().Add(time.Hour))
				return token
			},
			expectedRole: "admin",
		},
		{
			name:        "Invalid Token",
			tokenString: "invalid.token.string",
			expectError: true,
		},
		{
			name: "Expired Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(123, "user", time.Now().Add(-time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Signed With Another Secret",
			setup: func() string {
				token, _ := NewJWTService("other-secret").GenerateJWT(123, "admin", time.Now().Add(time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Invalid Claims Type",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
					ExpiresAt: time.Now().Add(time.Hour).Unix(),
					Issuer:    issuer,
				})
				signedToken, _ := token.SignedString([]byte(testSecret))
				return signedToken
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenString := tt.tokenString
			if tt.setup != nil {
				tokenString = tt.setup()
			}

			claims, err := jwtService.ValidateToken(tokenString)
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 123, claims.UserID)
			assert.Equal(t, tt.expectedRole, claims.Role)
		})
	}
}
