package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signToken mints a token the way the identity service does, so the
// validation path can be exercised without an issuance API here.
func signToken(t *testing.T, secret string, userID uuid.UUID, ttl time.Duration) string {
	t.Helper()

	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"exp":     time.Now().Add(ttl).Unix(),
		"iat":     time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestJWT_GetUserID(t *testing.T) {
	j := New("test-secret", time.Minute)

	userID := uuid.New()
	ctx := context.Background()

	token := signToken(t, "test-secret", userID, time.Minute)

	got, err := j.GetUserID(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New("test-secret", time.Minute)
	ctx := context.Background()

	token := signToken(t, "test-secret", uuid.New(), -time.Minute) // already expired

	got, err := j.GetUserID(ctx, token)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New("secret", time.Minute)
	ctx := context.Background()

	got, err := j.GetUserID(ctx, "invalid.token.string")
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
}

func TestJWT_WrongSecret(t *testing.T) {
	ctx := context.Background()

	token := signToken(t, "secret1", uuid.New(), time.Minute)

	got, err := New("secret2", time.Minute).GetUserID(ctx, token)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
}

func TestJWT_MissingUserIDClaim(t *testing.T) {
	j := New("secret", time.Minute)
	ctx := context.Background()

	claims := jwt.MapClaims{
		"exp": time.Now().Add(time.Minute).Unix(),
		"iat": time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	got, err := j.GetUserID(ctx, token)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New("secret", time.Minute)
	ctx := context.Background()

	tests := []struct {
		name          string
		header        string
		expectedToken string
		expectError   bool
	}{
		{"ValidBearer", "Bearer mytoken123", "mytoken123", false},
		{"LowercaseBearer", "bearer mytoken123", "mytoken123", false},
		{"NoHeader", "", "", true},
		{"InvalidFormat", "Token mytoken123", "", true},
		{"TooManyParts", "Bearer a b c", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
