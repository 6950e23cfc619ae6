package jwt_test

import (
	"context"
	"petcare/config"
	"petcare/infras/jwt"
	"petcare/infras/otel/mocks"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "petcare"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	return jwt.New(cfg, mocks.NewOtel())
}

func TestService_GenerateTokenPair(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	pair, err := svc.GenerateTokenPair(ctx, "walker-1", "walker@example.com", "walker")
	require.NoError(t, err)

	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, int64(900), pair.ExpiresIn)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	claims, err := svc.ValidateToken(ctx, pair.AccessToken, jwt.AccessToken)
	require.NoError(t, err)

	assert.Equal(t, "walker-1", claims.UserID)
	assert.Equal(t, "walker@example.com", claims.Email)
	assert.Equal(t, "walker", claims.Role)
	assert.Equal(t, jwt.AccessToken, claims.Type)
	assert.Equal(t, claims.TokenID, claims.ID)
	assert.Equal(t, "petcare", claims.Issuer)
}

func TestService_ValidateToken(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	pair, err := svc.GenerateTokenPair(ctx, "client-1", "client@example.com", "client")
	require.NoError(t, err)

	expired := gojwt.NewWithClaims(gojwt.SigningMethodHS256, jwt.Claims{
		UserID: "client-1",
		Type:   jwt.AccessToken,
		RegisteredClaims: gojwt.RegisteredClaims{
			Issuer:    "petcare",
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	expiredToken, err := expired.SignedString([]byte("access-secret"))
	require.NoError(t, err)

	foreign := gojwt.NewWithClaims(gojwt.SigningMethodHS256, jwt.Claims{UserID: "client-1", Type: jwt.AccessToken})
	foreignToken, err := foreign.SignedString([]byte("someone-else"))
	require.NoError(t, err)

	tests := []struct {
		name        string
		token       string
		tokenType   jwt.TokenType
		expectedErr error
	}{
		{
			name:      "access token",
			token:     pair.AccessToken,
			tokenType: jwt.AccessToken,
		},
		{
			name:      "refresh token",
			token:     pair.RefreshToken,
			tokenType: jwt.RefreshToken,
		},
		{
			name:        "refresh token used as access token",
			token:       pair.RefreshToken,
			tokenType:   jwt.AccessToken,
			expectedErr: jwt.ErrInvalidToken,
		},
		{
			name:        "expired",
			token:       expiredToken,
			tokenType:   jwt.AccessToken,
			expectedErr: jwt.ErrExpiredToken,
		},
		{
			name:        "wrong signature",
			token:       foreignToken,
			tokenType:   jwt.AccessToken,
			expectedErr: jwt.ErrInvalidToken,
		},
		{
			name:        "garbage",
			token:       "not-a-token",
			tokenType:   jwt.AccessToken,
			expectedErr: jwt.ErrInvalidToken,
		},
		{
			name:        "unknown token type",
			token:       pair.AccessToken,
			tokenType:   jwt.TokenType("session"),
			expectedErr: jwt.ErrUnknownTokenType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(ctx, tt.token, tt.tokenType)

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, claims)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "client-1", claims.UserID)
			assert.Equal(t, tt.tokenType, claims.Type)
		})
	}
}

func TestService_RefreshTokens(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	pair, err := svc.GenerateTokenPair(ctx, "admin-1", "admin@example.com", "admin")
	require.NoError(t, err)

	refreshed, err := svc.RefreshTokens(ctx, pair.RefreshToken)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(ctx, refreshed.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.UserID)

	_, err = svc.RefreshTokens(ctx, pair.AccessToken)
	require.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		expected    string
		expectedErr error
	}{
		{name: "bearer", header: "Bearer abc.def", expected: "abc.def"},
		{name: "empty", header: "", expectedErr: jwt.ErrMissingHeader},
		{name: "other scheme", header: "Basic abc", expectedErr: jwt.ErrMalformedHeader},
		{name: "no credential", header: "Bearer ", expectedErr: jwt.ErrMalformedHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwt.ExtractTokenFromHeader(tt.header)

			require.ErrorIs(t, err, tt.expectedErr)
			assert.Equal(t, tt.expected, token)
		})
	}
}
