package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"petcare/config"
	"petcare/infras/otel"
	"petcare/shared/constant"
	"petcare/shared/timezone"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const bearerScheme = "Bearer"

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInvalidClaim     = errors.New("invalid token claim")
	ErrUnknownTokenType = errors.New("unknown token type")
	ErrMissingHeader    = errors.New("authorization header is required")
	ErrMalformedHeader  = errors.New("authorization header must use the Bearer scheme")
)

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

// Claims carries the caller identity. Type stops a refresh token from being replayed as an access token.
type Claims struct {
	UserID  string    `json:"user_id"`
	Email   string    `json:"email"`
	Role    string    `json:"role,omitempty"`
	TokenID string    `json:"token_id"`
	Type    TokenType `json:"type"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

type JWT interface {
	GenerateTokenPair(ctx context.Context, userID, email, role string) (*TokenPair, error)
	ValidateToken(ctx context.Context, tokenString string, tokenType TokenType) (*Claims, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type tokenSettings struct {
	secret []byte
	ttl    time.Duration
}

type Service struct {
	issuer   string
	settings map[TokenType]tokenSettings
	otel     otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) JWT {
	return &Service{
		issuer: cfg.App.Name,
		settings: map[TokenType]tokenSettings{
			AccessToken: {
				secret: []byte(cfg.JWT.AccessSecret),
				ttl:    time.Duration(cfg.JWT.AccessExpireMin) * time.Minute,
			},
			RefreshToken: {
				secret: []byte(cfg.JWT.RefreshSecret),
				ttl:    time.Duration(cfg.JWT.RefreshExpireMin) * time.Minute,
			},
		},
		otel: otl,
	}
}

func (s *Service) GenerateTokenPair(ctx context.Context, userID, email, role string) (pair *TokenPair, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelJWTScopeName, constant.OtelJWTScopeName+".GenerateTokenPair")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	issuedAt := timezone.Now()
	identity := Claims{UserID: userID, Email: email, Role: role}

	access, err := s.sign(identity, AccessToken, issuedAt)
	if err != nil {
		return nil, err
	}

	refresh, err := s.sign(identity, RefreshToken, issuedAt)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    bearerScheme,
		ExpiresIn:    int64(s.settings[AccessToken].ttl.Seconds()),
	}, nil
}

func (s *Service) sign(identity Claims, tokenType TokenType, issuedAt time.Time) (string, error) {
	setting, ok := s.settings[tokenType]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTokenType, tokenType)
	}

	identity.TokenID = uuid.NewString()
	identity.Type = tokenType
	identity.RegisteredClaims = jwt.RegisteredClaims{
		ID:        identity.TokenID,
		Issuer:    s.issuer,
		Subject:   identity.UserID,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		NotBefore: jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(setting.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, identity).SignedString(setting.secret)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", tokenType, err)
	}

	return signed, nil
}

// ValidateToken maps every parser failure onto ErrExpiredToken, ErrInvalidClaim or ErrInvalidToken.
func (s *Service) ValidateToken(ctx context.Context, tokenString string, tokenType TokenType) (*Claims, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelJWTScopeName, constant.OtelJWTScopeName+".ValidateToken")
	defer scope.End()

	setting, ok := s.settings[tokenType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTokenType, tokenType)
	}

	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return setting.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(s.issuer))

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil:
		scope.TraceError(err)

		return nil, ErrInvalidToken
	case claims.Type != tokenType:
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

func (s *Service) RefreshTokens(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.ValidateToken(ctx, refreshToken, RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("refresh token rejected: %w", err)
	}

	return s.GenerateTokenPair(ctx, claims.UserID, claims.Email, claims.Role)
}

// ExtractTokenFromHeader returns the credential of a "Bearer <token>" Authorization header.
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrMissingHeader
	}

	token, found := strings.CutPrefix(authHeader, bearerScheme+" ")
	if !found || strings.TrimSpace(token) == "" {
		return "", ErrMalformedHeader
	}

	return token, nil
}
