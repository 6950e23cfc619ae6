package dto

import (
	"petcare/infras/jwt"
	userModel "petcare/internal/domains/user/model"
	"time"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login" json:"last_login" validate:"required"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (t *TokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	t.AccessToken = tokenPair.AccessToken
	t.RefreshToken = tokenPair.RefreshToken
	t.TokenType = tokenPair.TokenType
	t.ExpiresIn = tokenPair.ExpiresIn
}

// LoginResponse also tells the client which dashboard (admin, walker, client) to open.
type LoginResponse struct {
	TokenResponse
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

func (l *LoginResponse) FromModel(tokenPair *jwt.TokenPair, user userModel.User) {
	l.FromTokenPair(tokenPair)
	l.UserID = user.ID
	l.FullName = user.FullName
	l.Role = user.Role
}
