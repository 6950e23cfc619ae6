package dto_test

import (
	"encoding/json"
	"petcare/infras/jwt"
	"petcare/internal/domains/auth/model/dto"
	userModel "petcare/internal/domains/user/model"
	"petcare/shared/constant"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenResponse_FromTokenPair(t *testing.T) {
	var res dto.TokenResponse

	res.FromTokenPair(&jwt.TokenPair{
		AccessToken:  "new-access-token",
		RefreshToken: "new-refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	})

	assert.Equal(t, dto.TokenResponse{
		AccessToken:  "new-access-token",
		RefreshToken: "new-refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}, res)
}

func TestLoginResponse_FromModel(t *testing.T) {
	var res dto.LoginResponse

	res.FromModel(
		&jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer", ExpiresIn: 900},
		userModel.User{ID: "client-1", FullName: "Dana Client", Role: constant.RoleClient, Password: "hash"},
	)

	body, err := json.Marshal(res)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"access_token": "access",
		"refresh_token": "refresh",
		"token_type": "Bearer",
		"expires_in": 900,
		"user_id": "client-1",
		"full_name": "Dana Client",
		"role": "client"
	}`, string(body))
}
