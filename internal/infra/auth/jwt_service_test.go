package auth

import (
	"testing"

	"happnings/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret"
	cfg.SecretKey.Refresh = "refresh-secret"

	return NewJWTService(cfg).(*jwtService)
}

func TestGenerateAndValidateTokens(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	userID := uuid.New()

	accessToken, refreshToken, err := svc.GenerateTokens(userID)
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	accessClaims, err := svc.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, "access", accessClaims.Type)

	refreshClaims, err := svc.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Equal(t, "refresh", refreshClaims.Type)
}

func TestValidateRejectsWrongTokenType(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	accessToken, refreshToken, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(refreshToken)
	assert.Error(t, err, "refresh token must not pass access validation")

	_, err = svc.ValidateRefreshToken(accessToken)
	assert.Error(t, err, "access token must not pass refresh validation")
}

func TestValidateRejectsTamperedToken(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	accessToken, _, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(accessToken + "x")
	assert.Error(t, err)
}
