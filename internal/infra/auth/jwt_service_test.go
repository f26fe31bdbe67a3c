package auth

import (
	"testing"
	"time"

	"mangahub/config"
	"mangahub/internal/domain/entity"
	domainerrors "mangahub/internal/domain/errors"
	"mangahub/internal/domain/service"
	"mangahub/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL:  time.Hour,
			RefreshTokenTTL: 24 * time.Hour,
		},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func newTestUser() *entity.User {
	return &entity.User{
		ID:    uuid.Must(uuid.NewV7()),
		Email: "reader@example.com",
		Role:  entity.RoleModerator,
	}
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	user := newTestUser()
	pair, err := jwtService.GenerateTokens(user)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	accessClaims, err := jwtService.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, accessClaims.UserID)
	assert.Equal(t, user.Email, accessClaims.Email)
	assert.Equal(t, entity.RoleModerator, accessClaims.Role)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	refreshClaims, err := jwtService.ValidateRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, refreshClaims.UserID)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_TokensAreUnique(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	user := newTestUser()
	first, err := jwtService.GenerateTokens(user)
	require.NoError(t, err)
	second, err := jwtService.GenerateTokens(user)
	require.NoError(t, err)

	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
}

func TestJWTService_SecretsAreNotInterchangeable(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	pair, err := jwtService.GenerateTokens(newTestUser())
	require.NoError(t, err)

	_, err = jwtService.ValidateAccessToken(pair.RefreshToken)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))

	_, err = jwtService.ValidateRefreshToken(pair.AccessToken)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)
	impl := svc.(*jwtService)

	issued := time.Now().Add(-48 * time.Hour)
	impl.now = func() time.Time { return issued }
	pair, err := impl.GenerateTokens(newTestUser())
	require.NoError(t, err)

	impl.now = time.Now
	_, err = impl.ValidateRefreshToken(pair.RefreshToken)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))

	_, err = impl.ValidateAccessToken(pair.AccessToken)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	claims, err := jwtService.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_MissingSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_RefreshDuration(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, jwtService.GetRefreshTokenDuration())
}
