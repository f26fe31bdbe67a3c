// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"mangahub/config"
	"mangahub/internal/domain/entity"
	domainerrors "mangahub/internal/domain/errors"
	"mangahub/internal/domain/service"
	"mangahub/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  []byte        // Secret key for signing access tokens.
	refreshSecret []byte        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	accessTTL, refreshTTL := 7*24*time.Hour, 30*24*time.Hour
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			refreshTTL = cfg.Auth.RefreshTokenTTL
		}
	}

	return &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}, nil
}

// GenerateTokens creates a new access token and refresh token for a given user.
func (s *jwtService) GenerateTokens(user *entity.User) (*service.TokenPair, error) {
	accessToken, err := s.generateToken(user, service.TokenTypeAccess, s.accessTTL, s.accessSecret)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.generateToken(user, service.TokenTypeRefresh, s.refreshTTL, s.refreshSecret)
	if err != nil {
		return nil, err
	}

	return &service.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// ValidateAccessToken verifies an access token and its type claim.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	return s.validate(tokenString, s.accessSecret, service.TokenTypeAccess)
}

// ValidateRefreshToken verifies a refresh token and its type claim.
func (s *jwtService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	return s.validate(tokenString, s.refreshSecret, service.TokenTypeRefresh)
}

// GetRefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) GetRefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) validate(tokenString string, secret []byte, expected service.TokenType) (*service.Claims, error) {
	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired.WrapMessage(err.Error())
		}

		return nil, domainerrors.ErrTokenInvalid.WrapMessage(err.Error())
	}

	if claims.Type != expected {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("unexpected token type " + string(claims.Type))
	}

	return claims, nil
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(user *entity.User, tokenType service.TokenType, ttl time.Duration, secret []byte) (string, error) {
	now := s.now()
	claims := service.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(), // Distinguishes tokens issued within the same second.
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
