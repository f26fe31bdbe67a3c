package service

import (
	"time"

	"mangahub/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenType distinguishes access tokens from refresh tokens.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID uuid.UUID   `json:"userId"`
	Email  string      `json:"email"`
	Role   entity.Role `json:"role"`
	Type   TokenType   `json:"type"`
	jwt.RegisteredClaims
}

// TokenPair is the result of signing in or refreshing a session.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(user *entity.User) (*TokenPair, error)

	// ValidateAccessToken verifies a token signed with the access secret.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken verifies a token signed with the refresh secret.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
