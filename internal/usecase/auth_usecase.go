// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"mangahub/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new reader account.
type RegisterInput struct {
	Name      string `json:"name" validate:"required,min=2,max=100"`
	LastName  string `json:"lastName" validate:"required,min=2,max=100"`
	UserName  string `json:"userName" validate:"required,min=3,max=100,username"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,strongpassword"`
	BirthDate string `json:"birthDate" validate:"required,datetime=2006-01-02,pastdate,adult"`
}

// LoginInput accepts either an email address or a user name as identifier.
type LoginInput struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// RefreshTokenInput carries the refresh token to exchange.
type RefreshTokenInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput is returned after registration and login.
type AuthOutput struct {
	User         *entity.User `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

// TokenOutput is returned by a token refresh.
type TokenOutput struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthUsecase defines the interface for authentication operations.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenOutput, error)
	Logout(ctx context.Context, userID uuid.UUID) error
	Me(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	// Authenticate resolves an access token to an active user. It backs the HTTP auth middleware.
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
}
