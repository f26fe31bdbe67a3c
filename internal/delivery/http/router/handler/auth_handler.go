package handler

import (
	"net/http"

	"mangahub/internal/delivery/http/response"
	"mangahub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
}

// AuthHandler serves registration, login and token endpoints.
type AuthHandler struct {
	authUC usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{authUC: params.AuthUC}
}

// Register handles the reader registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := bindBody(c, &input); err != nil {
		return err
	}

	output, err := h.authUC.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, output, "User registered successfully")
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := bindBody(c, &input); err != nil {
		return err
	}

	output, err := h.authUC.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// Refresh exchanges a refresh token for a new token pair.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var input usecase.RefreshTokenInput
	if err := bindBody(c, &input); err != nil {
		return err
	}

	output, err := h.authUC.RefreshToken(c.Request().Context(), input.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Token refreshed successfully")
}

// Logout revokes the stored refresh token.
func (h *AuthHandler) Logout(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.authUC.Logout(c.Request().Context(), user.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	me, err := h.authUC.Me(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, me, "Current user retrieved successfully")
}
