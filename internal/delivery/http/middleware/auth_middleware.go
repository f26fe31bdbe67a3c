package middleware

import (
	"strings"

	deliverycontext "mangahub/internal/delivery/context"
	"mangahub/internal/domain/entity"
	domainerrors "mangahub/internal/domain/errors"
	"mangahub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
}

// AuthMiddleware resolves bearer tokens to users and enforces roles.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{authUC: params.AuthUC}
}

// Authenticate requires a valid access token and stores its user on the request.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return domainerrors.ErrTokenMissing
		}

		user, err := m.authUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return err
		}

		deliverycontext.SetUser(c, user)

		return next(c)
	}
}

// OptionalAuthenticate attaches the user when a valid token is present and
// otherwise continues anonymously.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if token, ok := bearerToken(c); ok {
			if user, err := m.authUC.Authenticate(c.Request().Context(), token); err == nil {
				deliverycontext.SetUser(c, user)
			}
		}

		return next(c)
	}
}

// Authorize allows only the given roles. It must run after Authenticate.
func (m *AuthMiddleware) Authorize(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := deliverycontext.GetUser(c)
			if user == nil {
				return domainerrors.ErrAuthenticationRequired
			}

			if !allowed.Contains(user.Role) {
				return domainerrors.ErrInsufficientPermissions
			}

			return next(c)
		}
	}
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))

	return token, token != ""
}
