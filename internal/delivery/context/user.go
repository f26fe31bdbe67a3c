package context

import (
	"context"

	"mangahub/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyUser is the key for storing the authenticated user.
const KeyUser ContextKey = "user"

// SetUser stores the authenticated user in echo.Context and in the request context.
func SetUser(c echo.Context, user *entity.User) {
	c.Set(string(KeyUser), user)
	req := c.Request()
	c.SetRequest(req.WithContext(WithUser(req.Context(), user)))
}

// GetUser returns the authenticated user, or nil for anonymous requests.
func GetUser(c echo.Context) *entity.User {
	if user, ok := c.Get(string(KeyUser)).(*entity.User); ok {
		return user
	}

	return nil
}

// WithUser returns a new context carrying the authenticated user.
func WithUser(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, KeyUser, user)
}

// GetUserFromContext extracts the authenticated user from standard context.Context.
func GetUserFromContext(ctx context.Context) *entity.User {
	if user, ok := ctx.Value(KeyUser).(*entity.User); ok {
		return user
	}

	return nil
}
