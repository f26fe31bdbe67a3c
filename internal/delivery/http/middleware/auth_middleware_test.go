package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "mangahub/internal/delivery/context"
	"mangahub/internal/domain/entity"
	domainerrors "mangahub/internal/domain/errors"
	mockUsecase "mangahub/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthContext(authorization string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

// capture records the user seen by the next handler.
func capture(seen **entity.User) echo.HandlerFunc {
	return func(c echo.Context) error {
		*seen = deliverycontext.GetUser(c)

		return c.NoContent(http.StatusOK)
	}
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		m := NewAuthMiddleware(AuthMiddlewareParams{AuthUC: mockUsecase.NewMockAuthUsecase(t)})
		c, _ := newAuthContext("")

		err := m.Authenticate(capture(new(*entity.User)))(c)

		assert.ErrorIs(t, err, domainerrors.ErrTokenMissing)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		m := NewAuthMiddleware(AuthMiddlewareParams{AuthUC: mockUsecase.NewMockAuthUsecase(t)})
		c, _ := newAuthContext("Basic Zm9vOmJhcg==")

		err := m.Authenticate(capture(new(*entity.User)))(c)

		assert.ErrorIs(t, err, domainerrors.ErrTokenMissing)
	})

	t.Run("expired token", func(t *testing.T) {
		authUC := mockUsecase.NewMockAuthUsecase(t)
		authUC.EXPECT().Authenticate(mock.Anything, "stale").Return(nil, domainerrors.ErrTokenExpired)
		m := NewAuthMiddleware(AuthMiddlewareParams{AuthUC: authUC})
		c, _ := newAuthContext("Bearer stale")

		err := m.Authenticate(capture(new(*entity.User)))(c)

		assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
	})

	t.Run("stores the user on both contexts", func(t *testing.T) {
		user := &entity.User{ID: uuid.New(), Role: entity.RoleUser, IsActive: true}
		authUC := mockUsecase.NewMockAuthUsecase(t)
		authUC.EXPECT().Authenticate(mock.Anything, "good").Return(user, nil)
		m := NewAuthMiddleware(AuthMiddlewareParams{AuthUC: authUC})
		c, rec := newAuthContext("Bearer good")

		var seen *entity.User
		err := m.Authenticate(capture(&seen))(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Same(t, user, seen)
		assert.Same(t, user, deliverycontext.GetUserFromContext(c.Request().Context()))
	})
}

func TestAuthMiddleware_OptionalAuthenticate(t *testing.T) {
	t.Run("invalid token continues anonymously", func(t *testing.T) {
		authUC := mockUsecase.NewMockAuthUsecase(t)
		authUC.EXPECT().Authenticate(mock.Anything, "broken").Return(nil, domainerrors.ErrTokenInvalid)
		m := NewAuthMiddleware(AuthMiddlewareParams{AuthUC: authUC})
		c, rec := newAuthContext("Bearer broken")

		seen := &entity.User{}
		err := m.OptionalAuthenticate(capture(&seen))(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, seen)
	})

	t.Run("no header skips the lookup", func(t *testing.T) {
		m := NewAuthMiddleware(AuthMiddlewareParams{AuthUC: mockUsecase.NewMockAuthUsecase(t)})
		c, _ := newAuthContext("")

		seen := &entity.User{}
		require.NoError(t, m.OptionalAuthenticate(capture(&seen))(c))
		assert.Nil(t, seen)
	})
}

func TestAuthMiddleware_Authorize(t *testing.T) {
	m := NewAuthMiddleware(AuthMiddlewareParams{AuthUC: mockUsecase.NewMockAuthUsecase(t)})
	staffOnly := m.Authorize(entity.StaffRoles...)

	tests := []struct {
		name    string
		user    *entity.User
		wantErr error
	}{
		{name: "anonymous", user: nil, wantErr: domainerrors.ErrAuthenticationRequired},
		{name: "reader", user: &entity.User{Role: entity.RoleUser}, wantErr: domainerrors.ErrInsufficientPermissions},
		{name: "moderator", user: &entity.User{Role: entity.RoleModerator}},
		{name: "owner", user: &entity.User{Role: entity.RoleOwner}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newAuthContext("")
			if tt.user != nil {
				deliverycontext.SetUser(c, tt.user)
			}

			err := staffOnly(capture(new(*entity.User)))(c)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			assert.NoError(t, err)
		})
	}
}
