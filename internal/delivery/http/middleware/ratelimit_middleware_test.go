package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mangahub/config"
	deliverycontext "mangahub/internal/delivery/context"
	"mangahub/internal/domain/entity"
	domainerrors "mangahub/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRateLimitMiddleware(enabled bool) *RateLimitMiddleware {
	cfg := &config.Config{}
	cfg.HTTP.RateLimit = config.RateLimitConfig{
		Enabled:        enabled,
		Max:            100,
		Window:         time.Minute,
		ReadingMax:     100,
		AuthMax:        1,
		PasswordMax:    1,
		PasswordWindow: time.Hour,
	}

	return NewRateLimitMiddleware(cfg)
}

func hit(e *echo.Echo, mw echo.MiddlewareFunc, remoteAddr string, user *entity.User) (*httptest.ResponseRecorder, error) {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		deliverycontext.SetUser(c, user)
	}

	err := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)

	return rec, err
}

func TestRateLimitMiddleware_Auth(t *testing.T) {
	e := echo.New()
	mw := newTestRateLimitMiddleware(true).Auth()

	_, err := hit(e, mw, "203.0.113.7:5000", nil)
	require.NoError(t, err)

	rec, err := hit(e, mw, "203.0.113.7:5001", nil)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusTooManyRequests, appErr.HTTPCode())
	assert.Equal(t, "Too many authentication attempts, please try again in 1m0s", appErr.Message())
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))

	// Other clients keep their own budget.
	_, err = hit(e, mw, "198.51.100.2:5000", nil)
	assert.NoError(t, err)
}

func TestRateLimitMiddleware_PasswordIsPerUser(t *testing.T) {
	e := echo.New()
	mw := newTestRateLimitMiddleware(true).Password()
	alice := &entity.User{ID: uuid.New()}
	bob := &entity.User{ID: uuid.New()}

	_, err := hit(e, mw, "203.0.113.7:5000", alice)
	require.NoError(t, err)

	// Same address, different account.
	_, err = hit(e, mw, "203.0.113.7:5000", bob)
	require.NoError(t, err)

	_, err = hit(e, mw, "198.51.100.2:5000", alice)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Too many password change attempts, please try again in 1h0m", appErr.Message())
}

func TestRateLimitMiddleware_Disabled(t *testing.T) {
	e := echo.New()
	mw := newTestRateLimitMiddleware(false).Auth()

	for i := 0; i < 5; i++ {
		_, err := hit(e, mw, "203.0.113.7:5000", nil)
		require.NoError(t, err)
	}
}
