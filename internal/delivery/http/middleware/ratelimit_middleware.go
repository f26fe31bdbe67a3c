package middleware

import (
	"fmt"
	"strconv"
	"time"

	"mangahub/config"
	deliverycontext "mangahub/internal/delivery/context"
	domainerrors "mangahub/internal/domain/errors"
	"mangahub/internal/util"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware builds the per-client request budgets.
type RateLimitMiddleware struct {
	cfg config.RateLimitConfig
}

// NewRateLimitMiddleware creates the limiters from the HTTP configuration.
func NewRateLimitMiddleware(cfg *config.Config) *RateLimitMiddleware {
	return &RateLimitMiddleware{cfg: cfg.HTTP.RateLimit}
}

// Global applies to every request.
func (m *RateLimitMiddleware) Global() echo.MiddlewareFunc {
	return m.limit(m.cfg.Max, m.cfg.Window, "Too many requests, please try again in %s", byIP)
}

// Reading is the looser budget of the chapter reader.
func (m *RateLimitMiddleware) Reading() echo.MiddlewareFunc {
	return m.limit(m.cfg.ReadingMax, m.cfg.Window, "Too many requests, please try again in %s", byIP)
}

// Auth guards login, registration and token refresh.
func (m *RateLimitMiddleware) Auth() echo.MiddlewareFunc {
	return m.limit(m.cfg.AuthMax, m.cfg.Window, "Too many authentication attempts, please try again in %s", byIP)
}

// Password guards password changes per account.
func (m *RateLimitMiddleware) Password() echo.MiddlewareFunc {
	return m.limit(m.cfg.PasswordMax, m.cfg.PasswordWindow, "Too many password change attempts, please try again in %s", byUser)
}

// limit allows max requests per window with bursts up to max.
func (m *RateLimitMiddleware) limit(max int, window time.Duration, message string, identify echomiddleware.Extractor) echo.MiddlewareFunc {
	if !m.cfg.Enabled || max < 1 || window <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(max) / window.Seconds()),
		Burst:     max,
		ExpiresIn: window,
	})

	retryAfter := strconv.Itoa(int(window.Seconds()))

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store:               store,
		IdentifierExtractor: identify,
		ErrorHandler: func(c echo.Context, err error) error {
			return domainerrors.ErrInternalError
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			c.Response().Header().Set("Retry-After", retryAfter)

			return domainerrors.NewTooManyRequestsError(formatRetry(message, window))
		},
	})
}

func formatRetry(message string, window time.Duration) string {
	return fmt.Sprintf(message, util.FormatDuration(window))
}

func byIP(c echo.Context) (string, error) {
	return c.RealIP(), nil
}

// byUser keys authenticated requests by account and falls back to the client address.
func byUser(c echo.Context) (string, error) {
	if user := deliverycontext.GetUser(c); user != nil {
		return "user:" + user.ID.String(), nil
	}

	return "ip:" + c.RealIP(), nil
}
