// Package context carries request-scoped values between the HTTP layer and the usecases.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// ContextKey namespaces the values stored by this package.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"

	// HeaderXRequestID is read from clients and echoed on every response.
	HeaderXRequestID = "X-Request-Id"
)

// SetRequestID stores the request id and its logger on echo.Context and on the request context,
// so handlers and usecases see the same values.
func SetRequestID(c echo.Context, requestID string, logger *slog.Logger) {
	c.Set(string(KeyRequestID), requestID)

	ctx := context.WithValue(c.Request().Context(), KeyRequestID, requestID)
	if logger != nil {
		ctx = context.WithValue(ctx, KeyLogger, logger)
	}
	c.SetRequest(c.Request().WithContext(ctx))
}

// RequestID returns the id assigned by the request id middleware, or "" outside a request.
func RequestID(c echo.Context) string {
	id, _ := c.Get(string(KeyRequestID)).(string)

	return id
}

// RequestIDFromContext is RequestID for code that only holds a context.Context.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

// LoggerOr returns the request-scoped logger, falling back to the service logger.
func LoggerOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
