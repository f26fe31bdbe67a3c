package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"mangahub/config"
	deliverycontext "mangahub/internal/delivery/context"
	domainerrors "mangahub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LoggerMiddleware writes one detailed line per request when debug is enabled.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	if !m.debug {
		return next
	}

	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		m.logRequest(c, start, err)

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()
	latency := time.Since(start)

	status := res.Status
	if err != nil {
		// The error handler has not written the response yet.
		status = statusOf(err)
	}

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.String("route", c.Path()),
		slog.Int("status", status),
		slog.Duration("latency", latency),
		slog.Int64("bytes_out", res.Size),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if user := deliverycontext.GetUser(c); user != nil {
		fields = append(fields, slog.String("user_id", user.ID.String()))
	}
	if err != nil {
		fields = append(fields, slog.String("error", err.Error()))
	}

	level := slog.LevelInfo
	if status >= http.StatusBadRequest {
		level = slog.LevelWarn
	}
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}

	logger := deliverycontext.LoggerOr(req.Context(), m.logger)
	logger.LogAttrs(req.Context(), level, "HTTP Request", fields...)
}

func statusOf(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
