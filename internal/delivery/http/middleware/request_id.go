package middleware

import (
	"log/slog"

	deliverycontext "mangahub/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxRequestIDLength bounds client supplied ids before they reach the logs.
const maxRequestIDLength = 128

// RequestIDMiddleware assigns every request an id and a logger carrying it.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process reuses a well-formed X-Request-Id header or generates a UUID, echoes it in the
// response and stores it, with a request-scoped logger, in both contexts.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if !validRequestID(requestID) {
			requestID = uuid.New().String()
		}

		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)
		deliverycontext.SetRequestID(c, requestID, m.logger.With(slog.String("request_id", requestID)))

		return next(c)
	}
}

// validRequestID accepts printable ASCII without spaces.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}

	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}

	return true
}
