package middleware

import (
	"log/slog"
	"net/http"

	"mangahub/config"
	deliverycontext "mangahub/internal/delivery/context"
	"mangahub/internal/delivery/http/response"
	"mangahub/internal/delivery/http/validator"
	domainerrors "mangahub/internal/domain/errors"
	internalerrors "mangahub/internal/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	internalErrorMessage = "Internal server error"
	requestFailedMessage = "Request failed"
)

var jwtErrors = []error{
	jwt.ErrTokenMalformed,
	jwt.ErrTokenUnverifiable,
	jwt.ErrTokenSignatureInvalid,
	jwt.ErrTokenInvalidClaims,
	jwt.ErrTokenNotValidYet,
	jwt.ErrTokenUsedBeforeIssued,
	jwt.ErrTokenInvalidIssuer,
	jwt.ErrTokenInvalidAudience,
	jwt.ErrTokenRequiredClaimMissing,
}

// ErrorMiddleware turns handler errors into the JSON error envelope.
type ErrorMiddleware struct {
	logger     *slog.Logger
	production bool
	withStack  bool
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger:     logger,
		production: cfg.IsProduction(),
		withStack:  cfg.IsDevelopment(),
	}
}

// resolved is an error after classification.
type resolved struct {
	status      int
	message     string
	fields      []domainerrors.FieldError
	operational bool
	infra       bool
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	r := m.resolve(err)
	m.log(c, err, r)

	message := r.message
	if m.production {
		switch {
		case r.status >= http.StatusInternalServerError:
			message = internalErrorMessage
		case r.infra:
			message = requestFailedMessage
		}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(r.status)

		return
	}

	var stack string
	if m.withStack {
		stack = internalerrors.Trace(err)
	}

	_ = response.Error(c, r.status, message, r.fields, stack)
}

func (m *ErrorMiddleware) resolve(err error) resolved {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return resolved{
			status:      appErr.HTTPCode(),
			message:     appErr.Message(),
			fields:      appErr.Fields(),
			operational: true,
		}
	}

	var validationErrs playground.ValidationErrors
	if errors.As(err, &validationErrs) {
		return resolved{
			status:      http.StatusBadRequest,
			message:     "Validation failed",
			fields:      validator.FieldErrors(validationErrs),
			operational: true,
		}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return resolved{status: http.StatusNotFound, message: "Resource not found", operational: true, infra: true}
	}

	if errors.Is(err, jwt.ErrTokenExpired) {
		return resolved{status: http.StatusUnauthorized, message: domainerrors.ErrTokenExpired.Message(), operational: true, infra: true}
	}
	for _, target := range jwtErrors {
		if errors.Is(err, target) {
			return resolved{status: http.StatusUnauthorized, message: domainerrors.ErrTokenInvalid.Message(), operational: true, infra: true}
		}
	}

	var bindingErr *echo.BindingError
	if errors.As(err, &bindingErr) {
		return resolved{
			status:  http.StatusBadRequest,
			message: "Validation failed",
			fields: []domainerrors.FieldError{{
				Field:   bindingErr.Field,
				Message: bindingErr.Field + " is invalid",
			}},
			operational: true,
		}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		switch msg := httpErr.Message.(type) {
		case string:
			message = msg
		case error:
			message = msg.Error()
		}
		if httpErr.Code == http.StatusNotFound {
			message = domainerrors.ErrRouteNotFound.Message()
		}

		return resolved{status: httpErr.Code, message: message, operational: httpErr.Code < http.StatusInternalServerError}
	}

	return resolved{status: http.StatusInternalServerError, message: internalErrorMessage}
}

func (m *ErrorMiddleware) log(c echo.Context, err error, r resolved) {
	logger := deliverycontext.LoggerOr(c.Request().Context(), m.logger)
	attrs := []any{
		slog.Int("status", r.status),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	}

	if r.operational && r.status < http.StatusInternalServerError {
		logger.Warn("Request failed", append(attrs, slog.String("error", err.Error()))...)

		return
	}

	logger.Error("Unhandled error", append(attrs, slog.String("error", internalerrors.Trace(err)))...)
}
