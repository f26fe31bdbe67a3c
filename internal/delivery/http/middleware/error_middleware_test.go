package middleware

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"mangahub/config"
	domainerrors "mangahub/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(env string) *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = env

	return cfg
}

func renderError(t *testing.T, env string, err error) (*httptest.ResponseRecorder, domainerrors.ErrorResponse) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/mangas/123", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewErrorMiddleware(newDiscardLogger(), newTestConfig(env)).HandleHTTPError(err, c)

	var body domainerrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestErrorMiddleware_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "app error keeps its status",
			err:     errors.Wrap(domainerrors.ErrMangaNotFound, "load manga"),
			status:  http.StatusNotFound,
			message: "Manga not found",
		},
		{
			name:    "record not found",
			err:     errors.Wrap(gorm.ErrRecordNotFound, "query"),
			status:  http.StatusNotFound,
			message: "Resource not found",
		},
		{
			name:    "expired jwt",
			err:     fmt.Errorf("parse: %w", jwt.ErrTokenExpired),
			status:  http.StatusUnauthorized,
			message: "Token has expired",
		},
		{
			name:    "malformed jwt",
			err:     fmt.Errorf("parse: %w", jwt.ErrTokenMalformed),
			status:  http.StatusUnauthorized,
			message: "Invalid token",
		},
		{
			name:    "echo not found",
			err:     echo.ErrNotFound,
			status:  http.StatusNotFound,
			message: "Route not found",
		},
		{
			name:    "echo body too large",
			err:     echo.ErrStatusRequestEntityTooLarge,
			status:  http.StatusRequestEntityTooLarge,
			message: "Request Entity Too Large",
		},
		{
			name:    "unknown error",
			err:     errors.New("connection reset"),
			status:  http.StatusInternalServerError,
			message: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := renderError(t, config.EnvTest, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.status, body.StatusCode)
			assert.Equal(t, tt.message, body.Message)
			assert.Equal(t, "/api/mangas/123", body.Path)
			assert.NotEmpty(t, body.Timestamp)
			assert.Empty(t, body.Stack)
		})
	}
}

func TestErrorMiddleware_ValidationFields(t *testing.T) {
	err := domainerrors.NewValidationError([]domainerrors.FieldError{
		{Field: "email", Message: "email must be a valid email address"},
	})

	rec, body := renderError(t, config.EnvTest, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Validation failed", body.Message)
	assert.Equal(t, []domainerrors.FieldError{{Field: "email", Message: "email must be a valid email address"}}, body.Errors)
}

func TestErrorMiddleware_Production(t *testing.T) {
	t.Run("server errors are elided", func(t *testing.T) {
		_, body := renderError(t, config.EnvProduction, domainerrors.NewAppError(http.StatusBadGateway, "upstream storage exploded"))

		assert.Equal(t, "Internal server error", body.Message)
	})

	t.Run("infrastructure messages are generic", func(t *testing.T) {
		rec, body := renderError(t, config.EnvProduction, gorm.ErrRecordNotFound)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Request failed", body.Message)
	})

	t.Run("operational messages are kept", func(t *testing.T) {
		_, body := renderError(t, config.EnvProduction, domainerrors.ErrEmailInUse)

		assert.Equal(t, "Email already in use", body.Message)
	})
}

func TestErrorMiddleware_StackInDevelopment(t *testing.T) {
	_, body := renderError(t, config.EnvDevelopment, errors.New("boom"))

	assert.Contains(t, body.Stack, "boom")
	assert.Contains(t, body.Stack, "error_middleware_test.go")
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusAccepted, "done"))

	NewErrorMiddleware(newDiscardLogger(), newTestConfig(config.EnvTest)).HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}
