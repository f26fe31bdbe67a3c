// Package response renders the JSON envelopes shared by every handler.
package response

import (
	"net/http"
	"time"

	domainerrors "mangahub/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Success writes {message, data}.
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, domainerrors.SuccessResponse{
		Message: message,
		Data:    data,
	})
}

// Created is Success with 201.
func Created(c echo.Context, data any, message string) error {
	return Success(c, http.StatusCreated, data, message)
}

// NoContent writes an empty 204.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Error writes the error envelope. Stack is only filled by callers running in development.
func Error(c echo.Context, statusCode int, message string, fields []domainerrors.FieldError, stack string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, domainerrors.ErrorResponse{
		Message:    message,
		Errors:     fields,
		StatusCode: statusCode,
		Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
		Path:       c.Request().URL.Path,
		Stack:      stack,
	})
}
