package errors

import (
	"fmt"
	"net/http"

	"mangahub/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int        // HTTP status code
	ErrorCode() string    // Business error code
	Message() string      // User-friendly error message
	Details() string      // Detailed error information (optional)
	Fields() []FieldError // Per-field validation problems (optional)
}

// FieldError describes one invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
	fields    []FieldError
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Fields returns per-field validation problems
func (e *BaseError) Fields() []FieldError {
	return e.fields
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
		fields:    e.fields,
	}
}

// Is matches errors with the same business code, so copies made by WithDetails
// still compare equal to the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode && e.message == t.message
}

// NewAppError creates an error with an arbitrary HTTP status.
func NewAppError(status int, message string) *BaseError {
	return NewBaseError(status, http.StatusText(status), message, "")
}

// NewBadRequestError creates a 400 error.
func NewBadRequestError(format string, args ...any) *BaseError {
	return NewBaseError(http.StatusBadRequest, "BAD_REQUEST", fmt.Sprintf(format, args...), "")
}

// NewUnauthorizedError creates a 401 error.
func NewUnauthorizedError(message string) *BaseError {
	return NewBaseError(http.StatusUnauthorized, "UNAUTHORIZED", message, "")
}

// NewForbiddenError creates a 403 error.
func NewForbiddenError(message string) *BaseError {
	return NewBaseError(http.StatusForbidden, "FORBIDDEN", message, "")
}

// NewNotFoundError creates a 404 error.
func NewNotFoundError(format string, args ...any) *BaseError {
	return NewBaseError(http.StatusNotFound, "NOT_FOUND", fmt.Sprintf(format, args...), "")
}

// NewConflictError creates a 409 error.
func NewConflictError(format string, args ...any) *BaseError {
	return NewBaseError(http.StatusConflict, "CONFLICT", fmt.Sprintf(format, args...), "")
}

// NewTooManyRequestsError creates a 429 error.
func NewTooManyRequestsError(message string) *BaseError {
	return NewBaseError(http.StatusTooManyRequests, "TOO_MANY_REQUESTS", message, "")
}

// NewValidationError creates a 400 error carrying the invalid fields.
func NewValidationError(fields []FieldError) *BaseError {
	return &BaseError{
		httpCode:  http.StatusBadRequest,
		errorCode: "VALIDATION_FAILED",
		message:   "Validation failed",
		fields:    fields,
	}
}

// Predefined error types
var (
	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		"",
	)

	ErrAccountDeactivated = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_DEACTIVATED",
		"Account is deactivated",
		"",
	)

	ErrTokenMissing = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_MISSING",
		"No token provided",
		"",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Token has expired",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid token",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Invalid refresh token",
		"",
	)

	ErrAuthenticationRequired = NewBaseError(
		http.StatusUnauthorized,
		"AUTHENTICATION_REQUIRED",
		"Authentication required",
		"",
	)

	ErrInsufficientPermissions = NewBaseError(
		http.StatusForbidden,
		"INSUFFICIENT_PERMISSIONS",
		"Insufficient permissions",
		"",
	)

	ErrAuthUserNotFound = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_USER_NOT_FOUND",
		"User not found",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrEmailInUse = NewBaseError(
		http.StatusConflict,
		"EMAIL_IN_USE",
		"Email already in use",
		"",
	)

	ErrUserNameTaken = NewBaseError(
		http.StatusConflict,
		"USERNAME_TAKEN",
		"Username already taken",
		"",
	)

	ErrUserNameInUse = NewBaseError(
		http.StatusConflict,
		"USERNAME_IN_USE",
		"Username already in use",
		"",
	)

	ErrUserAlreadyVerified = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_VERIFIED",
		"User is already verified",
		"",
	)

	ErrPasswordMismatch = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_MISMATCH",
		"Passwords do not match",
		"",
	)

	ErrCurrentPasswordIncorrect = NewBaseError(
		http.StatusBadRequest,
		"CURRENT_PASSWORD_INCORRECT",
		"Current password is incorrect",
		"",
	)

	ErrPasswordUnchanged = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_UNCHANGED",
		"New password must be different from current password",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	ErrMatureContentNotAllowed = NewBaseError(
		http.StatusForbidden,
		"MATURE_CONTENT_NOT_ALLOWED",
		"Mature content is only available to adult users",
		"",
	)

	// Address-related errors
	ErrCityStateMismatch = NewBaseError(
		http.StatusBadRequest,
		"CITY_STATE_MISMATCH",
		"City does not belong to the specified state",
		"",
	)

	ErrStateCountryMismatch = NewBaseError(
		http.StatusBadRequest,
		"STATE_COUNTRY_MISMATCH",
		"State does not belong to the specified country",
		"",
	)

	ErrTimeZoneCountryMismatch = NewBaseError(
		http.StatusBadRequest,
		"TIMEZONE_COUNTRY_MISMATCH",
		"Time zone does not belong to the specified country",
		"",
	)

	// Catalog-related errors
	ErrMangaNotFound = NewBaseError(
		http.StatusNotFound,
		"MANGA_NOT_FOUND",
		"Manga not found",
		"",
	)

	ErrChapterNotFound = NewBaseError(
		http.StatusNotFound,
		"CHAPTER_NOT_FOUND",
		"Chapter not found",
		"",
	)

	ErrChapterExists = NewBaseError(
		http.StatusConflict,
		"CHAPTER_EXISTS",
		"Chapter number already exists for this manga",
		"",
	)

	ErrChapterMangaMismatch = NewBaseError(
		http.StatusBadRequest,
		"CHAPTER_MANGA_MISMATCH",
		"Chapter does not belong to the specified manga",
		"",
	)

	ErrPageNotFound = NewBaseError(
		http.StatusNotFound,
		"PAGE_NOT_FOUND",
		"Page not found",
		"",
	)

	ErrPageChapterMismatch = NewBaseError(
		http.StatusBadRequest,
		"PAGE_CHAPTER_MISMATCH",
		"Page does not belong to the specified chapter",
		"",
	)

	ErrTagNotFound = NewBaseError(
		http.StatusNotFound,
		"TAG_NOT_FOUND",
		"Tag not found",
		"",
	)

	ErrTagExists = NewBaseError(
		http.StatusConflict,
		"TAG_EXISTS",
		"Tag already exists",
		"",
	)

	// Community-related errors
	ErrCommentNotFound = NewBaseError(
		http.StatusNotFound,
		"COMMENT_NOT_FOUND",
		"Comment not found",
		"",
	)

	ErrCommentContext = NewBaseError(
		http.StatusBadRequest,
		"COMMENT_CONTEXT",
		"A comment must reference exactly one of mangaId or chapterId",
		"",
	)

	ErrCommentParentContext = NewBaseError(
		http.StatusBadRequest,
		"COMMENT_PARENT_CONTEXT",
		"Reply must belong to the same manga or chapter as its parent",
		"",
	)

	ErrCommentNotOwner = NewBaseError(
		http.StatusForbidden,
		"COMMENT_NOT_OWNER",
		"You can only modify your own comments",
		"",
	)

	ErrRatingNotFound = NewBaseError(
		http.StatusNotFound,
		"RATING_NOT_FOUND",
		"Rating not found",
		"",
	)

	ErrAlreadyFavorited = NewBaseError(
		http.StatusConflict,
		"ALREADY_FAVORITED",
		"Manga is already in favorites",
		"",
	)

	ErrFavoriteNotFound = NewBaseError(
		http.StatusNotFound,
		"FAVORITE_NOT_FOUND",
		"Manga is not in favorites",
		"",
	)

	ErrHistoryNotFound = NewBaseError(
		http.StatusNotFound,
		"HISTORY_NOT_FOUND",
		"Reading history not found",
		"",
	)

	// Upload-related errors
	ErrNoFileUploaded = NewBaseError(
		http.StatusBadRequest,
		"NO_FILE_UPLOADED",
		"No file uploaded",
		"",
	)

	ErrStorageFailed = NewBaseError(
		http.StatusInternalServerError,
		"STORAGE_FAILED",
		"Storage operation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrRouteNotFound = NewBaseError(
		http.StatusNotFound,
		"ROUTE_NOT_FOUND",
		"Route not found",
		"",
	)

	ErrTooManyRequests = NewBaseError(
		http.StatusTooManyRequests,
		"TOO_MANY_REQUESTS",
		"Too many requests, please try again later",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Fields returns nil; database errors carry no field information.
func (e *DatabaseExecuteError) Fields() []FieldError {
	return nil
}
