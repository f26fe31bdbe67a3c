package errors

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Message    string       `json:"message"`
	Errors     []FieldError `json:"errors,omitempty"` // Per-field validation problems
	StatusCode int          `json:"statusCode"`
	Timestamp  string       `json:"timestamp"`
	Path       string       `json:"path"`
	Stack      string       `json:"stack,omitempty"` // Development only
}
