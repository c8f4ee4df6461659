package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is an error that knows which HTTP status it should be reported with.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError whose business code equals the HTTP status.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Code:       statusCode,
		Message:    message,
	}
}

// NewHTTPErrorf is NewHTTPError with formatting.
func NewHTTPErrorf(statusCode int, format string, args ...any) *HTTPError {
	return NewHTTPError(statusCode, fmt.Sprintf(format, args...))
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "Bad Request")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "Too Many Requests")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Something went wrong")
)
