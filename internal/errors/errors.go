package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when no document matches a uid.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidSecret is returned when the path secret does not match the configured api_password.
	ErrInvalidSecret = errors.New("invalid secret")
	// ErrMalformedBody is returned when a request body is not well-formed JSON.
	ErrMalformedBody = errors.New("malformed JSON body")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Database and other
// unrecognized failures collapse to a 500 with no retry.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidSecret):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_SECRET")
	case errors.Is(err, ErrMalformedBody):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MALFORMED_BODY")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
