package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmailExists is returned when registering with an email that is taken.
	ErrEmailExists = errors.New("email already exists")
	// ErrAuthenticationFailed is returned on bad credentials at login.
	ErrAuthenticationFailed = errors.New("failed to authenticate")
	// ErrUnauthorized is returned when the caller may not act on the resource.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrGeocodeFailed is returned when address resolution fails.
	ErrGeocodeFailed = errors.New("failed to resolve address")
)

// ErrorResponse is the wire format for every failure: {"err": <detail>}.
type ErrorResponse struct {
	Err string `json:"err"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Err: e.Message}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Client-side failures such
// as a duplicate email or a bad login deliberately stay 500: the upstream API
// contract reported them that way and consumers depend on it.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusUnauthorized, ErrUnauthorized.Error())
	case errors.Is(err, ErrEmailExists):
		return NewHTTPError(http.StatusInternalServerError, ErrEmailExists.Error())
	case errors.Is(err, ErrAuthenticationFailed):
		return NewHTTPError(http.StatusInternalServerError, ErrAuthenticationFailed.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
