package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is an error that carries the status code and message returned to API clients.
type HTTPError struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// NewHTTPError creates an HTTPError whose response status equals code.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message, StatusCode: code}
}

// NewHTTPErrorWithStatus creates an HTTPError with an application code distinct from the HTTP status.
func NewHTTPErrorWithStatus(code int, message string, status int) *HTTPError {
	return &HTTPError{Code: code, Message: message, StatusCode: status}
}

var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "not found")
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "bad request")
)
