// Package errors provides custom error types for the Money Tracker API.
// All service-layer errors should use AppError so handlers and clients can
// map them onto consistent responses without leaking internal details.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target is an AppError with the same code, so that
// errors.Is(err, ErrNotFound) holds for every not-found variant.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// FromStatus maps an HTTP status code returned by a remote store onto the
// matching sentinel. Anything that is not a client error is a transport failure.
func FromStatus(status int, message string) *AppError {
	var sentinel *AppError
	switch status {
	case http.StatusBadRequest:
		sentinel = ErrValidation
	case http.StatusNotFound:
		sentinel = ErrNotFound
	case http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	default:
		sentinel = ErrTransport
	}
	if message == "" {
		return sentinel
	}
	return WithMessage(sentinel, message)
}

// General errors.
var (
	ErrValidation     = &AppError{Code: "VALIDATION_ERROR", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrTransport      = &AppError{Code: "TRANSPORT_ERROR", Message: "Transaction store unreachable", StatusCode: http.StatusBadGateway}
	ErrUnauthorized   = &AppError{Code: "UNAUTHORIZED", Message: "Invalid or missing API key", StatusCode: http.StatusUnauthorized}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Resource errors share the NOT_FOUND code.
var (
	ErrTransactionNotFound = &AppError{Code: "NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
	ErrCategoryNotFound    = &AppError{Code: "NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
	ErrRouteNotFound       = &AppError{Code: "NOT_FOUND", Message: "Route not found", StatusCode: http.StatusNotFound}
)
