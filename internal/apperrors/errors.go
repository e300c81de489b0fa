package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller may not act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrUpstream indicates that the external rate provider failed or returned unusable data.
var ErrUpstream = errors.New("upstream provider error")

// ErrMissingConfiguration indicates that a required setting (e.g. the provider API key) is absent.
var ErrMissingConfiguration = errors.New("missing configuration")

// ErrUnknownCurrency indicates that a referenced currency code is not registered.
var ErrUnknownCurrency = errors.New("unknown currency")

// AppError carries an HTTP-ish status code and a client safe message next to the cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match an AppError against the sentinel of its category.
func (e *AppError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Code == http.StatusNotFound
	case ErrValidation:
		return e.Code == http.StatusBadRequest
	case ErrDuplicate:
		return e.Code == http.StatusConflict
	case ErrForbidden:
		return e.Code == http.StatusForbidden
	case ErrUnauthorized:
		return e.Code == http.StatusUnauthorized
	case ErrUpstream:
		return e.Code == http.StatusBadGateway
	case ErrMissingConfiguration:
		return e.Code == http.StatusServiceUnavailable
	}
	return false
}

func NewNotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, nil)
}

func NewValidationError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, nil)
}

func NewConflictError(message string) *AppError {
	return NewAppError(http.StatusConflict, message, nil)
}

func NewUnauthorizedError(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, nil)
}

func NewForbiddenError(message string) *AppError {
	return NewAppError(http.StatusForbidden, message, nil)
}

// NewUpstreamError wraps a provider/transport failure.
func NewUpstreamError(message string, err error) *AppError {
	return NewAppError(http.StatusBadGateway, message, err)
}

func NewMissingConfigurationError(message string) *AppError {
	return NewAppError(http.StatusServiceUnavailable, message, nil)
}

// StatusCode maps an error onto the HTTP status handlers should answer with.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrUnknownCurrency), errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrUpstream):
		return http.StatusBadGateway
	case errors.Is(err, ErrMissingConfiguration):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
