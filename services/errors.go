package services

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds. A ServiceError unwraps to exactly one of them.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrInternal   = errors.New("internal error")
)

// ServiceError represents a typed error with an HTTP status code.
type ServiceError struct {
	StatusCode int
	Message    string
	Kind       error
}

func (e *ServiceError) Error() string {
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Kind
}

func validationError(format string, args ...interface{}) *ServiceError {
	return &ServiceError{StatusCode: http.StatusUnprocessableEntity, Message: fmt.Sprintf(format, args...), Kind: ErrValidation}
}

func notFoundError(format string, args ...interface{}) *ServiceError {
	return &ServiceError{StatusCode: http.StatusNotFound, Message: fmt.Sprintf(format, args...), Kind: ErrNotFound}
}

func conflictError(format string, args ...interface{}) *ServiceError {
	return &ServiceError{StatusCode: http.StatusConflict, Message: fmt.Sprintf(format, args...), Kind: ErrConflict}
}

func internalError(format string, args ...interface{}) *ServiceError {
	return &ServiceError{StatusCode: http.StatusInternalServerError, Message: fmt.Sprintf(format, args...), Kind: ErrInternal}
}
