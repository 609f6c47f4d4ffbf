package domain

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Callers match with errors.Is to decide how to
// surface a failure; pkg/response maps them to HTTP status classes.
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("authentication required")
	ErrForbidden    = errors.New("permission denied")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state transition")
	ErrUpstream     = errors.New("upstream failure")
)

// DomainError is a business-rule failure with a caller-safe message.
type DomainError struct {
	Err     error
	Message string
}

func (e *DomainError) Error() string { return e.Message }

func (e *DomainError) Unwrap() error { return e.Err }

// NewValidationError reports invalid caller input.
func NewValidationError(message string) *DomainError {
	return &DomainError{Err: ErrValidation, Message: message}
}

// NewUnauthorizedError reports a missing or invalid caller identity.
func NewUnauthorizedError(message string) *DomainError {
	return &DomainError{Err: ErrUnauthorized, Message: message}
}

// NewForbiddenError reports an authenticated caller acting outside its rights.
func NewForbiddenError(message string) *DomainError {
	return &DomainError{Err: ErrForbidden, Message: message}
}

// NewNotFoundError reports a missing resource.
func NewNotFoundError(resource, id string) *DomainError {
	return &DomainError{Err: ErrNotFound, Message: fmt.Sprintf("%s %s not found", resource, id)}
}

// NewConflictError reports a state clash with existing data.
func NewConflictError(message string) *DomainError {
	return &DomainError{Err: ErrConflict, Message: message}
}

// NewInvalidStateError reports an illegal aggregate transition.
func NewInvalidStateError(current, target string) *DomainError {
	return &DomainError{
		Err:     ErrInvalidState,
		Message: fmt.Sprintf("cannot transition from %s to %s", current, target),
	}
}

// NewStateError is NewInvalidStateError with a tailored message.
func NewStateError(message string) *DomainError {
	return &DomainError{Err: ErrInvalidState, Message: message}
}

// NewUpstreamError reports a failure at an external boundary (payment gateway).
func NewUpstreamError(message string) *DomainError {
	return &DomainError{Err: ErrUpstream, Message: message}
}
