package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers
var (
	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
	ErrInvalidID        = errors.New("invalid identifier")

	// Session errors
	ErrLoginRequired = errors.New("login required")

	// Operation errors
	ErrDeleteInProgress       = errors.New("delete already in progress")
	ErrBackendOperationFailed = errors.New("backend operation failed")
)

// ValidationError carries a message fit for showing to the admin as-is.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrDomainValidation
}
