package models

import "errors"

var ErrNotFound = errors.New("resource not found")
var ErrForbidden = errors.New("caller does not own this resource")
var ErrUnauthorized = errors.New("missing or invalid credentials")
var ErrEmailTaken = errors.New("email already registered")

// ValidationError reports client-supplied data that failed an aggregate
// invariant (empty or over-length content). Always recoverable by fixing
// the input and resubmitting.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
