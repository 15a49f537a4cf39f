package models

import "errors"

// Sentinel errors for missing or conflicting records. Handlers map these onto
// HTTP status classes.
var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrMatterNotFound   = errors.New("matter not found")
	ErrTaskNotFound     = errors.New("task not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailTaken       = errors.New("email already registered")
	ErrProjectCodeTaken = errors.New("project code already in use")
)

// ValidationError reports malformed caller input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError.
func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}
