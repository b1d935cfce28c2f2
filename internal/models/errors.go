package models

import "errors"

// Sentinel errors surfaced by the repository and service layers. Handlers map
// them onto HTTP status codes.
var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrSkillNotFound      = errors.New("skill not found")
	ErrEmailExists        = errors.New("email already exists")
	ErrSkillExists        = errors.New("skill already exists for this employee")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError reports client-supplied data that fails a rule before any
// write is attempted.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with the given client-facing message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
