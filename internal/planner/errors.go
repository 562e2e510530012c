package planner

import "errors"

var (
	ErrEmptyTitle    = errors.New("title is required")
	ErrInvalidName   = errors.New("name is required")
	ErrInvalidEmail  = errors.New("email must contain @")
	ErrInvalidBackup = errors.New("invalid backup format, expected a JSON array or { tasks: [] }")
	ErrThemeLocked   = errors.New("theme is locked")
	ErrUnknownTheme  = errors.New("unknown theme")
)

// ValidationError is reported inline at the point of entry; the triggering operation does not run.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}
