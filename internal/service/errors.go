package service

import (
	"errors"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalid            = errors.New("invalid")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	// ErrConfirmRequired is returned when a destructive action arrives
	// without its explicit confirmation step. The upstream call has not
	// been issued.
	ErrConfirmRequired = errors.New("confirmation required")
	// ErrDuplicateLanguage is returned when one save carries two sections
	// for the same language code.
	ErrDuplicateLanguage = errors.New("duplicate language code")
	// ErrAssistantDisabled is returned when the translation assistant is
	// not configured.
	ErrAssistantDisabled = errors.New("translation assistant disabled")
	// ErrFetchFailed is returned when an external feed or article could
	// not be fetched or parsed.
	ErrFetchFailed = errors.New("fetch failed")
)

// ValidationError is an ErrInvalid with a field-level message for the form.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

func invalidf(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
