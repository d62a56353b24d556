package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrStorage    = errors.New("storage access failed")
)

type Error struct {
	Err     error
	Message string
	Field   string // optional: field causing the error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation returns an error the caller is expected to surface to the
// user. It matches ErrValidation under errors.Is.
func Validation(field, message string) *Error {
	return &Error{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

func Storage(err error, op string) *Error {
	return &Error{
		Err:     ErrStorage,
		Message: fmt.Sprintf("%s: %v", op, err),
	}
}
