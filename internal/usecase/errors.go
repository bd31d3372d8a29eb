package usecase

import (
	"errors"

	"movie-review/pkg/utils"
)

// Error kinds. Handlers map them to status codes with errors.Is.
var (
	ErrValidation         = errors.New("invalid input")
	ErrUnauthenticated    = errors.New("authentication credentials were not provided")
	ErrForbidden          = errors.New("permission denied")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("no active account found with the given credentials")
)

// Error carries the client-facing detail and, for validation failures, the
// per-field messages.
type Error struct {
	Kind   error
	Detail string
	Fields map[string]string
}

func (e *Error) Error() string { return e.Detail }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, detail string) error {
	return &Error{Kind: kind, Detail: detail}
}

func validationError(fields map[string]string) error {
	return &Error{
		Kind:   ErrValidation,
		Detail: utils.FormatValidationErrors(fields),
		Fields: fields,
	}
}

// validate runs the struct validator and wraps failures as ErrValidation.
func validate(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return validationError(errs)
	}
	return nil
}

var (
	errNotFound     = newError(ErrNotFound, "Not found.")
	errInvalidToken = newError(ErrUnauthenticated, "Token is invalid or expired")
)

// ErrorDetail returns the detail to show for err, or "" when err carries none.
func ErrorDetail(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Detail
	}
	return ""
}

// ErrorFields returns per-field validation messages, if any.
func ErrorFields(err error) map[string]string {
	var e *Error
	if errors.As(err, &e) {
		return e.Fields
	}
	return nil
}
