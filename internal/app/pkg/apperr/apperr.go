package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes shared across services and handlers.
const (
	CodeNotFound   = "NOT_FOUND"
	CodeForbidden  = "FORBIDDEN"
	CodeValidation = "VALIDATION"
	CodeConflict   = "CONFLICT"
	CodeUpstream   = "UPSTREAM_UNAVAILABLE"
	CodeInternal   = "INTERNAL"
)

// Error is a coded application error.
type Error struct {
	code    string
	message string
	err     error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s", e.message, e.err.Error())
	}
	return e.message
}

func (e *Error) Code() string { return e.code }

func (e *Error) Unwrap() error { return e.err }

func newError(code, message string) *Error {
	return &Error{code: code, message: message}
}

func NotFound(message string) *Error   { return newError(CodeNotFound, message) }
func Forbidden(message string) *Error  { return newError(CodeForbidden, message) }
func Validation(message string) *Error { return newError(CodeValidation, message) }
func Conflict(message string) *Error   { return newError(CodeConflict, message) }

// Upstream marks a storage or AI collaborator failure.
func Upstream(message string, err error) *Error {
	return &Error{code: CodeUpstream, message: message, err: err}
}

// Wrap keeps an existing code when err is already an *Error, otherwise
// classifies it as internal.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return &Error{code: appErr.code, message: message, err: err}
	}
	return &Error{code: CodeInternal, message: message, err: err}
}

// HTTPStatus maps an error to the status the REST layer should answer with.
// Unknown errors map to 500.
func HTTPStatus(err error) int {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.code {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeForbidden:
		return http.StatusForbidden
	case CodeValidation:
		return http.StatusBadRequest
	case CodeConflict:
		return http.StatusConflict
	case CodeUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
