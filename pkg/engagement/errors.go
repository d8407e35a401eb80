package engagement

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	ERROR_KIND_NOT_FOUND     ErrorKind = "not_found"
	ERROR_KIND_INVALID_STATE ErrorKind = "invalid_state"
	ERROR_KIND_INVALID_INPUT ErrorKind = "invalid_input"
)

// Error is the structured failure the engagement core raises at the point of
// violation. Callers map kinds to their own status codes.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func NewNotFoundError(message string) *Error {
	return &Error{Kind: ERROR_KIND_NOT_FOUND, Message: message}
}

func NewInvalidStateError(message string) *Error {
	return &Error{Kind: ERROR_KIND_INVALID_STATE, Message: message}
}

func NewInvalidInputError(message string) *Error {
	return &Error{Kind: ERROR_KIND_INVALID_INPUT, Message: message}
}

func errorKindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

func IsNotFoundError(err error) bool {
	kind, ok := errorKindOf(err)
	return ok && kind == ERROR_KIND_NOT_FOUND
}

func IsInvalidStateError(err error) bool {
	kind, ok := errorKindOf(err)
	return ok && kind == ERROR_KIND_INVALID_STATE
}

func IsInvalidInputError(err error) bool {
	kind, ok := errorKindOf(err)
	return ok && kind == ERROR_KIND_INVALID_INPUT
}
