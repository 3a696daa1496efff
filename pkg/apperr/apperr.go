// Package apperr carries the error taxonomy shared by the service and
// dispatch layers. Services classify failures here; the REST handlers and
// MCP tool dispatcher are the only places a Kind becomes a status code or
// an error payload.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// Internal is an unexpected store or operation failure.
	Internal Kind = iota
	// Invalid means the input violates declared field rules.
	Invalid
	// NotFound means no record matches the identifier.
	NotFound
	// Conflict means a uniqueness invariant was violated.
	Conflict
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case NotFound:
		return "not_found"
	case Conflict:
		return "conflict"
	default:
		return "internal"
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf classifies an error; anything outside the taxonomy is Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

func IsNotFound(err error) bool { return KindOf(err) == NotFound }
func IsConflict(err error) bool { return KindOf(err) == Conflict }
