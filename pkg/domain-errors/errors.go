// Package dErrors carries domain error semantics across layer boundaries.
// Services return these so transports can map them to status codes without
// string matching.
package dErrors

import (
	"errors"
	"fmt"
)

// Code classifies a domain error. Codes are stable API; messages are not.
type Code string

const (
	CodeBadRequest         Code = "BAD_REQUEST"
	CodeInvalidInput       Code = "INVALID_INPUT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeConflict           Code = "CONFLICT"
	CodeUnauthorized       Code = "UNAUTHORIZED"
	CodeForbidden          Code = "FORBIDDEN"
	CodeInvariantViolation Code = "INVARIANT_VIOLATION"
	CodeInternal           Code = "INTERNAL"

	// CodeAuthentication covers both a wrong password and an undecryptable
	// key blob. The conflation is deliberate: distinguishing the two would
	// tell a caller whether the stored ciphertext is intact, which is more
	// than an unauthenticated party is allowed to learn. Do not split it.
	CodeAuthentication Code = "AUTHENTICATION_FAILED"

	// CodeChainUnavailable marks a registry/chain call failure. It is never
	// fatal to a signing response; orchestration records it and moves on.
	CodeChainUnavailable Code = "CHAIN_UNAVAILABLE"
)

// Error is the concrete domain error. Prefer the package helpers over
// constructing it directly.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// New creates a domain error with a code and message.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying cause.
func Wrap(cause error, code Code, message string) error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// HasCode reports whether err (or anything it wraps) carries the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// Is is a readability alias for HasCode used at transport boundaries.
func Is(err error, code Code) bool { return HasCode(err, code) }

// CodeOf extracts the code from err, defaulting to CodeInternal for
// non-domain errors.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}
