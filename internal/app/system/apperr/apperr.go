// Package apperr defines the application error taxonomy.
//
// Handlers and stores return *Error values classified by Kind; the
// webjson error writer maps each kind to an HTTP status and a JSON
// body without the handler knowing about HTTP at all.
package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies an error for HTTP status mapping.
type Kind int

const (
	// Validation covers malformed or semantically invalid input (400).
	Validation Kind = iota
	// Unauthenticated covers missing or invalid credentials (401).
	Unauthenticated
	// Forbidden covers authenticated callers lacking access (403).
	Forbidden
	// NotFound covers missing resources (404).
	NotFound
	// Internal covers unexpected failures (500). The message shown to
	// the client is generic; the real error goes to the log.
	Internal
)

// Error is a classified application error with a client-safe message.
type Error struct {
	Kind    Kind
	Message string
	// Err is the underlying cause, kept for logging only.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an error of the given kind with a client-safe message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches an underlying cause to a classified error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Validationf is shorthand for the most common handler case.
func Validationf(message string) *Error {
	return &Error{Kind: Validation, Message: message}
}

// Status maps an error to the HTTP status it should produce.
// Unclassified errors map to 500.
func Status(err error) int {
	var ae *Error
	if !errors.As(err, &ae) {
		return http.StatusInternalServerError
	}
	switch ae.Kind {
	case Validation:
		return http.StatusBadRequest
	case Unauthenticated:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ClientMessage returns the message safe to show the caller.
// Unclassified and Internal errors yield a generic message.
func ClientMessage(err error) string {
	var ae *Error
	if errors.As(err, &ae) && ae.Kind != Internal {
		return ae.Message
	}
	return "Internal Server Error"
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == kind
}
