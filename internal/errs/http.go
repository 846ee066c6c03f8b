// Package errs defines the error shapes returned to API clients.
//
// Every failure that reaches the client is an *HTTPError:
//
//	{ "code": "NOT_FOUND", "message": "...", "errors": ["..."], "error": "..." }
//
// `errors` lists field-level validation failures and `error` carries the
// diagnostic detail of a store failure. Both are omitted when empty.
package errs

import (
	"fmt"
	"strings"
)

// FieldError is a single field-level validation failure.
type FieldError struct {
	// Field is the JSON name of the offending field (e.g. "title").
	Field string

	// Error describes the violated rule (e.g. "is required").
	Error string
}

// String renders the client-facing form: field 'title' is required.
func (f FieldError) String() string {
	return fmt.Sprintf("field '%s' %s", f.Field, f.Error)
}

// HTTPError is the error type written to API responses.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`

	// Errors holds one message per invalid field.
	Errors []string `json:"errors,omitempty"`

	// Detail is the underlying store error, for 500s.
	Detail string `json:"error,omitempty"`

	// cause is the error that produced this one; it is logged, never sent.
	cause error
}

func (e *HTTPError) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is/As.
func (e *HTTPError) Unwrap() error {
	return e.cause
}

// Is reports whether target is also an *HTTPError, regardless of contents.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	clone := *e
	clone.Message = message
	return &clone
}

// MakeUpperCaseWithUnderscores converts "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
