// Package errors defines the structured error type used outside the panel core:
// config loading, telemetry recordings, the params store and the terminal UI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorizing errors
const (
	ErrConfig    = "CONFIG"
	ErrTelemetry = "TELEMETRY"
	ErrParams    = "PARAMS"
	ErrUI        = "UI"
)

// Error is a failure with a category code, a one-line message, an optional
// actionable suggestion and an optional cause. Rendered as:
//
//	✗ <what failed>
//
//	  <cause>
//
//	  <how to fix it>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates a new structured error with the given code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// WrapWithCode wraps an existing error with a specific code, message, and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("✗ %s\n", e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Cause.Error()))
	}

	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Suggestion))
	}

	return b.String()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode checks if an error is a structured Error with the given code.
func IsCode(err error, code string) bool {
	return CodeOf(err) == code && code != ""
}

// CodeOf returns the code of the first structured Error in err's chain,
// or "" when there is none.
func CodeOf(err error) string {
	if err == nil {
		return ""
	}
	var sbErr *Error
	if errors.As(err, &sbErr) {
		return sbErr.Code
	}
	return ""
}
