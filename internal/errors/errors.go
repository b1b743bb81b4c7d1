// Package errors defines the coded errors used across the preprocessor.
//
// The run has exactly two fatal outcomes (no input sources, no aggregate
// records); everything else is file-scoped and recoverable. Fatal errors are
// package-level sentinels so callers can match them with errors.Is even
// through %w wrapping.
package errors

import (
	"errors"
	"fmt"
)

// Stable error codes. These appear in logs and in the CLI's failure output.
const (
	CodeNoSources     = "NO_SOURCES"
	CodeNoData        = "NO_DATA"
	CodeSourceSkipped = "SOURCE_SKIPPED"
	CodeConfigInvalid = "CONFIG_INVALID"
)

// ProcessingError is a coded error. Code is stable and machine-matchable,
// Message is for humans, Err carries the underlying cause when there is one.
type ProcessingError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProcessingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause to errors.Is/As.
func (e *ProcessingError) Unwrap() error {
	return e.Err
}

// Is matches any ProcessingError carrying the same code, so wrapped copies of
// a sentinel still compare equal to it.
func (e *ProcessingError) Is(target error) bool {
	var t *ProcessingError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// New creates a ProcessingError with the given code and message.
func New(code, message string) *ProcessingError {
	return &ProcessingError{Code: code, Message: message}
}

// Wrap creates a ProcessingError around an underlying cause.
func Wrap(err error, code, message string) *ProcessingError {
	return &ProcessingError{Code: code, Message: message, Err: err}
}

// Fatal run outcomes. The CLI maps these to a non-zero exit.
var (
	// ErrNoSources means discovery found no CSV or ZIP files to process.
	ErrNoSources = New(CodeNoSources, "no CSV or ZIP files found in input directory")

	// ErrNoData means every discovered source was skipped or empty and the
	// aggregate set came out empty.
	ErrNoData = New(CodeNoData, "no aggregate records produced from discovered sources")
)

// IsFatal reports whether err is one of the run-aborting conditions.
func IsFatal(err error) bool {
	return errors.Is(err, ErrNoSources) || errors.Is(err, ErrNoData)
}
