// Package errors provides structured error types for initstate.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the preview server
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// The same codes are used by the non-fatal diagnostics emitted through
// package report, so a warning and an error about the same condition can be
// matched on a single value.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeOversizedPanel, "panel %q is %d units wide", id, w)
//	if errors.Is(err, errors.ErrCodeOversizedPanel) {
//	    // Handle layout error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidInput, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidPath      Code = "INVALID_PATH"
	ErrCodeInvalidColor     Code = "INVALID_COLOR"
	ErrCodeInvalidPanelID   Code = "INVALID_PANEL_ID"
	ErrCodeOversizedPanel   Code = "OVERSIZED_PANEL"
	ErrCodeUnrecognizedType Code = "UNRECOGNIZED_PANEL_TYPE"

	// Sequence consistency conditions (usually reported as diagnostics)
	ErrCodeDanglingSource Code = "DANGLING_SELECTION_SOURCE"
	ErrCodeDuplicateID    Code = "DUPLICATE_PANEL_ID"
	ErrCodeDuplicatePanel Code = "DUPLICATE_PANEL"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// PanelError describes a problem with one or more panels of a sequence.
// Merge uses it to reject a sequence listing every offending panel at once.
type PanelError struct {
	Code   Code
	Panels []string // identifiers (or types, for unnamed panels) at fault
	Detail string
}

// Error implements the error interface.
func (e *PanelError) Error() string {
	return fmt.Sprintf("%s: %s (panels: %v)", e.Code, e.Detail, e.Panels)
}

// Unwrap exposes the panel error as an *Error so [Is] and [GetCode] work on it.
func (e *PanelError) Unwrap() error {
	return &Error{Code: e.Code, Message: e.Detail}
}
