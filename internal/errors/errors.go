// Package errors defines the stable error code system for unitgen.
package errors

import (
	"errors"
	"fmt"
	"io"
)

// Code is a stable error code string.
type Code string

// Error codes. Stable public contract.
const (
	EUsage Code = "E_USAGE"

	EHomeDir         Code = "E_HOME_DIR"          // home directory lookup failed
	EDirCreateFailed Code = "E_DIR_CREATE_FAILED" // unit directory creation failed
	EWriteFailed     Code = "E_WRITE_FAILED"      // unit file write failed
	EInternal        Code = "E_INTERNAL"
)

// UnitgenError is the standard error type for unitgen errors.
type UnitgenError struct {
	Code  Code
	Msg   string
	Cause error
}

// Error returns the stable error format: "CODE: message".
func (e *UnitgenError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *UnitgenError) Unwrap() error {
	return e.Cause
}

// New creates a new UnitgenError with the given code and message.
func New(code Code, msg string) error {
	return &UnitgenError{Code: code, Msg: msg}
}

// Wrap creates a new UnitgenError wrapping an underlying error.
func Wrap(code Code, msg string, err error) error {
	return &UnitgenError{Code: code, Msg: msg, Cause: err}
}

// GetCode extracts the error code from an error, or empty string if not a UnitgenError.
func GetCode(err error) Code {
	var ue *UnitgenError
	if errors.As(err, &ue) {
		return ue.Code
	}
	return ""
}

// AsUnitgenError returns (*UnitgenError, true) if err is or wraps a UnitgenError.
func AsUnitgenError(err error) (*UnitgenError, bool) {
	var ue *UnitgenError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

// ExitCode returns the appropriate exit code for an error.
// Returns 0 if err is nil, 2 for E_USAGE, 1 for all other errors.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if GetCode(err) == EUsage {
		return 2
	}
	return 1
}

// Print writes the error to w in the stable stderr format:
//
//	error_code: <CODE>
//	<message>
func Print(w io.Writer, err error) {
	if err == nil {
		return
	}
	var ue *UnitgenError
	if errors.As(err, &ue) {
		_, _ = fmt.Fprintf(w, "error_code: %s\n", ue.Code)
		_, _ = fmt.Fprintln(w, ue.Msg)
	} else {
		// Fallback for non-UnitgenError errors (should not happen in practice)
		_, _ = fmt.Fprintln(w, err.Error())
	}
}
