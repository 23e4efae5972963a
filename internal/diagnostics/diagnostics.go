// Package diagnostics defines the coded errors reported by the catalog
// loader and the static dimension checker.
package diagnostics

import "fmt"

type ErrorCode string

const (
	// Catalog errors
	ErrC001 ErrorCode = "C001" // Unreadable or malformed catalog
	ErrC002 ErrorCode = "C002" // Unknown base dimension (ill-formed unit)
	ErrC003 ErrorCode = "C003" // Unknown or forward dimension reference
	ErrC004 ErrorCode = "C004" // Invalid or duplicate dimension name
	ErrC005 ErrorCode = "C005" // Missing or inconsistent definition

	// Checker errors
	ErrD001 ErrorCode = "D001" // Conversion between non-equivalent dimensions
	ErrD002 ErrorCode = "D002" // Type error between measures of different dimensions
)

var codeTitles = map[ErrorCode]string{
	ErrC001: "malformed catalog",
	ErrC002: "unknown base dimension",
	ErrC003: "unknown dimension",
	ErrC004: "invalid dimension name",
	ErrC005: "inconsistent definition",
	ErrD001: "impossible conversion",
	ErrD002: "incompatible dimensions",
}

// Title is a short human label for the code.
func (c ErrorCode) Title() string {
	if t, ok := codeTitles[c]; ok {
		return t
	}
	return "error"
}

// DiagnosticError is an error tied to a code and a position. Pos is free
// form: "file.go:12:3" for source, "unitguard.yaml: dimensions[2]" for
// catalog entries.
type DiagnosticError struct {
	Code    ErrorCode
	Pos     string
	Message string
	Err     error
}

func (e *DiagnosticError) Error() string {
	if e.Pos == "" {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: [%s] %s", e.Pos, e.Code, e.Message)
}

func (e *DiagnosticError) Unwrap() error { return e.Err }

func NewError(code ErrorCode, pos, message string) *DiagnosticError {
	return &DiagnosticError{Code: code, Pos: pos, Message: message}
}

// Wrap attaches a code and position to an underlying error.
func Wrap(code ErrorCode, pos string, err error) *DiagnosticError {
	return &DiagnosticError{Code: code, Pos: pos, Message: err.Error(), Err: err}
}
