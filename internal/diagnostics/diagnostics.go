// Package diagnostics defines the error-value shape shared by the
// resolver and the reset checker, modeled directly on the teacher
// repository's internal/diagnostics.DiagnosticError (spec.md section 7:
// "Errors are values ... appended to a per-pass vector the host drains
// after the walk").
package diagnostics

import (
	"fmt"

	"github.com/veryl-lang/semcore/internal/token"
)

// Severity classifies a DiagnosticError. Every diagnostic this core
// produces is non-fatal (spec.md section 4.6, "Failure semantics"), but
// the field is kept so an embedding host can distinguish future warning
// classes from the present error set.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Error codes. The R-family covers name resolution (spec.md section 4.3
// Output, "ResolveError{last_found, cause}"); the C-family covers the
// always_ff reset-coverage checker (spec.md section 4.6).
const (
	ErrR001NotFound  = "R001" // cause: NotFound(name)
	ErrR002Private   = "R002" // cause: Private
	ErrR003Invisible = "R003" // cause: Invisible

	ErrC001MissingIfReset        = "C001"
	ErrC002MissingResetSignal    = "C002"
	ErrC003MissingResetStatement = "C003"
)

// DiagnosticError is a single reported problem: a stable code, the token
// it anchors to, an optional source file name (the constructors here leave
// it empty; Error prints it when a host has set it), and a human-readable
// message.
type DiagnosticError struct {
	Code     string
	Token    token.Token
	File     string
	Message  string
	Severity Severity
}

func (e *DiagnosticError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.File, e.Token.Line, e.Token.Column, e.Code, e.Message)
	}
	return fmt.Sprintf("%d:%d: %s: %s", e.Token.Line, e.Token.Column, e.Code, e.Message)
}

// NewError builds a DiagnosticError anchored at tok, at SeverityError —
// every diagnostic this core currently produces (spec.md section 4.6,
// "Failure semantics: all three errors are reported but non-fatal").
func NewError(code string, tok token.Token, message string) *DiagnosticError {
	return &DiagnosticError{Code: code, Token: tok, Message: message, Severity: SeverityError}
}

// MissingIfReset reports that a clocked process declares a reset signal
// but does not open with an if_reset branch (spec.md section 4.6).
func MissingIfReset(tok token.Token) *DiagnosticError {
	return NewError(ErrC001MissingIfReset, tok, "always_ff process with a reset signal must start with an if_reset statement")
}

// MissingResetSignal reports an if_reset branch inside a process that
// declared no reset signal.
func MissingResetSignal(tok token.Token) *DiagnosticError {
	return NewError(ErrC002MissingResetSignal, tok, "if_reset used in an always_ff process with no declared reset signal")
}

// MissingResetStatement reports a signal driven in the process body that
// is never driven in the reset branch.
func MissingResetStatement(tok token.Token, name string) *DiagnosticError {
	return NewError(ErrC003MissingResetStatement, tok, fmt.Sprintf("'%s' is driven in this always_ff process but not reset in its if_reset branch", name))
}
