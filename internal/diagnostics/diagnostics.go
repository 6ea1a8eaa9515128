package diagnostics

import (
	"fmt"

	"github.com/tovalang/tova/internal/token"
)

// ErrorCode identifies a diagnostic category. Codes are stable and may
// be matched by tooling and tests.
type ErrorCode string

const (
	ErrT001 ErrorCode = "T001" // unbound variable
	ErrT002 ErrorCode = "T002" // type mismatch
	ErrT003 ErrorCode = "T003" // occurs check (infinite type)
	ErrT004 ErrorCode = "T004" // unknown constructor
	ErrT005 ErrorCode = "T005" // constructor arity mismatch
	ErrT006 ErrorCode = "T006" // invalid type declaration
	ErrT007 ErrorCode = "T007" // unknown type or type parameter
)

func (c ErrorCode) String() string { return string(c) }

// DiagnosticError is a hard error with a code and a source position.
// It always aborts the inference pass that produced it.
type DiagnosticError struct {
	Code    ErrorCode
	Token   token.Token
	Message string
	Cause   error
}

func (e *DiagnosticError) Error() string {
	pos := e.Token.Position()
	if pos == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Code, pos, e.Message)
}

// Unwrap exposes the structured cause (e.g. *typesystem.MismatchError)
// for errors.As matching.
func (e *DiagnosticError) Unwrap() error {
	return e.Cause
}

// NewError creates a diagnostic with a formatted message.
func NewError(code ErrorCode, tok token.Token, format string, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{
		Code:    code,
		Token:   tok,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapError creates a diagnostic around a structured error, keeping it
// reachable through Unwrap.
func WrapError(code ErrorCode, tok token.Token, err error) *DiagnosticError {
	return &DiagnosticError{
		Code:    code,
		Token:   tok,
		Message: err.Error(),
		Cause:   err,
	}
}
