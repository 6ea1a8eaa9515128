package analyzer

import (
	"errors"
	"fmt"

	"github.com/tovalang/tova/internal/diagnostics"
	"github.com/tovalang/tova/internal/token"
	"github.com/tovalang/tova/internal/typesystem"
)

// UnboundVariableError indicates a variable reference with no binding
// in scope.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable: %s", e.Name)
}

func NewUnboundVariableError(name string) *UnboundVariableError {
	return &UnboundVariableError{Name: name}
}

// UnknownConstructorError indicates a constructor name absent from the
// registry, in an expression or a pattern.
type UnknownConstructorError struct {
	Name string
}

func (e *UnknownConstructorError) Error() string {
	return fmt.Sprintf("unknown constructor: %s", e.Name)
}

func NewUnknownConstructorError(name string) *UnknownConstructorError {
	return &UnknownConstructorError{Name: name}
}

// ConstructorArityError indicates a constructor applied to the wrong
// number of arguments or sub-patterns. It is distinct from a generic
// mismatch: the constructor is known, the shape of its use is not.
type ConstructorArityError struct {
	Name     string
	Expected int
	Got      int
}

func (e *ConstructorArityError) Error() string {
	return fmt.Sprintf("constructor %s expects %d arguments, got %d", e.Name, e.Expected, e.Got)
}

func NewConstructorArityError(name string, expected, got int) *ConstructorArityError {
	return &ConstructorArityError{Name: name, Expected: expected, Got: got}
}

// wrapUnifyError converts a unification failure into a positioned
// diagnostic, distinguishing the occurs check from a plain mismatch.
func wrapUnifyError(tok token.Token, err error) *diagnostics.DiagnosticError {
	var occurs *typesystem.OccursCheckError
	if errors.As(err, &occurs) {
		return diagnostics.WrapError(diagnostics.ErrT003, tok, err)
	}
	return diagnostics.WrapError(diagnostics.ErrT002, tok, err)
}
