package typesystem

import "fmt"

// MismatchError indicates two types could not be made structurally equal.
type MismatchError struct {
	Left  Type
	Right Type
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("type mismatch: cannot unify %s with %s", e.Left, e.Right)
}

func NewMismatchError(left, right Type) *MismatchError {
	return &MismatchError{Left: left, Right: right}
}

// OccursCheckError indicates a type variable appears inside the type it
// would be bound to, which would produce an infinite type.
type OccursCheckError struct {
	Var  TVar
	Type Type
}

func (e *OccursCheckError) Error() string {
	return fmt.Sprintf("infinite type: %s occurs in %s", e.Var, e.Type)
}

func NewOccursCheckError(v TVar, t Type) *OccursCheckError {
	return &OccursCheckError{Var: v, Type: t}
}
