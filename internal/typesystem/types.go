package typesystem

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tovalang/tova/internal/config"
)

// Type is the interface for all types in our system. The variant set is
// closed: TVar, TCon, TFunc, TTuple, TRecord, TSum. Every consumer
// (unifier, pattern typer, exhaustiveness checker) switches exhaustively
// over these six shapes.
type Type interface {
	String() string
	Apply(Subst) Type
	FreeTypeVariables() []TVar
}

// TVar represents a type variable. Ids are allocated by a single
// inference pass and are totally ordered; ascending order gives the
// deterministic display and generalization order.
type TVar struct {
	Id int
}

func (t TVar) String() string {
	return fmt.Sprintf("t%d", t.Id)
}

func (t TVar) Apply(s Subst) Type {
	if replacement, ok := s[t.Id]; ok {
		return replacement
	}
	return t
}

func (t TVar) FreeTypeVariables() []TVar {
	return []TVar{t}
}

// TCon represents a builtin type constant: Int, Bool, Char, Range.
type TCon struct {
	Name string
}

// The builtin primitives. These are the only TCons the core ever
// constructs; user types are always TSum.
var (
	Int   = TCon{Name: config.IntTypeName}
	Bool  = TCon{Name: config.BoolTypeName}
	Char  = TCon{Name: config.CharTypeName}
	Range = TCon{Name: config.RangeTypeName}
)

func (t TCon) String() string {
	return t.Name
}

func (t TCon) Apply(s Subst) Type {
	return t
}

func (t TCon) FreeTypeVariables() []TVar {
	return nil
}

// TFunc represents a function type with a single parameter: a -> b.
// Multi-parameter functions are curried chains of TFunc.
type TFunc struct {
	Param  Type
	Return Type
}

func (t TFunc) String() string {
	// Parenthesize function-typed arguments: (a -> b) -> c
	param := t.Param.String()
	if _, ok := t.Param.(TFunc); ok {
		param = "(" + param + ")"
	}
	return fmt.Sprintf("%s -> %s", param, t.Return.String())
}

func (t TFunc) Apply(s Subst) Type {
	return TFunc{Param: t.Param.Apply(s), Return: t.Return.Apply(s)}
}

func (t TFunc) FreeTypeVariables() []TVar {
	vars := t.Param.FreeTypeVariables()
	vars = append(vars, t.Return.FreeTypeVariables()...)
	return uniqueTVars(vars)
}

// TTuple represents a tuple type (e.g. (Int, Bool)).
type TTuple struct {
	Elements []Type
}

func (t TTuple) String() string {
	parts := []string{}
	for _, el := range t.Elements {
		parts = append(parts, el.String())
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, ", "))
}

func (t TTuple) Apply(s Subst) Type {
	newElems := make([]Type, len(t.Elements))
	for i, e := range t.Elements {
		newElems[i] = e.Apply(s)
	}
	return TTuple{Elements: newElems}
}

func (t TTuple) FreeTypeVariables() []TVar {
	vars := []TVar{}
	for _, el := range t.Elements {
		vars = append(vars, el.FreeTypeVariables()...)
	}
	return uniqueTVars(vars)
}

// TRecord represents a record type (e.g. { x: Int, y: Bool }).
type TRecord struct {
	Fields map[string]Type
}

func (t TRecord) String() string {
	// Sort keys for deterministic output
	keys := make([]string, 0, len(t.Fields))
	for k := range t.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := []string{}
	for _, k := range keys {
		fields = append(fields, fmt.Sprintf("%s: %s", k, t.Fields[k].String()))
	}
	return fmt.Sprintf("{ %s }", strings.Join(fields, ", "))
}

func (t TRecord) Apply(s Subst) Type {
	newFields := make(map[string]Type, len(t.Fields))
	for k, v := range t.Fields {
		newFields[k] = v.Apply(s)
	}
	return TRecord{Fields: newFields}
}

func (t TRecord) FreeTypeVariables() []TVar {
	// Sort field names so the order is deterministic
	keys := make([]string, 0, len(t.Fields))
	for k := range t.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	vars := []TVar{}
	for _, k := range keys {
		vars = append(vars, t.Fields[k].FreeTypeVariables()...)
	}
	return uniqueTVars(vars)
}

// TSum represents an instantiated user-declared sum type, e.g. Option Int.
type TSum struct {
	Name string
	Args []Type
}

func (t TSum) String() string {
	if len(t.Args) == 0 {
		return t.Name
	}
	parts := []string{t.Name}
	for _, arg := range t.Args {
		s := arg.String()
		switch a := arg.(type) {
		case TFunc:
			s = "(" + s + ")"
		case TSum:
			if len(a.Args) > 0 {
				s = "(" + s + ")"
			}
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

func (t TSum) Apply(s Subst) Type {
	newArgs := make([]Type, len(t.Args))
	for i, arg := range t.Args {
		newArgs[i] = arg.Apply(s)
	}
	return TSum{Name: t.Name, Args: newArgs}
}

func (t TSum) FreeTypeVariables() []TVar {
	vars := []TVar{}
	for _, arg := range t.Args {
		vars = append(vars, arg.FreeTypeVariables()...)
	}
	return uniqueTVars(vars)
}

// Subst is a mapping from type variable ids to types.
type Subst map[int]Type

// Compose combines two substitutions such that for any type t,
// s1.Compose(s2).Apply(t) == s2.Apply(s1.Apply(t)): s1's effects are
// computed first, then s2 is applied over the result. s2's own bindings
// are absorbed so repeated application is unnecessary.
func (s1 Subst) Compose(s2 Subst) Subst {
	subst := Subst{}
	for k, v := range s2 {
		subst[k] = v
	}
	for k, v := range s1 {
		subst[k] = v.Apply(s2)
	}
	return subst
}

func uniqueTVars(vars []TVar) []TVar {
	unique := []TVar{}
	seen := map[int]bool{}
	for _, v := range vars {
		if !seen[v.Id] {
			seen[v.Id] = true
			unique = append(unique, v)
		}
	}
	return unique
}
