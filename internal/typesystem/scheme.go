package typesystem

import (
	"fmt"
	"sort"
	"strings"
)

// FreshSupply allocates fresh type variables. A single inference pass
// owns exactly one supply; schemes never allocate variables themselves.
type FreshSupply interface {
	FreshVar() TVar
}

// Scheme is a possibly-quantified type: forall Vars. Type. A scheme
// with no quantified variables is monomorphic. Vars are kept sorted
// ascending by id.
type Scheme struct {
	Vars []TVar
	Type Type
}

// MonoScheme wraps a type in an unquantified scheme.
func MonoScheme(t Type) Scheme {
	return Scheme{Type: t}
}

// Instantiate replaces every quantified variable with a fresh one,
// consistently: repeated occurrences of the same quantified variable in
// the body map to the same fresh variable.
func (s Scheme) Instantiate(fresh FreshSupply) Type {
	if len(s.Vars) == 0 {
		return s.Type
	}
	subst := make(Subst, len(s.Vars))
	for _, v := range s.Vars {
		subst[v.Id] = fresh.FreshVar()
	}
	return s.Type.Apply(subst)
}

// Apply applies a substitution to the scheme body, ignoring bindings
// for the quantified variables.
func (s Scheme) Apply(sub Subst) Scheme {
	if len(s.Vars) == 0 {
		return Scheme{Type: s.Type.Apply(sub)}
	}
	filtered := make(Subst)
	bound := make(map[int]bool, len(s.Vars))
	for _, v := range s.Vars {
		bound[v.Id] = true
	}
	for k, v := range sub {
		if !bound[k] {
			filtered[k] = v
		}
	}
	return Scheme{Vars: s.Vars, Type: s.Type.Apply(filtered)}
}

// FreeTypeVariables returns the body's free variables minus the
// quantified ones.
func (s Scheme) FreeTypeVariables() []TVar {
	bound := make(map[int]bool, len(s.Vars))
	for _, v := range s.Vars {
		bound[v.Id] = true
	}
	free := []TVar{}
	for _, v := range s.Type.FreeTypeVariables() {
		if !bound[v.Id] {
			free = append(free, v)
		}
	}
	return free
}

// String renders the scheme. Closed schemes (no free variables outside
// the quantifier) are displayed with their variables renamed to
// t0, t1, ... in quantification order, so output is stable no matter
// what the internal counter produced.
func (s Scheme) String() string {
	if len(s.Vars) == 0 {
		return s.Type.String()
	}

	vars := s.Vars
	body := s.Type
	if len(s.FreeTypeVariables()) == 0 {
		rename := make(Subst, len(s.Vars))
		renamed := make([]TVar, len(s.Vars))
		for i, v := range s.Vars {
			renamed[i] = TVar{Id: i}
			rename[v.Id] = renamed[i]
		}
		vars = renamed
		body = body.Apply(rename)
	}

	names := make([]string, len(vars))
	for i, v := range vars {
		names[i] = v.String()
	}
	return fmt.Sprintf("forall %s. %s", strings.Join(names, ", "), body.String())
}

// SortTVars orders type variables ascending by id, in place.
func SortTVars(vars []TVar) {
	sort.Slice(vars, func(i, j int) bool {
		return vars[i].Id < vars[j].Id
	})
}
