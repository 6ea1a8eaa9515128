package symbols

import (
	"github.com/benbjohnson/immutable"

	"github.com/tovalang/tova/internal/typesystem"
)

var emptyEnv = immutable.NewSortedMap(nil)

// TypeEnvironment maps variable names to type schemes. It is a
// persistent structure: Extend returns a new environment sharing the
// previous one, so a binding made for one branch or match arm is never
// visible to siblings.
type TypeEnvironment struct {
	m *immutable.SortedMap
}

// NewTypeEnvironment creates an empty environment.
func NewTypeEnvironment() *TypeEnvironment {
	return &TypeEnvironment{m: emptyEnv}
}

// Extend returns a new environment with name bound to scheme. The
// receiver is unchanged; an existing binding of the same name is
// shadowed in the result only.
func (e *TypeEnvironment) Extend(name string, scheme typesystem.Scheme) *TypeEnvironment {
	return &TypeEnvironment{m: e.m.Set(name, scheme)}
}

// Lookup resolves a variable name to its scheme.
func (e *TypeEnvironment) Lookup(name string) (typesystem.Scheme, bool) {
	v, ok := e.m.Get(name)
	if !ok {
		return typesystem.Scheme{}, false
	}
	return v.(typesystem.Scheme), true
}

// Apply returns a new environment with the substitution applied to
// every bound scheme.
func (e *TypeEnvironment) Apply(s typesystem.Subst) *TypeEnvironment {
	if len(s) == 0 {
		return e
	}
	m := emptyEnv
	iter := e.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		m = m.Set(k, v.(typesystem.Scheme).Apply(s))
	}
	return &TypeEnvironment{m: m}
}

// FreeTypeVariables returns the ids of every type variable free in
// some bound scheme. Generalization must never quantify over these.
func (e *TypeEnvironment) FreeTypeVariables() map[int]bool {
	vars := make(map[int]bool)
	iter := e.m.Iterator()
	for !iter.Done() {
		_, v := iter.Next()
		for _, tv := range v.(typesystem.Scheme).FreeTypeVariables() {
			vars[tv.Id] = true
		}
	}
	return vars
}

// Len returns the number of bindings.
func (e *TypeEnvironment) Len() int {
	return e.m.Len()
}
