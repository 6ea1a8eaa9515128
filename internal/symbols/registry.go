package symbols

import (
	"fmt"

	"github.com/tovalang/tova/internal/typesystem"
)

// ConstructorInfo describes one sum-type constructor as declared.
// Fields may reference the owning type's parameters through the
// placeholder variables in TypeParams; instantiating the constructor
// means substituting one fresh variable per placeholder.
type ConstructorInfo struct {
	Name       string
	TypeName   string
	TypeParams []typesystem.TVar
	Fields     []typesystem.Type
	Siblings   []string // all constructor names of the owning type, in declaration order
}

// Arity returns the declared field count.
func (c *ConstructorInfo) Arity() int {
	return len(c.Fields)
}

// ConstructorRegistry resolves constructor names to their declarations.
// It is built once from the program's type declarations, then frozen;
// inference and exhaustiveness checking only read it.
type ConstructorRegistry struct {
	constructors map[string]*ConstructorInfo
	typeCtors    map[string][]string // type name -> constructor names, declaration order
	typeParams   map[string]int      // type name -> declared parameter count
	frozen       bool
}

// NewConstructorRegistry creates an empty, unfrozen registry.
func NewConstructorRegistry() *ConstructorRegistry {
	return &ConstructorRegistry{
		constructors: make(map[string]*ConstructorInfo),
		typeCtors:    make(map[string][]string),
		typeParams:   make(map[string]int),
	}
}

// DeclareType registers a sum type name before its constructors are
// added, so constructor fields can reference the type recursively.
func (r *ConstructorRegistry) DeclareType(name string, paramCount int) error {
	if r.frozen {
		return fmt.Errorf("constructor registry is frozen")
	}
	if _, ok := r.typeParams[name]; ok {
		return fmt.Errorf("type %s is already declared", name)
	}
	r.typeParams[name] = paramCount
	return nil
}

// Define adds a constructor. Constructor names are globally unique
// across all sum types.
func (r *ConstructorRegistry) Define(info *ConstructorInfo) error {
	if r.frozen {
		return fmt.Errorf("constructor registry is frozen")
	}
	if _, ok := r.constructors[info.Name]; ok {
		return fmt.Errorf("constructor %s is already declared", info.Name)
	}
	if _, ok := r.typeParams[info.TypeName]; !ok {
		return fmt.Errorf("constructor %s belongs to undeclared type %s", info.Name, info.TypeName)
	}
	r.constructors[info.Name] = info
	r.typeCtors[info.TypeName] = append(r.typeCtors[info.TypeName], info.Name)
	return nil
}

// Freeze seals the registry. Sibling lists are completed here, once all
// of a type's constructors are known.
func (r *ConstructorRegistry) Freeze() {
	for _, info := range r.constructors {
		info.Siblings = r.typeCtors[info.TypeName]
	}
	r.frozen = true
}

// Frozen reports whether the registry has been sealed.
func (r *ConstructorRegistry) Frozen() bool {
	return r.frozen
}

// Constructor resolves a constructor name.
func (r *ConstructorRegistry) Constructor(name string) (*ConstructorInfo, bool) {
	info, ok := r.constructors[name]
	return info, ok
}

// HasType reports whether a sum type with this name was declared.
func (r *ConstructorRegistry) HasType(name string) bool {
	_, ok := r.typeParams[name]
	return ok
}

// TypeArity returns the declared parameter count of a sum type.
func (r *ConstructorRegistry) TypeArity(name string) (int, bool) {
	n, ok := r.typeParams[name]
	return n, ok
}

// TypeConstructors returns a type's constructor names in declaration
// order.
func (r *ConstructorRegistry) TypeConstructors(typeName string) ([]string, bool) {
	ctors, ok := r.typeCtors[typeName]
	return ctors, ok
}
