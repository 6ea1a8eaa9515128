package analyzer

import (
	"github.com/tovalang/tova/internal/ast"
	"github.com/tovalang/tova/internal/config"
	"github.com/tovalang/tova/internal/diagnostics"
	"github.com/tovalang/tova/internal/symbols"
	"github.com/tovalang/tova/internal/typesystem"
)

// Analyzer holds all mutable state for one type-checking pass: the fresh
// type-variable counter, the constructor registry and the warnings that
// exhaustiveness checking accumulates. A single Analyzer instance must not
// be shared across programs.
type Analyzer struct {
	counter  int
	registry *symbols.ConstructorRegistry
	opts     config.Options
	warnings []diagnostics.Warning

	// TypeMap records the inferred type of every expression node visited,
	// after the final substitution has been applied.
	TypeMap map[ast.Node]typesystem.Type
}

func New(opts config.Options) *Analyzer {
	return &Analyzer{
		registry: symbols.NewConstructorRegistry(),
		opts:     opts,
		TypeMap:  make(map[ast.Node]typesystem.Type),
	}
}

// FreshVar returns a type variable that is distinct from every variable
// previously returned by this Analyzer.
func (a *Analyzer) FreshVar() typesystem.TVar {
	id := a.counter
	a.counter++
	return typesystem.TVar{Id: id}
}

func (a *Analyzer) Registry() *symbols.ConstructorRegistry {
	return a.registry
}

// Warnings returns the exhaustiveness warnings collected so far, in the
// order the offending match expressions were visited.
func (a *Analyzer) Warnings() []diagnostics.Warning {
	return a.warnings
}

// Analyze type-checks a whole program. Type declarations must already be
// registered (RegisterDeclarations) and the registry frozen. The returned
// string is the rendered scheme of the last expression statement, or ""
// when the program has none.
func (a *Analyzer) Analyze(program *ast.Program) (string, error) {
	if !a.registry.Frozen() {
		a.registry.Freeze()
	}

	env := symbols.NewTypeEnvironment()
	var rendered string

	for _, stmt := range program.Statements {
		switch s := stmt.(type) {
		case *ast.TypeDeclarationStatement:
			// Handled by RegisterDeclarations before inference starts.
		case *ast.LetStatement:
			newEnv, err := a.inferTopLevelLet(s, env)
			if err != nil {
				return "", err
			}
			env = newEnv
		case *ast.ExpressionStatement:
			subst, t, err := a.infer(s.Expression, env)
			if err != nil {
				return "", err
			}
			rendered = a.generalize(env.Apply(subst), t.Apply(subst)).String()
		default:
			return "", diagnostics.NewError(diagnostics.ErrT006, stmt.GetToken(),
				"unsupported top-level statement %T", stmt)
		}
	}
	return rendered, nil
}

// inferTopLevelLet binds a top-level let (or let rec) in the environment
// used by the statements that follow it.
func (a *Analyzer) inferTopLevelLet(stmt *ast.LetStatement, env *symbols.TypeEnvironment) (*symbols.TypeEnvironment, error) {
	subst, t, err := a.inferBinding(stmt.Name, stmt.Value, stmt.IsRec, env)
	if err != nil {
		return nil, err
	}
	scheme := a.generalize(env.Apply(subst), t.Apply(subst))
	a.TypeMap[stmt] = t.Apply(subst)
	return env.Apply(subst).Extend(stmt.Name.Value, scheme), nil
}

// inferBinding infers the type of a let-bound value. For recursive
// bindings the name is visible inside the value at a monomorphic type.
func (a *Analyzer) inferBinding(name *ast.Identifier, value ast.Expression, isRec bool, env *symbols.TypeEnvironment) (typesystem.Subst, typesystem.Type, error) {
	if !isRec {
		return a.infer(value, env)
	}
	selfVar := a.FreshVar()
	recEnv := env.Extend(name.Value, typesystem.MonoScheme(selfVar))
	s1, valType, err := a.infer(value, recEnv)
	if err != nil {
		return nil, nil, err
	}
	s2, err := typesystem.Unify(selfVar.Apply(s1), valType)
	if err != nil {
		return nil, nil, wrapUnifyError(value.GetToken(), err)
	}
	total := s1.Compose(s2)
	return total, valType.Apply(s2), nil
}

// generalize quantifies the variables free in t but not free in env.
// Quantified variables are ordered by ascending id so rendering is
// deterministic.
func (a *Analyzer) generalize(env *symbols.TypeEnvironment, t typesystem.Type) typesystem.Scheme {
	envFree := env.FreeTypeVariables()
	var vars []typesystem.TVar
	seen := make(map[int]bool)
	for _, tv := range t.FreeTypeVariables() {
		if envFree[tv.Id] || seen[tv.Id] {
			continue
		}
		seen[tv.Id] = true
		vars = append(vars, tv)
	}
	typesystem.SortTVars(vars)
	return typesystem.Scheme{Vars: vars, Type: t}
}

// instantiateConstructor replaces the declaring type's parameter
// placeholders with fresh variables, returning the refreshed field types
// and the constructed sum type.
func (a *Analyzer) instantiateConstructor(info *symbols.ConstructorInfo) ([]typesystem.Type, typesystem.TSum) {
	subst := make(typesystem.Subst, len(info.TypeParams))
	args := make([]typesystem.Type, len(info.TypeParams))
	for i, p := range info.TypeParams {
		fresh := a.FreshVar()
		subst[p.Id] = fresh
		args[i] = fresh
	}
	fields := make([]typesystem.Type, len(info.Fields))
	for i, f := range info.Fields {
		fields[i] = f.Apply(subst)
	}
	return fields, typesystem.TSum{Name: info.TypeName, Args: args}
}
