package analyzer

import (
	"sort"

	"github.com/tovalang/tova/internal/ast"
	"github.com/tovalang/tova/internal/diagnostics"
	"github.com/tovalang/tova/internal/symbols"
	"github.com/tovalang/tova/internal/typesystem"
)

// inferPattern checks a pattern against the scrutinee type, binding the
// pattern's variables monomorphically in the returned environment.
func (a *Analyzer) inferPattern(pat ast.Pattern, scrutinee typesystem.Type, env *symbols.TypeEnvironment) (*symbols.TypeEnvironment, typesystem.Subst, error) {
	switch p := pat.(type) {
	case *ast.WildcardPattern:
		return env, typesystem.Subst{}, nil

	case *ast.IdentifierPattern:
		return env.Extend(p.Value, typesystem.MonoScheme(scrutinee)), typesystem.Subst{}, nil

	case *ast.LiteralPattern:
		var litType typesystem.Type
		switch p.Value.(type) {
		case bool:
			litType = typesystem.Bool
		case int64:
			litType = typesystem.Int
		default:
			return nil, nil, diagnostics.NewError(diagnostics.ErrT002, p.GetToken(),
				"unsupported literal pattern %v", p.Value)
		}
		s, err := typesystem.Unify(scrutinee, litType)
		if err != nil {
			return nil, nil, wrapUnifyError(p.GetToken(), err)
		}
		return env.Apply(s), s, nil

	case *ast.ConstructorPattern:
		return a.inferConstructorPattern(p, scrutinee, env)

	case *ast.TuplePattern:
		elems := make([]typesystem.Type, len(p.Elements))
		for i := range p.Elements {
			elems[i] = a.FreshVar()
		}
		s, err := typesystem.Unify(scrutinee, typesystem.TTuple{Elements: elems})
		if err != nil {
			return nil, nil, wrapUnifyError(p.GetToken(), err)
		}
		total := s
		scope := env.Apply(s)
		for i, sub := range p.Elements {
			newEnv, sSub, err := a.inferPattern(sub, elems[i].Apply(total), scope)
			if err != nil {
				return nil, nil, err
			}
			total = total.Compose(sSub)
			scope = newEnv
		}
		return scope, total, nil

	case *ast.RecordPattern:
		names := make([]string, 0, len(p.Fields))
		for name := range p.Fields {
			names = append(names, name)
		}
		sort.Strings(names)

		fields := make(map[string]typesystem.Type, len(names))
		for _, name := range names {
			fields[name] = a.FreshVar()
		}
		s, err := typesystem.Unify(scrutinee, typesystem.TRecord{Fields: fields})
		if err != nil {
			return nil, nil, wrapUnifyError(p.GetToken(), err)
		}
		total := s
		scope := env.Apply(s)
		for _, name := range names {
			newEnv, sSub, err := a.inferPattern(p.Fields[name], fields[name].Apply(total), scope)
			if err != nil {
				return nil, nil, err
			}
			total = total.Compose(sSub)
			scope = newEnv
		}
		return scope, total, nil

	default:
		return nil, nil, diagnostics.NewError(diagnostics.ErrT002, pat.GetToken(),
			"cannot check pattern %T", pat)
	}
}

func (a *Analyzer) inferConstructorPattern(p *ast.ConstructorPattern, scrutinee typesystem.Type, env *symbols.TypeEnvironment) (*symbols.TypeEnvironment, typesystem.Subst, error) {
	info, ok := a.registry.Constructor(p.Name.Value)
	if !ok {
		return nil, nil, diagnostics.WrapError(diagnostics.ErrT004, p.GetToken(),
			NewUnknownConstructorError(p.Name.Value))
	}
	if len(p.Elements) != info.Arity() {
		return nil, nil, diagnostics.WrapError(diagnostics.ErrT005, p.GetToken(),
			NewConstructorArityError(p.Name.Value, info.Arity(), len(p.Elements)))
	}

	fields, sum := a.instantiateConstructor(info)
	s, err := typesystem.Unify(scrutinee, sum)
	if err != nil {
		return nil, nil, wrapUnifyError(p.GetToken(), err)
	}
	total := s
	scope := env.Apply(s)
	for i, sub := range p.Elements {
		newEnv, sSub, err := a.inferPattern(sub, fields[i].Apply(total), scope)
		if err != nil {
			return nil, nil, err
		}
		total = total.Compose(sSub)
		scope = newEnv
	}
	return scope, total, nil
}
