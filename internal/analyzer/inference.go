package analyzer

import (
	"github.com/tovalang/tova/internal/ast"
	"github.com/tovalang/tova/internal/diagnostics"
	"github.com/tovalang/tova/internal/symbols"
	"github.com/tovalang/tova/internal/typesystem"
)

// infer implements algorithm W. It returns the substitution learned while
// visiting expr together with expr's type; the caller is responsible for
// applying the substitution before reusing the type.
func (a *Analyzer) infer(expr ast.Expression, env *symbols.TypeEnvironment) (typesystem.Subst, typesystem.Type, error) {
	subst, t, err := a.inferExpr(expr, env)
	if err != nil {
		return nil, nil, err
	}
	a.TypeMap[expr] = t.Apply(subst)
	return subst, t, nil
}

func (a *Analyzer) inferExpr(expr ast.Expression, env *symbols.TypeEnvironment) (typesystem.Subst, typesystem.Type, error) {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		return typesystem.Subst{}, typesystem.Int, nil

	case *ast.BooleanLiteral:
		return typesystem.Subst{}, typesystem.Bool, nil

	case *ast.CharLiteral:
		return typesystem.Subst{}, typesystem.Char, nil

	case *ast.Identifier:
		scheme, ok := env.Lookup(e.Value)
		if !ok {
			return nil, nil, diagnostics.WrapError(diagnostics.ErrT001, e.GetToken(),
				NewUnboundVariableError(e.Value))
		}
		return typesystem.Subst{}, scheme.Instantiate(a), nil

	case *ast.FunctionLiteral:
		return a.inferFunction(e, env)

	case *ast.CallExpression:
		return a.inferCall(e, env)

	case *ast.LetExpression:
		return a.inferLet(e, env)

	case *ast.IfExpression:
		return a.inferIf(e, env)

	case *ast.ConstructorExpression:
		return a.inferConstructor(e, env)

	case *ast.MatchExpression:
		return a.inferMatch(e, env)

	case *ast.TupleLiteral:
		return a.inferTuple(e, env)

	case *ast.RecordLiteral:
		return a.inferRecord(e, env)

	case *ast.RangeExpression:
		return a.inferRange(e, env)

	default:
		return nil, nil, diagnostics.NewError(diagnostics.ErrT002, expr.GetToken(),
			"cannot infer a type for %T", expr)
	}
}

func (a *Analyzer) inferFunction(fn *ast.FunctionLiteral, env *symbols.TypeEnvironment) (typesystem.Subst, typesystem.Type, error) {
	paramVar := a.FreshVar()
	bodyEnv := env.Extend(fn.Parameter.Value, typesystem.MonoScheme(paramVar))
	subst, bodyType, err := a.infer(fn.Body, bodyEnv)
	if err != nil {
		return nil, nil, err
	}
	return subst, typesystem.TFunc{Param: paramVar.Apply(subst), Return: bodyType}, nil
}

func (a *Analyzer) inferCall(call *ast.CallExpression, env *symbols.TypeEnvironment) (typesystem.Subst, typesystem.Type, error) {
	s1, fnType, err := a.infer(call.Function, env)
	if err != nil {
		return nil, nil, err
	}
	s2, argType, err := a.infer(call.Argument, env.Apply(s1))
	if err != nil {
		return nil, nil, err
	}
	resultVar := a.FreshVar()
	total := s1.Compose(s2)
	s3, err := typesystem.Unify(fnType.Apply(total), typesystem.TFunc{Param: argType, Return: resultVar})
	if err != nil {
		return nil, nil, wrapUnifyError(call.GetToken(), err)
	}
	total = total.Compose(s3)
	return total, resultVar.Apply(total), nil
}

func (a *Analyzer) inferLet(let *ast.LetExpression, env *symbols.TypeEnvironment) (typesystem.Subst, typesystem.Type, error) {
	s1, valType, err := a.inferBinding(let.Name, let.Value, let.IsRec, env)
	if err != nil {
		return nil, nil, err
	}
	narrowed := env.Apply(s1)
	scheme := a.generalize(narrowed, valType.Apply(s1))
	s2, bodyType, err := a.infer(let.Body, narrowed.Extend(let.Name.Value, scheme))
	if err != nil {
		return nil, nil, err
	}
	return s1.Compose(s2), bodyType, nil
}

func (a *Analyzer) inferConstructor(ctor *ast.ConstructorExpression, env *symbols.TypeEnvironment) (typesystem.Subst, typesystem.Type, error) {
	info, ok := a.registry.Constructor(ctor.Name.Value)
	if !ok {
		return nil, nil, diagnostics.WrapError(diagnostics.ErrT004, ctor.GetToken(),
			NewUnknownConstructorError(ctor.Name.Value))
	}
	if len(ctor.Arguments) != info.Arity() {
		return nil, nil, diagnostics.WrapError(diagnostics.ErrT005, ctor.GetToken(),
			NewConstructorArityError(ctor.Name.Value, info.Arity(), len(ctor.Arguments)))
	}

	fields, sum := a.instantiateConstructor(info)
	total := typesystem.Subst{}
	scope := env
	for i, arg := range ctor.Arguments {
		s, argType, err := a.infer(arg, scope)
		if err != nil {
			return nil, nil, err
		}
		total = total.Compose(s)
		sUnify, err := typesystem.Unify(fields[i].Apply(total), argType)
		if err != nil {
			return nil, nil, wrapUnifyError(arg.GetToken(), err)
		}
		total = total.Compose(sUnify)
		scope = scope.Apply(s.Compose(sUnify))
	}
	return total, sum.Apply(total), nil
}

func (a *Analyzer) inferTuple(tuple *ast.TupleLiteral, env *symbols.TypeEnvironment) (typesystem.Subst, typesystem.Type, error) {
	total := typesystem.Subst{}
	scope := env
	elems := make([]typesystem.Type, len(tuple.Elements))
	for i, elem := range tuple.Elements {
		s, t, err := a.infer(elem, scope)
		if err != nil {
			return nil, nil, err
		}
		total = total.Compose(s)
		scope = scope.Apply(s)
		elems[i] = t
	}
	for i := range elems {
		elems[i] = elems[i].Apply(total)
	}
	return total, typesystem.TTuple{Elements: elems}, nil
}

func (a *Analyzer) inferRecord(record *ast.RecordLiteral, env *symbols.TypeEnvironment) (typesystem.Subst, typesystem.Type, error) {
	total := typesystem.Subst{}
	scope := env
	fields := make(map[string]typesystem.Type, len(record.Fields))
	// Visit fields in sorted name order so inference is deterministic
	// regardless of map iteration.
	for _, name := range record.SortedFieldNames() {
		s, t, err := a.infer(record.Fields[name], scope)
		if err != nil {
			return nil, nil, err
		}
		total = total.Compose(s)
		scope = scope.Apply(s)
		fields[name] = t
	}
	for name := range fields {
		fields[name] = fields[name].Apply(total)
	}
	return total, typesystem.TRecord{Fields: fields}, nil
}

func (a *Analyzer) inferRange(rng *ast.RangeExpression, env *symbols.TypeEnvironment) (typesystem.Subst, typesystem.Type, error) {
	s1, startType, err := a.infer(rng.Start, env)
	if err != nil {
		return nil, nil, err
	}
	sStart, err := typesystem.Unify(startType, typesystem.Int)
	if err != nil {
		return nil, nil, wrapUnifyError(rng.Start.GetToken(), err)
	}
	total := s1.Compose(sStart)
	s2, endType, err := a.infer(rng.End, env.Apply(total))
	if err != nil {
		return nil, nil, err
	}
	total = total.Compose(s2)
	sEnd, err := typesystem.Unify(endType.Apply(total), typesystem.Int)
	if err != nil {
		return nil, nil, wrapUnifyError(rng.End.GetToken(), err)
	}
	return total.Compose(sEnd), typesystem.Range, nil
}
