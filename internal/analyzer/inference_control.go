package analyzer

import (
	"github.com/tovalang/tova/internal/ast"
	"github.com/tovalang/tova/internal/symbols"
	"github.com/tovalang/tova/internal/typesystem"
)

// inferIf requires the condition to be Bool and both branches to unify to
// a single type. There is no implicit widening between branches.
func (a *Analyzer) inferIf(ifExpr *ast.IfExpression, env *symbols.TypeEnvironment) (typesystem.Subst, typesystem.Type, error) {
	s1, condType, err := a.infer(ifExpr.Condition, env)
	if err != nil {
		return nil, nil, err
	}
	sCond, err := typesystem.Unify(condType, typesystem.Bool)
	if err != nil {
		return nil, nil, wrapUnifyError(ifExpr.Condition.GetToken(), err)
	}
	total := s1.Compose(sCond)

	s2, thenType, err := a.infer(ifExpr.Consequence, env.Apply(total))
	if err != nil {
		return nil, nil, err
	}
	total = total.Compose(s2)

	s3, elseType, err := a.infer(ifExpr.Alternative, env.Apply(total))
	if err != nil {
		return nil, nil, err
	}
	total = total.Compose(s3)

	sBranch, err := typesystem.Unify(thenType.Apply(total), elseType.Apply(total))
	if err != nil {
		return nil, nil, wrapUnifyError(ifExpr.GetToken(), err)
	}
	total = total.Compose(sBranch)
	return total, thenType.Apply(total), nil
}

// inferMatch types the scrutinee, then every arm's pattern against it and
// every arm's body against a shared result variable. After typing, the
// arms are checked for exhaustiveness; a gap produces a warning, never an
// error.
func (a *Analyzer) inferMatch(match *ast.MatchExpression, env *symbols.TypeEnvironment) (typesystem.Subst, typesystem.Type, error) {
	total, scrutType, err := a.infer(match.Expression, env)
	if err != nil {
		return nil, nil, err
	}
	resultVar := a.FreshVar()

	for _, arm := range match.Arms {
		armEnv, sPat, err := a.inferPattern(arm.Pattern, scrutType.Apply(total), env.Apply(total))
		if err != nil {
			return nil, nil, err
		}
		total = total.Compose(sPat)

		sBody, bodyType, err := a.infer(arm.Expression, armEnv.Apply(sPat))
		if err != nil {
			return nil, nil, err
		}
		total = total.Compose(sBody)

		sResult, err := typesystem.Unify(resultVar.Apply(total), bodyType.Apply(total))
		if err != nil {
			return nil, nil, wrapUnifyError(arm.Expression.GetToken(), err)
		}
		total = total.Compose(sResult)
	}

	if a.opts.Warnings.Exhaustiveness {
		if err := a.checkExhaustiveness(match); err != nil {
			return nil, nil, err
		}
	}
	return total, resultVar.Apply(total), nil
}
