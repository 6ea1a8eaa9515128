package analyzer

import (
	"fmt"

	"github.com/tovalang/tova/internal/ast"
	"github.com/tovalang/tova/internal/config"
	"github.com/tovalang/tova/internal/diagnostics"
	"github.com/tovalang/tova/internal/symbols"
)

// checkExhaustiveness records a warning when the arms of a match leave
// some value shapes unhandled. Gaps never stop the analysis.
func (a *Analyzer) checkExhaustiveness(match *ast.MatchExpression) error {
	patterns := make([]ast.Pattern, len(match.Arms))
	for i, arm := range match.Arms {
		patterns[i] = arm.Pattern
	}
	missing, err := MissingCases(patterns, a.registry)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		a.warnings = append(a.warnings, diagnostics.Warning{
			Token:   match.GetToken(),
			Missing: missing,
		})
	}
	return nil
}

// MissingCases computes the human-readable descriptors of the value
// shapes a pattern column fails to cover. A nil result means the column
// is exhaustive. The registry must be frozen.
//
// The analysis is deliberately shallow for tuples and records: without a
// wildcard or a binding arm they are reported as non-exhaustive, because
// enumerating their component product space is not worth the output.
func MissingCases(patterns []ast.Pattern, reg *symbols.ConstructorRegistry) ([]string, error) {
	for _, p := range patterns {
		switch p.(type) {
		case *ast.WildcardPattern, *ast.IdentifierPattern:
			return nil, nil
		}
	}
	if len(patterns) == 0 {
		return []string{config.WildcardCase}, nil
	}

	switch first := patterns[0].(type) {
	case *ast.LiteralPattern:
		switch first.Value.(type) {
		case bool:
			return missingBoolCases(patterns), nil
		default:
			// Integer literals can never cover the whole domain.
			return []string{config.OtherIntegersCase}, nil
		}
	case *ast.ConstructorPattern:
		return missingConstructorCases(patterns, reg)
	default:
		// Tuple and record columns without an irrefutable arm.
		return []string{config.WildcardCase}, nil
	}
}

func missingBoolCases(patterns []ast.Pattern) []string {
	var sawTrue, sawFalse bool
	for _, p := range patterns {
		lit, ok := p.(*ast.LiteralPattern)
		if !ok {
			continue
		}
		if v, ok := lit.Value.(bool); ok {
			if v {
				sawTrue = true
			} else {
				sawFalse = true
			}
		}
	}
	var missing []string
	if !sawTrue {
		missing = append(missing, "true")
	}
	if !sawFalse {
		missing = append(missing, "false")
	}
	return missing
}

func missingConstructorCases(patterns []ast.Pattern, reg *symbols.ConstructorRegistry) ([]string, error) {
	// appeared maps a constructor name to one sub-pattern column per
	// field, accumulated across every arm that uses it.
	appeared := make(map[string][][]ast.Pattern)
	var siblings []string

	for _, p := range patterns {
		ctor, ok := p.(*ast.ConstructorPattern)
		if !ok {
			continue
		}
		info, ok := reg.Constructor(ctor.Name.Value)
		if !ok {
			return nil, diagnostics.WrapError(diagnostics.ErrT004, ctor.GetToken(),
				NewUnknownConstructorError(ctor.Name.Value))
		}
		if siblings == nil {
			siblings = info.Siblings
		}
		columns, seen := appeared[ctor.Name.Value]
		if !seen {
			columns = make([][]ast.Pattern, info.Arity())
		}
		for i, sub := range ctor.Elements {
			columns[i] = append(columns[i], sub)
		}
		appeared[ctor.Name.Value] = columns
	}

	var missing []string
	for _, name := range siblings {
		if _, ok := appeared[name]; !ok {
			missing = append(missing, name)
		}
	}
	// Recurse per field column of each covered constructor; a gap in a
	// nested column is reported qualified by the enclosing constructor.
	for _, name := range siblings {
		columns, ok := appeared[name]
		if !ok {
			continue
		}
		for _, column := range columns {
			nested, err := MissingCases(column, reg)
			if err != nil {
				return nil, err
			}
			for _, m := range nested {
				missing = append(missing, fmt.Sprintf("%s(%s)", name, m))
			}
		}
	}
	return missing, nil
}
