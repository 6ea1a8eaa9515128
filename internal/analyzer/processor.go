package analyzer

import (
	"errors"

	"github.com/tovalang/tova/internal/diagnostics"
	"github.com/tovalang/tova/internal/pipeline"
	"github.com/tovalang/tova/internal/token"
)

// DeclarationProcessor registers every type declaration of the program
// and freezes the constructor registry.
type DeclarationProcessor struct {
	Analyzer *Analyzer
}

func (p *DeclarationProcessor) Process(ctx *pipeline.Context) *pipeline.Context {
	if err := p.Analyzer.RegisterDeclarations(ctx.Program); err != nil {
		ctx.AddError(asDiagnostic(err))
		return ctx
	}
	ctx.Registry = p.Analyzer.Registry()
	return ctx
}

// TypeCheckProcessor runs inference over the whole program. The registry
// must already be frozen by a DeclarationProcessor sharing the same
// Analyzer.
type TypeCheckProcessor struct {
	Analyzer *Analyzer
}

func (p *TypeCheckProcessor) Process(ctx *pipeline.Context) *pipeline.Context {
	rendered, err := p.Analyzer.Analyze(ctx.Program)
	ctx.Warnings = append(ctx.Warnings, p.Analyzer.Warnings()...)
	if err != nil {
		ctx.AddError(asDiagnostic(err))
		return ctx
	}
	ctx.ResultType = rendered
	ctx.Types = p.Analyzer.TypeMap
	return ctx
}

func asDiagnostic(err error) *diagnostics.DiagnosticError {
	var diag *diagnostics.DiagnosticError
	if errors.As(err, &diag) {
		return diag
	}
	return diagnostics.WrapError(diagnostics.ErrT002, token.Token{}, err)
}
