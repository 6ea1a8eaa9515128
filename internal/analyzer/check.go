package analyzer

import (
	"github.com/tovalang/tova/internal/ast"
	"github.com/tovalang/tova/internal/config"
	"github.com/tovalang/tova/internal/diagnostics"
)

// Check runs the full analysis over a program: declaration registration,
// inference and exhaustiveness checking. It returns the rendered scheme
// of the program's last expression and the accumulated warnings.
//
// Callers that need the registry, the per-node type map or staged error
// collection should assemble a pipeline themselves.
func Check(program *ast.Program, opts config.Options) (string, []diagnostics.Warning, error) {
	a := New(opts)
	if err := a.RegisterDeclarations(program); err != nil {
		return "", nil, err
	}
	rendered, err := a.Analyze(program)
	if err != nil {
		return "", a.Warnings(), err
	}
	return rendered, a.Warnings(), nil
}
