package pipeline

import (
	"github.com/tovalang/tova/internal/ast"
	"github.com/tovalang/tova/internal/config"
	"github.com/tovalang/tova/internal/diagnostics"
	"github.com/tovalang/tova/internal/symbols"
	"github.com/tovalang/tova/internal/typesystem"
)

// Processor is a single pipeline stage. A stage reads what earlier
// stages left on the context and writes its own results back.
type Processor interface {
	Process(ctx *Context) *Context
}

// Context carries a program through the analysis stages.
type Context struct {
	Program *ast.Program
	Options config.Options

	// Filled by the declaration stage.
	Registry *symbols.ConstructorRegistry

	// Filled by the type-check stage.
	Types      map[ast.Node]typesystem.Type
	ResultType string

	Errors   []*diagnostics.DiagnosticError
	Warnings []diagnostics.Warning
}

func NewContext(program *ast.Program, opts config.Options) *Context {
	return &Context{Program: program, Options: opts}
}

// AddError records a hard diagnostic on the context.
func (c *Context) AddError(err *diagnostics.DiagnosticError) {
	c.Errors = append(c.Errors, err)
}

// HasErrors reports whether any stage failed.
func (c *Context) HasErrors() bool {
	return len(c.Errors) > 0
}
