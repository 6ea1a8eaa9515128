package pipeline

import (
	"testing"

	"github.com/tovalang/tova/internal/ast"
	"github.com/tovalang/tova/internal/config"
	"github.com/tovalang/tova/internal/diagnostics"
	"github.com/tovalang/tova/internal/token"
)

type stampProcessor struct {
	name string
	log  *[]string
	fail bool
}

func (p *stampProcessor) Process(ctx *Context) *Context {
	*p.log = append(*p.log, p.name)
	if p.fail {
		ctx.AddError(diagnostics.NewError(diagnostics.ErrT002, token.Token{}, "stage %s failed", p.name))
	}
	return ctx
}

func TestPipelineRunsStagesInOrder(t *testing.T) {
	var log []string
	p := New(
		&stampProcessor{name: "first", log: &log},
		&stampProcessor{name: "second", log: &log},
	)

	ctx := p.Run(NewContext(&ast.Program{}, config.Default()))
	if ctx.HasErrors() {
		t.Fatalf("unexpected errors: %v", ctx.Errors)
	}
	if len(log) != 2 || log[0] != "first" || log[1] != "second" {
		t.Errorf("stage order = %v", log)
	}
}

func TestPipelineStopsAfterError(t *testing.T) {
	var log []string
	p := New(
		&stampProcessor{name: "first", log: &log, fail: true},
		&stampProcessor{name: "second", log: &log},
	)

	ctx := p.Run(NewContext(&ast.Program{}, config.Default()))
	if !ctx.HasErrors() {
		t.Fatalf("error was not recorded")
	}
	if len(log) != 1 {
		t.Errorf("stages after a failure still ran: %v", log)
	}
}
