package diagnostics

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/tovalang/tova/internal/token"
)

func TestDiagnosticErrorFormat(t *testing.T) {
	tok := token.Token{Lexeme: "x", Line: 3, Column: 7}
	err := NewError(ErrT001, tok, "unbound variable: %s", "x")

	want := "T001: line 3:7: unbound variable: x"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestDiagnosticErrorWithoutPosition(t *testing.T) {
	err := NewError(ErrT002, token.Token{}, "type mismatch")
	if strings.Contains(err.Error(), "line") {
		t.Errorf("zero token rendered a position: %q", err.Error())
	}
}

func TestWrapErrorPreservesCause(t *testing.T) {
	cause := errors.New("boom")
	err := WrapError(ErrT003, token.Token{Line: 1, Column: 1}, cause)
	if !errors.Is(err, cause) {
		t.Errorf("wrapped error lost its cause")
	}
}

func TestWarningString(t *testing.T) {
	w := Warning{Missing: []string{"None", "Some(None)"}}
	want := "Warning: pattern match is non-exhaustive\nMissing cases: None, Some(None)"
	if w.String() != want {
		t.Errorf("String() = %q, want %q", w.String(), want)
	}
}

func TestPrinterPlain(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, "never")

	p.PrintError(errors.New("type mismatch: cannot unify Int with Bool"))
	p.PrintWarning(Warning{Missing: []string{"None"}})

	out := buf.String()
	if !strings.Contains(out, "Error: type mismatch: cannot unify Int with Bool\n") {
		t.Errorf("error output = %q", out)
	}
	if !strings.Contains(out, "Missing cases: None\n") {
		t.Errorf("warning output = %q", out)
	}
	if strings.Contains(out, "\033[") {
		t.Errorf("color escapes in never mode: %q", out)
	}
}

func TestPrinterAlways(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, "always")
	p.PrintError(errors.New("boom"))
	if !strings.Contains(buf.String(), "\033[31m") {
		t.Errorf("no red escape in always mode: %q", buf.String())
	}
}

func TestPrinterAutoNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, "auto")
	p.PrintWarning(Warning{Missing: []string{"_"}})
	if strings.Contains(buf.String(), "\033[") {
		t.Errorf("auto mode colorized a buffer: %q", buf.String())
	}
}
