package diagnostics

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorReset  = "\033[0m"
)

// Printer renders diagnostics to a stream, optionally colorized.
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter creates a printer for w. Mode is "auto", "always", or
// "never"; in auto mode color is enabled only when w is a terminal.
func NewPrinter(w io.Writer, mode string) *Printer {
	color := false
	switch mode {
	case "always":
		color = true
	case "never":
		color = false
	default:
		if f, ok := w.(*os.File); ok {
			color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
	}
	return &Printer{w: w, color: color}
}

// PrintError writes a hard error, prefixed red when colorized.
func (p *Printer) PrintError(err error) {
	if p.color {
		fmt.Fprintf(p.w, "%sError:%s %s\n", colorRed, colorReset, err)
		return
	}
	fmt.Fprintf(p.w, "Error: %s\n", err)
}

// PrintWarning writes an advisory warning in its canonical form. The
// "Warning:" prefix is part of the canonical text, so only the color
// differs between modes.
func (p *Printer) PrintWarning(w Warning) {
	text := w.String()
	if p.color {
		fmt.Fprintf(p.w, "%s%s%s\n", colorYellow, text, colorReset)
		return
	}
	fmt.Fprintln(p.w, text)
}
