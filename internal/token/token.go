package token

import "fmt"

// Token carries the source position of an AST node. The parser that
// produces the AST fills these in; the analyzer only reads them when
// rendering diagnostics.
type Token struct {
	Lexeme string
	Line   int
	Column int
}

// Position renders "line L:C", or an empty string for a zero token
// (synthetic nodes built in tests have no position).
func (t Token) Position() string {
	if t.Line == 0 {
		return ""
	}
	return fmt.Sprintf("line %d:%d", t.Line, t.Column)
}
