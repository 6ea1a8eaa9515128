package diagnostics

import (
	"strings"

	"github.com/tovalang/tova/internal/token"
)

// Warning is an advisory finding. Warnings never abort checking and
// never change the inferred type; they are collected across the whole
// program and reported alongside the type-checking result.
type Warning struct {
	Token   token.Token
	Missing []string // missing-case descriptors, in declaration order
}

// String renders the warning in its canonical two-line form.
func (w Warning) String() string {
	return "Warning: pattern match is non-exhaustive\nMissing cases: " +
		strings.Join(w.Missing, ", ")
}
