package analyzer

import (
	"reflect"
	"testing"

	"github.com/tovalang/tova/internal/ast"
	"github.com/tovalang/tova/internal/config"
)

func missingFor(t *testing.T, decls []ast.Statement, patterns ...ast.Pattern) []string {
	t.Helper()
	a := New(config.Default())
	if err := a.RegisterDeclarations(program(decls...)); err != nil {
		t.Fatalf("RegisterDeclarations: %v", err)
	}
	missing, err := MissingCases(patterns, a.Registry())
	if err != nil {
		t.Fatalf("MissingCases: %v", err)
	}
	return missing
}

func TestExhaustivenessIrrefutableArm(t *testing.T) {
	// A wildcard or binding arm makes any column exhaustive.
	if got := missingFor(t, nil, pInt(1), pWild()); got != nil {
		t.Errorf("wildcard column missing %v", got)
	}
	if got := missingFor(t, nil, pInt(1), pId("n")); got != nil {
		t.Errorf("binding column missing %v", got)
	}
}

func TestExhaustivenessBooleans(t *testing.T) {
	tests := []struct {
		name     string
		patterns []ast.Pattern
		want     []string
	}{
		{"both literals", []ast.Pattern{pBool(true), pBool(false)}, nil},
		{"both reversed", []ast.Pattern{pBool(false), pBool(true)}, nil},
		{"missing false", []ast.Pattern{pBool(true)}, []string{"false"}},
		{"missing true", []ast.Pattern{pBool(false)}, []string{"true"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := missingFor(t, nil, tt.patterns...)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("missing = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExhaustivenessIntegers(t *testing.T) {
	// Finitely many integer literals never cover the domain.
	got := missingFor(t, nil, pInt(0), pInt(1), pInt(2))
	want := []string{"<other integers>"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("missing = %v, want %v", got, want)
	}
}

func TestExhaustivenessConstructors(t *testing.T) {
	decls := []ast.Statement{optionDecl(), colorDecl()}

	tests := []struct {
		name     string
		patterns []ast.Pattern
		want     []string
	}{
		{
			name:     "all covered",
			patterns: []ast.Pattern{pCtor("None"), pCtor("Some", pId("n"))},
			want:     nil,
		},
		{
			name:     "missing None",
			patterns: []ast.Pattern{pCtor("Some", pId("n"))},
			want:     []string{"None"},
		},
		{
			name:     "missing in declaration order",
			patterns: []ast.Pattern{pCtor("Green")},
			want:     []string{"Red", "Blue"},
		},
		{
			name:     "nested gap is qualified",
			patterns: []ast.Pattern{pCtor("Some", pCtor("Some", pId("n"))), pCtor("None")},
			want:     []string{"Some(None)"},
		},
		{
			name: "nested columns combine across arms",
			patterns: []ast.Pattern{
				pCtor("Some", pCtor("Some", pId("n"))),
				pCtor("Some", pCtor("None")),
			},
			want: []string{"None"},
		},
		{
			name:     "nested integer literal",
			patterns: []ast.Pattern{pCtor("Some", pInt(0)), pCtor("None")},
			want:     []string{"Some(<other integers>)"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := missingFor(t, decls, tt.patterns...)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("missing = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExhaustivenessTuplesAndRecords(t *testing.T) {
	// Product shapes are reported wholesale: without an irrefutable arm
	// the column is non-exhaustive.
	got := missingFor(t, nil, pTuple(pInt(1), pBool(true)))
	want := []string{"_"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tuple missing = %v, want %v", got, want)
	}

	recPat := &ast.RecordPattern{Token: tok("{"), Fields: map[string]ast.Pattern{"x": pInt(1)}}
	got = missingFor(t, nil, recPat)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("record missing = %v, want %v", got, want)
	}
}

func TestExhaustivenessWarningIsAdvisory(t *testing.T) {
	decls := []ast.Statement{optionDecl()}
	expr := matchExpr(ctorExpr("Some", intLit(5)),
		arm(pCtor("Some", pId("n")), ident("n")),
	)
	stmts := append(append([]ast.Statement{}, decls...), exprStmt(expr))

	rendered, warnings, err := Check(program(stmts...), config.Default())
	if err != nil {
		t.Fatalf("a non-exhaustive match failed the analysis: %v", err)
	}
	if rendered != "Int" {
		t.Errorf("inferred %q, want Int", rendered)
	}
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(warnings))
	}
	if !reflect.DeepEqual(warnings[0].Missing, []string{"None"}) {
		t.Errorf("warning missing = %v, want [None]", warnings[0].Missing)
	}
}

func TestExhaustivenessCanBeDisabled(t *testing.T) {
	decls := []ast.Statement{optionDecl()}
	expr := matchExpr(ctorExpr("Some", intLit(5)),
		arm(pCtor("Some", pId("n")), ident("n")),
	)
	stmts := append(append([]ast.Statement{}, decls...), exprStmt(expr))

	opts := config.Default()
	opts.Warnings.Exhaustiveness = false
	_, warnings, err := Check(program(stmts...), opts)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("got warnings %v with the check disabled", warnings)
	}
}

func TestExhaustivenessEmptyColumn(t *testing.T) {
	got := missingFor(t, nil)
	want := []string{"_"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("missing = %v, want %v", got, want)
	}
}
