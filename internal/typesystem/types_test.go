package typesystem

import (
	"testing"
)

func TestTypeStrings(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		want string
	}{
		{
			name: "type variable",
			typ:  TVar{Id: 3},
			want: "t3",
		},
		{
			name: "builtin Int",
			typ:  Int,
			want: "Int",
		},
		{
			name: "function",
			typ:  TFunc{Param: Int, Return: Bool},
			want: "Int -> Bool",
		},
		{
			name: "function argument is parenthesized",
			typ:  TFunc{Param: TFunc{Param: Int, Return: Int}, Return: Bool},
			want: "(Int -> Int) -> Bool",
		},
		{
			name: "curried return is not parenthesized",
			typ:  TFunc{Param: Int, Return: TFunc{Param: Int, Return: Bool}},
			want: "Int -> Int -> Bool",
		},
		{
			name: "tuple",
			typ:  TTuple{Elements: []Type{Int, Bool, Char}},
			want: "(Int, Bool, Char)",
		},
		{
			name: "record fields are sorted",
			typ:  TRecord{Fields: map[string]Type{"y": Bool, "x": Int}},
			want: "{ x: Int, y: Bool }",
		},
		{
			name: "nullary sum",
			typ:  TSum{Name: "Color"},
			want: "Color",
		},
		{
			name: "applied sum",
			typ:  TSum{Name: "Option", Args: []Type{Int}},
			want: "Option Int",
		},
		{
			name: "nested sum argument is parenthesized",
			typ:  TSum{Name: "Option", Args: []Type{TSum{Name: "Option", Args: []Type{Int}}}},
			want: "Option (Option Int)",
		},
		{
			name: "function sum argument is parenthesized",
			typ:  TSum{Name: "Option", Args: []Type{TFunc{Param: Int, Return: Int}}},
			want: "Option (Int -> Int)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSubstApply(t *testing.T) {
	s := Subst{0: Int, 1: Bool}

	got := TFunc{Param: TVar{Id: 0}, Return: TVar{Id: 1}}.Apply(s)
	if got.String() != "Int -> Bool" {
		t.Errorf("Apply = %s, want Int -> Bool", got)
	}

	// Unbound variables survive application.
	if got := (TVar{Id: 9}).Apply(s); got.String() != "t9" {
		t.Errorf("Apply left t9 as %s", got)
	}

	// Application does not chase bindings inside the image.
	chain := Subst{0: TVar{Id: 1}}
	if got := (TVar{Id: 0}).Apply(chain); got.String() != "t1" {
		t.Errorf("Apply = %s, want t1", got)
	}
}

func TestSubstCompose(t *testing.T) {
	// s1 maps t0 -> t1, s2 maps t1 -> Int. Composition must agree with
	// applying s1 first and s2 second.
	s1 := Subst{0: TVar{Id: 1}}
	s2 := Subst{1: Int}
	composed := s1.Compose(s2)

	target := TTuple{Elements: []Type{TVar{Id: 0}, TVar{Id: 1}}}
	sequential := target.Apply(s1).Apply(s2)
	direct := target.Apply(composed)
	if direct.String() != sequential.String() {
		t.Errorf("Compose.Apply = %s, sequential = %s", direct, sequential)
	}
	if direct.String() != "(Int, Int)" {
		t.Errorf("Compose.Apply = %s, want (Int, Int)", direct)
	}
}

func TestComposeLeftBindingWins(t *testing.T) {
	// When both substitutions bind the same variable, the left one was
	// learned first and its image is refined by the right one.
	s1 := Subst{0: TVar{Id: 1}}
	s2 := Subst{0: Bool, 1: Int}
	composed := s1.Compose(s2)

	if got := (TVar{Id: 0}).Apply(composed); got.String() != "Int" {
		t.Errorf("t0 maps to %s, want Int", got)
	}
}

func TestFreeTypeVariables(t *testing.T) {
	typ := TFunc{
		Param:  TTuple{Elements: []Type{TVar{Id: 2}, TVar{Id: 0}}},
		Return: TVar{Id: 2},
	}
	free := typ.FreeTypeVariables()
	if len(free) != 2 {
		t.Fatalf("got %d free vars, want 2", len(free))
	}
	// First occurrence order, duplicates removed.
	if free[0].Id != 2 || free[1].Id != 0 {
		t.Errorf("free vars = %v, want [t2 t0]", free)
	}
}
