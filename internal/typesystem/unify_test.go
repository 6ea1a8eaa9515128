package typesystem

import (
	"errors"
	"testing"
)

func mustUnify(t *testing.T, t1, t2 Type) Subst {
	t.Helper()
	s, err := Unify(t1, t2)
	if err != nil {
		t.Fatalf("Unify(%s, %s) failed: %v", t1, t2, err)
	}
	return s
}

func mustFail(t *testing.T, t1, t2 Type) error {
	t.Helper()
	_, err := Unify(t1, t2)
	if err == nil {
		t.Fatalf("Unify(%s, %s) succeeded, want error", t1, t2)
	}
	return err
}

func TestUnifyPrimitives(t *testing.T) {
	s := mustUnify(t, Int, Int)
	if len(s) != 0 {
		t.Errorf("unifying identical constants produced %v, want empty", s)
	}

	err := mustFail(t, Int, Bool)
	var mismatch *MismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("error type = %T, want *MismatchError", err)
	}
	if mismatch.Left.String() != "Int" || mismatch.Right.String() != "Bool" {
		t.Errorf("mismatch carries %s / %s", mismatch.Left, mismatch.Right)
	}
}

func TestUnifyVariableBinding(t *testing.T) {
	s := mustUnify(t, TVar{Id: 0}, Int)
	if got := (TVar{Id: 0}).Apply(s); got.String() != "Int" {
		t.Errorf("t0 bound to %s, want Int", got)
	}

	// Symmetric: the variable on the right binds the same way.
	s = mustUnify(t, Int, TVar{Id: 0})
	if got := (TVar{Id: 0}).Apply(s); got.String() != "Int" {
		t.Errorf("t0 bound to %s, want Int", got)
	}

	// A variable against itself learns nothing.
	s = mustUnify(t, TVar{Id: 1}, TVar{Id: 1})
	if len(s) != 0 {
		t.Errorf("self-unification produced %v, want empty", s)
	}
}

func TestUnifyOccursCheck(t *testing.T) {
	err := mustFail(t, TVar{Id: 0}, TFunc{Param: TVar{Id: 0}, Return: Int})
	var occurs *OccursCheckError
	if !errors.As(err, &occurs) {
		t.Fatalf("error type = %T, want *OccursCheckError", err)
	}
	if occurs.Var.Id != 0 {
		t.Errorf("occurs check reports %s", occurs.Var)
	}
}

func TestUnifyFunctions(t *testing.T) {
	// (t0 -> Bool) ~ (Int -> t1)
	s := mustUnify(t,
		TFunc{Param: TVar{Id: 0}, Return: Bool},
		TFunc{Param: Int, Return: TVar{Id: 1}},
	)
	if got := (TVar{Id: 0}).Apply(s); got.String() != "Int" {
		t.Errorf("t0 = %s, want Int", got)
	}
	if got := (TVar{Id: 1}).Apply(s); got.String() != "Bool" {
		t.Errorf("t1 = %s, want Bool", got)
	}
}

func TestUnifyTuples(t *testing.T) {
	s := mustUnify(t,
		TTuple{Elements: []Type{TVar{Id: 0}, TVar{Id: 0}}},
		TTuple{Elements: []Type{Int, TVar{Id: 1}}},
	)
	// Threading: the second column sees t0 = Int from the first.
	if got := (TVar{Id: 1}).Apply(s); got.String() != "Int" {
		t.Errorf("t1 = %s, want Int", got)
	}

	mustFail(t,
		TTuple{Elements: []Type{Int}},
		TTuple{Elements: []Type{Int, Int}},
	)
}

func TestUnifyRecords(t *testing.T) {
	s := mustUnify(t,
		TRecord{Fields: map[string]Type{"x": TVar{Id: 0}, "y": Bool}},
		TRecord{Fields: map[string]Type{"x": Int, "y": TVar{Id: 1}}},
	)
	if got := (TVar{Id: 0}).Apply(s); got.String() != "Int" {
		t.Errorf("t0 = %s, want Int", got)
	}
	if got := (TVar{Id: 1}).Apply(s); got.String() != "Bool" {
		t.Errorf("t1 = %s, want Bool", got)
	}

	// Same size but different field sets must not unify.
	mustFail(t,
		TRecord{Fields: map[string]Type{"x": Int}},
		TRecord{Fields: map[string]Type{"y": Int}},
	)
}

func TestUnifySums(t *testing.T) {
	s := mustUnify(t,
		TSum{Name: "Option", Args: []Type{TVar{Id: 0}}},
		TSum{Name: "Option", Args: []Type{Int}},
	)
	if got := (TVar{Id: 0}).Apply(s); got.String() != "Int" {
		t.Errorf("t0 = %s, want Int", got)
	}

	mustFail(t,
		TSum{Name: "Option", Args: []Type{Int}},
		TSum{Name: "Result", Args: []Type{Int}},
	)
	mustFail(t, TSum{Name: "Option", Args: []Type{Int}}, Int)
}
