package typesystem

import "sort"

// Unify computes the most general substitution that makes t1 and t2
// structurally equal. It is deterministic: no backtracking, no
// alternative solutions. Failures are *MismatchError or
// *OccursCheckError.
func Unify(t1, t2 Type) (Subst, error) {
	switch t1 := t1.(type) {
	case TVar:
		return Bind(t1, t2)
	case TCon:
		switch t2 := t2.(type) {
		case TVar:
			return Bind(t2, t1)
		case TCon:
			if t1.Name == t2.Name {
				return Subst{}, nil
			}
			return nil, NewMismatchError(t1, t2)
		default:
			return nil, NewMismatchError(t1, t2)
		}
	case TFunc:
		switch t2 := t2.(type) {
		case TVar:
			return Bind(t2, t1)
		case TFunc:
			s1, err := Unify(t1.Param, t2.Param)
			if err != nil {
				return nil, err
			}
			s2, err := Unify(t1.Return.Apply(s1), t2.Return.Apply(s1))
			if err != nil {
				return nil, err
			}
			return s1.Compose(s2), nil
		default:
			return nil, NewMismatchError(t1, t2)
		}
	case TTuple:
		switch t2 := t2.(type) {
		case TVar:
			return Bind(t2, t1)
		case TTuple:
			if len(t1.Elements) != len(t2.Elements) {
				return nil, NewMismatchError(t1, t2)
			}
			return unifyPairwise(t1.Elements, t2.Elements)
		default:
			return nil, NewMismatchError(t1, t2)
		}
	case TRecord:
		switch t2 := t2.(type) {
		case TVar:
			return Bind(t2, t1)
		case TRecord:
			if len(t1.Fields) != len(t2.Fields) {
				return nil, NewMismatchError(t1, t2)
			}
			// Field sets must match exactly; iterate in sorted order so
			// the threading (and any failure) is deterministic.
			keys := make([]string, 0, len(t1.Fields))
			for k := range t1.Fields {
				if _, ok := t2.Fields[k]; !ok {
					return nil, NewMismatchError(t1, t2)
				}
				keys = append(keys, k)
			}
			sort.Strings(keys)

			subst := Subst{}
			for _, k := range keys {
				s, err := Unify(t1.Fields[k].Apply(subst), t2.Fields[k].Apply(subst))
				if err != nil {
					return nil, err
				}
				subst = subst.Compose(s)
			}
			return subst, nil
		default:
			return nil, NewMismatchError(t1, t2)
		}
	case TSum:
		switch t2 := t2.(type) {
		case TVar:
			return Bind(t2, t1)
		case TSum:
			if t1.Name != t2.Name || len(t1.Args) != len(t2.Args) {
				return nil, NewMismatchError(t1, t2)
			}
			return unifyPairwise(t1.Args, t2.Args)
		default:
			return nil, NewMismatchError(t1, t2)
		}
	default:
		return nil, NewMismatchError(t1, t2)
	}
}

// unifyPairwise unifies two equal-length type lists left to right,
// threading the substitution so later components see earlier
// unifications.
func unifyPairwise(ts1, ts2 []Type) (Subst, error) {
	subst := Subst{}
	for i := range ts1 {
		s, err := Unify(ts1[i].Apply(subst), ts2[i].Apply(subst))
		if err != nil {
			return nil, err
		}
		subst = subst.Compose(s)
	}
	return subst, nil
}

// Bind binds a type variable to a type, performing the occurs check.
func Bind(tv TVar, t Type) (Subst, error) {
	if tVal, ok := t.(TVar); ok && tVal.Id == tv.Id {
		return Subst{}, nil
	}
	if OccursCheck(tv, t) {
		return nil, NewOccursCheckError(tv, t)
	}
	return Subst{tv.Id: t}, nil
}

// OccursCheck returns true if tv appears free in t.
func OccursCheck(tv TVar, t Type) bool {
	for _, v := range t.FreeTypeVariables() {
		if v.Id == tv.Id {
			return true
		}
	}
	return false
}
