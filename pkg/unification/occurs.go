package unification

import "errors"

// errShortCircuit aborts a Traverse or ZipMatch walk early. It never
// escapes the package; callers translate it into their own result.
var errShortCircuit = errors.New("unification: short circuit")

// OccursIn reports whether v occurs in t under the current bindings. The
// term is fully pruned first, then searched child by child in
// left-to-right short-circuit order. Cost is proportional to the size of
// the substitution reachable from t, which is why the default Unify
// prefers visited sets; UnifyOccurs pays this price on every bind.
func OccursIn(s BindingStore, v *Var, t Term) bool {
	t = FullPrune(s, t)
	switch tt := t.(type) {
	case *Var:
		return v.id == tt.id
	case *Node:
		_, err := tt.shape.Traverse(func(child Term) (Term, error) {
			if OccursIn(s, v, child) {
				return nil, errShortCircuit
			}
			return child, nil
		})
		return err != nil
	}
	return false
}

// acyclicBindVar binds v to t only if doing so cannot close a cycle.
// This is the eager discipline behind UnifyOccurs.
func acyclicBindVar(s BindingStore, v *Var, t Term) error {
	if OccursIn(s, v, t) {
		return &OccursError{Var: v, Term: t}
	}
	s.BindVar(v, t)
	return nil
}
