package unification

import "fmt"

// bindFunc installs a binding, or refuses with an error. Unify binds
// unconditionally; UnifyOccurs routes every bind through the occurs check.
type bindFunc func(v *Var, t Term) error

// Unify computes the most general substitution making a and b equal. On
// success it returns a term equivalent to both inputs, and the store is
// updated so that both inputs resolve to that term. On failure it returns
// *MismatchError for incompatible constructors, or *OccursError when the
// unification would construct a cyclic binding.
//
// Cycle detection uses a visited set confined to this one call: a variable
// is marked while its binding is on the current recursion spine and
// unmarked as soon as that recursion returns, so sibling subproblems start
// from a clean set. Cycles that would be created here are caught when a
// marked variable comes around again; cycles cannot preexist by store
// invariant. This avoids the per-bind cost of an eager occurs check — see
// UnifyOccurs for the eager variant.
//
// After unifying under two bound variables, the right variable is rebound
// to the newly computed term and the left variable to the right one, so
// chains collapse and a semi-prune takes either variable to the right one
// in at most one hop. Bindings committed before a failure are not rolled
// back; hosts that need atomicity unify against a store snapshot.
func Unify(s BindingStore, a, b Term) (Term, error) {
	bind := func(v *Var, t Term) error {
		s.BindVar(v, t)
		return nil
	}
	return unifyTerms(s, a, b, make(visitedSet), bind)
}

// UnifyOccurs behaves like Unify but performs an eager occurs check on
// every bind, so a cyclic unification fails at the offending bind instead
// of at a later traversal. Use it when immediate occurs failure matters
// more than the extra traversal cost.
func UnifyOccurs(s BindingStore, a, b Term) (Term, error) {
	bind := func(v *Var, t Term) error {
		return acyclicBindVar(s, v, t)
	}
	return unifyTerms(s, a, b, make(visitedSet), bind)
}

func unifyTerms(s BindingStore, tl, tr Term, seen visitedSet, bind bindFunc) (Term, error) {
	tl = SemiPrune(s, tl)
	tr = SemiPrune(s, tr)
	switch left := tl.(type) {
	case *Var:
		switch right := tr.(type) {
		case *Var:
			if left.id == right.id {
				return tr, nil
			}
			lb, lok := s.LookupVar(left)
			rb, rok := s.LookupVar(right)
			switch {
			case !lok:
				if err := bind(left, tr); err != nil {
					return nil, err
				}
				return tr, nil
			case !rok:
				if err := bind(right, tl); err != nil {
					return nil, err
				}
				return tl, nil
			default:
				if err := seen.seenAs(left, lb); err != nil {
					return nil, err
				}
				if err := seen.seenAs(right, rb); err != nil {
					seen.forget(left)
					return nil, err
				}
				merged, err := unifyTerms(s, lb, rb, seen, bind)
				seen.forget(left)
				seen.forget(right)
				if err != nil {
					return nil, err
				}
				if err := bind(right, merged); err != nil {
					return nil, err
				}
				if err := bind(left, tr); err != nil {
					return nil, err
				}
				return tr, nil
			}
		case *Node:
			lb, ok := s.LookupVar(left)
			if !ok {
				if err := bind(left, tr); err != nil {
					return nil, err
				}
				return tl, nil
			}
			if err := seen.seenAs(left, lb); err != nil {
				return nil, err
			}
			merged, err := unifyTerms(s, lb, tr, seen, bind)
			seen.forget(left)
			if err != nil {
				return nil, err
			}
			if err := bind(left, merged); err != nil {
				return nil, err
			}
			return tl, nil
		}
	case *Node:
		switch right := tr.(type) {
		case *Var:
			rb, ok := s.LookupVar(right)
			if !ok {
				if err := bind(right, tl); err != nil {
					return nil, err
				}
				return tr, nil
			}
			if err := seen.seenAs(right, rb); err != nil {
				return nil, err
			}
			merged, err := unifyTerms(s, tl, rb, seen, bind)
			seen.forget(right)
			if err != nil {
				return nil, err
			}
			if err := bind(right, merged); err != nil {
				return nil, err
			}
			return tr, nil
		case *Node:
			shape, same, err := left.shape.ZipMatch(right.shape, func(cl, cr Term) (Term, error) {
				return unifyTerms(s, cl, cr, seen, bind)
			})
			if !same {
				return nil, &MismatchError{Left: left.shape, Right: right.shape}
			}
			if err != nil {
				return nil, err
			}
			return &Node{shape: shape}, nil
		}
	}
	panic(fmt.Sprintf("unification: unexpected term type %T", tl))
}
