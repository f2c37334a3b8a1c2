package unification

import "errors"

// Subsumes reports whether a is at most as defined as b: whether some
// substitution makes a equal to b while refining only a's side. Free
// variables of a may be bound to match b; b is never refined, so a
// structure on the left facing a free variable on the right is an
// immediate false.
//
// Like Unify, a successful or partially successful call leaves its
// bindings in the store. Callers that must not keep them run the check
// against a store snapshot. Constructor disagreement is a false result,
// never an error; the only error is *OccursError from the visited-set
// discipline it shares with Unify.
func Subsumes(s BindingStore, a, b Term) (bool, error) {
	return subsumeTerms(s, a, b, make(visitedSet))
}

func subsumeTerms(s BindingStore, tl, tr Term, seen visitedSet) (bool, error) {
	tl = SemiPrune(s, tl)
	tr = SemiPrune(s, tr)
	switch left := tl.(type) {
	case *Var:
		switch right := tr.(type) {
		case *Var:
			if left.id == right.id {
				return true, nil
			}
			lb, lok := s.LookupVar(left)
			rb, rok := s.LookupVar(right)
			if !lok {
				s.BindVar(left, tr)
				return true, nil
			}
			if !rok {
				// The left side is already more defined than the free
				// variable on the right, and the right side cannot be
				// refined.
				return false, nil
			}
			if err := seen.seenAs(left, lb); err != nil {
				return false, err
			}
			if err := seen.seenAs(right, rb); err != nil {
				seen.forget(left)
				return false, err
			}
			res, err := subsumeTerms(s, lb, rb, seen)
			seen.forget(left)
			seen.forget(right)
			return res, err
		case *Node:
			lb, ok := s.LookupVar(left)
			if !ok {
				s.BindVar(left, tr)
				return true, nil
			}
			if err := seen.seenAs(left, lb); err != nil {
				return false, err
			}
			res, err := subsumeTerms(s, lb, tr, seen)
			seen.forget(left)
			return res, err
		}
	case *Node:
		switch right := tr.(type) {
		case *Var:
			return false, nil
		case *Node:
			_, same, err := left.shape.ZipMatch(right.shape, func(cl, cr Term) (Term, error) {
				ok, serr := subsumeTerms(s, cl, cr, seen)
				if serr != nil {
					return nil, serr
				}
				if !ok {
					return nil, errShortCircuit
				}
				return cl, nil
			})
			if !same || errors.Is(err, errShortCircuit) {
				return false, nil
			}
			if err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}
