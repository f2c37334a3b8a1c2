package unification

// Equals reports strict structural equality of two terms under the current
// bindings. Bindings are followed, but free variables are rigid: a free
// variable equals only itself, never a different variable or a structure.
// Constructor disagreement is simply inequality, never an error.
//
// The walk semi-prunes both sides, so aliased variables compare equal by
// identity without descending into the structure they share.
func Equals(s BindingStore, a, b Term) bool {
	a = SemiPrune(s, a)
	b = SemiPrune(s, b)
	switch left := a.(type) {
	case *Node:
		switch right := b.(type) {
		case *Node:
			_, same, err := left.shape.ZipMatch(right.shape, func(cl, cr Term) (Term, error) {
				if !Equals(s, cl, cr) {
					return nil, errShortCircuit
				}
				return cl, nil
			})
			return same && err == nil
		case *Var:
			rb, ok := s.LookupVar(right)
			if !ok {
				return false
			}
			return Equals(s, a, rb)
		}
	case *Var:
		switch right := b.(type) {
		case *Var:
			if left.id == right.id {
				return true
			}
			lb, lok := s.LookupVar(left)
			rb, rok := s.LookupVar(right)
			if !lok || !rok {
				return false
			}
			return Equals(s, lb, rb)
		case *Node:
			lb, ok := s.LookupVar(left)
			if !ok {
				return false
			}
			return Equals(s, lb, b)
		}
	}
	return false
}

// Equiv checks alpha-equivalence: whether a and b are equal up to a
// consistent renaming of free variables. On success it returns the
// renaming as a map from left identifiers to right identifiers; on any
// disagreement it returns (nil, false). Like Equals it never errors.
func Equiv(s BindingStore, a, b Term) (map[int64]int64, bool) {
	renaming := make(map[int64]int64)
	if !equivTerms(s, a, b, renaming) {
		return nil, false
	}
	return renaming, true
}

func equivTerms(s BindingStore, a, b Term, renaming map[int64]int64) bool {
	a = FullPrune(s, a)
	b = FullPrune(s, b)
	switch left := a.(type) {
	case *Node:
		right, ok := b.(*Node)
		if !ok {
			return false
		}
		_, same, err := left.shape.ZipMatch(right.shape, func(cl, cr Term) (Term, error) {
			if !equivTerms(s, cl, cr, renaming) {
				return nil, errShortCircuit
			}
			return cl, nil
		})
		return same && err == nil
	case *Var:
		right, ok := b.(*Var)
		if !ok {
			return false
		}
		if to, present := renaming[left.id]; present {
			return to == right.id
		}
		renaming[left.id] = right.id
		return true
	}
	return false
}
