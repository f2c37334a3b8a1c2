package unification

// ApplyBindings produces a term in which no variable with a binding
// remains: every bound variable is replaced by (the expansion of) its
// binding, and only genuinely free variables survive. This clones term
// structure, which makes it the expensive way to read a result out of the
// store, but the output is a pure term a host can keep after discarding
// the store.
//
// Sharing in the substitution survives into the output: two occurrences of
// the same bound variable expand to the same result term. A cyclic binding
// is reported as *OccursError naming the variable that closes the cycle.
func ApplyBindings(s BindingStore, t Term) (Term, error) {
	out, err := ApplyBindingsAll(s, []Term{t})
	if err != nil {
		return nil, err
	}
	return out[0], nil
}

// ApplyBindingsAll applies the bindings to every term in ts, threading one
// visited set through the whole collection so sharing is preserved across
// terms, not just within each one.
func ApplyBindingsAll(s BindingStore, ts []Term) ([]Term, error) {
	memo := make(map[int64]rewriteState)

	var rewrite func(t Term) (Term, error)
	rewrite = func(t Term) (Term, error) {
		t = SemiPrune(s, t)
		switch tt := t.(type) {
		case *Node:
			shape, err := tt.shape.Traverse(rewrite)
			if err != nil {
				return nil, err
			}
			return &Node{shape: shape}, nil
		case *Var:
			bound, ok := s.LookupVar(tt)
			if !ok {
				return tt, nil
			}
			if st, present := memo[tt.id]; present {
				if !st.done {
					return nil, &OccursError{Var: tt, Term: st.term}
				}
				return st.term, nil
			}
			memo[tt.id] = rewriteState{term: bound}
			expanded, err := rewrite(bound)
			if err != nil {
				return nil, err
			}
			memo[tt.id] = rewriteState{done: true, term: expanded}
			return expanded, nil
		}
		return t, nil
	}

	out := make([]Term, len(ts))
	for i, t := range ts {
		expanded, err := rewrite(t)
		if err != nil {
			return nil, err
		}
		out[i] = expanded
	}
	return out, nil
}
