package unification

// Freshen rebuilds t with every variable it reaches, free or bound,
// replaced by a newly allocated one. Occurrences of the same original
// variable map to the same fresh variable, so internal sharing survives.
// Bound variables are rebuilt by freshening their binding first and then
// allocating a fresh variable bound to the freshened result.
//
// A cyclic binding is reported as *OccursError, with the same in-progress
// discipline as ApplyBindings. Allocation failures surface as
// ErrExhaustedVariables.
func Freshen(s BindingStore, t Term) (Term, error) {
	out, err := FreshenAll(s, []Term{t})
	if err != nil {
		return nil, err
	}
	return out[0], nil
}

// FreshenAll freshens every term in ts under one shared visited set, so a
// variable occurring in several of the terms maps to a single fresh
// variable across all of them. Freshening the terms one at a time would
// sever that relationship.
func FreshenAll(s BindingStore, ts []Term) ([]Term, error) {
	memo := make(map[int64]rewriteState)

	var rebuild func(t Term) (Term, error)
	rebuild = func(t Term) (Term, error) {
		t = SemiPrune(s, t)
		switch tt := t.(type) {
		case *Node:
			shape, err := tt.shape.Traverse(rebuild)
			if err != nil {
				return nil, err
			}
			return &Node{shape: shape}, nil
		case *Var:
			if st, present := memo[tt.id]; present {
				if !st.done {
					return nil, &OccursError{Var: tt, Term: st.term}
				}
				return st.term, nil
			}
			bound, ok := s.LookupVar(tt)
			if !ok {
				fresh, err := s.FreshVar()
				if err != nil {
					return nil, err
				}
				memo[tt.id] = rewriteState{done: true, term: fresh}
				return fresh, nil
			}
			memo[tt.id] = rewriteState{term: bound}
			rebuilt, err := rebuild(bound)
			if err != nil {
				return nil, err
			}
			fresh, err := s.NewVar(rebuilt)
			if err != nil {
				return nil, err
			}
			memo[tt.id] = rewriteState{done: true, term: fresh}
			return fresh, nil
		}
		return t, nil
	}

	out := make([]Term, len(ts))
	for i, t := range ts {
		rebuilt, err := rebuild(t)
		if err != nil {
			return nil, err
		}
		out[i] = rebuilt
	}
	return out, nil
}
