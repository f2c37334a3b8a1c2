package unification

import "sort"

// GetFreeVars collects the variables reachable from t whose current
// binding is absent, following bindings transitively. The result is in
// ascending identifier order, each variable exactly once.
//
// The walk suppresses revisits by identifier, so it terminates even when
// the bindings are cyclic. It never fails.
func GetFreeVars(s BindingStore, t Term) []*Var {
	return GetFreeVarsAll(s, []Term{t})
}

// GetFreeVarsAll collects the free variables reachable from any of the
// given terms, deduplicated across the whole collection.
func GetFreeVarsAll(s BindingStore, ts []Term) []*Var {
	seen := make(map[int64]bool)
	free := make(map[int64]*Var)

	var walk func(t Term)
	walk = func(t Term) {
		switch tt := t.(type) {
		case *Node:
			tt.shape.Traverse(func(child Term) (Term, error) {
				walk(child)
				return child, nil
			})
		case *Var:
			if seen[tt.id] {
				return
			}
			seen[tt.id] = true
			if bound, ok := s.LookupVar(tt); ok {
				walk(bound)
			} else {
				free[tt.id] = tt
			}
		}
	}
	for _, t := range ts {
		walk(t)
	}

	ids := make([]int64, 0, len(free))
	for id := range free {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*Var, len(ids))
	for i, id := range ids {
		out[i] = free[id]
	}
	return out
}
