// Package unification test helpers shared across the suite.
//
// The scenarios throughout the tests use a tiny term language: a binary
// constructor p(x, y) plus nullary atoms. That is enough to exercise every
// branch of the engine without dragging in a full object language.
package unification

import "testing"

// pair builds p(a, b).
func pair(a, b Term) Term {
	return NewNode(NewFunctor("p", a, b))
}

// atom builds a nullary constructor term.
func atom(name string) Term {
	return NewNode(Atom(name))
}

// mustFresh allocates a fresh variable or fails the test.
func mustFresh(t *testing.T, s *IntBindingStore) *Var {
	t.Helper()
	v, err := s.FreshVar()
	if err != nil {
		t.Fatalf("FreshVar failed: %v", err)
	}
	return v
}

// mustApply applies the bindings or fails the test.
func mustApply(t *testing.T, s BindingStore, term Term) Term {
	t.Helper()
	out, err := ApplyBindings(s, term)
	if err != nil {
		t.Fatalf("ApplyBindings(%s) failed: %v", term, err)
	}
	return out
}

// mustUnify unifies two terms or fails the test.
func mustUnify(t *testing.T, s BindingStore, a, b Term) Term {
	t.Helper()
	out, err := Unify(s, a, b)
	if err != nil {
		t.Fatalf("Unify(%s, %s) failed: %v", a, b, err)
	}
	return out
}
