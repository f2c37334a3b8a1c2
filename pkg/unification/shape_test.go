package unification

import (
	"errors"
	"testing"
)

func TestFunctorTraverse(t *testing.T) {
	t.Run("children are visited left to right", func(t *testing.T) {
		f := NewFunctor("f", atom("a"), atom("b"), atom("c"))

		var order []string
		out, err := f.Traverse(func(child Term) (Term, error) {
			order = append(order, child.String())
			return child, nil
		})
		if err != nil {
			t.Fatalf("Traverse failed: %v", err)
		}
		if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
			t.Errorf("visit order = %v, want [a b c]", order)
		}
		if out.(*Functor).Name() != "f" || out.(*Functor).Arity() != 3 {
			t.Errorf("Traverse changed the constructor: %s", out)
		}
	})

	t.Run("transformation is collected into the same shape", func(t *testing.T) {
		f := NewFunctor("f", atom("a"), atom("b"))
		out, err := f.Traverse(func(Term) (Term, error) {
			return atom("x"), nil
		})
		if err != nil {
			t.Fatalf("Traverse failed: %v", err)
		}
		if out.String() != "f(x, x)" {
			t.Errorf("Traverse result = %s, want f(x, x)", out)
		}
		// The receiver is untouched.
		if f.String() != "f(a, b)" {
			t.Errorf("Traverse mutated the receiver: %s", f)
		}
	})

	t.Run("first error aborts the walk", func(t *testing.T) {
		f := NewFunctor("f", atom("a"), atom("b"))
		boom := errors.New("boom")
		visits := 0
		_, err := f.Traverse(func(Term) (Term, error) {
			visits++
			return nil, boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("got %v, want the callback error", err)
		}
		if visits != 1 {
			t.Errorf("walk continued after the error: %d visits", visits)
		}
	})
}

func TestFunctorZipMatch(t *testing.T) {
	t.Run("same constructor pairs children in order", func(t *testing.T) {
		l := NewFunctor("f", atom("a"), atom("b"))
		r := NewFunctor("f", atom("c"), atom("d"))

		var pairs []string
		out, same, err := l.ZipMatch(r, func(cl, cr Term) (Term, error) {
			pairs = append(pairs, cl.String()+cr.String())
			return cl, nil
		})
		if err != nil || !same {
			t.Fatalf("ZipMatch = (%v, %v), want success", same, err)
		}
		if len(pairs) != 2 || pairs[0] != "ac" || pairs[1] != "bd" {
			t.Errorf("pairing = %v, want [ac bd]", pairs)
		}
		if out.String() != "f(a, b)" {
			t.Errorf("collected shape = %s, want f(a, b)", out)
		}
	})

	t.Run("different symbol does not match", func(t *testing.T) {
		l := NewFunctor("f", atom("a"))
		r := NewFunctor("g", atom("a"))
		_, same, err := l.ZipMatch(r, func(cl, cr Term) (Term, error) { return cl, nil })
		if same || err != nil {
			t.Errorf("ZipMatch across symbols = (%v, %v), want (false, nil)", same, err)
		}
	})

	t.Run("different arity does not match", func(t *testing.T) {
		l := NewFunctor("f", atom("a"))
		r := NewFunctor("f", atom("a"), atom("b"))
		_, same, err := l.ZipMatch(r, func(cl, cr Term) (Term, error) { return cl, nil })
		if same || err != nil {
			t.Errorf("ZipMatch across arities = (%v, %v), want (false, nil)", same, err)
		}
	})

	t.Run("callback errors propagate with same=true", func(t *testing.T) {
		l := NewFunctor("f", atom("a"))
		r := NewFunctor("f", atom("b"))
		boom := errors.New("boom")
		_, same, err := l.ZipMatch(r, func(cl, cr Term) (Term, error) { return nil, boom })
		if !same || !errors.Is(err, boom) {
			t.Errorf("ZipMatch = (%v, %v), want (true, boom)", same, err)
		}
	})
}

func TestFunctorString(t *testing.T) {
	if got := Atom("nil").String(); got != "nil" {
		t.Errorf("nullary rendering = %q, want nil", got)
	}
	s := NewIntBindingStore()
	x, _ := s.FreshNamedVar("x")
	if got := NewFunctor("cons", x, atom("nil")).String(); got != "cons(_x_0, nil)" {
		t.Errorf("rendering = %q, want cons(_x_0, nil)", got)
	}
}
