// Package unification provides structural unification over user-defined
// term shapes. This file defines the Shape contract that concrete term
// structures implement, plus the Functor shape shipped with the library.
package unification

import (
	"fmt"
	"strings"
)

// Shape describes one layer of a user-defined term structure: a constructor
// tag plus child slots holding further terms. The two operations below fully
// determine unification behavior; the engine is parametric in them.
//
// Implementations must be immutable: Traverse and ZipMatch return fresh
// shapes and never modify the receiver.
type Shape interface {
	// Traverse applies fn to every child in deterministic left-to-right
	// order and collects the results into a shape with the same
	// constructor and arity. The first error from fn aborts the walk and
	// is returned unchanged.
	Traverse(fn func(child Term) (Term, error)) (Shape, error)

	// ZipMatch pairs the children of two same-shaped layers. If other has
	// the same constructor with the same arity, fn is applied to each pair
	// of children in left-to-right order, the results are collected into a
	// shape of the shared constructor, and same is true. Otherwise same is
	// false and the shape is nil. The first error from fn aborts the walk
	// and is returned unchanged (with same true).
	ZipMatch(other Shape, fn func(left, right Term) (Term, error)) (shape Shape, same bool, err error)

	// String returns a human-readable rendering of this layer.
	String() string
}

// Functor is the workhorse Shape: a constructor symbol applied to an
// ordered sequence of child terms. Two functors zip-match when their
// symbols and arities agree.
//
// Example:
//
//	pair := NewFunctor("pair", x, y) // pair(x, y)
//	nil_ := Atom("nil")              // nullary constructor
type Functor struct {
	name string
	args []Term
}

// NewFunctor creates a functor shape with the given constructor symbol and
// children.
func NewFunctor(name string, args ...Term) *Functor {
	return &Functor{name: name, args: args}
}

// Atom creates a nullary functor. Atoms zip-match exactly when their
// symbols are equal.
func Atom(name string) *Functor {
	return &Functor{name: name}
}

// Name returns the constructor symbol.
func (f *Functor) Name() string {
	return f.name
}

// Arity returns the number of children.
func (f *Functor) Arity() int {
	return len(f.args)
}

// Args returns the child terms in left-to-right order.
func (f *Functor) Args() []Term {
	return f.args
}

// Traverse applies fn to every child and rebuilds the functor.
func (f *Functor) Traverse(fn func(child Term) (Term, error)) (Shape, error) {
	out := make([]Term, len(f.args))
	for i, arg := range f.args {
		mapped, err := fn(arg)
		if err != nil {
			return nil, err
		}
		out[i] = mapped
	}
	return &Functor{name: f.name, args: out}, nil
}

// ZipMatch pairs children with another functor of the same symbol and arity.
func (f *Functor) ZipMatch(other Shape, fn func(left, right Term) (Term, error)) (Shape, bool, error) {
	o, ok := other.(*Functor)
	if !ok || o.name != f.name || len(o.args) != len(f.args) {
		return nil, false, nil
	}
	out := make([]Term, len(f.args))
	for i, arg := range f.args {
		merged, err := fn(arg, o.args[i])
		if err != nil {
			return nil, true, err
		}
		out[i] = merged
	}
	return &Functor{name: f.name, args: out}, true, nil
}

// String renders the functor in the conventional name(arg, ...) form.
// Nullary functors render as their bare symbol.
func (f *Functor) String() string {
	if len(f.args) == 0 {
		return f.name
	}
	parts := make([]string, len(f.args))
	for i, arg := range f.args {
		parts[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", f.name, strings.Join(parts, ", "))
}
