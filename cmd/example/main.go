// Package main demonstrates basic unification engine usage patterns.
//
// This example shows how to use the core operations to build terms,
// unify them, and read results back out of the binding store.
package main

import (
	"fmt"

	"github.com/ggreif/unification-fd/pkg/unification"
)

func main() {
	fmt.Println("=== Unification Examples ===")
	fmt.Println()

	basicUnification()
	variableAliasing()
	occursDetection()
	freshening()
	subsumption()
}

// atom builds a nullary constructor term.
func atom(name string) unification.Term {
	return unification.NewNode(unification.Atom(name))
}

// pair builds pair(a, b).
func pair(a, b unification.Term) unification.Term {
	return unification.NewNode(unification.NewFunctor("pair", a, b))
}

// basicUnification unifies two partially known pairs.
func basicUnification() {
	fmt.Println("1. Basic Unification:")

	s := unification.NewIntBindingStore()
	x, _ := s.FreshNamedVar("x")
	y, _ := s.FreshNamedVar("y")

	left := pair(x, atom("one"))
	right := pair(atom("two"), y)

	if _, err := unification.Unify(s, left, right); err != nil {
		fmt.Println("   failed:", err)
		return
	}
	resolved, _ := unification.ApplyBindings(s, left)
	fmt.Printf("   %s ~ %s => %s\n", left, right, resolved)
	fmt.Println()
}

// variableAliasing shows two variables collapsing into one binding.
func variableAliasing() {
	fmt.Println("2. Variable Aliasing:")

	s := unification.NewIntBindingStore()
	x, _ := s.FreshNamedVar("x")
	y, _ := s.FreshNamedVar("y")

	unification.Unify(s, x, y)
	unification.Unify(s, y, atom("shared"))

	rx, _ := unification.ApplyBindings(s, x)
	fmt.Printf("   after x ~ y and y ~ shared: x => %s\n", rx)
	fmt.Println()
}

// occursDetection contrasts the lazy and eager cycle disciplines.
func occursDetection() {
	fmt.Println("3. Occurs Detection:")

	s := unification.NewIntBindingStore()
	x, _ := s.FreshNamedVar("x")
	cyclic := pair(x, atom("one"))

	unification.Unify(s, x, cyclic)
	_, err := unification.ApplyBindings(s, x)
	fmt.Printf("   lazy variant, detected at read-back: %v\n", err)

	s2 := unification.NewIntBindingStore()
	y, _ := s2.FreshNamedVar("y")
	_, err = unification.UnifyOccurs(s2, y, pair(y, atom("one")))
	fmt.Printf("   eager variant, detected at bind: %v\n", err)
	fmt.Println()
}

// freshening renames a term's variables while preserving sharing.
func freshening() {
	fmt.Println("4. Freshening:")

	s := unification.NewIntBindingStore()
	x, _ := s.FreshNamedVar("x")
	template := pair(x, x)

	fresh, _ := unification.Freshen(s, template)
	fmt.Printf("   %s freshens to %s\n", template, fresh)
	fmt.Println()
}

// subsumption checks the one-directional instance-of relation.
func subsumption() {
	fmt.Println("5. Subsumption:")

	s := unification.NewIntBindingStore()
	x, _ := s.FreshNamedVar("x")
	ok, _ := unification.Subsumes(s, pair(x, atom("b")), pair(atom("a"), atom("b")))
	fmt.Printf("   pair(x, b) subsumes pair(a, b): %v\n", ok)

	s2 := unification.NewIntBindingStore()
	y, _ := s2.FreshNamedVar("y")
	ok, _ = unification.Subsumes(s2, pair(atom("a"), atom("b")), pair(y, atom("b")))
	fmt.Printf("   pair(a, b) subsumes pair(y, b): %v\n", ok)
}
