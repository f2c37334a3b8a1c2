package unification

import (
	"errors"
	"fmt"
)

// ErrExhaustedVariables is returned by FreshVar and NewVar when the store's
// identifier space would overflow. In practice an int64 counter makes this
// unreachable for any terrestrial workload, but the failure mode is part of
// the allocation contract.
var ErrExhaustedVariables = errors.New("unification: variable identifiers exhausted")

// OccursError reports that binding Var would produce a non-well-founded
// (cyclic) term. It is returned by ApplyBindings and Freshen when they walk
// into a preexisting cyclic binding, by Unify when its visited set reveals
// a revisit along the current spine, and by UnifyOccurs eagerly on every
// bind that fails the occurs check.
type OccursError struct {
	Var  *Var // The variable whose binding closes the cycle
	Term Term // The witness term the variable was seen as
}

// Error implements the error interface.
func (e *OccursError) Error() string {
	return fmt.Sprintf("unification: variable %s occurs in %s", e.Var, e.Term)
}

// MismatchError reports that two structure layers could not be aligned:
// ZipMatch returned no pairing, meaning the constructors or arities differ
// where equality is required.
type MismatchError struct {
	Left  Shape
	Right Shape
}

// Error implements the error interface.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("unification: cannot match %s against %s", e.Left, e.Right)
}
