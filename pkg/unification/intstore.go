package unification

import (
	"fmt"
	"math"
	"strings"

	"github.com/benbjohnson/immutable"
)

// IntBindingStore is the concrete BindingStore: a counter for the next
// fresh identifier plus a persistent sorted map from identifier to ranked
// cell. The persistent map gives two properties the engine relies on:
//
//   - Clone is O(1): the snapshot shares structure with the original, so a
//     backtracking host can capture the store before a speculative branch
//     and restore it on failure without copying bindings.
//   - Iteration is in ascending identifier order, which keeps debug
//     rendering and store comparisons deterministic.
//
// Methods mutate the receiver by swapping in the updated map; the previous
// map value is untouched, which is what makes snapshots safe.
type IntBindingStore struct {
	nextID int64
	cells  *immutable.SortedMap[int64, RankedCell]
}

var _ BindingStore = (*IntBindingStore)(nil)

// NewIntBindingStore creates an empty store. Identifiers start at zero.
func NewIntBindingStore() *IntBindingStore {
	return &IntBindingStore{
		cells: immutable.NewSortedMap[int64, RankedCell](nil),
	}
}

// Clone returns a snapshot of the store. The snapshot and the original
// evolve independently from this point on; taking one is O(1).
func (s *IntBindingStore) Clone() *IntBindingStore {
	return &IntBindingStore{nextID: s.nextID, cells: s.cells}
}

// Restore rewinds the store to a previously captured snapshot.
func (s *IntBindingStore) Restore(snapshot *IntBindingStore) {
	s.nextID = snapshot.nextID
	s.cells = snapshot.cells
}

// LookupVar returns the term bound to v, or (nil, false) if v is absent or
// unbound.
func (s *IntBindingStore) LookupVar(v *Var) (Term, bool) {
	cell, ok := s.cells.Get(v.id)
	if !ok || cell.Bound == nil {
		return nil, false
	}
	return cell.Bound, true
}

// LookupRankVar returns v's full cell, or the zero cell if absent.
func (s *IntBindingStore) LookupRankVar(v *Var) RankedCell {
	cell, _ := s.cells.Get(v.id)
	return cell
}

// FreshVar allocates a new unbound variable. No cell is inserted; the
// variable simply does not appear in the map until something binds it or
// bumps its rank.
func (s *IntBindingStore) FreshVar() (*Var, error) {
	return s.FreshNamedVar("")
}

// FreshNamedVar allocates a new unbound variable carrying a debug name.
// The name has no bearing on identity.
func (s *IntBindingStore) FreshNamedVar(name string) (*Var, error) {
	if s.nextID == math.MaxInt64 {
		return nil, ErrExhaustedVariables
	}
	v := &Var{id: s.nextID, name: name}
	s.nextID++
	return v, nil
}

// NewVar allocates a new variable already bound to t.
func (s *IntBindingStore) NewVar(t Term) (*Var, error) {
	v, err := s.FreshVar()
	if err != nil {
		return nil, err
	}
	s.cells = s.cells.Set(v.id, RankedCell{Bound: t})
	return v, nil
}

// BindVar sets v's binding to t, preserving any existing rank.
func (s *IntBindingStore) BindVar(v *Var, t Term) {
	cell, _ := s.cells.Get(v.id)
	cell.Bound = t
	s.cells = s.cells.Set(v.id, cell)
}

// IncrementRank bumps v's rank by one without touching the binding.
func (s *IntBindingStore) IncrementRank(v *Var) {
	cell, _ := s.cells.Get(v.id)
	cell.Rank++
	s.cells = s.cells.Set(v.id, cell)
}

// IncrementBindVar bumps v's rank and installs a binding in one update.
func (s *IntBindingStore) IncrementBindVar(v *Var, t Term) {
	cell, _ := s.cells.Get(v.id)
	cell.Rank++
	cell.Bound = t
	s.cells = s.cells.Set(v.id, cell)
}

// Len returns the number of cells in the store. Allocated-but-untouched
// variables have no cell and do not count.
func (s *IntBindingStore) Len() int {
	return s.cells.Len()
}

// NextID returns the identifier the next allocation will use.
func (s *IntBindingStore) NextID() int64 {
	return s.nextID
}

// String renders the store's cells in ascending identifier order.
func (s *IntBindingStore) String() string {
	if s.cells.Len() == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{")
	first := true
	itr := s.cells.Iterator()
	for {
		id, cell, ok := itr.Next()
		if !ok {
			break
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		if cell.Bound != nil {
			fmt.Fprintf(&b, "_%d=%s", id, cell.Bound)
		} else {
			fmt.Fprintf(&b, "_%d=?", id)
		}
		if cell.Rank != 0 {
			fmt.Fprintf(&b, "#%d", cell.Rank)
		}
	}
	b.WriteString("}")
	return b.String()
}
