// Package traystore records every tray id issued during a run and answers
// membership and ordered-listing queries over them.
//
// The store is write-once-per-id and read-many: there is no deletion.
// Physical circulation of trays (issued vs. returned) is tracked by the
// simulation driver, not here; an id stays in the store after its tray is
// returned.
//
// Complexity (B-tree of degree 16):
//
//   - Insert, Contains: O(log n)
//   - Sorted, Ascend:   O(n)
//
// Thread safety:
//
//   - Not safe for concurrent mutation; the simulation driver serializes access.
package traystore

import "github.com/google/btree"

// degree is the B-tree branching factor. Trays per run are few, so any
// small degree keeps the tree shallow.
const degree = 16

// Store is an ordered set of tray ids.
type Store struct {
	tree *btree.BTreeG[int]
}

// New returns an empty Store.
func New() *Store {
	return &Store{tree: btree.NewOrderedG[int](degree)}
}

// Insert adds id to the store. It reports false if id was already present,
// in which case the store is unchanged.
func (s *Store) Insert(id int) bool {
	_, replaced := s.tree.ReplaceOrInsert(id)

	return !replaced
}

// Contains reports whether id was previously inserted.
func (s *Store) Contains(id int) bool { return s.tree.Has(id) }

// Len returns the number of distinct ids stored.
func (s *Store) Len() int { return s.tree.Len() }

// Min returns the smallest id, or false when the store is empty.
func (s *Store) Min() (int, bool) { return s.tree.Min() }

// Max returns the largest id, or false when the store is empty.
func (s *Store) Max() (int, bool) { return s.tree.Max() }

// Ascend calls fn for every id in ascending order until fn returns false.
// Each call starts a fresh traversal.
func (s *Store) Ascend(fn func(id int) bool) {
	s.tree.Ascend(fn)
}

// Sorted returns a snapshot of all ids in ascending order.
// Later inserts do not affect the returned slice.
func (s *Store) Sorted() []int {
	out := make([]int, 0, s.tree.Len())
	s.tree.Ascend(func(id int) bool {
		out = append(out, id)
		return true
	})

	return out
}
