// Package selection provides compressed sets of shape handles, used as
// batch-operation inputs and as visited-sets during group traversal.
package selection

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/drawkit/drawgo/shape"
)

// Set is a roaring bitmap over 32-bit handles. Because the kind tag
// occupies the high byte of a handle, ascending iteration yields
// handles grouped by kind and ordered by table index within each kind,
// which is exactly the access pattern the batch layer wants.
//
// A Set is not safe for concurrent mutation.
type Set struct {
	bm *roaring.Bitmap
}

// New returns an empty set, optionally seeded with handles.
func New(handles ...shape.Handle) *Set {
	s := &Set{bm: roaring.New()}
	for _, h := range handles {
		s.bm.Add(uint32(h))
	}
	return s
}

// Add inserts h and reports whether it was not already present.
func (s *Set) Add(h shape.Handle) bool {
	return s.bm.CheckedAdd(uint32(h))
}

// AddAll inserts every handle in hs.
func (s *Set) AddAll(hs []shape.Handle) {
	for _, h := range hs {
		s.bm.Add(uint32(h))
	}
}

// Remove deletes h if present.
func (s *Set) Remove(h shape.Handle) {
	s.bm.Remove(uint32(h))
}

// Contains reports whether h is in the set.
func (s *Set) Contains(h shape.Handle) bool {
	return s.bm.Contains(uint32(h))
}

// Len returns the number of handles in the set.
func (s *Set) Len() int {
	return int(s.bm.GetCardinality())
}

// Handles returns the set contents in ascending handle order: grouped
// by kind, then by index.
func (s *Set) Handles() []shape.Handle {
	raw := s.bm.ToArray()
	out := make([]shape.Handle, len(raw))
	for i, v := range raw {
		out[i] = shape.Handle(v)
	}
	return out
}
