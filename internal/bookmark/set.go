// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bookmark keeps the set of bookmarked record ids and persists it
// through a pluggable backend (JSON file, SQLite, or Redis). The in-memory
// set is authoritative for the session; persistence failures are reported
// to the caller but never roll back a toggle.
package bookmark

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// Set is a set of record ids backed by a Roaring bitmap. Valid ids are
// positive and fit in 32 bits; others are never members.
type Set struct {
	rb *roaring.Bitmap
}

// NewSet returns a set holding ids. Invalid and duplicate ids are ignored.
func NewSet(ids ...int) *Set {
	s := &Set{rb: roaring.New()}
	for _, id := range ids {
		if ValidID(id) {
			s.rb.Add(uint32(id))
		}
	}
	return s
}

// ValidID reports whether id can be stored in a Set.
func ValidID(id int) bool {
	return id > 0 && int64(id) <= math.MaxUint32
}

// Has reports whether id is in the set.
func (s *Set) Has(id int) bool {
	return ValidID(id) && s.rb.Contains(uint32(id))
}

// Toggle adds id if absent or removes it if present, and reports whether
// id is a member afterwards. Invalid ids are left out and report false.
func (s *Set) Toggle(id int) bool {
	if !ValidID(id) {
		return false
	}
	if s.rb.CheckedAdd(uint32(id)) {
		return true
	}
	s.rb.Remove(uint32(id))
	return false
}

// Len returns the number of ids in the set.
func (s *Set) Len() int {
	return int(s.rb.GetCardinality())
}

// IDs returns the members in ascending order.
func (s *Set) IDs() []int {
	out := make([]int, 0, s.rb.GetCardinality())
	it := s.rb.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}

// Clone returns an independent copy of the set.
func (s *Set) Clone() *Set {
	return &Set{rb: s.rb.Clone()}
}
