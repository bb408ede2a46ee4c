// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog holds the immutable record store the query pipeline reads
// from. Records are loaded once (from a YAML/JSON file or the built-in
// sample set) and never mutated afterwards.
package catalog

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/pdiddy/research-catalog/pkg/types"
)

// ErrNotFound is returned when a record id is not in the store.
var ErrNotFound = errors.New("record not found")

// Store is an immutable, ordered collection of research records. It is safe
// for concurrent readers without synchronization.
type Store struct {
	records []types.ResearchRecord
	byID    map[int]int
}

// New builds a Store from records, preserving their order. It rejects
// non-positive ids, ids beyond the 32-bit range used by bookmark sets, and
// duplicate ids.
func New(records []types.ResearchRecord) (*Store, error) {
	s := &Store{
		records: make([]types.ResearchRecord, len(records)),
		byID:    make(map[int]int, len(records)),
	}
	for i, r := range records {
		if r.ID <= 0 || int64(r.ID) > math.MaxUint32 {
			return nil, fmt.Errorf("record %d (%q): id must be a positive 32-bit integer", i, r.Title)
		}
		if prev, ok := s.byID[r.ID]; ok {
			return nil, fmt.Errorf("record %d (%q): duplicate id %d (first seen at %d)", i, r.Title, r.ID, prev)
		}
		s.byID[r.ID] = i
		s.records[i] = cloneRecord(r)
	}
	return s, nil
}

// All returns the full ordered collection. The returned slice is a copy;
// callers may reorder it freely.
func (s *Store) All() []types.ResearchRecord {
	out := make([]types.ResearchRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Get returns the record with the given id.
func (s *Store) Get(id int) (types.ResearchRecord, error) {
	i, ok := s.byID[id]
	if !ok {
		return types.ResearchRecord{}, fmt.Errorf("id %d: %w", id, ErrNotFound)
	}
	return s.records[i], nil
}

// Select returns the records for which keep reports true, in store order.
func (s *Store) Select(keep func(types.ResearchRecord) bool) []types.ResearchRecord {
	var out []types.ResearchRecord
	for _, r := range s.records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// Subjects returns every distinct subject tag, sorted.
func (s *Store) Subjects() []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range s.records {
		for _, subj := range r.Subjects {
			if !seen[subj] {
				seen[subj] = true
				out = append(out, subj)
			}
		}
	}
	sort.Strings(out)
	return out
}

// Types returns every distinct record type in order of first appearance.
func (s *Store) Types() []types.RecordType {
	seen := make(map[types.RecordType]bool)
	var out []types.RecordType
	for _, r := range s.records {
		if !seen[r.Type] {
			seen[r.Type] = true
			out = append(out, r.Type)
		}
	}
	return out
}

// YearSpan returns the smallest and largest publication year. Both are zero
// for an empty store.
func (s *Store) YearSpan() (min, max int) {
	for i, r := range s.records {
		if i == 0 || r.Year < min {
			min = r.Year
		}
		if i == 0 || r.Year > max {
			max = r.Year
		}
	}
	return min, max
}

// cloneRecord copies the slice fields so callers cannot mutate the store
// through the record they passed in.
func cloneRecord(r types.ResearchRecord) types.ResearchRecord {
	r.Subjects = append([]string(nil), r.Subjects...)
	r.Keywords = append([]string(nil), r.Keywords...)
	return r
}
