// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the research catalog.
// Covers the record model (ResearchRecord), the query state that
// parameterizes every pipeline run (QueryState, Filters, SortMode), and the
// configuration structs read by the CLI.
package types

import "sort"

// SortMode selects how the filtered records are ordered.
type SortMode string

const (
	SortRelevance SortMode = "relevance"
	SortDateDesc  SortMode = "date_desc"
	SortDateAsc   SortMode = "date_asc"
	SortTitle     SortMode = "title"
)

// SortModes lists every supported sort mode.
var SortModes = []SortMode{SortRelevance, SortDateDesc, SortDateAsc, SortTitle}

// Valid reports whether m is one of the supported sort modes.
func (m SortMode) Valid() bool {
	for _, s := range SortModes {
		if m == s {
			return true
		}
	}
	return false
}

const (
	// DefaultYearFrom and DefaultYearTo leave the year range wide open.
	DefaultYearFrom = 1900
	DefaultYearTo   = 2100

	// DefaultPageSize is the number of records shown per page.
	DefaultPageSize = 6
)

// Filters holds the predicates a record must satisfy to survive filtering.
type Filters struct {
	// Types is the set of allowed record types.
	Types map[RecordType]bool

	// Subjects is the set of allowed subject tags. An empty set means no
	// subject restriction, not "match nothing".
	Subjects map[string]bool

	// YearFrom and YearTo are inclusive publication year bounds.
	YearFrom int
	YearTo   int
}

// DefaultFilters returns filters that admit every record of the given types.
func DefaultFilters(known []RecordType) Filters {
	f := Filters{
		Types:    make(map[RecordType]bool, len(known)),
		Subjects: map[string]bool{},
		YearFrom: DefaultYearFrom,
		YearTo:   DefaultYearTo,
	}
	for _, t := range known {
		f.Types[t] = true
	}
	return f
}

// Clone returns a deep copy of f.
func (f Filters) Clone() Filters {
	c := Filters{
		Types:    make(map[RecordType]bool, len(f.Types)),
		Subjects: make(map[string]bool, len(f.Subjects)),
		YearFrom: f.YearFrom,
		YearTo:   f.YearTo,
	}
	for t, ok := range f.Types {
		if ok {
			c.Types[t] = true
		}
	}
	for s, ok := range f.Subjects {
		if ok {
			c.Subjects[s] = true
		}
	}
	return c
}

// TypeList returns the allowed types sorted by name.
func (f Filters) TypeList() []RecordType {
	out := make([]RecordType, 0, len(f.Types))
	for t, ok := range f.Types {
		if ok {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SubjectList returns the allowed subjects sorted by name.
func (f Filters) SubjectList() []string {
	out := make([]string, 0, len(f.Subjects))
	for s, ok := range f.Subjects {
		if ok {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

// QueryState is the mutable configuration that parameterizes a pipeline
// run. It has a single logical owner (the query controller).
type QueryState struct {
	// Query is the free-text query. It is trimmed and lower-cased at use time.
	Query string

	// Sort is the active sort mode.
	Sort SortMode

	// Filters holds the active filter predicates.
	Filters Filters

	// Page is the 1-based current page.
	Page int

	// PageSize is the fixed number of records per page.
	PageSize int
}

// DefaultQueryState returns the initial state: empty query, relevance sort,
// all known types, no subject restriction, open year range, page 1.
func DefaultQueryState(known []RecordType, pageSize int) QueryState {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return QueryState{
		Sort:     SortRelevance,
		Filters:  DefaultFilters(known),
		Page:     1,
		PageSize: pageSize,
	}
}

// Clone returns a deep copy of s.
func (s QueryState) Clone() QueryState {
	c := s
	c.Filters = s.Filters.Clone()
	return c
}
