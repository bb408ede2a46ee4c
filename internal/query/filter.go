// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query implements the catalog query pipeline: filtering, relevance
// scoring, sorting, and pagination over an immutable record collection, plus
// the controller that owns the mutable query state and the debounce
// primitive callers use to coalesce bursts of edits.
//
// Filter, Sort, Paginate, and Run are pure functions. None of them return
// errors; bad inputs degrade (inverted year bounds yield no records,
// out-of-range pages are clamped, an empty query leaves store order).
package query

import (
	"strings"

	"github.com/pdiddy/research-catalog/pkg/types"
)

// NormalizeQuery trims and lower-cases a free-text query.
func NormalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// Filter returns the records satisfying every predicate in f and the query,
// in their original order. The input slice is not modified.
func Filter(records []types.ResearchRecord, f types.Filters, query string) []types.ResearchRecord {
	q := NormalizeQuery(query)
	restrictSubjects := anySet(f.Subjects)

	out := make([]types.ResearchRecord, 0, len(records))
	for _, r := range records {
		if !f.Types[r.Type] {
			continue
		}
		if r.Year < f.YearFrom || r.Year > f.YearTo {
			continue
		}
		if restrictSubjects && !r.HasSubject(f.Subjects) {
			continue
		}
		if q != "" && !strings.Contains(haystack(r), q) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// haystack is the lower-cased text a query is matched against.
func haystack(r types.ResearchRecord) string {
	return strings.ToLower(r.Title + " " + r.Authors + " " + r.Abstract + " " + strings.Join(r.Keywords, " "))
}

func anySet[K comparable](m map[K]bool) bool {
	for _, ok := range m {
		if ok {
			return true
		}
	}
	return false
}
