// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pdiddy/research-catalog/pkg/types"
)

// Sort returns a new slice holding records ordered by mode. Every mode is
// stable: records with equal keys keep their relative input order. Unknown
// modes fall back to relevance. A nil scorer uses DefaultScorer.
func Sort(records []types.ResearchRecord, mode types.SortMode, query string, scorer Scorer) []types.ResearchRecord {
	out := make([]types.ResearchRecord, len(records))
	copy(out, records)

	switch mode {
	case types.SortDateDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Year > out[j].Year })
	case types.SortDateAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	case types.SortTitle:
		// Collators are not safe for concurrent use; build one per call.
		c := collate.New(language.English)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Title, out[j].Title) < 0
		})
	default:
		sortByRelevance(out, NormalizeQuery(query), scorer)
	}
	return out
}

// sortByRelevance orders records by descending score. An empty query leaves
// the order untouched.
func sortByRelevance(records []types.ResearchRecord, q string, scorer Scorer) {
	if q == "" {
		return
	}
	if scorer == nil {
		scorer = DefaultScorer
	}

	type scored struct {
		rec   types.ResearchRecord
		score int
	}
	ranked := make([]scored, len(records))
	for i, r := range records {
		ranked[i] = scored{rec: r, score: scorer(r, q)}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	for i := range ranked {
		records[i] = ranked[i].rec
	}
}
