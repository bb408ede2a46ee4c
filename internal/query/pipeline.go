// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import "github.com/pdiddy/research-catalog/pkg/types"

// Options customizes a pipeline run.
type Options struct {
	// Scorer ranks records under relevance ordering. Nil uses DefaultScorer.
	Scorer Scorer
}

// Run executes Filter, Sort, and Paginate against state. It is
// referentially transparent: the same records and state always yield the
// same result.
func Run(records []types.ResearchRecord, state types.QueryState, opts Options) Result {
	filtered := Filter(records, state.Filters, state.Query)
	sorted := Sort(filtered, state.Sort, state.Query, opts.Scorer)
	return Paginate(sorted, state.Page, state.PageSize)
}
