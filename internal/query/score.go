// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"strings"

	"github.com/pdiddy/research-catalog/pkg/types"
)

// Relevance weights. Each field contributes its weight once when it contains
// the query.
const (
	TitleWeight    = 3
	KeywordsWeight = 2
	AbstractWeight = 1
)

// Scorer ranks a record against a normalized (trimmed, lower-cased) query.
// Higher scores sort first under relevance ordering.
type Scorer func(r types.ResearchRecord, query string) int

// DefaultScorer scores 3 for a title hit, 2 for a hit in the space-joined
// keywords, and 1 for an abstract hit.
func DefaultScorer(r types.ResearchRecord, query string) int {
	score := 0
	if strings.Contains(strings.ToLower(r.Title), query) {
		score += TitleWeight
	}
	if strings.Contains(strings.ToLower(strings.Join(r.Keywords, " ")), query) {
		score += KeywordsWeight
	}
	if strings.Contains(strings.ToLower(r.Abstract), query) {
		score += AbstractWeight
	}
	return score
}
