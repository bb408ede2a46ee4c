// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/research-catalog/internal/catalog"
	"github.com/pdiddy/research-catalog/pkg/types"
)

func TestSortModes(t *testing.T) {
	tests := []struct {
		mode  types.SortMode
		query string
		want  []int
	}{
		{types.SortDateDesc, "", []int{1, 3, 2, 4}},
		{types.SortDateAsc, "", []int{2, 4, 1, 3}},
		{types.SortTitle, "", []int{2, 4, 1, 3}},
		{types.SortRelevance, "", []int{1, 2, 3, 4}},
		{types.SortRelevance, "   ", []int{1, 2, 3, 4}},
		{"newest", "", []int{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode)+"/"+tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Sort(catalog.Sample(), tt.mode, tt.query, nil)))
		})
	}
}

func TestSortReturnsNewSlice(t *testing.T) {
	in := catalog.Sample()
	out := Sort(in, types.SortDateAsc, "", nil)
	out[0].Title = "changed"
	assert.Equal(t, []int{1, 2, 3, 4}, ids(in))
	assert.NotEqual(t, "changed", in[1].Title)
}

func TestDefaultScorerWeights(t *testing.T) {
	r := types.ResearchRecord{
		Title:    "Quantum Encryption Methods",
		Keywords: []string{"Quantum", "Encryption"},
		Abstract: "quantum-resistant algorithms",
	}
	tests := []struct {
		query string
		want  int
	}{
		{"quantum", 6},
		{"methods", 3},
		{"encryption", 5},
		{"quantum encryption", 5},
		{"algorithms", 1},
		{"absent", 0},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultScorer(r, tt.query))
		})
	}
}

func TestRelevanceOrdersByScoreStably(t *testing.T) {
	records := []types.ResearchRecord{
		{ID: 1, Title: "Other", Abstract: "about graphs"},      // 1
		{ID: 2, Title: "Graphs", Keywords: []string{"graphs"}}, // 5
		{ID: 3, Title: "Other", Keywords: []string{"graphs"}},  // 2
		{ID: 4, Title: "Graphs in practice"},                   // 3
		{ID: 5, Title: "Graphs", Keywords: []string{"graphs"}}, // 5
		{ID: 6, Title: "Other", Abstract: "graphs again"},      // 1
	}
	got := Sort(records, types.SortRelevance, " GRAPHS ", nil)
	assert.Equal(t, []int{2, 5, 4, 3, 1, 6}, ids(got))
}

func TestDateSortStability(t *testing.T) {
	records := []types.ResearchRecord{
		{ID: 10, Year: 2020},
		{ID: 11, Year: 2021},
		{ID: 12, Year: 2020},
		{ID: 13, Year: 2021},
		{ID: 14, Year: 2020},
	}
	assert.Equal(t, []int{11, 13, 10, 12, 14}, ids(Sort(records, types.SortDateDesc, "", nil)))
	assert.Equal(t, []int{10, 12, 14, 11, 13}, ids(Sort(records, types.SortDateAsc, "", nil)))
}

func TestTitleSortIsLocaleAware(t *testing.T) {
	records := []types.ResearchRecord{
		{ID: 1, Title: "banana"},
		{ID: 2, Title: "Apple"},
		{ID: 3, Title: "apple"},
		{ID: 4, Title: "Éclair"},
		{ID: 5, Title: "Zebra"},
	}
	got := ids(Sort(records, types.SortTitle, "", nil))

	// Byte order would put "Apple", "Zebra", "apple", "banana", "Éclair".
	assert.Equal(t, 5, got[len(got)-1], "Zebra sorts last")
	assert.Less(t, indexOf(got, 1), indexOf(got, 4), "banana before Éclair")
	assert.Less(t, indexOf(got, 4), indexOf(got, 5), "Éclair before Zebra")
	assert.Less(t, indexOf(got, 3), indexOf(got, 1), "apple before banana")
}

func indexOf(ids []int, id int) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
