// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{0, 6, 1},
		{1, 6, 1},
		{6, 6, 1},
		{7, 6, 2},
		{12, 6, 2},
		{13, 6, 3},
		{5, 0, 5},
		{5, -2, 5},
		{5, math.MaxInt, 1},
		{math.MaxInt, 1, math.MaxInt},
		{math.MaxInt, 2, math.MaxInt/2 + 1},
		{math.MaxInt - 1, math.MaxInt, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.total, tt.size), "TotalPages(%d, %d)", tt.total, tt.size)
	}
}

func TestPaginate(t *testing.T) {
	records := syntheticRecords(13)

	tests := []struct {
		name       string
		page, size int
		wantIDs    []int
		wantPage   int
		wantPages  int
		wantStart  int
		wantEnd    int
	}{
		{"first page", 1, 6, []int{1, 2, 3, 4, 5, 6}, 1, 3, 1, 6},
		{"middle page", 2, 6, []int{7, 8, 9, 10, 11, 12}, 2, 3, 7, 12},
		{"short last page", 3, 6, []int{13}, 3, 3, 13, 13},
		{"past the end", 9, 6, []int{13}, 3, 3, 13, 13},
		{"zero page", 0, 6, []int{1, 2, 3, 4, 5, 6}, 1, 3, 1, 6},
		{"negative page", -4, 6, []int{1, 2, 3, 4, 5, 6}, 1, 3, 1, 6},
		{"one per page", 5, 1, []int{5}, 5, 13, 5, 5},
		{"zero size treated as one", 2, 0, []int{2}, 2, 13, 2, 2},
		{"single page", 1, 50, ids(records), 1, 1, 1, 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Paginate(records, tt.page, tt.size)
			assert.Equal(t, tt.wantIDs, ids(res.Items))
			assert.Equal(t, 13, res.Total)
			assert.Equal(t, tt.wantPage, res.Page)
			assert.Equal(t, tt.wantPages, res.TotalPages)
			assert.Equal(t, tt.wantStart, res.Start)
			assert.Equal(t, tt.wantEnd, res.End)
		})
	}
}

func TestPaginateEmpty(t *testing.T) {
	res := Paginate(nil, 3, 6)
	assert.Empty(t, res.Items)
	assert.Equal(t, 1, res.Page)
	assert.Equal(t, 1, res.TotalPages)
	assert.Zero(t, res.Start)
	assert.Zero(t, res.End)
}

func TestPaginateItemsCannotGrowIntoNextPage(t *testing.T) {
	records := syntheticRecords(12)
	res := Paginate(records, 1, 6)
	_ = append(res.Items, records[0])
	assert.Equal(t, 7, records[6].ID)
}
