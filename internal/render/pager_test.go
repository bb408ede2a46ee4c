// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func labels(items []PagerItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Label
	}
	return out
}

func TestPager(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		totalPages int
		want       []string
		active     string
		prevOff    bool
		nextOff    bool
	}{
		{"single page", 1, 1, []string{"Previous", "1", "Next"}, "1", true, true},
		{"first of many", 1, 5, []string{"Previous", "1", "2", "Next"}, "1", true, false},
		{"middle", 3, 5, []string{"Previous", "2", "3", "4", "Next"}, "3", false, false},
		{"last", 5, 5, []string{"Previous", "4", "5", "Next"}, "5", false, true},
		{"out of range clamps", 9, 2, []string{"Previous", "1", "2", "Next"}, "2", false, true},
		{"zero pages", 0, 0, []string{"Previous", "1", "Next"}, "1", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := Pager(tt.page, tt.totalPages)
			assert.Equal(t, tt.want, labels(items))
			assert.Equal(t, tt.prevOff, items[0].Disabled)
			assert.Equal(t, tt.nextOff, items[len(items)-1].Disabled)
			for _, it := range items[1 : len(items)-1] {
				assert.Equal(t, it.Label == tt.active, it.Active, "page %s", it.Label)
			}
		})
	}
}

func TestFormatPager(t *testing.T) {
	assert.Equal(t, "(< Previous) [1] 2 Next >", FormatPager(Pager(1, 2)))
	assert.Equal(t, "< Previous 1 [2] (Next >)", FormatPager(Pager(2, 2)))
}
