// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strconv"
	"strings"
)

// PagerItem is one control in the pager strip.
type PagerItem struct {
	Label    string `json:"label"`
	Page     int    `json:"page"`
	Active   bool   `json:"active,omitempty"`
	Disabled bool   `json:"disabled,omitempty"`
}

// Pager returns Previous, the pages from page-1 to page+1 that exist, and
// Next. Previous is disabled on the first page and Next on the last.
func Pager(page, totalPages int) []PagerItem {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	items := []PagerItem{{Label: "Previous", Page: page - 1, Disabled: page == 1}}
	for p := max(1, page-1); p <= min(totalPages, page+1); p++ {
		items = append(items, PagerItem{Label: strconv.Itoa(p), Page: p, Active: p == page})
	}
	items = append(items, PagerItem{Label: "Next", Page: page + 1, Disabled: page == totalPages})
	return items
}

// FormatPager renders items on one line, e.g. "< Previous  1 [2] 3  Next >".
// Disabled controls are shown in parentheses.
func FormatPager(items []PagerItem) string {
	var parts []string
	for _, it := range items {
		label := it.Label
		switch label {
		case "Previous":
			label = "< Previous"
		case "Next":
			label = "Next >"
		}
		switch {
		case it.Disabled:
			label = "(" + label + ")"
		case it.Active:
			label = "[" + label + "]"
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " ")
}
