// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import "github.com/pdiddy/research-catalog/pkg/types"

// Result is one page of pipeline output, the tuple handed to presentation.
type Result struct {
	// Items holds the records on the current page.
	Items []types.ResearchRecord `json:"items" yaml:"items"`

	// Total is the number of records that survived filtering.
	Total int `json:"total" yaml:"total"`

	// Page is the requested page clamped into [1, TotalPages].
	Page int `json:"page" yaml:"page"`

	// PageSize is the effective page size.
	PageSize int `json:"page_size" yaml:"page_size"`

	// TotalPages is max(1, ceil(Total/PageSize)).
	TotalPages int `json:"total_pages" yaml:"total_pages"`

	// Start and End are the 1-based display range of Items within the full
	// result ("Showing Start-End of Total"). Both are 0 when Total is 0.
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// TotalPages returns max(1, ceil(total/pageSize)). A non-positive page size
// counts as 1.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 {
		pageSize = 1
	}
	pages := total / pageSize
	if total%pageSize != 0 {
		pages++
	}
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage constrains page into [1, totalPages].
func ClampPage(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

// Paginate windows sorted into a single page. The requested page is clamped
// first, so any input is accepted.
func Paginate(sorted []types.ResearchRecord, page, pageSize int) Result {
	if pageSize <= 0 {
		pageSize = 1
	}
	total := len(sorted)
	totalPages := TotalPages(total, pageSize)
	page = ClampPage(page, totalPages)

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}

	res := Result{
		Items:      sorted[start:end:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
	if total > 0 {
		res.Start = start + 1
		res.End = end
	}
	return res
}
