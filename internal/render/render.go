// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns pipeline results into terminal tables, JSON, YAML,
// pager controls, and share links. It reads query results and never
// changes them.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/research-catalog/internal/query"
	"github.com/pdiddy/research-catalog/pkg/types"
)

// Marker reports whether a record is bookmarked.
type Marker interface {
	Has(id int) bool
}

type noMarks struct{}

func (noMarks) Has(int) bool { return false }

// Summary returns the display range line for res.
func Summary(res query.Result) string {
	if res.Total == 0 {
		return "No results found."
	}
	return fmt.Sprintf("Showing %d-%d of %d results", res.Start, res.End, res.Total)
}

// Table writes one page of results as a fixed-width table followed by the
// display range and pager. Bookmarked rows are marked with '*'. marks may
// be nil.
func Table(w io.Writer, res query.Result, marks Marker) {
	if marks == nil {
		marks = noMarks{}
	}
	if res.Total == 0 {
		fmt.Fprintln(w, Summary(res))
		return
	}

	fmt.Fprintf(w, "%-1s %-4s  %-48s  %-20s  %-4s  %-10s  %s\n",
		"", "ID", "Title", "Authors", "Year", "Type", "Keywords")
	fmt.Fprintln(w, strings.Repeat("-", 120))

	for _, r := range res.Items {
		mark := ""
		if marks.Has(r.ID) {
			mark = "*"
		}
		fmt.Fprintf(w, "%-1s %-4d  %-48s  %-20s  %-4d  %-10s  %s\n",
			mark, r.ID, truncate(r.Title, 48), truncate(r.Authors, 20),
			r.Year, r.Type, strings.Join(r.DisplayKeywords(), ", "))
	}

	fmt.Fprintf(w, "\n%s\n", Summary(res))
	if res.TotalPages > 1 {
		fmt.Fprintln(w, FormatPager(Pager(res.Page, res.TotalPages)))
	}
}

// Detail writes every field of a single record.
func Detail(w io.Writer, r types.ResearchRecord, bookmarked bool) {
	fmt.Fprintf(w, "%s\n", r.Title)
	fmt.Fprintf(w, "  ID:       %d\n", r.ID)
	fmt.Fprintf(w, "  Authors:  %s\n", r.Authors)
	fmt.Fprintf(w, "  Year:     %d\n", r.Year)
	fmt.Fprintf(w, "  Type:     %s\n", r.Type)
	if len(r.Subjects) > 0 {
		fmt.Fprintf(w, "  Subjects: %s\n", strings.Join(r.Subjects, ", "))
	}
	if len(r.Keywords) > 0 {
		fmt.Fprintf(w, "  Keywords: %s\n", strings.Join(r.Keywords, ", "))
	}
	if r.Link != "" {
		fmt.Fprintf(w, "  Link:     %s\n", r.Link)
	}
	if bookmarked {
		fmt.Fprintln(w, "  Saved:    yes")
	}
	if r.Abstract != "" {
		fmt.Fprintf(w, "\n  %s\n", r.Abstract)
	}
}

// JSON writes res as indented JSON.
func JSON(w io.Writer, res query.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// YAML writes res as YAML.
func YAML(w io.Writer, res query.Result) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	enc.SetIndent(2)
	return enc.Encode(res)
}

// Output writes res in the named format: table, json, or yaml.
func Output(w io.Writer, format string, res query.Result, marks Marker) error {
	switch format {
	case "", "table":
		Table(w, res, marks)
		return nil
	case "json":
		return JSON(w, res)
	case "yaml":
		return YAML(w, res)
	default:
		return fmt.Errorf("unsupported format %q: use table, json, or yaml", format)
	}
}

// truncate shortens s to max runes, ending in "...".
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
