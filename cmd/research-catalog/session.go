// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-catalog/internal/bookmark"
	"github.com/pdiddy/research-catalog/internal/catalog"
	"github.com/pdiddy/research-catalog/internal/query"
	"github.com/pdiddy/research-catalog/pkg/types"
)

// openCatalog loads the configured records file or the sample records.
func openCatalog(cfg types.Config) (*catalog.Store, error) {
	store, err := catalog.Open(cfg.Catalog.RecordsFile)
	if err != nil {
		return nil, err
	}
	logger.Sugar().Debugw("catalog loaded", "records", store.Len(), "file", cfg.Catalog.RecordsFile)
	return store, nil
}

// openBookmarks opens the configured backend and loads the bookmark set.
// A load failure is printed as a warning and the session continues with an
// empty set. The returned close function releases the backend.
func openBookmarks(ctx context.Context, cfg types.Config, warn io.Writer) (*bookmark.Manager, func(), error) {
	backend, err := bookmark.Open(cfg.Bookmarks)
	if err != nil {
		return nil, nil, err
	}
	m, err := bookmark.NewManager(ctx, backend, logger)
	if err != nil {
		if !notifyPersistence(warn, err) {
			backend.Close()
			return nil, nil, err
		}
	}
	return m, func() { backend.Close() }, nil
}

// notifyPersistence prints a non-fatal persistence error and reports
// whether err was one.
func notifyPersistence(w io.Writer, err error) bool {
	var perr *bookmark.PersistenceError
	if !errors.As(err, &perr) {
		return false
	}
	fmt.Fprintf(w, "warning: %v\n", perr)
	return true
}

// addQueryFlags registers the flags that shape a query state.
func addQueryFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("sort", "", "sort mode: relevance, date_desc, date_asc, title (default from config)")
	f.StringSlice("type", nil, "record types to include (default: all known types)")
	f.StringSlice("subject", nil, "subjects to include (default: no restriction)")
	f.Int("from", 0, "earliest publication year")
	f.Int("to", 0, "latest publication year")
	f.Int("last-years", 0, "restrict to the last N years")
	f.Bool("current-year", false, "restrict to the current year")
	f.Int("page", 1, "page number (clamped to the available pages)")
	f.Int("page-size", 0, "records per page (default from config)")
	f.String("state", "", "load the query state from a YAML state file before applying flags")
	f.String("save-state", "", "write the final query state to a YAML state file")
}

// applyQueryFlags loads an optional state file and applies query flags to
// ctrl. Positional args are joined into the query text.
func applyQueryFlags(cmd *cobra.Command, ctrl *query.Controller, queryText string) error {
	f := cmd.Flags()

	if path, _ := f.GetString("state"); path != "" {
		st, err := query.ReadStateFile(path)
		if err != nil {
			return err
		}
		ctrl.Restore(st)
	}

	if f.Changed("page-size") {
		size, _ := f.GetInt("page-size")
		if size <= 0 {
			return fmt.Errorf("--page-size must be positive, got %d", size)
		}
		st := ctrl.State()
		st.PageSize = size
		ctrl.Restore(st)
	}

	if queryText != "" {
		ctrl.SetQuery(queryText)
	}
	if s, _ := f.GetString("sort"); s != "" {
		mode := types.SortMode(s)
		if !mode.Valid() {
			return fmt.Errorf("unsupported sort %q: use relevance, date_desc, date_asc, or title", s)
		}
		ctrl.SetSort(mode)
	}
	if f.Changed("type") {
		ts, _ := f.GetStringSlice("type")
		list := make([]types.RecordType, len(ts))
		for i, t := range ts {
			list[i] = types.RecordType(t)
		}
		ctrl.SetTypes(list)
	}
	if f.Changed("subject") {
		subjects, _ := f.GetStringSlice("subject")
		ctrl.SetSubjects(subjects)
	}

	st := ctrl.State()
	from, to := st.Filters.YearFrom, st.Filters.YearTo
	if f.Changed("from") {
		from, _ = f.GetInt("from")
	}
	if f.Changed("to") {
		to, _ = f.GetInt("to")
	}
	if f.Changed("from") || f.Changed("to") {
		ctrl.SetYearRange(from, to)
	}
	if n, _ := f.GetInt("last-years"); n > 0 {
		ctrl.SetLastYears(n)
	}
	if cur, _ := f.GetBool("current-year"); cur {
		ctrl.SetCurrentYear()
	}

	if f.Changed("page") {
		p, _ := f.GetInt("page")
		ctrl.SetPage(p)
	}
	return nil
}

// saveStateFlag writes ctrl's state when --save-state is set.
func saveStateFlag(cmd *cobra.Command, ctrl *query.Controller) error {
	path, _ := cmd.Flags().GetString("save-state")
	if path == "" {
		return nil
	}
	if err := query.WriteStateFile(path, ctrl.State()); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Saved query state to %s\n", path)
	return nil
}

// parseRecordID parses a record id argument.
func parseRecordID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || !bookmark.ValidID(id) {
		return 0, fmt.Errorf("invalid record id %q: must be a positive integer", s)
	}
	return id, nil
}
