// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-catalog/internal/bookmark"
	"github.com/pdiddy/research-catalog/internal/catalog"
	"github.com/pdiddy/research-catalog/internal/metrics"
	"github.com/pdiddy/research-catalog/internal/query"
	"github.com/pdiddy/research-catalog/internal/render"
	"github.com/pdiddy/research-catalog/pkg/types"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog interactively",
	Long: `Browse reads lines from standard input. A plain line replaces the search
query; bursts of query lines are debounced (catalog.debounce_window) so only
the last one is run. An empty line clears the query. Lines starting with ':'
are commands and apply immediately. Type :help for the command list.`,
	RunE: runBrowse,
}

const browseHelp = `Commands:
  :sort relevance|date_desc|date_asc|title
  :type <type>            toggle a record type
  :subject <subject>      toggle a subject
  :years <from> <to>      set the year range
  :last <n>               last n years
  :current                current year only
  :reset                  restore default filters
  :page <n> | :next | :prev
  :bookmark <id>          toggle a bookmark
  :saved                  list bookmarked records
  :show <id>              show one record
  :share <id>             print a share link
  :stats                  print session metrics
  :save <path> | :load <path>   write or read the query state
  :help | :quit`

func runBrowse(cmd *cobra.Command, args []string) error {
	store, err := openCatalog(appConfig)
	if err != nil {
		return err
	}
	ctx := context.Background()
	marks, closeBookmarks, err := openBookmarks(ctx, appConfig, os.Stdout)
	if err != nil {
		return err
	}
	defer closeBookmarks()

	b := newBrowser(ctx, store, marks, appConfig.Catalog, os.Stdout)
	if err := applyQueryFlags(cmd, b.ctrl, ""); err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, "Type a query, or :help for commands.")
	if err := b.run(os.Stdin); err != nil {
		return err
	}
	return saveStateFlag(cmd, b.ctrl)
}

// browser is an interactive session: one controller, one bookmark set,
// and a debouncer in front of query input.
type browser struct {
	ctx       context.Context
	store     *catalog.Store
	marks     *bookmark.Manager
	ctrl      *query.Controller
	debounce  *query.Debouncer
	shareBase string

	outMu sync.Mutex
	out   io.Writer
}

func newBrowser(ctx context.Context, store *catalog.Store, marks *bookmark.Manager, cfg types.CatalogConfig, out io.Writer) *browser {
	b := &browser{
		ctx:       ctx,
		store:     store,
		marks:     marks,
		ctrl:      query.NewController(store, cfg, query.WithLogger(logger)),
		shareBase: cfg.ShareBaseURL,
		out:       out,
	}
	b.debounce = query.NewDebouncer(cfg.DebounceWindow, b.refresh)
	return b
}

// run processes lines from in until EOF or :quit. Pending query input is
// flushed before every command and at the end.
func (b *browser) run(in io.Reader) error {
	b.refresh()

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if !strings.HasPrefix(line, ":") {
			b.ctrl.SetQuery(line)
			b.debounce.Trigger()
			continue
		}

		b.debounce.Flush()
		quit, err := b.command(line[1:])
		if err != nil {
			b.printf("error: %v\n", err)
		}
		if quit {
			break
		}
	}
	b.debounce.Flush()
	b.debounce.Stop()
	return sc.Err()
}

// refresh runs the pipeline and renders the page unless a newer run has
// started in the meantime.
func (b *browser) refresh() {
	res, gen := b.ctrl.Run()
	b.ctrl.Apply(gen, func() {
		b.outMu.Lock()
		defer b.outMu.Unlock()
		render.Table(b.out, res, b.marks)
	})
}

func (b *browser) printf(format string, args ...any) {
	b.outMu.Lock()
	defer b.outMu.Unlock()
	fmt.Fprintf(b.out, format, args...)
}

// command executes one ':' command and reports whether the session ends.
func (b *browser) command(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, fmt.Errorf("empty command; try :help")
	}
	name, rest := fields[0], strings.TrimSpace(strings.TrimPrefix(line, fields[0]))

	switch name {
	case "quit", "q", "exit":
		return true, nil
	case "help", "h":
		b.printf("%s\n", browseHelp)
		return false, nil

	case "sort":
		mode := types.SortMode(rest)
		if !mode.Valid() {
			return false, fmt.Errorf("unsupported sort %q", rest)
		}
		b.ctrl.SetSort(mode)
	case "type":
		if rest == "" {
			return false, fmt.Errorf("usage: :type <type>")
		}
		on := b.ctrl.ToggleType(types.RecordType(rest))
		b.printf("type %s %s\n", rest, onOff(on))
	case "subject":
		if rest == "" {
			return false, fmt.Errorf("usage: :subject <subject>")
		}
		on := b.ctrl.ToggleSubject(rest)
		b.printf("subject %s %s\n", rest, onOff(on))
	case "years":
		nums, err := ints(fields[1:], 2)
		if err != nil {
			return false, fmt.Errorf("usage: :years <from> <to>: %w", err)
		}
		b.ctrl.SetYearRange(nums[0], nums[1])
	case "last":
		nums, err := ints(fields[1:], 1)
		if err != nil || nums[0] < 0 {
			return false, fmt.Errorf("usage: :last <n>")
		}
		b.ctrl.SetLastYears(nums[0])
	case "current":
		b.ctrl.SetCurrentYear()
	case "reset":
		b.ctrl.Reset()
	case "page":
		nums, err := ints(fields[1:], 1)
		if err != nil {
			return false, fmt.Errorf("usage: :page <n>")
		}
		b.ctrl.SetPage(nums[0])
	case "next", "n":
		b.ctrl.NextPage()
	case "prev", "p":
		b.ctrl.PrevPage()

	case "bookmark", "b":
		return false, b.toggleBookmark(rest)
	case "saved":
		saved := b.marks.Saved(b.store.All())
		b.outMu.Lock()
		render.Table(b.out, query.Paginate(saved, 1, max(1, len(saved))), b.marks)
		b.outMu.Unlock()
		return false, nil
	case "show":
		id, err := parseRecordID(rest)
		if err != nil {
			return false, err
		}
		rec, err := b.store.Get(id)
		if err != nil {
			return false, err
		}
		b.outMu.Lock()
		render.Detail(b.out, rec, b.marks.Has(id))
		b.outMu.Unlock()
		return false, nil
	case "share":
		return false, b.share(rest)
	case "stats":
		return false, b.stats()

	case "save":
		if rest == "" {
			return false, fmt.Errorf("usage: :save <path>")
		}
		if err := query.WriteStateFile(rest, b.ctrl.State()); err != nil {
			return false, err
		}
		b.printf("Saved query state to %s\n", rest)
		return false, nil
	case "load":
		if rest == "" {
			return false, fmt.Errorf("usage: :load <path>")
		}
		st, err := query.ReadStateFile(rest)
		if err != nil {
			return false, err
		}
		b.ctrl.Restore(st)

	default:
		return false, fmt.Errorf("unknown command :%s; try :help", name)
	}

	b.refresh()
	return false, nil
}

func (b *browser) toggleBookmark(arg string) error {
	id, err := parseRecordID(arg)
	if err != nil {
		return err
	}
	if _, err := b.store.Get(id); err != nil {
		return err
	}
	on, err := b.marks.Toggle(b.ctx, id)
	if err != nil {
		b.outMu.Lock()
		handled := notifyPersistence(b.out, err)
		b.outMu.Unlock()
		if !handled {
			return err
		}
	}
	if on {
		b.printf("Saved %d\n", id)
	} else {
		b.printf("Removed %d\n", id)
	}
	return nil
}

func (b *browser) share(arg string) error {
	id, err := parseRecordID(arg)
	if err != nil {
		return err
	}
	if _, err := b.store.Get(id); err != nil {
		return err
	}
	if b.shareBase == "" {
		return fmt.Errorf("no share base URL: set catalog.share_base_url")
	}
	link, err := render.ShareLink(b.shareBase, id)
	if err != nil {
		return err
	}
	b.printf("%s\n", link)
	return nil
}

func (b *browser) stats() error {
	snap, err := metrics.Snapshot()
	if err != nil {
		return err
	}
	for _, k := range metrics.SortedKeys(snap) {
		b.printf("%-60s %g\n", k, snap[k])
	}
	return nil
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

// ints parses exactly n integer arguments.
func ints(args []string, n int) ([]int, error) {
	if len(args) != n {
		return nil, fmt.Errorf("want %d numbers, got %d", n, len(args))
	}
	out := make([]int, n)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", a)
		}
		out[i] = v
	}
	return out, nil
}

func init() {
	addQueryFlags(browseCmd)

	rootCmd.AddCommand(browseCmd)
}
