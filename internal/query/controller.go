// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/research-catalog/internal/metrics"
	"github.com/pdiddy/research-catalog/pkg/types"
)

// Source provides the full, ordered record collection.
type Source interface {
	All() []types.ResearchRecord
}

// Controller owns a QueryState and runs the pipeline against a Source.
// Every setter except the explicit page changes resets the page to 1.
//
// A Controller has one logical writer. The mutex only keeps a
// multi-threaded host from corrupting the state.
type Controller struct {
	mu     sync.Mutex
	source Source
	state  types.QueryState
	known  []types.RecordType
	sort   types.SortMode
	reset  types.ResetDefaults
	opts   Options
	logger *zap.Logger
	now    func() time.Time
	gen    uint64

	// applyMu serializes Apply so renders happen in generation order.
	applyMu sync.Mutex
}

// ControllerOption customizes a Controller.
type ControllerOption func(*Controller)

// WithScorer replaces the relevance scorer.
func WithScorer(s Scorer) ControllerOption {
	return func(c *Controller) { c.opts.Scorer = s }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) ControllerOption {
	return func(c *Controller) { c.logger = l }
}

// WithClock overrides the clock used for year quick ranges.
func WithClock(now func() time.Time) ControllerOption {
	return func(c *Controller) { c.now = now }
}

// NewController returns a Controller over source with the default state
// derived from cfg.
func NewController(source Source, cfg types.CatalogConfig, opts ...ControllerOption) *Controller {
	known := cfg.Types
	if len(known) == 0 {
		known = types.KnownTypes
	}
	sortMode := cfg.DefaultSort
	if !sortMode.Valid() {
		sortMode = types.SortRelevance
	}

	c := &Controller{
		source: source,
		known:  append([]types.RecordType(nil), known...),
		sort:   sortMode,
		reset:  cfg.Reset,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, o := range opts {
		o(c)
	}

	c.state = types.DefaultQueryState(c.known, cfg.PageSize)
	c.state.Sort = c.sort
	return c
}

// State returns a copy of the current state.
func (c *Controller) State() types.QueryState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// Restore replaces the current state with a copy of s. A non-positive page
// size keeps the current one.
func (c *Controller) Restore(s types.QueryState) {
	c.mutate(false, func(st *types.QueryState) {
		pageSize := st.PageSize
		*st = s.Clone()
		if st.PageSize <= 0 {
			st.PageSize = pageSize
		}
		if st.Filters.Types == nil {
			st.Filters.Types = map[types.RecordType]bool{}
		}
		if st.Filters.Subjects == nil {
			st.Filters.Subjects = map[string]bool{}
		}
	})
}

// SetQuery sets the free-text query.
func (c *Controller) SetQuery(q string) {
	c.mutate(true, func(st *types.QueryState) { st.Query = q })
}

// SetSort sets the sort mode. Unknown modes are stored as given and behave
// as relevance.
func (c *Controller) SetSort(m types.SortMode) {
	c.mutate(true, func(st *types.QueryState) { st.Sort = m })
}

// SetTypes replaces the allowed type set.
func (c *Controller) SetTypes(ts []types.RecordType) {
	c.mutate(true, func(st *types.QueryState) {
		st.Filters.Types = make(map[types.RecordType]bool, len(ts))
		for _, t := range ts {
			st.Filters.Types[t] = true
		}
	})
}

// ToggleType adds or removes t from the allowed types and reports whether
// it is allowed afterwards.
func (c *Controller) ToggleType(t types.RecordType) bool {
	var on bool
	c.mutate(true, func(st *types.QueryState) {
		on = !st.Filters.Types[t]
		if on {
			st.Filters.Types[t] = true
		} else {
			delete(st.Filters.Types, t)
		}
	})
	return on
}

// SetSubjects replaces the allowed subject set. An empty list removes the
// subject restriction.
func (c *Controller) SetSubjects(subjects []string) {
	c.mutate(true, func(st *types.QueryState) {
		st.Filters.Subjects = make(map[string]bool, len(subjects))
		for _, s := range subjects {
			st.Filters.Subjects[s] = true
		}
	})
}

// ToggleSubject adds or removes s from the allowed subjects and reports
// whether it is selected afterwards.
func (c *Controller) ToggleSubject(s string) bool {
	var on bool
	c.mutate(true, func(st *types.QueryState) {
		on = !st.Filters.Subjects[s]
		if on {
			st.Filters.Subjects[s] = true
		} else {
			delete(st.Filters.Subjects, s)
		}
	})
	return on
}

// SetYearRange sets the inclusive year bounds. Inverted bounds are kept
// and simply match nothing.
func (c *Controller) SetYearRange(from, to int) {
	c.mutate(true, func(st *types.QueryState) {
		st.Filters.YearFrom = from
		st.Filters.YearTo = to
	})
}

// SetLastYears restricts the range to the last n years through the current
// year.
func (c *Controller) SetLastYears(n int) {
	from, to := LastYears(c.now(), n)
	c.SetYearRange(from, to)
}

// SetCurrentYear restricts the range to the current year.
func (c *Controller) SetCurrentYear() {
	y := c.now().Year()
	c.SetYearRange(y, y)
}

// SetPage requests a page. It is clamped on the next run.
func (c *Controller) SetPage(p int) {
	c.mutate(false, func(st *types.QueryState) { st.Page = p })
}

// NextPage advances one page. Running past the end clamps back.
func (c *Controller) NextPage() {
	c.mutate(false, func(st *types.QueryState) { st.Page++ })
}

// PrevPage moves back one page, stopping at 1.
func (c *Controller) PrevPage() {
	c.mutate(false, func(st *types.QueryState) {
		if st.Page > 1 {
			st.Page--
		}
	})
}

// Reset restores the configured reset defaults: empty query, default sort,
// the reset type and subject selections, and the reset year range.
func (c *Controller) Reset() {
	now := c.now()
	c.mutate(true, func(st *types.QueryState) {
		pageSize := st.PageSize
		*st = types.DefaultQueryState(c.known, pageSize)
		st.Sort = c.sort

		if len(c.reset.Types) > 0 {
			st.Filters.Types = make(map[types.RecordType]bool, len(c.reset.Types))
			for _, t := range c.reset.Types {
				st.Filters.Types[t] = true
			}
		}
		for _, s := range c.reset.Subjects {
			st.Filters.Subjects[s] = true
		}
		if c.reset.LastYears > 0 {
			st.Filters.YearFrom, st.Filters.YearTo = LastYears(now, c.reset.LastYears)
		}
	})
}

// Run executes the pipeline against the current state, writes the clamped
// page back into the state, and returns the result with its generation.
// Generations increase with every run; see Latest.
func (c *Controller) Run() (Result, uint64) {
	records := c.source.All()

	c.mu.Lock()
	state := c.state.Clone()
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	start := time.Now()
	res := Run(records, state, c.opts)
	elapsed := time.Since(start)

	c.mu.Lock()
	if c.gen == gen {
		c.state.Page = res.Page
	}
	c.mu.Unlock()

	metrics.ObserveRun(string(state.Sort), res.Total, elapsed)
	c.logger.Debug("query pipeline run",
		zap.Uint64("generation", gen),
		zap.String("query", state.Query),
		zap.String("sort", string(state.Sort)),
		zap.Int("total", res.Total),
		zap.Int("page", res.Page),
		zap.Int("total_pages", res.TotalPages),
		zap.Duration("elapsed", elapsed),
	)
	return res, gen
}

// Latest reports whether gen is the most recent run. Callers applying
// results asynchronously drop any result whose generation is stale.
func (c *Controller) Latest(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return gen == c.gen
}

// Apply calls fn only if gen is still the most recent run and reports
// whether it did. Calls are serialized: a newer generation's Apply waits
// for an older fn to return, so the newest result is always applied last.
func (c *Controller) Apply(gen uint64, fn func()) bool {
	c.applyMu.Lock()
	defer c.applyMu.Unlock()
	if !c.Latest(gen) {
		return false
	}
	fn()
	return true
}

func (c *Controller) mutate(resetPage bool, fn func(st *types.QueryState)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&c.state)
	if resetPage {
		c.state.Page = 1
	}
}

// LastYears returns the inclusive range covering the n years before now's
// year through now's year.
func LastYears(now time.Time, n int) (from, to int) {
	y := now.Year()
	if n < 0 {
		n = 0
	}
	return y - n, y
}
