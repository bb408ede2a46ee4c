// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of triggers into a single call. Each Trigger
// restarts the window; fn runs once, window after the last trigger of a
// burst.
type Debouncer struct {
	mu      sync.Mutex
	window  time.Duration
	fn      func()
	timer   *time.Timer
	seq     uint64
	pending bool
}

// NewDebouncer returns a Debouncer calling fn after window of quiet. A
// non-positive window calls fn synchronously on every Trigger.
func NewDebouncer(window time.Duration, fn func()) *Debouncer {
	return &Debouncer{window: window, fn: fn}
}

// Trigger schedules fn, replacing any call still waiting.
func (d *Debouncer) Trigger() {
	if d.window <= 0 {
		d.fn()
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
	seq := d.seq
	d.pending = true
	d.timer = time.AfterFunc(d.window, func() { d.fire(seq) })
}

// Flush runs a waiting call immediately and reports whether there was one.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return false
	}
	d.cancelLocked()
	d.mu.Unlock()

	d.fn()
	return true
}

// Stop drops a waiting call and reports whether there was one.
func (d *Debouncer) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.pending {
		return false
	}
	d.cancelLocked()
	return true
}

// Pending reports whether a call is waiting.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

func (d *Debouncer) fire(seq uint64) {
	d.mu.Lock()
	if !d.pending || seq != d.seq {
		d.mu.Unlock()
		return
	}
	d.pending = false
	d.timer = nil
	d.mu.Unlock()

	d.fn()
}

func (d *Debouncer) cancelLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.seq++
	d.pending = false
}
