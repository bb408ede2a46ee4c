// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bookmark

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/pdiddy/research-catalog/internal/metrics"
	"github.com/pdiddy/research-catalog/pkg/types"
)

// ErrInvalidID is returned when toggling an id that cannot be a record id.
var ErrInvalidID = errors.New("invalid bookmark id")

// Manager owns the session's bookmark set and writes every change through
// to a Persister.
type Manager struct {
	mu        sync.Mutex
	set       *Set
	persister Persister
	logger    *zap.Logger
}

// NewManager loads the persisted set through p. When the load fails the
// returned Manager is still usable with an empty set, and the error is a
// *PersistenceError the caller should surface as a notification.
func NewManager(ctx context.Context, p Persister, logger *zap.Logger) (*Manager, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Manager{set: NewSet(), persister: p, logger: logger}

	ids, err := p.Load(ctx)
	if err != nil {
		perr := &PersistenceError{Op: "load", Backend: backendName(p), Err: err}
		metrics.ObservePersistFailure(perr.Op)
		logger.Warn("bookmark load failed, starting empty",
			zap.String("backend", perr.Backend), zap.Error(err))
		return m, perr
	}
	m.set = NewSet(ids...)
	logger.Debug("bookmarks loaded",
		zap.String("backend", backendName(p)), zap.Int("count", m.set.Len()))
	return m, nil
}

// Toggle flips membership of id, persists the new set, and reports whether
// id is bookmarked afterwards. A save failure returns a *PersistenceError
// alongside the new membership; the in-memory change is kept.
func (m *Manager) Toggle(ctx context.Context, id int) (bool, error) {
	if !ValidID(id) {
		return false, fmt.Errorf("%w: %d", ErrInvalidID, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	added := m.set.Toggle(id)
	metrics.ObserveToggle(added)

	if err := m.persister.Save(ctx, m.set.IDs()); err != nil {
		perr := &PersistenceError{Op: "save", Backend: backendName(m.persister), Err: err}
		metrics.ObservePersistFailure(perr.Op)
		m.logger.Warn("bookmark save failed",
			zap.Int("id", id), zap.Bool("bookmarked", added),
			zap.String("backend", perr.Backend), zap.Error(err))
		return added, perr
	}
	return added, nil
}

// Has reports whether id is bookmarked.
func (m *Manager) Has(id int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.set.Has(id)
}

// IDs returns the bookmarked ids in ascending order.
func (m *Manager) IDs() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.set.IDs()
}

// Len returns the number of bookmarks.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.set.Len()
}

// Saved returns the bookmarked records among records, in their given order.
func (m *Manager) Saved(records []types.ResearchRecord) []types.ResearchRecord {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []types.ResearchRecord
	for _, r := range records {
		if m.set.Has(r.ID) {
			out = append(out, r)
		}
	}
	return out
}
