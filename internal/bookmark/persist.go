// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bookmark

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/research-catalog/pkg/types"
)

// Persister loads and saves bookmarked ids. The stored form is a list of
// integer ids; duplicates are harmless and order carries no meaning.
type Persister interface {
	Load(ctx context.Context) ([]int, error)
	Save(ctx context.Context, ids []int) error
}

// Backend is a Persister holding resources that must be released.
type Backend interface {
	Persister
	io.Closer
}

// PersistenceError reports a failed load or save. It is non-fatal: the
// in-memory set stays authoritative for the session.
type PersistenceError struct {
	// Op is "load" or "save".
	Op string

	// Backend names the persistence backend.
	Backend string

	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("bookmark %s via %s failed: %v", e.Op, e.Backend, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Open returns the backend selected by cfg.
func Open(cfg types.BookmarkConfig) (Backend, error) {
	switch cfg.Backend {
	case types.BookmarkFile, "":
		return NewFileStore(cfg.Path), nil
	case types.BookmarkSQLite:
		return NewSQLiteStore(cfg.Path)
	case types.BookmarkRedis:
		return NewRedisStore(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported bookmark backend %q", cfg.Backend)
	}
}

// backendName returns a short label for p used in errors and logs.
func backendName(p Persister) string {
	switch p.(type) {
	case *FileStore:
		return string(types.BookmarkFile)
	case *SQLiteStore:
		return string(types.BookmarkSQLite)
	case *RedisStore:
		return string(types.BookmarkRedis)
	default:
		return fmt.Sprintf("%T", p)
	}
}
