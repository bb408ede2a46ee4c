// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bookmark

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore persists bookmarks in a SQLite table.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates the bookmark database at path and
// creates the schema if it does not exist.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS bookmarks (
		record_id INTEGER PRIMARY KEY,
		saved_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
	)`)
	return err
}

// Load returns every bookmarked id in ascending order.
func (s *SQLiteStore) Load(ctx context.Context) ([]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT record_id FROM bookmarks ORDER BY record_id`)
	if err != nil {
		return nil, fmt.Errorf("querying bookmarks: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Save replaces the stored set with ids in one transaction. Ids already
// present keep their original saved_at.
func (s *SQLiteStore) Save(ctx context.Context, ids []int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `CREATE TEMP TABLE IF NOT EXISTS keep (record_id INTEGER PRIMARY KEY)`); err != nil {
		return fmt.Errorf("creating keep table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM keep`); err != nil {
		return fmt.Errorf("clearing keep table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO keep (record_id) VALUES (?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()
	for _, id := range ids {
		if _, err := stmt.ExecContext(ctx, id); err != nil {
			return fmt.Errorf("staging bookmark %d: %w", id, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM bookmarks WHERE record_id NOT IN (SELECT record_id FROM keep)`); err != nil {
		return fmt.Errorf("deleting removed bookmarks: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO bookmarks (record_id) SELECT record_id FROM keep`); err != nil {
		return fmt.Errorf("inserting bookmarks: %w", err)
	}

	return tx.Commit()
}

// Close releases the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
