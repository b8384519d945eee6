package kv

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const defaultSQLitePath = "data/shinn.db"

// SQLiteStore is a single-file backend for local runs. It holds one
// connection, so transactions never overlap.
type SQLiteStore struct {
	sqlStore
}

func OpenSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	if path == "" {
		path = defaultSQLitePath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("kv: create sqlite dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("kv: open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{sqlStore{
		db:      db,
		wrapErr: func(err error) error { return err },
		q: sqlQueries{
			schema: `
				CREATE TABLE IF NOT EXISTS kv_store (
					key   TEXT PRIMARY KEY,
					value TEXT NOT NULL
				)`,
			get: `SELECT value FROM kv_store WHERE key = ?`,
			set: `
				INSERT INTO kv_store (key, value)
				VALUES (?, ?)
				ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			del: `DELETE FROM kv_store WHERE key = ?`,
			scan: `
				SELECT key, value
				FROM kv_store
				WHERE substr(key, 1, length(?)) = ?
				ORDER BY key ASC`,
			scanArgs: func(prefix string) []any { return []any{prefix, prefix} },
		},
	}}

	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("kv: migrate sqlite: %w", err)
	}
	return s, nil
}
