package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// sqlQueries holds the dialect-specific statements of a SQL backend.
type sqlQueries struct {
	schema   string
	get      string
	set      string
	del      string
	scan     string
	scanArgs func(prefix string) []any
	// lock serializes Update calls on one key inside tx; nil when the
	// backend already serializes transactions.
	lock func(ctx context.Context, tx *sql.Tx, key string) error
}

// sqlStore implements Store over a single key/value table.
type sqlStore struct {
	db      *sql.DB
	q       sqlQueries
	wrapErr func(error) error
}

func (s *sqlStore) Ping(ctx context.Context) error {
	return withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return s.wrapErr(s.db.PingContext(ctx))
	})
}

func (s *sqlStore) Close() error { return s.db.Close() }

func (s *sqlStore) migrate(ctx context.Context) error {
	return withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx, s.q.schema)
		return s.wrapErr(err)
	})
}

func (s *sqlStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var v string
	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, s.q.get, key).Scan(&v)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, s.wrapErr(err)
	}
	return []byte(v), true, nil
}

func (s *sqlStore) Set(ctx context.Context, key string, value []byte) error {
	return withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx, s.q.set, key, string(value))
		return s.wrapErr(err)
	})
}

func (s *sqlStore) Delete(ctx context.Context, key string) error {
	return withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx, s.q.del, key)
		return s.wrapErr(err)
	})
}

func (s *sqlStore) ScanPrefix(ctx context.Context, prefix string) ([]Entry, error) {
	var out []Entry

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		rows, err := s.db.QueryContext(ctx, s.q.scan, s.q.scanArgs(prefix)...)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]Entry, 0, 16)
		for rows.Next() {
			var (
				k string
				v string
			)
			if err := rows.Scan(&k, &v); err != nil {
				return err
			}
			out = append(out, Entry{Key: k, Value: []byte(v)})
		}
		return rows.Err()
	})

	if err != nil {
		return nil, s.wrapErr(err)
	}
	return out, nil
}

func (s *sqlStore) Update(ctx context.Context, key string, fn UpdateFunc) ([]byte, error) {
	var result []byte

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer func() { _ = tx.Rollback() }()

		if s.q.lock != nil {
			if err := s.q.lock(ctx, tx, key); err != nil {
				return err
			}
		}

		var (
			old   string
			found = true
		)
		err = tx.QueryRowContext(ctx, s.q.get, key).Scan(&old)
		if errors.Is(err, sql.ErrNoRows) {
			found, err = false, nil
		}
		if err != nil {
			return err
		}

		var oldBytes []byte
		if found {
			oldBytes = []byte(old)
		}
		next, err := fn(oldBytes, found)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, s.q.set, key, string(next)); err != nil {
			return err
		}
		if err := tx.Commit(); err != nil {
			return err
		}
		result = next
		return nil
	})

	if err != nil {
		return nil, s.wrapErr(err)
	}
	return result, nil
}

// PostgresStore keeps values in a JSONB column of kv_store.
type PostgresStore struct {
	sqlStore
}

func OpenPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	if dsn == "" {
		return nil, errors.New("kv: postgres dsn is required")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("kv: open postgres: %w", err)
	}
	s := NewPostgresStore(db)
	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("kv: migrate postgres: %w", err)
	}
	return s, nil
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{sqlStore{
		db:      db,
		wrapErr: wrapPgErr,
		q: sqlQueries{
			schema: `
				CREATE TABLE IF NOT EXISTS kv_store (
					key   TEXT PRIMARY KEY,
					value JSONB NOT NULL
				)`,
			get: `SELECT value::text FROM kv_store WHERE key = $1`,
			set: `
				INSERT INTO kv_store (key, value)
				VALUES ($1, $2::jsonb)
				ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
			del: `DELETE FROM kv_store WHERE key = $1`,
			scan: `
				SELECT key, value::text
				FROM kv_store
				WHERE starts_with(key, $1)
				ORDER BY key COLLATE "C" ASC`,
			scanArgs: func(prefix string) []any { return []any{prefix} },
			lock: func(ctx context.Context, tx *sql.Tx, key string) error {
				_, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, key)
				return err
			},
		},
	}}
}

// wrapPgErr keeps the SQLSTATE in the message so internal errors surfaced to
// API callers say what the database rejected.
func wrapPgErr(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("postgres %s: %s: %w", pgErr.Code, pgErr.Message, err)
	}
	return err
}
