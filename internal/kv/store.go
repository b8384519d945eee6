// Package kv is the key-value substrate under the catalog and chat memory.
// Values are JSON documents; keys are namespaced strings such as
// "perfume:her:1" or "chat_memory:<session>".
package kv

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second

	// TableName is the relational table used by the SQL backends.
	TableName = "kv_store"
)

var ErrUnknownDriver = errors.New("kv: unknown driver")

// Entry is one key with its stored value.
type Entry struct {
	Key   string
	Value []byte
}

// UpdateFunc computes the new value of a key from its current value. found is
// false when the key does not exist yet.
type UpdateFunc func(old []byte, found bool) ([]byte, error)

type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete succeeds when the key does not exist.
	Delete(ctx context.Context, key string) error
	// ScanPrefix returns every entry whose key starts with prefix, ordered by key.
	ScanPrefix(ctx context.Context, prefix string) ([]Entry, error)
	// Update applies fn atomically: no other writer to key interleaves between
	// the read and the write.
	Update(ctx context.Context, key string, fn UpdateFunc) ([]byte, error)
	Ping(ctx context.Context) error
	Close() error
}

// Config selects and configures a backend.
type Config struct {
	Driver        string
	DSN           string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Info describes where the data lives, with secrets redacted.
type Info struct {
	Driver    string `json:"driver"`
	DSN       string `json:"dsn,omitempty"`
	RedisAddr string `json:"redisAddr,omitempty"`
	TableName string `json:"tableName,omitempty"`
}

// Open builds the backend named by cfg.Driver.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch strings.ToLower(cfg.Driver) {
	case "", "memory":
		return NewMemStore(), nil
	case "redis":
		s := NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := s.Ping(ctx); err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("kv: redis ping: %w", err)
		}
		return s, nil
	case "postgres":
		return OpenPostgresStore(ctx, cfg.DSN)
	case "sqlite":
		return OpenSQLiteStore(ctx, cfg.DSN)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// Describe reports connection info for cfg without exposing passwords.
func Describe(cfg Config) Info {
	driver := strings.ToLower(cfg.Driver)
	if driver == "" {
		driver = "memory"
	}
	info := Info{Driver: driver}
	switch driver {
	case "redis":
		info.RedisAddr = cfg.RedisAddr
	case "postgres", "sqlite":
		info.DSN = redactDSN(cfg.DSN)
		info.TableName = TableName
	}
	return info
}

func redactDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.User == nil {
		return dsn
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), "xxxxx")
	}
	return u.String()
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}
