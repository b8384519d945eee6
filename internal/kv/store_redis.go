package kv

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"
)

const (
	scanBatch         = 200
	maxUpdateAttempts = 16
)

var ErrUpdateContention = errors.New("kv: too many concurrent writers")

// RedisStore stores each value as a plain Redis string under its key.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr, password string, db int) *RedisStore {
	return NewRedisStoreFromClient(redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}))
}

func NewRedisStoreFromClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return s.client.Ping(ctx).Err()
	})
}

func (s *RedisStore) Close() error { return s.client.Close() }

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var v []byte
	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		var err error
		v, err = s.client.Get(ctx, key).Bytes()
		return err
	})
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	return withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.client.Set(ctx, key, value, 0).Err()
	})
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		if err := s.client.Del(ctx, key).Err(); err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		return nil
	})
}

func (s *RedisStore) ScanPrefix(ctx context.Context, prefix string) ([]Entry, error) {
	var out []Entry
	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		keys, err := s.scanKeys(ctx, escapeGlob(prefix)+"*")
		if err != nil {
			return err
		}
		if len(keys) == 0 {
			out = []Entry{}
			return nil
		}
		sort.Strings(keys)

		vals, err := s.client.MGet(ctx, keys...).Result()
		if err != nil {
			return err
		}

		out = make([]Entry, 0, len(keys))
		for i, v := range vals {
			str, ok := v.(string)
			if !ok {
				// deleted between SCAN and MGET
				continue
			}
			out = append(out, Entry{Key: keys[i], Value: []byte(str)})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *RedisStore) scanKeys(ctx context.Context, match string) ([]string, error) {
	seen := make(map[string]struct{})
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, match, scanBatch).Result()
		if err != nil {
			return nil, err
		}
		for _, k := range keys {
			seen[k] = struct{}{}
		}
		if next == 0 {
			break
		}
		cursor = next
	}

	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	return out, nil
}

// Update uses WATCH/MULTI optimistic locking and retries when another client
// touched the key between the read and the EXEC.
func (s *RedisStore) Update(ctx context.Context, key string, fn UpdateFunc) ([]byte, error) {
	var result []byte

	txf := func(ctx context.Context, tx *redis.Tx) error {
		old, err := tx.Get(ctx, key).Bytes()
		found := true
		if errors.Is(err, redis.Nil) {
			found, err = false, nil
		}
		if err != nil {
			return err
		}

		next, err := fn(old, found)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, next, 0)
			return nil
		})
		if err == nil {
			result = next
		}
		return err
	}

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
			return s.client.Watch(ctx, func(tx *redis.Tx) error { return txf(ctx, tx) }, key)
		})
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return result, nil
	}
	return nil, fmt.Errorf("%w: key %s", ErrUpdateContention, key)
}

// escapeGlob quotes the characters Redis MATCH treats as pattern syntax.
func escapeGlob(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
