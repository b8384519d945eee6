package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newRedisTestStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	s := NewRedisStoreFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newSQLiteTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLiteStore(context.Background(), filepath.Join(t.TempDir(), "kv.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestMemStore(t *testing.T)    { runStoreContract(t, NewMemStore()) }
func TestRedisStore(t *testing.T)  { runStoreContract(t, newRedisTestStore(t)) }
func TestSQLiteStore(t *testing.T) { runStoreContract(t, newSQLiteTestStore(t)) }

// runStoreContract is shared by every backend test, including the
// postgres integration test.
func runStoreContract(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("get missing", func(t *testing.T) {
		_, found, err := s.Get(ctx, "missing")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if found {
			t.Fatalf("missing key reported as found")
		}
	})

	t.Run("set get overwrite", func(t *testing.T) {
		if err := s.Set(ctx, "perfume:her:1", []byte(`{"id":1,"name":"A"}`)); err != nil {
			t.Fatalf("set: %v", err)
		}
		if err := s.Set(ctx, "perfume:her:1", []byte(`{"id":1,"name":"B"}`)); err != nil {
			t.Fatalf("set: %v", err)
		}
		v, found, err := s.Get(ctx, "perfume:her:1")
		if err != nil || !found {
			t.Fatalf("get: found=%v err=%v", found, err)
		}
		assertJSONField(t, v, "name", "B")
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		if err := s.Delete(ctx, "perfume:her:1"); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if err := s.Delete(ctx, "perfume:her:1"); err != nil {
			t.Fatalf("second delete: %v", err)
		}
		if _, found, _ := s.Get(ctx, "perfume:her:1"); found {
			t.Fatalf("key still present after delete")
		}
	})

	t.Run("scan prefix", func(t *testing.T) {
		for _, k := range []string{"perfume:him:2", "perfume:her:2", "perfume:her:1", "chat_memory:s1", "perfume_x"} {
			if err := s.Set(ctx, k, []byte(fmt.Sprintf(`{"key":%q}`, k))); err != nil {
				t.Fatalf("set %s: %v", k, err)
			}
		}

		got, err := s.ScanPrefix(ctx, "perfume:")
		if err != nil {
			t.Fatalf("scan: %v", err)
		}
		want := []string{"perfume:her:1", "perfume:her:2", "perfume:him:2"}
		if len(got) != len(want) {
			t.Fatalf("scan returned %d entries, want %d: %+v", len(got), len(want), got)
		}
		for i, e := range got {
			if e.Key != want[i] {
				t.Fatalf("entry %d key=%s want=%s", i, e.Key, want[i])
			}
			assertJSONField(t, e.Value, "key", want[i])
		}

		her, err := s.ScanPrefix(ctx, "perfume:her:")
		if err != nil {
			t.Fatalf("scan her: %v", err)
		}
		if len(her) != 2 {
			t.Fatalf("her entries=%d", len(her))
		}

		none, err := s.ScanPrefix(ctx, "nothing:")
		if err != nil {
			t.Fatalf("scan none: %v", err)
		}
		if len(none) != 0 {
			t.Fatalf("expected no entries, got %d", len(none))
		}
	})

	t.Run("update creates and modifies", func(t *testing.T) {
		fn := func(old []byte, found bool) ([]byte, error) {
			n := 0
			if found {
				var doc struct {
					N int `json:"n"`
				}
				if err := json.Unmarshal(old, &doc); err != nil {
					return nil, err
				}
				n = doc.N
			}
			return []byte(fmt.Sprintf(`{"n":%d}`, n+1)), nil
		}

		if _, err := s.Update(ctx, "counter", fn); err != nil {
			t.Fatalf("update: %v", err)
		}
		v, err := s.Update(ctx, "counter", fn)
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		assertJSONNumber(t, v, "n", 2)
	})

	t.Run("update error leaves value", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := s.Update(ctx, "counter", func([]byte, bool) ([]byte, error) { return nil, boom })
		if !errors.Is(err, boom) {
			t.Fatalf("err=%v want boom", err)
		}
		v, _, _ := s.Get(ctx, "counter")
		assertJSONNumber(t, v, "n", 2)
	})

	t.Run("concurrent updates do not lose writes", func(t *testing.T) {
		const workers = 8
		var wg sync.WaitGroup
		errCh := make(chan error, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := s.Update(ctx, "race", func(old []byte, found bool) ([]byte, error) {
					var doc struct {
						N int `json:"n"`
					}
					if found {
						if err := json.Unmarshal(old, &doc); err != nil {
							return nil, err
						}
					}
					doc.N++
					return json.Marshal(doc)
				})
				errCh <- err
			}()
		}
		wg.Wait()
		close(errCh)
		for err := range errCh {
			if err != nil {
				t.Fatalf("update: %v", err)
			}
		}

		v, _, err := s.Get(ctx, "race")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		assertJSONNumber(t, v, "n", workers)
	})
}

func assertJSONField(t *testing.T, raw []byte, field, want string) {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
	if m[field] != want {
		t.Fatalf("%s=%v want=%s", field, m[field], want)
	}
}

func assertJSONNumber(t *testing.T, raw []byte, field string, want int) {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
	if m[field] != float64(want) {
		t.Fatalf("%s=%v want=%d", field, m[field], want)
	}
}

func TestEscapeGlob(t *testing.T) {
	if got := escapeGlob(`a*b?[c]\`); got != `a\*b\?\[c\]\\` {
		t.Fatalf("escapeGlob=%q", got)
	}
}

func TestDescribe_RedactsPassword(t *testing.T) {
	info := Describe(Config{Driver: "postgres", DSN: "postgres://shinn:hunter2@db:5432/shinn?sslmode=disable"})
	if info.TableName != TableName {
		t.Fatalf("table=%q", info.TableName)
	}
	if info.DSN != "postgres://shinn:xxxxx@db:5432/shinn?sslmode=disable" {
		t.Fatalf("dsn=%q", info.DSN)
	}

	if got := Describe(Config{}).Driver; got != "memory" {
		t.Fatalf("default driver=%q", got)
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	if _, err := Open(context.Background(), Config{Driver: "etcd"}); !errors.Is(err, ErrUnknownDriver) {
		t.Fatalf("err=%v", err)
	}
}
