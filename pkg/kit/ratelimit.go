package kit

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const counterTimeout = 2 * time.Second

// WindowCounter counts hits for key inside the fixed window slot it belongs to.
type WindowCounter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimiter is a fixed-window limiter keyed by route and client IP.
// A limit of zero or less disables it. Counter failures reject the request.
type RateLimiter struct {
	limit   int
	window  time.Duration
	counter WindowCounter
}

// NewRateLimiter counts in process memory.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{limit: limit, window: window, counter: newMemoryCounter(time.Now)}
}

// NewRedisRateLimiter shares quotas between replicas through Redis.
func NewRedisRateLimiter(rdb redis.UniversalClient, prefix string, limit int, window time.Duration) *RateLimiter {
	if prefix == "" {
		prefix = "shinn:ratelimit"
	}
	return &RateLimiter{
		limit:   limit,
		window:  window,
		counter: &redisCounter{rdb: rdb, prefix: prefix, now: time.Now},
	}
}

func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(r.Context(), r.URL.Path+"|"+ClientIP(r)) {
			w.Header().Set("Retry-After", strconv.Itoa(int(l.window.Seconds())))
			WriteError(w, r, http.StatusTooManyRequests, "too many requests", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Allow records a hit for key and reports whether it is within quota.
func (l *RateLimiter) Allow(ctx context.Context, key string) bool {
	if l == nil || l.limit <= 0 || l.window <= 0 {
		return true
	}

	ctx, cancel := context.WithTimeout(ctx, counterTimeout)
	defer cancel()

	n, err := l.counter.Incr(ctx, key, l.window)
	if err != nil {
		return false
	}
	return n <= int64(l.limit)
}

type slotCount struct {
	slot int64
	n    int64
}

type memoryCounter struct {
	mu     sync.Mutex
	counts map[string]slotCount
	now    func() time.Time
}

func newMemoryCounter(now func() time.Time) *memoryCounter {
	return &memoryCounter{counts: make(map[string]slotCount), now: now}
}

func (c *memoryCounter) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	slot := windowSlot(c.now(), window)

	c.mu.Lock()
	defer c.mu.Unlock()

	sc := c.counts[key]
	if sc.slot != slot {
		// stale slots of other keys go when the map would otherwise only grow
		if len(c.counts) > 4096 {
			c.evictBefore(slot)
		}
		sc = slotCount{slot: slot}
	}
	sc.n++
	c.counts[key] = sc
	return sc.n, nil
}

func (c *memoryCounter) evictBefore(slot int64) {
	for k, sc := range c.counts {
		if sc.slot < slot {
			delete(c.counts, k)
		}
	}
}

var fixedWindowScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count
`)

type redisCounter struct {
	rdb    redis.UniversalClient
	prefix string
	now    func() time.Time
}

func (c *redisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	slot := windowSlot(c.now(), window)
	rkey := fmt.Sprintf("%s:%s:%d", c.prefix, key, slot)
	return fixedWindowScript.Run(ctx, c.rdb, []string{rkey}, window.Milliseconds()).Int64()
}

func windowSlot(t time.Time, window time.Duration) int64 {
	return t.UTC().UnixMilli() / window.Milliseconds()
}

func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}
