package kit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestRateLimiter_FixedWindow(t *testing.T) {
	now := time.Unix(1_700_000_040, 0)
	l := NewRateLimiter(2, time.Minute)
	l.counter = newMemoryCounter(func() time.Time { return now })
	ctx := context.Background()

	if !l.Allow(ctx, "10.0.0.1") || !l.Allow(ctx, "10.0.0.1") {
		t.Fatalf("first two hits should pass")
	}
	if l.Allow(ctx, "10.0.0.1") {
		t.Fatalf("third hit inside window should be limited")
	}
	if !l.Allow(ctx, "10.0.0.2") {
		t.Fatalf("other key must have its own quota")
	}

	now = now.Add(time.Minute)
	if !l.Allow(ctx, "10.0.0.1") {
		t.Fatalf("hit in next window should pass")
	}
}

func TestRateLimiter_ZeroLimitDisables(t *testing.T) {
	l := NewRateLimiter(0, time.Minute)
	for i := 0; i < 100; i++ {
		if !l.Allow(context.Background(), "x") {
			t.Fatalf("disabled limiter rejected hit %d", i)
		}
	}
}

func TestRateLimiter_RedisSharedQuota(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	a := NewRedisRateLimiter(rdb, "test", 3, time.Minute)
	b := NewRedisRateLimiter(rdb, "test", 3, time.Minute)
	ctx := context.Background()

	for i, l := range []*RateLimiter{a, b, a} {
		if !l.Allow(ctx, "/chat|1.2.3.4") {
			t.Fatalf("hit %d should pass", i)
		}
	}
	if b.Allow(ctx, "/chat|1.2.3.4") {
		t.Fatalf("replicas must share the quota")
	}

	mr.Close()
	if a.Allow(ctx, "/chat|5.6.7.8") {
		t.Fatalf("counter failure must reject")
	}
}

func TestRateLimiter_MiddlewareSetsRetryAfter(t *testing.T) {
	l := NewRateLimiter(1, time.Minute)
	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }))

	for i, want := range []int{http.StatusOK, http.StatusTooManyRequests} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/login", nil))
		if rec.Code != want {
			t.Fatalf("hit %d: status=%d want=%d", i, rec.Code, want)
		}
		if want == http.StatusTooManyRequests && rec.Header().Get("Retry-After") != "60" {
			t.Fatalf("retry-after=%q", rec.Header().Get("Retry-After"))
		}
	}
}

func TestClientIP_PrefersForwardedFor(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.168.1.5:5555"
	if got := ClientIP(r); got != "192.168.1.5" {
		t.Fatalf("ip=%q", got)
	}

	r.Header.Set("X-Real-IP", "198.51.100.7")
	if got := ClientIP(r); got != "198.51.100.7" {
		t.Fatalf("ip=%q", got)
	}

	r.Header.Set("X-Forwarded-For", " 203.0.113.9 , 10.0.0.1")
	if got := ClientIP(r); got != "203.0.113.9" {
		t.Fatalf("ip=%q", got)
	}
}

func TestBearerAuth(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	cases := []struct {
		name   string
		token  string
		header string
		want   int
	}{
		{"no token configured", "", "Bearer anything", http.StatusForbidden},
		{"missing header", "s3cret", "", http.StatusForbidden},
		{"wrong token", "s3cret", "Bearer nope", http.StatusForbidden},
		{"match", "s3cret", "Bearer s3cret", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			BearerAuth(tc.token)(ok).ServeHTTP(rec, req)
			if rec.Code != tc.want {
				t.Fatalf("status=%d want=%d", rec.Code, tc.want)
			}
		})
	}
}

func TestWriteOK_AddsSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteOK(rec, map[string]any{"count": 3})

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["success"] != true || body["count"] != float64(3) {
		t.Fatalf("body=%v", body)
	}
}

func TestCORS_Preflight(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatalf("preflight must not reach handler")
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/perfumes", nil)
	req.Header.Set("Origin", "https://shop.example")

	CORS([]string{"https://shop.example"})(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status=%d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://shop.example" {
		t.Fatalf("allow-origin=%q", got)
	}
}
