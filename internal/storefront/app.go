package storefront

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"ShinnPerfume/internal/auth"
	"ShinnPerfume/pkg/kit"
)

const (
	readyTimeout = 2 * time.Second

	loginAttemptsPerMin = 5
)

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string

	ChatRateLimitPerMin int
	// RateLimitRedis backs the limiters when non-nil.
	RateLimitRedis redis.UniversalClient
}

func (d HTTPDeps) limiter(name string, limit int) *kit.RateLimiter {
	if d.RateLimitRedis != nil {
		return kit.NewRedisRateLimiter(d.RateLimitRedis, "shinn:ratelimit:"+name, limit, time.Minute)
	}
	return kit.NewRateLimiter(limit, time.Minute)
}

func NewHandler(s *Server, deps HTTPDeps) http.Handler {
	if s.Log == nil {
		s.Log = zap.NewNop()
	}

	loginLimiter := deps.limiter("login", loginAttemptsPerMin)
	chatLimiter := deps.limiter("chat", deps.ChatRateLimitPerMin)

	r := chi.NewRouter()
	kit.UseStandard(r, deps.Log)
	r.Use(kit.CORS(nil))
	kit.SetupMetrics(r, kit.MetricsDeps{
		Service:  deps.Service,
		Registry: deps.Registry,
		Enabled:  deps.MetricsEnabled,
		Token:    deps.MetricsToken,
	})

	r.Get("/healthz", healthz)
	r.Get("/readyz", s.readyz)

	r.Get("/catalog", s.snapshot)
	r.Get("/catalog/{category}", s.byCategory)

	r.With(chatLimiter.Middleware).Post("/chat", s.chat)
	r.With(loginLimiter.Middleware).Post("/admin/login", s.login)

	r.Group(func(ar chi.Router) {
		ar.Use(auth.RequireRole(s.Tokens, auth.RoleAdmin))

		ar.Post("/admin/perfumes", s.addPerfume)
		ar.Put("/admin/perfumes/{category}/{id}", s.updatePerfume)
		ar.Delete("/admin/perfumes/{category}/{id}", s.deletePerfume)
		ar.Delete("/admin/perfumes", s.clearAll)
		ar.Post("/admin/refresh", s.refresh)
		ar.Post("/admin/reset", s.reset)
		ar.Get("/admin/debug", s.debug)
	})

	return r
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if err := s.Catalog.Health(ctx); err != nil {
		s.Log.Warn("readyz failed: catalog", zap.Error(err))
		kit.WriteError(w, r, http.StatusServiceUnavailable, "catalog not ready", nil)
		return
	}
	w.WriteHeader(http.StatusOK)
}
