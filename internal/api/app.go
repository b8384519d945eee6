// Package api assembles the catalog and chat memory routes into the HTTP
// handler served by cmd/catalog.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"ShinnPerfume/internal/catalog"
	"ShinnPerfume/internal/kv"
	"ShinnPerfume/internal/memory"
	"ShinnPerfume/pkg/kit"
)

const readyTimeout = 1 * time.Second

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	// AdminToken guards /metrics and /db-credentials.
	AdminToken  string
	CORSOrigins []string
}

type Deps struct {
	Store       kv.Store
	StoreConfig kv.Config
	Catalog     *catalog.Server
	Memory      *memory.Server
}

func NewHandler(deps Deps, httpDeps HTTPDeps) http.Handler {
	r := chi.NewRouter()

	kit.UseStandard(r, httpDeps.Log)
	r.Use(kit.CORS(httpDeps.CORSOrigins))
	kit.SetupMetrics(r, kit.MetricsDeps{
		Service:  httpDeps.Service,
		Registry: httpDeps.Registry,
		Enabled:  httpDeps.MetricsEnabled,
		Token:    httpDeps.AdminToken,
	})

	r.Get("/health", health)
	r.Get("/readyz", readyz(deps.Store, httpDeps.Log))
	r.With(kit.BearerAuth(httpDeps.AdminToken)).
		Get("/db-credentials", dbCredentials(deps.StoreConfig))

	deps.Catalog.Register(r)
	deps.Memory.Register(r)
	return r
}

func health(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func readyz(store kv.Store, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			if log != nil {
				log.Warn("readyz failed", zap.Error(err))
			}
			kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

func dbCredentials(cfg kv.Config) http.HandlerFunc {
	info := kv.Describe(cfg)
	return func(w http.ResponseWriter, _ *http.Request) {
		kit.WriteOK(w, map[string]any{"credentials": info})
	}
}
