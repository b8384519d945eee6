package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"ShinnPerfume/internal/api"
	"ShinnPerfume/internal/catalog"
	"ShinnPerfume/internal/config"
	"ShinnPerfume/internal/kv"
	"ShinnPerfume/internal/memory"
	"ShinnPerfume/pkg/kit"
)

const openTimeout = 10 * time.Second

func main() {
	service := "catalog"

	cfg, err := config.LoadCatalog("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := kit.NewLogger(service, cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	storeCfg := kv.Config{
		Driver:        cfg.Store.Driver,
		DSN:           cfg.Store.DSN,
		RedisAddr:     cfg.Store.RedisAddr,
		RedisPassword: cfg.Store.RedisPassword,
		RedisDB:       cfg.Store.RedisDB,
	}

	ctx, cancel := context.WithTimeout(context.Background(), openTimeout)
	store, err := kv.Open(ctx, storeCfg)
	cancel()
	if err != nil {
		log.Fatal("open store failed", zap.String("driver", storeCfg.Driver), zap.Error(err))
	}
	log.Info("store opened", zap.Any("store", kv.Describe(storeCfg)))

	deps := api.Deps{
		Store:       store,
		StoreConfig: storeCfg,
		Catalog: &catalog.Server{
			Service: catalog.NewService(store, log),
			Log:     log,
		},
		Memory: &memory.Server{
			Service: memory.NewService(store, log, cfg.MemoryMaxMessages),
			Log:     log,
		},
	}

	h := api.NewHandler(deps, api.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       prometheus.NewRegistry(),
		MetricsEnabled: cfg.MetricsEnabled,
		AdminToken:     cfg.AdminToken,
		CORSOrigins:    cfg.CORSOrigins,
	})

	closeStore := func() {
		if err := store.Close(); err != nil {
			log.Warn("close store", zap.Error(err))
		}
	}
	if err := kit.RunHTTPServer(":"+cfg.Port, h, log, closeStore); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}
