package main

import (
	"context"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"ShinnPerfume/internal/auth"
	"ShinnPerfume/internal/catalog"
	"ShinnPerfume/internal/config"
	"ShinnPerfume/internal/storefront"
	"ShinnPerfume/pkg/kit"
)

func main() {
	service := "storefront"

	cfg, err := config.LoadStorefront("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := kit.NewLogger(service, cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	if cfg.AdminPasswordHash == "" {
		log.Warn("adminPasswordHash is empty, admin login is disabled")
	}
	if cfg.WebhookURL == "" {
		log.Warn("webhookURL is empty, chat relay is disabled")
	}

	client := storefront.NewClient(cfg.CatalogURL, cfg.CatalogToken, log)
	s := &storefront.Server{
		Provider:          storefront.NewProvider(client, catalog.DefaultPerfumes(), log),
		Catalog:           client,
		Relay:             storefront.NewChatRelay(cfg.WebhookURL),
		Tokens:            auth.NewTokenMaker(cfg.JWTSecret),
		AdminPasswordHash: cfg.AdminPasswordHash,
		Log:               log,
	}
	if cfg.PersistChat {
		s.Memory = storefront.NewMemoryClient(client)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Provider.Start(ctx)

	deps := storefront.HTTPDeps{
		Log:                 log,
		Service:             service,
		Registry:            prometheus.NewRegistry(),
		MetricsEnabled:      cfg.MetricsEnabled,
		MetricsToken:        cfg.MetricsToken,
		ChatRateLimitPerMin: cfg.ChatRateLimitPerMin,
	}
	if cfg.RateLimitRedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RateLimitRedisAddr})
		defer func() { _ = rdb.Close() }()
		deps.RateLimitRedis = rdb
	}
	h := storefront.NewHandler(s, deps)

	if err := kit.RunHTTPServer(":"+cfg.Port, h, log, cancel); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}
