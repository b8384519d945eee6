// Package config loads the YAML configuration of the catalog service and the
// storefront. Secrets and addresses can be overridden from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	ConfigPath = "config.yaml"

	minJWTSecretLen = 32
)

type StoreConfig struct {
	Driver        string `yaml:"driver"`
	DSN           string `yaml:"dsn"`
	RedisAddr     string `yaml:"redisAddr"`
	RedisPassword string `yaml:"redisPassword"`
	RedisDB       int    `yaml:"redisDB"`
}

// CatalogConfig configures cmd/catalog.
type CatalogConfig struct {
	Port              string      `yaml:"port"`
	LogLevel          string      `yaml:"logLevel"`
	Store             StoreConfig `yaml:"store"`
	AdminToken        string      `yaml:"adminToken"`
	MetricsEnabled    bool        `yaml:"metricsEnabled"`
	MemoryMaxMessages int         `yaml:"memoryMaxMessages"`
	CORSOrigins       []string    `yaml:"corsOrigins"`
}

// StorefrontConfig configures cmd/storefront.
type StorefrontConfig struct {
	Port                string `yaml:"port"`
	LogLevel            string `yaml:"logLevel"`
	CatalogURL          string `yaml:"catalogURL"`
	CatalogToken        string `yaml:"catalogToken"`
	WebhookURL          string `yaml:"webhookURL"`
	JWTSecret           string `yaml:"jwtSecret"`
	AdminPasswordHash   string `yaml:"adminPasswordHash"`
	PersistChat         bool   `yaml:"persistChat"`
	ChatRateLimitPerMin int    `yaml:"chatRateLimitPerMin"`
	MetricsEnabled      bool   `yaml:"metricsEnabled"`
	MetricsToken        string `yaml:"metricsToken"`
	// RateLimitRedisAddr shares rate-limit quotas between replicas when set.
	RateLimitRedisAddr string `yaml:"rateLimitRedisAddr"`
}

func defaultCatalog() CatalogConfig {
	return CatalogConfig{
		Port:     "8082",
		LogLevel: "info",
		Store:    StoreConfig{Driver: "memory"},
	}
}

func defaultStorefront() StorefrontConfig {
	return StorefrontConfig{
		Port:                "8080",
		LogLevel:            "info",
		CatalogURL:          "http://catalog:8082",
		ChatRateLimitPerMin: 20,
	}
}

// LoadCatalog reads path (CONFIG_PATH or config.yaml when empty). A missing
// file is not an error: defaults and the environment are used instead.
func LoadCatalog(path string) (CatalogConfig, error) {
	cfg := defaultCatalog()
	if err := readYAML(path, &cfg); err != nil {
		return cfg, err
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("STORE_DRIVER"); v != "" {
		cfg.Store.Driver = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Store.DSN = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Store.RedisAddr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Store.RedisPassword = v
	}
	if v := os.Getenv("ADMIN_TOKEN"); v != "" {
		cfg.AdminToken = v
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = splitList(v)
	}
	if err := envInt("MEMORY_MAX_MESSAGES", &cfg.MemoryMaxMessages); err != nil {
		return cfg, err
	}

	if err := validateCatalog(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadStorefront reads the storefront config the same way LoadCatalog does.
func LoadStorefront(path string) (StorefrontConfig, error) {
	cfg := defaultStorefront()
	if err := readYAML(path, &cfg); err != nil {
		return cfg, err
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("CATALOG_URL"); v != "" {
		cfg.CatalogURL = v
	}
	if v := os.Getenv("CATALOG_TOKEN"); v != "" {
		cfg.CatalogToken = v
	}
	if v := os.Getenv("WEBHOOK_URL"); v != "" {
		cfg.WebhookURL = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("ADMIN_PASSWORD_HASH"); v != "" {
		cfg.AdminPasswordHash = v
	}
	if v := os.Getenv("METRICS_TOKEN"); v != "" {
		cfg.MetricsToken = v
	}
	if v := os.Getenv("RATE_LIMIT_REDIS_ADDR"); v != "" {
		cfg.RateLimitRedisAddr = v
	}

	if err := validateStorefront(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func readYAML(path string, out any) error {
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = ConfigPath
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

func validateCatalog(cfg CatalogConfig) error {
	if cfg.Port == "" {
		return errors.New("config: port is required")
	}
	switch strings.ToLower(cfg.Store.Driver) {
	case "", "memory", "sqlite":
	case "redis":
		if cfg.Store.RedisAddr == "" {
			return errors.New("config: store.redisAddr is required for the redis driver (or REDIS_ADDR)")
		}
	case "postgres":
		if cfg.Store.DSN == "" {
			return errors.New("config: store.dsn is required for the postgres driver (or DATABASE_URL)")
		}
	default:
		return fmt.Errorf("config: unknown store.driver %q", cfg.Store.Driver)
	}
	if cfg.MemoryMaxMessages < 0 {
		return errors.New("config: memoryMaxMessages must not be negative")
	}
	return nil
}

func validateStorefront(cfg StorefrontConfig) error {
	if cfg.Port == "" {
		return errors.New("config: port is required")
	}
	if cfg.CatalogURL == "" {
		return errors.New("config: catalogURL is required (or CATALOG_URL)")
	}
	if len(cfg.JWTSecret) < minJWTSecretLen {
		return fmt.Errorf("config: jwtSecret must be at least %d chars (or JWT_SECRET)", minJWTSecretLen)
	}
	if cfg.ChatRateLimitPerMin < 0 {
		return errors.New("config: chatRateLimitPerMin must not be negative")
	}
	return nil
}

func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("config: %s: %w", key, err)
	}
	*dst = n
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
