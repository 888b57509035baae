package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/kakomon-drill/backend/internal/infrastructure/config"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"SERVER_ADDRESS", "SHUTDOWN_TIMEOUT", "LOG_LEVEL", "STORE_DRIVER", "SQLITE_PATH",
		"REDIS_ADDR", "REDIS_KEY_PREFIX", "CATALOG_PATH", "CATALOG_URL",
	} {
		t.Setenv(k, "")
	}

	cfg := config.Load()

	if cfg.ServerAddress != ":8080" {
		t.Errorf("expected :8080, got %q", cfg.ServerAddress)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected 10s, got %v", cfg.ShutdownTimeout)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected info level, got %v", cfg.LogLevel)
	}
	if cfg.StoreDriver != "sqlite" {
		t.Errorf("expected sqlite driver, got %q", cfg.StoreDriver)
	}
	if cfg.CatalogPath != "static/data/questions.json" {
		t.Errorf("unexpected catalog path %q", cfg.CatalogPath)
	}
	if cfg.CatalogURL != "" {
		t.Errorf("expected no catalog URL, got %q", cfg.CatalogURL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("STORE_DRIVER", "redis")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("CATALOG_URL", "http://catalog.internal")

	cfg := config.Load()

	if cfg.ServerAddress != ":9090" {
		t.Errorf("expected :9090, got %q", cfg.ServerAddress)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Errorf("expected 3s, got %v", cfg.ShutdownTimeout)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.LogLevel)
	}
	if cfg.StoreDriver != "redis" || cfg.RedisAddr != "localhost:6379" {
		t.Errorf("unexpected redis settings %q / %q", cfg.StoreDriver, cfg.RedisAddr)
	}
	if cfg.CatalogURL != "http://catalog.internal" {
		t.Errorf("unexpected catalog URL %q", cfg.CatalogURL)
	}
}
