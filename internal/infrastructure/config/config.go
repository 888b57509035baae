package config

import (
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration
	LogLevel        slog.Level

	// Progress store
	StoreDriver    string // sqlite, redis or memory
	SQLitePath     string
	RedisAddr      string
	RedisKeyPrefix string

	// Question catalog: a local JSON file, or another instance's API when
	// CatalogURL is set.
	CatalogPath string
	CatalogURL  string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:   getenvDefault("SERVER_ADDRESS", ":8080"),
		ShutdownTimeout: durationDefault("SHUTDOWN_TIMEOUT", 10*time.Second),
		LogLevel:        levelDefault("LOG_LEVEL", slog.LevelInfo),
		StoreDriver:     getenvDefault("STORE_DRIVER", "sqlite"),
		SQLitePath:      getenvDefault("SQLITE_PATH", "kakomon.db"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisKeyPrefix:  getenvDefault("REDIS_KEY_PREFIX", "kakomon:"),
		CatalogPath:     getenvDefault("CATALOG_PATH", "static/data/questions.json"),
		CatalogURL:      os.Getenv("CATALOG_URL"),
	}
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func durationDefault(k string, fallback time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func levelDefault(k string, fallback slog.Level) slog.Level {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(v)); err != nil {
		log.Fatalf("config: %s=%q is not a valid log level: %v", k, v, err)
	}
	return level
}
