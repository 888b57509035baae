package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kakomon-drill/backend/internal/api"
	"github.com/kakomon-drill/backend/internal/catalog"
	"github.com/kakomon-drill/backend/internal/infrastructure/config"
	"github.com/kakomon-drill/backend/internal/metrics"
	"github.com/kakomon-drill/backend/internal/service"
	"github.com/kakomon-drill/backend/internal/store"

	_ "github.com/kakomon-drill/backend/docs" // generated swagger docs
)

// @title           Kakomon Drill API
// @version         1.0.1
// @description     Past-exam drill for the 2nd grade building construction management engineer test: questions, answer tracking and learning statistics.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	ctx := context.Background()

	// ── Dependencies ────────────────────────────────────────────────
	kv, err := store.Open(ctx, store.Options{
		Driver:      cfg.StoreDriver,
		SQLitePath:  cfg.SQLitePath,
		RedisAddr:   cfg.RedisAddr,
		RedisPrefix: cfg.RedisKeyPrefix,
	})
	if err != nil {
		logger.Error("failed to open progress store", "driver", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}
	defer kv.Close()

	m := metrics.NewManager()
	tracker, err := service.NewTracker(ctx, store.NewProgressStore(kv, logger), logger,
		service.WithResetHook(func() { logger.Info("progress reset, clients should reload") }),
	)
	if err != nil {
		logger.Error("failed to load progress", "error", err)
		os.Exit(1)
	}

	var questions catalog.Source = catalog.NewFileSource(cfg.CatalogPath)
	if cfg.CatalogURL != "" {
		questions = catalog.NewHTTPSource(cfg.CatalogURL)
	}

	handler := api.NewHandler(tracker, questions, m, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()
	api.RegisterRoutes(mux, handler)

	// ── Middleware chain: Logging → CORS → Metrics → mux ────────────
	logged := api.Logging(logger)(api.CORS(api.Metrics(m)(mux)))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server",
		"address", cfg.ServerAddress,
		"store", cfg.StoreDriver,
		"catalog", catalogLocation(cfg),
	)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}

func catalogLocation(cfg *config.Config) string {
	if cfg.CatalogURL != "" {
		return cfg.CatalogURL
	}
	return cfg.CatalogPath
}
