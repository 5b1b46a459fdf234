// Copyright (c) 2026 Glossa. All rights reserved.
// Author: dev@glossa.app

// Command api is the entry point for the Glossa HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool) and run migrations — optional.
//  4. Connect to Redis — optional.
//  5. Build the provider fallback chain.
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// PostgreSQL and Redis are deliberately optional: without DATABASE_URL the
// server runs on volatile in-memory stores, and without REDIS_URL the
// translation cache is disabled. Everything else works identically.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/glossabay/glossa/internal/api"
	"github.com/glossabay/glossa/internal/history"
	"github.com/glossabay/glossa/internal/identity"
	"github.com/glossabay/glossa/internal/platform/apperr"
	"github.com/glossabay/glossa/internal/platform/config"
	"github.com/glossabay/glossa/internal/platform/constants"
	"github.com/glossabay/glossa/internal/platform/migration"
	pgstore "github.com/glossabay/glossa/internal/platform/postgres"
	redisstore "github.com/glossabay/glossa/internal/platform/redis"
	"github.com/glossabay/glossa/internal/platform/sec"
	"github.com/glossabay/glossa/internal/translation"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "glossa"))
	slog.SetDefault(log)

	log.Info("[Glossa] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "glossa"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL + Migrations (optional) ─────────────────────────────
	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		pool, err = pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing postgres pool")
			pool.Close()
		}()

		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")
	} else {
		log.Warn("DATABASE_URL not set, using volatile in-memory stores")
	}

	// ── 4. Redis (optional) ───────────────────────────────────────────────
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb, err = redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()
	} else {
		log.Warn("REDIS_URL not set, translation cache disabled")
	}

	// ── 5. Token Service ──────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.SessionSecret, constants.AuthIssuer)
	must(log, err, "initialize token service")

	// ── 6. Health handlers (wired with real dependency checkers) ──────────
	healthDeps := api.HealthDependencies{}
	if pool != nil {
		healthDeps.CheckDatabase = func() error {
			return pgstore.Ping(context.Background(), pool)
		}
	}
	if rdb != nil {
		healthDeps.CheckCache = func() error {
			return redisstore.Ping(context.Background(), rdb)
		}
	}
	liveness, readiness := api.NewHealthHandlers(healthDeps, cfg.ServerPort, log)

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	var userRepository identity.UserRepository
	var entryStore history.EntryStore
	if pool != nil {
		userRepository = identity.NewPostgresUserRepository(pool)
		entryStore = history.NewPostgresEntryStore(pool)
	} else {
		userRepository = identity.NewMemoryUserRepository()
		entryStore = history.NewMemoryEntryStore()
	}

	identityService := identity.NewService(userRepository, jwtSvc)
	identityHandler := identity.NewHandler(identityService)

	// Development instances boot with a known login so the app is usable
	// without a signup round-trip.
	if cfg.IsDevelopment() {
		seedDemoUser(startupCtx, identityService, log)
	}

	primaries := make([]translation.Provider, 0, len(cfg.PrimaryProviders))
	for _, endpoint := range cfg.PrimaryProviders {
		primaries = append(primaries, translation.NewDocumentProvider(endpoint, cfg.ProviderTimeout))
	}
	var backup translation.Provider
	if cfg.BackupProvider != "" {
		backup = translation.NewFreeFormProvider("Google Fallback", cfg.BackupProvider, cfg.ProviderTimeout)
	}
	var resultCache translation.ResultCache
	if rdb != nil {
		resultCache = translation.NewRedisResultCache(rdb, cfg.CacheTTL)
	}

	historyService := history.NewService(entryStore)
	historyHandler := history.NewHandler(historyService)

	translationService := translation.NewService(primaries, backup, resultCache, cfg.ProviderTimeout)
	translationHandler := translation.NewHandler(translationService, historyService)

	// ── 8. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:    liveness,
		Readiness:   readiness,
		Identity:    identityHandler,
		Translation: translationHandler,
		History:     historyHandler,
	}

	server := api.NewServer(context.Background(), cfg, log, jwtSvc, handlers)

	// ── 9. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// seedDemoUser registers the development demo account. A conflict means a
// previous run against a durable store already seeded it; anything else is
// logged and ignored — seeding must never block startup.
func seedDemoUser(ctx context.Context, identityService *identity.Service, log *slog.Logger) {
	_, err := identityService.Signup(ctx, identity.SignupInput{
		Name:      "Demo User",
		BirthDate: "2000-01-01",
		Email:     "demo@user.com",
		Password:  "password123",
	})
	if err != nil {
		if appErr := apperr.As(err); appErr != nil && appErr.Code == "CONFLICT" {
			return
		}
		log.Warn("demo user seed failed", slog.Any("error", err))
		return
	}
	log.Info("demo user seeded", slog.String("email", "demo@user.com"))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
