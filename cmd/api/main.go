// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Consumo HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
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

	"github.com/taibuivan/consumo/internal/access"
	"github.com/taibuivan/consumo/internal/api"
	"github.com/taibuivan/consumo/internal/blog"
	"github.com/taibuivan/consumo/internal/forum"
	"github.com/taibuivan/consumo/internal/platform/config"
	"github.com/taibuivan/consumo/internal/platform/constants"
	"github.com/taibuivan/consumo/internal/platform/gate"
	"github.com/taibuivan/consumo/internal/platform/migration"
	pgstore "github.com/taibuivan/consumo/internal/platform/postgres"
	redisstore "github.com/taibuivan/consumo/internal/platform/redis"
	"github.com/taibuivan/consumo/internal/platform/sec"
	"github.com/taibuivan/consumo/internal/product"
	"github.com/taibuivan/consumo/internal/request"
	"github.com/taibuivan/consumo/internal/user"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "consumo-api"))
	slog.SetDefault(log)

	log.Info("[Consumo] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "consumo-api"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("database", cfg.MaskedDatabaseURL()),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Token Service ──────────────────────────────────────────────────
	tokens, err := sec.NewTokenService(cfg.JWTSecret, constants.AuthIssuer, cfg.TokenTTL())
	must(log, err, "initialize token service")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Access Recorder ────────────────────────────────────────────────
	accessLog, err := access.OpenLogFile(cfg.AccessLogPath)
	must(log, err, "open access log")
	defer func() {
		if cerr := accessLog.Close(); cerr != nil {
			log.Error("access log close error", slog.Any("error", cerr))
		}
	}()

	accessRepository := access.NewPostgresRepository(pool)
	recorder := access.NewRecorder(accessRepository, accessLog, log)

	// ── 9. Domain Wiring ──────────────────────────────────────────────────
	userRepository := user.NewPostgresRepository(pool)

	// Identity lookups sit on every authenticated request; Redis absorbs
	// the read load, and the user service invalidates on block/delete.
	identitySource := user.NewCachedIdentitySource(user.NewIdentitySource(userRepository), rdb, log)
	accessGate := gate.New(identitySource)

	userService := user.NewService(userRepository, tokens, identitySource, log)
	userHandler := user.NewHandler(userService, accessGate)

	productRepository := product.NewPostgresRepository(pool)
	productService := product.NewService(productRepository, log)
	productHandler := product.NewHandler(productService, accessGate)

	blogService := blog.NewService(blog.NewPostgresRepository(pool), productRepository, log)
	blogHandler := blog.NewHandler(blogService, accessGate)

	requestService := request.NewService(request.NewPostgresRepository(pool), productRepository, log)
	requestHandler := request.NewHandler(requestService, accessGate)

	forumService := forum.NewService(forum.NewPostgresRepository(pool), log)
	forumHandler := forum.NewHandler(forumService, accessGate)

	accessHandler := access.NewHandler(access.NewService(accessRepository, log))

	// ── 10. HTTP Server ───────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		User:      userHandler,
		Product:   productHandler,
		Blog:      blogHandler,
		Request:   requestHandler,
		Forum:     forumHandler,
		Access:    accessHandler,
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, tokens, accessGate, recorder, handlers)

	// ── 11. Graceful Shutdown ─────────────────────────────────────────────
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
