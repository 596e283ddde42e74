// Package main is the entry point for the itinerary planner API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"github.com/pkordes/itinerary-planner/internal/auth"
	"github.com/pkordes/itinerary-planner/internal/config"
	"github.com/pkordes/itinerary-planner/internal/handler"
	"github.com/pkordes/itinerary-planner/internal/handler/gen"
	"github.com/pkordes/itinerary-planner/internal/middleware"
	"github.com/pkordes/itinerary-planner/internal/repo"
	"github.com/pkordes/itinerary-planner/internal/service"
	"github.com/pkordes/itinerary-planner/migrations"
	"github.com/pkordes/itinerary-planner/spec"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Storage ----------------------------------------------------------
	ctx := context.Background()
	trips, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		slog.Error("failed to open trip store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	// --- Services ---------------------------------------------------------
	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.SessionTTL)

	tripSvc := service.NewTripService(trips, time.Now)
	srv := handler.NewServer(
		tripSvc,
		service.NewItineraryService(tripSvc),
		service.NewSessionService(issuer),
		service.NewExportService(trips),
	)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer → CORS → body limit.
	// RequestID generates a unique trace ID per request.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(spec.OpenAPI)
	})

	// The strict handler adapts Server to the ServerInterface chi expects.
	// Bearer auth runs per operation so /healthz and /sessions stay public.
	strict := gen.NewStrictHandlerWithOptions(srv, nil, gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  handler.RequestErrorHandler,
		ResponseErrorHandlerFunc: handler.ResponseErrorHandler(logger),
	})
	gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		BaseRouter:       r,
		Middlewares:      []gen.MiddlewareFunc{middleware.SecuredOnly(auth.Middleware(issuer))},
		ErrorHandlerFunc: handler.RequestErrorHandler,
	})

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// openStore picks the trip store from cfg. DATABASE_URL selects Postgres,
// migrated to the latest schema before use; otherwise trips live in memory.
// REDIS_ADDR puts a read-through cache in front of either.
// The returned func releases every connection opened here.
func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (repo.TripRepo, func(), error) {
	var (
		trips   repo.TripRepo
		closers []func()
	)
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	if cfg.DatabaseURL == "" {
		slog.Warn("DATABASE_URL not set; trips are kept in memory only")
		trips = repo.NewMemoryTripRepo()
	} else {
		// New() does not open connections immediately; the ping does.
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("create database pool: %w", err)
		}
		closers = append(closers, pool.Close)

		if err := pool.Ping(ctx); err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		if err := migrate(ctx, pool); err != nil {
			closeAll()
			return nil, nil, err
		}
		slog.Info("database connection established")
		trips = repo.NewTripRepo(pool)
	}

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		closers = append(closers, func() { _ = rdb.Close() })

		// The cache is optional: an unreachable Redis is logged, not fatal.
		// cachedTripRepo falls through to the inner store on Redis errors.
		if err := rdb.Ping(ctx).Err(); err != nil {
			slog.Warn("redis unreachable; cache will fall through", "addr", cfg.RedisAddr, "error", err)
		}
		trips = repo.NewCachedTripRepo(trips, rdb, cfg.RedisCacheTTL, logger)
	}

	return trips, closeAll, nil
}

// migrate applies pending goose migrations through a database/sql view of
// pool. Closing that view does not close the pool.
func migrate(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("create goose provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	for _, res := range results {
		slog.Info("migration applied", "version", res.Source.Version, "duration", res.Duration)
	}
	return nil
}
