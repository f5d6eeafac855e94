// Package main is the entry point for the parcel intake API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
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

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/pkordes/parcel-intake/internal/config"
	"github.com/pkordes/parcel-intake/internal/handler"
	"github.com/pkordes/parcel-intake/internal/handler/gen"
	"github.com/pkordes/parcel-intake/internal/metrics"
	"github.com/pkordes/parcel-intake/internal/middleware"
	"github.com/pkordes/parcel-intake/internal/repo"
	"github.com/pkordes/parcel-intake/internal/service"
	"github.com/pkordes/parcel-intake/internal/submission"
	"github.com/pkordes/parcel-intake/migrations"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		return err
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Database ---------------------------------------------------------
	// The pool serves the unit catalog. New() does not open connections
	// immediately, so ping before accepting traffic.
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return err
	}
	slog.Info("database connection established")

	if cfg.MigrateOnStart {
		if err := migrate(ctx, pool); err != nil {
			return err
		}
	}

	// --- Services ---------------------------------------------------------
	m := metrics.New(prometheus.DefaultRegisterer)

	sessions := repo.NewSessionRepo(cfg.SessionTTL, func(e *repo.SessionEntry) {
		m.SessionEnded()
		logger.Debug("session evicted", "session_id", e.ID)
	})
	units := repo.NewUnitRepo(pool)

	var sink submission.Submitter = submission.NewLogSubmitter(logger)
	if cfg.SubmissionURL != "" {
		sink = submission.NewHTTPSubmitter(cfg.SubmissionURL, cfg.SubmissionTimeout,
			submission.WithAPIKey(cfg.SubmissionAPIKey))
	}

	registrations := service.NewRegistrationService(sessions, units, sink,
		service.WithTiming(service.Timing{
			AutoAdvance:         cfg.AutoAdvance,
			BarcodeConfirmDelay: cfg.BarcodeConfirmDelay,
			RecipientIntroDelay: cfg.RecipientIntroDelay,
		}),
		service.WithMetrics(m),
		service.WithLogger(logger),
	)
	server := handler.NewServer(registrations, service.NewUnitService(units))

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer
	// → CORS → body limit.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/openapi.yaml", handler.OpenAPI)
	// gen.NewStrictHandlerWithOptions adapts the Server to the generated
	// chi router; decode and binding errors come back as JSON bodies.
	strict := gen.NewStrictHandlerWithOptions(server, nil, handler.StrictOptions())
	r.Mount("/", gen.HandlerWithOptions(strict, gen.ChiServerOptions{ErrorHandlerFunc: handler.ParamError}))

	// --- HTTP Server ------------------------------------------------------
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.SubmissionTimeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down server")

		// Give in-flight requests up to 15 seconds to complete.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("server stopped")
	return nil
}

// migrate applies pending migrations through a database/sql handle that
// shares the pgx pool.
func migrate(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return err
	}
	slog.Info("migrations applied", "count", len(results))
	return nil
}
