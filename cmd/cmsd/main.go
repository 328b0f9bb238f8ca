// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"compress/gzip"
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/Sumit9819/digital-marketing-cms/internal/auth"
	"github.com/Sumit9819/digital-marketing-cms/internal/config"
	"github.com/Sumit9819/digital-marketing-cms/internal/handler/api"
	"github.com/Sumit9819/digital-marketing-cms/internal/logging"
	"github.com/Sumit9819/digital-marketing-cms/internal/middleware"
	"github.com/Sumit9819/digital-marketing-cms/internal/service"
	"github.com/Sumit9819/digital-marketing-cms/internal/store"
	"github.com/Sumit9819/digital-marketing-cms/internal/version"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "cmsd - digital marketing CMS API server\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CMS_JWT_SECRET         Token signing key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CMS_DB_DRIVER          Database driver: sqlite|postgres (default: sqlite)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CMS_DB_DSN             Database DSN or SQLite path (default: %s)\n", config.DefaultSQLitePath)
		_, _ = fmt.Fprintf(os.Stderr, "  CMS_TOKEN_TTL          Token lifetime (default: 24h)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CMS_SERVER_PORT        Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CMS_ENV                Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CMS_CORS_ORIGINS       Comma-separated allowed origins\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CMS_DO_SEED            Create the admin user and default settings\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		_, _ = fmt.Printf("cmsd %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env files if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	versionInfo := version.Info{
		Version:   appVersion,
		GitCommit: appGitCommit,
		BuildTime: appBuildTime,
	}

	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	slog.SetDefault(slog.New(logging.NewContextHandler(textHandler)))

	dialect, err := cfg.Dialect()
	if err != nil {
		return err
	}

	if dialect == store.DialectSQLite && !strings.HasPrefix(cfg.DBDSN, "file:") {
		if err := os.MkdirAll(filepath.Dir(cfg.DBDSN), 0755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}

	slog.Info("initializing database", "driver", dialect)
	db, err := store.Open(dialect, cfg.DBDSN)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("running database migrations")
	if err := store.Migrate(ctx, db, dialect); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	s := store.NewStore(db, dialect)

	if cfg.DoSeed {
		if err := store.Seed(ctx, s, cfg.SeedConfig()); err != nil {
			return fmt.Errorf("seeding database: %w", err)
		}
	}
	if cfg.DemoMode {
		if err := store.SeedDemo(ctx, s); err != nil {
			return fmt.Errorf("seeding demo content: %w", err)
		}
	}

	verifier := auth.NewVerifier(cfg.TokenConfig(), s)
	logins := middleware.NewLoginProtection(cfg.LoginProtectionConfig())
	go logins.Run(ctx, 10*time.Minute)

	apiHandler := api.NewHandler(
		service.NewContentService(s),
		service.NewAuthService(s, verifier),
		s,
		versionInfo,
		logins,
	)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(middleware.Compress(gzip.DefaultCompression, 1024))
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.StripTrailingSlash)
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())))
	r.Use(middleware.CORS(middleware.CORSConfig{AllowedOrigins: cfg.CORSOrigins}))

	r.Get("/health", apiHandler.Health)
	r.Get("/health/live", apiHandler.Liveness)
	r.Get("/health/ready", apiHandler.Readiness)
	r.Handle("/metrics", middleware.MetricsHandler())

	r.Mount("/api", apiHandler.Routes(verifier, api.Limiters{
		API:     middleware.NewRateLimiter("api", cfg.RateLimit, int(cfg.RateLimit*2)+1),
		Login:   middleware.NewRateLimiter("login", cfg.LoginRateLimit, 5),
		Contact: middleware.NewRateLimiter("contact", cfg.ContactRateLimit, 3),
	}))

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env, "version", versionInfo.Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
	case <-ctx.Done():
	}

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
