// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
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
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/olegiv/portfolio-go/internal/auth"
	"github.com/olegiv/portfolio-go/internal/config"
	"github.com/olegiv/portfolio-go/internal/handler/api"
	"github.com/olegiv/portfolio-go/internal/logging"
	"github.com/olegiv/portfolio-go/internal/middleware"
	"github.com/olegiv/portfolio-go/internal/scheduler"
	"github.com/olegiv/portfolio-go/internal/service"
	"github.com/olegiv/portfolio-go/internal/store"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	// Parse CLI flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Portfolio - portfolio content backend\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_JWT_SECRET        Token signing key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_DB_PATH           SQLite database path (default: ./data/portfolio.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_SERVER_PORT       Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_ENV               Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_UPLOADS_DIR       Image upload directory (default: ./uploads)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_ALLOWED_ORIGINS   Comma-separated CORS origins\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_DO_SEED           Seed a default admin account (default: false)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		_, _ = fmt.Printf("portfolio %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Setup logger
	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Ensure data directory exists
	dbDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	// Initialize database
	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	// Run migrations before accepting any traffic
	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	// Upgrade logger to also write WARN and ERROR logs to the event log
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	eventLogHandler := logging.NewEventLogHandler(textHandler, db)
	logger = slog.New(eventLogHandler)
	slog.SetDefault(logger)
	slog.Info("event log integration enabled", "min_level", "warn")

	// Seed default admin account if requested
	ctx := context.Background()
	if cfg.DoSeed {
		if err := store.Seed(ctx, db, cfg.BcryptCost); err != nil {
			return fmt.Errorf("seeding database: %w", err)
		}
	}

	// Token service and auth service
	tokens := auth.NewTokenService([]byte(cfg.JWTSecret), time.Duration(cfg.TokenTTLHours)*time.Hour)
	authService := service.NewAuthService(db, tokens, cfg.BcryptCost)

	// Start maintenance scheduler
	sched := scheduler.New(db, logger)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}
	defer sched.Stop()

	// API handlers
	h := api.NewHandler(db, authService, cfg, logger)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	// Public routes: reads of active content and authentication
	r.Group(func(r chi.Router) {
		r.Get("/api/health", h.Health)

		r.Get("/api/hero", h.GetHero)
		r.Get("/api/about", h.GetAbout)
		r.Get("/api/contact", h.GetContact)
		r.Get("/api/personal-info", h.GetPersonalInfo)
		r.Get("/api/technologies", h.ListTechnologies)
		r.Get("/api/experiences", h.ListExperiences)
		r.Get("/api/projects", h.ListProjects)
		r.Get("/api/ai-sections", h.ListAISections)
		r.Get("/api/skills", h.ListSkills)

		r.Group(func(r chi.Router) {
			r.Use(middleware.LoginRateLimit())
			r.Post("/api/auth/login", h.Login)
			r.Post("/api/auth/register", h.Register)
		})
	})

	// Privileged routes: all writes, introspection, and uploads
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(tokens))

		r.Get("/api/auth/me", h.Me)
		r.Get("/api/users", h.ListUsers)

		r.Put("/api/hero", h.UpdateHero)
		r.Put("/api/about", h.UpdateAbout)
		r.Put("/api/contact", h.UpdateContact)
		r.Put("/api/personal-info", h.UpdatePersonalInfo)

		r.Get("/api/technologies/{id}", h.GetTechnology)
		r.Post("/api/technologies", h.CreateTechnology)
		r.Put("/api/technologies/{id}", h.UpdateTechnology)
		r.Delete("/api/technologies/{id}", h.DeleteTechnology)

		r.Get("/api/experiences/{id}", h.GetExperience)
		r.Post("/api/experiences", h.CreateExperience)
		r.Put("/api/experiences/{id}", h.UpdateExperience)
		r.Delete("/api/experiences/{id}", h.DeleteExperience)

		r.Get("/api/projects/{id}", h.GetProject)
		r.Post("/api/projects", h.CreateProject)
		r.Put("/api/projects/{id}", h.UpdateProject)
		r.Delete("/api/projects/{id}", h.DeleteProject)

		r.Get("/api/ai-sections/{id}", h.GetAISection)
		r.Post("/api/ai-sections", h.CreateAISection)
		r.Put("/api/ai-sections/{id}", h.UpdateAISection)
		r.Delete("/api/ai-sections/{id}", h.DeleteAISection)

		r.Get("/api/skills/{id}", h.GetSkill)
		r.Post("/api/skills", h.CreateSkill)
		r.Put("/api/skills/{id}", h.UpdateSkill)
		r.Delete("/api/skills/{id}", h.DeleteSkill)

		r.Get("/api/database/info", h.DatabaseInfo)
		r.Post("/api/database/query", h.ExecuteQuery)
		r.Get("/api/database/download", h.DownloadDatabase)

		r.Post("/api/uploads", h.UploadImage)
		r.Get("/api/uploads", h.ListUploads)
		r.Delete("/api/uploads/{category}/{filename}", h.DeleteUpload)
	})

	// Serve uploaded images
	if err := os.MkdirAll(cfg.UploadsDir, 0755); err != nil {
		return fmt.Errorf("creating uploads directory: %w", err)
	}
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadsDir))))

	// Create server with appropriate timeouts
	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second, // Long enough for uploads and DB downloads
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB max header size
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
