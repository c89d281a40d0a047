// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/olegiv/merwah-go/internal/cache"
	"github.com/olegiv/merwah-go/internal/config"
	"github.com/olegiv/merwah-go/internal/content"
	"github.com/olegiv/merwah-go/internal/gateway"
	"github.com/olegiv/merwah-go/internal/handler"
	"github.com/olegiv/merwah-go/internal/imaging"
	"github.com/olegiv/merwah-go/internal/logging"
	"github.com/olegiv/merwah-go/internal/middleware"
	"github.com/olegiv/merwah-go/internal/model"
	"github.com/olegiv/merwah-go/internal/notify"
	"github.com/olegiv/merwah-go/internal/render"
	"github.com/olegiv/merwah-go/internal/scheduler"
	"github.com/olegiv/merwah-go/internal/session"
	"github.com/olegiv/merwah-go/internal/store"
	"github.com/olegiv/merwah-go/internal/version"
	"github.com/olegiv/merwah-go/web"
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
		_, _ = fmt.Fprintf(os.Stderr, "MERWAH - falconry content administration panel\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  MERWAH_SESSION_SECRET     Session encryption key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  MERWAH_DB_PATH            SQLite database path (default: ./data/merwah.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  MERWAH_SERVER_PORT        Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  MERWAH_ENV                Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  MERWAH_GATEWAY_URL        Falcon gateway base URL (default: http://localhost:3000)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  MERWAH_GATEWAY_CACHE_TTL  Falcon list cache lifetime, 0 disables (default: 0s)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  MERWAH_REDIS_URL          Redis URL for the gateway cache (optional)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	info := version.Info{
		Version:   appVersion,
		GitCommit: appGitCommit,
		BuildTime: appBuildTime,
	}

	if *showVersion {
		_, _ = fmt.Println(info.String("merwah"))
		os.Exit(0)
	}

	if err := run(info); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(info version.Info) error {
	// Load .env files if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := config.ParseLogLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

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

	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	// WARN and ERROR records also land in the dashboard activity feed.
	logger = slog.New(logging.NewActivityLogHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}), db))
	slog.SetDefault(logger)

	ctx := context.Background()
	var library *content.Library
	if cfg.Seed {
		if err := store.SeedActivity(ctx, db, time.Now()); err != nil {
			return fmt.Errorf("seeding activity: %w", err)
		}
		library = content.NewLibrary(store.SeedNews(), store.SeedStories(), store.SeedFatwas())
	} else {
		library = content.NewLibrary(nil, nil, nil)
	}
	stopWatch := library.Watch(func(kind string, size int) {
		slog.Debug("collection changed", "kind", kind, "items", size)
	})
	defer stopWatch()
	queries := store.New(db)

	sessionManager := session.New(db, cfg.IsDevelopment())

	gatewayOpts := []gateway.Option{gateway.WithTimeout(cfg.GatewayTimeout), gateway.WithLogger(logger)}
	if cfg.UseGatewayCache() {
		gatewayCache, backend := cache.New(cache.Config{
			RedisURL:        cfg.RedisURL,
			Prefix:          cfg.CachePrefix,
			DefaultTTL:      cfg.GatewayCacheTTL,
			CleanupInterval: time.Minute,
		})
		defer func() { _ = gatewayCache.Close() }()
		gatewayOpts = append(gatewayOpts, gateway.WithCache(gatewayCache, cfg.GatewayCacheTTL))
		slog.Info("gateway list cache enabled", "backend", backend, "ttl", cfg.GatewayCacheTTL)
	}
	gw := gateway.New(cfg.GatewayURL, gatewayOpts...)

	newsDrafts := content.NewDrafts(func() *content.Form[content.NewsDraft] {
		return content.NewNewsForm(library.News, time.Now)
	})
	storyDrafts := content.NewDrafts(func() *content.Form[content.StoryDraft] {
		return content.NewStoryForm(library.Stories, time.Now)
	})
	fatwaDrafts := content.NewDrafts(func() *content.Form[content.FatwaDraft] {
		return content.NewFatwaForm(library.Fatwas, time.Now)
	})
	falconDrafts := content.NewDrafts(func() *content.FalconForm {
		return content.NewFalconForm(library.Falcons, gw, imaging.Preview)
	})

	falconList := content.NewRemoteListView(library.Falcons, content.FalconFields,
		content.LoaderFunc[model.Falcon](gw.ListFalcons), content.FalconsLoadFailed)
	go func() {
		initCtx, cancel := context.WithTimeout(ctx, cfg.GatewayTimeout+5*time.Second)
		defer cancel()
		if err := falconList.Init(initCtx, notify.Discard); err != nil {
			slog.Warn("initial falcon load failed", "category", model.ActivityFalcon, "error", err)
		}
	}()

	sched := scheduler.New(db, logger, scheduler.Config{
		DraftTTL:          cfg.DraftTTL,
		ActivityRetention: cfg.ActivityRetention(),
	}, newsDrafts, storyDrafts, fatwaDrafts, falconDrafts)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}
	defer sched.Stop()

	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return fmt.Errorf("getting templates fs: %w", err)
	}
	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sessionManager,
		IsDev:          cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}

	dashboardHandler := handler.NewDashboardHandler(renderer, queries, library)
	healthHandler := handler.NewHealthHandler(db, info, cfg.GatewayURL)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.StripTrailingSlash)
	var imageOrigins []string
	if origin := gatewayOrigin(cfg.GatewayURL); origin != "" {
		imageOrigins = append(imageOrigins, origin)
	}
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment(), imageOrigins...)))

	r.Get(handler.RouteHealth, healthHandler.Health)

	staticFS, err := fs.Sub(web.Static, "static/dist")
	if err != nil {
		return fmt.Errorf("getting static fs: %w", err)
	}
	staticMaxAge := 7 * 24 * time.Hour
	if cfg.IsDevelopment() {
		staticMaxAge = 0
	}
	r.Handle(handler.RouteStatic+"/dist/*", middleware.StaticCache(staticMaxAge)(
		http.StripPrefix(handler.RouteStatic+"/dist/", http.FileServer(http.FS(staticFS)))))

	submitLimiter := middleware.NewSubmitRateLimiter(2, 10)
	csrf := middleware.CSRF(middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), cfg.IsDevelopment(), cfg.ServerPort))

	r.Group(func(r chi.Router) {
		r.Use(sessionManager.LoadAndSave)
		r.Use(csrf)
		r.Use(submitLimiter.Middleware())

		r.Get(handler.RouteRoot, dashboardHandler.Dashboard)
		handler.RegisterSection(r, handler.RouteNews, handler.NewNewsHandler(renderer, queries, library, newsDrafts))
		handler.RegisterSection(r, handler.RouteStories, handler.NewStoriesHandler(renderer, queries, library, storyDrafts))
		handler.RegisterSection(r, handler.RouteFatwas, handler.NewFatwasHandler(renderer, queries, library, fatwaDrafts))
		handler.RegisterSection(r, handler.RouteFalcons, handler.NewFalconsHandler(renderer, queries, falconList, falconDrafts, cfg.MaxUploadBytes()))
	})

	r.With(sessionManager.LoadAndSave).NotFound(dashboardHandler.NotFound)

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second, // Longer to allow for large uploads and slow connections
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env, "gateway", cfg.GatewayURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

// gatewayOrigin returns the scheme and host of the gateway URL, where
// falcon images are served from.
func gatewayOrigin(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}
