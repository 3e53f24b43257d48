package webserver

import (
	"context"
	_ "embed"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Quorum-Code/profanitycheck/internal/cache"
	"github.com/Quorum-Code/profanitycheck/internal/config"
	"github.com/Quorum-Code/profanitycheck/internal/database"
	"github.com/Quorum-Code/profanitycheck/internal/endpoints"
	"github.com/Quorum-Code/profanitycheck/internal/repository"
	"github.com/Quorum-Code/profanitycheck/internal/service"

	"github.com/flowchartsman/swaggerui"
)

//go:embed spec/profanitycheck.yml
var spec []byte

// NewServer wires storage, cache and handlers for cfg without listening.
func NewServer(cfg config.Config, logger *slog.Logger) (*http.Server, error) {
	db, err := openDB(cfg, logger)
	if err != nil {
		return nil, err
	}

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		err := db.CreateAdmin(cfg.AdminEmail, cfg.AdminPassword)
		if err != nil && !errors.Is(err, database.ErrAdminExists) {
			return nil, err
		}
	}

	list := repository.NewProfanityListRepository(db, openCache(cfg, logger), cfg.CacheTTL, logger)

	apiCfg := &endpoints.ApiConfig{
		Db:             db,
		ProfanityList:  list,
		Profanity:      service.NewProfanityService(list, logger),
		Logger:         logger,
		JWTSecret:      cfg.JWTSecret,
		MaxUploadBytes: cfg.MaxUploadBytes,
	}

	// Create server
	mux := http.NewServeMux()

	// Index url handler
	mux.HandleFunc("/", apiCfg.IndexHandler)

	// Profanity check handlers
	mux.HandleFunc("POST /uploadfile", apiCfg.UploadFile)
	mux.HandleFunc("POST /api/check", apiCfg.PostCheck)

	// Profanity list handlers
	mux.HandleFunc("GET /profanitylist", apiCfg.GetProfanityList)
	mux.HandleFunc("POST /profanitylist", apiCfg.RequireAdmin(apiCfg.PostProfanity))
	mux.HandleFunc("DELETE /profanitylist", apiCfg.RequireAdmin(apiCfg.DeleteProfanity))

	// Auth handlers
	mux.HandleFunc("POST /api/login", apiCfg.PostLoginHandler)
	mux.HandleFunc("POST /api/refresh", apiCfg.PostRefresh)
	mux.HandleFunc("POST /api/revoke", apiCfg.PostRevoke)

	mux.HandleFunc("GET /api/healthz", apiCfg.HealthzHandler)
	mux.HandleFunc("GET /api/metrics", apiCfg.GetMetricsHandler)
	mux.HandleFunc("POST /api/reset", apiCfg.RequireAdmin(apiCfg.MiddlewareMetricsReset))
	mux.HandleFunc("GET /admin/metrics", apiCfg.AdminMetricsHandler)

	// Include swaggerui
	mux.Handle("/swagger/", http.StripPrefix("/swagger", swaggerui.Handler(spec)))

	var handler http.Handler = mux
	handler = apiCfg.MiddlewareMetricsInc(handler)
	handler = endpoints.MiddlewareRecover(logger, handler)
	handler = endpoints.MiddlewareRequestLog(logger, handler)
	handler = endpoints.MiddlewareCors(handler)

	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

// StartServer serves until SIGINT or SIGTERM, then shuts down gracefully.
func StartServer(cfg config.Config, logger *slog.Logger) error {
	logger.Info("starting web server", "addr", cfg.Addr(), "debug", cfg.Debug)

	server, err := NewServer(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errs := make(chan error, 1)
	go func() {
		logger.Info("serving SwaggerUI", "url", "localhost"+cfg.Addr()+"/swagger/")
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down web server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}

func openDB(cfg config.Config, logger *slog.Logger) (*database.DB, error) {
	if cfg.Debug {
		// If debug Initialize clean DB
		logger.Debug("using clean in-memory database")
		return database.InitCleanDB(database.DefaultBannedWords), nil
	}

	db, err := database.InitDB(cfg.DBPath)
	if errors.Is(err, os.ErrNotExist) {
		logger.Info("creating database file", "path", cfg.DBPath)
		return database.CreateDB(cfg.DBPath, database.DefaultBannedWords)
	}

	return db, err
}

func openCache(cfg config.Config, logger *slog.Logger) cache.Cache {
	if cfg.RedisAddr == "" {
		return cache.NewMemoryCache()
	}

	c := cache.NewRedisCache(cache.Options{
		Address:  cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := c.Ping(ctx)
	if err != nil {
		logger.Warn("redis unavailable, using in-memory cache", "addr", cfg.RedisAddr, "error", err)
		c.Close()
		return cache.NewMemoryCache()
	}

	logger.Info("using redis cache", "addr", cfg.RedisAddr)
	return c
}
