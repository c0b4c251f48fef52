package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/akarney/hangman/internal/api"
	"github.com/akarney/hangman/internal/config"
	"github.com/akarney/hangman/internal/factory"
	"github.com/akarney/hangman/internal/model"
	"github.com/akarney/hangman/internal/services/session"
	redisstorage "github.com/akarney/hangman/internal/storage/redis"
	"github.com/akarney/hangman/internal/web"
)

func main() {
	// Load .env if present; the real environment wins
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)
	slog.SetDefault(logger)

	// Build factory config
	factoryCfg := factory.Config{
		Logger:      logger,
		StorageType: cfg.StorageType,
		SessionConfig: session.Config{
			MaxLives:    cfg.Game.MaxLives,
			TurnTimeout: cfg.Game.TurnTimeout,
		},
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		if cfg.Redis.URL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.Redis.URL
		factoryCfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Load wordlists: bundled defaults first, then persisted lists, then
	// per-level files, so later sources override earlier ones
	if err := app.WordlistService.LoadDefaults(); err != nil {
		logger.Error("failed to load bundled wordlists", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := app.WordlistService.LoadFromStorage(context.Background()); err != nil {
		logger.Warn("could not load persisted wordlists", slog.String("error", err.Error()))
	}
	if cfg.WordlistDir != "" {
		for _, level := range model.Levels() {
			path := filepath.Join(cfg.WordlistDir, string(level)+".txt")
			if err := app.WordlistService.LoadFromFile(context.Background(), level, path); err != nil {
				logger.Warn("could not load wordlist file",
					slog.String("level", string(level)),
					slog.String("path", path),
					slog.String("error", err.Error()),
				)
			}
		}
	}

	for _, level := range model.Levels() {
		logger.Info("wordlist ready",
			slog.String("level", string(level)),
			slog.Int("entries", app.WordlistService.Count(level)),
		)
	}

	// Create API router
	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:            logger,
		SessionController: app.SessionController,
		WordlistService:   app.WordlistService,
		HintService:       app.HintService,
	})

	// Create web router
	webRouter := web.NewRouter(web.RouterConfig{
		Logger:            logger,
		SessionController: app.SessionController,
		WordlistService:   app.WordlistService,
	})

	// Combine routers
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/", webRouter)

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.Host
	serverConfig.Port = cfg.Port
	server := api.NewServer(mux, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

func initLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level

	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
