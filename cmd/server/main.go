package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/purchase4less/price-scraper/internal/api"
	"github.com/purchase4less/price-scraper/internal/browser"
	"github.com/purchase4less/price-scraper/internal/catalog"
	"github.com/purchase4less/price-scraper/internal/config"
	"github.com/purchase4less/price-scraper/internal/events"
	"github.com/purchase4less/price-scraper/internal/manifest"
	"github.com/purchase4less/price-scraper/internal/scraper"
	"github.com/purchase4less/price-scraper/internal/seeder"
)

func main() {
	// Setup logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if cfg.Logging.Level != "info" {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: cfg.Logging.SlogLevel(),
		}))
		slog.SetDefault(logger)
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database connection
	db, err := catalog.New(ctx, catalog.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		Database: cfg.Database.Name,
		SSLMode:  cfg.Database.SSLMode,
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	store := catalog.NewStore(db, logger)
	if err := store.Migrate(ctx); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Browser setup
	opts := browser.DefaultOptions()
	opts.Headless = cfg.Browser.Headless
	opts.Timeout = time.Duration(cfg.Browser.TimeoutSeconds) * time.Second
	opts.SettleDelay = cfg.Browser.SettleDelay

	b, err := browser.New(opts)
	if err != nil {
		logger.Error("failed to initialize browser", "error", err)
		os.Exit(1)
	}
	defer b.Close()

	// Catalog writes and their PRICE_UPDATED outbox events commit in one
	// transaction; the relay delivers the events to Redis afterwards.
	writer := events.NewCatalogWriter(db, store, logger)

	// Initialize Redis client for Relay
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	// Test Redis connection
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Error("failed to connect to Redis", "error", err)
		os.Exit(1)
	}

	// Initialize and start Relay for outbox processing
	relay := events.NewRelay(db, redisClient, logger, events.RelayConfig{
		PollInterval: cfg.Relay.PollInterval,
		BatchSize:    cfg.Relay.BatchSize,
	})
	go func() {
		if err := relay.Start(ctx); err != nil && err != context.Canceled {
			logger.Error("relay stopped with error", "error", err)
		}
	}()

	// Initialize services
	scraperService := scraper.NewService(b, logger)

	m := manifest.Default()
	if cfg.Seeder.ManifestPath != "" {
		m, err = manifest.Load(cfg.Seeder.ManifestPath)
		if err != nil {
			logger.Error("failed to load manifest", "error", err, "path", cfg.Seeder.ManifestPath)
			os.Exit(1)
		}
	}

	runner := seeder.NewRunner(seeder.New(scraperService, logger), m, writer, logger)

	if cfg.Seeder.SeedOnStart {
		go func() {
			if _, err := runner.Reseed(ctx); err != nil {
				logger.Error("initial reseed failed", "error", err)
			}
		}()
	}

	if cfg.Seeder.Enabled {
		scheduler := seeder.NewScheduler(runner, cfg.Seeder.Interval, logger)
		go func() {
			if err := scheduler.Start(ctx); err != nil && err != context.Canceled {
				logger.Error("scheduler stopped with error", "error", err)
			}
		}()
	}

	// Initialize API handlers and routes
	handlers := api.NewHandlers(scraperService, runner, store, logger)
	router := api.NewRouter(handlers, 60*time.Second)

	// No write deadline: a synchronous reseed response arrives only
	// after the whole manifest has been walked.
	server := &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:     router,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan

		logger.Info("shutting down server...")
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", "error", err)
		}
	}()

	logger.Info("server starting", "port", cfg.Server.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
