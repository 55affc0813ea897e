package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/purchase4less/price-scraper/internal/browser"
	"github.com/purchase4less/price-scraper/internal/catalog"
	"github.com/purchase4less/price-scraper/internal/manifest"
	"github.com/purchase4less/price-scraper/internal/scraper"
	"github.com/purchase4less/price-scraper/internal/seeder"
)

func main() {
	var (
		manifestPath = flag.String("manifest", "", "Path to a JSON product manifest (defaults to the built-in catalog)")
		headless     = flag.Bool("headless", true, "Run browser in headless mode")
		output       = flag.String("output", "text", "Output format: text, json")
		dsn          = flag.String("dsn", "", "Postgres DSN; when set, scraped products replace the catalog")
		settle       = flag.Duration("settle", 2*time.Second, "Delay after page load before extraction")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("shutdown signal received")
		cancel()
	}()

	m := manifest.Default()
	if *manifestPath != "" {
		loaded, err := manifest.Load(*manifestPath)
		if err != nil {
			logger.Error("failed to load manifest", "error", err, "path", *manifestPath)
			os.Exit(1)
		}
		m = loaded
	}

	opts := browser.DefaultOptions()
	opts.Headless = *headless
	opts.SettleDelay = *settle

	b, err := browser.New(opts)
	if err != nil {
		logger.Error("failed to initialize browser", "error", err)
		os.Exit(1)
	}
	defer b.Close()

	service := scraper.NewService(b, logger)
	s := seeder.New(service, logger)

	logger.Info("seeding catalog", "targets", m.Len())

	result, err := s.Seed(ctx, m.Targets())
	if err != nil {
		if errors.Is(err, scraper.ErrBrowserUnavailable) {
			logger.Error("seeding aborted, browser unavailable", "error", err)
			printResult(result, *output)
			os.Exit(1)
		}
		logger.Error("seeding stopped", "error", err)
		printResult(result, *output)
		os.Exit(1)
	}

	if *dsn != "" {
		if err := persist(ctx, *dsn, result, logger); err != nil {
			logger.Error("failed to persist catalog", "error", err)
			os.Exit(1)
		}
	}

	printResult(result, *output)
}

func persist(ctx context.Context, dsn string, result *seeder.Result, logger *slog.Logger) error {
	db, err := catalog.NewFromDSN(ctx, dsn, catalog.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	store := catalog.NewStore(db, logger)
	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return store.Replace(ctx, result.Succeeded)
}

func printResult(result *seeder.Result, format string) {
	if result == nil {
		return
	}

	switch format {
	case "json":
		summary := map[string]interface{}{
			"succeeded": result.Succeeded,
			"failed":    result.Failed,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(summary)
	default:
		for _, entry := range result.Succeeded {
			fmt.Printf("%-20s %-14s %8s kr  %s\n",
				entry.Identifier,
				entry.Product.Store,
				entry.Product.Price.StringFixed(2),
				entry.Product.Name,
			)
		}
		for _, failure := range result.Failed {
			fmt.Printf("FAILED %-18s %s (%s)\n", failure.Reason, failure.URL, failure.Detail)
		}
		fmt.Printf("---\n%d succeeded, %d failed\n", len(result.Succeeded), len(result.Failed))
	}
}
