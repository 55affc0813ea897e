package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/purchase4less/price-scraper/internal/seeder"
)

// Store persists the scraped catalog: one product row per
// (store, identifier) scrape outcome and one price row per product.
type Store struct {
	db     *DB
	logger *slog.Logger
}

func NewStore(db *DB, logger *slog.Logger) *Store {
	return &Store{
		db:     db,
		logger: logger.With("component", "catalog"),
	}
}

// Migrate creates the catalog schema if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			name TEXT NOT NULL,
			brand TEXT NOT NULL,
			image_url TEXT NOT NULL DEFAULT '',
			identifier TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS prices (
			id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			product_id BIGINT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
			amount NUMERIC(10,2) NOT NULL CHECK (amount >= 0),
			source TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS outbox_events (
			id UUID PRIMARY KEY,
			aggregate_type TEXT NOT NULL,
			aggregate_id TEXT NOT NULL,
			event_type TEXT NOT NULL,
			payload JSONB NOT NULL,
			target_stream TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			retry_count INT NOT NULL DEFAULT 0,
			error_message TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			processed_at TIMESTAMPTZ,
			next_retry_at TIMESTAMPTZ
		)`,
		`CREATE INDEX IF NOT EXISTS idx_products_identifier ON products (identifier)`,
		`CREATE INDEX IF NOT EXISTS idx_outbox_pending ON outbox_events (status, next_retry_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	return nil
}

// Replace swaps the whole catalog in one transaction: both tables are
// truncated with identity restart and refilled from the batch result.
// A reseed that scrapes nothing leaves an empty catalog, same as the
// original behavior.
func (s *Store) Replace(ctx context.Context, entries []seeder.Entry) error {
	err := s.db.Transaction(ctx, func(tx pgx.Tx) error {
		return s.ReplaceTx(ctx, tx, entries)
	})
	if err != nil {
		return err
	}

	s.logger.Info("catalog replaced", "products", len(entries))
	return nil
}

// ReplaceTx runs the catalog swap inside the caller's transaction, so
// outbox events for the same batch can commit or roll back with it.
func (s *Store) ReplaceTx(ctx context.Context, tx pgx.Tx, entries []seeder.Entry) error {
	if _, err := tx.Exec(ctx, `TRUNCATE prices, products RESTART IDENTITY CASCADE`); err != nil {
		return fmt.Errorf("failed to clear catalog: %w", err)
	}

	for _, entry := range entries {
		var productID int64
		err := tx.QueryRow(ctx,
			`INSERT INTO products (name, brand, image_url, identifier)
			 VALUES ($1, $2, $3, $4)
			 RETURNING id`,
			entry.Product.Name, entry.Product.Brand, entry.Product.ImageURL, entry.Identifier,
		).Scan(&productID)
		if err != nil {
			return fmt.Errorf("failed to insert product %q: %w", entry.Identifier, err)
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO prices (product_id, amount, source) VALUES ($1, $2, $3)`,
			productID, entry.Product.Price, string(entry.Product.Store),
		)
		if err != nil {
			return fmt.Errorf("failed to insert price for %q: %w", entry.Identifier, err)
		}
	}

	return nil
}

// Counts reports catalog table sizes for the health endpoint.
type Counts struct {
	Products int64 `json:"products"`
	Prices   int64 `json:"prices"`
}

func (s *Store) Counts(ctx context.Context) (Counts, error) {
	var counts Counts

	if err := s.db.pool.QueryRow(ctx, `SELECT count(*) FROM products`).Scan(&counts.Products); err != nil {
		return counts, fmt.Errorf("failed to count products: %w", err)
	}
	if err := s.db.pool.QueryRow(ctx, `SELECT count(*) FROM prices`).Scan(&counts.Prices); err != nil {
		return counts, fmt.Errorf("failed to count prices: %w", err)
	}

	return counts, nil
}
