package seeder

import (
	"context"
	"log/slog"

	"github.com/purchase4less/price-scraper/internal/manifest"
)

// CatalogStore persists a finished batch. Implementations that queue
// price-updated events must commit them with the catalog rows in the
// same transaction; satisfied by *events.CatalogWriter, or by
// *catalog.Store when no events are wanted.
type CatalogStore interface {
	Replace(ctx context.Context, entries []Entry) error
}

// Runner performs a full catalog reseed: scrape the whole manifest,
// then swap the stored catalog. Store is optional so a dry run can
// scrape without persisting.
type Runner struct {
	seeder   *Seeder
	manifest *manifest.Manifest
	store    CatalogStore
	logger   *slog.Logger
}

func NewRunner(s *Seeder, m *manifest.Manifest, store CatalogStore, logger *slog.Logger) *Runner {
	return &Runner{
		seeder:   s,
		manifest: m,
		store:    store,
		logger:   logger.With("component", "reseed"),
	}
}

func (r *Runner) Reseed(ctx context.Context) (*Result, error) {
	result, err := r.seeder.Seed(ctx, r.manifest.Targets())
	if err != nil {
		return result, err
	}

	if r.store != nil {
		if err := r.store.Replace(ctx, result.Succeeded); err != nil {
			return result, err
		}
		r.logger.Info("catalog replaced", "products", len(result.Succeeded))
	}

	return result, nil
}
