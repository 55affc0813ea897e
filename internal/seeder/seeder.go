// Package seeder drives the scraping pipeline across the product
// manifest and partitions the outcome into succeeded and failed
// targets. Targets run strictly sequentially against the one shared
// browser; an individual failure is recorded and skipped, never fatal
// to the batch.
package seeder

import (
	"context"
	"errors"
	"log/slog"

	"github.com/purchase4less/price-scraper/internal/models"
	"github.com/purchase4less/price-scraper/internal/scraper"
)

// Scraper is the per-URL pipeline; satisfied by *scraper.Service.
type Scraper interface {
	Scrape(ctx context.Context, url string) (*models.StoreProduct, error)
}

// Entry is one successfully scraped target: the normalized product
// plus the caller-supplied cross-store identifier.
type Entry struct {
	Product    models.StoreProduct `json:"product"`
	Identifier string              `json:"identifier"`
}

// Failure records one skipped target with a machine-stable reason and
// a human-readable detail.
type Failure struct {
	URL    string `json:"url"`
	Reason string `json:"reason"`
	Detail string `json:"detail"`
}

// Result is the complete outcome of one batch; every target lands in
// exactly one of the two lists, in manifest order.
type Result struct {
	Succeeded []Entry   `json:"succeeded"`
	Failed    []Failure `json:"failed"`
}

type Seeder struct {
	scraper Scraper
	logger  *slog.Logger
}

func New(s Scraper, logger *slog.Logger) *Seeder {
	return &Seeder{
		scraper: s,
		logger:  logger.With("component", "seeder"),
	}
}

// Seed runs the pipeline for every target in order. Only a lost
// browser (or cancellation) aborts the batch early; everything else is
// classified, logged and skipped.
func (s *Seeder) Seed(ctx context.Context, targets []models.ScrapeTarget) (*Result, error) {
	result := &Result{
		Succeeded: make([]Entry, 0, len(targets)),
		Failed:    make([]Failure, 0),
	}

	s.logger.Info("starting seed batch", "targets", len(targets))

	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		product, err := s.scraper.Scrape(ctx, target.URL)
		if err != nil {
			if errors.Is(err, scraper.ErrBrowserUnavailable) {
				s.logger.Error("browser lost, aborting batch", "url", target.URL, "error", err)
				return result, err
			}
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return result, err
			}

			reason := scraper.Classify(err)
			s.logger.Error("target failed",
				"url", target.URL, "identifier", target.Identifier,
				"reason", reason, "error", err)
			result.Failed = append(result.Failed, Failure{
				URL:    target.URL,
				Reason: reason,
				Detail: err.Error(),
			})
			continue
		}

		result.Succeeded = append(result.Succeeded, Entry{
			Product:    *product,
			Identifier: target.Identifier,
		})
	}

	s.logger.Info("seed batch completed",
		"succeeded", len(result.Succeeded), "failed", len(result.Failed))

	return result, nil
}
