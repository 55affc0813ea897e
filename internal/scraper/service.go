package scraper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/purchase4less/price-scraper/internal/browser"
	"github.com/purchase4less/price-scraper/internal/models"
	"github.com/purchase4less/price-scraper/internal/parser"
)

// Fetcher renders a product page and returns its HTML. Satisfied by
// *browser.Browser; tests substitute a fake.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Service runs the full pipeline for one URL: route to the store's
// extractor, fetch the rendered page, extract raw fields, normalize.
type Service struct {
	fetcher Fetcher
	router  *Router
	logger  *slog.Logger
}

func NewService(fetcher Fetcher, logger *slog.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		router:  NewRouter(),
		logger:  logger.With("component", "scraper"),
	}
}

// Scrape resolves and scrapes a single product URL. Unsupported URLs
// fail before any page is fetched.
func (s *Service) Scrape(ctx context.Context, url string) (*models.StoreProduct, error) {
	extractor, err := s.router.Resolve(url)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		if errors.Is(err, browser.ErrUnavailable) {
			return nil, fmt.Errorf("%w: %v", ErrBrowserUnavailable, err)
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, &NavigationError{URL: url, Err: err}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, &ExtractionError{URL: url, Store: extractor.Store(), Err: err}
	}

	raw := extractor.Extract(doc)
	if raw.Empty() {
		return nil, &ExtractionError{
			URL:   url,
			Store: extractor.Store(),
			Err:   errors.New("no recognizable product markup"),
		}
	}

	product := parser.Normalize(raw, extractor.Store())
	if product.Price.IsZero() {
		// Kept as a zero-priced record rather than failing the target,
		// but loud enough to triage markup drift.
		s.logger.Warn("price missing or unparseable",
			"url", url, "store", extractor.Store(), "name", product.Name)
	}

	s.logger.Info("scraped product",
		"url", url, "store", extractor.Store(),
		"name", product.Name, "price", product.Price)

	return &product, nil
}
