package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"log/slog"

	"github.com/purchase4less/price-scraper/internal/catalog"
	"github.com/purchase4less/price-scraper/internal/models"
	"github.com/purchase4less/price-scraper/internal/scraper"
	"github.com/purchase4less/price-scraper/internal/seeder"
)

// Scraper resolves a product URL into a normalized store product.
type Scraper interface {
	Scrape(ctx context.Context, url string) (*models.StoreProduct, error)
}

// Reseeder rebuilds the catalog from the product manifest.
type Reseeder interface {
	Reseed(ctx context.Context) (*seeder.Result, error)
}

// Catalog reports how many rows the catalog currently holds.
type Catalog interface {
	Counts(ctx context.Context) (catalog.Counts, error)
}

type Handlers struct {
	scraper  Scraper
	reseeder Reseeder
	catalog  Catalog
	logger   *slog.Logger
}

func NewHandlers(scraper Scraper, reseeder Reseeder, catalog Catalog, logger *slog.Logger) *Handlers {
	return &Handlers{
		scraper:  scraper,
		reseeder: reseeder,
		catalog:  catalog,
		logger:   logger,
	}
}

// ScrapeRequest represents a single-page scrape request
type ScrapeRequest struct {
	URL string `json:"url"`
}

// ScrapeResponse wraps the scraped product or the failure reason
type ScrapeResponse struct {
	Product *models.StoreProduct `json:"product,omitempty"`
	Error   string               `json:"error,omitempty"`
	Reason  string               `json:"reason,omitempty"`
}

// Scrape handles on-demand scraping of a single product page
func (h *Handlers) Scrape(w http.ResponseWriter, r *http.Request) {
	var req ScrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.URL == "" {
		h.respondError(w, http.StatusBadRequest, "url is required")
		return
	}

	product, err := h.scraper.Scrape(r.Context(), req.URL)
	if err != nil {
		reason := scraper.Classify(err)
		status := statusForScrapeError(err)
		h.logger.Error("scrape request failed", "error", err, "url", req.URL, "reason", reason)
		h.respondJSON(w, status, ScrapeResponse{
			Error:  err.Error(),
			Reason: reason,
		})
		return
	}

	h.respondJSON(w, http.StatusOK, ScrapeResponse{Product: product})
}

// ReseedResponse summarizes a catalog reseed run
type ReseedResponse struct {
	Succeeded int              `json:"succeeded"`
	Failed    int              `json:"failed"`
	Failures  []seeder.Failure `json:"failures,omitempty"`
	Error     string           `json:"error,omitempty"`
}

// Reseed handles full catalog reseed requests
func (h *Handlers) Reseed(w http.ResponseWriter, r *http.Request) {
	result, err := h.reseeder.Reseed(r.Context())
	if err != nil {
		h.logger.Error("reseed failed", "error", err)
		resp := ReseedResponse{Error: err.Error()}
		if result != nil {
			resp.Succeeded = len(result.Succeeded)
			resp.Failed = len(result.Failed)
			resp.Failures = result.Failed
		}
		h.respondJSON(w, http.StatusBadGateway, resp)
		return
	}

	h.respondJSON(w, http.StatusOK, ReseedResponse{
		Succeeded: len(result.Succeeded),
		Failed:    len(result.Failed),
		Failures:  result.Failed,
	})
}

// HealthResponse reports service status and catalog row counts
type HealthResponse struct {
	Status   string `json:"status"`
	Products int64  `json:"products"`
	Prices   int64  `json:"prices"`
}

// Health handles health check requests
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "ok"}
	if h.catalog != nil {
		counts, err := h.catalog.Counts(r.Context())
		if err != nil {
			h.logger.Error("health check failed", "error", err)
			resp.Status = "degraded"
			h.respondJSON(w, http.StatusServiceUnavailable, resp)
			return
		}
		resp.Products = counts.Products
		resp.Prices = counts.Prices
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func statusForScrapeError(err error) int {
	switch {
	case errors.Is(err, scraper.ErrUnsupportedStore):
		return http.StatusBadRequest
	case errors.Is(err, scraper.ErrBrowserUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

// Helper methods
func (h *Handlers) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handlers) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
