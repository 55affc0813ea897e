package scraper

import (
	"context"
	"errors"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/purchase4less/price-scraper/internal/models"
)

var (
	ErrUnsupportedStore   = errors.New("unsupported store")
	ErrBrowserUnavailable = errors.New("browser unavailable")
)

// Machine-stable failure classifications reported per target in a
// batch result.
const (
	ReasonUnsupportedStore = "UnsupportedStore"
	ReasonNavigationFailed = "NavigationFailed"
	ReasonExtractionFailed = "ExtractionFailed"
	ReasonCancelled        = "Cancelled"
)

// Extractor runs one retailer's DOM queries against a rendered product
// page. Implementations never fail on a missing optional field; every
// selector independently defaults to nil.
type Extractor interface {
	Store() models.Retailer
	Extract(doc *goquery.Document) models.RawExtraction
}

// NavigationError marks a target whose page could not be loaded.
// Retryable by the caller; the rest of the batch continues.
type NavigationError struct {
	URL string
	Err error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("navigation failed for %s: %v", e.URL, e.Err)
}

func (e *NavigationError) Unwrap() error { return e.Err }

// ExtractionError marks a target whose page loaded but held no
// recognizable product structure, typically after a site redesign.
type ExtractionError struct {
	URL   string
	Store models.Retailer
	Err   error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed for %s product at %s: %v", e.Store, e.URL, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// Classify maps a pipeline error onto its stable failure reason.
func Classify(err error) string {
	var navErr *NavigationError
	var extErr *ExtractionError

	switch {
	case errors.Is(err, ErrUnsupportedStore):
		return ReasonUnsupportedStore
	case errors.As(err, &navErr):
		return ReasonNavigationFailed
	case errors.As(err, &extErr):
		return ReasonExtractionFailed
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		// An aborted request is not markup drift.
		return ReasonCancelled
	default:
		return ReasonExtractionFailed
	}
}
