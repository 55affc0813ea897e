package models

import (
	"github.com/shopspring/decimal"
)

// Retailer identifies one of the supported grocery stores. The value
// doubles as the price source label stored in the catalog.
type Retailer string

const (
	RetailerBilka Retailer = "Bilka"
	RetailerRema  Retailer = "Rema 1000"
	RetailerSpar  Retailer = "SPAR"
)

// Fallback values substituted when a product page is missing a field.
const (
	DefaultName  = "Ikke fundet"
	DefaultBrand = "Ukendt mærke"
)

// RawExtraction is the unprocessed result of running one store's DOM
// queries against a rendered product page. A nil field means the
// selector matched nothing, which is expected and non-fatal.
type RawExtraction struct {
	Name     *string
	Brand    *string
	ImageURL *string
	RawPrice *string
}

// Empty reports whether no selector matched anything at all, which
// usually means the page is not a product page (or the markup moved).
func (r RawExtraction) Empty() bool {
	return r.Name == nil && r.Brand == nil && r.ImageURL == nil && r.RawPrice == nil
}

// StoreProduct is a normalized product as scraped from one retailer.
type StoreProduct struct {
	Name     string          `json:"name"`
	Brand    string          `json:"brand"`
	ImageURL string          `json:"image"`
	Price    decimal.Decimal `json:"price"`
	Store    Retailer        `json:"store"`
}

// ScrapeTarget is one manifest entry: a product page URL plus the
// manually curated identifier that groups the same physical product
// across retailers.
type ScrapeTarget struct {
	URL        string `json:"url"`
	Identifier string `json:"identifier"`
}

// Str is a convenience for building optional extraction fields.
func Str(s string) *string {
	return &s
}
