package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/purchase4less/price-scraper/internal/models"
)

var priceNoise = regexp.MustCompile(`[^0-9,.]`)

// NormalizePrice converts retailer price text into a non-negative
// amount with two decimal places. It tolerates currency symbols and
// whitespace, treats the comma as a decimal separator and parses with
// invariant rules. Anything unparseable normalizes to zero; price
// problems never block the rest of a record.
func NormalizePrice(raw string) decimal.Decimal {
	cleaned := priceNoise.ReplaceAllString(raw, "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	value, err := decimal.NewFromString(cleaned)
	if err != nil || value.IsNegative() {
		return decimal.Zero
	}

	return value.Round(2)
}

// Normalize turns a raw extraction into a complete product record,
// substituting the Danish fallback labels for missing fields. Partial
// data wins over total failure: a page without a brand still yields a
// priced product.
func Normalize(raw models.RawExtraction, store models.Retailer) models.StoreProduct {
	product := models.StoreProduct{
		Name:  models.DefaultName,
		Brand: models.DefaultBrand,
		Price: decimal.Zero,
		Store: store,
	}

	if raw.Name != nil {
		if name := strings.TrimSpace(*raw.Name); name != "" {
			product.Name = name
		}
	}
	if raw.Brand != nil {
		if brand := strings.TrimSpace(*raw.Brand); brand != "" {
			product.Brand = brand
		}
	}
	if raw.ImageURL != nil {
		product.ImageURL = strings.TrimSpace(*raw.ImageURL)
	}
	if raw.RawPrice != nil {
		product.Price = NormalizePrice(*raw.RawPrice)
	}

	return product
}
