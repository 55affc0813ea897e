package parser

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/purchase4less/price-scraper/internal/models"
)

func TestNormalizePrice(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Comma separator", "25,95", "25.95"},
		{"Period separator", "25.95", "25.95"},
		{"Integer only", "25", "25"},
		{"Currency suffix", "25,95 kr.", "25.95"},
		{"Currency prefix with spaces", "DKK 12,50", "12.5"},
		{"Whitespace noise", "  8,00  ", "8"},
		{"Pre-assembled fraction", "24.95", "24.95"},
		{"More than two decimals rounds", "10,999", "11"},
		{"Empty string", "", "0"},
		{"Letters only", "gratis", "0"},
		{"Multiple separators", "1.234,50", "0"},
		{"Lone separator", ",", "0"},
		{"Zero", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizePrice(tt.input)
			assert.True(t, result.Equal(decimal.RequireFromString(tt.expected)),
				"NormalizePrice(%q) = %s, want %s", tt.input, result, tt.expected)
			assert.False(t, result.IsNegative())
		})
	}
}

func TestNormalizeSubstitutesDefaults(t *testing.T) {
	product := Normalize(models.RawExtraction{}, models.RetailerBilka)

	assert.Equal(t, models.DefaultName, product.Name)
	assert.Equal(t, models.DefaultBrand, product.Brand)
	assert.Equal(t, "", product.ImageURL)
	assert.True(t, product.Price.IsZero())
	assert.Equal(t, models.RetailerBilka, product.Store)
}

func TestNormalizeKeepsExtractedFields(t *testing.T) {
	raw := models.RawExtraction{
		Name:     models.Str("  Bananer  "),
		Brand:    models.Str("Salling"),
		ImageURL: models.Str("https://cdn.example/banan.jpg"),
		RawPrice: models.Str("12,95"),
	}

	product := Normalize(raw, models.RetailerRema)

	assert.Equal(t, "Bananer", product.Name)
	assert.Equal(t, "Salling", product.Brand)
	assert.Equal(t, "https://cdn.example/banan.jpg", product.ImageURL)
	assert.Equal(t, "12.95", product.Price.String())
	assert.Equal(t, models.RetailerRema, product.Store)
}

func TestNormalizeMissingBrandDoesNotBlockPrice(t *testing.T) {
	raw := models.RawExtraction{
		Name:     models.Str("Agurk"),
		RawPrice: models.Str("7,50"),
	}

	product := Normalize(raw, models.RetailerSpar)

	assert.Equal(t, "Agurk", product.Name)
	assert.Equal(t, models.DefaultBrand, product.Brand)
	assert.Equal(t, "7.5", product.Price.String())
}

func TestNormalizeBlankFieldsFallBack(t *testing.T) {
	raw := models.RawExtraction{
		Name:  models.Str("   "),
		Brand: models.Str(""),
	}

	product := Normalize(raw, models.RetailerSpar)

	assert.Equal(t, models.DefaultName, product.Name)
	assert.Equal(t, models.DefaultBrand, product.Brand)
}
