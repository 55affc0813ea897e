package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/purchase4less/price-scraper/internal/models"
)

func TestRouterResolve(t *testing.T) {
	router := NewRouter()

	tests := []struct {
		name  string
		url   string
		store models.Retailer
	}{
		{"Bilka", "https://www.bilkatogo.dk/produkt/bananer/18381/", models.RetailerBilka},
		{"Rema", "https://shop.rema1000.dk/varer/304000", models.RetailerRema},
		{"Spar", "https://risskov.spar.dk/produkter/bananer-572", models.RetailerSpar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extractor, err := router.Resolve(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.store, extractor.Store())
		})
	}
}

func TestRouterResolveUnsupported(t *testing.T) {
	router := NewRouter()

	_, err := router.Resolve("https://www.netto.dk/produkt/bananer")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedStore)
	assert.Equal(t, ReasonUnsupportedStore, Classify(err))
}

func TestRouterResolveDeterministic(t *testing.T) {
	router := NewRouter()
	url := "https://shop.rema1000.dk/varer/21464"

	first, err := router.Resolve(url)
	require.NoError(t, err)
	second, err := router.Resolve(url)
	require.NoError(t, err)

	assert.Equal(t, first.Store(), second.Store())
}
