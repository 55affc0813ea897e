package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/purchase4less/price-scraper/internal/parser"
)

func TestSparExtract(t *testing.T) {
	html := `<html><body>
		<h1 class="product-details-name">Cheasy Skyr Vanilje</h1>
		<div class="product-details-image-container">
			<img src="https://cdn.spar.dk/skyr.jpg">
		</div>
		<app-price>24<sup>95</sup></app-price>
		<h2>Producent</h2>
		<p>Arla</p>
	</body></html>`

	raw := SparExtractor{}.Extract(docFromHTML(t, html))

	require.NotNil(t, raw.Name)
	assert.Equal(t, "Cheasy Skyr Vanilje", *raw.Name)
	require.NotNil(t, raw.Brand)
	assert.Equal(t, "Arla", *raw.Brand)
	require.NotNil(t, raw.ImageURL)
	assert.Equal(t, "https://cdn.spar.dk/skyr.jpg", *raw.ImageURL)
	require.NotNil(t, raw.RawPrice)
	assert.Equal(t, "24.95", *raw.RawPrice)
}

// A discounted product shows the was-price inside app-savings; the
// extractor must read the standalone current price instead.
func TestSparSkipsWasPriceInsideSavings(t *testing.T) {
	html := `<html><body>
		<app-savings>
			<div class="old-price"><app-price>30</app-price></div>
		</app-savings>
		<app-price>24<sup>95</sup></app-price>
	</body></html>`

	raw := SparExtractor{}.Extract(docFromHTML(t, html))

	require.NotNil(t, raw.RawPrice)
	assert.Equal(t, "24.95", *raw.RawPrice)
	assert.Equal(t, "24.95", parser.NormalizePrice(*raw.RawPrice).String())
}

func TestSparPriceWithoutSuperscript(t *testing.T) {
	html := `<html><body><app-price> 18 </app-price></body></html>`

	raw := SparExtractor{}.Extract(docFromHTML(t, html))

	require.NotNil(t, raw.RawPrice)
	assert.Equal(t, "18", *raw.RawPrice)
}

func TestSparOnlySavingsPricePresent(t *testing.T) {
	html := `<html><body>
		<app-savings><app-price>30</app-price></app-savings>
	</body></html>`

	raw := SparExtractor{}.Extract(docFromHTML(t, html))

	assert.Nil(t, raw.RawPrice)
}

func TestSparBrandMissingHeading(t *testing.T) {
	html := `<html><body>
		<h1 class="product-details-name">Agurk</h1>
		<h2>Næringsindhold</h2>
		<p>Noget andet</p>
	</body></html>`

	raw := SparExtractor{}.Extract(docFromHTML(t, html))

	require.NotNil(t, raw.Name)
	assert.Nil(t, raw.Brand)
}

func TestSparBrandHeadingWithoutSibling(t *testing.T) {
	html := `<html><body><div><h2>Producent</h2></div></body></html>`

	raw := SparExtractor{}.Extract(docFromHTML(t, html))

	assert.Nil(t, raw.Brand)
}
