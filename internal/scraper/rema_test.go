package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/purchase4less/price-scraper/internal/parser"
)

func TestRemaExtract(t *testing.T) {
	html := `<html><body>
		<div data-v-71b26ec4 class="title">Minimælk</div>
		<div data-v-71b26ec4 class="sub">1 L / Gram Slager</div>
		<span data-v-71b26ec4 class="price-normal">25<span>95</span></span>
		<img class="product-img" src="https://cdn.rema1000.dk/21464.png">
	</body></html>`

	raw := RemaExtractor{}.Extract(docFromHTML(t, html))

	require.NotNil(t, raw.Name)
	assert.Equal(t, "Minimælk", *raw.Name)
	require.NotNil(t, raw.Brand)
	assert.Equal(t, "Gram Slager", *raw.Brand)
	require.NotNil(t, raw.ImageURL)
	assert.Equal(t, "https://cdn.rema1000.dk/21464.png", *raw.ImageURL)
	require.NotNil(t, raw.RawPrice)
	assert.Equal(t, "25.95", *raw.RawPrice)
}

// Integer node "25" plus fraction node "95" must come out as 25.95.
func TestRemaSplitPriceAssembly(t *testing.T) {
	html := `<html><body>
		<span data-v-71b26ec4 class="price-normal">
			25
			<span>95</span>
		</span>
	</body></html>`

	raw := RemaExtractor{}.Extract(docFromHTML(t, html))

	require.NotNil(t, raw.RawPrice)
	assert.Equal(t, "25.95", *raw.RawPrice)
	assert.Equal(t, "25.95", parser.NormalizePrice(*raw.RawPrice).String())
}

func TestRemaPriceWithoutFraction(t *testing.T) {
	html := `<html><body>
		<span data-v-71b26ec4 class="price-normal">12</span>
	</body></html>`

	raw := RemaExtractor{}.Extract(docFromHTML(t, html))

	require.NotNil(t, raw.RawPrice)
	assert.Equal(t, "12", *raw.RawPrice)
}

func TestRemaBrandIsLastSlashSegment(t *testing.T) {
	tests := []struct {
		name     string
		sub      string
		expected string
	}{
		{"Unit and brand", "500 g / Salling", "Salling"},
		{"Brand only", "Arla", "Arla"},
		{"Several segments", "6 stk. / 330 ml / Coca-Cola", "Coca-Cola"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := `<html><body><div data-v-71b26ec4 class="sub">` + tt.sub + `</div></body></html>`
			raw := RemaExtractor{}.Extract(docFromHTML(t, html))
			require.NotNil(t, raw.Brand)
			assert.Equal(t, tt.expected, *raw.Brand)
		})
	}
}

func TestRemaExtractMissingFields(t *testing.T) {
	html := `<html><body><div data-v-71b26ec4 class="title">Skyr</div></body></html>`

	raw := RemaExtractor{}.Extract(docFromHTML(t, html))

	require.NotNil(t, raw.Name)
	assert.Nil(t, raw.Brand)
	assert.Nil(t, raw.ImageURL)
	assert.Nil(t, raw.RawPrice)
}
