package scraper

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/purchase4less/price-scraper/internal/models"
)

// BilkaExtractor reads bilkatogo.dk product pages. The price is a
// single text node and the brand sits in an emphasis element nested in
// the subtitle.
type BilkaExtractor struct{}

func (BilkaExtractor) Store() models.Retailer { return models.RetailerBilka }

func (BilkaExtractor) Extract(doc *goquery.Document) models.RawExtraction {
	return models.RawExtraction{
		Name:     textOrNil(doc.Find(".product-title")),
		Brand:    textOrNil(doc.Find(".product-sub-title span b")),
		ImageURL: attrOrNil(doc.Find(`img.img-fluid.selected-image.zoom-in[alt="Produkt billede"]`), "src"),
		RawPrice: textOrNil(doc.Find(".product-price__integer")),
	}
}
