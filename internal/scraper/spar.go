package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/purchase4less/price-scraper/internal/models"
)

// SparExtractor reads spar.dk product pages (an Angular app). Discount
// products render two prices: the crossed-out was-price inside an
// app-savings container and the current price standalone, so app-price
// elements under app-savings must be skipped. The øre part is a
// superscript inside the price element.
type SparExtractor struct{}

func (SparExtractor) Store() models.Retailer { return models.RetailerSpar }

func (SparExtractor) Extract(doc *goquery.Document) models.RawExtraction {
	return models.RawExtraction{
		Name:     textOrNil(doc.Find(".product-details-name")),
		Brand:    sparBrand(doc),
		ImageURL: attrOrNil(doc.Find(".product-details-image-container img"), "src"),
		RawPrice: sparPrice(doc),
	}
}

// sparPrice takes the first app-price element outside any app-savings
// container. The element's text contains the superscript fraction, so
// the fraction is cut out of the main text before the two parts are
// joined with a decimal point.
func sparPrice(doc *goquery.Document) *string {
	sel := doc.Find("app-price").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.Closest("app-savings").Length() == 0
	}).First()
	if sel.Length() == 0 {
		return nil
	}

	main := strings.TrimSpace(sel.Text())

	if sup := sel.Find("sup").First(); sup.Length() > 0 {
		if fraction := strings.TrimSpace(sup.Text()); fraction != "" {
			whole := strings.TrimSpace(strings.Replace(main, fraction, "", 1))
			price := whole + "." + fraction
			return &price
		}
	}

	if main == "" {
		return nil
	}
	return &main
}

// sparBrand locates the heading labelled "Producent" and reads its
// next sibling.
func sparBrand(doc *goquery.Document) *string {
	var brand *string
	doc.Find("h2").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !strings.Contains(s.Text(), "Producent") {
			return true
		}
		brand = textOrNil(s.Next())
		return false
	})
	return brand
}
