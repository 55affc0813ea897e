package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/purchase4less/price-scraper/internal/models"
)

// RemaExtractor reads shop.rema1000.dk product pages. The markup is a
// Vue app with scoped-style attributes on every element; the price is
// split across two DOM nodes and the subtitle packs the brand into a
// slash-delimited string ("500 g / Salling").
type RemaExtractor struct{}

func (RemaExtractor) Store() models.Retailer { return models.RetailerRema }

func (RemaExtractor) Extract(doc *goquery.Document) models.RawExtraction {
	raw := models.RawExtraction{
		Name:     textOrNil(doc.Find(`div.title[data-v-71b26ec4]`)),
		ImageURL: attrOrNil(doc.Find("img.product-img"), "src"),
		RawPrice: remaPrice(doc),
	}

	if sub := textOrNil(doc.Find(`div.sub[data-v-71b26ec4]`)); sub != nil {
		raw.Brand = lastSlashSegment(*sub)
	}

	return raw
}

// remaPrice assembles "integer.fraction" from the split price element:
// the element's leading text node holds the whole kroner and a nested
// span holds the øre.
func remaPrice(doc *goquery.Document) *string {
	sel := doc.Find(`span.price-normal[data-v-71b26ec4]`).First()
	if sel.Length() == 0 {
		return nil
	}

	var whole string
	for node := sel.Nodes[0].FirstChild; node != nil; node = node.NextSibling {
		if node.Type == html.TextNode {
			if text := strings.TrimSpace(node.Data); text != "" {
				whole = text
				break
			}
		}
	}
	if whole == "" {
		return nil
	}

	fraction := strings.TrimSpace(sel.Find("span").First().Text())
	if fraction == "" {
		return &whole
	}

	price := whole + "." + fraction
	return &price
}

func lastSlashSegment(s string) *string {
	parts := strings.Split(s, "/")
	segment := strings.TrimSpace(parts[len(parts)-1])
	if segment == "" {
		return nil
	}
	return &segment
}
