package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// textOrNil returns the trimmed text of the first match, or nil when
// the selector matched nothing or only whitespace.
func textOrNil(sel *goquery.Selection) *string {
	if sel.Length() == 0 {
		return nil
	}
	text := strings.TrimSpace(sel.First().Text())
	if text == "" {
		return nil
	}
	return &text
}

func attrOrNil(sel *goquery.Selection, attr string) *string {
	if sel.Length() == 0 {
		return nil
	}
	value, ok := sel.First().Attr(attr)
	if !ok {
		return nil
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
