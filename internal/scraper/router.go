package scraper

import (
	"fmt"
	"strings"
)

type route struct {
	signature string
	extractor Extractor
}

// Router maps a product URL to the extractor for its store. Signatures
// are checked in declaration order, first match wins; the domains are
// mutually exclusive so order only matters for determinism.
type Router struct {
	routes []route
}

func NewRouter() *Router {
	return &Router{
		routes: []route{
			{signature: "bilkatogo.dk", extractor: BilkaExtractor{}},
			{signature: "rema1000.dk", extractor: RemaExtractor{}},
			{signature: "spar.dk", extractor: SparExtractor{}},
		},
	}
}

func (r *Router) Resolve(url string) (Extractor, error) {
	for _, rt := range r.routes {
		if strings.Contains(url, rt.signature) {
			return rt.extractor, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedStore, url)
}
