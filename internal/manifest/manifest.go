// Package manifest holds the fixed catalog of product pages the seeder
// scrapes. Each entry pairs a store URL with the hand-curated
// identifier that groups the same item across stores, so the three
// prices for e.g. "Banan" land next to each other in the output.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/purchase4less/price-scraper/internal/models"
)

type Manifest struct {
	Bilka []models.ScrapeTarget `json:"bilka"`
	Rema  []models.ScrapeTarget `json:"rema1000"`
	Spar  []models.ScrapeTarget `json:"spar"`
}

// Targets flattens the manifest retailer by retailer, preserving
// declaration order within each retailer.
func (m *Manifest) Targets() []models.ScrapeTarget {
	targets := make([]models.ScrapeTarget, 0, len(m.Bilka)+len(m.Rema)+len(m.Spar))
	targets = append(targets, m.Bilka...)
	targets = append(targets, m.Rema...)
	targets = append(targets, m.Spar...)
	return targets
}

func (m *Manifest) Len() int {
	return len(m.Bilka) + len(m.Rema) + len(m.Spar)
}

// Load reads a manifest from a JSON file, for overriding the built-in
// catalog without a rebuild.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	return &m, nil
}

// Default returns the built-in catalog: 27 everyday groceries per
// store.
func Default() *Manifest {
	return &Manifest{
		Bilka: []models.ScrapeTarget{
			{URL: "https://www.bilkatogo.dk/produkt/bananer/18381/", Identifier: "Banan"},
			{URL: "https://www.bilkatogo.dk/produkt/salling-minimaelk-0-4-fedt/84121/", Identifier: "Minimælk"},
			{URL: "https://www.bilkatogo.dk/produkt/schulstad-det-gode-solsikkerugbroed/20807/", Identifier: "Solsikkerugbrød"},
			{URL: "https://www.bilkatogo.dk/produkt/aebler/18379/", Identifier: "Æble"},
			{URL: "https://www.bilkatogo.dk/produkt/dava-aeg-m-l-oeko/108507/", Identifier: "Æg 8 Øko"},
			{URL: "https://www.bilkatogo.dk/produkt/kaergaarden-smoerbar/19721/", Identifier: "Kærgården smør"},
			{URL: "https://www.bilkatogo.dk/produkt/salling-danbo-ost-i-skiver-mellemlagret-45/41414/", Identifier: "Ost"},
			{URL: "https://www.bilkatogo.dk/produkt/cheasy-skyr-m-vanilje-0-2-fedt-u-tilsat-sukker/19753/", Identifier: "Skyr"},
			{URL: "https://www.bilkatogo.dk/produkt/salling-kyllingefilet/139804/", Identifier: "Kyllingebryst"},
			{URL: "https://www.bilkatogo.dk/produkt/slagteren-hakket-oksekoed-8-12-fedt/38984/", Identifier: "Hakket oksekød"},
			{URL: "https://www.bilkatogo.dk/produkt/salling-panerede-fisk/108272/", Identifier: "Paneret fisk"},
			{URL: "https://www.bilkatogo.dk/produkt/budget-penne/93938/", Identifier: "Penne pasta"},
			{URL: "https://www.bilkatogo.dk/produkt/salling-parboiled-ris/111012/", Identifier: "Ris"},
			{URL: "https://www.bilkatogo.dk/produkt/salling-kartofler/51138/", Identifier: "Kartofler"},
			{URL: "https://www.bilkatogo.dk/produkt/salling-toastbroed/89811/", Identifier: "Toastbrød"},
			{URL: "https://www.bilkatogo.dk/produkt/appelsiner/38149/", Identifier: "Appelsiner"},
			{URL: "https://www.bilkatogo.dk/produkt/tomater/18380/", Identifier: "Tomater"},
			{URL: "https://www.bilkatogo.dk/produkt/salling-agurk/18364/", Identifier: "Agurk"},
			{URL: "https://www.bilkatogo.dk/produkt/salling-icebergsalat/18518/", Identifier: "Salat"},
			{URL: "https://www.bilkatogo.dk/produkt/salling-guleroedder/18323/", Identifier: "Gulerødder"},
			{URL: "https://www.bilkatogo.dk/produkt/salling-loeg/18305/", Identifier: "Løg"},
			{URL: "https://www.bilkatogo.dk/produkt/peberfrugter-roede/51061/", Identifier: "Peberfrugt"},
			{URL: "https://www.bilkatogo.dk/produkt/salling-spidskaal/41800/", Identifier: "Spidskål"},
			{URL: "https://www.bilkatogo.dk/produkt/hvidkaal/38306/", Identifier: "Hvidkål"},
			{URL: "https://www.bilkatogo.dk/produkt/bki-extra-formalet-kaffe/14674/", Identifier: "Kaffe Formalet"},
			{URL: "https://www.bilkatogo.dk/produkt/salling-gold-instant-kaffe/81643/", Identifier: "Kaffe Instant"},
			{URL: "https://www.bilkatogo.dk/produkt/pickwick-sort-te-m-blandet-frugt/14959/", Identifier: "Te Blandet Frugt"},
		},
		Rema: []models.ScrapeTarget{
			{URL: "https://shop.rema1000.dk/varer/304000", Identifier: "Banan"},
			{URL: "https://shop.rema1000.dk/varer/21464", Identifier: "Minimælk"},
			{URL: "https://shop.rema1000.dk/varer/61508", Identifier: "Solsikkerugbrød"},
			{URL: "https://shop.rema1000.dk/varer/304070", Identifier: "Æble"},
			{URL: "https://shop.rema1000.dk/varer/220017", Identifier: "Æg 8 Øko"},
			{URL: "https://shop.rema1000.dk/varer/25847", Identifier: "Kærgården smør"},
			{URL: "https://shop.rema1000.dk/varer/451111", Identifier: "Ost"},
			{URL: "https://shop.rema1000.dk/varer/24015", Identifier: "Skyr"},
			{URL: "https://shop.rema1000.dk/varer/404995", Identifier: "Kyllingebryst"},
			{URL: "https://shop.rema1000.dk/varer/400171", Identifier: "Hakket oksekød"},
			{URL: "https://shop.rema1000.dk/varer/43000", Identifier: "Paneret fisk"},
			{URL: "https://shop.rema1000.dk/varer/90346", Identifier: "Penne pasta"},
			{URL: "https://shop.rema1000.dk/varer/98144", Identifier: "Ris"},
			{URL: "https://shop.rema1000.dk/varer/306903", Identifier: "Kartofler"},
			{URL: "https://shop.rema1000.dk/varer/60112", Identifier: "Toastbrød"},
			{URL: "https://shop.rema1000.dk/varer/304700", Identifier: "Appelsiner"},
			{URL: "https://shop.rema1000.dk/varer/306141", Identifier: "Tomater"},
			{URL: "https://shop.rema1000.dk/varer/306008", Identifier: "Agurk"},
			{URL: "https://shop.rema1000.dk/varer/306215", Identifier: "Salat"},
			{URL: "https://shop.rema1000.dk/varer/306520", Identifier: "Gulerødder"},
			{URL: "https://shop.rema1000.dk/varer/306960", Identifier: "Løg"},
			{URL: "https://shop.rema1000.dk/varer/306345", Identifier: "Peberfrugt"},
			{URL: "https://shop.rema1000.dk/varer/306650", Identifier: "Spidskål"},
			{URL: "https://shop.rema1000.dk/varer/306503", Identifier: "Hvidkål"},
			{URL: "https://shop.rema1000.dk/varer/50100", Identifier: "Kaffe Formalet"},
			{URL: "https://shop.rema1000.dk/varer/50544", Identifier: "Kaffe Instant"},
			{URL: "https://shop.rema1000.dk/varer/241526", Identifier: "Te Blandet Frugt"},
		},
		Spar: []models.ScrapeTarget{
			{URL: "https://risskov.spar.dk/produkter/bananer-572", Identifier: "Banan"},
			{URL: "https://risskov.spar.dk/produkter/fp-minim%C3%A6lk-7311041073308", Identifier: "Minimælk"},
			{URL: "https://risskov.spar.dk/produkter/det-gode-rugbr%C3%B8d-skiver-5701205001568", Identifier: "Solsikkerugbrød"},
			{URL: "https://risskov.spar.dk/produkter/r%C3%B8de-%C3%A6bler-525", Identifier: "Æble"},
			{URL: "https://risskov.spar.dk/produkter/dava-%C3%A6g-m-l-%C3%B8ko-5701607590998", Identifier: "Æg 8 Øko"},
			{URL: "https://risskov.spar.dk/produkter/k%C3%A6rg%C3%A5rden-orginal-5760466904919", Identifier: "Kærgården smør"},
			{URL: "https://risskov.spar.dk/produkter/skiveost-45%2Bml-300-7311041076583", Identifier: "Ost"},
			{URL: "https://risskov.spar.dk/produkter/cheasy-skyr-vanilje-0,2%25-5711953011399", Identifier: "Skyr"},
			{URL: "https://risskov.spar.dk/produkter/gestus-kyllingefilet-11%25-5701410390754", Identifier: "Kyllingebryst"},
			{URL: "https://risskov.spar.dk/produkter/hakket-oksek%C3%B8d-8-12%25-5701410394936", Identifier: "Hakket oksekød"},
			{URL: "https://risskov.spar.dk/produkter/fp-panerede-fiskefileter-7311041086056", Identifier: "Paneret fisk"},
			{URL: "https://risskov.spar.dk/produkter/gestus-penne-rigate-5701410364786", Identifier: "Penne pasta"},
			{URL: "https://risskov.spar.dk/produkter/fp-parboiled-ris-7311041074732", Identifier: "Ris"},
			{URL: "https://risskov.spar.dk/produkter/kartofler,-2-kg-5701410380410", Identifier: "Kartofler"},
			{URL: "https://risskov.spar.dk/produkter/m%C3%B8llerens-hvede-toastbr%C3%B8d-5701071008746", Identifier: "Toastbrød"},
			{URL: "https://risskov.spar.dk/produkter/appelsiner-i-net-593", Identifier: "Appelsiner"},
			{URL: "https://risskov.spar.dk/produkter/l%C3%B8se-tomater-477", Identifier: "Tomater"},
			{URL: "https://risskov.spar.dk/produkter/agurker-filmede-udenlandsk-261", Identifier: "Agurk"},
			{URL: "https://risskov.spar.dk/produkter/iceberg-m-film---------kl1-158", Identifier: "Salat"},
			{URL: "https://risskov.spar.dk/produkter/guler%C3%B8dder-dk-gestus-5701410404123", Identifier: "Gulerødder"},
			{URL: "https://risskov.spar.dk/produkter/%C3%B8ko-l%C3%B8g-367", Identifier: "Løg"},
			{URL: "https://risskov.spar.dk/produkter/r%C3%B8d-peber-197,", Identifier: "Peberfrugt"},
			{URL: "https://risskov.spar.dk/produkter/spidsk%C3%A5l.-237", Identifier: "Spidskål"},
			{URL: "https://risskov.spar.dk/produkter/hvidk%C3%A5l.-225", Identifier: "Hvidkål"},
			{URL: "https://risskov.spar.dk/produkter/bki-extra-kaffe-5701115583819", Identifier: "Kaffe Formalet"},
			{URL: "https://risskov.spar.dk/produkter/merrild-gold-instant-8000070060838", Identifier: "Kaffe Instant"},
			{URL: "https://risskov.spar.dk/produkter/pickwick-mix-pack-r%C3%B8d-br.-5997100023303", Identifier: "Te Blandet Frugt"},
		},
	}
}
