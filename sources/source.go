package sources

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/preciossuperpy/preciossuperpy"
)

// Source is one supermarket data source. Units returns the work units of the
// source (category page URLs, or API group ids); Fetch turns one unit into
// candidate records. Records failing the exclusion or classification checks
// never leave the adapter.
type Source interface {
	Name() string
	Units() ([]string, error)
	Fetch(unit string) ([]preciossuperpy.Record, error)
}

// Options carries what a source constructor needs. The HTTP client is shared
// by all the workers fetching that source.
type Options struct {
	Client     *http.Client
	Classifier *preciossuperpy.Classifier

	// Groups overrides the group ids of API-backed sources.
	Groups []string
}

var priceClean = regexp.MustCompile(`[^\d,]`)

// ParsePrice reads a Guaraní amount out of a price label, e.g. "Gs. 10.500".
// Dots are thousand separators, a comma is the decimal mark. Returns zero
// when no amount can be read.
func ParsePrice(text string) decimal.Decimal {
	s := priceClean.ReplaceAllString(text, "")
	s = strings.Replace(s, ",", ".", 1)
	if s == "" || s == "." {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// newRecord builds a record with the unit parser outputs filled in. The name
// must already be upper-cased.
func newRecord(store, categoryURL, name string, price decimal.Decimal) preciossuperpy.Record {
	parsed := preciossuperpy.ParseUnits(name)
	return preciossuperpy.Record{
		Store:        store,
		CategoryURL:  categoryURL,
		Name:         name,
		Price:        price,
		RawUnit:      parsed.Raw,
		UnitKind:     parsed.Kind,
		Quantity:     parsed.Quantity,
		PricePerUnit: preciossuperpy.PricePerUnit(price, parsed.Quantity),
	}
}

// makeRecord enriches a raw (name, price) candidate with the unit parser and
// the classifier. ok is false when the record must be dropped.
func makeRecord(store, categoryURL, name string, price decimal.Decimal, classifier *preciossuperpy.Classifier) (preciossuperpy.Record, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" || classifier.Excluded(name) {
		return preciossuperpy.Record{}, false
	}

	group, ok := classifier.Group(name)
	if !ok {
		return preciossuperpy.Record{}, false
	}

	record := newRecord(store, categoryURL, name, price)
	record.Group = group
	record.Subgroup, _ = classifier.Subgroup(name, group)
	return record, true
}
