package sources

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"

	"github.com/preciossuperpy/preciossuperpy"
)

// categoryKeywords is the relevance vocabulary: a landing-page link is a
// category unit only when its path contains one of these.
var categoryKeywords = []string{
	"carniceria", "carnes", "lacteos", "quesos", "fiambreria",
	"frutas", "verduras", "panaderia", "panificados",
	"bebidas", "almacen", "despensa", "congelados", "huevos",
}

// selectors is the markup contract of one storefront. Price selectors are a
// chain tried in priority order: the first one yielding a positive price
// wins, so discount markup can shadow the list price.
type selectors struct {
	Item  string
	Title string
	Price []string
}

// catalogSource crawls an HTML storefront: the landing page lists category
// links, each category page lists product elements.
type catalogSource struct {
	name       string
	landing    string
	sel        selectors
	client     *http.Client
	classifier *preciossuperpy.Classifier
}

func (s *catalogSource) Name() string { return s.name }

func (s *catalogSource) get(rawURL string) (*goquery.Document, error) {
	resp, err := s.client.Get(rawURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: unexpected status %d", rawURL, resp.StatusCode)
	}
	return goquery.NewDocumentFromReader(resp.Body)
}

// Units fetches the landing page and keeps the hyperlinks whose path
// contains a category keyword.
func (s *catalogSource) Units() ([]string, error) {
	doc, err := s.get(s.landing)
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(s.landing)
	if err != nil {
		return nil, err
	}

	var units []string
	seen := make(map[string]bool)
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		ref, err := base.Parse(href)
		if err != nil {
			return
		}
		if ref.Host != base.Host || !relevantPath(ref.Path) {
			return
		}
		ref.Fragment = ""
		u := ref.String()
		if seen[u] {
			return
		}
		seen[u] = true
		units = append(units, u)
	})
	return units, nil
}

func relevantPath(path string) bool {
	path = preciossuperpy.Normalize(path)
	for _, kw := range categoryKeywords {
		if strings.Contains(path, kw) {
			return true
		}
	}
	return false
}

// Fetch parses one category page into records.
func (s *catalogSource) Fetch(categoryURL string) ([]preciossuperpy.Record, error) {
	doc, err := s.get(categoryURL)
	if err != nil {
		return nil, err
	}

	var records []preciossuperpy.Record
	doc.Find(s.sel.Item).Each(func(_ int, item *goquery.Selection) {
		title := strings.TrimSpace(item.Find(s.sel.Title).Text())
		if title == "" {
			return
		}

		price := decimal.Zero
		for _, sel := range s.sel.Price {
			if p := ParsePrice(item.Find(sel).First().Text()); p.IsPositive() {
				price = p
				break
			}
		}
		if !price.IsPositive() {
			return
		}

		if record, ok := makeRecord(s.name, categoryURL, title, price, s.classifier); ok {
			records = append(records, record)
		}
	})
	return records, nil
}
