package sources

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/preciossuperpy/preciossuperpy"
)

func init() {
	register("biggie", NewBiggie)
}

const biggiePageSize = 100

// biggieGroups are the article classifications fetched by default.
var biggieGroups = []string{
	"carnes", "lacteos", "frutas-y-verduras", "panificados",
	"bebidas", "almacen",
}

// biggieSource reads the Biggie article API, one paged group at a time.
type biggieSource struct {
	base       string
	groups     []string
	client     *http.Client
	classifier *preciossuperpy.Classifier
}

// NewBiggie fetches the Biggie article API.
func NewBiggie(opts Options) Source {
	groups := opts.Groups
	if len(groups) == 0 {
		groups = biggieGroups
	}
	return &biggieSource{
		base:       "https://api.app.biggie.com.py/api",
		groups:     groups,
		client:     opts.Client,
		classifier: opts.Classifier,
	}
}

func (s *biggieSource) Name() string { return "biggie" }

func (s *biggieSource) Units() ([]string, error) {
	return append([]string(nil), s.groups...), nil
}

type biggiePage struct {
	Items []struct {
		Name  string      `json:"name"`
		Price json.Number `json:"price"`
	} `json:"items"`
	Count int `json:"count"`
}

// Fetch iterates the paged endpoint for one group until the reported total
// is exhausted.
func (s *biggieSource) Fetch(group string) ([]preciossuperpy.Record, error) {
	categoryURL := fmt.Sprintf("%s/articles?classificationName=%s", s.base, url.QueryEscape(group))

	var records []preciossuperpy.Record
	for skip := 0; ; skip += biggiePageSize {
		page, err := s.page(group, skip)
		if err != nil {
			return nil, err
		}

		for _, item := range page.Items {
			name := strings.ToUpper(strings.TrimSpace(item.Name))
			if name == "" || s.classifier.Excluded(name) {
				continue
			}
			price := ParsePrice(item.Price.String())

			record, ok := makeRecord("biggie", categoryURL, name, price, s.classifier)
			if !ok {
				// Unclassified articles stay under the requested group
				// instead of being dropped.
				record = newRecord("biggie", categoryURL, name, price)
				record.Group = group
			}
			records = append(records, record)
		}

		if skip+biggiePageSize >= page.Count || len(page.Items) == 0 {
			break
		}
	}
	return records, nil
}

func (s *biggieSource) page(group string, skip int) (biggiePage, error) {
	u := fmt.Sprintf("%s/articles?take=%d&skip=%d&classificationName=%s",
		s.base, biggiePageSize, skip, url.QueryEscape(group))

	resp, err := s.client.Get(u)
	if err != nil {
		return biggiePage{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return biggiePage{}, fmt.Errorf("%s: unexpected status %d", u, resp.StatusCode)
	}

	var page biggiePage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return biggiePage{}, err
	}
	return page, nil
}
