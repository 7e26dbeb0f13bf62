package sources

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/preciossuperpy/preciossuperpy"
)

func TestBiggieSource_FetchPaged(t *testing.T) {
	// 150 articles: two pages of 100 and 50.
	articles := make([]map[string]interface{}, 150)
	for i := range articles {
		articles[i] = map[string]interface{}{
			"name":  "YERBA MATE " + strconv.Itoa(i) + " 1KG",
			"price": 12500,
		}
	}
	// One article the classifier cannot place: it must keep the requested
	// group. And one excluded article that must be dropped.
	articles[0]["name"] = "ARTICULO MISTERIOSO"
	articles[1]["name"] = "DETERGENTE CONCENTRADO 500 ML"

	var requests []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.URL.RawQuery)

		skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
		take, _ := strconv.Atoi(r.URL.Query().Get("take"))
		end := skip + take
		if end > len(articles) {
			end = len(articles)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"items": articles[skip:end],
			"count": len(articles),
		})
	}))
	defer ts.Close()

	src := &biggieSource{
		base:       ts.URL,
		groups:     []string{"almacen"},
		client:     ts.Client(),
		classifier: preciossuperpy.NewClassifier(preciossuperpy.DefaultRuleset()),
	}

	records, err := src.Fetch("almacen")
	if err != nil {
		t.Fatal("error fetching group:", err)
	}

	if len(requests) != 2 {
		t.Fatalf("incorrect number of page requests: expected 2 got %d: %v", len(requests), requests)
	}
	// 150 articles minus the excluded one.
	if len(records) != 149 {
		t.Fatalf("incorrect number of records: expected 149 got %d", len(records))
	}

	if records[0].Name != "ARTICULO MISTERIOSO" {
		t.Fatalf("unexpected first record: %q", records[0].Name)
	}
	if records[0].Group != "almacen" {
		t.Errorf("unclassified article should keep the requested group, got %q", records[0].Group)
	}

	yerba := records[1]
	if yerba.Group != "Almacén" {
		t.Errorf("incorrect group: %q", yerba.Group)
	}
	if yerba.Price.String() != "12500" {
		t.Errorf("incorrect price: %s", yerba.Price)
	}
	if yerba.UnitKind != preciossuperpy.UnitKilogram {
		t.Errorf("incorrect unit kind: %q", yerba.UnitKind)
	}
}

func TestRegistry(t *testing.T) {
	opts := Options{Classifier: preciossuperpy.NewClassifier(preciossuperpy.DefaultRuleset())}

	for _, name := range []string{"superseis", "stock", "biggie"} {
		src, ok := New(name, opts)
		if !ok {
			t.Fatalf("source %q not registered", name)
		}
		if src.Name() != name {
			t.Errorf("incorrect name: expected %q got %q", name, src.Name())
		}
	}

	if _, ok := New("unknown", opts); ok {
		t.Error("expected no source for unknown name")
	}
}
