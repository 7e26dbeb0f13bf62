package store

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

func newTestSheetsStore(t *testing.T, handler http.HandlerFunc) (*SheetsStore, func()) {
	ts := httptest.NewServer(handler)

	service, err := sheets.NewService(context.Background(),
		option.WithoutAuthentication(),
		option.WithEndpoint(ts.URL),
	)
	if err != nil {
		ts.Close()
		t.Fatal("error creating service:", err)
	}

	return &SheetsStore{service: service, spreadsheetID: "spreadsheet"}, ts.Close
}

func badRequest(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	w.Write([]byte(`{"error": {"code": 400, "message": "` + message + `", "status": "INVALID_ARGUMENT"}}`))
}

func TestSheetsStore_ReadMissingWorksheet(t *testing.T) {
	s, clean := newTestSheetsStore(t, func(w http.ResponseWriter, r *http.Request) {
		badRequest(w, "Unable to parse range: precios_supermercados")
	})
	defer clean()

	table, err := s.Read("precios_supermercados")
	if err != nil {
		t.Fatal("error reading:", err)
	}
	if !table.Empty() {
		t.Errorf("expected an empty table, got %d columns", len(table.Columns))
	}
}

func TestSheetsStore_ReadOtherBadRequestsAreErrors(t *testing.T) {
	s, clean := newTestSheetsStore(t, func(w http.ResponseWriter, r *http.Request) {
		badRequest(w, "Invalid value at 'value_render_option'")
	})
	defer clean()

	if _, err := s.Read("precios_supermercados"); err == nil {
		t.Error("expected an error, got none")
	}
}
