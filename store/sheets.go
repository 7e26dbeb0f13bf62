package store

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/preciossuperpy/preciossuperpy"
)

// SheetsStore persists tables as worksheets of one Google spreadsheet,
// authenticated with a service account.
type SheetsStore struct {
	service       *sheets.Service
	spreadsheetID string
}

func NewSheetsStore(ctx context.Context, credentialsFile, spreadsheetID string) (*SheetsStore, error) {
	service, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("could not build sheets service: %v", err)
	}

	return &SheetsStore{
		service:       service,
		spreadsheetID: spreadsheetID,
	}, nil
}

func (s *SheetsStore) Read(name string) (preciossuperpy.Table, error) {
	resp, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, name).Do()
	if err != nil {
		// A worksheet that does not exist yet reads as an empty table.
		if isMissingRange(err) {
			return preciossuperpy.Table{}, nil
		}
		return preciossuperpy.Table{}, err
	}
	if len(resp.Values) == 0 {
		return preciossuperpy.Table{}, nil
	}

	header := cellsToStrings(resp.Values[0])
	table := preciossuperpy.Table{Columns: header}
	for _, row := range resp.Values[1:] {
		cells := make([]string, len(header))
		copy(cells, cellsToStrings(row))
		table.Rows = append(table.Rows, cells)
	}
	return table, nil
}

// isMissingRange recognizes the "Unable to parse range" error the API
// returns for a worksheet that does not exist. Other 400s stay errors.
func isMissingRange(err error) bool {
	gErr, ok := err.(*googleapi.Error)
	return ok && gErr.Code == http.StatusBadRequest &&
		strings.Contains(gErr.Message, "Unable to parse range")
}

// Write clears the worksheet and rewrites it whole, creating it first when
// it does not exist.
func (s *SheetsStore) Write(name string, table preciossuperpy.Table) error {
	if err := s.ensureWorksheet(name); err != nil {
		return err
	}

	if _, err := s.service.Spreadsheets.Values.
		Clear(s.spreadsheetID, name, &sheets.ClearValuesRequest{}).Do(); err != nil {
		return fmt.Errorf("could not clear worksheet %s: %v", name, err)
	}

	values := make([][]interface{}, 0, len(table.Rows)+1)
	values = append(values, stringsToCells(table.Columns))
	for _, row := range table.Rows {
		values = append(values, stringsToCells(row))
	}

	_, err := s.service.Spreadsheets.Values.
		Update(s.spreadsheetID, name+"!A1", &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Do()
	if err != nil {
		return fmt.Errorf("could not write worksheet %s: %v", name, err)
	}
	return nil
}

func (s *SheetsStore) ensureWorksheet(name string) error {
	spreadsheet, err := s.service.Spreadsheets.Get(s.spreadsheetID).Do()
	if err != nil {
		return err
	}
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == name {
			return nil
		}
	}

	_, err = s.service.Spreadsheets.BatchUpdate(s.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: name},
			},
		}},
	}).Do()
	return err
}

func cellsToStrings(cells []interface{}) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = fmt.Sprint(c)
	}
	return out
}

func stringsToCells(cells []string) []interface{} {
	out := make([]interface{}, len(cells))
	for i, c := range cells {
		out[i] = c
	}
	return out
}
