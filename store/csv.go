package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/preciossuperpy/preciossuperpy"
)

// CSVStore keeps one CSV file per table in a directory. It is the offline
// counterpart of the spreadsheet backend, and what the tests run against.
type CSVStore struct {
	Dir string
}

func (s *CSVStore) path(name string) string {
	return filepath.Join(s.Dir, name+".csv")
}

func (s *CSVStore) Read(name string) (preciossuperpy.Table, error) {
	f, err := os.Open(s.path(name))
	if os.IsNotExist(err) {
		return preciossuperpy.Table{}, nil
	}
	if err != nil {
		return preciossuperpy.Table{}, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return preciossuperpy.Table{}, fmt.Errorf("reading %s: %v", s.path(name), err)
	}
	if len(rows) == 0 {
		return preciossuperpy.Table{}, nil
	}

	table := preciossuperpy.Table{Columns: rows[0]}
	for _, row := range rows[1:] {
		cells := make([]string, len(table.Columns))
		copy(cells, row)
		table.Rows = append(table.Rows, cells)
	}
	return table, nil
}

// Write replaces the table file. The new content is written to a temporary
// file first so a failed run cannot leave a half-written table behind.
func (s *CSVStore) Write(name string, table preciossuperpy.Table) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.Dir, name+"-*.csv")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	writer := csv.NewWriter(tmp)
	if err := writer.Write(table.Columns); err != nil {
		tmp.Close()
		return err
	}
	if err := writer.WriteAll(table.Rows); err != nil {
		tmp.Close()
		return err
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), s.path(name))
}
