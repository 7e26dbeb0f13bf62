package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/preciossuperpy/preciossuperpy"
	"github.com/preciossuperpy/preciossuperpy/log"
	"github.com/preciossuperpy/preciossuperpy/store"
)

// File is one candidate CSV in the ingestion folder.
type File struct {
	ID           string
	Name         string
	MD5          string
	ModifiedTime string
	Size         string
}

// Lister is the folder boundary: list the candidate files, download one.
type Lister interface {
	List() ([]File, error)
	Download(id string) ([]byte, error)
}

const (
	DefaultDataTable = "precios_supermercados"
	DefaultLogTable  = "ingestas_archivos"
)

// logColumns is the schema of the ingestion log table. A file whose id
// appears there is never imported twice.
var logColumns = []string{
	"file_id", "file_name", "md5", "modified_time", "size",
	"rows_imported", "imported_at",
}

// Ingestor imports the CSVs of a folder into the historical table,
// incrementally: only files absent from the log table are ingested.
type Ingestor struct {
	Files Lister
	Store store.TableStore
	Log   log.Logger

	DataTable string
	LogTable  string
}

func (in *Ingestor) dataTable() string {
	if in.DataTable != "" {
		return in.DataTable
	}
	return DefaultDataTable
}

func (in *Ingestor) logTable() string {
	if in.LogTable != "" {
		return in.LogTable
	}
	return DefaultLogTable
}

// Run ingests the new files and returns how many were imported. A file that
// fails to download or parse is skipped and logged; store and folder-listing
// failures are fatal.
func (in *Ingestor) Run() (int, error) {
	history, err := in.Store.Read(in.dataTable())
	if err != nil {
		return 0, fmt.Errorf("could not read %s: %v", in.dataTable(), err)
	}
	ingested, err := in.Store.Read(in.logTable())
	if err != nil {
		return 0, fmt.Errorf("could not read %s: %v", in.logTable(), err)
	}

	done := make(map[string]bool)
	if idx := ingested.Index("file_id"); idx >= 0 {
		for _, row := range ingested.Rows {
			if row[idx] != "" {
				done[row[idx]] = true
			}
		}
	}

	files, err := in.Files.List()
	if err != nil {
		return 0, fmt.Errorf("could not list folder: %v", err)
	}
	if len(files) == 0 {
		in.Log.Print("no CSV files in the folder")
		return 0, nil
	}

	var (
		combined preciossuperpy.Table
		logRows  []map[string]string
		imported int
	)
	for _, f := range files {
		if done[f.ID] {
			continue
		}

		data, err := in.Files.Download(f.ID)
		if err != nil {
			in.Log.Errorf("skipping %s: %v", f.Name, err)
			continue
		}
		table, err := parseCSV(data)
		if err != nil {
			in.Log.Errorf("skipping %s: %v", f.Name, err)
			continue
		}
		table = stampOrigin(table, f)

		combined = concat(combined, table)
		imported++
		logRows = append(logRows, map[string]string{
			"file_id":       f.ID,
			"file_name":     f.Name,
			"md5":           f.MD5,
			"modified_time": f.ModifiedTime,
			"size":          f.Size,
			"rows_imported": strconv.Itoa(len(table.Rows)),
			"imported_at":   time.Now().UTC().Format(time.RFC3339),
		})
	}

	if imported == 0 {
		in.Log.Print("no new files to import")
		return 0, nil
	}

	merged := preciossuperpy.Consolidate(history, combined)
	if err := in.Store.Write(in.dataTable(), merged); err != nil {
		return 0, fmt.Errorf("could not write %s: %v", in.dataTable(), err)
	}

	if err := in.Store.Write(in.logTable(), appendLogRows(ingested, logRows)); err != nil {
		return 0, fmt.Errorf("could not write %s: %v", in.logTable(), err)
	}

	in.Log.Printf("imported %d files, %d rows total in %s", imported, len(merged.Rows), in.dataTable())
	return imported, nil
}

// parseCSV reads a downloaded file, accepting comma or semicolon delimited
// content with a first header row.
func parseCSV(data []byte) (preciossuperpy.Table, error) {
	rows, err := readAll(data, ',')
	if err != nil || (len(rows) > 0 && len(rows[0]) == 1 && strings.Contains(rows[0][0], ";")) {
		rows, err = readAll(data, ';')
	}
	if err != nil {
		return preciossuperpy.Table{}, err
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

func readAll(data []byte, comma rune) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

// stampOrigin tags every row with the file it came from.
func stampOrigin(t preciossuperpy.Table, f File) preciossuperpy.Table {
	columns := preciossuperpy.UnionColumns(t.Columns, []string{"source_file_id", "source_file_name"})
	t = t.Widen(columns)
	idIdx, nameIdx := t.Index("source_file_id"), t.Index("source_file_name")
	for _, row := range t.Rows {
		row[idIdx] = f.ID
		row[nameIdx] = f.Name
	}
	return t
}

func concat(a, b preciossuperpy.Table) preciossuperpy.Table {
	if len(a.Columns) == 0 {
		return b
	}
	columns := preciossuperpy.UnionColumns(a.Columns, b.Columns)
	a = a.Widen(columns)
	b = b.Widen(columns)
	a.Rows = append(a.Rows, b.Rows...)
	return a
}

// appendLogRows widens the log table to the log schema and appends the new
// entries. The log is append-only: no dedup, no identifiers.
func appendLogRows(logTable preciossuperpy.Table, rows []map[string]string) preciossuperpy.Table {
	columns := preciossuperpy.UnionColumns(logTable.Columns, logColumns)
	logTable = logTable.Widen(columns)

	for _, entry := range rows {
		cells := make([]string, len(columns))
		for i, c := range columns {
			cells[i] = entry[c]
		}
		logTable.Rows = append(logTable.Rows, cells)
	}
	return logTable
}
