package preciossuperpy

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// KeyColumns is the business key of the historical table: no two rows may
// share it after consolidation.
var KeyColumns = []string{"Supermercado", "CategoríaURL", "Producto", "FechaConsulta"}

var roundColumns = map[string]int32{
	"Precio":            2,
	"cantidad_unidades": 3,
	"precio_unidad":     3,
}

var captureLayouts = []string{
	TimeLayout,
	time.RFC3339,
	"2006-01-02",
}

// Consolidate merges newly fetched rows into the historical table: it unions
// the column sets, orders rows by capture timestamp, deduplicates on the
// business key keeping the first occurrence, reassigns the dense 1-based ID
// column and rounds the numeric columns.
//
// IDs are a row number, not a durable key: they are rebuilt on every run.
// Rows whose FechaConsulta does not parse sort after every parseable row, in
// their original relative order.
func Consolidate(history, records Table) Table {
	columns := UnionColumns(history.Columns, records.Columns)
	columns = dropColumn(columns, "ID")

	merged := history.Widen(columns)
	widened := records.Widen(columns)
	merged.Rows = append(merged.Rows, widened.Rows...)

	sortByCaptureTime(merged)
	merged = dedup(merged)

	for name, places := range roundColumns {
		roundColumn(merged, name, places)
	}

	merged = merged.Widen(orderColumns(columns))
	return withIDs(merged)
}

func dropColumn(columns []string, name string) []string {
	kept := columns[:0]
	for _, c := range columns {
		if c != name {
			kept = append(kept, c)
		}
	}
	return kept
}

func parseCaptureTime(cell string) (time.Time, bool) {
	cell = strings.TrimSpace(cell)
	for _, layout := range captureLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func sortByCaptureTime(t Table) {
	idx := t.Index("FechaConsulta")
	if idx < 0 {
		return
	}

	type stamp struct {
		t  time.Time
		ok bool
	}
	stamps := make([]stamp, len(t.Rows))
	for i, row := range t.Rows {
		ts, ok := parseCaptureTime(row[idx])
		stamps[i] = stamp{t: ts, ok: ok}
	}

	order := make([]int, len(t.Rows))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		sa, sb := stamps[order[a]], stamps[order[b]]
		if sa.ok != sb.ok {
			return sa.ok
		}
		if !sa.ok {
			return false
		}
		return sa.t.Before(sb.t)
	})

	rows := make([][]string, len(t.Rows))
	for i, j := range order {
		rows[i] = t.Rows[j]
	}
	copy(t.Rows, rows)
}

// dedup keeps the first row per business key. When the table does not carry
// the full key column set it falls back to deduplicating identical rows.
func dedup(t Table) Table {
	idx := make([]int, 0, len(KeyColumns))
	for _, c := range KeyColumns {
		i := t.Index(c)
		if i < 0 {
			idx = nil
			break
		}
		idx = append(idx, i)
	}

	dateIdx := t.Index("FechaConsulta")
	key := func(row []string) string {
		if idx == nil {
			return strings.Join(row, "\x1f")
		}
		parts := make([]string, len(idx))
		for n, i := range idx {
			cell := row[i]
			if i == dateIdx {
				if ts, ok := parseCaptureTime(cell); ok {
					cell = ts.Format("2006-01-02")
				}
			}
			parts[n] = cell
		}
		return strings.Join(parts, "\x1f")
	}

	seen := make(map[string]bool, len(t.Rows))
	kept := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		k := key(row)
		if seen[k] {
			continue
		}
		seen[k] = true
		kept = append(kept, row)
	}
	return Table{Columns: t.Columns, Rows: kept}
}

// roundColumn coerces a numeric column: parseable values are rounded,
// anything else becomes absent rather than zero.
func roundColumn(t Table, name string, places int32) {
	idx := t.Index(name)
	if idx < 0 {
		return
	}
	for _, row := range t.Rows {
		cell := strings.TrimSpace(row[idx])
		if cell == "" {
			continue
		}
		d, err := decimal.NewFromString(strings.Replace(cell, ",", ".", 1))
		if err != nil {
			row[idx] = ""
			continue
		}
		row[idx] = d.Round(places).String()
	}
}

// orderColumns puts the canonical columns first, in their published order,
// followed by any extra columns in first-seen order.
func orderColumns(columns []string) []string {
	present := make(map[string]bool, len(columns))
	for _, c := range columns {
		present[c] = true
	}

	canonical := make(map[string]bool, len(Columns))
	ordered := make([]string, 0, len(columns))
	for _, c := range Columns[1:] {
		canonical[c] = true
		if present[c] {
			ordered = append(ordered, c)
		}
	}
	for _, c := range columns {
		if !canonical[c] {
			ordered = append(ordered, c)
		}
	}
	return ordered
}

func withIDs(t Table) Table {
	columns := append([]string{"ID"}, t.Columns...)
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = append([]string{strconv.Itoa(i + 1)}, row...)
	}
	return Table{Columns: columns, Rows: rows}
}
