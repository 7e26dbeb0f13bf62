package preciossuperpy

// Table is a tabular snapshot: a header and string-typed cells, the shape the
// persisted store reads and writes.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Index returns the position of a column, or -1 when absent.
func (t Table) Index(column string) int {
	for i, c := range t.Columns {
		if c == column {
			return i
		}
	}
	return -1
}

// Empty reports whether the table has no rows.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// UnionColumns merges two column sets, keeping first-seen order.
func UnionColumns(a, b []string) []string {
	union := make([]string, 0, len(a)+len(b))
	seen := make(map[string]bool, len(a)+len(b))
	for _, cols := range [][]string{a, b} {
		for _, c := range cols {
			if seen[c] {
				continue
			}
			seen[c] = true
			union = append(union, c)
		}
	}
	return union
}

// Widen re-shapes the table onto the given column set. Columns the table does
// not have come out empty; columns not in the target set are dropped.
func (t Table) Widen(columns []string) Table {
	idx := make([]int, len(columns))
	for i, c := range columns {
		idx[i] = t.Index(c)
	}

	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		cells := make([]string, len(columns))
		for j, k := range idx {
			if k >= 0 && k < len(row) {
				cells[j] = row[k]
			}
		}
		rows[i] = cells
	}
	return Table{Columns: columns, Rows: rows}
}
