package store

import (
	"github.com/preciossuperpy/preciossuperpy"
)

// TableStore is the persisted tabular backend. Read returns the full current
// row set of a table (empty when the table does not exist yet); Write
// replaces the whole table, there is no partial update.
type TableStore interface {
	Read(name string) (preciossuperpy.Table, error)
	Write(name string, table preciossuperpy.Table) error
}
