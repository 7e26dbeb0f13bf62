package preciossuperpy

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnitKind is the canonical unit a product is sold in: mass, volume or count.
type UnitKind string

const (
	UnitKilogram UnitKind = "kg"
	UnitLiter    UnitKind = "l"
	UnitCount    UnitKind = "u"
	UnitNone     UnitKind = ""
)

// Record is one observed product offer, as produced by a source adapter and
// enriched by the unit parser and the classifier.
type Record struct {
	Store       string
	CategoryURL string
	Name        string
	Price       decimal.Decimal

	Group    string
	Subgroup string

	CapturedAt time.Time

	RawUnit      string
	UnitKind     UnitKind
	Quantity     decimal.Decimal
	PricePerUnit decimal.NullDecimal
}

// TimeLayout is the format used for the FechaConsulta column.
const TimeLayout = "2006-01-02 15:04:05"

// Columns is the canonical column order of the published table.
var Columns = []string{
	"ID",
	"Supermercado",
	"Producto",
	"Precio",
	"Unidad",
	"Grupo",
	"Subgrupo",
	"FechaConsulta",
	"unidad_corregido",
	"etiquetaunidad",
	"cantidad_unidades",
	"precio_unidad",
	"CategoríaURL",
}

// Row returns the record as cells for Columns[1:]. The ID column is not
// part of a record: it is assigned by Consolidate.
func (r Record) Row() []string {
	price := ""
	if !r.Price.IsZero() {
		price = r.Price.String()
	}

	quantity := ""
	if r.UnitKind != UnitNone {
		quantity = r.Quantity.String()
	}

	ppu := ""
	if r.PricePerUnit.Valid {
		ppu = r.PricePerUnit.Decimal.String()
	}

	return []string{
		r.Store,
		r.Name,
		price,
		r.RawUnit,
		r.Group,
		r.Subgroup,
		r.CapturedAt.Format(TimeLayout),
		string(r.UnitKind),
		string(r.UnitKind),
		quantity,
		ppu,
		r.CategoryURL,
	}
}

// NewTable builds a table from records, in the canonical column order.
func NewTable(records []Record) Table {
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = r.Row()
	}
	return Table{Columns: Columns[1:], Rows: rows}
}
