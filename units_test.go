package preciossuperpy

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseUnits(t *testing.T) {
	tts := []struct {
		Name     string
		Text     string
		Kind     UnitKind
		Quantity string
	}{
		{
			Name:     "liter",
			Text:     "LECHE ENTERA 1L",
			Kind:     UnitLiter,
			Quantity: "1",
		},
		{
			Name:     "kilogram",
			Text:     "ARROZ 5KG",
			Kind:     UnitKilogram,
			Quantity: "5",
		},
		{
			Name:     "grams convert to kilograms",
			Text:     "JAMON COCIDO 200 GR",
			Kind:     UnitKilogram,
			Quantity: "0.2",
		},
		{
			Name:     "multiplier with milliliters",
			Text:     "PACK 6 x 500 ML",
			Kind:     UnitLiter,
			Quantity: "3",
		},
		{
			Name:     "count",
			Text:     "HUEVOS 12 U",
			Kind:     UnitCount,
			Quantity: "12",
		},
		{
			Name:     "count spelled out",
			Text:     "PAN DE MESA 8 UNIDADES",
			Kind:     UnitCount,
			Quantity: "8",
		},
		{
			Name:     "multiplier with count",
			Text:     "HUEVOS CODORNIZ 2 X 12 UND",
			Kind:     UnitCount,
			Quantity: "24",
		},
		{
			Name:     "decimal comma",
			Text:     "GASEOSA 2,25 LT",
			Kind:     UnitLiter,
			Quantity: "2.25",
		},
		{
			Name:     "accented unit word",
			Text:     "QUESO PARAGUAY 1 KILO",
			Kind:     UnitKilogram,
			Quantity: "1",
		},
		{
			Name:     "no unit",
			Text:     "PRODUCTO SIN UNIDAD",
			Kind:     UnitNone,
			Quantity: "0",
		},
	}

	for _, tt := range tts {
		parsed := ParseUnits(tt.Text)
		if parsed.Kind != tt.Kind {
			t.Errorf("%s: incorrect kind: expected %q got %q", tt.Name, tt.Kind, parsed.Kind)
		}
		if parsed.Quantity.String() != tt.Quantity {
			t.Errorf("%s: incorrect quantity: expected %s got %s", tt.Name, tt.Quantity, parsed.Quantity)
		}
		if tt.Kind != UnitNone && parsed.Raw == "" {
			t.Errorf("%s: expected a raw match", tt.Name)
		}
	}
}

func TestPricePerUnit(t *testing.T) {
	ppu := PricePerUnit(decimal.New(10000, 0), decimal.New(2, 0))
	if !ppu.Valid {
		t.Fatal("expected a valid price per unit")
	}
	if ppu.Decimal.String() != "5000" {
		t.Errorf("incorrect price per unit: expected 5000 got %s", ppu.Decimal)
	}

	if ppu := PricePerUnit(decimal.New(10000, 0), decimal.Zero); ppu.Valid {
		t.Errorf("expected absent price per unit for zero quantity, got %s", ppu.Decimal)
	}

	if ppu := PricePerUnit(decimal.Zero, decimal.New(2, 0)); ppu.Valid {
		t.Errorf("expected absent price per unit for absent price, got %s", ppu.Decimal)
	}
}
