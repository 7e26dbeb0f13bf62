package preciossuperpy

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// ParsedUnit is the outcome of reading a quantity out of a product name.
// Kind is UnitNone when the name carries no recognizable unit; that is a
// regular outcome, not an error.
type ParsedUnit struct {
	Raw      string
	Kind     UnitKind
	Quantity decimal.Decimal
}

var (
	unitRegex = regexp.MustCompile(
		`(?:(\d+)\s*x\s*)?(\d+(?:[.,]\d+)?)\s*(kilos|kilo|kg|gr|g|litros|litro|lt|l|ml|cc|cm3|unidades|unidad|und|uds|u)\b`)

	thousand = decimal.NewFromInt(1000)
)

// ParseUnits extracts a canonical (kind, quantity) pair from a free-text
// product name. Grams and milliliters are converted to kilograms and liters;
// an optional "N x" prefix multiplies the quantity. Quantities are rounded to
// 6 fractional digits.
func ParseUnits(text string) ParsedUnit {
	clean := Normalize(text)

	m := unitRegex.FindStringSubmatch(clean)
	if m == nil {
		return ParsedUnit{Kind: UnitNone, Quantity: decimal.Zero}
	}

	value, err := decimal.NewFromString(strings.Replace(m[2], ",", ".", 1))
	if err != nil {
		return ParsedUnit{Kind: UnitNone, Quantity: decimal.Zero}
	}

	var kind UnitKind
	switch m[3] {
	case "kg", "kilo", "kilos":
		kind = UnitKilogram
	case "g", "gr":
		kind = UnitKilogram
		value = value.Div(thousand)
	case "l", "lt", "litro", "litros":
		kind = UnitLiter
	case "ml", "cc", "cm3":
		kind = UnitLiter
		value = value.Div(thousand)
	default:
		kind = UnitCount
		if value.IsZero() {
			value = decimal.NewFromInt(1)
		}
	}

	if m[1] != "" {
		multiplier, err := decimal.NewFromString(m[1])
		if err == nil {
			value = value.Mul(multiplier)
		}
	}

	return ParsedUnit{Raw: m[0], Kind: kind, Quantity: value.Round(6)}
}

// PricePerUnit divides price by quantity. The result is absent when the
// quantity is not positive or there is no price, never a division fault.
func PricePerUnit(price, quantity decimal.Decimal) decimal.NullDecimal {
	if !quantity.IsPositive() || !price.IsPositive() {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: price.Div(quantity), Valid: true}
}
