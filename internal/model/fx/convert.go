package fx

import "math"

// Table maps a currency code to its fixed planning rate into the
// reporting currency. Rates are set once per planning cycle and are
// not time-varying.
type Table map[string]float64

// Converter converts local-currency planning figures into the
// reporting currency.
type Converter struct {
	table Table
}

// NewConverter constructs a converter over a rate table.
func NewConverter(table Table) *Converter {
	return &Converter{table: table}
}

// Rate returns the planning rate for a currency code. Unknown or
// non-positive rates resolve to 1 so that an unrecognised code yields
// the unconverted figure instead of a failure.
func (c *Converter) Rate(code string) float64 {
	if c == nil {
		return 1
	}
	rate, ok := c.table[code]
	if !ok || rate <= 0 {
		return 1
	}
	return rate
}

// Convert converts amount from the given currency into the reporting
// currency, rounded to the nearest whole unit. Rounding happens here,
// at the point of computation, so every consumer reads the same figure.
func (c *Converter) Convert(amount float64, code string) float64 {
	return math.Round(amount * c.Rate(code))
}
