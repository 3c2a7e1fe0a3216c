package quantity

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// DefaultPrecision is the number of significant digits used when formatting.
const DefaultPrecision = 14

// Formatter renders numbers with a fixed number of significant digits.
// Values whose decimal exponent lies in [-7, 15) are written in plain
// notation; others use exponent notation.
type Formatter struct {
	Precision int
}

// Number renders v.
func (f Formatter) Number(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	precision := f.Precision
	if precision <= 0 {
		precision = DefaultPrecision
	}

	rounded := strconv.FormatFloat(v, 'g', precision, 64)
	exp := math.Floor(math.Log10(math.Abs(v)))
	if exp < -7 || exp >= 15 {
		return rounded
	}

	d, err := decimal.NewFromString(rounded)
	if err != nil {
		return rounded
	}
	return d.String()
}

// Format renders "<number> <unit>".
func (f Formatter) Format(v float64, unit string) string {
	if unit == "" {
		return f.Number(v)
	}
	return f.Number(v) + " " + unit
}
