package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Veraticus/dimflow/internal/common"
)

// UnitComponent is one factor of a compound unit: a unit symbol, the dimension
// it belongs to, and the exponent it is raised to.
type UnitComponent struct {
	Unit      string        `json:"unit" yaml:"unit"`
	Dimension BaseDimension `json:"dimension" yaml:"dimension"`
	Exponent  float64       `json:"exponent" yaml:"exponent"`
}

// Quantity is a numeric magnitude tagged with a compound unit.
// Quantities are immutable once produced by an evaluator.
type Quantity struct {
	components []UnitComponent
	magnitude  float64
}

// NewQuantity validates and builds a Quantity.
func NewQuantity(magnitude float64, components []UnitComponent) (Quantity, error) {
	if math.IsNaN(magnitude) || math.IsInf(magnitude, 0) {
		return Quantity{}, fmt.Errorf("magnitude must be finite, got %v", magnitude)
	}
	if len(components) == 0 {
		return Quantity{}, &common.DimensionlessError{Value: magnitude}
	}
	for _, c := range components {
		if c.Unit == "" {
			return Quantity{}, fmt.Errorf("unit component symbol is required")
		}
	}

	cs := make([]UnitComponent, len(components))
	copy(cs, components)
	return Quantity{magnitude: magnitude, components: cs}, nil
}

// Magnitude returns the numeric value.
func (q Quantity) Magnitude() float64 {
	return q.magnitude
}

// Components returns a copy of the unit components.
func (q Quantity) Components() []UnitComponent {
	cs := make([]UnitComponent, len(q.components))
	copy(cs, q.components)
	return cs
}

// IsZero reports whether q is the zero Quantity (no components).
func (q Quantity) IsZero() bool {
	return len(q.components) == 0
}

// UnitString renders the unit part, e.g. "N/m^2" or "kg*m^2/s^2".
func (q Quantity) UnitString() string {
	var num, den []string
	for _, c := range q.components {
		switch {
		case c.Exponent > 0:
			num = append(num, powString(c.Unit, c.Exponent))
		case c.Exponent < 0:
			den = append(den, powString(c.Unit, -c.Exponent))
		}
	}

	switch {
	case len(num) == 0 && len(den) == 0:
		return ""
	case len(den) == 0:
		return strings.Join(num, "*")
	case len(num) == 0:
		return "1/" + groupFactors(den)
	default:
		return strings.Join(num, "*") + "/" + groupFactors(den)
	}
}

// String renders the quantity as "<magnitude> <unit>".
func (q Quantity) String() string {
	return strconv.FormatFloat(q.magnitude, 'g', -1, 64) + " " + q.UnitString()
}

func groupFactors(fs []string) string {
	if len(fs) == 1 {
		return fs[0]
	}
	return "(" + strings.Join(fs, "*") + ")"
}

func powString(unit string, exp float64) string {
	if exp == 1 {
		return unit
	}
	return unit + "^" + FormatExponent(exp)
}

// FormatExponent renders an exponent without trailing zeros.
func FormatExponent(exp float64) string {
	return strconv.FormatFloat(exp, 'f', -1, 64)
}
