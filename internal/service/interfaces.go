// Package service defines the capability interfaces the engine consumes.
package service

import (
	"github.com/Veraticus/dimflow/internal/model"
)

// UnitRegistry enumerates known unit symbols and classifies them.
type UnitRegistry interface {
	// Classify returns the dimension key of a symbol, or false when the symbol is unknown.
	Classify(symbol string) (model.BaseDimension, bool)
	// UnitsInDimension returns every symbol registered under dim.
	UnitsInDimension(dim model.BaseDimension) []string
	// Symbols returns every registered symbol.
	Symbols() []string
}

// Converter converts values between unit expressions.
type Converter interface {
	// Convert expresses value of unit from in unit to, applying temperature
	// offsets when both sides are single temperature units.
	Convert(value float64, from, to string) (float64, error)
	// Factor returns the multiplicative factor taking one from to to, ignoring offsets.
	Factor(from, to string) (float64, error)
	// BaseForm renders a unit expression in SI base units, factors joined by "*".
	BaseForm(unitExpr string) (string, error)
}

// Evaluator is the quantity arithmetic evaluator the engine is built on.
type Evaluator interface {
	UnitRegistry
	Converter

	// Evaluate parses a free-text expression into a Quantity.
	Evaluate(expr string) (model.Quantity, error)
	// Format renders "<number> <unit>".
	Format(value float64, unit string) string
}
