package model

import "fmt"

// UnitDefinition describes one registered unit symbol.
// A value v in this unit equals v*Factor + Offset in the coherent SI unit
// of its Signature.
type UnitDefinition struct {
	Symbol     string
	Name       string
	Dimension  BaseDimension
	Signature  Signature
	Factor     float64
	Offset     float64
	Prefixable bool
}

// Validate ensures the definition can be registered.
func (d *UnitDefinition) Validate() error {
	if d.Symbol == "" {
		return fmt.Errorf("unit symbol is required")
	}
	if d.Dimension == "" {
		return fmt.Errorf("unit %q: dimension is required", d.Symbol)
	}
	if d.Factor <= 0 {
		return fmt.Errorf("unit %q: factor must be positive, got %v", d.Symbol, d.Factor)
	}
	return nil
}
