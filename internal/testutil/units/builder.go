// Package units provides a fluent builder for unit definitions used in tests.
//
// Example usage:
//
//	defs := units.NewBuilder(t).
//		WithBuiltins().
//		Like("furlong", "m", 201.168).
//		Build()
package units

import (
	"testing"

	"github.com/Veraticus/dimflow/internal/model"
	"github.com/Veraticus/dimflow/internal/quantity"
)

// Builder collects unit definitions for a test.
type Builder struct {
	t    *testing.T
	defs []model.UnitDefinition
}

// NewBuilder creates an empty builder.
func NewBuilder(t *testing.T) *Builder {
	t.Helper()
	return &Builder{t: t}
}

// WithBuiltins adds every built-in definition.
func (b *Builder) WithBuiltins() *Builder {
	b.defs = append(b.defs, quantity.BuiltinDefinitions()...)
	return b
}

// WithDefinition adds def as is.
func (b *Builder) WithDefinition(def model.UnitDefinition) *Builder {
	b.defs = append(b.defs, def)
	return b
}

// Like adds symbol as factor times the built-in unit base, sharing its
// dimension and signature.
func (b *Builder) Like(symbol, base string, factor float64) *Builder {
	b.t.Helper()

	ref, ok := quantity.DefaultRegistry().Lookup(base)
	if !ok {
		b.t.Fatalf("unknown base unit %q", base)
	}
	b.defs = append(b.defs, model.UnitDefinition{
		Symbol:    symbol,
		Name:      symbol,
		Dimension: ref.Dimension,
		Signature: ref.Signature,
		Factor:    ref.Factor * factor,
	})
	return b
}

// Build returns the collected definitions.
func (b *Builder) Build() []model.UnitDefinition {
	out := make([]model.UnitDefinition, len(b.defs))
	copy(out, b.defs)
	return out
}

// Registry builds a registry from the collected definitions, failing the test
// when they are invalid.
func (b *Builder) Registry() *quantity.Registry {
	b.t.Helper()

	r, err := quantity.NewRegistry(b.defs)
	if err != nil {
		b.t.Fatalf("failed to build registry: %v", err)
	}
	return r
}
