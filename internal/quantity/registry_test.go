package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/dimflow/internal/model"
)

func TestRegistry_Lookup(t *testing.T) {
	r := DefaultRegistry()

	tests := []struct {
		symbol string
		dim    model.BaseDimension
		factor float64
		found  bool
	}{
		{symbol: "cm", dim: model.DimensionLength, factor: 0.01, found: true},
		{symbol: "dam", dim: model.DimensionLength, factor: 10, found: true},
		{symbol: "µs", dim: model.DimensionTime, factor: 1e-6, found: true},
		{symbol: "us", dim: model.DimensionTime, factor: 1e-6, found: true},
		{symbol: "GW", dim: model.DimensionPower, factor: 1e9, found: true},
		{symbol: "kdegC", found: false},
		{symbol: "kft", found: false},
		{symbol: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			d, ok := r.Lookup(tt.symbol)
			require.Equal(t, tt.found, ok)
			if !tt.found {
				return
			}
			assert.Equal(t, tt.dim, d.Dimension)
			assert.InEpsilon(t, tt.factor, d.Factor, 1e-12)
			assert.Equal(t, tt.symbol, d.Symbol)
		})
	}
}

func TestRegistry_UnitsInDimension(t *testing.T) {
	r := DefaultRegistry()

	force := r.UnitsInDimension(model.DimensionForce)
	assert.Contains(t, force, "N")
	assert.Contains(t, force, "lbf")
	assert.NotContains(t, force, "J")
	assert.Empty(t, r.UnitsInDimension("NOT_A_DIMENSION"))

	// Returned slices are copies.
	force[0] = "mutated"
	assert.NotContains(t, r.UnitsInDimension(model.DimensionForce), "mutated")
}

func TestNewRegistry_RejectsInvalidDefinitions(t *testing.T) {
	_, err := NewRegistry([]model.UnitDefinition{
		{Symbol: "m", Dimension: model.DimensionLength, Factor: 1},
		{Symbol: "m", Dimension: model.DimensionLength, Factor: 1},
	})
	assert.ErrorContains(t, err, "duplicate")

	_, err = NewRegistry([]model.UnitDefinition{{Symbol: "x", Dimension: model.DimensionLength}})
	assert.ErrorContains(t, err, "factor")
}

func TestBuiltinDefinitions_AreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, d := range BuiltinDefinitions() {
		assert.False(t, seen[d.Symbol], "duplicate symbol %q", d.Symbol)
		seen[d.Symbol] = true
		assert.NotContains(t, d.Symbol, "1")
	}
	assert.Len(t, DefaultRegistry().Symbols(), len(seen))
}
