package engine

import (
	"sort"

	"github.com/Veraticus/dimflow/internal/model"
)

// Factor is one base-dimension factor of a decomposed unit component.
// Native is the coherent SI unit the factor is measured in before conversion;
// for undecomposed components it is the component's own unit.
type Factor struct {
	Dimension model.BaseDimension
	Native    string
	Exponent  float64
}

type factorSpec struct {
	dim        model.BaseDimension
	native     string
	multiplier float64
}

type compound struct {
	// coherent is the SI unit a component of this dimension is brought into
	// before its factors are converted.
	coherent string
	factors  []factorSpec
}

// compounds maps compound dimensions to their base factors:
// pressure = force/area, energy = mass*length^2/time^2, power = energy/time.
var compounds = map[model.BaseDimension]compound{
	model.DimensionPressure: {
		coherent: "Pa",
		factors: []factorSpec{
			{dim: model.DimensionForce, native: "N", multiplier: 1},
			{dim: model.DimensionLength, native: "m", multiplier: -2},
		},
	},
	model.DimensionEnergy: {
		coherent: "J",
		factors: []factorSpec{
			{dim: model.DimensionMass, native: "kg", multiplier: 1},
			{dim: model.DimensionLength, native: "m", multiplier: 2},
			{dim: model.DimensionTime, native: "s", multiplier: -2},
		},
	},
	model.DimensionPower: {
		coherent: "W",
		factors: []factorSpec{
			{dim: model.DimensionMass, native: "kg", multiplier: 1},
			{dim: model.DimensionLength, native: "m", multiplier: 2},
			{dim: model.DimensionTime, native: "s", multiplier: -3},
		},
	},
	model.DimensionArea: {
		coherent: "m^2",
		factors:  []factorSpec{{dim: model.DimensionLength, native: "m", multiplier: 2}},
	},
	model.DimensionSurface: {
		coherent: "m^2",
		factors:  []factorSpec{{dim: model.DimensionLength, native: "m", multiplier: 2}},
	},
	model.DimensionVolume: {
		coherent: "m^3",
		factors:  []factorSpec{{dim: model.DimensionLength, native: "m", multiplier: 3}},
	},
}

// IsCompound reports whether dim decomposes into other dimensions.
func IsCompound(dim model.BaseDimension) bool {
	_, ok := compounds[dim]
	return ok
}

// Decompose maps a unit component to its ordered base-dimension factors, each
// exponent being the table multiplier times the component's exponent.
func Decompose(c model.UnitComponent) []Factor {
	spec, ok := compounds[c.Dimension]
	if !ok {
		return []Factor{{Dimension: c.Dimension, Native: c.Unit, Exponent: c.Exponent}}
	}

	out := make([]Factor, len(spec.factors))
	for i, f := range spec.factors {
		out[i] = Factor{Dimension: f.dim, Native: f.native, Exponent: f.multiplier * c.Exponent}
	}
	return out
}

// RequiredDimensions returns the sorted base dimensions a Selection must cover
// to recompose q.
func RequiredDimensions(q model.Quantity) []model.BaseDimension {
	seen := make(map[model.BaseDimension]bool)
	var dims []model.BaseDimension
	for _, c := range q.Components() {
		for _, f := range Decompose(c) {
			if f.Dimension == "" || seen[f.Dimension] {
				continue
			}
			seen[f.Dimension] = true
			dims = append(dims, f.Dimension)
		}
	}
	sort.Slice(dims, func(i, j int) bool { return dims[i] < dims[j] })
	return dims
}

// ExponentOf sums the effective exponents of dim across q's decomposition.
func ExponentOf(q model.Quantity, dim model.BaseDimension) float64 {
	var total float64
	for _, c := range q.Components() {
		for _, f := range Decompose(c) {
			if f.Dimension == dim {
				total += f.Exponent
			}
		}
	}
	return total
}

// Select records unit as the target for dim in sel, taking the exponent the
// dimension carries in q. It returns sel for chaining.
func Select(q model.Quantity, sel model.Selection, dim model.BaseDimension, unit string) model.Selection {
	if sel == nil {
		sel = make(model.Selection)
	}
	sel.Set(model.SelectedUnit{Dimension: dim, Unit: unit, Exponent: ExponentOf(q, dim)})
	return sel
}
