package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Veraticus/dimflow/internal/model"
)

func TestFormatSelection(t *testing.T) {
	tests := []struct {
		name string
		sel  model.Selection
		want string
	}{
		{
			name: "empty",
			sel:  model.Selection{},
			want: NoUnitsSelected,
		},
		{
			name: "numerator and denominator",
			sel: model.NewSelection(
				model.SelectedUnit{Dimension: model.DimensionLength, Unit: "ft", Exponent: -2},
				model.SelectedUnit{Dimension: model.DimensionForce, Unit: "lbf", Exponent: 1},
			),
			want: "(lbf) / (ft^2)",
		},
		{
			name: "numerator only",
			sel: model.NewSelection(
				model.SelectedUnit{Dimension: model.DimensionMass, Unit: "lb", Exponent: 1},
				model.SelectedUnit{Dimension: model.DimensionLength, Unit: "ft", Exponent: 2},
			),
			want: "ft^2*lb",
		},
		{
			name: "denominator only",
			sel: model.NewSelection(
				model.SelectedUnit{Dimension: model.DimensionTime, Unit: "min", Exponent: -1},
			),
			want: "1 / (min)",
		},
		{
			name: "several denominator factors",
			sel: model.NewSelection(
				model.SelectedUnit{Dimension: model.DimensionEnergy, Unit: "J", Exponent: 1},
				model.SelectedUnit{Dimension: model.DimensionMass, Unit: "kg", Exponent: -1},
				model.SelectedUnit{Dimension: model.DimensionTemperature, Unit: "K", Exponent: -1},
			),
			want: "(J) / (kg*K)",
		},
		{
			name: "fractional exponent",
			sel: model.NewSelection(
				model.SelectedUnit{Dimension: model.DimensionLength, Unit: "m", Exponent: 0.5},
			),
			want: "m^0.5",
		},
		{
			name: "zero exponent entries are omitted",
			sel: model.NewSelection(
				model.SelectedUnit{Dimension: model.DimensionLength, Unit: "m", Exponent: 0},
			),
			want: NoUnitsSelected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSelection(tt.sel))
		})
	}
}
