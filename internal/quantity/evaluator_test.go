package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/dimflow/internal/common"
	"github.com/Veraticus/dimflow/internal/model"
)

func TestEvaluator_Evaluate(t *testing.T) {
	e := NewEvaluator(DefaultRegistry())

	tests := []struct {
		name       string
		expr       string
		components []model.UnitComponent
		magnitude  float64
	}{
		{
			name:       "simple length",
			expr:       "3 m",
			magnitude:  3,
			components: []model.UnitComponent{{Unit: "m", Dimension: model.DimensionLength, Exponent: 1}},
		},
		{
			name:       "pressure collapses to pascal",
			expr:       "2 N/m^2",
			magnitude:  2,
			components: []model.UnitComponent{{Unit: "Pa", Dimension: model.DimensionPressure, Exponent: 1}},
		},
		{
			name:       "energy collapses to joule",
			expr:       "5 kg*m^2/s^2",
			magnitude:  5,
			components: []model.UnitComponent{{Unit: "J", Dimension: model.DimensionEnergy, Exponent: 1}},
		},
		{
			name:      "velocity stays compound",
			expr:      "10 km/h",
			magnitude: 10,
			components: []model.UnitComponent{
				{Unit: "km", Dimension: model.DimensionLength, Exponent: 1},
				{Unit: "h", Dimension: model.DimensionTime, Exponent: -1},
			},
		},
		{
			name:      "parenthesized denominator",
			expr:      "4 J/(kg*K)",
			magnitude: 4,
			components: []model.UnitComponent{
				{Unit: "J", Dimension: model.DimensionEnergy, Exponent: 1},
				{Unit: "kg", Dimension: model.DimensionMass, Exponent: -1},
				{Unit: "K", Dimension: model.DimensionTemperature, Exponent: -1},
			},
		},
		{
			name:       "prefixed unit resolves",
			expr:       "1.5e3 Gm",
			magnitude:  1500,
			components: []model.UnitComponent{{Unit: "Gm", Dimension: model.DimensionLength, Exponent: 1}},
		},
		{
			name:       "bare unit has magnitude one",
			expr:       "psi",
			magnitude:  1,
			components: []model.UnitComponent{{Unit: "psi", Dimension: model.DimensionPressure, Exponent: 1}},
		},
		{
			name:       "electronvolt is not an exponent",
			expr:       "5eV",
			magnitude:  5,
			components: []model.UnitComponent{{Unit: "eV", Dimension: model.DimensionEnergy, Exponent: 1}},
		},
		{
			name:       "repeated symbols combine",
			expr:       "2 m*m",
			magnitude:  2,
			components: []model.UnitComponent{{Unit: "m", Dimension: model.DimensionLength, Exponent: 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := e.Evaluate(tt.expr)
			require.NoError(t, err)
			assert.InDelta(t, tt.magnitude, q.Magnitude(), 1e-9)
			assert.Equal(t, tt.components, q.Components())
		})
	}
}

func TestEvaluator_EvaluateScalesOnSimplify(t *testing.T) {
	e := NewEvaluator(DefaultRegistry())

	q, err := e.Evaluate("2 kN/cm^2")
	require.NoError(t, err)
	assert.InDelta(t, 2e7, q.Magnitude(), 1e-3)
	assert.Equal(t, "Pa", q.UnitString())

	raw := NewEvaluator(DefaultRegistry(), WithSimplify(false))
	q, err = raw.Evaluate("2 N/m^2")
	require.NoError(t, err)
	assert.Equal(t, "N/m^2", q.UnitString())
}

func TestEvaluator_EvaluateErrors(t *testing.T) {
	e := NewEvaluator(DefaultRegistry())

	tests := []struct {
		target error
		name   string
		expr   string
	}{
		{name: "unknown unit", expr: "3 florps", target: common.ErrUnknownUnit},
		{name: "unknown unit is invalid", expr: "3 florps", target: common.ErrInvalidExpression},
		{name: "garbage", expr: "2 + ?", target: common.ErrInvalidExpression},
		{name: "empty", expr: "   ", target: common.ErrInvalidExpression},
		{name: "dangling operator", expr: "2 m/", target: common.ErrInvalidExpression},
		{name: "plain number", expr: "42", target: common.ErrDimensionless},
		{name: "cancelling units", expr: "3 m/m", target: common.ErrDimensionless},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Evaluate(tt.expr)
			assert.ErrorIs(t, err, tt.target)
		})
	}

	_, err := e.Evaluate("42")
	var de *common.DimensionlessError
	require.ErrorAs(t, err, &de)
	assert.InDelta(t, 42.0, de.Value, 1e-12)
}

func TestEvaluator_Convert(t *testing.T) {
	e := NewEvaluator(DefaultRegistry())

	tests := []struct {
		name  string
		from  string
		to    string
		value float64
		want  float64
	}{
		{name: "meters to centimeters", value: 1, from: "m", to: "cm", want: 100},
		{name: "feet to meters", value: 1, from: "ft", to: "m", want: 0.3048},
		{name: "newton to pound force", value: 1, from: "N", to: "lbf", want: 1 / 4.4482216152605},
		{name: "joule to compound", value: 1, from: "J", to: "kg*m^2/s^2", want: 1},
		{name: "kilowatt hour to joule", value: 1, from: "kWh", to: "J", want: 3.6e6},
		{name: "celsius to kelvin", value: 1, from: "degC", to: "K", want: 274.15},
		{name: "fahrenheit to celsius", value: 212, from: "degF", to: "degC", want: 100},
		{name: "area symbol to squared length", value: 1, from: "m2", to: "ft^2", want: 1 / (0.3048 * 0.3048)},
		{name: "velocity", value: 36, from: "km/h", to: "m/s", want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Convert(tt.value, tt.from, tt.to)
			require.NoError(t, err)
			assert.InEpsilon(t, tt.want, got, 1e-9)
		})
	}
}

func TestEvaluator_ConvertIncompatible(t *testing.T) {
	e := NewEvaluator(DefaultRegistry())

	_, err := e.Convert(1, "m", "kg")
	assert.ErrorIs(t, err, common.ErrIncompatibleUnits)

	var ie *common.IncompatibleError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "m", ie.From)
	assert.Equal(t, "kg", ie.To)

	_, err = e.Convert(1, "m", "zorks")
	assert.ErrorIs(t, err, common.ErrUnknownUnit)
}

func TestEvaluator_FactorIgnoresOffsets(t *testing.T) {
	e := NewEvaluator(DefaultRegistry())

	f, err := e.Factor("degC", "K")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, f, 1e-12)

	f, err = e.Factor("ft", "m")
	require.NoError(t, err)
	assert.InDelta(t, 0.3048, f, 1e-12)
}

func TestEvaluator_BaseForm(t *testing.T) {
	e := NewEvaluator(DefaultRegistry())

	tests := []struct {
		expr string
		want string
	}{
		{expr: "J", want: "kg*m^2*s^-2"},
		{expr: "kWh", want: "kg*m^2*s^-2"},
		{expr: "N/m^2", want: "kg*m^-1*s^-2"},
		{expr: "1/s", want: "s^-1"},
		{expr: "km", want: "m"},
		{expr: "m^(1/2)", want: "m^0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := e.BaseForm(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := e.BaseForm("3 m")
	assert.Error(t, err)
}

func TestEvaluator_Format(t *testing.T) {
	e := NewEvaluator(DefaultRegistry(), WithPrecision(6))
	assert.Equal(t, "3.28084 ft", e.Format(3.280839895013123, "ft"))
}
