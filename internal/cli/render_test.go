package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Veraticus/dimflow/internal/common"
	"github.com/Veraticus/dimflow/internal/config"
	"github.com/Veraticus/dimflow/internal/model"
)

func sampleGroups() []model.ConversionGroup {
	return []model.ConversionGroup{
		{
			Dimension: model.DimensionPressure,
			Unit:      "Pa",
			Exponent:  1,
			Options: []model.ConversionOption{
				{Unit: "kPa", Value: "0.001 kPa", Magnitude: 0.001},
				{Unit: "psi", Value: "0.00014503773773 psi", Magnitude: 0.00014503773773},
			},
			Derived: []model.DerivedUnit{{
				Name:        "Pa",
				Definition:  "kg*m^-1*s^-2",
				Conversions: []model.ConversionOption{{Unit: "bar", Value: "1e-05 bar", Magnitude: 1e-5}},
			}},
		},
	}
}

func TestNewRenderer_UnknownFormat(t *testing.T) {
	_, err := NewRenderer(&bytes.Buffer{}, "csv")
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestRenderer_ConversionsTable(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(&buf, config.OutputTable)
	require.NoError(t, err)

	require.NoError(t, r.Conversions("2 Pa", sampleGroups()))

	out := buf.String()
	assert.Contains(t, out, "2 Pa")
	assert.Contains(t, out, "PRESSURE (Pa^1)")
	assert.Contains(t, out, "0.001 kPa")
	assert.Contains(t, out, "Derived: Pa = kg*m^-1*s^-2")
	assert.Contains(t, out, "1e-05 bar")
}

func TestRenderer_ConversionsJSON(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(&buf, config.OutputJSON)
	require.NoError(t, err)

	require.NoError(t, r.Conversions("2 Pa", sampleGroups()))

	var got conversionsView
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "2 Pa", got.Value)
	assert.Equal(t, sampleGroups(), got.Groups)
}

func TestRenderer_ConversionsYAML(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(&buf, config.OutputYAML)
	require.NoError(t, err)

	require.NoError(t, r.Conversions("2 Pa", sampleGroups()))

	var got conversionsView
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleGroups(), got.Groups)
	assert.Contains(t, buf.String(), "dimension: PRESSURE")
}

func TestRenderer_Result(t *testing.T) {
	tests := []struct {
		name   string
		result model.DimensionalResult
		want   string
	}{
		{
			name:   "value",
			result: model.ResultValue(0.5, "(lbf) / (ft^2)"),
			want:   "2 Pa = 0.5 (lbf) / (ft^2)",
		},
		{
			name:   "error",
			result: model.ResultError("missing units for: TIME"),
			want:   "missing units for: TIME",
		},
		{
			name:   "empty",
			result: model.DimensionalResult{},
			want:   "no units selected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r, err := NewRenderer(&buf, config.OutputTable)
			require.NoError(t, err)

			require.NoError(t, r.Result("2 Pa", nil, tt.result))
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestRenderer_ResultJSONKeepsNulls(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(&buf, config.OutputJSON)
	require.NoError(t, err)

	require.NoError(t, r.Result("5 J", []model.BaseDimension{model.DimensionTime}, model.ResultError("missing units for: TIME")))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	result, ok := got["result"].(map[string]any)
	require.True(t, ok)
	assert.Nil(t, result["value"])
	assert.Equal(t, "missing units for: TIME", result["error"])
	assert.Equal(t, []any{"TIME"}, got["required"])
}

func TestRenderer_UnitsAndDimensions(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(&buf, config.OutputTable)
	require.NoError(t, err)

	require.NoError(t, r.Units([]UnitRow{
		{Symbol: "ft", Name: "foot", Dimension: model.DimensionLength, Factor: 0.3048, Source: "BUILTIN"},
	}))
	require.NoError(t, r.Dimensions([]DimensionExponent{
		{Dimension: model.DimensionLength, Exponent: -2},
	}))

	out := buf.String()
	assert.Contains(t, out, "SYMBOL")
	assert.Contains(t, out, "foot")
	assert.Contains(t, out, "0.3048")
	assert.Contains(t, out, "LENGTH")
	assert.Contains(t, out, "-2")
}

func TestRenderer_Recomputation(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(&buf, config.OutputTable)
	require.NoError(t, err)

	require.NoError(t, r.Recomputation("bogus", model.Recomputation{
		Value: "Invalid expression",
		Err:   common.ErrInvalidExpression,
	}))
	assert.Contains(t, buf.String(), "Invalid expression")

	buf.Reset()
	base := "2 kg*m^-1*s^-2"
	require.NoError(t, r.Recomputation("2 Pa", model.Recomputation{
		Value:  "2 Pa",
		Groups: sampleGroups(),
		InBase: &base,
		Result: model.ResultValue(2, "N / (m^2)"),
	}))
	assert.Contains(t, buf.String(), "SI: 2 kg*m^-1*s^-2")
	assert.Contains(t, buf.String(), "2 Pa = 2")
}
