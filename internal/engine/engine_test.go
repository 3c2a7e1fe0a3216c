package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/dimflow/internal/common"
	"github.com/Veraticus/dimflow/internal/model"
	"github.com/Veraticus/dimflow/internal/quantity"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return New(quantity.NewEvaluator(quantity.DefaultRegistry()))
}

func mustEvaluate(t *testing.T, e *Engine, expr string) model.Quantity {
	t.Helper()
	q, err := e.Evaluate(expr)
	require.NoError(t, err)
	return q
}

func TestEngine_Classify(t *testing.T) {
	e := newTestEngine(t)

	dim, ok := e.Classify("cm")
	require.True(t, ok)
	assert.Equal(t, model.DimensionLength, dim)

	_, ok = e.Classify("florp")
	assert.False(t, ok)
	_, ok = e.Classify("")
	assert.False(t, ok)
}

func TestEngine_CompatibleUnits(t *testing.T) {
	e := newTestEngine(t)

	units := e.CompatibleUnits(model.DimensionPressure)
	assert.Contains(t, units, "Pa")
	assert.Contains(t, units, "psi")
	assert.IsNonDecreasing(t, units)
	assert.Empty(t, e.CompatibleUnits("UNKNOWN"))
}

func TestEngine_BuildConversions(t *testing.T) {
	e := newTestEngine(t)

	t.Run("pressure", func(t *testing.T) {
		groups := e.BuildConversions(mustEvaluate(t, e, "2 N/m^2"))
		require.Len(t, groups, 1)
		assert.Equal(t, model.DimensionPressure, groups[0].Dimension)
		assert.InDelta(t, 1.0, groups[0].Exponent, 0)
		assert.Equal(t, "Pa", groups[0].Unit)
		assert.Contains(t, optionUnits(groups[0].Options), "psi")

		require.Len(t, groups[0].Derived, 1)
		assert.Equal(t, "Pa", groups[0].Derived[0].Name)
	})

	t.Run("velocity has one group per dimension", func(t *testing.T) {
		groups := e.BuildConversions(mustEvaluate(t, e, "10 km/h"))
		require.Len(t, groups, 2)
		assert.Equal(t, model.DimensionLength, groups[0].Dimension)
		assert.Equal(t, model.DimensionTime, groups[1].Dimension)
		assert.NotEmpty(t, groups[0].Derived)
		assert.Empty(t, groups[1].Derived)
	})

	t.Run("group exponents match components", func(t *testing.T) {
		for _, expr := range []string{"4 J/(kg*K)", "3 ft^2", "9 m/s^2", "1 mol/L"} {
			q := mustEvaluate(t, e, expr)
			groups := e.BuildConversions(q)
			components := q.Components()
			require.NotEmpty(t, groups, expr)
			for i, g := range groups {
				assert.InDelta(t, components[i].Exponent, g.Exponent, 1e-12, expr)
			}
		}
	})

	t.Run("first component of a dimension wins", func(t *testing.T) {
		q, err := model.NewQuantity(1, []model.UnitComponent{
			{Unit: "km", Dimension: model.DimensionLength, Exponent: 1},
			{Unit: "ft", Dimension: model.DimensionLength, Exponent: -1},
		})
		require.NoError(t, err)
		groups := e.BuildConversions(q)
		require.Len(t, groups, 1)
		assert.Equal(t, "km", groups[0].Unit)
	})

	t.Run("zero quantity yields empty list", func(t *testing.T) {
		groups := e.BuildConversions(model.Quantity{})
		assert.NotNil(t, groups)
		assert.Empty(t, groups)
	})

	t.Run("options are deduplicated", func(t *testing.T) {
		groups := e.BuildConversions(mustEvaluate(t, e, "1 ft"))
		require.NotEmpty(t, groups)
		units := optionUnits(groups[0].Options)
		assert.Contains(t, units, "foot")
		assert.NotContains(t, units, "ft")
		assertUniqueNumerals(t, groups[0].Options)
	})
}

func TestEngine_BuildConversionsWithConfig(t *testing.T) {
	eval := quantity.NewEvaluator(quantity.DefaultRegistry())
	e := NewWithConfig(eval, Config{MaxOptions: 3})

	groups := e.BuildConversions(mustEvaluate(t, e, "1 m"))
	require.Len(t, groups, 1)
	assert.Len(t, groups[0].Options, 3)
	assert.Empty(t, groups[0].Derived)
}

func TestEngine_DerivedUnits(t *testing.T) {
	e := newTestEngine(t)

	derived := e.DerivedUnits(mustEvaluate(t, e, "5 kg*m^2/s^2"))
	require.NotNil(t, derived)
	assert.Equal(t, "J", derived.Name)
	assert.Equal(t, "kg*m^2*s^-2", derived.Definition)

	units := optionUnits(derived.Conversions)
	assert.Contains(t, units, "kWh")
	assert.Contains(t, units, "cal")
	assert.NotContains(t, units, "W")
	assert.NotContains(t, units, "N")
	assertUniqueNumerals(t, derived.Conversions)

	noSimplify := New(quantity.NewEvaluator(quantity.DefaultRegistry(), quantity.WithSimplify(false)))
	derived = noSimplify.DerivedUnits(mustEvaluate(t, noSimplify, "5 kg*m^2/s^2"))
	require.NotNil(t, derived)
	assert.Equal(t, "J", derived.Name)
}

func TestEngine_DerivedUnitsNone(t *testing.T) {
	e := newTestEngine(t)

	// Nothing in the registry carries this signature.
	assert.Nil(t, e.DerivedUnits(mustEvaluate(t, e, "4 J/(kg*K)")))
	assert.Nil(t, e.DerivedUnits(model.Quantity{}))
}

func TestSortCanonical(t *testing.T) {
	symbols := []string{"kWh", "J", "erg", "BTU", "cal"}
	sortCanonical(symbols)
	assert.Equal(t, []string{"J", "BTU", "cal", "erg", "kWh"}, symbols)
}

func TestNormalizeBaseForm(t *testing.T) {
	assert.Equal(t, "kg*m^2*s^-2", normalizeBaseForm("s^-2 * kg*m^2"))
	assert.Equal(t, normalizeBaseForm("m*kg"), normalizeBaseForm("kg*m"))
}

func TestEngine_RecomputeAll(t *testing.T) {
	e := newTestEngine(t)

	t.Run("invalid expression clears everything", func(t *testing.T) {
		sel := model.NewSelection(model.SelectedUnit{Dimension: model.DimensionLength, Unit: "ft", Exponent: 1})
		rec := e.RecomputeAll("3 florps +", sel)

		assert.Equal(t, InvalidExpression, rec.Value)
		assert.Nil(t, rec.InBase)
		assert.NotNil(t, rec.Groups)
		assert.Empty(t, rec.Groups)
		assert.Zero(t, rec.Selection.Len())
		assert.True(t, rec.Result.Empty())
		assert.ErrorIs(t, rec.Err, common.ErrInvalidExpression)
	})

	t.Run("plain number is not a quantity", func(t *testing.T) {
		rec := e.RecomputeAll("42", nil)
		assert.Equal(t, "42", rec.Value)
		assert.Empty(t, rec.Groups)
		assert.NoError(t, rec.Err)
	})

	t.Run("selection is pruned to required dimensions", func(t *testing.T) {
		sel := model.NewSelection(
			model.SelectedUnit{Dimension: model.DimensionForce, Unit: "lbf", Exponent: 1},
			model.SelectedUnit{Dimension: model.DimensionLength, Unit: "ft", Exponent: -2},
			model.SelectedUnit{Dimension: model.DimensionTime, Unit: "h", Exponent: 1},
		)
		rec := e.RecomputeAll("2 N/m^2", sel)

		require.NoError(t, rec.Err)
		assert.Equal(t, "2 Pa", rec.Value)
		assert.Equal(t, []model.BaseDimension{model.DimensionForce, model.DimensionLength}, rec.Required)
		assert.Equal(t, 2, rec.Selection.Len())
		require.True(t, rec.Result.OK())
		assert.Equal(t, "(lbf) / (ft^2)", *rec.Result.Units)
		require.NotNil(t, rec.InBase)
		assert.Equal(t, "2 kg*m^-1*s^-2", *rec.InBase)
	})
}

func optionUnits(options []model.ConversionOption) []string {
	units := make([]string, len(options))
	for i, o := range options {
		units[i] = o.Unit
	}
	return units
}

func assertUniqueNumerals(t *testing.T, options []model.ConversionOption) {
	t.Helper()
	seen := make(map[string]string)
	for _, o := range options {
		n := leadingNumeral(o.Value)
		if prev, ok := seen[n]; ok {
			t.Errorf("options %q and %q share value %s", prev, o.Unit, n)
		}
		seen[n] = o.Unit
	}
}
