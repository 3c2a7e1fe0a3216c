package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/dimflow/internal/common"
	"github.com/Veraticus/dimflow/internal/model"
)

func TestEvaluator_Define(t *testing.T) {
	e := NewEvaluator(DefaultRegistry())

	def, err := e.Define("furlong", "", "201.168 m", "")
	require.NoError(t, err)
	assert.Equal(t, "furlong", def.Name)
	assert.Equal(t, model.DimensionLength, def.Dimension)
	assert.InDelta(t, 201.168, def.Factor, 1e-12)

	def, err = e.Define("fortnight", "fortnight", "14 day", "")
	require.NoError(t, err)
	assert.Equal(t, model.DimensionTime, def.Dimension)
	assert.InDelta(t, 1209600.0, def.Factor, 1e-6)

	r, err := NewRegistry(append(BuiltinDefinitions(), def))
	require.NoError(t, err)
	v, err := NewEvaluator(r).Convert(1, "fortnight", "week")
	require.NoError(t, err)
	assert.InDelta(t, 2.0, v, 1e-12)
}

func TestEvaluator_DefineErrors(t *testing.T) {
	e := NewEvaluator(DefaultRegistry())

	_, err := e.Define("m", "", "100 cm", "")
	assert.Error(t, err)

	_, err = e.Define("florp", "", "3 zorks", "")
	assert.ErrorIs(t, err, common.ErrInvalidExpression)

	_, err = e.Define("dozen", "", "12", "")
	assert.ErrorIs(t, err, common.ErrDimensionless)

	_, err = e.Define("", "", "1 m", "")
	assert.ErrorIs(t, err, common.ErrInvalidExpression)

	// J/(kg*K) has no registered dimension.
	_, err = e.Define("cp", "", "1 J/(kg*K)", "")
	assert.Error(t, err)

	def, err := e.Define("cp", "", "1 J/(kg*K)", "SPECIFIC_HEAT")
	require.NoError(t, err)
	assert.Equal(t, model.BaseDimension("SPECIFIC_HEAT"), def.Dimension)
}
