package engine

import (
	"github.com/stretchr/testify/mock"

	"github.com/Veraticus/dimflow/internal/model"
)

type mockEvaluator struct {
	mock.Mock
}

func (m *mockEvaluator) Classify(symbol string) (model.BaseDimension, bool) {
	args := m.Called(symbol)
	return args.Get(0).(model.BaseDimension), args.Bool(1)
}

func (m *mockEvaluator) UnitsInDimension(dim model.BaseDimension) []string {
	args := m.Called(dim)
	if units := args.Get(0); units != nil {
		return units.([]string)
	}
	return nil
}

func (m *mockEvaluator) Symbols() []string {
	args := m.Called()
	if symbols := args.Get(0); symbols != nil {
		return symbols.([]string)
	}
	return nil
}

func (m *mockEvaluator) Convert(value float64, from, to string) (float64, error) {
	args := m.Called(value, from, to)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockEvaluator) Factor(from, to string) (float64, error) {
	args := m.Called(from, to)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockEvaluator) BaseForm(unitExpr string) (string, error) {
	args := m.Called(unitExpr)
	return args.String(0), args.Error(1)
}

func (m *mockEvaluator) Evaluate(expr string) (model.Quantity, error) {
	args := m.Called(expr)
	return args.Get(0).(model.Quantity), args.Error(1)
}

func (m *mockEvaluator) Format(value float64, unit string) string {
	args := m.Called(value, unit)
	return args.String(0)
}
