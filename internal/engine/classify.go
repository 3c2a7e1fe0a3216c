package engine

import (
	"sort"

	"github.com/Veraticus/dimflow/internal/model"
)

// Classify returns the dimension key of a unit symbol. Unknown symbols report
// false and are skipped by callers.
func (e *Engine) Classify(symbol string) (model.BaseDimension, bool) {
	if symbol == "" {
		return "", false
	}
	return e.eval.Classify(symbol)
}

// CompatibleUnits returns every symbol registered under dim, sorted.
// An unknown dimension yields an empty slice.
func (e *Engine) CompatibleUnits(dim model.BaseDimension) []string {
	units := e.eval.UnitsInDimension(dim)
	out := make([]string, len(units))
	copy(out, units)
	sort.Strings(out)
	return out
}

// convertOne expresses one unit of from in unit to as an option.
func (e *Engine) convertOne(from, to string) (model.ConversionOption, error) {
	v, err := e.eval.Convert(1, from, to)
	if err != nil {
		return model.ConversionOption{}, err
	}
	return model.ConversionOption{Unit: to, Value: e.eval.Format(v, to), Magnitude: v}, nil
}
