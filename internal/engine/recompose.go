package engine

import (
	"math"

	"github.com/Veraticus/dimflow/internal/common"
	"github.com/Veraticus/dimflow/internal/model"
)

// Recompose computes q's value in the units chosen by sel. Every base
// dimension q decomposes into must be selected; otherwise the result names
// the missing dimensions and no value is computed. An empty selection yields
// an empty result.
func (e *Engine) Recompose(q model.Quantity, sel model.Selection) model.DimensionalResult {
	if sel.Len() == 0 {
		return model.DimensionalResult{}
	}

	if missing := MissingDimensions(q, sel); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, d := range missing {
			names[i] = d.String()
		}
		err := &common.MissingUnitsError{Dimensions: names}
		e.logger.Debug("recomposition blocked", "missing", names)
		return model.ResultError(err.Error())
	}

	value, err := e.recomposeValue(q, sel)
	if err != nil {
		e.logger.Debug("recomposition failed", "quantity", q.String(), "error", err)
		return model.ResultError(err.Error())
	}

	return model.ResultValue(value, FormatSelection(sel))
}

// MissingDimensions returns the required dimensions of q that sel lacks, sorted.
func MissingDimensions(q model.Quantity, sel model.Selection) []model.BaseDimension {
	var missing []model.BaseDimension
	for _, d := range RequiredDimensions(q) {
		if _, ok := sel.Get(d); !ok {
			missing = append(missing, d)
		}
	}
	return missing
}

func (e *Engine) recomposeValue(q model.Quantity, sel model.Selection) (float64, error) {
	value := q.Magnitude()

	for _, c := range q.Components() {
		if spec, ok := compounds[c.Dimension]; ok {
			// Bring the component into its coherent SI unit first; the factors
			// below are measured from there.
			f, err := e.eval.Factor(c.Unit, spec.coherent)
			if err != nil {
				return 0, &common.IncompatibleError{From: c.Unit, To: spec.coherent}
			}
			value *= math.Pow(f, c.Exponent)
		}

		for _, factor := range Decompose(c) {
			target, _ := sel.Get(factor.Dimension)
			f, err := e.eval.Factor(factor.Native, target.Unit)
			if err != nil {
				return 0, &common.IncompatibleError{From: factor.Native, To: target.Unit}
			}
			value *= math.Pow(f, factor.Exponent)
		}
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, common.NewUserError("result is not a finite number", nil)
	}
	return value, nil
}
