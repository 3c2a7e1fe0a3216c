package engine

import (
	"errors"
	"fmt"

	"github.com/Veraticus/dimflow/internal/common"
	"github.com/Veraticus/dimflow/internal/model"
)

// InvalidExpression is the value shown for an expression the evaluator rejects.
const InvalidExpression = "Invalid expression"

// RecomputeAll rebuilds everything derived from expr and sel: the formatted
// value, the conversion groups and the recomposed result. The selection is
// pruned to the dimensions the new quantity requires and its exponents are
// taken from the new quantity. Nothing else is carried over from earlier calls.
func (e *Engine) RecomputeAll(expr string, sel model.Selection) model.Recomputation {
	q, err := e.eval.Evaluate(expr)
	if err != nil {
		var dimensionless *common.DimensionlessError
		if errors.As(err, &dimensionless) {
			return model.Recomputation{
				Value:     e.eval.Format(dimensionless.Value, ""),
				Groups:    []model.ConversionGroup{},
				Selection: model.Selection{},
			}
		}
		return model.Recomputation{
			Value:     InvalidExpression,
			Groups:    []model.ConversionGroup{},
			Selection: model.Selection{},
			Err:       invalidExpression(err),
		}
	}

	required := RequiredDimensions(q)
	pruned := sel.Restrict(required)
	for _, u := range pruned.Entries() {
		pruned = Select(q, pruned, u.Dimension, u.Unit)
	}

	rec := model.Recomputation{
		Value:     e.eval.Format(q.Magnitude(), q.UnitString()),
		Groups:    e.BuildConversions(q),
		Required:  required,
		Selection: pruned,
		Result:    e.Recompose(q, pruned),
	}

	if base, err := e.eval.BaseForm(q.UnitString()); err == nil {
		if v, err := e.eval.Convert(q.Magnitude(), q.UnitString(), base); err == nil {
			s := e.eval.Format(v, base)
			rec.InBase = &s
		}
	}

	return rec
}

func invalidExpression(err error) error {
	if errors.Is(err, common.ErrInvalidExpression) {
		return err
	}
	return fmt.Errorf("%w: %v", common.ErrInvalidExpression, err)
}
