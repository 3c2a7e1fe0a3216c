package quantity

import (
	"fmt"

	"github.com/Veraticus/dimflow/internal/common"
	"github.com/Veraticus/dimflow/internal/model"
)

// Define builds a unit definition for symbol equal to the quantity expr, e.g.
// Define("furlong", "furlong", "201.168 m", ""). When dim is empty the
// dimension is taken from an existing unit with the same signature.
func (e *Evaluator) Define(symbol, name, expr string, dim model.BaseDimension) (model.UnitDefinition, error) {
	if symbol == "" {
		return model.UnitDefinition{}, fmt.Errorf("%w: unit symbol is required", common.ErrInvalidExpression)
	}
	if _, exists := e.registry.Lookup(symbol); exists {
		return model.UnitDefinition{}, fmt.Errorf("unit %q is already defined", symbol)
	}

	p, err := parse(expr)
	if err != nil {
		return model.UnitDefinition{}, fmt.Errorf("%w: %v", common.ErrInvalidExpression, err)
	}
	terms := combine(p.terms)
	if len(terms) == 0 {
		return model.UnitDefinition{}, &common.DimensionlessError{Value: p.number}
	}

	factor, sig, err := e.resolve(terms)
	if err != nil {
		return model.UnitDefinition{}, fmt.Errorf("%w: %w", common.ErrInvalidExpression, err)
	}
	if p.hasNumber {
		factor *= p.number
	}

	if dim == "" {
		var ok bool
		if dim, ok = e.registry.DimensionOf(sig); !ok {
			return model.UnitDefinition{}, fmt.Errorf("no dimension matches %q; pass one explicitly", expr)
		}
	}

	def := model.UnitDefinition{
		Symbol:    symbol,
		Name:      name,
		Dimension: dim,
		Signature: sig,
		Factor:    factor,
	}
	if def.Name == "" {
		def.Name = symbol
	}
	if err := def.Validate(); err != nil {
		return model.UnitDefinition{}, err
	}
	return def, nil
}
