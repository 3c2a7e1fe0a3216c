package quantity

import (
	"fmt"
	"math"
	"strings"

	"github.com/Veraticus/dimflow/internal/common"
	"github.com/Veraticus/dimflow/internal/model"
)

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithSimplify toggles collapsing compound units into a matching coherent SI unit.
func WithSimplify(enabled bool) Option {
	return func(e *Evaluator) {
		e.simplify = enabled
	}
}

// WithPrecision sets the significant digits used by Format.
func WithPrecision(digits int) Option {
	return func(e *Evaluator) {
		e.formatter.Precision = digits
	}
}

// Evaluator parses quantity expressions and converts between units of a Registry.
// It holds no mutable state and is safe for concurrent use.
type Evaluator struct {
	registry  *Registry
	formatter Formatter
	simplify  bool
}

// NewEvaluator creates an evaluator over registry.
func NewEvaluator(registry *Registry, opts ...Option) *Evaluator {
	e := &Evaluator{
		registry:  registry,
		formatter: Formatter{Precision: DefaultPrecision},
		simplify:  true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry returns the underlying registry.
func (e *Evaluator) Registry() *Registry {
	return e.registry
}

// Classify returns the dimension of a symbol.
func (e *Evaluator) Classify(symbol string) (model.BaseDimension, bool) {
	return e.registry.Classify(symbol)
}

// UnitsInDimension returns every symbol registered under dim.
func (e *Evaluator) UnitsInDimension(dim model.BaseDimension) []string {
	return e.registry.UnitsInDimension(dim)
}

// Symbols returns every registered symbol.
func (e *Evaluator) Symbols() []string {
	return e.registry.Symbols()
}

// Format renders "<number> <unit>".
func (e *Evaluator) Format(value float64, unit string) string {
	return e.formatter.Format(value, unit)
}

// Evaluate parses expr into a Quantity.
func (e *Evaluator) Evaluate(expr string) (model.Quantity, error) {
	p, err := parse(expr)
	if err != nil {
		return model.Quantity{}, fmt.Errorf("%w: %v", common.ErrInvalidExpression, err)
	}

	magnitude := 1.0
	if p.hasNumber {
		magnitude = p.number
	}

	terms := combine(p.terms)
	if len(terms) == 0 {
		return model.Quantity{}, &common.DimensionlessError{Value: magnitude}
	}

	components := make([]model.UnitComponent, 0, len(terms))
	for _, t := range terms {
		d, ok := e.registry.Lookup(t.symbol)
		if !ok {
			return model.Quantity{}, fmt.Errorf("%w: %w", common.ErrInvalidExpression, &common.UnknownUnitError{Symbol: t.symbol})
		}
		components = append(components, model.UnitComponent{Unit: t.symbol, Dimension: d.Dimension, Exponent: t.exp})
	}

	if e.simplify && len(terms) > 1 {
		if unit, factor, ok := e.coherent(terms); ok {
			d, _ := e.registry.Lookup(unit)
			magnitude *= factor
			components = []model.UnitComponent{{Unit: unit, Dimension: d.Dimension, Exponent: 1}}
		}
	}

	return model.NewQuantity(magnitude, components)
}

// coherent finds the coherent SI unit whose signature matches terms and returns
// the factor taking terms into it.
func (e *Evaluator) coherent(terms []term) (string, float64, bool) {
	factor, sig, err := e.resolve(terms)
	if err != nil || sig.IsZero() {
		return "", 0, false
	}
	for _, symbol := range coherentUnits {
		d, ok := e.registry.Lookup(symbol)
		if !ok {
			continue
		}
		if d.Signature.Equal(sig) {
			return symbol, factor / d.Factor, true
		}
	}
	return "", 0, false
}

// resolve multiplies out the factors and signatures of terms.
func (e *Evaluator) resolve(terms []term) (float64, model.Signature, error) {
	factor := 1.0
	var sig model.Signature
	for _, t := range terms {
		d, ok := e.registry.Lookup(t.symbol)
		if !ok {
			return 0, sig, &common.UnknownUnitError{Symbol: t.symbol}
		}
		factor *= math.Pow(d.Factor, t.exp)
		sig = sig.Add(d.Signature, t.exp)
	}
	return factor, sig, nil
}

type resolved struct {
	terms  []term
	sig    model.Signature
	factor float64
}

func (e *Evaluator) resolveExpr(expr string) (resolved, error) {
	terms, err := parseUnit(expr)
	if err != nil {
		return resolved{}, fmt.Errorf("%w: %v", common.ErrInvalidExpression, err)
	}
	factor, sig, err := e.resolve(terms)
	if err != nil {
		return resolved{}, err
	}
	return resolved{terms: terms, sig: sig, factor: factor}, nil
}

func (e *Evaluator) pair(from, to string) (resolved, resolved, error) {
	f, err := e.resolveExpr(from)
	if err != nil {
		return resolved{}, resolved{}, err
	}
	t, err := e.resolveExpr(to)
	if err != nil {
		return resolved{}, resolved{}, err
	}
	if !f.sig.Equal(t.sig) {
		return resolved{}, resolved{}, &common.IncompatibleError{From: from, To: to}
	}
	return f, t, nil
}

// Convert expresses value in unit from as a value in unit to. Offsets apply
// only when both sides are a single unit with exponent 1.
func (e *Evaluator) Convert(value float64, from, to string) (float64, error) {
	f, t, err := e.pair(from, to)
	if err != nil {
		return 0, err
	}

	fd, fok := e.single(f)
	td, tok := e.single(t)
	if fok && tok && (fd.Offset != 0 || td.Offset != 0) {
		si := value*fd.Factor + fd.Offset
		return (si - td.Offset) / td.Factor, nil
	}

	return value * f.factor / t.factor, nil
}

func (e *Evaluator) single(r resolved) (model.UnitDefinition, bool) {
	if len(r.terms) != 1 || r.terms[0].exp != 1 {
		return model.UnitDefinition{}, false
	}
	return e.registry.Lookup(r.terms[0].symbol)
}

// Factor returns how many to are in one from.
func (e *Evaluator) Factor(from, to string) (float64, error) {
	f, t, err := e.pair(from, to)
	if err != nil {
		return 0, err
	}
	return f.factor / t.factor, nil
}

// BaseForm renders unitExpr in SI base units, e.g. "kg*m^2*s^-2".
// A dimensionless expression renders as "".
func (e *Evaluator) BaseForm(unitExpr string) (string, error) {
	r, err := e.resolveExpr(unitExpr)
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, len(model.BaseOrder))
	for _, i := range model.BaseOrder {
		exp := r.sig[i]
		if math.Abs(exp) < 1e-9 {
			continue
		}
		if exp == 1 {
			parts = append(parts, model.BaseSymbol(i))
			continue
		}
		parts = append(parts, model.BaseSymbol(i)+"^"+model.FormatExponent(exp))
	}
	return strings.Join(parts, "*"), nil
}
