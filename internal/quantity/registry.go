// Package quantity implements the quantity evaluator: a unit registry with SI
// prefixes, an expression parser, conversions, and number formatting.
package quantity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Veraticus/dimflow/internal/model"
)

type prefix struct {
	symbol string
	name   string
	factor float64
}

// prefixes is ordered so that two-letter prefixes are tried first.
var prefixes = []prefix{
	{"da", "deca", 1e1},
	{"Y", "yotta", 1e24},
	{"Z", "zetta", 1e21},
	{"E", "exa", 1e18},
	{"P", "peta", 1e15},
	{"T", "tera", 1e12},
	{"G", "giga", 1e9},
	{"M", "mega", 1e6},
	{"k", "kilo", 1e3},
	{"h", "hecto", 1e2},
	{"d", "deci", 1e-1},
	{"c", "centi", 1e-2},
	{"m", "milli", 1e-3},
	{"u", "micro", 1e-6},
	{"µ", "micro", 1e-6},
	{"μ", "micro", 1e-6},
	{"n", "nano", 1e-9},
	{"p", "pico", 1e-12},
	{"f", "femto", 1e-15},
	{"a", "atto", 1e-18},
	{"z", "zepto", 1e-21},
	{"y", "yocto", 1e-24},
}

// Registry is an immutable table of unit definitions.
type Registry struct {
	units       map[string]model.UnitDefinition
	byDimension map[model.BaseDimension][]string
	symbols     []string
}

// NewRegistry builds a registry from definitions. Duplicate symbols are rejected.
func NewRegistry(defs []model.UnitDefinition) (*Registry, error) {
	r := &Registry{
		units:       make(map[string]model.UnitDefinition, len(defs)),
		byDimension: make(map[model.BaseDimension][]string),
	}

	for i := range defs {
		d := defs[i]
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if _, exists := r.units[d.Symbol]; exists {
			return nil, fmt.Errorf("duplicate unit symbol %q", d.Symbol)
		}
		r.units[d.Symbol] = d
		r.byDimension[d.Dimension] = append(r.byDimension[d.Dimension], d.Symbol)
		r.symbols = append(r.symbols, d.Symbol)
	}

	sort.Strings(r.symbols)
	for dim := range r.byDimension {
		sort.Strings(r.byDimension[dim])
	}

	return r, nil
}

// DefaultRegistry returns a registry over BuiltinDefinitions.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(BuiltinDefinitions())
	if err != nil {
		panic(fmt.Sprintf("builtin unit table is invalid: %v", err))
	}
	return r
}

// Lookup resolves a symbol, trying SI prefixes on prefixable units when the
// symbol is not registered directly.
func (r *Registry) Lookup(symbol string) (model.UnitDefinition, bool) {
	if d, ok := r.units[symbol]; ok {
		return d, true
	}

	for _, p := range prefixes {
		rest, found := strings.CutPrefix(symbol, p.symbol)
		if !found || rest == "" {
			continue
		}
		base, ok := r.units[rest]
		if !ok || !base.Prefixable {
			continue
		}
		base.Symbol = symbol
		base.Name = p.name + base.Name
		base.Factor *= p.factor
		base.Prefixable = false
		return base, true
	}

	return model.UnitDefinition{}, false
}

// Classify returns the dimension of a symbol.
func (r *Registry) Classify(symbol string) (model.BaseDimension, bool) {
	d, ok := r.Lookup(symbol)
	if !ok {
		return "", false
	}
	return d.Dimension, true
}

// UnitsInDimension returns every symbol registered under dim.
func (r *Registry) UnitsInDimension(dim model.BaseDimension) []string {
	syms := r.byDimension[dim]
	out := make([]string, len(syms))
	copy(out, syms)
	return out
}

// Symbols returns every registered symbol in sorted order.
func (r *Registry) Symbols() []string {
	out := make([]string, len(r.symbols))
	copy(out, r.symbols)
	return out
}

// Dimensions returns every dimension that has at least one unit.
func (r *Registry) Dimensions() []model.BaseDimension {
	dims := make([]model.BaseDimension, 0, len(r.byDimension))
	for d := range r.byDimension {
		dims = append(dims, d)
	}
	sort.Slice(dims, func(i, j int) bool { return dims[i] < dims[j] })
	return dims
}

// Definitions returns all registered definitions sorted by symbol.
func (r *Registry) Definitions() []model.UnitDefinition {
	out := make([]model.UnitDefinition, 0, len(r.symbols))
	for _, s := range r.symbols {
		out = append(out, r.units[s])
	}
	return out
}

// DimensionOf returns the dimension of the first registered unit, in symbol
// order, whose signature equals sig.
func (r *Registry) DimensionOf(sig model.Signature) (model.BaseDimension, bool) {
	for _, s := range r.symbols {
		if d := r.units[s]; d.Signature.Equal(sig) {
			return d.Dimension, true
		}
	}
	return "", false
}
