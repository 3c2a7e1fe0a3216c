package engine

import (
	"github.com/Veraticus/dimflow/internal/model"
)

// BuildConversions builds one ConversionGroup per distinct dimension of q, in
// component order. Later components of an already seen dimension are ignored.
// The derived-unit set is attached to the first group only.
func (e *Engine) BuildConversions(q model.Quantity) []model.ConversionGroup {
	groups := []model.ConversionGroup{}
	seen := make(map[model.BaseDimension]bool)

	for _, c := range q.Components() {
		dim := c.Dimension
		if dim == "" {
			var ok bool
			if dim, ok = e.Classify(c.Unit); !ok {
				e.logger.Debug("skipping unclassifiable unit", "unit", c.Unit)
				continue
			}
		}
		if seen[dim] {
			continue
		}
		seen[dim] = true

		groups = append(groups, model.ConversionGroup{
			Dimension: dim,
			Unit:      c.Unit,
			Exponent:  c.Exponent,
			Options:   e.groupOptions(c.Unit, dim),
		})
	}

	if len(groups) > 0 && e.includeDerived {
		if derived := e.DerivedUnits(q); derived != nil {
			groups[0].Derived = []model.DerivedUnit{*derived}
		}
	}

	return groups
}

func (e *Engine) groupOptions(unit string, dim model.BaseDimension) []model.ConversionOption {
	compatible := e.CompatibleUnits(dim)
	options := make([]model.ConversionOption, 0, len(compatible))

	for _, u := range compatible {
		opt, err := e.convertOne(unit, u)
		if err != nil {
			e.logger.Debug("skipping conversion", "from", unit, "to", u, "error", err)
			continue
		}
		options = append(options, opt)
	}

	return e.limit(Deduplicate(options))
}

func (e *Engine) limit(options []model.ConversionOption) []model.ConversionOption {
	if e.maxOptions > 0 && len(options) > e.maxOptions {
		return options[:e.maxOptions]
	}
	return options
}
