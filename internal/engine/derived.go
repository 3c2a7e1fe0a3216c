package engine

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/Veraticus/dimflow/internal/model"
)

// DerivedUnits finds the named units dimensionally equivalent to q's unit and
// returns them as one DerivedUnit represented by its canonical main unit.
// It returns nil when nothing beyond q's own unit is equivalent or when no
// conversion from the main unit succeeds.
func (e *Engine) DerivedUnits(q model.Quantity) *model.DerivedUnit {
	unitPart := q.UnitString()
	if unitPart == "" {
		return nil
	}

	target, err := e.eval.BaseForm(unitPart)
	if err != nil {
		e.logger.Debug("no base form for quantity", "unit", unitPart, "error", err)
		return nil
	}
	target = normalizeBaseForm(target)

	var equivalent []string
	for _, symbol := range e.eval.Symbols() {
		if symbol == "" || strings.Contains(symbol, "1") {
			continue
		}
		if e.equivalent(symbol, unitPart, target) {
			equivalent = append(equivalent, symbol)
		}
	}

	if len(equivalent) == 0 || (len(equivalent) == 1 && equivalent[0] == unitPart) {
		return nil
	}

	sortCanonical(equivalent)
	main := equivalent[0]

	definition, err := e.eval.BaseForm(main)
	if err != nil {
		return nil
	}

	conversions := e.derivedConversions(main, equivalent)
	if len(conversions) == 0 {
		return nil
	}

	return &model.DerivedUnit{
		Name:        main,
		Definition:  definition,
		Conversions: conversions,
	}
}

// equivalent reports whether one unit of symbol converts to unitPart in either
// direction, or failing that, whether their normalized base forms match.
func (e *Engine) equivalent(symbol, unitPart, target string) bool {
	if _, err := e.eval.Convert(1, symbol, unitPart); err == nil {
		return true
	}
	if _, err := e.eval.Convert(1, unitPart, symbol); err == nil {
		return true
	}

	base, err := e.eval.BaseForm(symbol)
	if err != nil {
		return false
	}
	return normalizeBaseForm(base) == target
}

// derivedConversions converts one main unit into every unit of its own
// dimension and into every other equivalent symbol, then deduplicates.
func (e *Engine) derivedConversions(main string, equivalent []string) []model.ConversionOption {
	var targets []string
	seen := make(map[string]bool)
	add := func(u string) {
		if !seen[u] {
			seen[u] = true
			targets = append(targets, u)
		}
	}

	if dim, ok := e.Classify(main); ok {
		for _, u := range e.CompatibleUnits(dim) {
			add(u)
		}
	}
	for _, u := range equivalent {
		if u != main {
			add(u)
		}
	}

	options := make([]model.ConversionOption, 0, len(targets))
	for _, u := range targets {
		opt, err := e.convertOne(main, u)
		if err != nil {
			e.logger.Debug("skipping derived conversion", "from", main, "to", u, "error", err)
			continue
		}
		options = append(options, opt)
	}

	return e.limit(Deduplicate(options))
}

// sortCanonical orders symbols by length, then lexicographically.
func sortCanonical(symbols []string) {
	sort.SliceStable(symbols, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(symbols[i]), utf8.RuneCountInString(symbols[j])
		if li != lj {
			return li < lj
		}
		return symbols[i] < symbols[j]
	})
}

// normalizeBaseForm splits on multiplication, sorts the factors and rejoins them.
func normalizeBaseForm(form string) string {
	parts := strings.Split(form, "*")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	sort.Strings(parts)
	return strings.Join(parts, "*")
}
