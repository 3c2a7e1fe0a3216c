package engine

import (
	"strings"

	"github.com/Veraticus/dimflow/internal/model"
)

// NoUnitsSelected is rendered for a selection without usable entries.
const NoUnitsSelected = "no units selected"

// FormatSelection renders a selection as a compound unit, e.g. "(lbf) / (ft^2)".
// Entries are ordered by dimension key.
func FormatSelection(sel model.Selection) string {
	var num, den []string
	for _, u := range sel.Entries() {
		switch {
		case u.Exponent > 0:
			num = append(num, renderPower(u.Unit, u.Exponent))
		case u.Exponent < 0:
			den = append(den, renderPower(u.Unit, -u.Exponent))
		}
	}

	switch {
	case len(num) > 0 && len(den) > 0:
		return "(" + strings.Join(num, "*") + ") / (" + strings.Join(den, "*") + ")"
	case len(num) > 0:
		return strings.Join(num, "*")
	case len(den) > 0:
		return "1 / (" + strings.Join(den, "*") + ")"
	default:
		return NoUnitsSelected
	}
}

func renderPower(unit string, exp float64) string {
	if exp == 1 {
		return unit
	}
	return unit + "^" + model.FormatExponent(exp)
}
