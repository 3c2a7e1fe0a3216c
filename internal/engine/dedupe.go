package engine

import (
	"strings"
	"unicode/utf8"

	"github.com/Veraticus/dimflow/internal/model"
)

// Deduplicate keeps one option per distinct numeric value. Values are compared
// on their leading numeral, ignoring the unit suffix. Among equal values the
// option with the longest unit symbol wins, the first one on a tie; each kept
// option takes the position of the first option of its value.
func Deduplicate(options []model.ConversionOption) []model.ConversionOption {
	out := make([]model.ConversionOption, 0, len(options))
	index := make(map[string]int, len(options))

	for _, opt := range options {
		key := leadingNumeral(opt.Value)
		i, seen := index[key]
		if !seen {
			index[key] = len(out)
			out = append(out, opt)
			continue
		}
		if utf8.RuneCountInString(opt.Unit) > utf8.RuneCountInString(out[i].Unit) {
			out[i] = opt
		}
	}

	return out
}

func leadingNumeral(value string) string {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
