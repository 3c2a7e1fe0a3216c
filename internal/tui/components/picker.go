package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/dimflow/internal/model"
	"github.com/Veraticus/dimflow/internal/tui/themes"
)

// UnitSelectedMsg is sent when a unit is chosen for a dimension.
type UnitSelectedMsg struct {
	Dimension model.BaseDimension
	Unit      string
}

// UnitClearedMsg is sent when a dimension's selection is removed.
type UnitClearedMsg struct {
	Dimension model.BaseDimension
}

// PickerRow is one required dimension and its candidate units.
type PickerRow struct {
	Dimension model.BaseDimension
	Chosen    string
	Units     []string
	Index     int
}

// PickerModel lets the user choose one unit per required dimension.
type PickerModel struct {
	theme   themes.Theme
	rows    []PickerRow
	cursor  int
	focused bool
}

// NewPicker builds one row per dimension. Rows start on the unit already
// selected for their dimension, if any.
func NewPicker(dims []model.BaseDimension, units func(model.BaseDimension) []string, sel model.Selection, theme themes.Theme) PickerModel {
	rows := make([]PickerRow, 0, len(dims))
	for _, d := range dims {
		row := PickerRow{Dimension: d, Units: units(d)}
		if chosen, ok := sel.Get(d); ok {
			row.Chosen = chosen.Unit
			for i, u := range row.Units {
				if u == chosen.Unit {
					row.Index = i
				}
			}
		}
		rows = append(rows, row)
	}
	return PickerModel{rows: rows, theme: theme}
}

// Focus returns the picker with keyboard focus set.
func (m PickerModel) Focus(focused bool) PickerModel {
	m.focused = focused
	return m
}

// Focused reports whether the picker has keyboard focus.
func (m PickerModel) Focused() bool {
	return m.focused
}

// Rows returns the picker rows.
func (m PickerModel) Rows() []PickerRow {
	return m.rows
}

// WithCursor moves the cursor to row i, clamped to the available rows.
func (m PickerModel) WithCursor(i int) PickerModel {
	m.cursor = max(0, min(i, len(m.rows)-1))
	return m
}

// Cursor returns the index of the active row.
func (m PickerModel) Cursor() int {
	return m.cursor
}

// Current returns the dimension and unit under the cursor.
func (m PickerModel) Current() (model.BaseDimension, string, bool) {
	if len(m.rows) == 0 {
		return "", "", false
	}
	row := m.rows[m.cursor]
	if len(row.Units) == 0 {
		return row.Dimension, "", false
	}
	return row.Dimension, row.Units[row.Index], true
}

// Update handles messages.
func (m PickerModel) Update(msg tea.Msg) (PickerModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused || len(m.rows) == 0 {
		return m, nil
	}

	row := &m.rows[m.cursor]
	switch keyMsg.String() {
	case "j", "down":
		m.cursor = (m.cursor + 1) % len(m.rows)
	case "k", "up":
		m.cursor = (m.cursor + len(m.rows) - 1) % len(m.rows)
	case "l", "right":
		if n := len(row.Units); n > 0 {
			row.Index = (row.Index + 1) % n
		}
	case "h", "left":
		if n := len(row.Units); n > 0 {
			row.Index = (row.Index + n - 1) % n
		}
	case "enter", " ":
		dim, unit, ok := m.Current()
		if !ok {
			return m, nil
		}
		row.Chosen = unit
		return m, func() tea.Msg { return UnitSelectedMsg{Dimension: dim, Unit: unit} }
	case "x", "delete", "backspace":
		dim := row.Dimension
		row.Chosen = ""
		return m, func() tea.Msg { return UnitClearedMsg{Dimension: dim} }
	}

	return m, nil
}

// View renders one line per dimension with the unit under the row's index.
func (m PickerModel) View() string {
	if len(m.rows) == 0 {
		return lipgloss.NewStyle().Foreground(m.theme.Muted).Render("no dimensions to choose")
	}

	lines := make([]string, 0, len(m.rows))
	for i, row := range m.rows {
		unit := "-"
		if len(row.Units) > 0 {
			unit = row.Units[row.Index]
		}

		label := m.theme.Bold.Render(padRight(string(row.Dimension), 22))
		value := "‹ " + unit + " ›"
		switch {
		case i == m.cursor && m.focused:
			value = m.theme.Selected.Render(value)
		case i == m.cursor:
			value = m.theme.Highlighted.Render(value)
		}

		line := label + value
		if row.Chosen != "" {
			line += "  " + m.theme.Chosen.Render("= "+row.Chosen)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}
