package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/dimflow/internal/engine"
	"github.com/Veraticus/dimflow/internal/model"
)

// maxInlineOptions caps the options listed per group.
const maxInlineOptions = 8

// View renders the explorer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.theme.Title.Render("📐 dimflow explorer"),
		m.input.View(),
		"",
		m.renderValue(),
	}

	if groups := m.renderGroups(); groups != "" {
		sections = append(sections, "", groups)
	}

	if len(m.rec.Required) > 0 {
		picker := lipgloss.JoinVertical(lipgloss.Left,
			m.theme.Bold.Render("Recompose into"),
			m.picker.View(),
		)
		sections = append(sections, "", m.theme.RoundedBox.Render(picker), m.renderResult())
	}

	footer := m.help.ShortHelpView(m.keymap.ShortHelp())
	if m.showHelp {
		footer = m.help.FullHelpView(m.keymap.FullHelp())
	}
	sections = append(sections, "", footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderValue() string {
	if m.rec.Err != nil {
		return m.theme.StatusError.Render(m.rec.Value)
	}
	if m.rec.Value == "" {
		return lipgloss.NewStyle().Foreground(m.theme.Muted).Render("type a quantity, e.g. 2 N/m^2")
	}

	line := m.theme.StatusInfo.Render(m.rec.Value)
	if m.rec.InBase != nil {
		line += lipgloss.NewStyle().Foreground(m.theme.Muted).Render("  = " + *m.rec.InBase)
	}
	return line
}

func (m Model) renderGroups() string {
	var blocks []string
	for _, g := range m.rec.Groups {
		header := m.theme.Bold.Render(fmt.Sprintf("%s  %s", g.Dimension, renderUnit(g.Unit, g.Exponent)))
		lines := []string{header, "  " + joinOptions(g.Options)}
		for _, d := range g.Derived {
			lines = append(lines,
				m.theme.Subtitle.Render(fmt.Sprintf("  %s = %s", d.Name, d.Definition)),
				"  "+joinOptions(d.Conversions),
			)
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n")
}

func (m Model) renderResult() string {
	res := m.rec.Result
	switch {
	case res.Error != nil:
		return m.theme.StatusError.Render(*res.Error)
	case res.Value != nil:
		return m.theme.StatusSuccess.Render("= " + m.engine.Format(*res.Value, *res.Units))
	default:
		return lipgloss.NewStyle().Foreground(m.theme.Muted).Render(engine.NoUnitsSelected)
	}
}

func renderUnit(unit string, exp float64) string {
	if exp == 1 {
		return unit
	}
	return unit + "^" + model.FormatExponent(exp)
}

func joinOptions(options []model.ConversionOption) string {
	values := make([]string, 0, maxInlineOptions+1)
	for i, o := range options {
		if i == maxInlineOptions {
			values = append(values, fmt.Sprintf("+%d more", len(options)-maxInlineOptions))
			break
		}
		values = append(values, o.Value)
	}
	return strings.Join(values, " · ")
}
