package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/dimflow/internal/engine"
	"github.com/Veraticus/dimflow/internal/model"
	"github.com/Veraticus/dimflow/internal/tui/components"
	"github.com/Veraticus/dimflow/internal/tui/themes"
)

// Focus is the part of the explorer receiving keys.
type Focus int

const (
	FocusInput Focus = iota
	FocusPicker
)

// Config holds the explorer configuration.
type Config struct {
	Engine     *engine.Engine
	Theme      themes.Theme
	Expression string
	Width      int
	Height     int
}

// Model holds the explorer state: the expression, the unit selection and
// everything recomputed from them.
type Model struct {
	engine    *engine.Engine
	theme     themes.Theme
	keymap    KeyMap
	help      help.Model
	input     textinput.Model
	picker    components.PickerModel
	selection model.Selection
	rec       model.Recomputation
	lastExpr  string
	focus     Focus
	width     int
	height    int
	showHelp  bool
	quitting  bool
}

func newModel(cfg Config) Model {
	input := textinput.New()
	input.Placeholder = "2 N/m^2"
	input.Prompt = "› "
	input.CharLimit = 256
	input.SetValue(cfg.Expression)
	input.Focus()

	m := Model{
		engine:    cfg.Engine,
		theme:     cfg.Theme,
		keymap:    DefaultKeyMap(),
		help:      help.New(),
		input:     input,
		selection: model.Selection{},
		width:     cfg.Width,
		height:    cfg.Height,
	}
	m.recompute()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case components.UnitSelectedMsg:
		m.selectUnit(msg.Dimension, msg.Unit)
		return m, nil

	case components.UnitClearedMsg:
		delete(m.selection, msg.Dimension)
		m.recompute()
		return m, nil

	case tea.KeyMsg:
		if cmd, handled := m.handleGlobalKeys(msg); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	if m.focus == FocusPicker {
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}

	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.lastExpr {
		m.recompute()
	}
	return m, cmd
}

func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return tea.Quit, true

	case key.Matches(msg, m.keymap.SwitchFocus):
		m.toggleFocus()
		return nil, true

	case key.Matches(msg, m.keymap.Reset):
		m.selection = model.Selection{}
		m.recompute()
		return nil, true

	case key.Matches(msg, m.keymap.ToggleHelp) && m.focus == FocusPicker:
		m.showHelp = !m.showHelp
		return nil, true
	}
	return nil, false
}

func (m *Model) toggleFocus() {
	if m.focus == FocusInput && len(m.picker.Rows()) > 0 {
		m.focus = FocusPicker
		m.input.Blur()
	} else {
		m.focus = FocusInput
		m.input.Focus()
	}
	m.picker = m.picker.Focus(m.focus == FocusPicker)
}

func (m *Model) selectUnit(dim model.BaseDimension, unit string) {
	q, err := m.engine.Evaluate(m.lastExpr)
	if err != nil {
		return
	}
	m.selection = engine.Select(q, m.selection, dim, unit)
	m.recompute()
}

// recompute rebuilds everything from the current expression and selection.
func (m *Model) recompute() {
	m.lastExpr = m.input.Value()
	m.rec = m.engine.RecomputeAll(m.lastExpr, m.selection)
	m.selection = m.rec.Selection

	m.picker = components.NewPicker(m.rec.Required, m.engine.CompatibleUnits, m.selection, m.theme).
		Focus(m.focus == FocusPicker).
		WithCursor(m.picker.Cursor())

	if len(m.rec.Required) == 0 && m.focus == FocusPicker {
		m.toggleFocus()
	}
}

// Recomputation returns the latest recomputation.
func (m Model) Recomputation() model.Recomputation {
	return m.rec
}

// Selection returns the current unit selection.
func (m Model) Selection() model.Selection {
	return m.selection
}
