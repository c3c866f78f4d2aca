package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.scheduleModel.SetSize(msg.Width, msg.Height)
		return m, nil

	case NavigateMsg:
		m.previousScene = m.currentScene
		m.currentScene = msg.Scene
		return m, nil

	case ResetMsg:
		return m, m.reset()
	}

	// Cursor blinks and other input-internal messages
	return m.updateFocusedInput(msg)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	switch m.currentScene {
	case SceneSchedule:
		if key.Matches(msg, m.keys.Back) {
			return m.navigate(SceneCalculator)
		}
		var cmd tea.Cmd
		m.scheduleModel, cmd = m.scheduleModel.Update(msg)
		return m, cmd

	case SceneHelp:
		if key.Matches(msg, m.keys.Back) {
			return m.navigate(m.previousScene)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		return m, m.setFocus(m.focus + 1)

	case key.Matches(msg, m.keys.Prev):
		return m, m.setFocus(m.focus - 1)

	case key.Matches(msg, m.keys.Reset):
		return m, m.reset()

	case key.Matches(msg, m.keys.Schedule):
		return m.navigate(SceneSchedule)

	case key.Matches(msg, m.keys.Help):
		return m.navigate(SceneHelp)

	case m.focus.IsToggle() && key.Matches(msg, m.keys.Toggle):
		m.toggle()
		return m, nil

	case msg.Type == tea.KeyEnter:
		return m, m.setFocus(m.focus + 1)
	}

	return m.updateFocusedInput(msg)
}

func (m Model) navigate(s Scene) (tea.Model, tea.Cmd) {
	m.previousScene = m.currentScene
	m.currentScene = s
	return m, nil
}

// updateFocusedInput forwards msg to the focused text input and recalculates
// when its value changed
func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	i, ok := inputIndex(m.focus)
	if !ok {
		return m, nil
	}
	before := m.inputs[i].Value()

	var cmd tea.Cmd
	m.inputs[i], cmd = m.inputs[i].Update(msg)

	if m.inputs[i].Value() != before {
		m.recalculate()
	}
	return m, cmd
}

// toggle flips the focused toggle field
func (m *Model) toggle() {
	switch m.focus {
	case FieldRateBasis:
		m.rateBasis = m.rateBasis.Toggle()
	case FieldDurationUnit:
		m.durationUnit = m.durationUnit.Toggle()
	default:
		return
	}
	m.recalculate()
}

// reset restores the defaults and focuses the first field
func (m *Model) reset() tea.Cmd {
	m.load(m.defaults)
	cmd := m.setFocus(FieldPrincipal)
	for i := range m.inputs {
		m.inputs[i].CursorEnd()
	}
	m.recalculate()
	return cmd
}
