package tui

import (
	"github.com/akyairhashvil/donut/internal/scheduler"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case scheduler.TickMsg:
		return m.handleTick(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.help.Width = msg.Width
	m.relayout()
	return m, nil
}

// handleTick drops ticks from replaced or cancelled arms, so at most one tick chain drives
// the timer.
func (m Model) handleTick(msg scheduler.TickMsg) (Model, tea.Cmd) {
	if !m.slot.Accept(msg) {
		return m, nil
	}
	m.timer.Tick()
	m.slot.Continue()
	m.relayout()
	return m, m.slot.Cmd()
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.timer.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		m.timer.Toggle()
	case key.Matches(msg, m.keys.Reset):
		m.timer.Reset()
	case key.Matches(msg, m.keys.Settings):
		m.panel.toggle()
	case key.Matches(msg, m.keys.Theme):
		m.selectTheme(1)
	case key.Matches(msg, m.keys.PrevTheme):
		m.selectTheme(-1)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case m.panel.visible && key.Matches(msg, m.keys.Next):
		m.panel.move(1)
	case m.panel.visible && key.Matches(msg, m.keys.Prev):
		m.panel.move(-1)
	case m.panel.visible && key.Matches(msg, m.keys.Up):
		m.adjustField(1)
	case m.panel.visible && key.Matches(msg, m.keys.Down):
		m.adjustField(-1)
	default:
		return m, nil
	}
	m.relayout()
	return m, m.slot.Cmd()
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	at := cell{Row: msg.Y, Col: msg.X}
	switch {
	case hit(m.playCell, at):
		m.timer.Toggle()
	case hit(m.resetCell, at):
		m.timer.Reset()
	default:
		return m, nil
	}
	m.relayout()
	return m, m.slot.Cmd()
}

// hit allows a click one column either side of a glyph.
func hit(target, at cell) bool {
	if target.Row < 0 || target.Row != at.Row {
		return false
	}
	d := target.Col - at.Col
	return d >= -1 && d <= 1
}
