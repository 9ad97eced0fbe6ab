package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/donut/internal/config"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	body := m.donutView()
	if m.compact() {
		body = m.compactView()
	}
	if m.panel.visible {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", m.renderSettings())
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, m.statusLine(), m.help.View(m.keys))
}

// compactView is used when the ring would not fit: text, a progress bar and the control glyph.
func (m Model) compactView() string {
	glyph := config.PlayGlyph
	if m.timer.Running() {
		glyph = config.PauseGlyph
	}
	return fmt.Sprintf("%s %s %s",
		m.theme.Text.Render(m.timer.TimeReadable()),
		m.progress.ViewAs(m.timer.ElapsedFraction()),
		m.theme.Control.Render(glyph),
	)
}

func (m Model) statusLine() string {
	return m.theme.Dim.Render(fmt.Sprintf("%s · %s · %s", m.timer.Phase(), m.theme.Name, m.timer.Duration()))
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
