package tui

import (
	"github.com/akyairhashvil/donut/internal/config"
	"github.com/charmbracelet/lipgloss"
)

// Theme is the set of styles derived from one foreground/background pair.
type Theme struct {
	Name       string
	Foreground string
	Background string
	Base       lipgloss.Style
	Ring       lipgloss.Style
	Track      lipgloss.Style
	Text       lipgloss.Style
	Control    lipgloss.Style
	Panel      lipgloss.Style
	Focused    lipgloss.Style
	Dim        lipgloss.Style
}

// NewTheme builds the styles for a palette.
func NewTheme(p config.Palette) Theme {
	fg := lipgloss.Color(p.Foreground)
	bg := lipgloss.Color(p.Background)
	base := lipgloss.NewStyle().Foreground(fg).Background(bg)
	return Theme{
		Name:       p.Name,
		Foreground: p.Foreground,
		Background: p.Background,
		Base:       base,
		Ring:       base,
		Track:      base.Faint(true),
		Text:       base.Bold(true),
		Control:    base.Bold(true),
		Panel:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(fg).Padding(0, 1).Width(config.SettingsPanelWidth),
		Focused:    lipgloss.NewStyle().Reverse(true).Bold(true),
		Dim:        lipgloss.NewStyle().Faint(true),
	}
}
