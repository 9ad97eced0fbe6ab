package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/donut/internal/countdown"
	"github.com/akyairhashvil/donut/internal/models"
	"github.com/akyairhashvil/donut/internal/util"
)

// Settings panel fields, in focus order.
const (
	fieldHours = iota
	fieldMinutes
	fieldSeconds
	fieldTheme
	fieldCount
)

var fieldLabels = [fieldCount]string{"Hours", "Minutes", "Seconds", "Theme"}

type settingsPanel struct {
	visible bool
	focus   int
}

func (p *settingsPanel) toggle() {
	p.visible = !p.visible
}

func (p *settingsPanel) move(delta int) {
	p.focus = util.Wrap(p.focus+delta, 0, fieldCount-1)
}

// adjustField changes the focused field by delta. Time segments wrap within 0-59 and reset
// the countdown to the new duration.
func (m *Model) adjustField(delta int) {
	switch m.panel.focus {
	case fieldTheme:
		m.selectTheme(delta)
	default:
		seg := m.panel.focus
		d := m.timer.Duration()
		v := util.Wrap(d.Segments()[seg]+delta, models.SegmentMin, models.SegmentMax)
		m.timer.SetDuration(d.WithSegment(seg, v))
	}
}

func (m Model) renderSettings() string {
	total := m.timer.Duration().TotalSeconds()
	values := [fieldCount]string{
		countdown.HoursReadable(total),
		countdown.MinutesReadable(total),
		countdown.SecondsReadable(total),
		m.theme.Name,
	}
	var b strings.Builder
	b.WriteString(m.theme.Dim.Render("Settings"))
	b.WriteString("\n")
	for i := 0; i < fieldCount; i++ {
		line := fmt.Sprintf("%-8s ‹ %s ›", fieldLabels[i], values[i])
		if i == m.panel.focus {
			line = m.theme.Focused.Render(line)
		}
		b.WriteString("\n")
		b.WriteString(line)
	}
	return m.theme.Panel.Render(b.String())
}
