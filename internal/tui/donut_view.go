package tui

import (
	"strings"

	"github.com/akyairhashvil/donut/internal/config"
	"github.com/akyairhashvil/donut/internal/geometry"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// cellKind decides the style of one raster cell.
type cellKind int

const (
	kindBlank cellKind = iota
	kindTrack
	kindRing
	kindText
	kindControl
)

type rasterCell struct {
	glyph string
	kind  cellKind
}

// donutArea is the width in columns available to the donut.
func (m Model) donutArea() int {
	w := m.width
	if m.panel.visible {
		w -= config.SettingsPanelWidth + 4
	}
	if w < 0 {
		return 0
	}
	return w
}

// donutSize returns the raster size in rows and columns.
func (m Model) donutSize() (rows, cols int) {
	rows = int(m.layout.Side)
	cols = int(m.layout.Side * config.CellAspect)
	return rows, cols
}

// offsetX centres the raster in the donut area.
func (m Model) offsetX() int {
	_, cols := m.donutSize()
	off := (m.donutArea() - cols) / 2
	if off < 0 {
		return 0
	}
	return off
}

// toCell maps a layout point to the screen cell that contains it.
func (m Model) toCell(p geometry.Point) cell {
	return cell{Row: int(p.Y), Col: m.offsetX() + int(p.X*config.CellAspect)}
}

// placeControls records where the play/pause and reset glyphs land; compact views have none.
func (m *Model) placeControls() {
	if m.compact() {
		m.playCell = cell{Row: -1, Col: -1}
		m.resetCell = cell{Row: -1, Col: -1}
		return
	}
	m.playCell = m.toCell(m.layout.Play)
	m.resetCell = m.toCell(m.layout.Reset)
}

// raster samples the layout at the centre of every cell and overlays text and controls.
func (m Model) raster() [][]rasterCell {
	rows, cols := m.donutSize()
	grid := make([][]rasterCell, rows)
	for r := range grid {
		grid[r] = make([]rasterCell, cols)
		for c := range grid[r] {
			p := geometry.Point{X: (float64(c) + 0.5) / config.CellAspect, Y: float64(r) + 0.5}
			switch {
			case m.layout.OnArc(p):
				grid[r][c] = rasterCell{config.RingGlyph, kindRing}
			case m.layout.OnRing(p):
				grid[r][c] = rasterCell{config.TrackGlyph, kindTrack}
			default:
				grid[r][c] = rasterCell{" ", kindBlank}
			}
		}
	}

	put := func(row, col int, glyph string, kind cellKind) {
		if row < 0 || row >= rows || col < 0 || col >= cols {
			return
		}
		grid[row][col] = rasterCell{glyph, kind}
	}

	text := m.layout.Text
	textRow := int(m.layout.Countdown.Y - m.layout.TextBox.Height/2)
	textCol := int(m.layout.Countdown.X*config.CellAspect) - ansi.StringWidth(text)/2
	for i, ch := range []rune(text) {
		put(textRow, textCol+i, string(ch), kindText)
	}

	off := m.offsetX()
	play := m.toCell(m.layout.Play)
	glyph := config.PlayGlyph
	if m.timer.Running() {
		glyph = config.PauseGlyph
	}
	put(play.Row, play.Col-off, glyph, kindControl)
	reset := m.toCell(m.layout.Reset)
	put(reset.Row, reset.Col-off, config.ResetGlyph, kindControl)
	return grid
}

func (m Model) styleFor(k cellKind) lipgloss.Style {
	switch k {
	case kindRing:
		return m.theme.Ring
	case kindTrack:
		return m.theme.Track
	case kindText:
		return m.theme.Text
	case kindControl:
		return m.theme.Control
	default:
		return m.theme.Base
	}
}

// donutView renders the raster row by row, styling runs of equal kind together.
func (m Model) donutView() string {
	grid := m.raster()
	area := m.donutArea()
	off := m.offsetX()
	lines := make([]string, 0, len(grid))
	for _, row := range grid {
		var b strings.Builder
		b.WriteString(strings.Repeat(" ", off))
		start := 0
		for i := 1; i <= len(row); i++ {
			if i < len(row) && row[i].kind == row[start].kind {
				continue
			}
			var run strings.Builder
			for _, c := range row[start:i] {
				run.WriteString(c.glyph)
			}
			b.WriteString(m.styleFor(row[start].kind).Render(run.String()))
			start = i
		}
		if pad := area - off - len(row); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}
