package tui

import (
	"log"
	"time"

	"github.com/akyairhashvil/donut/internal/config"
	"github.com/akyairhashvil/donut/internal/countdown"
	"github.com/akyairhashvil/donut/internal/geometry"
	"github.com/akyairhashvil/donut/internal/models"
	"github.com/akyairhashvil/donut/internal/scheduler"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// cell is a row/column position on screen.
type cell struct {
	Row int
	Col int
}

// Model is the root bubbletea model: one donut timer plus its settings panel.
type Model struct {
	timer    *countdown.Timer
	slot     *scheduler.Slot
	keys     KeyMap
	help     help.Model
	progress progress.Model
	measurer geometry.Measurer

	palettes []config.Palette
	themeIdx int
	theme    Theme
	panel    settingsPanel

	width  int
	height int
	layout geometry.Layout

	// screen positions of the controls, refreshed by relayout
	playCell  cell
	resetCell cell
}

// Options configures a Model.
type Options struct {
	Settings config.Settings
	Player   countdown.Player
	Interval time.Duration // zero means config.TickInterval
}

func New(opts Options) Model {
	s := opts.Settings
	palettes := s.Palettes
	if len(palettes) == 0 {
		palettes = config.BuiltinPalettes
	}
	interval := config.TickInterval
	if opts.Interval > 0 {
		interval = opts.Interval
	}
	slot := scheduler.NewSlot(interval)

	_, idx, ok := config.FindPalette(palettes, s.Theme)
	if !ok {
		idx = 0
	}
	palette := palettes[idx]
	if s.ForegroundColor != "" {
		palette.Foreground = s.ForegroundColor
	}
	if s.BackgroundColor != "" {
		palette.Background = s.BackgroundColor
	}

	m := Model{
		timer:    countdown.New(s.Duration, slot, opts.Player),
		slot:     slot,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		measurer: geometry.CellMetrics{Aspect: config.CellAspect},
		palettes: palettes,
		themeIdx: idx,
	}
	m.applyPalette(palette)
	m.timer.OnChange(phaseLogger(m.timer.Phase()))
	m.relayout()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.slot.Cmd()
}

// Timer exposes the countdown for callers that need its state after the program exits.
func (m Model) Timer() *countdown.Timer {
	return m.timer
}

func (m *Model) applyPalette(p config.Palette) {
	m.theme = NewTheme(p)
	m.progress = progress.New(
		progress.WithSolidFill(p.Foreground),
		progress.WithoutPercentage(),
		progress.WithWidth(config.ProgressWidth),
	)
}

func (m *Model) selectTheme(delta int) {
	if len(m.palettes) == 0 {
		return
	}
	m.themeIdx = (m.themeIdx + delta + len(m.palettes)) % len(m.palettes)
	m.applyPalette(m.palettes[m.themeIdx])
}

// donutBounds is the area, in rows, available for the donut.
func (m Model) donutBounds() models.Bounds {
	w := m.width
	if m.panel.visible {
		w -= config.SettingsPanelWidth + 4
	}
	h := m.height - m.chromeHeight()
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return models.Bounds{Width: float64(w) / config.CellAspect, Height: float64(h)}
}

// chromeHeight is the number of rows used by the status and help lines.
func (m Model) chromeHeight() int {
	return 1 + len(splitLines(m.help.View(m.keys)))
}

// relayout recomputes the geometry; run it after every change of size, state or text.
func (m *Model) relayout() {
	m.layout = geometry.Compute(m.donutBounds(), m.timer.ElapsedFraction(), m.timer.TimeReadable(), m.measurer)
	m.placeControls()
}

// compact reports whether the terminal is too small for the ring.
func (m Model) compact() bool {
	return m.layout.Side < config.MinDonutRows
}

func phaseLogger(initial models.Phase) func(models.TimerState) {
	prev := initial
	return func(s models.TimerState) {
		if s.Phase != prev {
			log.Printf("timer: %s -> %s (%ds left)", prev, s.Phase, s.RemainingSeconds)
			prev = s.Phase
		}
	}
}
