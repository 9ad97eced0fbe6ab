package tui

import (
	"strings"
	"testing"

	"github.com/akyairhashvil/donut/internal/config"
	"github.com/akyairhashvil/donut/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
)

func TestViewDonut(t *testing.T) {
	m, _ := newTestModel(t, testutil.NewDuration().Seconds(4).Build())
	m = sized(t, m, 60, 30)
	view := m.View()
	for _, want := range []string{"00:00:04", config.PlayGlyph, config.ResetGlyph, config.TrackGlyph, "idle", "light"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to contain %q", want)
		}
	}
	if strings.Contains(view, config.RingGlyph) {
		t.Fatalf("expected no swept arc before the countdown starts")
	}
}

func TestViewArcGrowsAndPauseGlyph(t *testing.T) {
	m, _ := newTestModel(t, testutil.NewDuration().Seconds(4).Build())
	m = sized(t, m, 60, 30)
	m, _ = press(t, m, runes("p"))
	m, _ = tick(t, m, liveTick(m))
	view := m.View()
	if !strings.Contains(view, config.RingGlyph) {
		t.Fatalf("expected swept arc after one tick")
	}
	if !strings.Contains(view, config.PauseGlyph) {
		t.Fatalf("expected pause glyph while running")
	}
	if !strings.Contains(view, "00:00:03") {
		t.Fatalf("expected 00:00:03 in view")
	}
}

func TestRasterQuarterArc(t *testing.T) {
	m, _ := newTestModel(t, testutil.NewDuration().Seconds(4).Build())
	m = sized(t, m, 60, 30)
	m, _ = press(t, m, runes("p"))
	m, _ = tick(t, m, liveTick(m))
	grid := m.raster()
	rows, cols := m.donutSize()
	if len(grid) != rows || len(grid[0]) != cols {
		t.Fatalf("unexpected raster size %dx%d", len(grid), len(grid[0]))
	}
	// a quarter has elapsed: top-right cells are swept, top-left cells are not
	if grid[3][cols/2+2].kind != kindRing {
		t.Fatalf("expected swept cell right of twelve o'clock")
	}
	if grid[3][cols/2-3].kind != kindTrack {
		t.Fatalf("expected track cell left of twelve o'clock")
	}
	if grid[rows/2][cols/2].kind == kindRing {
		t.Fatalf("expected the hole to stay empty")
	}
}

func TestViewCompact(t *testing.T) {
	m, _ := newTestModel(t, testutil.NewDuration().Minutes(1).Build())
	m = sized(t, m, 40, 8)
	view := m.View()
	if !strings.Contains(view, "00:01:00") {
		t.Fatalf("expected countdown text in compact view")
	}
	if strings.Contains(view, config.ResetGlyph) {
		t.Fatalf("expected no ring controls in compact view")
	}
}

func TestViewSettingsPanel(t *testing.T) {
	m, _ := newTestModel(t, testutil.NewDuration().Minutes(1).Build())
	m = sized(t, m, 120, 30)
	m, _ = press(t, m, runes("s"))
	view := m.View()
	for _, want := range []string{"Settings", "Hours", "Minutes", "Seconds", "Theme", "01"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected panel to contain %q", want)
		}
	}
}

func TestViewSettingsPanelShowsWrappedSegment(t *testing.T) {
	m, _ := newTestModel(t, testutil.NewDuration().Minutes(5).Seconds(7).Build())
	m = sized(t, m, 120, 30)
	m, _ = press(t, m, runes("s"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	panel := m.renderSettings()
	for _, want := range []string{"‹ 59 ›", "‹ 05 ›", "‹ 07 ›", "‹ light ›"} {
		if !strings.Contains(panel, want) {
			t.Fatalf("expected panel to contain %q, got %q", want, panel)
		}
	}
}

func TestSplitLines(t *testing.T) {
	if got := splitLines(""); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
	if got := splitLines("a\nb"); len(got) != 2 {
		t.Fatalf("expected 2 lines, got %v", got)
	}
}

var _ tea.Model = Model{}
