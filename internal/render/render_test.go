package render

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akyairhashvil/donut/internal/geometry"
	"github.com/akyairhashvil/donut/internal/models"
)

func frame(elapsed float64, running bool) Frame {
	return Frame{
		Layout:     geometry.Compute(models.Bounds{Width: 1280, Height: 720}, elapsed, "01:05:23", nil),
		Foreground: "#000000",
		Background: "#ffffff",
		Running:    running,
	}
}

func TestSVGStructure(t *testing.T) {
	var buf bytes.Buffer
	f := frame(0.25, false)
	if err := SVG(&buf, f); err != nil {
		t.Fatalf("SVG failed: %v", err)
	}
	out := buf.String()
	wants := []string{
		`id="timer"`,
		`id="donut" width="100%" height="100%" viewBox="0 0 720 720" preserveAspectRatio="xMinYMin meet"`,
		`<g transform="translate(360,360)">`,
		`<path id="countdown-path" fill="#000000" d="` + f.Layout.Arc() + `"/>`,
		`id="countdown-text" x="360"`,
		`text-anchor="middle" fill="#000000" style="font-size: 72px;">01:05:23</text>`,
		`id="play-pause"`,
		`viewBox="0 0 100 100" width="72px" height="72px" fill="#000000"`,
		`id="reset"`,
		`<rect class="opacity-0" width="100%" height="100%"`,
	}
	for _, w := range wants {
		if !strings.Contains(out, w) {
			t.Fatalf("SVG missing %q\n%s", w, out)
		}
	}
	if !strings.Contains(out, `<g id="pause-button" visibility="hidden">`) {
		t.Fatalf("pause button should be hidden while stopped")
	}
}

func TestSVGRunningShowsPause(t *testing.T) {
	var buf bytes.Buffer
	if err := SVG(&buf, frame(0.5, true)); err != nil {
		t.Fatalf("SVG failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `<g id="play-button" visibility="hidden">`) {
		t.Fatalf("play button should be hidden while running")
	}
	if strings.Contains(out, `<g id="pause-button" visibility="hidden">`) {
		t.Fatalf("pause button should be visible while running")
	}
}

func TestSVGEscapesText(t *testing.T) {
	f := frame(0, false)
	f.Layout.Text = "<b>"
	var buf bytes.Buffer
	if err := SVG(&buf, f); err != nil {
		t.Fatalf("SVG failed: %v", err)
	}
	if strings.Contains(buf.String(), "<b>") {
		t.Fatalf("text was not escaped")
	}
}

func TestPDF(t *testing.T) {
	var buf bytes.Buffer
	if err := PDF(&buf, frame(0.6, true)); err != nil {
		t.Fatalf("PDF failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("output is not a PDF")
	}
}

func TestPDFRejectsBadInput(t *testing.T) {
	f := frame(0, false)
	f.Foreground = "nope"
	if err := PDF(&bytes.Buffer{}, f); err == nil {
		t.Fatalf("expected color error")
	}
	if err := PDF(&bytes.Buffer{}, Frame{Foreground: "#000", Background: "#fff"}); err == nil {
		t.Fatalf("expected empty layout error")
	}
}

func TestSectorPoints(t *testing.T) {
	if pts := sectorPoints(frame(0, false).Layout); pts != nil {
		t.Fatalf("expected no polygon at zero elapsed")
	}
	l := frame(1, false).Layout
	pts := sectorPoints(l)
	if len(pts) != 2*(arcSegments+1) {
		t.Fatalf("expected %d points, got %d", 2*(arcSegments+1), len(pts))
	}
	first := pts[0]
	if first.X != l.Radius || first.Y != 0 {
		t.Fatalf("sector should start at twelve o'clock, got %+v", first)
	}
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"donut.svg", "donut.PDF"} {
		path := filepath.Join(dir, name)
		if err := Export(path, frame(0.3, false)); err != nil {
			t.Fatalf("Export(%s) failed: %v", name, err)
		}
		info, err := os.Stat(path)
		if err != nil || info.Size() == 0 {
			t.Fatalf("expected %s to be written", name)
		}
	}
	if err := Export(filepath.Join(dir, "donut.png"), frame(0, false)); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}
