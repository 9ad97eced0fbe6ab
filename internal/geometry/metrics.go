package geometry

import "github.com/charmbracelet/x/ansi"

// Box is the extent of a measured text run or control.
type Box struct {
	Width  float64
	Height float64
}

// Measurer reports the rendered extent of text at a font size.
type Measurer interface {
	Measure(text string, fontSize float64) Box
}

// EstimateMetrics approximates glyph bounds for a monospaced face: every display column
// advances AdvanceRatio × font size and a line is LineHeightRatio × font size tall.
type EstimateMetrics struct {
	AdvanceRatio    float64
	LineHeightRatio float64
}

// DefaultMetrics fits common monospace faces.
func DefaultMetrics() EstimateMetrics {
	return EstimateMetrics{AdvanceRatio: 0.6, LineHeightRatio: 1.15}
}

func (m EstimateMetrics) Measure(text string, fontSize float64) Box {
	return Box{
		Width:  float64(ansi.StringWidth(text)) * fontSize * m.AdvanceRatio,
		Height: fontSize * m.LineHeightRatio,
	}
}

// CellMetrics measures text in terminal rows: one row tall, and a column is 1/Aspect rows wide.
type CellMetrics struct {
	Aspect float64
}

func (m CellMetrics) Measure(text string, _ float64) Box {
	aspect := m.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	return Box{
		Width:  float64(ansi.StringWidth(text)) / aspect,
		Height: 1,
	}
}
