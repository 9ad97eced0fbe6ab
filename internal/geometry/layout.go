// Package geometry derives the donut layout from the viewport and the elapsed fraction.
package geometry

import (
	"math"

	"github.com/akyairhashvil/donut/internal/models"
)

// FullTurn is one revolution in radians.
const FullTurn = 2 * math.Pi

// Point is a position inside the square viewport, origin at its top-left corner.
type Point struct {
	X float64
	Y float64
}

// Layout is everything a renderer needs to paint one frame.
type Layout struct {
	Side            float64
	Radius          float64
	InnerRadius     float64
	OuterRadius     float64
	FontSize        float64
	ControlSize     float64
	ElapsedFraction float64
	EndAngle        float64

	Text      string
	TextBox   Box
	Countdown Point
	Reset     Point
	Play      Point
}

// Compute lays the donut out in bounds. It must run again whenever the bounds or the
// displayed text change, since the control positions depend on the measured text.
func Compute(b models.Bounds, elapsed float64, text string, m Measurer) Layout {
	if m == nil {
		m = DefaultMetrics()
	}
	side := math.Max(b.Side(), 0)
	r := side / 2
	elapsed = math.Min(math.Max(elapsed, 0), 1)

	l := Layout{
		Side:            side,
		Radius:          r,
		InnerRadius:     r / 2,
		OuterRadius:     r,
		FontSize:        r / 5,
		ElapsedFraction: elapsed,
		EndAngle:        elapsed * FullTurn,
		Text:            text,
	}
	l.ControlSize = l.FontSize
	l.TextBox = m.Measure(text, l.FontSize)
	l.Countdown = Point{X: r, Y: r + l.TextBox.Height/4}
	l.Reset = Point{X: r - l.TextBox.Width, Y: r + l.TextBox.Height/1.5}
	l.Play = Point{X: r, Y: r + l.ControlSize/1.5}
	return l
}

// Angle returns the clockwise angle from twelve o'clock of point p around the centre.
func (l Layout) Angle(p Point) float64 {
	a := math.Atan2(p.X-l.Radius, l.Radius-p.Y)
	if a < 0 {
		a += FullTurn
	}
	return a
}

// OnRing reports whether p lies inside the annulus.
func (l Layout) OnRing(p Point) bool {
	d := math.Hypot(p.X-l.Radius, p.Y-l.Radius)
	return d >= l.InnerRadius && d <= l.OuterRadius
}

// OnArc reports whether p lies on the swept part of the annulus.
func (l Layout) OnArc(p Point) bool {
	if l.EndAngle <= 0 || !l.OnRing(p) {
		return false
	}
	return l.EndAngle >= FullTurn || l.Angle(p) <= l.EndAngle
}
