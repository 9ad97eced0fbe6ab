package render

import (
	"fmt"
	"io"
	"math"

	"github.com/akyairhashvil/donut/internal/geometry"
	"github.com/go-pdf/fpdf"
	"github.com/lucasb-eyer/go-colorful"
)

// arcSegments is the number of polygon edges used for a full turn.
const arcSegments = 180

// PDF writes f as a single square page.
func PDF(w io.Writer, f Frame) error {
	l := f.Layout
	if l.Side <= 0 {
		return fmt.Errorf("pdf: empty layout")
	}
	fg, err := rgb(f.Foreground)
	if err != nil {
		return err
	}
	bg, err := rgb(f.Background)
	if err != nil {
		return err
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: l.Side, Ht: l.Side},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pdf.SetFillColor(bg[0], bg[1], bg[2])
	pdf.Rect(0, 0, l.Side, l.Side, "F")

	pdf.SetFillColor(fg[0], fg[1], fg[2])
	pdf.SetDrawColor(fg[0], fg[1], fg[2])
	if pts := sectorPoints(l); len(pts) > 0 {
		pdf.Polygon(pts, "F")
	}

	pdf.SetTextColor(fg[0], fg[1], fg[2])
	pdf.SetFont("Courier", "B", l.FontSize)
	width := pdf.GetStringWidth(l.Text)
	pdf.Text(l.Countdown.X-width/2, l.Countdown.Y, l.Text)

	drawPlayPause(pdf, l.Play, l.ControlSize, f.Running)
	drawReset(pdf, l.Reset, l.ControlSize)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("pdf: %w", err)
	}
	return nil
}

func rgb(hex string) ([3]int, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return [3]int{}, fmt.Errorf("pdf: color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return [3]int{int(r), int(g), int(b)}, nil
}

// sectorPoints approximates the swept annular sector in page coordinates.
func sectorPoints(l geometry.Layout) []fpdf.PointType {
	if l.EndAngle <= 0 {
		return nil
	}
	steps := int(math.Ceil(l.EndAngle / geometry.FullTurn * arcSegments))
	if steps < 1 {
		steps = 1
	}
	pts := make([]fpdf.PointType, 0, 2*(steps+1))
	at := func(r, a float64) fpdf.PointType {
		return fpdf.PointType{X: l.Radius + r*math.Sin(a), Y: l.Radius - r*math.Cos(a)}
	}
	for i := 0; i <= steps; i++ {
		pts = append(pts, at(l.OuterRadius, l.EndAngle*float64(i)/float64(steps)))
	}
	for i := steps; i >= 0; i-- {
		pts = append(pts, at(l.InnerRadius, l.EndAngle*float64(i)/float64(steps)))
	}
	return pts
}

// scaled maps a point of the 100×100 control viewBox to the page.
func scaled(origin geometry.Point, size, x, y float64) fpdf.PointType {
	return fpdf.PointType{X: origin.X + x*size/100, Y: origin.Y + y*size/100}
}

func drawPlayPause(pdf *fpdf.Fpdf, origin geometry.Point, size float64, running bool) {
	if running {
		pdf.Rect(origin.X+22*size/100, origin.Y+12*size/100, 20*size/100, 76*size/100, "F")
		pdf.Rect(origin.X+58*size/100, origin.Y+12*size/100, 20*size/100, 76*size/100, "F")
		return
	}
	pdf.Polygon([]fpdf.PointType{
		scaled(origin, size, 22, 12),
		scaled(origin, size, 84, 50),
		scaled(origin, size, 22, 88),
	}, "F")
}

func drawReset(pdf *fpdf.Fpdf, origin geometry.Point, size float64) {
	pdf.SetLineWidth(size / 10)
	c := scaled(origin, size, 50, 50)
	pdf.Circle(c.X, c.Y, 27*size/100, "D")
	pdf.Polygon([]fpdf.PointType{
		scaled(origin, size, 50, 8),
		scaled(origin, size, 66, 22),
		scaled(origin, size, 50, 36),
	}, "F")
}
