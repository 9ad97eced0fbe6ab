package geometry

import (
	"fmt"
	"math"
	"strconv"
)

const epsilon = 1e-6

// ViewBox is the viewBox attribute of the donut SVG.
func (l Layout) ViewBox() string {
	return fmt.Sprintf("0 0 %s %s", Num(l.Side), Num(l.Side))
}

// GroupTransform moves the arc origin to the centre of the square.
func (l Layout) GroupTransform() string {
	return fmt.Sprintf("translate(%s,%s)", Num(l.Radius), Num(l.Radius))
}

// FontSizePx is the CSS font size of the countdown text.
func (l Layout) FontSizePx() string {
	return Num(l.FontSize) + "px"
}

// Arc is the path of the swept annular sector, relative to the centre.
func (l Layout) Arc() string {
	return ArcPath(l.InnerRadius, l.OuterRadius, 0, l.EndAngle)
}

// ArcPath builds an SVG path for the annular sector between start and end (radians,
// clockwise from twelve o'clock), centred on the origin.
func ArcPath(inner, outer, start, end float64) string {
	if inner > outer {
		inner, outer = outer, inner
	}
	if end < start {
		start, end = end, start
	}
	sweep := end - start
	if outer <= 0 || sweep <= epsilon {
		return "M0,0Z"
	}
	if sweep >= FullTurn-epsilon {
		return fullRing(inner, outer)
	}
	large := 0
	if sweep > math.Pi {
		large = 1
	}
	ox0, oy0 := polar(outer, start)
	ox1, oy1 := polar(outer, end)
	if inner <= epsilon {
		return fmt.Sprintf("M%s,%sA%s,%s,0,%d,1,%s,%sL0,0Z",
			Num(ox0), Num(oy0), Num(outer), Num(outer), large, Num(ox1), Num(oy1))
	}
	ix1, iy1 := polar(inner, end)
	ix0, iy0 := polar(inner, start)
	return fmt.Sprintf("M%s,%sA%s,%s,0,%d,1,%s,%sL%s,%sA%s,%s,0,%d,0,%s,%sZ",
		Num(ox0), Num(oy0), Num(outer), Num(outer), large, Num(ox1), Num(oy1),
		Num(ix1), Num(iy1), Num(inner), Num(inner), large, Num(ix0), Num(iy0))
}

func fullRing(inner, outer float64) string {
	o, i := Num(outer), Num(inner)
	path := fmt.Sprintf("M0,-%sA%s,%s,0,1,1,0,%sA%s,%s,0,1,1,0,-%s", o, o, o, o, o, o, o)
	if inner > epsilon {
		path += fmt.Sprintf("M0,-%sA%s,%s,0,1,0,0,%sA%s,%s,0,1,0,0,-%s", i, i, i, i, i, i, i)
	}
	return path + "Z"
}

func polar(r, a float64) (float64, float64) {
	return r * math.Sin(a), -r * math.Cos(a)
}

// Num formats a coordinate with at most three decimals and no negative zero.
func Num(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
