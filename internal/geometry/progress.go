package geometry

import (
	"fmt"
	"math"
	"strings"
)

// Shape selects the geometry of a determinate progress indicator.
type Shape int

const (
	ShapeLinear Shape = iota
	ShapeDoughnut
	ShapePie
)

const (
	// LinearInset is removed from every side of a linear indicator's rect
	// before the fill is built.
	LinearInset = 1.5
	// RingThickness is the width of the doughnut ring.
	RingThickness = 3.0
)

func (s Shape) String() string {
	switch s {
	case ShapeLinear:
		return "linear"
	case ShapeDoughnut:
		return "doughnut"
	case ShapePie:
		return "pie"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// ParseShape maps a case-insensitive name to a Shape.
func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "linear", "bar":
		return ShapeLinear, nil
	case "doughnut", "donut", "ring":
		return ShapeDoughnut, nil
	case "pie":
		return ShapePie, nil
	default:
		return 0, fmt.Errorf("unknown progress shape %q (want linear, doughnut or pie)", name)
	}
}

// BuildProgressPath returns the fill path for fraction f of shape drawn in
// rect. The result is empty when nothing should be drawn.
func BuildProgressPath(shape Shape, rect Rect, f float64) Path {
	switch shape {
	case ShapeDoughnut:
		return DoughnutPath(rect, f)
	case ShapePie:
		return PiePath(rect, f)
	default:
		return LinearPath(rect, f)
	}
}

// BuildBackgroundPath returns the track path drawn behind the fill: a
// capsule for linear indicators and the inscribed circle for the others.
func BuildBackgroundPath(shape Shape, rect Rect) Path {
	if shape == ShapeLinear {
		return CapsulePath(rect)
	}
	return CirclePath(rect)
}

// LinearPath builds the filled portion of a capsule-shaped bar. The fill
// follows the rounded caps: while the amount is inside a cap the leading
// edge is the chord of that cap's circle.
func LinearPath(rect Rect, f float64) Path {
	var p Path
	r := rect.Inset(LinearInset, LinearInset)
	if r.IsEmpty() || !(f > 0) {
		return p
	}
	f = math.Min(f, 1)

	w := r.Width
	radius := r.Height / 2
	x0, y0 := r.X, r.Y
	cy := y0 + radius
	amount := w * f
	left := Point{X: x0 + radius, Y: cy}
	right := Point{X: x0 + w - radius, Y: cy}

	if amount >= w {
		return CapsulePath(r)
	}

	switch {
	case amount < radius:
		a := safeAcos((radius - amount) / radius)

		p.MoveTo(Point{X: x0, Y: cy})
		p.Arc(left, radius, math.Pi, math.Pi+a, true)
		p.LineTo(Point{X: x0 + amount, Y: cy})
		p.Close()

		p.MoveTo(Point{X: x0, Y: cy})
		p.Arc(left, radius, math.Pi, math.Pi-a, false)
		p.LineTo(Point{X: x0 + amount, Y: cy})
		p.Close()

	case amount <= w-radius:
		p.MoveTo(Point{X: x0, Y: cy})
		p.Arc(left, radius, math.Pi, 1.5*math.Pi, true)
		p.LineTo(Point{X: x0 + amount, Y: y0})
		p.LineTo(Point{X: x0 + amount, Y: cy})
		p.Close()

		p.MoveTo(Point{X: x0, Y: cy})
		p.Arc(left, radius, math.Pi, 0.5*math.Pi, false)
		p.LineTo(Point{X: x0 + amount, Y: y0 + r.Height})
		p.LineTo(Point{X: x0 + amount, Y: cy})
		p.Close()

	default:
		a := safeAcos((amount - (w - radius)) / radius)

		p.MoveTo(Point{X: x0, Y: cy})
		p.Arc(left, radius, math.Pi, 1.5*math.Pi, true)
		p.LineTo(Point{X: x0 + w - radius, Y: y0})
		p.Arc(right, radius, 1.5*math.Pi, 2*math.Pi-a, true)
		p.LineTo(Point{X: x0 + amount, Y: cy})
		p.Close()

		p.MoveTo(Point{X: x0, Y: cy})
		p.Arc(left, radius, math.Pi, 0.5*math.Pi, false)
		p.LineTo(Point{X: x0 + w - radius, Y: y0 + r.Height})
		p.Arc(right, radius, 0.5*math.Pi, a, false)
		p.LineTo(Point{X: x0 + amount, Y: cy})
		p.Close()
	}
	return p
}

// SectorAngles returns the start and end angles of a ring or pie filled to
// fraction f, starting at twelve o'clock.
func SectorAngles(f float64) (start, end float64) {
	start = -math.Pi / 2
	end = 2*math.Pi*f - math.Pi/2
	return start, end
}

// DoughnutPath builds a ring sector of thickness RingThickness. The inner
// sector is wound in reverse so the nonzero rule leaves the centre unfilled.
func DoughnutPath(rect Rect, f float64) Path {
	var p Path
	if rect.IsEmpty() || !(f > 0) {
		return p
	}
	f = math.Min(f, 1)

	c := rect.Center()
	outer := rect.Width / 2
	inner := outer - RingThickness
	start, end := SectorAngles(f)

	p.MoveTo(c)
	p.Arc(c, outer, start, end, true)
	p.Close()

	if inner > 0 {
		p.MoveTo(c)
		p.Arc(c, inner, end, start, false)
		p.Close()
	}
	return p
}

// PiePath builds a filled circular sector.
func PiePath(rect Rect, f float64) Path {
	var p Path
	if rect.IsEmpty() || !(f > 0) {
		return p
	}
	f = math.Min(f, 1)

	c := rect.Center()
	start, end := SectorAngles(f)
	p.MoveTo(c)
	p.Arc(c, rect.Width/2, start, end, true)
	p.Close()
	return p
}

// CapsulePath builds a rectangle whose short sides are semicircles.
func CapsulePath(rect Rect) Path {
	var p Path
	if rect.IsEmpty() {
		return p
	}
	radius := math.Min(rect.Width, rect.Height) / 2
	if rect.Width >= rect.Height {
		left := Point{X: rect.X + radius, Y: rect.MidY()}
		right := Point{X: rect.MaxX() - radius, Y: rect.MidY()}
		p.MoveTo(Point{X: left.X, Y: rect.Y})
		p.LineTo(Point{X: right.X, Y: rect.Y})
		p.Arc(right, radius, -math.Pi/2, math.Pi/2, true)
		p.LineTo(Point{X: left.X, Y: rect.MaxY()})
		p.Arc(left, radius, math.Pi/2, 1.5*math.Pi, true)
	} else {
		top := Point{X: rect.MidX(), Y: rect.Y + radius}
		bottom := Point{X: rect.MidX(), Y: rect.MaxY() - radius}
		p.MoveTo(Point{X: rect.MaxX(), Y: top.Y})
		p.LineTo(Point{X: rect.MaxX(), Y: bottom.Y})
		p.Arc(bottom, radius, 0, math.Pi, true)
		p.LineTo(Point{X: rect.X, Y: top.Y})
		p.Arc(top, radius, math.Pi, 2*math.Pi, true)
	}
	p.Close()
	return p
}

// CirclePath builds the circle inscribed in rect.
func CirclePath(rect Rect) Path {
	var p Path
	if rect.IsEmpty() {
		return p
	}
	radius := math.Min(rect.Width, rect.Height) / 2
	p.Arc(rect.Center(), radius, -math.Pi/2, 1.5*math.Pi, true)
	p.Close()
	return p
}

func safeAcos(x float64) float64 {
	a := math.Acos(x)
	if math.IsNaN(a) {
		return 0
	}
	return a
}
