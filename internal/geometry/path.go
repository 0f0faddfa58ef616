// Package geometry builds the vector paths drawn by the progress indicators.
//
// Coordinates are y-down (terminal and screen convention). Angles are in
// radians measured from the +x axis; a clockwise sweep increases the angle,
// which is visually clockwise in y-down space.
package geometry

import "math"

// Point is a position in indicator space.
type Point struct {
	X, Y float64
}

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle with its origin at the top-left.
type Rect struct {
	X, Y, Width, Height float64
}

// RectOf returns a rectangle at the origin with the given size.
func RectOf(s Size) Rect {
	return Rect{Width: s.Width, Height: s.Height}
}

func (r Rect) MinX() float64 { return r.X }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MaxX() float64 { return r.X + r.Width }
func (r Rect) MaxY() float64 { return r.Y + r.Height }
func (r Rect) MidX() float64 { return r.X + r.Width/2 }
func (r Rect) MidY() float64 { return r.Y + r.Height/2 }

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: r.MidX(), Y: r.MidY()}
}

// Inset shrinks r by dx on the left and right and dy on the top and bottom.
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{
		X:      r.X + dx,
		Y:      r.Y + dy,
		Width:  r.Width - 2*dx,
		Height: r.Height - 2*dy,
	}
}

// IsEmpty reports whether r has no area.
func (r Rect) IsEmpty() bool {
	return !(r.Width > 0) || !(r.Height > 0)
}

// Op identifies a path segment kind.
type Op uint8

const (
	OpMove Op = iota
	OpLine
	OpArc
	OpClose
)

func (o Op) String() string {
	switch o {
	case OpMove:
		return "move"
	case OpLine:
		return "line"
	case OpArc:
		return "arc"
	case OpClose:
		return "close"
	default:
		return "unknown"
	}
}

// Segment is one path command. To is the end point for every op except
// OpClose. Arc segments also carry their circle and angular span.
type Segment struct {
	Op     Op
	To     Point
	Center Point
	Radius float64
	Start  float64
	Sweep  float64
}

// End returns the end angle of an arc segment.
func (s Segment) End() float64 {
	return s.Start + s.Sweep
}

// Path is an ordered list of subpaths. The zero value is an empty path.
type Path struct {
	segs    []Segment
	current Point
	start   Point
	open    bool
}

// MoveTo begins a new subpath at pt.
func (p *Path) MoveTo(pt Point) {
	p.segs = append(p.segs, Segment{Op: OpMove, To: pt})
	p.current = pt
	p.start = pt
	p.open = true
}

// LineTo adds a straight segment from the current point to pt.
func (p *Path) LineTo(pt Point) {
	if !p.open {
		p.MoveTo(pt)
		return
	}
	p.segs = append(p.segs, Segment{Op: OpLine, To: pt})
	p.current = pt
}

// Arc adds a circular arc from start to end. When the path has a current
// point a line joins it to the arc's first point; otherwise the arc starts
// a new subpath.
//
// A clockwise sweep is normalised into [0, 2π) past start, a
// counter-clockwise one into (-2π, 0], except that spans already within
// ±2π in the requested direction are kept as given.
func (p *Path) Arc(center Point, radius, start, end float64, clockwise bool) {
	sweep := end - start
	if clockwise && sweep < 0 {
		sweep += 2 * math.Pi * math.Ceil(-sweep/(2*math.Pi))
	} else if !clockwise && sweep > 0 {
		sweep -= 2 * math.Pi * math.Ceil(sweep/(2*math.Pi))
	}

	first := pointOnCircle(center, radius, start)
	if !p.open {
		p.MoveTo(first)
	} else if first != p.current {
		p.LineTo(first)
	}

	last := pointOnCircle(center, radius, start+sweep)
	p.segs = append(p.segs, Segment{
		Op:     OpArc,
		To:     last,
		Center: center,
		Radius: radius,
		Start:  start,
		Sweep:  sweep,
	})
	p.current = last
}

// Close ends the current subpath with a line back to its first point.
func (p *Path) Close() {
	if !p.open {
		return
	}
	p.segs = append(p.segs, Segment{Op: OpClose, To: p.start})
	p.current = p.start
	p.open = false
}

// Segments returns a copy of the path commands.
func (p Path) Segments() []Segment {
	out := make([]Segment, len(p.segs))
	copy(out, p.segs)
	return out
}

// IsEmpty reports whether the path has no commands.
func (p Path) IsEmpty() bool {
	return len(p.segs) == 0
}

// Arcs returns the arc segments of the path in order.
func (p Path) Arcs() []Segment {
	var arcs []Segment
	for _, s := range p.segs {
		if s.Op == OpArc {
			arcs = append(arcs, s)
		}
	}
	return arcs
}

func pointOnCircle(c Point, r, angle float64) Point {
	return Point{X: c.X + r*math.Cos(angle), Y: c.Y + r*math.Sin(angle)}
}
