package geometry

import "math"

// DefaultTolerance is the maximum distance between a flattened arc and the
// true circle, in indicator units.
const DefaultTolerance = 0.05

// Polygon is one flattened subpath. It is implicitly closed.
type Polygon []Point

// Flatten converts p into polygons, approximating arcs by chords no further
// than tolerance from the circle.
func (p Path) Flatten(tolerance float64) []Polygon {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	var (
		polys []Polygon
		cur   Polygon
	)
	flush := func() {
		if len(cur) > 0 {
			polys = append(polys, cur)
		}
		cur = nil
	}

	for _, s := range p.segs {
		switch s.Op {
		case OpMove:
			flush()
			cur = Polygon{s.To}
		case OpLine:
			cur = append(cur, s.To)
		case OpArc:
			n := arcSteps(s.Radius, s.Sweep, tolerance)
			for i := 1; i <= n; i++ {
				a := s.Start + s.Sweep*float64(i)/float64(n)
				cur = append(cur, pointOnCircle(s.Center, s.Radius, a))
			}
		case OpClose:
			flush()
		}
	}
	flush()
	return polys
}

func arcSteps(radius, sweep, tolerance float64) int {
	if radius <= 0 || sweep == 0 {
		return 1
	}
	step := math.Pi / 4
	if tolerance < radius {
		step = math.Min(step, 2*math.Acos(1-tolerance/radius))
	}
	n := int(math.Ceil(math.Abs(sweep) / step))
	if n < 1 {
		n = 1
	}
	return n
}

// Contains reports whether pt lies inside p under the nonzero winding rule.
func (p Path) Contains(pt Point) bool {
	return windingNumber(p.Flatten(DefaultTolerance), pt) != 0
}

// ContainsFlat is Contains over polygons already produced by Flatten, for
// callers testing many points against one path.
func ContainsFlat(polys []Polygon, pt Point) bool {
	return windingNumber(polys, pt) != 0
}

func windingNumber(polys []Polygon, pt Point) int {
	wn := 0
	for _, poly := range polys {
		n := len(poly)
		if n < 3 {
			continue
		}
		for i := 0; i < n; i++ {
			a := poly[i]
			b := poly[(i+1)%n]
			if a.Y <= pt.Y {
				if b.Y > pt.Y && cross(a, b, pt) > 0 {
					wn++
				}
			} else if b.Y <= pt.Y && cross(a, b, pt) < 0 {
				wn--
			}
		}
	}
	return wn
}

func cross(a, b, p Point) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (p.X-a.X)*(b.Y-a.Y)
}

// DistanceToEdge returns the distance from pt to the nearest edge of polys,
// including the implicit closing edges.
func DistanceToEdge(polys []Polygon, pt Point) float64 {
	best := math.Inf(1)
	for _, poly := range polys {
		n := len(poly)
		if n == 1 {
			best = math.Min(best, math.Hypot(pt.X-poly[0].X, pt.Y-poly[0].Y))
			continue
		}
		for i := 0; i < n; i++ {
			best = math.Min(best, segmentDistance(poly[i], poly[(i+1)%n], pt))
		}
	}
	return best
}

func segmentDistance(a, b, p Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / l2
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(p.X-(a.X+t*dx), p.Y-(a.Y+t*dy))
}

// Bounds returns the exact bounding box of p, including the extremes of
// arcs. An empty path has an empty rect.
func (p Path) Bounds() Rect {
	first := true
	var minX, minY, maxX, maxY float64
	add := func(q Point) {
		if first {
			minX, maxX, minY, maxY = q.X, q.X, q.Y, q.Y
			first = false
			return
		}
		minX = math.Min(minX, q.X)
		maxX = math.Max(maxX, q.X)
		minY = math.Min(minY, q.Y)
		maxY = math.Max(maxY, q.Y)
	}

	for _, s := range p.segs {
		if s.Op != OpArc {
			add(s.To)
			continue
		}
		add(pointOnCircle(s.Center, s.Radius, s.Start))
		add(s.To)
		lo, hi := s.Start, s.End()
		if lo > hi {
			lo, hi = hi, lo
		}
		// Axis extremes fall on multiples of π/2 inside the span.
		for k := math.Ceil(lo / (math.Pi / 2)); k*math.Pi/2 <= hi; k++ {
			add(pointOnCircle(s.Center, s.Radius, k*math.Pi/2))
		}
	}
	if first {
		return Rect{}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
