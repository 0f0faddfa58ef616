package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	linearRect = Rect{Width: 140, Height: 12}
	ringRect   = Rect{Width: 60, Height: 60}
)

// ---------------------------------------------------------------------------
// Linear
// ---------------------------------------------------------------------------

func TestLinearPath_EmptyAtZero(t *testing.T) {
	assert.True(t, LinearPath(linearRect, 0).IsEmpty())
	assert.True(t, LinearPath(linearRect, -0.5).IsEmpty())
	assert.True(t, LinearPath(linearRect, math.NaN()).IsEmpty())
}

func TestLinearPath_DegenerateRect(t *testing.T) {
	assert.True(t, LinearPath(Rect{Width: 2, Height: 2}, 0.5).IsEmpty())
	assert.True(t, LinearPath(Rect{}, 1).IsEmpty())
}

func TestLinearPath_FullIsInsetCapsule(t *testing.T) {
	full := LinearPath(linearRect, 1)
	want := CapsulePath(linearRect.Inset(LinearInset, LinearInset))
	assert.Equal(t, want.Segments(), full.Segments())

	over := LinearPath(linearRect, 3)
	assert.Equal(t, want.Segments(), over.Segments())
}

func TestLinearPath_Regimes(t *testing.T) {
	// Inset rect: x0=1.5, w=137, h=9, R=4.5.
	tests := []struct {
		name     string
		fraction float64
		arcs     int
	}{
		{"inside left cap", 2.0 / 137, 2},
		{"straight section", 0.5, 2},
		{"inside right cap", 135.0 / 137, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := LinearPath(linearRect, tt.fraction)
			require.False(t, p.IsEmpty())
			assert.Len(t, p.Arcs(), tt.arcs)

			var moves, closes int
			for _, s := range p.Segments() {
				switch s.Op {
				case OpMove:
					moves++
				case OpClose:
					closes++
				}
			}
			assert.Equal(t, 2, moves, "upper and lower halves")
			assert.Equal(t, 2, closes)
		})
	}
}

func TestLinearPath_LeftCapChord(t *testing.T) {
	// amount = 2 inside a cap of radius 4.5: a = acos(2.5/4.5).
	p := LinearPath(linearRect, 2.0/137)
	arcs := p.Arcs()
	require.Len(t, arcs, 2)

	a := math.Acos(2.5 / 4.5)
	assert.InDelta(t, math.Pi, arcs[0].Start, 1e-9)
	assert.InDelta(t, a, arcs[0].Sweep, 1e-9)
	assert.InDelta(t, -a, arcs[1].Sweep, 1e-9)

	// The leading edge sits at x0+amount.
	b := p.Bounds()
	assert.InDelta(t, 1.5, b.MinX(), 1e-6)
	assert.InDelta(t, 3.5, b.MaxX(), 1e-6)
}

func TestLinearPath_RegimeBoundaryIsStraight(t *testing.T) {
	// amount == R falls into the straight-section regime.
	p := LinearPath(linearRect, 4.5/137)
	arcs := p.Arcs()
	require.Len(t, arcs, 2)
	assert.InDelta(t, math.Pi/2, arcs[0].Sweep, 1e-9)
	assert.InDelta(t, -math.Pi/2, arcs[1].Sweep, 1e-9)
}

func TestLinearPath_MonotonicExtent(t *testing.T) {
	prev := 0.0
	for i := 1; i <= 100; i++ {
		b := LinearPath(linearRect, float64(i)/100).Bounds()
		assert.GreaterOrEqual(t, b.MaxX()+1e-9, prev, "fraction %d%%", i)
		prev = b.MaxX()
	}
	assert.InDelta(t, linearRect.MaxX()-LinearInset, prev, 1e-6)
}

func TestLinearPath_FillsBelowLeadingEdge(t *testing.T) {
	p := LinearPath(linearRect, 0.5)
	cy := linearRect.MidY()
	assert.True(t, p.Contains(Point{X: 20, Y: cy - 2}))
	assert.True(t, p.Contains(Point{X: 20, Y: cy + 2}))
	assert.False(t, p.Contains(Point{X: 100, Y: cy}))
	assert.False(t, p.Contains(Point{X: 20, Y: 0.5}), "outside inset")
}

// ---------------------------------------------------------------------------
// Doughnut and pie
// ---------------------------------------------------------------------------

func TestSectorAngles(t *testing.T) {
	start, end := SectorAngles(0.25)
	assert.InDelta(t, -math.Pi/2, start, 1e-12)
	assert.InDelta(t, 0, end, 1e-12)

	_, end = SectorAngles(1)
	assert.InDelta(t, 1.5*math.Pi, end, 1e-12)
}

func TestPiePath(t *testing.T) {
	assert.True(t, PiePath(ringRect, 0).IsEmpty())

	p := PiePath(ringRect, 0.25)
	arcs := p.Arcs()
	require.Len(t, arcs, 1)
	assert.InDelta(t, 30, arcs[0].Radius, 1e-12)
	assert.InDelta(t, math.Pi/2, arcs[0].Sweep, 1e-9)

	// Upper-right quadrant filled, the rest empty.
	assert.True(t, p.Contains(Point{X: 40, Y: 20}))
	assert.False(t, p.Contains(Point{X: 20, Y: 20}))
	assert.False(t, p.Contains(Point{X: 40, Y: 40}))
}

func TestPiePath_ClampsAboveOne(t *testing.T) {
	assert.Equal(t, PiePath(ringRect, 1).Segments(), PiePath(ringRect, 4).Segments())
}

func TestDoughnutPath(t *testing.T) {
	assert.True(t, DoughnutPath(ringRect, 0).IsEmpty())

	p := DoughnutPath(ringRect, 0.5)
	arcs := p.Arcs()
	require.Len(t, arcs, 2)

	outer, inner := arcs[0], arcs[1]
	assert.InDelta(t, 30, outer.Radius, 1e-12)
	assert.InDelta(t, 27, inner.Radius, 1e-12)
	assert.InDelta(t, math.Pi, outer.Sweep, 1e-9)
	assert.InDelta(t, -math.Pi, inner.Sweep, 1e-9, "inner wound in reverse")
	assert.InDelta(t, outer.End(), inner.Start, 1e-9)

	// Ring on the right half, hollow centre, left half empty.
	assert.True(t, p.Contains(Point{X: 58.5, Y: 30}))
	assert.False(t, p.Contains(Point{X: 45, Y: 30}), "inside hole")
	assert.False(t, p.Contains(Point{X: 1.5, Y: 30}), "unfilled half")
}

func TestDoughnutPath_FullRing(t *testing.T) {
	p := DoughnutPath(ringRect, 1)
	arcs := p.Arcs()
	require.Len(t, arcs, 2)
	assert.InDelta(t, 2*math.Pi, arcs[0].Sweep, 1e-9)
	assert.InDelta(t, -2*math.Pi, arcs[1].Sweep, 1e-9)
	assert.False(t, p.Contains(Point{X: 20, Y: 22}), "inside hole")
	assert.True(t, p.Contains(Point{X: 1.5, Y: 30}))
}

func TestSectorSweepMonotonic(t *testing.T) {
	for _, shape := range []Shape{ShapeDoughnut, ShapePie} {
		prev := 0.0
		for i := 1; i <= 50; i++ {
			arcs := BuildProgressPath(shape, ringRect, float64(i)/50).Arcs()
			require.NotEmpty(t, arcs)
			assert.Greater(t, arcs[0].Sweep, prev, "%s at %d/50", shape, i)
			prev = arcs[0].Sweep
		}
	}
}

// ---------------------------------------------------------------------------
// Backgrounds and helpers
// ---------------------------------------------------------------------------

func TestBuildBackgroundPath(t *testing.T) {
	linear := BuildBackgroundPath(ShapeLinear, linearRect).Bounds()
	assert.InDelta(t, 140, linear.Width, 1e-6)
	assert.InDelta(t, 12, linear.Height, 1e-6)

	ring := BuildBackgroundPath(ShapeDoughnut, Rect{Width: 60, Height: 40}).Bounds()
	assert.InDelta(t, 40, ring.Width, 1e-3, "inscribed circle uses the short side")
	assert.InDelta(t, 40, ring.Height, 1e-3)
}

func TestParseShape(t *testing.T) {
	for in, want := range map[string]Shape{
		"linear":   ShapeLinear,
		"Bar":      ShapeLinear,
		"doughnut": ShapeDoughnut,
		" donut ":  ShapeDoughnut,
		"pie":      ShapePie,
	} {
		got, err := ParseShape(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseShape("hexagon")
	assert.ErrorContains(t, err, "hexagon")
}
