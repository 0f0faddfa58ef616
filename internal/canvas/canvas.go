// Package canvas rasterises geometry paths onto terminal cells using
// braille patterns. Each cell holds a 2x4 dot matrix, so a cell grid of
// cols x rows has a dot resolution of 2*cols x 4*rows.
package canvas

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/schmitthub/hudkit/internal/geometry"
)

const (
	brailleBase = 0x2800
	dotsX       = 2
	dotsY       = 4
)

// dotBits maps a dot position inside a cell to its braille bit.
var dotBits = [dotsX][dotsY]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// Canvas is a braille raster. Each cell carries a single foreground color,
// taken from the last layer that set a dot in it.
type Canvas struct {
	cols, rows int
	dots       []uint8
	colors     []lipgloss.TerminalColor
}

// New creates a canvas of cols x rows cells. Non-positive sizes yield an
// empty canvas.
func New(cols, rows int) *Canvas {
	cols, rows = max(cols, 0), max(rows, 0)
	return &Canvas{
		cols:   cols,
		rows:   rows,
		dots:   make([]uint8, cols*rows),
		colors: make([]lipgloss.TerminalColor, cols*rows),
	}
}

// Size returns the canvas size in cells.
func (c *Canvas) Size() (cols, rows int) {
	return c.cols, c.rows
}

// DotSize returns the canvas size in dots.
func (c *Canvas) DotSize() (w, h int) {
	return c.cols * dotsX, c.rows * dotsY
}

// Clear removes every dot.
func (c *Canvas) Clear() {
	for i := range c.dots {
		c.dots[i] = 0
		c.colors[i] = nil
	}
}

// Set turns on the dot at (x, y) in dot coordinates.
func (c *Canvas) Set(x, y int, color lipgloss.TerminalColor) {
	w, h := c.DotSize()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	i := (y/dotsY)*c.cols + x/dotsX
	c.dots[i] |= dotBits[x%dotsX][y%dotsY]
	if color != nil {
		c.colors[i] = color
	}
}

// IsSet reports whether the dot at (x, y) is on.
func (c *Canvas) IsSet(x, y int) bool {
	w, h := c.DotSize()
	if x < 0 || y < 0 || x >= w || y >= h {
		return false
	}
	return c.dots[(y/dotsY)*c.cols+x/dotsX]&dotBits[x%dotsX][y%dotsY] != 0
}

// Count returns the number of dots that are on.
func (c *Canvas) Count() int {
	n := 0
	for _, d := range c.dots {
		for ; d != 0; d &= d - 1 {
			n++
		}
	}
	return n
}

// Fill sets every dot whose centre lies inside p under the nonzero rule.
// viewport is the region of path space mapped onto the whole canvas.
func (c *Canvas) Fill(p geometry.Path, viewport geometry.Rect, color lipgloss.TerminalColor) {
	if p.IsEmpty() || viewport.IsEmpty() {
		return
	}
	polys := p.Flatten(geometry.DefaultTolerance)
	c.each(viewport, func(x, y int, pt geometry.Point) {
		if geometry.ContainsFlat(polys, pt) {
			c.Set(x, y, color)
		}
	})
}

// Stroke sets every dot within width/2 of p's outline. Strokes thinner than
// a dot are widened so the outline stays visible.
func (c *Canvas) Stroke(p geometry.Path, viewport geometry.Rect, width float64, color lipgloss.TerminalColor) {
	if p.IsEmpty() || viewport.IsEmpty() {
		return
	}
	w, h := c.DotSize()
	if w == 0 || h == 0 {
		return
	}
	dot := math.Max(viewport.Width/float64(w), viewport.Height/float64(h))
	half := math.Max(width, dot) / 2

	polys := p.Flatten(geometry.DefaultTolerance)
	c.each(viewport, func(x, y int, pt geometry.Point) {
		if geometry.DistanceToEdge(polys, pt) <= half {
			c.Set(x, y, color)
		}
	})
}

func (c *Canvas) each(viewport geometry.Rect, fn func(x, y int, pt geometry.Point)) {
	w, h := c.DotSize()
	if w == 0 || h == 0 {
		return
	}
	sx := viewport.Width / float64(w)
	sy := viewport.Height / float64(h)
	for y := 0; y < h; y++ {
		py := viewport.Y + (float64(y)+0.5)*sy
		for x := 0; x < w; x++ {
			fn(x, y, geometry.Point{X: viewport.X + (float64(x)+0.5)*sx, Y: py})
		}
	}
}

// Lines renders the canvas one string per cell row. Empty cells render as
// spaces; colored cells are styled with their foreground color.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.rows)
	var b strings.Builder
	for row := 0; row < c.rows; row++ {
		b.Reset()
		for col := 0; col < c.cols; col++ {
			i := row*c.cols + col
			if c.dots[i] == 0 {
				b.WriteByte(' ')
				continue
			}
			glyph := string(rune(brailleBase + int(c.dots[i])))
			if c.colors[i] != nil {
				glyph = lipgloss.NewStyle().Foreground(c.colors[i]).Render(glyph)
			}
			b.WriteString(glyph)
		}
		lines[row] = b.String()
	}
	return lines
}

// String joins Lines with newlines.
func (c *Canvas) String() string {
	return strings.Join(c.Lines(), "\n")
}
