package geometry

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// SVGData renders p as the value of an SVG path "d" attribute. Arcs of a
// full turn are split in two because a single SVG arc cannot close on
// itself.
func (p Path) SVGData() string {
	var b strings.Builder
	for _, s := range p.segs {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		switch s.Op {
		case OpMove:
			fmt.Fprintf(&b, "M %s %s", num(s.To.X), num(s.To.Y))
		case OpLine:
			fmt.Fprintf(&b, "L %s %s", num(s.To.X), num(s.To.Y))
		case OpArc:
			writeArc(&b, s)
		case OpClose:
			b.WriteString("Z")
		}
	}
	return b.String()
}

func writeArc(b *strings.Builder, s Segment) {
	parts := 1
	if math.Abs(s.Sweep) > math.Pi {
		parts = 2
	}
	sweepFlag := 0
	if s.Sweep > 0 {
		sweepFlag = 1
	}
	for i := 1; i <= parts; i++ {
		if i > 1 {
			b.WriteByte(' ')
		}
		to := pointOnCircle(s.Center, s.Radius, s.Start+s.Sweep*float64(i)/float64(parts))
		if i == parts {
			to = s.To
		}
		fmt.Fprintf(b, "A %s %s 0 0 %d %s %s",
			num(s.Radius), num(s.Radius), sweepFlag, num(to.X), num(to.Y))
	}
}

// SVGOptions controls SVGDocument output.
type SVGOptions struct {
	Fill       string
	Background string
}

// SVGDocument wraps a background and fill path into a standalone SVG image
// of the given size.
func SVGDocument(size Size, background, fill Path, opts SVGOptions) string {
	if opts.Fill == "" {
		opts.Fill = "#000000"
	}
	if opts.Background == "" {
		opts.Background = "none"
	}
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`,
		num(size.Width), num(size.Height), num(size.Width), num(size.Height))
	b.WriteByte('\n')
	if !background.IsEmpty() {
		fmt.Fprintf(&b, `  <path d="%s" fill="%s"/>`, background.SVGData(), opts.Background)
		b.WriteByte('\n')
	}
	if !fill.IsEmpty() {
		fmt.Fprintf(&b, `  <path d="%s" fill="%s" fill-rule="nonzero"/>`, fill.SVGData(), opts.Fill)
		b.WriteByte('\n')
	}
	b.WriteString("</svg>\n")
	return b.String()
}

func num(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
