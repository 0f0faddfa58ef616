package hud

import (
	"github.com/schmitthub/hudkit/internal/geometry"
)

// View is caller-supplied content for StyleCustomView. It renders to a
// block of terminal text.
type View interface {
	View() string
}

// Indicator is the content hosted in the bezel. It is one of *Activity,
// *Linear, *Doughnut, *Pie, *TextOnly or *Custom.
type Indicator interface {
	Style() Style
	indicator()
}

// Activity is an indeterminate spinner.
type Activity struct{}

func (*Activity) Style() Style { return StyleActivityIndicator }
func (*Activity) indicator()   {}

// TextOnly hosts no indicator; only the labels are shown.
type TextOnly struct{}

func (*TextOnly) Style() Style { return StyleTextLabel }
func (*TextOnly) indicator()   {}

// Custom hosts a caller-supplied view.
type Custom struct {
	View View
}

func (*Custom) Style() Style { return StyleCustomView }
func (*Custom) indicator()   {}

// Determinate is implemented by the three progress shapes.
type Determinate interface {
	Indicator
	Shape() geometry.Shape
	Fraction() float64
	ContentSize() geometry.Size
	// Paths returns the cached background and fill paths in content
	// coordinates (origin at the top-left of ContentSize).
	Paths() (background, fill geometry.Path)
}

// Intrinsic content sizes of the determinate indicators, in indicator units.
var (
	LinearContentSize   = geometry.Size{Width: 140, Height: 12}
	DoughnutContentSize = geometry.Size{Width: 60, Height: 60}
	PieContentSize      = geometry.Size{Width: 60, Height: 60}
)

// shape holds the geometry shared by the determinate indicators. Paths
// are rebuilt only when the fraction changes.
type shape struct {
	kind       geometry.Shape
	size       geometry.Size
	fraction   float64
	background geometry.Path
	fill       geometry.Path
}

func newShape(kind geometry.Shape, size geometry.Size, fraction float64) *shape {
	rect := geometry.RectOf(size)
	return &shape{
		kind:       kind,
		size:       size,
		fraction:   fraction,
		background: geometry.BuildBackgroundPath(kind, rect),
		fill:       geometry.BuildProgressPath(kind, rect, fraction),
	}
}

func (s *shape) Shape() geometry.Shape      { return s.kind }
func (s *shape) Fraction() float64          { return s.fraction }
func (s *shape) ContentSize() geometry.Size { return s.size }

func (s *shape) Paths() (background, fill geometry.Path) {
	return s.background, s.fill
}

// setFraction updates the fill. It reports whether anything changed.
func (s *shape) setFraction(f float64) bool {
	if f == s.fraction {
		return false
	}
	s.fraction = f
	s.fill = geometry.BuildProgressPath(s.kind, geometry.RectOf(s.size), f)
	return true
}

// Linear is a capsule-shaped progress bar.
type Linear struct{ *shape }

func (*Linear) Style() Style { return StyleLinearProgress }
func (*Linear) indicator()   {}

// Doughnut is a ring filled clockwise from twelve o'clock.
type Doughnut struct{ *shape }

func (*Doughnut) Style() Style { return StyleDoughnutProgress }
func (*Doughnut) indicator()   {}

// Pie is a disc filled clockwise from twelve o'clock.
type Pie struct{ *shape }

func (*Pie) Style() Style { return StylePieProgress }
func (*Pie) indicator()   {}

// newIndicator is the single place a Style becomes an Indicator.
func newIndicator(style Style, fraction float64, custom View) Indicator {
	switch style {
	case StyleLinearProgress:
		return &Linear{newShape(geometry.ShapeLinear, LinearContentSize, fraction)}
	case StyleDoughnutProgress:
		return &Doughnut{newShape(geometry.ShapeDoughnut, DoughnutContentSize, fraction)}
	case StylePieProgress:
		return &Pie{newShape(geometry.ShapePie, PieContentSize, fraction)}
	case StyleTextLabel:
		return &TextOnly{}
	case StyleCustomView:
		return &Custom{View: custom}
	default:
		return &Activity{}
	}
}

func setIndicatorFraction(ind Indicator, f float64) bool {
	switch v := ind.(type) {
	case *Linear:
		return v.setFraction(f)
	case *Doughnut:
		return v.setFraction(f)
	case *Pie:
		return v.setFraction(f)
	}
	return false
}
