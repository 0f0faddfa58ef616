package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/schmitthub/hudkit/internal/canvas"
	"github.com/schmitthub/hudkit/internal/geometry"
	"github.com/schmitthub/hudkit/internal/hud"
)

// Cell sizes the determinate indicators are rasterised at. A braille cell
// holds 2x4 dots, so both keep roughly the aspect of their path space.
var (
	LinearCells   = hud.Size{W: 23, H: 1}
	CircularCells = hud.Size{W: 10, H: 5}
)

const (
	// minVisibleOpacity is the opacity below which a bezel is not drawn.
	minVisibleOpacity = 0.02
	// borderCells is the space the rounded border takes on each axis.
	borderCells = 2
)

// Bezel renders HUDs as bordered boxes of terminal text.
type Bezel struct {
	// Dark selects the default colours for a dark terminal.
	Dark bool
	// Spinner is the current frame of the activity indicator.
	Spinner string
}

// Rendered is a bezel ready to be composited.
type Rendered struct {
	Block string
	Frame hud.Rect
	// Background dims the host behind the bezel when not clear.
	Background lipgloss.TerminalColor
}

// Render lays h out in c and draws it. ok is false when h is not visible
// or has been scaled below a drawable size.
func (b Bezel) Render(c *hud.Container, h *hud.HUD) (r Rendered, ok bool) {
	opacity := h.Opacity()
	if opacity < minVisibleOpacity {
		return Rendered{}, false
	}
	colors := h.Colors(b.Dark)
	faint := opacity < 1

	body := b.Body(h, colors, labelWidth(c, h), faint)
	bw, bh := lipgloss.Width(body), lipgloss.Height(body)
	if body == "" {
		bw, bh = 0, 0
	}
	frame := c.Frame(h, hud.Size{W: bw + borderCells, H: bh + borderCells})
	frame = scaleRect(frame, h.Scale())
	if frame.W <= borderCells || frame.H <= borderCells {
		return Rendered{}, false
	}

	inner := hud.Size{W: frame.W - borderCells, H: frame.H - borderCells}
	var placeOpts []lipgloss.WhitespaceOption
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colors.BorderColor).
		Faint(faint)
	if !hud.IsClear(colors.BezelColor) {
		box = box.Background(colors.BezelColor).BorderBackground(colors.BezelColor)
		placeOpts = append(placeOpts, lipgloss.WithWhitespaceBackground(colors.BezelColor))
	}
	content := lipgloss.Place(inner.W, inner.H, lipgloss.Center, lipgloss.Center,
		clip(body, inner), placeOpts...)

	return Rendered{
		Block:      box.Render(content),
		Frame:      frame,
		Background: colors.BackgroundColor,
	}, true
}

// Body renders the indicator and labels of h at identity scale.
func (b Bezel) Body(h *hud.HUD, colors hud.Appearance, maxLabel int, faint bool) string {
	var parts []string
	if ind := b.indicator(h.Indicator(), colors); ind != "" {
		parts = append(parts, ind)
	}
	if title := h.Title(); title != "" {
		style := lipgloss.NewStyle().Bold(true).Foreground(colors.TitleColor).Faint(faint)
		parts = append(parts, style.Render(truncate(title, maxLabel)))
	}
	if details := h.Details(); details != "" {
		style := lipgloss.NewStyle().Foreground(colors.DetailsColor).Faint(faint)
		parts = append(parts, style.Render(truncate(details, maxLabel)))
	}
	if len(parts) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

func (b Bezel) indicator(ind hud.Indicator, colors hud.Appearance) string {
	switch v := ind.(type) {
	case *hud.Activity:
		frame := strings.TrimSpace(b.Spinner)
		if frame == "" {
			return ""
		}
		return lipgloss.NewStyle().Foreground(colors.ActivityColor).Render(frame)
	case *hud.Custom:
		if v.View == nil {
			return ""
		}
		return v.View.View()
	case hud.Determinate:
		cells := CircularCells
		if v.Shape() == geometry.ShapeLinear {
			cells = LinearCells
		}
		return RasterizeIndicator(v, colors, cells)
	}
	return ""
}

// RasterizeIndicator draws a determinate indicator onto a braille canvas of
// the given cell size: the track, the outline, then the fill.
func RasterizeIndicator(d hud.Determinate, colors hud.Appearance, cells hud.Size) string {
	c := canvas.New(cells.W, cells.H)
	background, fill := d.Paths()
	viewport := geometry.RectOf(d.ContentSize())

	if !hud.IsClear(colors.TrackTint) {
		c.Fill(background, viewport, colors.TrackTint)
	}
	c.Stroke(background, viewport, 1, colors.ProgressTint)
	c.Fill(fill, viewport, colors.ProgressTint)
	return c.String()
}

// labelWidth is the widest a label may be before it no longer fits the
// container.
func labelWidth(c *hud.Container, h *hud.HUD) int {
	l := h.Layout()
	avail := c.Bounds().Inset(c.SafeArea()).Inset(l.Margin).Inset(l.ContentMargin)
	return max(avail.W-borderCells, 1)
}

// scaleRect scales r about its centre.
func scaleRect(r hud.Rect, scale float64) hud.Rect {
	if scale == 1 {
		return r
	}
	w := int(math.Round(float64(r.W) * scale))
	h := int(math.Round(float64(r.H) * scale))
	return hud.Rect{
		X: r.X + (r.W-w)/2,
		Y: r.Y + (r.H-h)/2,
		W: w,
		H: h,
	}
}

// clip keeps the centre of block that fits in size.
func clip(block string, size hud.Size) string {
	if block == "" {
		return ""
	}
	lines := strings.Split(block, "\n")
	if len(lines) > size.H {
		skip := (len(lines) - size.H) / 2
		lines = lines[skip : skip+size.H]
	}
	for i, line := range lines {
		w := ansi.StringWidth(line)
		if w > size.W {
			left := (w - size.W) / 2
			lines[i] = ansi.Cut(line, left, left+size.W)
		}
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, width int) string {
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}
