package render

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/schmitthub/hudkit/internal/cmdutil"
	"github.com/schmitthub/hudkit/internal/config"
	"github.com/schmitthub/hudkit/internal/geometry"
	"github.com/schmitthub/hudkit/internal/hud"
	"github.com/schmitthub/hudkit/internal/iostreams"
	"github.com/schmitthub/hudkit/internal/scheduler"
	"github.com/schmitthub/hudkit/internal/tui"
)

// Output formats.
const (
	FormatBraille = "braille"
	FormatSVG     = "svg"
	FormatJSON    = "json"
)

// RenderOptions holds options for the render command.
type RenderOptions struct {
	IOStreams *iostreams.IOStreams
	Config    func() (*config.Config, error)

	Style    string
	Fraction float64
	Format   string
	Cols     int
	Rows     int
}

// NewCmdRender creates the render command.
func NewCmdRender(f *cmdutil.Factory, runF func(context.Context, *RenderOptions) error) *cobra.Command {
	opts := &RenderOptions{
		IOStreams: f.IOStreams,
		Config:    f.Config,
	}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print a progress indicator at one fraction",
		Long: `Builds the geometry of a determinate progress indicator for a single
fraction and prints it as braille cells, an SVG image or JSON.

Fractions outside [0, 1] saturate. Without --style the configured
hud.style is used; it must be linear, doughnut or pie.`,
		Example: `  # A doughnut at 40%
  hudkit render --style doughnut --fraction 0.4

  # A wide bar
  hudkit render --style linear --fraction 0.75 --cols 40

  # SVG for the docs
  hudkit render --style pie --fraction 0.3 --format svg > pie.svg`,
		Args: cmdutil.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch opts.Format {
			case FormatBraille, FormatSVG, FormatJSON:
			default:
				return cmdutil.FlagErrorf("invalid --format %q (want braille, svg or json)", opts.Format)
			}
			if math.IsNaN(opts.Fraction) {
				return cmdutil.FlagErrorf("--fraction must be a number")
			}
			if opts.Cols < 0 || opts.Rows < 0 {
				return cmdutil.FlagErrorf("--cols and --rows must not be negative")
			}
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return renderRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Style, "style", "s", "", "Indicator style: linear, doughnut or pie")
	cmd.Flags().Float64VarP(&opts.Fraction, "fraction", "p", 0.5, "Progress fraction to draw")
	cmd.Flags().StringVar(&opts.Format, "format", FormatBraille, "Output format: braille, svg or json")
	cmd.Flags().IntVar(&opts.Cols, "cols", 0, "Braille width in cells (default depends on style)")
	cmd.Flags().IntVar(&opts.Rows, "rows", 0, "Braille height in cells (default depends on style)")

	return cmd
}

func renderRun(_ context.Context, opts *RenderOptions) error {
	ios := opts.IOStreams

	cfg, err := opts.Config()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	hudOpts, err := cmdutil.HUDOptions(cfg)
	if err != nil {
		return err
	}
	if opts.Style != "" {
		style, err := hud.ParseStyle(opts.Style)
		if err != nil {
			return cmdutil.FlagErrorWrap(err)
		}
		hudOpts = append(hudOpts, hud.WithStyle(style))
	}

	// Nothing is scheduled: no node is observed and the HUD is never shown.
	h := hud.New(scheduler.NewLoop(func(fn func()) { fn() }), hudOpts...)
	defer h.Close()
	h.SetProgress(opts.Fraction)

	d, ok := h.Indicator().(hud.Determinate)
	if !ok {
		return cmdutil.FlagErrorf("style %s has no geometry (want linear, doughnut or pie)", h.Style())
	}
	colors := h.Colors(cmdutil.DarkBackground(cfg.Theme.Mode, ios))

	switch opts.Format {
	case FormatSVG:
		background, fill := d.Paths()
		svgOpts := geometry.SVGOptions{Fill: svgColor(colors.ProgressTint, "#000000")}
		if !hud.IsClear(colors.TrackTint) {
			svgOpts.Background = svgColor(colors.TrackTint, "none")
		}
		fmt.Fprint(ios.Out, geometry.SVGDocument(d.ContentSize(), background, fill, svgOpts))
		return nil
	case FormatJSON:
		return cmdutil.WriteJSON(ios.Out, describe(d))
	}

	fmt.Fprintln(ios.Out, tui.RasterizeIndicator(d, colors, cells(d, opts.Cols, opts.Rows)))
	return nil
}

// cells picks the braille size, filling in whatever the flags left unset.
func cells(d hud.Determinate, cols, rows int) hud.Size {
	size := tui.CircularCells
	if d.Shape() == geometry.ShapeLinear {
		size = tui.LinearCells
	}
	if cols > 0 {
		size.W = cols
	}
	if rows > 0 {
		size.H = rows
	}
	return size
}

// svgColor returns c as an SVG colour when it is a hex colour.
func svgColor(c lipgloss.TerminalColor, fallback string) string {
	if col, ok := c.(lipgloss.Color); ok && strings.HasPrefix(string(col), "#") {
		return string(col)
	}
	return fallback
}

// ---------------------------------------------------------------------------
// JSON
// ---------------------------------------------------------------------------

type rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type sweep struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

type description struct {
	Shape      string  `json:"shape"`
	Fraction   float64 `json:"fraction"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Sweep      *sweep  `json:"sweep,omitempty"`
	FillBounds *rect   `json:"fill_bounds,omitempty"`
	Background string  `json:"background"`
	Fill       string  `json:"fill"`
}

func describe(d hud.Determinate) description {
	background, fill := d.Paths()
	size := d.ContentSize()
	out := description{
		Shape:      d.Shape().String(),
		Fraction:   d.Fraction(),
		Width:      size.Width,
		Height:     size.Height,
		Background: background.SVGData(),
		Fill:       fill.SVGData(),
	}
	if d.Shape() != geometry.ShapeLinear {
		start, end := geometry.SectorAngles(min(max(d.Fraction(), 0), 1))
		out.Sweep = &sweep{Start: start, End: end}
	}
	if !fill.IsEmpty() {
		b := fill.Bounds()
		out.FillBounds = &rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
	}
	return out
}
