package tui

import (
	"fmt"
	"strings"

	bprogress "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/x/ansi"

	"github.com/schmitthub/hudkit/internal/iostreams"
)

// Track is one row of a host view: a label, a bar and a detail column.
type Track struct {
	Label    string
	Fraction float64
	Detail   string
}

// Tracks renders rows of progress bars.
type Tracks struct {
	bar bprogress.Model
}

// NewTracks creates a renderer using the default gradient.
func NewTracks() Tracks {
	return Tracks{
		bar: bprogress.New(
			bprogress.WithDefaultGradient(),
			bprogress.WithoutPercentage(),
		),
	}
}

const (
	minBarWidth = 10
	trackGap    = 2
)

// View renders one line per track, fitting the bars into width.
func (t Tracks) View(tracks []Track, width int) string {
	if len(tracks) == 0 {
		return ""
	}
	labelW, detailW := 0, 0
	for _, tr := range tracks {
		labelW = max(labelW, ansi.StringWidth(tr.Label))
		detailW = max(detailW, ansi.StringWidth(tr.Detail))
	}
	pctW := len("100%")

	bar := t.bar
	bar.Width = max(width-labelW-pctW-detailW-3*trackGap, minBarWidth)

	var b strings.Builder
	gap := strings.Repeat(" ", trackGap)
	for i, tr := range tracks {
		if i > 0 {
			b.WriteByte('\n')
		}
		f := min(max(tr.Fraction, 0), 1)
		fmt.Fprintf(&b, "%s%s%s%s%s%s%s",
			PadRight(tr.Label, labelW), gap,
			bar.ViewAs(f), gap,
			iostreams.FormatPercent(f), gap,
			iostreams.MutedStyle.Render(tr.Detail))
	}
	return b.String()
}

// PadRight pads s with spaces to width cells.
func PadRight(s string, width int) string {
	if pad := width - ansi.StringWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
