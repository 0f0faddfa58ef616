package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvas(t *testing.T) {
	lines := Canvas("abcdef\nxy", 4, 3)

	require.Len(t, lines, 3)
	assert.Equal(t, "abcd", lines[0])
	assert.Equal(t, "xy", lines[1])
	assert.Equal(t, "", lines[2])
}

func TestOverlay(t *testing.T) {
	tests := []struct {
		name  string
		base  []string
		block string
		x, y  int
		width int
		want  []string
	}{
		{
			name:  "inside",
			base:  []string{"..........", "..........", ".........."},
			block: "AB\nCD",
			x:     3, y: 1, width: 10,
			want: []string{"..........", "...AB.....", "...CD....."},
		},
		{
			name:  "pads short lines",
			base:  []string{"ab"},
			block: "XY",
			x:     5, y: 0, width: 10,
			want: []string{"ab   XY"},
		},
		{
			name:  "clipped right",
			base:  []string{"......"},
			block: "ABCD",
			x:     4, y: 0, width: 6,
			want: []string{"....AB"},
		},
		{
			name:  "clipped left",
			base:  []string{"......"},
			block: "ABCD",
			x:     -2, y: 0, width: 6,
			want: []string{"CD...."},
		},
		{
			name:  "rows outside dropped",
			base:  []string{"....", "...."},
			block: "AA\nBB\nCC",
			x:     1, y: -1, width: 10,
			want: []string{".BB.", ".CC."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlay(tt.base, tt.block, tt.x, tt.y, tt.width))
		})
	}
}

func TestOverlay_KeepsStyledHost(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("0123456789")
	out := Overlay([]string{styled}, "XX", 4, 0, 10)

	assert.Equal(t, "0123XX6789", ansi.Strip(out[0]))
	assert.Equal(t, 10, ansi.StringWidth(out[0]))
}

func TestDim(t *testing.T) {
	lines := []string{"abc"}

	assert.Equal(t, lines, Dim(lines, 10, nil), "clear background leaves the host alone")
	assert.Equal(t, lines, Dim(lines, 10, lipgloss.NoColor{}))

	dimmed := Dim(lines, 10, lipgloss.Color("#000000"))
	assert.Equal(t, "abc", ansi.Strip(dimmed[0])[:3])
	assert.Equal(t, 10, ansi.StringWidth(dimmed[0]))
}
