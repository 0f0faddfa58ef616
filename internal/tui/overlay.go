package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/schmitthub/hudkit/internal/hud"
)

// Canvas returns exactly height lines of host text, each cut to width.
func Canvas(host string, width, height int) []string {
	lines := strings.Split(host, "\n")
	out := make([]string, max(height, 0))
	for i := range out {
		if i < len(lines) {
			out[i] = ansi.Truncate(lines[i], width, "")
		}
	}
	return out
}

// Overlay draws block over base with its top-left cell at (x, y). Cells of
// block that fall outside width x len(base) are dropped; the cells of base
// it covers are replaced, the rest of each line is kept.
func Overlay(base []string, block string, x, y, width int) []string {
	out := make([]string, len(base))
	copy(out, base)
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= len(out) {
			continue
		}
		lw := ansi.StringWidth(line)
		start, end := 0, lw
		if x < 0 {
			start = -x
		}
		if x+lw > width {
			end = width - x
		}
		if start >= end {
			continue
		}
		if start > 0 || end < lw {
			line = ansi.Cut(line, start, end)
		}
		out[row] = splice(out[row], line, max(x, 0), end-start, width)
	}
	return out
}

// splice replaces the w cells of base starting at col with line.
func splice(base, line string, col, w, width int) string {
	left := ansi.Truncate(base, col, "")
	if pad := col - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	right := ""
	if ansi.StringWidth(base) > col+w {
		right = ansi.Truncate(ansi.TruncateLeft(base, col+w, ""), width-col-w, "")
	}
	return left + line + right
}

// Dim repaints host lines in a flat background, used behind a bezel whose
// BackgroundColor is set.
func Dim(lines []string, width int, bg lipgloss.TerminalColor) []string {
	if hud.IsClear(bg) {
		return lines
	}
	style := lipgloss.NewStyle().Background(bg).Faint(true).Width(width)
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = style.Render(ansi.Strip(line))
	}
	return out
}
