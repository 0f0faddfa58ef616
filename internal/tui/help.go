package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/x/ansi"

	"github.com/schmitthub/hudkit/internal/iostreams"
)

const helpSeparator = " • "

// RenderHelpBar renders enabled bindings on one line, dropping the ones
// that no longer fit in width.
func RenderHelpBar(bindings []key.Binding, width int) string {
	if len(bindings) == 0 {
		return ""
	}

	sepWidth := ansi.StringWidth(helpSeparator)

	var parts []string
	availableWidth := width

	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}

		keys := b.Help().Key
		desc := b.Help().Desc
		part := HelpBinding(keys, desc)

		partWidth := ansi.StringWidth(keys) + 1 + ansi.StringWidth(desc)
		if len(parts) > 0 {
			partWidth += sepWidth
		}

		if availableWidth-partWidth < 0 && len(parts) > 0 {
			break
		}

		parts = append(parts, part)
		availableWidth -= partWidth
	}

	return strings.Join(parts, helpSeparator)
}

// HelpBinding creates a single help binding display.
func HelpBinding(keys, desc string) string {
	return iostreams.HelpKeyStyle.Render(keys) + " " + iostreams.HelpDescStyle.Render(desc)
}
