package hud

import "github.com/charmbracelet/lipgloss"

// Default colors used when neither the HUD nor its theme sets one.
var (
	DefaultLightColor = lipgloss.Color("#262626")
	DefaultDarkColor  = lipgloss.Color("#F2F2F2")
)

// Appearance is a set of color settings. A nil field is unset and falls
// through to the next level; lipgloss.NoColor{} is an explicit "clear".
//
// Colors resolve in three levels: the HUD's own Appearance, then the
// caller's theme, then the built-in default.
type Appearance struct {
	// Color is the base tint every other unset color derives from.
	Color lipgloss.TerminalColor
	// ProgressTint fills the determinate indicators. Defaults to Color.
	ProgressTint lipgloss.TerminalColor
	// TrackTint fills the area behind the progress. Defaults to clear.
	TrackTint lipgloss.TerminalColor
	// ActivityColor tints the spinner. Defaults to Color.
	ActivityColor lipgloss.TerminalColor
	// TitleColor and DetailsColor tint the labels. Default to Color.
	TitleColor   lipgloss.TerminalColor
	DetailsColor lipgloss.TerminalColor
	// BorderColor draws the bezel outline. Defaults to Color.
	BorderColor lipgloss.TerminalColor
	// BezelColor is the bezel background. Defaults to clear.
	BezelColor lipgloss.TerminalColor
	// BackgroundColor dims the host behind the bezel. Defaults to clear.
	BackgroundColor lipgloss.TerminalColor
}

// Theme is a caller-supplied Appearance shared by many HUDs.
type Theme = Appearance

// DefaultColor returns the built-in base color for a light or dark
// terminal background.
func DefaultColor(dark bool) lipgloss.TerminalColor {
	if dark {
		return DefaultDarkColor
	}
	return DefaultLightColor
}

// Resolve merges instance over theme over the built-in defaults. Every
// field of the result is non-nil.
func Resolve(instance, theme Appearance, dark bool) Appearance {
	base := first(instance.Color, theme.Color, DefaultColor(dark))
	none := lipgloss.NoColor{}
	return Appearance{
		Color:           base,
		ProgressTint:    first(instance.ProgressTint, theme.ProgressTint, base),
		TrackTint:       first(instance.TrackTint, theme.TrackTint, none),
		ActivityColor:   first(instance.ActivityColor, theme.ActivityColor, base),
		TitleColor:      first(instance.TitleColor, theme.TitleColor, base),
		DetailsColor:    first(instance.DetailsColor, theme.DetailsColor, base),
		BorderColor:     first(instance.BorderColor, theme.BorderColor, base),
		BezelColor:      first(instance.BezelColor, theme.BezelColor, none),
		BackgroundColor: first(instance.BackgroundColor, theme.BackgroundColor, none),
	}
}

func first(colors ...lipgloss.TerminalColor) lipgloss.TerminalColor {
	for _, c := range colors {
		if c != nil {
			return c
		}
	}
	return lipgloss.NoColor{}
}

// IsClear reports whether c draws nothing.
func IsClear(c lipgloss.TerminalColor) bool {
	if c == nil {
		return true
	}
	_, ok := c.(lipgloss.NoColor)
	return ok
}
