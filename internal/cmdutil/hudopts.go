package cmdutil

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/schmitthub/hudkit/internal/anim"
	"github.com/schmitthub/hudkit/internal/config"
	"github.com/schmitthub/hudkit/internal/hud"
	"github.com/schmitthub/hudkit/internal/iostreams"
)

// HUDOptions converts the hud and theme sections of cfg into constructor
// options. Command flags are appended after these and win.
func HUDOptions(cfg *config.Config) ([]hud.Option, error) {
	style, err := hud.ParseStyle(cfg.HUD.Style)
	if err != nil {
		return nil, fmt.Errorf("hud.style: %w", err)
	}
	animation, err := hud.ParseAnimationType(cfg.HUD.Animation)
	if err != nil {
		return nil, fmt.Errorf("hud.animation: %w", err)
	}
	return []hud.Option{
		hud.WithStyle(style),
		hud.WithAnimationType(animation),
		hud.WithGracePeriod(cfg.HUD.GracePeriod),
		hud.WithMinimumDisplayTime(cfg.HUD.MinDisplayTime),
		hud.WithTransition(anim.Transition{
			Duration: cfg.HUD.Transition.Duration,
			Damping:  cfg.HUD.Transition.Damping,
		}),
		hud.WithLayout(LayoutFromConfig(cfg.HUD.Layout)),
		hud.WithTheme(ThemeFromConfig(cfg.Theme)),
	}, nil
}

// LayoutFromConfig maps the layout section onto hud.Layout. The content
// margin is not configurable.
func LayoutFromConfig(lc config.LayoutConfig) hud.Layout {
	return hud.Layout{
		Offset:        hud.Offset{X: lc.OffsetX, Y: lc.OffsetY},
		Margin:        hud.Insets{Top: lc.MarginY, Bottom: lc.MarginY, Left: lc.MarginX, Right: lc.MarginX},
		MinimumSize:   hud.Size{W: lc.MinWidth, H: lc.MinHeight},
		ContentMargin: hud.DefaultLayout.ContentMargin,
	}
}

// ThemeFromConfig maps the theme section onto a hud.Theme.
func ThemeFromConfig(tc config.ThemeConfig) hud.Theme {
	return hud.Theme{
		Color:           ParseColor(tc.Color),
		ProgressTint:    ParseColor(tc.ProgressTint),
		TrackTint:       ParseColor(tc.TrackTint),
		ActivityColor:   ParseColor(tc.ActivityColor),
		TitleColor:      ParseColor(tc.TitleColor),
		DetailsColor:    ParseColor(tc.DetailsColor),
		BorderColor:     ParseColor(tc.BorderColor),
		BezelColor:      ParseColor(tc.BezelColor),
		BackgroundColor: ParseColor(tc.BackgroundColor),
	}
}

// ParseColor turns a config colour string into a lipgloss colour. An
// empty string is unset (nil) and "none" or "clear" is explicitly clear.
func ParseColor(s string) lipgloss.TerminalColor {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "":
		return nil
	case "none", "clear":
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(s)
}

// DarkBackground resolves theme.mode against the terminal.
func DarkBackground(mode string, ios *iostreams.IOStreams) bool {
	switch mode {
	case config.ThemeModeDark:
		return true
	case config.ThemeModeLight:
		return false
	}
	return ios.HasDarkBackground()
}
