package hud

import (
	"fmt"
	"strings"
)

// Style selects the indicator a HUD hosts.
type Style int

const (
	StyleActivityIndicator Style = iota
	StyleLinearProgress
	StyleDoughnutProgress
	StylePieProgress
	StyleTextLabel
	StyleCustomView
)

var styleNames = map[Style]string{
	StyleActivityIndicator: "activity",
	StyleLinearProgress:    "linear",
	StyleDoughnutProgress:  "doughnut",
	StylePieProgress:       "pie",
	StyleTextLabel:         "text",
	StyleCustomView:        "custom",
}

func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// ParseStyle maps a case-insensitive style name to a Style.
func ParseStyle(name string) (Style, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range styleNames {
		if n == name {
			return s, nil
		}
	}
	switch name {
	case "spinner":
		return StyleActivityIndicator, nil
	case "bar":
		return StyleLinearProgress, nil
	case "donut", "ring":
		return StyleDoughnutProgress, nil
	}
	return 0, fmt.Errorf("unknown style %q (want activity, linear, doughnut, pie, text or custom)", name)
}

// AnimationType selects how the bezel appears and disappears.
type AnimationType int

const (
	// AnimationFade only animates opacity.
	AnimationFade AnimationType = iota
	// AnimationZoom zooms in when appearing and out when disappearing.
	AnimationZoom
	// AnimationZoomOut shrinks from 1.5x when appearing and on to 0.5x
	// when disappearing.
	AnimationZoomOut
	// AnimationZoomIn grows from 0.5x when appearing and on to 1.5x when
	// disappearing.
	AnimationZoomIn
)

var animationNames = map[AnimationType]string{
	AnimationFade:    "fade",
	AnimationZoom:    "zoom",
	AnimationZoomOut: "zoom-out",
	AnimationZoomIn:  "zoom-in",
}

func (a AnimationType) String() string {
	if name, ok := animationNames[a]; ok {
		return name
	}
	return fmt.Sprintf("AnimationType(%d)", int(a))
}

// ParseAnimationType maps a case-insensitive name to an AnimationType.
func ParseAnimationType(name string) (AnimationType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "_", "-")
	for a, n := range animationNames {
		if n == name || strings.ReplaceAll(n, "-", "") == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown animation %q (want fade, zoom, zoom-in or zoom-out)", name)
}

// resolve turns AnimationZoom into the concrete direction for a transition.
func (a AnimationType) resolve(appearing bool) AnimationType {
	if a != AnimationZoom {
		return a
	}
	if appearing {
		return AnimationZoomIn
	}
	return AnimationZoomOut
}

// State is a HUD's lifecycle position.
type State int

const (
	StateHidden State = iota
	StateAwaitingGrace
	StateVisible
	StateAwaitingMinDisplay
	StateHiding
)

func (s State) String() string {
	switch s {
	case StateHidden:
		return "hidden"
	case StateAwaitingGrace:
		return "awaiting-grace"
	case StateVisible:
		return "visible"
	case StateAwaitingMinDisplay:
		return "awaiting-min-display"
	case StateHiding:
		return "hiding"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}
