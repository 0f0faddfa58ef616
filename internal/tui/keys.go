package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the key bindings of the HUD display.
type KeyMap struct {
	Quit           key.Binding
	Toggle         key.Binding
	CycleStyle     key.Binding
	CycleAnimation key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "show/hide"),
		),
		CycleStyle: key.NewBinding(
			key.WithKeys("s", "tab"),
			key.WithHelp("s", "style"),
		),
		CycleAnimation: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "animation"),
		),
	}
}

// ShortHelp returns the bindings shown in the help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.CycleStyle, k.CycleAnimation, k.Quit}
}

// Key matching helpers for use in Update functions.

// IsQuit returns true if the key message matches quit keys.
func IsQuit(msg tea.KeyMsg) bool {
	return key.Matches(msg, DefaultKeyMap().Quit)
}

// IsToggle returns true if the key message shows or hides the HUD.
func IsToggle(msg tea.KeyMsg) bool {
	return key.Matches(msg, DefaultKeyMap().Toggle)
}

// IsCycleStyle returns true if the key message switches the indicator.
func IsCycleStyle(msg tea.KeyMsg) bool {
	return key.Matches(msg, DefaultKeyMap().CycleStyle)
}

// IsCycleAnimation returns true if the key message switches the animation.
func IsCycleAnimation(msg tea.KeyMsg) bool {
	return key.Matches(msg, DefaultKeyMap().CycleAnimation)
}
