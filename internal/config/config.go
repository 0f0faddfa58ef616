// Package config loads hudkit.yaml: the HUD defaults (style, animation,
// timing, layout), the colour theme, file logging and the demo workload.
// Values come from, in increasing priority, built-in defaults, the config
// file, and HUDKIT_* environment variables.
package config

import (
	"fmt"
	"time"
)

// Config is the schema of hudkit.yaml.
type Config struct {
	HUD     HUDConfig     `mapstructure:"hud" yaml:"hud" json:"hud"`
	Theme   ThemeConfig   `mapstructure:"theme" yaml:"theme" json:"theme"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" json:"logging"`
	Demo    DemoConfig    `mapstructure:"demo" yaml:"demo" json:"demo"`
}

// HUDConfig holds the defaults applied to every HUD the CLI creates.
type HUDConfig struct {
	Style          string           `mapstructure:"style" yaml:"style" json:"style"`
	Animation      string           `mapstructure:"animation" yaml:"animation" json:"animation"`
	GracePeriod    time.Duration    `mapstructure:"grace_period" yaml:"grace_period" json:"grace_period"`
	MinDisplayTime time.Duration    `mapstructure:"min_display_time" yaml:"min_display_time" json:"min_display_time"`
	DelayHide      time.Duration    `mapstructure:"delay_hide" yaml:"delay_hide" json:"delay_hide"`
	Transition     TransitionConfig `mapstructure:"transition" yaml:"transition" json:"transition"`
	Layout         LayoutConfig     `mapstructure:"layout" yaml:"layout" json:"layout"`
}

// TransitionConfig tunes the spring used by show/hide animations.
type TransitionConfig struct {
	Duration time.Duration `mapstructure:"duration" yaml:"duration" json:"duration"`
	Damping  float64       `mapstructure:"damping" yaml:"damping" json:"damping"`
}

// LayoutConfig positions the bezel in terminal cells.
type LayoutConfig struct {
	OffsetX   int `mapstructure:"offset_x" yaml:"offset_x" json:"offset_x"`
	OffsetY   int `mapstructure:"offset_y" yaml:"offset_y" json:"offset_y"`
	MarginX   int `mapstructure:"margin_x" yaml:"margin_x" json:"margin_x"`
	MarginY   int `mapstructure:"margin_y" yaml:"margin_y" json:"margin_y"`
	MinWidth  int `mapstructure:"min_width" yaml:"min_width" json:"min_width"`
	MinHeight int `mapstructure:"min_height" yaml:"min_height" json:"min_height"`
}

// ThemeConfig is the caller-level appearance. Colours are lipgloss colour
// strings ("#RRGGBB" or an ANSI index); "none" means explicitly clear and
// an empty value falls back to the built-in default.
type ThemeConfig struct {
	// Mode selects the colour variant: auto, dark or light.
	Mode            string `mapstructure:"mode" yaml:"mode" json:"mode"`
	Color           string `mapstructure:"color" yaml:"color" json:"color"`
	ProgressTint    string `mapstructure:"progress_tint" yaml:"progress_tint" json:"progress_tint"`
	TrackTint       string `mapstructure:"track_tint" yaml:"track_tint" json:"track_tint"`
	ActivityColor   string `mapstructure:"activity_color" yaml:"activity_color" json:"activity_color"`
	TitleColor      string `mapstructure:"title_color" yaml:"title_color" json:"title_color"`
	DetailsColor    string `mapstructure:"details_color" yaml:"details_color" json:"details_color"`
	BorderColor     string `mapstructure:"border_color" yaml:"border_color" json:"border_color"`
	BezelColor      string `mapstructure:"bezel_color" yaml:"bezel_color" json:"bezel_color"`
	BackgroundColor string `mapstructure:"background_color" yaml:"background_color" json:"background_color"`
}

// LoggingConfig configures the rotated log file.
type LoggingConfig struct {
	FileEnabled *bool `mapstructure:"file_enabled" yaml:"file_enabled,omitempty" json:"file_enabled,omitempty"`
	MaxSizeMB   int   `mapstructure:"max_size_mb" yaml:"max_size_mb" json:"max_size_mb"`
	MaxAgeDays  int   `mapstructure:"max_age_days" yaml:"max_age_days" json:"max_age_days"`
	MaxBackups  int   `mapstructure:"max_backups" yaml:"max_backups" json:"max_backups"`
	Compress    bool  `mapstructure:"compress" yaml:"compress" json:"compress"`
}

// DemoConfig describes the simulated workload of `hudkit demo`.
type DemoConfig struct {
	Workers int    `mapstructure:"workers" yaml:"workers" json:"workers"`
	Size    string `mapstructure:"size" yaml:"size" json:"size"`
	Rate    string `mapstructure:"rate" yaml:"rate" json:"rate"`
	Title   string `mapstructure:"title" yaml:"title" json:"title"`
	Mode    string `mapstructure:"mode" yaml:"mode" json:"mode"`
}

// Theme modes.
const (
	ThemeModeAuto  = "auto"
	ThemeModeDark  = "dark"
	ThemeModeLight = "light"
)

// Demo output modes.
const (
	DemoModeAuto  = "auto"
	DemoModeTTY   = "tty"
	DemoModePlain = "plain"
)

// ValidationError reports an invalid value for a config key.
type ValidationError struct {
	Key    string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Key, e.Value, e.Reason)
}

// Validate checks the values that can be judged without the HUD package.
// Style and animation names are parsed where they are used.
func (c *Config) Validate() error {
	durations := []struct {
		key string
		d   time.Duration
	}{
		{"hud.grace_period", c.HUD.GracePeriod},
		{"hud.min_display_time", c.HUD.MinDisplayTime},
		{"hud.delay_hide", c.HUD.DelayHide},
		{"hud.transition.duration", c.HUD.Transition.Duration},
	}
	for _, d := range durations {
		if d.d < 0 {
			return &ValidationError{Key: d.key, Value: d.d, Reason: "must not be negative"}
		}
	}
	if c.HUD.Transition.Damping <= 0 {
		return &ValidationError{Key: "hud.transition.damping", Value: c.HUD.Transition.Damping, Reason: "must be positive"}
	}
	switch c.Theme.Mode {
	case ThemeModeAuto, ThemeModeDark, ThemeModeLight:
	default:
		return &ValidationError{Key: "theme.mode", Value: c.Theme.Mode, Reason: "must be auto, dark or light"}
	}
	switch c.Demo.Mode {
	case DemoModeAuto, DemoModeTTY, DemoModePlain:
	default:
		return &ValidationError{Key: "demo.mode", Value: c.Demo.Mode, Reason: "must be auto, tty or plain"}
	}
	if c.Demo.Workers < 1 {
		return &ValidationError{Key: "demo.workers", Value: c.Demo.Workers, Reason: "must be at least 1"}
	}
	return nil
}
