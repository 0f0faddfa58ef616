package config

import (
	"time"

	"github.com/spf13/viper"
)

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	fileEnabled := false
	return &Config{
		HUD: HUDConfig{
			Style:     "doughnut",
			Animation: "fade",
			Transition: TransitionConfig{
				Duration: 300 * time.Millisecond,
				Damping:  1,
			},
			Layout: LayoutConfig{
				MarginX: 2,
				MarginY: 1,
			},
		},
		Theme: ThemeConfig{
			Mode: ThemeModeAuto,
		},
		Logging: LoggingConfig{
			FileEnabled: &fileEnabled,
			MaxSizeMB:   10,
			MaxAgeDays:  7,
			MaxBackups:  3,
		},
		Demo: DemoConfig{
			Workers: 4,
			Size:    "64MiB",
			Rate:    "24MiB",
			Title:   "Downloading",
			Mode:    DemoModeAuto,
		},
	}
}

// setDefaults registers every leaf of DefaultConfig with v so that env
// overrides work for keys absent from the file.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	defaults := map[string]any{
		"hud.style":               d.HUD.Style,
		"hud.animation":           d.HUD.Animation,
		"hud.grace_period":        d.HUD.GracePeriod,
		"hud.min_display_time":    d.HUD.MinDisplayTime,
		"hud.delay_hide":          d.HUD.DelayHide,
		"hud.transition.duration": d.HUD.Transition.Duration,
		"hud.transition.damping":  d.HUD.Transition.Damping,
		"hud.layout.offset_x":     d.HUD.Layout.OffsetX,
		"hud.layout.offset_y":     d.HUD.Layout.OffsetY,
		"hud.layout.margin_x":     d.HUD.Layout.MarginX,
		"hud.layout.margin_y":     d.HUD.Layout.MarginY,
		"hud.layout.min_width":    d.HUD.Layout.MinWidth,
		"hud.layout.min_height":   d.HUD.Layout.MinHeight,
		"theme.mode":              d.Theme.Mode,
		"theme.color":             "",
		"theme.progress_tint":     "",
		"theme.track_tint":        "",
		"theme.activity_color":    "",
		"theme.title_color":       "",
		"theme.details_color":     "",
		"theme.border_color":      "",
		"theme.bezel_color":       "",
		"theme.background_color":  "",
		"logging.file_enabled":    *d.Logging.FileEnabled,
		"logging.max_size_mb":     d.Logging.MaxSizeMB,
		"logging.max_age_days":    d.Logging.MaxAgeDays,
		"logging.max_backups":     d.Logging.MaxBackups,
		"logging.compress":        d.Logging.Compress,
		"demo.workers":            d.Demo.Workers,
		"demo.size":               d.Demo.Size,
		"demo.rate":               d.Demo.Rate,
		"demo.title":              d.Demo.Title,
		"demo.mode":               d.Demo.Mode,
	}
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
}

// DefaultConfigYAML returns the default configuration as YAML for scaffolding
const DefaultConfigYAML = `# hudkit configuration
# Values here are overridden by HUDKIT_* environment variables,
# e.g. HUDKIT_HUD_STYLE=pie or HUDKIT_DEMO_WORKERS=8.

hud:
  # activity, linear, doughnut, pie, text or custom
  style: doughnut
  # fade, zoom, zoom-in or zoom-out
  animation: fade
  # Show only if the work is still running after this long
  grace_period: 0s
  # Once shown, stay visible for at least this long
  min_display_time: 0s
  # Keep the HUD up this long after the work finishes
  delay_hide: 0s
  transition:
    duration: 300ms
    damping: 1
  layout:
    offset_x: 0
    offset_y: 0
    margin_x: 2
    margin_y: 1
    min_width: 0
    min_height: 0

theme:
  # auto, dark or light
  mode: auto
  # Colours are "#RRGGBB" or an ANSI index; "none" is transparent.
  # color: "#F2F2F2"
  # progress_tint: "#00BFFF"
  # track_tint: "#3C3C3C"
  # border_color: "#626262"

logging:
  # Write a rotated JSON log under $XDG_STATE_HOME/hudkit/logs
  file_enabled: false
  max_size_mb: 10
  max_age_days: 7
  max_backups: 3
  compress: false

demo:
  workers: 4
  # Bytes each simulated worker transfers
  size: 64MiB
  # Per-worker transfer rate per second
  rate: 24MiB
  title: Downloading
  # auto, tty or plain
  mode: auto
`
