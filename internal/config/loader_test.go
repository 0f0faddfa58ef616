package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the user config dir at an empty temp dir so a developer's
// own hudkit.yaml never leaks into tests.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(ConfigDirEnv, filepath.Join(dir, "user"))
	return dir
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_DefaultsWithoutFile(t *testing.T) {
	dir := isolate(t)

	l := NewLoader(dir)
	cfg, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
	assert.Empty(t, l.ConfigFileUsed())
}

func TestLoader_ProjectFile(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, `
hud:
  style: pie
  grace_period: 250ms
  min_display_time: 1s
  transition:
    duration: 150ms
theme:
  mode: light
  progress_tint: "#FF0000"
demo:
  workers: 2
`)

	l := NewLoader(dir)
	cfg, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, path, l.ConfigFileUsed())
	assert.Equal(t, "pie", cfg.HUD.Style)
	assert.Equal(t, "fade", cfg.HUD.Animation, "unset keys keep their default")
	assert.Equal(t, 250*time.Millisecond, cfg.HUD.GracePeriod)
	assert.Equal(t, time.Second, cfg.HUD.MinDisplayTime)
	assert.Equal(t, 150*time.Millisecond, cfg.HUD.Transition.Duration)
	assert.Equal(t, 1.0, cfg.HUD.Transition.Damping)
	assert.Equal(t, ThemeModeLight, cfg.Theme.Mode)
	assert.Equal(t, "#FF0000", cfg.Theme.ProgressTint)
	assert.Equal(t, 2, cfg.Demo.Workers)
}

func TestLoader_UserFileFallback(t *testing.T) {
	dir := isolate(t)
	userDir := ConfigDir()
	require.NoError(t, os.MkdirAll(userDir, 0o755))
	writeConfig(t, userDir, "hud:\n  style: linear\n")

	cfg, err := NewLoader(filepath.Join(dir, "elsewhere")).Load()
	require.NoError(t, err)
	assert.Equal(t, "linear", cfg.HUD.Style)
}

func TestLoader_ProjectBeatsUser(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(ConfigDir(), 0o755))
	writeConfig(t, ConfigDir(), "hud:\n  style: linear\n")
	writeConfig(t, dir, "hud:\n  style: pie\n")

	cfg, err := NewLoader(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, "pie", cfg.HUD.Style)
}

func TestLoader_EnvOverrides(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "hud:\n  style: pie\n")
	t.Setenv("HUDKIT_HUD_STYLE", "linear")
	t.Setenv("HUDKIT_HUD_MIN_DISPLAY_TIME", "2s")
	t.Setenv("HUDKIT_LOGGING_FILE_ENABLED", "true")
	t.Setenv("HUDKIT_DEMO_WORKERS", "8")

	cfg, err := NewLoader(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, "linear", cfg.HUD.Style)
	assert.Equal(t, 2*time.Second, cfg.HUD.MinDisplayTime)
	require.NotNil(t, cfg.Logging.FileEnabled)
	assert.True(t, *cfg.Logging.FileEnabled)
	assert.Equal(t, 8, cfg.Demo.Workers)
}

func TestLoader_ExplicitFileMissing(t *testing.T) {
	dir := isolate(t)
	missing := filepath.Join(dir, "nope.yaml")

	_, err := NewLoader(dir, WithFile(missing)).Load()
	require.Error(t, err)
	assert.True(t, IsConfigNotFound(err))
	assert.Contains(t, err.Error(), missing)
}

func TestLoader_ExplicitFile(t *testing.T) {
	dir := isolate(t)
	other := filepath.Join(dir, "other")
	require.NoError(t, os.MkdirAll(other, 0o755))
	path := writeConfig(t, other, "hud:\n  animation: zoom\n")
	writeConfig(t, dir, "hud:\n  animation: fade\n")

	l := NewLoader(dir, WithFile(path))
	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, "zoom", cfg.HUD.Animation)
	assert.Equal(t, path, l.ConfigFileUsed())
}

func TestLoader_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		key     string
	}{
		{"negative grace", "hud:\n  grace_period: -1s\n", "hud.grace_period"},
		{"zero damping", "hud:\n  transition:\n    damping: 0\n", "hud.transition.damping"},
		{"theme mode", "theme:\n  mode: sepia\n", "theme.mode"},
		{"demo mode", "demo:\n  mode: fancy\n", "demo.mode"},
		{"workers", "demo:\n  workers: 0\n", "demo.workers"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			writeConfig(t, dir, tt.content)

			_, err := NewLoader(dir).Load()
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.key, verr.Key)
		})
	}
}

func TestLoader_MalformedYAML(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "hud: [unclosed\n")

	_, err := NewLoader(dir).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoader_WatchRequiresFile(t *testing.T) {
	dir := isolate(t)
	l := NewLoader(dir)
	_, err := l.Load()
	require.NoError(t, err)

	assert.Error(t, l.Watch(nil))
}

func TestLoader_WatchReloads(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, "hud:\n  style: pie\n")

	l := NewLoader(dir)
	_, err := l.Load()
	require.NoError(t, err)

	reloaded := make(chan *Config, 4)
	require.NoError(t, l.Watch(func(_ fsnotify.Event, cfg *Config, err error) {
		if err == nil {
			reloaded <- cfg
		}
	}))

	require.NoError(t, os.WriteFile(path, []byte("hud:\n  style: linear\n"), 0o644))

	select {
	case cfg := <-reloaded:
		assert.Equal(t, "linear", cfg.HUD.Style)
	case <-time.After(5 * time.Second):
		t.Fatal("config change was not observed")
	}
}
