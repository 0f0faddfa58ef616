package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides: hud.style is read from
// HUDKIT_HUD_STYLE.
const EnvPrefix = "HUDKIT"

// Loader handles loading and parsing of hudkit configuration
type Loader struct {
	workDir string
	file    string

	mu    sync.Mutex
	viper *viper.Viper
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFile pins the config file. Load fails with ConfigNotFoundError when
// it does not exist instead of searching the default locations.
func WithFile(path string) LoaderOption {
	return func(l *Loader) { l.file = path }
}

// NewLoader creates a new configuration loader for the given working directory
func NewLoader(workDir string, opts ...LoaderOption) *Loader {
	l := &Loader{
		workDir: workDir,
		viper:   viper.New(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the configuration. Without an explicit file it looks for
// hudkit.yaml in the working directory, then in ConfigDir; finding neither
// is not an error and yields the defaults plus environment overrides.
func (l *Loader) Load() (*Config, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	v := l.viper
	v.SetConfigType("yaml")
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path, err := l.resolvePath()
	if err != nil {
		return nil, err
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return decode(v)
}

func (l *Loader) resolvePath() (string, error) {
	if l.file != "" {
		if _, err := os.Stat(l.file); errors.Is(err, os.ErrNotExist) {
			return "", &ConfigNotFoundError{Path: l.file}
		}
		return l.file, nil
	}
	for _, candidate := range l.SearchPaths() {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", nil
}

// SearchPaths lists the locations Load checks, in order.
func (l *Loader) SearchPaths() []string {
	var paths []string
	if l.workDir != "" {
		paths = append(paths, filepath.Join(l.workDir, ConfigFileName))
	}
	return append(paths, UserConfigPath())
}

// ConfigFileUsed returns the file Load read, or "" when running on
// defaults.
func (l *Loader) ConfigFileUsed() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.viper.ConfigFileUsed()
}

// Watch reloads the configuration whenever the loaded file changes and
// hands the result to onChange. onChange runs on the watcher goroutine.
// Watch requires a config file to have been loaded.
func (l *Loader) Watch(onChange func(event fsnotify.Event, cfg *Config, err error)) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.viper.ConfigFileUsed() == "" {
		return fmt.Errorf("watch config requires a loaded config file")
	}

	l.viper.OnConfigChange(func(e fsnotify.Event) {
		l.mu.Lock()
		cfg, err := decode(l.viper)
		l.mu.Unlock()
		if onChange != nil {
			onChange(e, cfg, err)
		}
	})
	l.viper.WatchConfig()
	return nil
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ConfigNotFoundError is returned when the config file doesn't exist
type ConfigNotFoundError struct {
	Path string
}

func (e *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("configuration file not found: %s", e.Path)
}

// IsConfigNotFound returns true if the error is a ConfigNotFoundError
func IsConfigNotFound(err error) bool {
	var target *ConfigNotFoundError
	return errors.As(err, &target)
}
