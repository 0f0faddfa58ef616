package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// ConfigFileName is the default configuration file name
	ConfigFileName = "hudkit.yaml"

	// ConfigDirEnv overrides the user config directory.
	ConfigDirEnv = "HUDKIT_CONFIG_DIR"
	// StateDirEnv overrides the state directory that holds logs.
	StateDirEnv = "HUDKIT_STATE_DIR"

	appDir     = "hudkit"
	logsSubdir = "logs"
)

// ConfigDir returns the user config directory: $HUDKIT_CONFIG_DIR, else
// $XDG_CONFIG_HOME/hudkit.
func ConfigDir() string {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, appDir)
}

// StateDir returns the state directory: $HUDKIT_STATE_DIR, else
// $XDG_STATE_HOME/hudkit.
func StateDir() string {
	if dir := os.Getenv(StateDirEnv); dir != "" {
		return dir
	}
	return filepath.Join(xdg.StateHome, appDir)
}

// LogsDir returns the directory holding the rotated log file.
func LogsDir() string {
	return filepath.Join(StateDir(), logsSubdir)
}

// UserConfigPath returns the path of the user-level hudkit.yaml.
func UserConfigPath() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}
