package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

// ErrConfigExists is returned when writing would overwrite an existing
// file without force.
var ErrConfigExists = errors.New("config file already exists")

// WriteDefault scaffolds DefaultConfigYAML at path. An existing file is
// only replaced when force is set.
func WriteDefault(path string, force bool) error {
	return writeFile(path, []byte(DefaultConfigYAML), force)
}

// Save encodes cfg as YAML and writes it to path.
func Save(path string, cfg *Config, force bool) error {
	encoded, err := Encode(cfg)
	if err != nil {
		return err
	}
	return writeFile(path, encoded, force)
}

// Encode renders cfg as hudkit.yaml content.
func Encode(cfg *Config) ([]byte, error) {
	encoded, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return encoded, nil
}

func writeFile(path string, data []byte, force bool) error {
	return withFileLock(path, func() error {
		if !force {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%w: %s", ErrConfigExists, path)
			} else if !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to stat config %s: %w", path, err)
			}
		}
		return atomicWriteFile(path, data, 0o644)
	})
}

// atomicWriteFile writes data to path using a temp-file + fsync + rename
// strategy so that a crash mid-write never leaves the target truncated or
// partial. The temp file is created in the target's parent directory to
// guarantee same-filesystem rename semantics on POSIX.
func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".hudkit-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing temp file for %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("syncing temp file for %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file for %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), perm); err != nil {
		return fmt.Errorf("setting permissions on temp file for %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("renaming temp file to %s: %w", path, err)
	}

	success = true
	return nil
}

// withFileLock acquires an advisory file lock on path+".lock" before running fn,
// providing cross-process mutual exclusion for config file writes.
func withFileLock(path string, fn func() error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory for %s: %w", path, err)
	}

	fl := flock.New(path + ".lock")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	locked, err := fl.TryLockContext(ctx, 100*time.Millisecond)
	if err != nil {
		return fmt.Errorf("acquiring file lock for %s: %w", path, err)
	}
	if !locked {
		return fmt.Errorf("timed out acquiring file lock for %s", path)
	}
	defer func() { _ = fl.Unlock() }()

	return fn()
}
