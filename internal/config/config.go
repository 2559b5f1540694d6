package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Logging selects the preset wired at startup and its destination.
type Logging struct {
	Preset    string `toml:"preset"`
	Level     string `toml:"level"`
	Active    bool   `toml:"active"`
	Path      string `toml:"path"`
	StorePath string `toml:"store_path"`
}

// Config is the root configuration document.
type Config struct {
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the standard config file location.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "logbook", "config.toml"), nil
}

// Load reads the config file at path, falling back to the default location
// when path is empty. It returns the effective config, the resolved path, and
// whether a file existed there. A missing file is not an error; defaults
// apply.
func Load(path string) (Config, string, bool, error) {
	cfg := Default()

	resolved := strings.TrimSpace(path)
	if resolved == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return cfg, "", false, err
		}
		resolved = defaultPath
	}
	resolved = expandPath(resolved)

	data, err := os.ReadFile(resolved)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		cfg.Normalize()
		return cfg, resolved, false, nil
	case err != nil:
		return cfg, resolved, false, fmt.Errorf("read config %s: %w", resolved, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, resolved, true, fmt.Errorf("parse config %s: %w", resolved, err)
	}
	cfg.Normalize()
	return cfg, resolved, true, nil
}

// WriteSample writes the annotated sample config to path, refusing to
// overwrite an existing file.
func WriteSample(path string) error {
	trimmed := expandPath(strings.TrimSpace(path))
	if trimmed == "" {
		return errors.New("config: empty path")
	}
	if _, err := os.Stat(trimmed); err == nil {
		return fmt.Errorf("config: %s already exists", trimmed)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", trimmed, err)
	}
	if err := os.MkdirAll(filepath.Dir(trimmed), 0o755); err != nil {
		return fmt.Errorf("ensure config directory: %w", err)
	}
	if err := os.WriteFile(trimmed, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
