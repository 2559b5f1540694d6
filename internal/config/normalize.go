package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Normalize trims fields and expands home-relative paths in place.
func (c *Config) Normalize() {
	c.Logging.Preset = strings.ToLower(strings.TrimSpace(c.Logging.Preset))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Path = expandPath(strings.TrimSpace(c.Logging.Path))
	c.Logging.StorePath = expandPath(strings.TrimSpace(c.Logging.StorePath))
}

func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
