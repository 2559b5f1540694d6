package config

import (
	"fmt"

	"logbook/internal/logger"
)

var knownPresets = map[string]struct{}{
	"console": {},
	"file":    {},
	"tabular": {},
	"store":   {},
}

// Validate ensures the configuration can be wired into a preset.
func (c *Config) Validate() error {
	if _, ok := knownPresets[c.Logging.Preset]; !ok {
		return fmt.Errorf("logging.preset: unknown preset %q", c.Logging.Preset)
	}
	if _, err := logger.ParseSeverity(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	switch c.Logging.Preset {
	case "file", "tabular":
		if c.Logging.Path == "" {
			return fmt.Errorf("logging.path: required for the %s preset", c.Logging.Preset)
		}
	case "store":
		if c.Logging.StorePath == "" {
			return fmt.Errorf("logging.store_path: required for the store preset")
		}
	}
	return nil
}
