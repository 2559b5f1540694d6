package config

const (
	defaultPreset    = "console"
	defaultLevel     = "info"
	defaultLogPath   = "~/.local/share/logbook/logbook.log"
	defaultStorePath = "~/.local/share/logbook/logbook.db"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Preset:    defaultPreset,
			Level:     defaultLevel,
			Active:    true,
			Path:      defaultLogPath,
			StorePath: defaultStorePath,
		},
	}
}
