package preset

import (
	"fmt"
	"io"

	"logbook/internal/config"
	"logbook/internal/logger"
)

// FromConfig wires the preset named by cfg and returns its context plus a
// closer for destinations that own resources. The closer is nil for the
// console preset.
func FromConfig(cfg *config.Config) (*logger.Context, io.Closer, error) {
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", logger.ErrConfig, err)
	}
	level, err := logger.ParseSeverity(cfg.Logging.Level)
	if err != nil {
		return nil, nil, err
	}

	var ctx *logger.Context
	var closer io.Closer
	switch cfg.Logging.Preset {
	case "console":
		ctx, err = Console(level)
	case "file":
		var handle *Handle
		if handle, err = File(level, cfg.Logging.Path); err == nil {
			ctx, closer = handle.Context(), handle
		}
	case "tabular":
		var handle *Handle
		if handle, err = Tabular(level, cfg.Logging.Path); err == nil {
			ctx, closer = handle.Context(), handle
		}
	case "store":
		var handle *StoreHandle
		if handle, err = Store(level, cfg.Logging.StorePath); err == nil {
			ctx, closer = handle.Context(), handle
		}
	default:
		err = fmt.Errorf("%w: unknown preset %q", logger.ErrConfig, cfg.Logging.Preset)
	}
	if err != nil {
		return nil, nil, err
	}

	if !cfg.Logging.Active {
		ctx.Toggle(false)
	}
	return ctx, closer, nil
}
