package config

import (
	"fmt"

	"github.com/rileyhilliard/sidebar/internal/errors"
	"github.com/rileyhilliard/sidebar/internal/render"
)

// MaxFrequency bounds ui.frequency; faster than this the terminal cannot keep up.
const MaxFrequency = 120

// Validate checks the config and returns a structured error for the first
// problem found.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but sidebar only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade sidebar or lower the version field")
	}

	if cfg.UI.Frequency < 1 || cfg.UI.Frequency > MaxFrequency {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("ui.frequency %d is out of range", cfg.UI.Frequency),
			fmt.Sprintf("Use a frame rate between 1 and %d Hz (20 is typical)", MaxFrequency))
	}

	switch cfg.Hardware.SatelliteTelemetry {
	case SatelliteAuto, SatelliteOn, SatelliteOff:
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("hardware.satellite_telemetry: unknown value %q", cfg.Hardware.SatelliteTelemetry),
			"Use auto, on, or off")
	}

	if cfg.Params.Dir == "" {
		return errors.New(errors.ErrConfig,
			"params.dir is empty",
			"Point params.dir at the device params directory, e.g. /data/params/d")
	}

	switch cfg.Output.Color {
	case render.ColorAuto, render.ColorAlways, render.ColorNever:
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("output.color: unknown value %q", cfg.Output.Color),
			"Use auto, always, or never")
	}

	return nil
}
