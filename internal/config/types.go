package config

import (
	"os"
	"path/filepath"

	"github.com/rileyhilliard/sidebar/internal/hardware"
	"github.com/rileyhilliard/sidebar/internal/panel"
	"github.com/rileyhilliard/sidebar/internal/params"
	"github.com/rileyhilliard/sidebar/internal/render"
)

// CurrentConfigVersion is the schema version for the config file.
const CurrentConfigVersion = 1

// Config represents the complete .sidebar.yaml configuration file.
type Config struct {
	Version   int             `yaml:"version" mapstructure:"version"`
	UI        UIConfig        `yaml:"ui" mapstructure:"ui"`
	Hardware  HardwareConfig  `yaml:"hardware" mapstructure:"hardware"`
	Params    ParamsConfig    `yaml:"params" mapstructure:"params"`
	Telemetry TelemetryConfig `yaml:"telemetry" mapstructure:"telemetry"`
	Output    OutputConfig    `yaml:"output" mapstructure:"output"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// UIConfig controls the panel's frame loop.
type UIConfig struct {
	// Frequency is the UI frame rate in Hz. Connectivity is checked every
	// 6 × Frequency frames.
	Frequency int `yaml:"frequency" mapstructure:"frequency"`
}

// Satellite telemetry modes.
const (
	SatelliteAuto = "auto"
	SatelliteOn   = "on"
	SatelliteOff  = "off"
)

// HardwareConfig overrides platform detection.
type HardwareConfig struct {
	// SatelliteTelemetry is "auto" (probe the device), "on" or "off".
	SatelliteTelemetry string `yaml:"satellite_telemetry" mapstructure:"satellite_telemetry"`
}

// Capabilities resolves the configured hardware flags.
func (h HardwareConfig) Capabilities() hardware.Capabilities {
	switch h.SatelliteTelemetry {
	case SatelliteOn:
		return hardware.Capabilities{SatelliteTelemetry: true}
	case SatelliteOff:
		return hardware.Capabilities{}
	default:
		return hardware.Detect()
	}
}

// ParamsConfig locates the key-value store.
type ParamsConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// TelemetryConfig selects the frame source.
type TelemetryConfig struct {
	// Replay is a recording to play back. Empty uses the synthetic source.
	Replay string `yaml:"replay" mapstructure:"replay"`

	// Loop restarts the recording when it ends.
	Loop bool `yaml:"loop" mapstructure:"loop"`
}

// OutputConfig controls terminal output.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	Color string `yaml:"color" mapstructure:"color"`
}

// LogConfig controls where the TUI writes its log.
type LogConfig struct {
	File string `yaml:"file" mapstructure:"file"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		UI: UIConfig{
			Frequency: panel.DefaultBaseFrequency,
		},
		Hardware: HardwareConfig{
			SatelliteTelemetry: SatelliteAuto,
		},
		Params: ParamsConfig{
			Dir: params.DefaultDir,
		},
		Telemetry: TelemetryConfig{
			Loop: true,
		},
		Output: OutputConfig{
			Color: render.ColorAuto,
		},
		Log: LogConfig{
			File: DefaultLogFile(),
		},
	}
}

// DefaultLogFile is sidebar.log in the system temp directory.
func DefaultLogFile() string {
	return filepath.Join(os.TempDir(), "sidebar.log")
}
