// Package hardware describes the platform the panel runs on: which optional
// telemetry it can show and how to read boot-relative time.
package hardware

import (
	"os"
	"time"
)

// Capabilities are platform feature flags injected into the classifier.
type Capabilities struct {
	// SatelliteTelemetry is set on hardware with a GNSS receiver whose
	// satellite count is worth showing while driving.
	SatelliteTelemetry bool
}

// SatelliteMarker is a file present only on GNSS-capable devices.
var SatelliteMarker = "/TICI"

// Detect probes the running device.
func Detect() Capabilities {
	_, err := os.Stat(SatelliteMarker)
	return Capabilities{SatelliteTelemetry: err == nil}
}

// Clock reports time elapsed since boot, the same timebase other processes use
// when they write timestamps into the params store.
type Clock interface {
	SinceBoot() time.Duration
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Duration

// SinceBoot calls f.
func (f ClockFunc) SinceBoot() time.Duration {
	return f()
}

// FixedClock always reports the same instant. Handy in tests.
type FixedClock time.Duration

// SinceBoot returns c.
func (c FixedClock) SinceBoot() time.Duration {
	return time.Duration(c)
}
