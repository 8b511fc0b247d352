package panel

import "github.com/rileyhilliard/sidebar/internal/telemetry"

// DefaultBaseFrequency is the UI frame rate in Hz.
const DefaultBaseFrequency = 20

// connectivityPeriodSeconds is how many seconds pass between connectivity
// checks.
const connectivityPeriodSeconds = 6

// Cadence decides which fields a frame is allowed to refresh.
type Cadence struct {
	baseFrequency int
}

// NewCadence returns a cadence for a UI running at baseFrequency Hz. Values
// below 1 fall back to DefaultBaseFrequency.
func NewCadence(baseFrequency int) Cadence {
	if baseFrequency < 1 {
		baseFrequency = DefaultBaseFrequency
	}
	return Cadence{baseFrequency: baseFrequency}
}

// BaseFrequency returns the UI frame rate in Hz.
func (c Cadence) BaseFrequency() int {
	if c.baseFrequency < 1 {
		return DefaultBaseFrequency
	}
	return c.baseFrequency
}

// ConnectivityPeriod is the number of frames between connectivity checks.
func (c Cadence) ConnectivityPeriod() uint64 {
	return uint64(connectivityPeriodSeconds * c.BaseFrequency())
}

// ConnectivityDue is gate 1: true iff index is a multiple of the period.
func (c Cadence) ConnectivityDue(index uint64) bool {
	return index%c.ConnectivityPeriod() == 0
}

// BatteryDue is gate 2: true iff deviceState or pandaState published.
func (c Cadence) BatteryDue(changed telemetry.ChannelSet) bool {
	return changed.Has(telemetry.ChannelDeviceState) || changed.Has(telemetry.ChannelPandaState)
}
