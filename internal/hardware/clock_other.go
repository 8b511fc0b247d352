//go:build !linux

package hardware

import "time"

// BootClock falls back to process uptime where CLOCK_BOOTTIME is unavailable.
type BootClock struct{}

// SinceBoot returns the time since the process started.
func (BootClock) SinceBoot() time.Duration {
	return processClock()
}
