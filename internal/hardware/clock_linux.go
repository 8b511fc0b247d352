//go:build linux

package hardware

import (
	"time"

	"golang.org/x/sys/unix"
)

// BootClock reads CLOCK_BOOTTIME, which keeps counting through suspend.
type BootClock struct{}

// SinceBoot returns the time since boot.
func (BootClock) SinceBoot() time.Duration {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_BOOTTIME, &ts); err != nil {
		return processClock()
	}
	return time.Duration(ts.Nano())
}
