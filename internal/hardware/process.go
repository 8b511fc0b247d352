package hardware

import "time"

var processStart = time.Now()

func processClock() time.Duration {
	return time.Since(processStart)
}
