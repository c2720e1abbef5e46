package cereal

import (
	"time"

	"golang.org/x/sys/unix"
)

// GetTime returns nanoseconds on CLOCK_BOOTTIME, the clock logMonoTime uses.
func GetTime() uint64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_BOOTTIME, &ts); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return uint64(ts.Nano())
}
