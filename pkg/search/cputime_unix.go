//go:build unix

package search

import (
	"time"

	"golang.org/x/sys/unix"
)

// cpuTime returns the user CPU time consumed by the process so far, summed
// across all threads. The run summary reports the difference between two
// readings.
func cpuTime() time.Duration {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0
	}
	return time.Duration(ru.Utime.Sec)*time.Second + time.Duration(ru.Utime.Usec)*time.Microsecond
}
