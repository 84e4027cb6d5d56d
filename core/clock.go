package core

import "time"

// Clock returns a monotonic millisecond tick count for the timestamp
// segment of the wire format. Injectable so tests can render
// deterministic lines.
type Clock func() uint32

var processStart = time.Now()

// Ticks is the default Clock: milliseconds elapsed since process
// start. It is derived from the runtime's monotonic reading, so wall
// clock adjustments never move it backwards.
func Ticks() uint32 {
	return uint32(time.Since(processStart) / time.Millisecond)
}
