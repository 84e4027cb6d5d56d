package logger

import "sync/atomic"

// Stats tracks pipeline counters. All fields are updated atomically;
// a Stats value must not be copied after first use.
type Stats struct {
	filtered       uint64
	droppedFull    uint64
	enqueued       uint64
	transmitted    uint64
	transmitFailed uint64
	retryLost      uint64
}

func (s *Stats) incFiltered()       { atomic.AddUint64(&s.filtered, 1) }
func (s *Stats) incDroppedFull()    { atomic.AddUint64(&s.droppedFull, 1) }
func (s *Stats) incEnqueued()       { atomic.AddUint64(&s.enqueued, 1) }
func (s *Stats) incTransmitted()    { atomic.AddUint64(&s.transmitted, 1) }
func (s *Stats) incTransmitFailed() { atomic.AddUint64(&s.transmitFailed, 1) }
func (s *Stats) incRetryLost()      { atomic.AddUint64(&s.retryLost, 1) }

// Snapshot is a point-in-time copy of the pipeline counters.
type Snapshot struct {
	// Filtered counts writes rejected by the severity window. A
	// policy outcome, not a failure.
	Filtered uint64
	// DroppedFull counts writes refused because the ring was full.
	DroppedFull uint64
	// Enqueued counts lines accepted into the ring.
	Enqueued uint64
	// Transmitted counts lines successfully handed to the medium.
	Transmitted uint64
	// TransmitFailed counts send attempts the medium reported failed.
	TransmitFailed uint64
	// RetryLost counts lines permanently lost because the re-enqueue
	// after a failed transmission found the ring full.
	RetryLost uint64
}

// Snapshot returns a consistent-enough copy of the counters for
// telemetry. Individual loads are atomic; the set as a whole is not
// taken under a lock.
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		Filtered:       atomic.LoadUint64(&s.filtered),
		DroppedFull:    atomic.LoadUint64(&s.droppedFull),
		Enqueued:       atomic.LoadUint64(&s.enqueued),
		Transmitted:    atomic.LoadUint64(&s.transmitted),
		TransmitFailed: atomic.LoadUint64(&s.transmitFailed),
		RetryLost:      atomic.LoadUint64(&s.retryLost),
	}
}

// Dropped returns the total number of messages that never reached the
// medium for any reason.
func (s Snapshot) Dropped() uint64 {
	return s.Filtered + s.DroppedFull + s.RetryLost
}
