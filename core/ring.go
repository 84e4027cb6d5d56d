package core

import (
	"errors"
	"sync"
)

// DefaultRingCapacity is the number of entry slots a Ring holds unless
// configured otherwise.
const DefaultRingCapacity = 16

var (
	// ErrFull is returned by Push when every slot is occupied. The
	// incoming entry is dropped; queued entries are never evicted.
	ErrFull = errors.New("ring buffer full")
	// ErrEmpty is returned by Pop when no entry is queued. It signals
	// "nothing to do", not a failure.
	ErrEmpty = errors.New("ring buffer empty")
)

// Ring is a fixed-capacity circular queue of rendered log lines with
// strict FIFO ordering. All slots are allocated once in NewRing and
// the queue never grows.
//
// A single mutex guards head, tail, count and the slot being copied,
// so Push may be called from any number of producer goroutines while
// one consumer calls Pop. Neither operation blocks beyond the copy
// itself: a full ring refuses the push and an empty ring refuses the
// pop, immediately.
type Ring struct {
	mu      sync.Mutex
	entries []Entry
	head    int // next write position
	tail    int // next read position
	count   int // occupied slots
}

// NewRing creates a ring with the given number of entry slots.
// Capacities below 1 fall back to DefaultRingCapacity.
func NewRing(capacity int) *Ring {
	if capacity < 1 {
		capacity = DefaultRingCapacity
	}
	return &Ring{entries: make([]Entry, capacity)}
}

// Push copies p into the slot at head and advances the queue. It
// returns ErrFull, leaving the queue untouched, when all slots are
// occupied. Lines longer than EntryMaxSize are truncated by the slot.
func (r *Ring) Push(p []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.count == len(r.entries) {
		return ErrFull
	}

	r.entries[r.head].Set(p)
	r.head = (r.head + 1) % len(r.entries)
	r.count++
	return nil
}

// Pop copies the oldest queued line into dst and frees its slot. It
// returns the number of bytes copied, or ErrEmpty when nothing is
// queued. dst should have room for EntryMaxSize bytes; a shorter dst
// receives a truncated copy.
func (r *Ring) Pop(dst []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.count == 0 {
		return 0, ErrEmpty
	}

	n := copy(dst, r.entries[r.tail].Bytes())
	r.tail = (r.tail + 1) % len(r.entries)
	r.count--
	return n, nil
}

// Len returns the number of occupied slots.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Cap returns the total number of slots.
func (r *Ring) Cap() int {
	return len(r.entries)
}

// Clear discards all queued entries and resets the queue to empty.
func (r *Ring) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.head = 0
	r.tail = 0
	r.count = 0
}
