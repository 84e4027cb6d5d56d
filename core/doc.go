// Package core defines the shared types of the ringlog pipeline.
//
// It provides the Level type for severity filtering, the Range type
// that describes the inclusive severity window allowed through to the
// buffer, the fixed-size Entry type holding one rendered log line, and
// the Ring type, a statically-bounded circular queue of entries.
//
// All memory is allocated once at construction. Entries live in fixed
// 256-byte slots and the ring never grows, which keeps the worst-case
// memory footprint known up front. Push and Pop copy bytes in and out
// of the slots; neither ever blocks, and both return immediately with
// ErrFull or ErrEmpty when the operation cannot proceed.
package core
