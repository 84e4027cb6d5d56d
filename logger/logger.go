package logger

import (
	"fmt"
	"io"
	"runtime"

	"github.com/philipp01105/ringlog/console"
	"github.com/philipp01105/ringlog/core"
	"github.com/philipp01105/ringlog/formatter"
	"github.com/philipp01105/ringlog/transmit"
)

// Config holds logger configuration. It is read by every write and
// must not change after New.
type Config struct {
	// Range is the severity window let through to the ring buffer
	// (default: RangeAll, the zero value)
	Range core.Range
	// UseTimestamp enables the [<ticks>] prefix on buffered lines
	UseTimestamp bool
	// RingCapacity is the number of entry slots (default: 16)
	RingCapacity int
	// Echo, when non-nil, receives every accepted write synchronously
	// through a best-effort console sink
	Echo io.Writer
	// UseColor enables ANSI colors on the echo sink only; the
	// buffered pipeline always stays plain
	UseColor bool
	// Clock supplies tick counts (default: core.Ticks)
	Clock core.Clock
}

// DefaultConfig returns the conventional boot configuration: all
// severities, timestamps on, color on. No echo sink is attached.
func DefaultConfig() Config {
	return Config{
		Range:        core.RangeAll,
		UseTimestamp: true,
		UseColor:     true,
		RingCapacity: core.DefaultRingCapacity,
	}
}

// Logger owns one ring buffer, its configuration, and the pipeline
// counters. Writes are safe from any number of goroutines; exactly
// one consumer may call DrainOne.
type Logger struct {
	cfg   Config
	fmtr  *formatter.Formatter
	ring  *core.Ring
	echo  *console.Sink
	stats Stats
}

// New creates a Logger. Zero-value fields of cfg fall back to their
// documented defaults.
func New(cfg Config) *Logger {
	if cfg.RingCapacity < 1 {
		cfg.RingCapacity = core.DefaultRingCapacity
	}
	if cfg.Clock == nil {
		cfg.Clock = core.Ticks
	}

	l := &Logger{
		cfg: cfg,
		fmtr: formatter.New(formatter.Config{
			UseTimestamp: cfg.UseTimestamp,
			Clock:        cfg.Clock,
		}),
		ring: core.NewRing(cfg.RingCapacity),
	}
	if cfg.Echo != nil {
		l.echo = console.New(cfg.Echo, console.Config{
			UseColor:     cfg.UseColor,
			UseTimestamp: cfg.UseTimestamp,
			Clock:        cfg.Clock,
		})
	}
	return l
}

// Write renders one event and enqueues it. It reports true when the
// line was accepted into the ring. False covers both a severity
// filter rejection and a full ring; call sites are not meant to
// distinguish the two, Stats does.
//
// Write never blocks. file and line name the source location; the
// message is built with fmt.Sprintf when args are present.
func (l *Logger) Write(level core.Level, file string, line int, format string, args ...any) bool {
	if !l.cfg.Range.Allows(level) {
		l.stats.incFiltered()
		return false
	}

	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	var scratch [core.EntryMaxSize]byte
	rendered := l.fmtr.Append(scratch[:0], level, file, line, msg)

	if err := l.ring.Push(rendered); err != nil {
		l.stats.incDroppedFull()
		return false
	}
	l.stats.incEnqueued()

	if l.echo != nil {
		l.echo.Print(level, file, line, msg)
	}
	return true
}

// logf captures the caller at the given depth and delegates to Write.
func (l *Logger) logf(calldepth int, level core.Level, format string, args ...any) {
	if !l.cfg.Range.Allows(level) {
		l.stats.incFiltered()
		return
	}
	_, file, line, ok := runtime.Caller(calldepth)
	if !ok {
		file, line = "???", 0
	}
	l.Write(level, file, line, format, args...)
}

// Fatalf logs an unrecoverable error. Logging failures is never
// fatal; the process keeps running.
func (l *Logger) Fatalf(format string, args ...any) {
	l.logf(2, core.LevelFatal, format, args...)
}

// Errorf logs an error message
func (l *Logger) Errorf(format string, args ...any) {
	l.logf(2, core.LevelError, format, args...)
}

// Warnf logs a warning message
func (l *Logger) Warnf(format string, args ...any) {
	l.logf(2, core.LevelWarn, format, args...)
}

// Infof logs an informational message
func (l *Logger) Infof(format string, args ...any) {
	l.logf(2, core.LevelInfo, format, args...)
}

// Debugf logs a debugging message
func (l *Logger) Debugf(format string, args ...any) {
	l.logf(2, core.LevelDebug, format, args...)
}

// Tracef logs a tracing message
func (l *Logger) Tracef(format string, args ...any) {
	l.logf(2, core.LevelTrace, format, args...)
}

// DrainOne pops the oldest queued line and hands it to t.
//
// It returns nil when a line was transmitted and core.ErrEmpty when
// nothing was queued. When the medium reports failure the line is
// re-enqueued once at the tail and the wrapped failure is returned;
// if the ring is full at that moment the line is lost for good.
// DrainOne is the single-consumer side of the pipeline: call it from
// exactly one goroutine.
func (l *Logger) DrainOne(t transmit.Transmitter) error {
	var buf [core.EntryMaxSize]byte
	n, err := l.ring.Pop(buf[:])
	if err != nil {
		return err
	}

	if err := t.Transmit(buf[:n]); err != nil {
		l.stats.incTransmitFailed()
		if l.ring.Push(buf[:n]) != nil {
			l.stats.incRetryLost()
		}
		return fmt.Errorf("transmit: %w", err)
	}

	l.stats.incTransmitted()
	return nil
}

// Count returns the number of queued lines.
func (l *Logger) Count() int {
	return l.ring.Len()
}

// Capacity returns the total number of ring slots.
func (l *Logger) Capacity() int {
	return l.ring.Cap()
}

// Flush discards every queued line and leaves the configuration
// untouched. Only call it when no producer or consumer is active,
// typically at shutdown or reset.
func (l *Logger) Flush() {
	l.ring.Clear()
}

// Stats returns a snapshot of the pipeline counters.
func (l *Logger) Stats() Snapshot {
	return l.stats.Snapshot()
}
