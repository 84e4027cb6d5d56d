package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/philipp01105/ringlog/core"
)

// collector is a Transmitter that records every line it receives.
type collector struct {
	lines []string
}

func (c *collector) Transmit(p []byte) error {
	c.lines = append(c.lines, string(p))
	return nil
}

func TestWriteAndDrain(t *testing.T) {
	log := New(Config{UseTimestamp: false})

	if !log.Write(core.LevelInfo, "a/b/main.c", 45, "System initialized") {
		t.Fatal("Write() = false, want true")
	}
	if log.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", log.Count())
	}

	var sink collector
	if err := log.DrainOne(&sink); err != nil {
		t.Fatalf("DrainOne() error = %v", err)
	}
	if len(sink.lines) != 1 {
		t.Fatalf("transmitted %d lines, want 1", len(sink.lines))
	}

	want := "[INFO ][main.c:45]: System initialized\r\n"
	if sink.lines[0] != want {
		t.Errorf("line = %q, want %q", sink.lines[0], want)
	}
	if log.Count() != 0 {
		t.Errorf("Count() after drain = %d, want 0", log.Count())
	}
}

func TestWriteFormatsArgs(t *testing.T) {
	log := New(Config{})

	log.Write(core.LevelWarn, "bms.c", 12, "cell %d at %dmV", 3, 2987)

	var sink collector
	if err := log.DrainOne(&sink); err != nil {
		t.Fatalf("DrainOne() error = %v", err)
	}
	if !strings.Contains(sink.lines[0], "cell 3 at 2987mV") {
		t.Errorf("line = %q, want formatted message", sink.lines[0])
	}
}

func TestWriteFiltered(t *testing.T) {
	log := New(Config{Range: core.RangeFatalToWarn})

	for _, level := range []core.Level{core.LevelInfo, core.LevelDebug, core.LevelTrace} {
		if log.Write(level, "main.c", 1, "quiet") {
			t.Errorf("Write(%v) = true, want filtered", level)
		}
	}
	if log.Count() != 0 {
		t.Fatalf("Count() = %d, want 0 after filtered writes", log.Count())
	}

	for _, level := range []core.Level{core.LevelFatal, core.LevelError, core.LevelWarn} {
		if !log.Write(level, "main.c", 1, "loud") {
			t.Errorf("Write(%v) = false, want enqueued", level)
		}
	}
	if log.Count() != 3 {
		t.Errorf("Count() = %d, want 3", log.Count())
	}

	snap := log.Stats()
	if snap.Filtered != 3 {
		t.Errorf("Stats().Filtered = %d, want 3", snap.Filtered)
	}
	if snap.Enqueued != 3 {
		t.Errorf("Stats().Enqueued = %d, want 3", snap.Enqueued)
	}
}

func TestWriteDropsWhenFull(t *testing.T) {
	log := New(Config{RingCapacity: 2})

	if !log.Write(core.LevelInfo, "main.c", 1, "A") {
		t.Fatal("Write(A) = false")
	}
	if !log.Write(core.LevelInfo, "main.c", 2, "B") {
		t.Fatal("Write(B) = false")
	}
	if log.Write(core.LevelInfo, "main.c", 3, "C") {
		t.Fatal("Write(C) = true, want dropped")
	}
	if log.Count() != 2 {
		t.Errorf("Count() = %d, want 2", log.Count())
	}

	var sink collector
	log.DrainOne(&sink)
	log.DrainOne(&sink)
	if len(sink.lines) != 2 {
		t.Fatalf("transmitted %d lines, want 2", len(sink.lines))
	}
	if !strings.Contains(sink.lines[0], ": A\r\n") || !strings.Contains(sink.lines[1], ": B\r\n") {
		t.Errorf("drained lines out of order or wrong: %q", sink.lines)
	}

	if snap := log.Stats(); snap.DroppedFull != 1 {
		t.Errorf("Stats().DroppedFull = %d, want 1", snap.DroppedFull)
	}
}

func TestDrainOneEmpty(t *testing.T) {
	log := New(Config{})

	var sink collector
	if err := log.DrainOne(&sink); !errors.Is(err, core.ErrEmpty) {
		t.Fatalf("DrainOne() on empty logger = %v, want core.ErrEmpty", err)
	}
	if len(sink.lines) != 0 {
		t.Errorf("transmitter invoked on empty queue")
	}
}

// failOnce fails the first transmission and collects the rest.
type failOnce struct {
	collector
	failed bool
}

func (f *failOnce) Transmit(p []byte) error {
	if !f.failed {
		f.failed = true
		return errors.New("uart busy")
	}
	return f.collector.Transmit(p)
}

func TestDrainOneRetransmit(t *testing.T) {
	log := New(Config{UseTimestamp: false})
	log.Write(core.LevelInfo, "main.c", 45, "once")

	sink := &failOnce{}
	err := log.DrainOne(sink)
	if err == nil || errors.Is(err, core.ErrEmpty) {
		t.Fatalf("DrainOne() = %v, want transmit failure", err)
	}
	if log.Count() != 1 {
		t.Fatalf("Count() after failed transmit = %d, want 1 (re-enqueued)", log.Count())
	}

	// The very next drain must pop the same bytes again.
	if err := log.DrainOne(sink); err != nil {
		t.Fatalf("second DrainOne() error = %v", err)
	}
	want := "[INFO ][main.c:45]: once\r\n"
	if len(sink.lines) != 1 || sink.lines[0] != want {
		t.Errorf("retransmitted %q, want %q", sink.lines, want)
	}

	snap := log.Stats()
	if snap.TransmitFailed != 1 || snap.Transmitted != 1 {
		t.Errorf("Stats() = %+v, want 1 failure and 1 success", snap)
	}
}

// alwaysFail refuses every transmission.
type alwaysFail struct{}

func (alwaysFail) Transmit(p []byte) error {
	return errors.New("medium down")
}

func TestDrainOneFailedEntryReordered(t *testing.T) {
	log := New(Config{RingCapacity: 2})
	log.Write(core.LevelInfo, "main.c", 1, "A")
	log.Write(core.LevelInfo, "main.c", 2, "B")

	// Pop A, fail, re-enqueue succeeds (the slot was just freed).
	if err := log.DrainOne(alwaysFail{}); err == nil {
		t.Fatal("DrainOne() = nil, want failure")
	}
	if log.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", log.Count())
	}
	if snap := log.Stats(); snap.RetryLost != 0 {
		t.Fatalf("Stats().RetryLost = %d, want 0", snap.RetryLost)
	}

	// A failed entry is now behind B: accepted reordering under the
	// best-effort retry policy.
	var sink collector
	log.DrainOne(&sink)
	log.DrainOne(&sink)
	if !strings.Contains(sink.lines[0], ": B\r\n") || !strings.Contains(sink.lines[1], ": A\r\n") {
		t.Errorf("expected retried entry behind newer one, got %q", sink.lines)
	}
}

// racingFail simulates a producer slipping in between pop and
// re-enqueue: it refills the freed slot from inside Transmit and then
// reports failure, so the re-enqueue finds the ring full.
type racingFail struct {
	log *Logger
}

func (r racingFail) Transmit(p []byte) error {
	r.log.Write(core.LevelInfo, "main.c", 99, "interloper")
	return errors.New("medium down")
}

func TestDrainOneRetryLostWhenFull(t *testing.T) {
	log := New(Config{RingCapacity: 2})
	log.Write(core.LevelInfo, "main.c", 1, "A")
	log.Write(core.LevelInfo, "main.c", 2, "B")

	if err := log.DrainOne(racingFail{log}); err == nil {
		t.Fatal("DrainOne() = nil, want failure")
	}

	// A is gone for good: B and the interloper hold both slots.
	if log.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", log.Count())
	}
	if snap := log.Stats(); snap.RetryLost != 1 {
		t.Errorf("Stats().RetryLost = %d, want 1", snap.RetryLost)
	}

	var sink collector
	log.DrainOne(&sink)
	log.DrainOne(&sink)
	for _, line := range sink.lines {
		if strings.Contains(line, ": A\r\n") {
			t.Errorf("lost entry resurfaced: %q", sink.lines)
		}
	}
}

func TestFlush(t *testing.T) {
	log := New(Config{Range: core.RangeFatalToInfo})
	log.Write(core.LevelInfo, "main.c", 1, "one")
	log.Write(core.LevelInfo, "main.c", 2, "two")

	log.Flush()

	if log.Count() != 0 {
		t.Errorf("Count() after Flush() = %d, want 0", log.Count())
	}
	// Config survives a flush.
	if log.Write(core.LevelDebug, "main.c", 3, "still filtered") {
		t.Error("severity window lost after Flush()")
	}
	if !log.Write(core.LevelInfo, "main.c", 4, "still accepted") {
		t.Error("accepted write refused after Flush()")
	}
}

func TestLevelHelpersCaptureCaller(t *testing.T) {
	log := New(Config{UseTimestamp: false})

	log.Infof("from helper")

	var sink collector
	if err := log.DrainOne(&sink); err != nil {
		t.Fatalf("DrainOne() error = %v", err)
	}
	if !strings.Contains(sink.lines[0], "[logger_test.go:") {
		t.Errorf("line = %q, want caller file logger_test.go", sink.lines[0])
	}
}

func TestEchoSink(t *testing.T) {
	var echo bytes.Buffer
	log := New(Config{Echo: &echo, UseColor: false, UseTimestamp: false})

	log.Write(core.LevelInfo, "main.c", 45, "System initialized")

	want := "[INFO ][main.c:45]: System initialized\r\n"
	if echo.String() != want {
		t.Errorf("echo output = %q, want %q", echo.String(), want)
	}
	// The buffered copy is still queued and independent of the echo.
	if log.Count() != 1 {
		t.Errorf("Count() = %d, want 1", log.Count())
	}
}

func TestEchoSkippedWhenDropped(t *testing.T) {
	var echo bytes.Buffer
	log := New(Config{Echo: &echo, RingCapacity: 1, UseTimestamp: false})

	log.Write(core.LevelInfo, "main.c", 1, "kept")
	log.Write(core.LevelInfo, "main.c", 2, "dropped")

	if strings.Contains(echo.String(), "dropped") {
		t.Errorf("echo received a dropped write: %q", echo.String())
	}
}

func TestDefaultLogger(t *testing.T) {
	old := Default()
	defer SetDefault(old)

	log := New(Config{UseTimestamp: false})
	SetDefault(log)

	Infof("via package helper")

	var sink collector
	if err := log.DrainOne(&sink); err != nil {
		t.Fatalf("DrainOne() error = %v", err)
	}
	if !strings.Contains(sink.lines[0], "via package helper") {
		t.Errorf("line = %q, want package helper message", sink.lines[0])
	}
	if !strings.Contains(sink.lines[0], "[logger_test.go:") {
		t.Errorf("line = %q, want caller file logger_test.go", sink.lines[0])
	}
}
