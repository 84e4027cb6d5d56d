package console

import (
	"io"
	"strconv"
	"sync"

	"github.com/philipp01105/ringlog/core"
	"github.com/philipp01105/ringlog/formatter"
)

const colorReset = "\033[0m"

// Per-severity ANSI colors, bold for everything above trace.
var levelColors = [...]string{
	core.LevelFatal: "\033[1;35m",
	core.LevelError: "\033[1;31m",
	core.LevelWarn:  "\033[1;33m",
	core.LevelInfo:  "\033[1;32m",
	core.LevelDebug: "\033[1;36m",
	core.LevelTrace: "\033[0;37m",
}

// Config holds console sink configuration
type Config struct {
	// UseColor enables ANSI color decoration per severity
	UseColor bool
	// UseTimestamp enables the [<ticks>] prefix
	UseTimestamp bool
	// Clock supplies the tick count (default: core.Ticks)
	Clock core.Clock
}

// Sink writes decorated log lines synchronously to a writer. It owns
// its own render buffer and never touches the buffered pipeline.
type Sink struct {
	mu  sync.Mutex
	w   io.Writer
	buf [core.EntryMaxSize]byte
	cfg Config
}

// New creates a console sink writing to w.
func New(w io.Writer, cfg Config) *Sink {
	if cfg.Clock == nil {
		cfg.Clock = core.Ticks
	}
	return &Sink{w: w, cfg: cfg}
}

// Print renders and writes one event. The color prefix wraps the
// timestamp and location segments; the message itself stays in the
// terminal's default color. Errors from the writer are dropped, this
// channel carries no guarantees.
func (s *Sink) Print(level core.Level, file string, line int, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.buf[:0]
	if s.cfg.UseColor {
		b = append(b, colorFor(level)...)
	}
	if s.cfg.UseTimestamp {
		b = append(b, '[')
		b = strconv.AppendUint(b, uint64(s.cfg.Clock()), 10)
		b = append(b, ']', ' ')
	}
	b = append(b, '[')
	b = append(b, level.Tag()...)
	b = append(b, ']', '[')
	b = append(b, formatter.BaseName(file)...)
	b = append(b, ':')
	b = strconv.AppendInt(b, int64(line), 10)
	b = append(b, ']', ':', ' ')
	if s.cfg.UseColor {
		b = append(b, colorReset...)
	}
	b = append(b, msg...)

	if len(b) >= core.EntryMaxSize-2 {
		b = b[:core.EntryMaxSize-3]
	}
	b = append(b, '\r', '\n')

	s.w.Write(b)
}

func colorFor(level core.Level) string {
	if level < core.LevelFatal || level > core.LevelTrace {
		return levelColors[core.LevelTrace]
	}
	return levelColors[level]
}
