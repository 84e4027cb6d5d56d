package formatter

import (
	"strconv"
	"strings"

	"github.com/philipp01105/ringlog/core"
)

// Config holds formatter configuration
type Config struct {
	// UseTimestamp enables the [<ticks>] prefix
	UseTimestamp bool
	// Clock supplies the tick count (default: core.Ticks)
	Clock core.Clock
}

// Formatter renders one log event into a bounded line
type Formatter struct {
	Config
}

// New creates a new formatter
func New(cfg Config) *Formatter {
	if cfg.Clock == nil {
		cfg.Clock = core.Ticks
	}
	return &Formatter{Config: cfg}
}

// Append renders the event and appends it to dst, returning the
// extended slice. dst must be empty (typically scratch[:0]); pass a
// scratch with capacity core.EntryMaxSize to keep rendering
// allocation-free for lines that fit.
//
// The result is truncated so that the total length never exceeds
// core.EntryMaxSize and always ends in CRLF, even when the message
// had to be cut.
func (f *Formatter) Append(dst []byte, level core.Level, file string, line int, msg string) []byte {
	if f.UseTimestamp {
		dst = append(dst, '[')
		dst = strconv.AppendUint(dst, uint64(f.Clock()), 10)
		dst = append(dst, ']', ' ')
	}

	dst = append(dst, '[')
	dst = append(dst, level.Tag()...)
	dst = append(dst, ']', '[')
	dst = append(dst, BaseName(file)...)
	dst = append(dst, ':')
	dst = strconv.AppendInt(dst, int64(line), 10)
	dst = append(dst, ']', ':', ' ')
	dst = append(dst, msg...)

	if len(dst) >= core.EntryMaxSize-2 {
		dst = dst[:core.EntryMaxSize-3]
	}
	return append(dst, '\r', '\n')
}

// BaseName strips any leading directories from a source file path,
// keeping only the final component. Both separator styles are
// handled, including mixed paths like "a/b\c.c".
func BaseName(file string) string {
	if i := strings.LastIndexAny(file, `/\`); i >= 0 {
		return file[i+1:]
	}
	return file
}
