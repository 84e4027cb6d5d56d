package core

import "strings"

// Level represents the severity of a log event. Lower values are more
// severe: LevelFatal is 0 and LevelTrace is the most verbose.
type Level int8

const (
	// LevelFatal for unrecoverable errors
	LevelFatal Level = iota
	// LevelError for error messages
	LevelError
	// LevelWarn for warning messages
	LevelWarn
	// LevelInfo for general informational messages
	LevelInfo
	// LevelDebug for detailed debugging information
	LevelDebug
	// LevelTrace for very fine-grained tracing
	LevelTrace
)

// levelTags are the fixed-width 5-character tags used on the wire so
// that columns line up across lines.
var levelTags = [...]string{
	LevelFatal: "FATAL",
	LevelError: "ERROR",
	LevelWarn:  "WARN ",
	LevelInfo:  "INFO ",
	LevelDebug: "DEBUG",
	LevelTrace: "TRACE",
}

// String returns the string representation of the level
func (l Level) String() string {
	if l < LevelFatal || l > LevelTrace {
		return "UNKNOWN"
	}
	return strings.TrimRight(levelTags[l], " ")
}

// Tag returns the fixed-width tag rendered between brackets in the
// wire format. Tags are always exactly 5 bytes.
func (l Level) Tag() string {
	if l < LevelFatal || l > LevelTrace {
		return "?????"
	}
	return levelTags[l]
}

// ParseLevel converts a string to a Level
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "FATAL":
		return LevelFatal
	case "ERROR":
		return LevelError
	case "WARN", "WARNING":
		return LevelWarn
	case "INFO":
		return LevelInfo
	case "DEBUG":
		return LevelDebug
	case "TRACE":
		return LevelTrace
	default:
		return LevelInfo
	}
}

// Range is the inclusive severity window allowed through to the ring
// buffer. The zero value is RangeAll, which lets every level pass.
type Range int8

const (
	// RangeAll passes every level
	RangeAll Range = iota
	// RangeFatalOnly passes only FATAL
	RangeFatalOnly
	// RangeFatalToError passes FATAL and ERROR
	RangeFatalToError
	// RangeFatalToWarn passes FATAL through WARN
	RangeFatalToWarn
	// RangeFatalToInfo passes FATAL through INFO
	RangeFatalToInfo
	// RangeFatalToDebug passes FATAL through DEBUG
	RangeFatalToDebug
)

// Allows reports whether a message of the given level passes the
// window. A level passes when its ordinal does not exceed the window's
// upper bound; RangeAll has no upper bound.
func (r Range) Allows(l Level) bool {
	if r == RangeAll || r < RangeAll || r > RangeFatalToDebug {
		return true
	}
	return l <= Level(r-1)
}

// String returns the string representation of the range
func (r Range) String() string {
	switch r {
	case RangeAll:
		return "ALL"
	case RangeFatalOnly:
		return "FATAL_ONLY"
	case RangeFatalToError:
		return "FATAL_TO_ERROR"
	case RangeFatalToWarn:
		return "FATAL_TO_WARN"
	case RangeFatalToInfo:
		return "FATAL_TO_INFO"
	case RangeFatalToDebug:
		return "FATAL_TO_DEBUG"
	default:
		return "UNKNOWN"
	}
}

// ParseRange converts a string to a Range. It accepts both the full
// window names ("FATAL_TO_WARN") and the bare upper-bound level name
// ("warn"), case-insensitively. Unrecognized input yields RangeAll.
func ParseRange(s string) Range {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "FATAL_ONLY", "FATAL":
		return RangeFatalOnly
	case "FATAL_TO_ERROR", "ERROR":
		return RangeFatalToError
	case "FATAL_TO_WARN", "WARN", "WARNING":
		return RangeFatalToWarn
	case "FATAL_TO_INFO", "INFO":
		return RangeFatalToInfo
	case "FATAL_TO_DEBUG", "DEBUG":
		return RangeFatalToDebug
	case "FATAL_TO_TRACE", "TRACE", "ALL":
		return RangeAll
	default:
		return RangeAll
	}
}
