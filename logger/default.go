package logger

import (
	"sync"

	"github.com/philipp01105/ringlog/core"
)

var (
	defaultLogger = New(DefaultConfig())
	defaultMu     sync.RWMutex
)

// Default returns the process-wide default logger. It is constructed
// with DefaultConfig and no worker; attach one with NewWorker when a
// transmission medium is available.
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the default logger. Call it once during
// initialization, before producers start writing.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Fatalf logs an unrecoverable error using the default logger
func Fatalf(format string, args ...any) {
	Default().logf(2, core.LevelFatal, format, args...)
}

// Errorf logs an error message using the default logger
func Errorf(format string, args ...any) {
	Default().logf(2, core.LevelError, format, args...)
}

// Warnf logs a warning message using the default logger
func Warnf(format string, args ...any) {
	Default().logf(2, core.LevelWarn, format, args...)
}

// Infof logs an informational message using the default logger
func Infof(format string, args ...any) {
	Default().logf(2, core.LevelInfo, format, args...)
}

// Debugf logs a debugging message using the default logger
func Debugf(format string, args ...any) {
	Default().logf(2, core.LevelDebug, format, args...)
}

// Tracef logs a tracing message using the default logger
func Tracef(format string, args ...any) {
	Default().logf(2, core.LevelTrace, format, args...)
}
