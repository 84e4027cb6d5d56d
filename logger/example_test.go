package logger_test

import (
	"os"

	"github.com/philipp01105/ringlog/core"
	"github.com/philipp01105/ringlog/logger"
	"github.com/philipp01105/ringlog/transmit"
)

// Write an event into the ring and drain it to a transmitter.
func Example() {
	log := logger.New(logger.Config{UseTimestamp: false})

	log.Write(core.LevelInfo, "a/b/main.c", 45, "System initialized")
	log.DrainOne(transmit.Writer(os.Stdout))

	// Output: [INFO ][main.c:45]: System initialized
}

// Severity windows pass everything at or above the configured bound.
func ExampleConfig() {
	log := logger.New(logger.Config{
		Range:        core.RangeFatalToWarn,
		UseTimestamp: false,
	})

	log.Write(core.LevelInfo, "main.c", 10, "not enqueued")
	log.Write(core.LevelError, "main.c", 11, "enqueued")
	log.DrainOne(transmit.Writer(os.Stdout))

	// Output: [ERROR][main.c:11]: enqueued
}
