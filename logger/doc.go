// Package logger is the public API of ringlog. Most users only need
// to import this package.
//
// A Logger owns one ring buffer and a set-once configuration. Write
// renders an event, applies the severity window, and enqueues the
// line without ever blocking: when the ring is full the newest
// message is dropped, never previously queued data. A single Worker
// goroutine drains entries and hands them to a transmit.Transmitter;
// a line whose transmission fails is re-enqueued once at the tail,
// best-effort.
//
//	log := logger.New(logger.DefaultConfig())
//	w := logger.NewWorker(log, transmit.Writer(uart), logger.WorkerConfig{})
//	defer w.Close()
//
//	log.Infof("System initialized")
//
// The package also keeps a default instance so simple programs can
// log without any setup:
//
//	logger.Infof("boot complete in %dms", ms)
//
// No operation here logs its own failures; outcomes surface only as
// return values and Stats counters, so the core can never recurse
// into itself.
package logger
