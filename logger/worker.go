package logger

import (
	"errors"
	"sync"
	"time"

	"github.com/philipp01105/ringlog/core"
	"github.com/philipp01105/ringlog/transmit"
)

// WorkerConfig holds worker loop configuration
type WorkerConfig struct {
	// Interval is the delay between drain iterations (default: 1ms)
	Interval time.Duration
	// DrainTimeout bounds how long Close keeps draining leftover
	// entries (default: 5s)
	DrainTimeout time.Duration
}

func applyWorkerDefaults(cfg *WorkerConfig) {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Millisecond
	}
	if cfg.DrainTimeout <= 0 {
		cfg.DrainTimeout = 5 * time.Second
	}
}

// Worker is the dedicated consumer of a Logger's ring buffer. It
// drains one entry per interval and forwards it to the transmitter
// for the lifetime of the process. A Logger must have at most one
// Worker; the pipeline is single-consumer by design.
type Worker struct {
	log      *Logger
	tr       transmit.Transmitter
	interval time.Duration
	drainTO  time.Duration
	closed   chan struct{}
	wg       sync.WaitGroup
}

// NewWorker creates a worker and starts its background goroutine.
func NewWorker(l *Logger, t transmit.Transmitter, cfg WorkerConfig) *Worker {
	applyWorkerDefaults(&cfg)

	w := &Worker{
		log:      l,
		tr:       t,
		interval: cfg.Interval,
		drainTO:  cfg.DrainTimeout,
		closed:   make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	return w
}

func (w *Worker) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			// Empty ring and transmit failure both just wait for the
			// next tick; a failed line is already back in the queue.
			w.log.DrainOne(w.tr)
		case <-w.closed:
			w.drainRemaining()
			return
		}
	}
}

// drainRemaining flushes whatever is still queued, bounded by the
// drain timeout so a dead medium cannot stall shutdown.
func (w *Worker) drainRemaining() {
	deadline := time.Now().Add(w.drainTO)
	for time.Now().Before(deadline) {
		err := w.log.DrainOne(w.tr)
		if err == nil {
			continue
		}
		if errors.Is(err, core.ErrEmpty) {
			return
		}
		// Transmit failure: the entry was re-enqueued, back off
		// briefly before trying again.
		time.Sleep(w.interval)
	}
}

// Close stops the loop, drains remaining entries with a timeout, and
// waits for the goroutine to exit. It is safe to call twice.
func (w *Worker) Close() {
	select {
	case <-w.closed:
		return
	default:
	}
	close(w.closed)
	w.wg.Wait()
}
