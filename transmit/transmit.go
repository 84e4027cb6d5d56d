package transmit

import (
	"fmt"
	"io"
)

// Transmitter sends one rendered log line to the underlying medium.
// Implementations report failure and must not retry internally; the
// drain side owns the retry policy.
type Transmitter interface {
	// Transmit sends p. p is only valid for the duration of the call.
	Transmit(p []byte) error
}

// Func adapts a plain function to the Transmitter interface.
type Func func(p []byte) error

// Transmit calls f(p).
func (f Func) Transmit(p []byte) error {
	return f(p)
}

// Writer adapts an io.Writer to the Transmitter interface. A short
// write counts as a failure; the line may then be re-enqueued and
// sent again in full.
func Writer(w io.Writer) Transmitter {
	return &writerTransmitter{w: w}
}

type writerTransmitter struct {
	w io.Writer
}

func (t *writerTransmitter) Transmit(p []byte) error {
	n, err := t.w.Write(p)
	if err != nil {
		return err
	}
	if n != len(p) {
		return fmt.Errorf("short write: %d of %d bytes", n, len(p))
	}
	return nil
}
