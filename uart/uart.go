// Package uart implements a single-character serial transmitter on top of a
// pluggable port abstraction.
package uart

import (
	"time"

	"go.uber.org/zap"
)

// MaxDelay makes a transmit wait indefinitely for completion.
const MaxDelay time.Duration = -1

// Port represents the hardware boundary the transmitter writes through.
// Framing (baud rate, parity) is configured when the port is opened and is
// out of the transmitter's scope.
type Port interface {
	// Transmit writes p to the peripheral, blocking until the write
	// completes or timeout elapses. MaxDelay waits indefinitely.
	Transmit(p []byte, timeout time.Duration) error
}

// Transmitter sends characters to a serial peripheral one byte at a time.
// The port handle is explicit: callers own it and pass it in.
type Transmitter struct {
	port    Port
	timeout time.Duration

	l *zap.SugaredLogger
}

// NewTransmitter returns a Transmitter that waits indefinitely on each
// transmit.
func NewTransmitter(port Port) *Transmitter {
	return NewTransmitterWithTimeout(port, MaxDelay)
}

// NewTransmitterWithTimeout returns a Transmitter whose transmits give up
// after timeout.
func NewTransmitterWithTimeout(port Port, timeout time.Duration) *Transmitter {
	return &Transmitter{
		port:    port,
		timeout: timeout,
		l:       zap.S(),
	}
}

// SendChar transmits exactly one character, blocking until the port call
// returns. The port's error or timeout status is discarded: the contract is
// fire-and-forget, a failed byte leaves only a debug trace.
func (t *Transmitter) SendChar(c byte) {
	if err := t.port.Transmit([]byte{c}, t.timeout); err != nil {
		t.l.Debugw("transmit status dropped", "char", c, "error", err)
	}
}

// SendString transmits s one character at a time, in order.
func (t *Transmitter) SendString(s string) {
	for i := 0; i < len(s); i++ {
		t.SendChar(s[i])
	}
}

// Write implements io.Writer over SendChar so the transmitter can serve as
// a console sink. It always reports full success, consistent with the
// fire-and-forget contract.
func (t *Transmitter) Write(p []byte) (int, error) {
	for _, c := range p {
		t.SendChar(c)
	}

	return len(p), nil
}
