package uart

import (
	"errors"
	"fmt"
	"time"

	"go.bug.st/serial"
)

// ErrTransmitTimeout is returned by a Port when a bounded transmit does not
// complete in time.
var ErrTransmitTimeout = errors.New("uart: transmit timed out")

// HostPort is a Port backed by an operating system serial device.
type HostPort struct {
	port serial.Port
}

// OpenHostPort opens the serial device at name with the given baud rate.
// Parity and framing stay at the driver defaults.
func OpenHostPort(name string, baud int) (*HostPort, error) {
	p, err := serial.Open(name, &serial.Mode{
		BaudRate: baud,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot open serial port %s, %w", name, err)
	}

	return &HostPort{port: p}, nil
}

// Transmit writes p to the device. A finite timeout bounds the wait; the
// write itself is not cancelled, only abandoned.
func (h *HostPort) Transmit(p []byte, timeout time.Duration) error {
	return transmitWithin(func() error {
		_, err := h.port.Write(p)
		return err
	}, timeout)
}

// Close releases the underlying device.
func (h *HostPort) Close() error {
	return h.port.Close()
}

// transmitWithin runs send, giving up after timeout. MaxDelay and
// non-positive timeouts wait indefinitely.
func transmitWithin(send func() error, timeout time.Duration) error {
	done := make(chan error, 1)

	go func() {
		done <- send()
	}()

	if timeout <= 0 {
		return <-done
	}

	select {
	case err := <-done:
		return err
	case <-time.After(timeout):
		return ErrTransmitTimeout
	}
}
