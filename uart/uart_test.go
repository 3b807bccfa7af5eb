package uart

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type transmitCall struct {
	data    []byte
	timeout time.Duration
}

// recordingPort captures every Transmit call and can fail on demand.
type recordingPort struct {
	calls []transmitCall
	err   error
}

func (r *recordingPort) Transmit(p []byte, timeout time.Duration) error {
	data := make([]byte, len(p))
	copy(data, p)

	r.calls = append(r.calls, transmitCall{
		data:    data,
		timeout: timeout,
	})

	return r.err
}

func Test_Transmitter_SendCharTransmitsExactlyOnce(t *testing.T) {
	port := &recordingPort{}
	tx := NewTransmitter(port)

	tx.SendChar('H')

	require.Len(t, port.calls, 1)
	require.Equal(t, []byte{'H'}, port.calls[0].data)
	require.Equal(t, MaxDelay, port.calls[0].timeout)
}

func Test_Transmitter_SendCharDiscardsPortStatus(t *testing.T) {
	port := &recordingPort{err: errors.New("peripheral busy")}
	tx := NewTransmitter(port)

	// fire-and-forget: no panic, no surfaced error, the call still happens
	tx.SendChar('x')

	require.Len(t, port.calls, 1)
}

func Test_Transmitter_SendStringPreservesOrder(t *testing.T) {
	port := &recordingPort{}
	tx := NewTransmitter(port)

	tx.SendString("Hello")

	require.Len(t, port.calls, 5)
	for i, want := range []byte("Hello") {
		require.Equal(t, []byte{want}, port.calls[i].data)
	}
}

func Test_Transmitter_ConfiguredTimeoutReachesPort(t *testing.T) {
	port := &recordingPort{}
	tx := NewTransmitterWithTimeout(port, 250*time.Millisecond)

	tx.SendChar('a')

	require.Len(t, port.calls, 1)
	require.Equal(t, 250*time.Millisecond, port.calls[0].timeout)
}

func Test_Transmitter_WriteNeverSurfacesPortErrors(t *testing.T) {
	port := &recordingPort{err: errors.New("timeout")}
	tx := NewTransmitter(port)

	n, err := tx.Write([]byte("abc"))

	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Len(t, port.calls, 3)
}
