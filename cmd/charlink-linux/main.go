package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charlink-computer/charlink/demo"
	"github.com/charlink-computer/charlink/log"
	"github.com/charlink-computer/charlink/uart"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/term"
)

type args struct {
	port    string
	baud    int
	message string
	runDemo bool
	console bool
}

func cliArgs() args {
	a := args{}

	flag.StringVar(&a.port, "port", "", "serial device path, e.g. /dev/ttyUSB0; empty writes to stdout")
	flag.IntVar(&a.baud, "baud", 115200, "serial baud rate")
	flag.StringVar(&a.message, "message", "", "message to transmit one character at a time")
	flag.BoolVar(&a.runDemo, "demo", false, "run the demonstration program against the selected sink")
	flag.BoolVar(&a.console, "console", false, "forward keystrokes to the serial device until ctrl-c")
	flag.Parse()

	return a
}

func main() {
	a := cliArgs()
	l := log.Development().Sugar()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	var sink io.Writer = os.Stdout
	var tx *uart.Transmitter

	if a.port != "" {
		hp, err := uart.OpenHostPort(a.port, a.baud)
		notErr(err, l)
		defer hp.Close()

		tx = uart.NewTransmitter(hp)
		sink = tx

		l.Infow("serial port open", "port", a.port, "baud", a.baud)
	}

	if a.message != "" {
		if tx == nil {
			l.Panic("--message requires --port")
		}

		tx.SendString(a.message)
		l.Infow("message sent", "length", len(a.message))
	}

	if a.runDemo {
		demo.Run(sink)
	}

	if a.console {
		if tx == nil {
			l.Panic("--console requires --port")
		}

		notErr(runConsole(tx, sigs, l), l)
	}
}

// runConsole puts the controlling terminal in raw mode and forwards every
// keystroke to the transmitter, one character per transmit.
func runConsole(tx *uart.Transmitter, sigs chan os.Signal, l *zap.SugaredLogger) error {
	fd := int(os.Stdin.Fd())

	if !term.IsTerminal(fd) {
		return fmt.Errorf("console mode needs stdin to be a terminal")
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("cannot enter raw mode, %w", err)
	}
	defer term.Restore(fd, oldState)

	l.Info("console running, ctrl-c to exit")

	keys := make(chan byte)

	go func() {
		buf := make([]byte, 1)
		for {
			if _, err := os.Stdin.Read(buf); err != nil {
				return
			}
			keys <- buf[0]
		}
	}()

	for {
		select {
		case c := <-keys:
			// ETX and EOT both end the session
			if c == 0x03 || c == 0x04 {
				return nil
			}
			tx.SendChar(c)
		case <-sigs:
			return nil
		}
	}
}

// since we're in a critical configuration phase, panic on error.
func notErr(e error, l *zap.SugaredLogger) {
	if e != nil {
		l.Panic(e)
	}
}
