//go:build tamago

package main

import (
	"runtime"
	"runtime/debug"
	"time"

	"github.com/charlink-computer/charlink/demo"
	"github.com/charlink-computer/charlink/uart"
	"github.com/f-secure-foundry/tamago/soc/imx6"
)

var (
	// Build is a string which contains build user, host and date.
	Build string

	// Revision contains the git revision (last hash and/or tag).
	Revision string
)

func init() {
	l := logger()

	l.Infow("charlink started", "GOOS", runtime.GOOS, "GOARCH", runtime.GOARCH, "GOVERSION", runtime.Version(), "revision", Revision, "build", Build)

	if !imx6.Native {
		l.Fatal("running charlink on emulated hardware is not supported")
	}

	loadDebugAccessory()

	if err := imx6.SetARMFreq(imx6.FreqLow); err != nil {
		l.Warnf("WARNING: error setting ARM frequency: %v", err)
	}
}

func main() {
	defer catchPanic()

	l := logger()

	tx := uart.NewTransmitter(newConsolePort())

	tx.SendString("charlink ready\r\n")
	demo.Run(tx)

	l.Info("demo complete, idling")

	idle()
	resetBoard()
}

// idle parks the main goroutine; the debug build's reboot watcher keeps
// serving the console.
func idle() {
	for {
		time.Sleep(time.Hour)
	}
}

// catchPanic catches every panic() and prints the stacktrace before rebooting.
func catchPanic() {
	l := logger()
	if r := recover(); r != nil {
		l.Errorf("panic: %v\n\n", r)
		l.Error(string(debug.Stack()))
		l.Warn("rebooting in 1 second...")

		time.Sleep(1 * time.Second)
		resetBoard()
	}
}
