//go:build tamago && debug

package main

import (
	"runtime"
	"time"

	"github.com/charlink-computer/charlink/demo"
	"github.com/charlink-computer/charlink/log"
	"github.com/charlink-computer/charlink/uart"
	usbarmory "github.com/f-secure-foundry/tamago/board/f-secure/usbarmory/mark-two"
	"github.com/f-secure-foundry/tamago/soc/imx6"
	"go.uber.org/zap"
)

func init() {
	go rebootWatcher()
}

// rebootWatcher reboots the board when 'r' arrives on the serial console
// and reruns the demo program when 'd' does.
func rebootWatcher() {
	buf := make([]byte, 1)

	l := logger()

	for {
		runtime.Gosched()
		imx6.UART2.Read(buf)
		if buf[0] == 0 {
			continue
		}

		switch buf[0] {
		case 'r':
			l.Info("rebooting...")
			time.Sleep(500 * time.Millisecond)
			usbarmory.Reset()
		case 'd':
			l.Info("rerunning demo...")
			demo.Run(uart.NewTransmitter(newConsolePort()))
		}

		buf[0] = 0
	}
}

func logger() *zap.SugaredLogger {
	return log.Development().Sugar()
}
