//go:build tamago

package main

import (
	"time"

	usbarmory "github.com/f-secure-foundry/tamago/board/f-secure/usbarmory/mark-two"
)

func loadDebugAccessory() {
	debugConsole, _ := usbarmory.DetectDebugAccessory(250 * time.Millisecond)
	<-debugConsole
}

func resetBoard() {
	usbarmory.Reset()
}
