//go:build tamago && !debug

package main

import (
	"github.com/charlink-computer/charlink/log"
	"go.uber.org/zap"
)

func logger() *zap.SugaredLogger {
	return log.Production().Sugar()
}
