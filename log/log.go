package log

import "go.uber.org/zap"

// Production installs a no-op logger as the zap global and returns it.
// Release firmware must stay silent on the serial console it shares with
// the transmitter payload.
func Production(_ ...zap.Option) *zap.Logger {
	zap.ReplaceGlobals(zap.NewNop())
	return zap.L()
}

// Development installs a development logger as the zap global and returns it.
func Development(opts ...zap.Option) *zap.Logger {
	opts = append(opts, zap.WithCaller(true))
	l, err := zap.NewDevelopment(
		opts...,
	)

	if err != nil {
		panic(err)
	}

	zap.ReplaceGlobals(l)

	return zap.L()
}
