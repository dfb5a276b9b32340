// Package telemetry provides the zap logger used to observe which merge
// strategy the sort driver selected for a given call. It mirrors the
// service's zap setup in cmd/zmux-server/main.go (development config, named
// sub-loggers) but defaults to a no-op logger so importing aerosort as a
// library never produces unsolicited output.
package telemetry

import (
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var current atomic.Pointer[zap.Logger]

func init() {
	current.Store(zap.NewNop())
}

// Field re-exports zap.Field so callers of this package never need to
// import go.uber.org/zap directly.
type Field = zap.Field

func String(key, val string) Field { return zap.String(key, val) }
func Int(key string, val int) Field { return zap.Int(key, val) }
func Bool(key string, val bool) Field { return zap.Bool(key, val) }

// Logger returns the process-wide logger used by aerosort's internal
// packages. Safe for concurrent use.
func Logger() *zap.Logger {
	return current.Load()
}

// SetLogger installs l as the logger used by aerosort's internal packages.
// Passing nil restores the no-op default. Intended for CLI/benchmark
// entry points (cmd/aerosort, cmd/aerobench) and tests; library callers
// embedding aerosort in a larger service should call this once at startup.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	current.Store(l)
}

// New builds a development-style logger named sub, matching the console
// encoder settings used by the service's main.go: no timestamp key, capital
// colored level names, no caller/stacktrace noise.
func New(name string) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.TimeKey = ""
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true

	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log.Named(name)
}
