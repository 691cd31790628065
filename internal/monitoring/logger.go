// Package monitoring provides the process-wide diagnostic logger.
package monitoring

import (
	"log"
	"sync/atomic"
)

// Logf is the package-level diagnostic logger. It defaults to log.Printf but may
// be replaced by SetLogger. Tests or production code can redirect or mute it.
var Logf func(format string, v ...interface{}) = log.Printf

var debugEnabled atomic.Bool

// SetLogger replaces the package logger. Passing nil will set a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// SetDebug turns debug-level output on or off. It is off by default.
func SetDebug(enabled bool) {
	debugEnabled.Store(enabled)
}

// DebugEnabled reports whether debug-level output is on.
func DebugEnabled() bool {
	return debugEnabled.Load()
}

// Debugf logs a debug-level message. It is a no-op unless SetDebug(true)
// has been called.
func Debugf(format string, v ...interface{}) {
	if debugEnabled.Load() {
		Logf("DEBUG "+format, v...)
	}
}

// Warnf logs a warning-level message.
func Warnf(format string, v ...interface{}) {
	Logf("WARN "+format, v...)
}

// Errorf logs an error-level message.
func Errorf(format string, v ...interface{}) {
	Logf("ERROR "+format, v...)
}
