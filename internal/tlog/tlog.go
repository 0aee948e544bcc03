// Package tlog is the small stdlib-backed logger used for the warn/error
// messages a detection strategy emits when it gives up on a file. No
// strategy lets these propagate as errors; they're observability only.
package tlog

import (
	"log"
	"os"
)

// Logger is the destination for Warnf and Errorf. Replace it (e.g. with
// log.New(io.Discard, "", 0)) to silence output in a test or a caller that
// wants to route it elsewhere.
var Logger = log.New(os.Stderr, "tagscan: ", log.LstdFlags)

// Warnf logs a recoverable problem: a malformed header or size field that
// a strategy chose to skip rather than fail on.
func Warnf(format string, args ...interface{}) {
	Logger.Printf("WARN "+format, args...)
}

// Errorf logs an I/O failure encountered during a deep probe.
func Errorf(format string, args ...interface{}) {
	Logger.Printf("ERROR "+format, args...)
}
