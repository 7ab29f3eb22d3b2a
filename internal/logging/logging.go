// Package logging provides a thin, component-prefixed wrapper around the
// standard logger. No logging library appears anywhere in the retrieved
// example pack, so this stays on log.Logger rather than reaching for one.
package logging

import (
	"io"
	"log"
	"os"
)

// Logger prefixes every line with a component name, e.g. "[scheduler] ".
type Logger struct {
	*log.Logger
}

// New returns a Logger writing to os.Stderr, tagged with component.
func New(component string) *Logger {
	return &Logger{log.New(os.Stderr, "["+component+"] ", log.LstdFlags)}
}

// Silent returns a Logger that discards everything it's given, for tests
// that exercise code paths with logging side effects but don't want them on
// the test's own stdout/stderr.
func Silent(component string) *Logger {
	return &Logger{log.New(io.Discard, "["+component+"] ", 0)}
}
