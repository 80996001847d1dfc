// ABOUTME: Leveled diagnostic logger for the framework bootstrap layer
// ABOUTME: Wraps charmbracelet/log and provides the Log method hosts expect
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// Prefix is shown on every diagnostic line.
const Prefix = "pomutils"

// Logger is a charmbracelet logger with a level-less Log method, so it
// passes validator.InspectLogger.
type Logger struct {
	*log.Logger
}

// New returns a Logger writing to w. Debug output is enabled when verbose.
func New(w io.Writer, verbose bool) *Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return &Logger{Logger: log.NewWithOptions(w, log.Options{
		Prefix: Prefix,
		Level:  level,
	})}
}

// Log writes msg regardless of the configured level.
func (l *Logger) Log(msg any, keyvals ...any) {
	l.Print(msg, keyvals...)
}
