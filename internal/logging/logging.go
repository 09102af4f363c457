// Package logging defines the small leveled-logger interface every
// long-lived component in this module accepts (spec §4.9), so callers
// can plug in any backend without this module importing one.
package logging

import (
	"log"
	"os"
)

// Logger is a leveled, printf-style logging sink. Implementations
// should treat the format string and args like fmt.Sprintf.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// noop discards everything; it is the default when a component is
// constructed without a Logger option.
type noop struct{}

func (noop) Debugf(string, ...interface{}) {}
func (noop) Infof(string, ...interface{})  {}
func (noop) Warnf(string, ...interface{})  {}
func (noop) Errorf(string, ...interface{}) {}

// Noop returns a Logger that discards every line.
func Noop() Logger { return noop{} }

// stdLogger wraps a standard library *log.Logger, prefixing each line
// with its level. Zero-dependency default for callers who want visible
// output without wiring a real structured-logging backend.
type stdLogger struct {
	out *log.Logger
}

// NewStd builds a Logger backed by log.Logger writing to os.Stderr
// with the standard date/time prefix.
func NewStd() Logger {
	return &stdLogger{out: log.New(os.Stderr, "", log.LstdFlags)}
}

func (l *stdLogger) Debugf(format string, args ...interface{}) {
	l.out.Printf("DEBUG "+format, args...)
}
func (l *stdLogger) Infof(format string, args ...interface{}) {
	l.out.Printf("INFO "+format, args...)
}
func (l *stdLogger) Warnf(format string, args ...interface{}) {
	l.out.Printf("WARN "+format, args...)
}
func (l *stdLogger) Errorf(format string, args ...interface{}) {
	l.out.Printf("ERROR "+format, args...)
}
