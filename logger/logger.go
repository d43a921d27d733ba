// Package logger holds the log hook used by pdfwriter and its collaborators.
// A Document logs through its own LogFunc when one is configured and falls
// back to the package logger otherwise. Nothing is logged until SetLogger
// is called.
package logger

import "sync/atomic"

// Level is the severity of a log message.
type Level string

const (
	DebugLevel Level = "debug"
	InfoLevel  Level = "info"
	WarnLevel  Level = "warn"
	ErrorLevel Level = "error"
)

// LogFunc receives every message; keyvals alternate between keys and values.
type LogFunc func(level Level, msg string, keyvals ...interface{})

var global atomic.Pointer[LogFunc]

func nop(Level, string, ...interface{}) {}

// SetLogger replaces the package logger. A nil f is ignored. It is safe to
// call while other goroutines log.
func SetLogger(f LogFunc) {
	if f != nil {
		global.Store(&f)
	}
}

// Reset restores the no-op logger.
func Reset() {
	global.Store(nil)
}

func current() LogFunc {
	if p := global.Load(); p != nil {
		return *p
	}
	return nop
}

func Debug(msg string, keyvals ...interface{}) { current()(DebugLevel, msg, keyvals...) }

func Info(msg string, keyvals ...interface{}) { current()(InfoLevel, msg, keyvals...) }

// Warn reports a problem in the output that readers are expected to tolerate.
func Warn(msg string, keyvals ...interface{}) { current()(WarnLevel, msg, keyvals...) }

func Error(msg string, keyvals ...interface{}) { current()(ErrorLevel, msg, keyvals...) }

// Log sends a message to f, or to the package logger when f is nil.
func (f LogFunc) Log(level Level, msg string, keyvals ...interface{}) {
	if f == nil {
		f = current()
	}
	f(level, msg, keyvals...)
}

func (f LogFunc) Debug(msg string, keyvals ...interface{}) { f.Log(DebugLevel, msg, keyvals...) }

func (f LogFunc) Info(msg string, keyvals ...interface{}) { f.Log(InfoLevel, msg, keyvals...) }

func (f LogFunc) Warn(msg string, keyvals ...interface{}) { f.Log(WarnLevel, msg, keyvals...) }

func (f LogFunc) Error(msg string, keyvals ...interface{}) { f.Log(ErrorLevel, msg, keyvals...) }
