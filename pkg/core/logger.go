package core

import (
	"fmt"
	"io"
)

// Logger is the minimal logging capability the renderer depends on, so
// progress and diagnostics can be redirected or silenced by the caller.
type Logger interface {
	Printf(format string, args ...interface{})
}

// StderrLogger implements Logger by writing to an io.Writer (normally
// os.Stderr), so progress never mixes into the PPM stream on stdout.
type StderrLogger struct {
	W io.Writer
}

// NewStderrLogger creates a Logger that writes to w.
func NewStderrLogger(w io.Writer) Logger {
	return &StderrLogger{W: w}
}

func (l *StderrLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(l.W, "\r"+format, args...)
}
