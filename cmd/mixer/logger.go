package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// colorLogger writes search progress to stderr, tagged with the run id
type colorLogger struct {
	verbose bool
	prefix  string
	debug   *color.Color
	info    *color.Color
}

func newLogger(verbose bool, runID uuid.UUID) *colorLogger {
	return &colorLogger{
		verbose: verbose,
		prefix:  "[" + runID.String()[:8] + "] ",
		debug:   color.New(color.Faint),
		info:    color.New(color.FgYellow),
	}
}

func (l *colorLogger) Debugf(format string, v ...any) {
	if !l.verbose {
		return
	}
	l.debug.Fprintln(os.Stderr, l.prefix+fmt.Sprintf(format, v...))
}

func (l *colorLogger) Infof(format string, v ...any) {
	l.info.Fprintln(os.Stderr, l.prefix+fmt.Sprintf(format, v...))
}
