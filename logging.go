package main

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Log level bits. The console and logfile masks are independent, so a
// run can stay quiet on the terminal while persisting a full trace.
const (
	LogError uint = 1 << iota
	LogWarn
	LogInfo
	LogDebug
	LogFixme // unmapped-type diagnostics from the mappers
)

const (
	logMaskDefault = LogError | LogWarn | LogInfo | LogFixme
	logMaskAll     = LogError | LogWarn | LogInfo | LogDebug | LogFixme
)

// Logger filters messages through two verbosity bitmasks and writes the
// surviving ones to the console and/or a logfile.
type Logger struct {
	consoleMask uint
	fileMask    uint
	console     *log.Logger
	file        *log.Logger
	closer      io.Closer
}

// newLogger builds a Logger writing to stderr and, if path is non-empty,
// appending to the given logfile.
func newLogger(consoleMask, fileMask uint, path string) (*Logger, error) {
	l := &Logger{
		consoleMask: consoleMask,
		fileMask:    fileMask,
		console:     log.New(os.Stderr, "", log.LstdFlags),
	}
	if path != "" {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open logfile: %w", err)
		}
		l.file = log.New(f, "", log.LstdFlags)
		l.closer = f
	}
	return l, nil
}

func (l *Logger) Close() error {
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}

func (l *Logger) logf(level uint, prefix, format string, args ...any) {
	msg := prefix + fmt.Sprintf(format, args...)
	if l.consoleMask&level != 0 {
		l.console.Print(msg)
	}
	if l.file != nil && l.fileMask&level != 0 {
		l.file.Print(msg)
	}
}

func (l *Logger) Errorf(format string, args ...any) { l.logf(LogError, "ERROR: ", format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.logf(LogWarn, "WARN: ", format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.logf(LogInfo, "", format, args...) }
func (l *Logger) Debugf(format string, args ...any) { l.logf(LogDebug, "DEBUG: ", format, args...) }

// Fixmef flags a maintenance gap in a mapping table.
func (l *Logger) Fixmef(format string, args ...any) { l.logf(LogFixme, "FIXME: ", format, args...) }

// discardLogger returns a Logger that drops everything, for tests.
func discardLogger() *Logger {
	return &Logger{console: log.New(io.Discard, "", 0)}
}
