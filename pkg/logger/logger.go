// Package logger provides the diagnostic console logger.
//
// Check outcomes and the run summary are program output and are written by
// package output. The logger carries everything else: request traces,
// resolved configuration, and warnings, filtered by level.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Log levels, lowest first.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

var levelRank = map[string]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

var levelColor = map[string]*color.Color{
	LevelDebug: color.New(color.FgCyan),
	LevelInfo:  color.New(color.FgBlue),
	LevelWarn:  color.New(color.FgYellow),
	LevelError: color.New(color.FgRed),
}

// ConsoleLogger writes "[HH:MM:SS] [LEVEL] message" lines to a writer.
// A nil *ConsoleLogger discards everything.
type ConsoleLogger struct {
	writer      io.Writer
	level       string
	colorOutput bool
	now         func() time.Time
}

// NewConsoleLogger creates a ConsoleLogger writing to w at the given level.
// Unknown or empty levels fall back to info. Level names are colored when w
// is a terminal and NO_COLOR is not set.
func NewConsoleLogger(w io.Writer, level string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      w,
		level:       normalizeLevel(level),
		colorOutput: isTerminal(w),
		now:         time.Now,
	}
}

// ValidLevel reports whether level names a known log level.
func ValidLevel(level string) bool {
	_, ok := levelRank[strings.ToLower(strings.TrimSpace(level))]
	return ok
}

// Level returns the minimum level that is written.
func (l *ConsoleLogger) Level() string {
	if l == nil {
		return ""
	}
	return l.level
}

// Debugf logs a debug-level message.
func (l *ConsoleLogger) Debugf(format string, args ...any) {
	l.logf(LevelDebug, format, args...)
}

// Infof logs an info-level message.
func (l *ConsoleLogger) Infof(format string, args ...any) {
	l.logf(LevelInfo, format, args...)
}

// Warnf logs a warning.
func (l *ConsoleLogger) Warnf(format string, args ...any) {
	l.logf(LevelWarn, format, args...)
}

// Errorf logs an error-level message.
func (l *ConsoleLogger) Errorf(format string, args ...any) {
	l.logf(LevelError, format, args...)
}

func (l *ConsoleLogger) logf(level, format string, args ...any) {
	if l == nil || l.writer == nil {
		return
	}
	if levelRank[level] < levelRank[l.level] {
		return
	}

	label := strings.ToUpper(level)
	if l.colorOutput {
		label = levelColor[level].Sprint(label)
	}

	_, _ = fmt.Fprintf(l.writer, "[%s] [%s] %s\n", l.now().Format("15:04:05"), label, fmt.Sprintf(format, args...))
}

func normalizeLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))
	if _, ok := levelRank[normalized]; ok {
		return normalized
	}
	return LevelInfo
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return !color.NoColor && isatty.IsTerminal(f.Fd())
}
