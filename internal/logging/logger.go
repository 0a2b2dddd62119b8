// Package logging provides the application's component-scoped logger.
//
// Every package logs through the printf-style Logger interface so tests can
// substitute a no-op and the output format stays uniform:
//
//	2025-01-02 15:04:05 [INFO] [ConfigStore] message
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the severity of a log message.
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

func levelToString(level LogLevel) string {
	switch level {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "?"
	}
}

// Logger defines a minimal, printf-style logging contract.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// Nop returns a logger that discards all output.
func Nop() Logger {
	return nopLogger{}
}

// OrNop returns logger when non-nil, otherwise a no-op logger.
func OrNop(logger Logger) Logger {
	if logger == nil {
		return Nop()
	}
	return logger
}

var (
	defaultLevel LogLevel = INFO
	levelOnce    sync.Once
)

// minLevel resolves the process-wide minimum level from ONBOARD_LOG_LEVEL.
func minLevel() LogLevel {
	levelOnce.Do(func() {
		switch strings.ToLower(strings.TrimSpace(os.Getenv("ONBOARD_LOG_LEVEL"))) {
		case "debug":
			defaultLevel = DEBUG
		case "warn":
			defaultLevel = WARN
		case "error":
			defaultLevel = ERROR
		}
	})
	return defaultLevel
}

type componentLogger struct {
	component string
	out       io.Writer
	mu        *sync.Mutex
}

var outputMu sync.Mutex

// NewComponentLogger creates a logger scoped to a component name.
func NewComponentLogger(component string) Logger {
	return &componentLogger{
		component: component,
		out:       os.Stderr,
		mu:        &outputMu,
	}
}

func (l *componentLogger) log(level LogLevel, format string, args ...any) {
	if level < minLevel() {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	msg := fmt.Sprintf(format, args...)

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "%s [%s] [%s] %s\n", timestamp, levelToString(level), l.component, msg)
}

func (l *componentLogger) Debug(format string, args ...any) { l.log(DEBUG, format, args...) }
func (l *componentLogger) Info(format string, args ...any)  { l.log(INFO, format, args...) }
func (l *componentLogger) Warn(format string, args ...any)  { l.log(WARN, format, args...) }
func (l *componentLogger) Error(format string, args ...any) { l.log(ERROR, format, args...) }
