package logger

import (
	"io"
	"log/slog"
	"os"
)

// ConsoleLogger writes text records to a terminal stream.
type ConsoleLogger struct {
	logger *slog.Logger
}

// NewConsoleLogger creates a console logger at the given level. Records go to
// w, or to os.Stderr when w is nil, so that command output on stdout stays clean.
func NewConsoleLogger(level string, w io.Writer) Logger {
	if w == nil {
		w = os.Stderr
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})
	return &ConsoleLogger{logger: slog.New(handler)}
}

func (l *ConsoleLogger) Debug(args ...interface{}) { l.logger.Debug(formatArgs(args...)) }
func (l *ConsoleLogger) Info(args ...interface{})  { l.logger.Info(formatArgs(args...)) }
func (l *ConsoleLogger) Warn(args ...interface{})  { l.logger.Warn(formatArgs(args...)) }
func (l *ConsoleLogger) Error(args ...interface{}) { l.logger.Error(formatArgs(args...)) }

// Fatal logs at error level and exits with status 1.
func (l *ConsoleLogger) Fatal(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
	os.Exit(1)
}

// Panic logs at error level and panics with the message.
func (l *ConsoleLogger) Panic(args ...interface{}) {
	msg := formatArgs(args...)
	l.logger.Error(msg)
	panic(msg)
}
