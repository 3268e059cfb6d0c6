package logger

import (
	"log/slog"
	"os"

	"github.com/natefinch/lumberjack"

	"github.com/ujwal-s-r/system-design/internal/pkg/config"
)

// FileLogger writes JSON records to a file rotated by lumberjack.
type FileLogger struct {
	logger *slog.Logger
	writer *lumberjack.Logger
}

// NewFileLogger creates a file logger from validated file settings.
func NewFileLogger(s *config.LoggerSettings) *FileLogger {
	writer := &lumberjack.Logger{
		Filename:   s.FilePath,
		MaxSize:    s.MaxSize,
		MaxBackups: s.MaxBackups,
		MaxAge:     s.MaxAge,
		Compress:   true,
	}
	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: parseLevel(s.LogLevel)})
	return &FileLogger{logger: slog.New(handler), writer: writer}
}

func (l *FileLogger) Debug(args ...interface{}) { l.logger.Debug(formatArgs(args...)) }
func (l *FileLogger) Info(args ...interface{})  { l.logger.Info(formatArgs(args...)) }
func (l *FileLogger) Warn(args ...interface{})  { l.logger.Warn(formatArgs(args...)) }
func (l *FileLogger) Error(args ...interface{}) { l.logger.Error(formatArgs(args...)) }

// Fatal logs at error level, flushes the file and exits with status 1.
func (l *FileLogger) Fatal(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
	_ = l.writer.Close()
	os.Exit(1)
}

// Panic logs at error level and panics with the message.
func (l *FileLogger) Panic(args ...interface{}) {
	msg := formatArgs(args...)
	l.logger.Error(msg)
	panic(msg)
}

// Close releases the underlying log file.
func (l *FileLogger) Close() error {
	return l.writer.Close()
}
