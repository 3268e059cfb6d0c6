// Package testutil contains helpers shared by unit tests.
package testutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ujwal-s-r/system-design/internal/pkg/config"
	"github.com/ujwal-s-r/system-design/internal/pkg/logger"
)

// SetupTestLogger sets up a console logger for testing purposes.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	log, err := logger.New(&config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	})
	require.NoError(t, err)

	return log
}

// SetupBufferedLogger returns a debug-level logger whose text output is
// collected in the returned buffer.
func SetupBufferedLogger(t *testing.T) (logger.Logger, *bytes.Buffer) {
	t.Helper()

	buf := &bytes.Buffer{}
	return logger.NewConsoleLogger(config.LogLevelDebug, buf), buf
}
