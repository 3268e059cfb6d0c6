//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeRestConfigFromFile(t *testing.T) {
	path := writeConfig(t, `
port: "9090"
allowed_origins:
  - http://localhost:3000
logger:
  log_level: debug
  log_type: console
cipher:
  mul_convention: literal
  cache_size: 16
`)

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.Equal(t, LogLevelDebug, cfg.Logger.LogLevel)
	assert.Equal(t, LogTypeConsole, cfg.Logger.LogType)
	assert.Equal(t, MulConventionLiteral, cfg.Cipher.MulConvention)
	assert.Equal(t, 16, cfg.Cipher.CacheSize)
}

func TestInitializeRestConfigDefaults(t *testing.T) {
	cfg, err := InitializeRestConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, DefaultLoggerSettings(), cfg.Logger)
	assert.Equal(t, DefaultCipherSettings(), cfg.Cipher)
}

func TestInitializeRestConfigEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
port: "9090"
cipher:
  mul_convention: textbook
`)
	t.Setenv("IDEA_PORT", "7070")
	t.Setenv("IDEA_CIPHER_MUL_CONVENTION", "literal")
	t.Setenv("IDEA_CIPHER_CACHE_SIZE", "0")

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, MulConventionLiteral, cfg.Cipher.MulConvention)
	assert.Equal(t, 0, cfg.Cipher.CacheSize)
}

func TestInitializeRestConfigRejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown convention", "cipher:\n  mul_convention: bogus\n"},
		{"non-numeric port", "port: http\n"},
		{"file logger without path", "logger:\n  log_level: info\n  log_type: file\n"},
		{"malformed yaml", "port: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := InitializeRestConfig(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}
