package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauern/hookrun/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"":      zerolog.InfoLevel,
		"info":  zerolog.InfoLevel,
		"DEBUG": zerolog.DebugLevel,
		"warn":  zerolog.WarnLevel,
		"error": zerolog.ErrorLevel,
	}
	for name, want := range tests {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseLevel("trace")
	assert.Error(t, err)
}

func TestNewJSONConsole(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.DefaultLoggingConfig()
	cfg.Format = config.LoggingFormatJSON
	cfg.Level = config.LogLevelWarn

	l, err := New(cfg, &buf)
	require.NoError(t, err)
	defer l.Close()

	l.Info().Msg("dropped")
	l.Warn().Str("phase", "pre-start").Msg("kept")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "pre-start", entry["phase"])
	assert.Equal(t, "", l.FilePath())
}

func TestNewConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(config.DefaultLoggingConfig(), &buf)
	require.NoError(t, err)

	l.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestNewWithFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "hookrun.log")
	cfg := config.DefaultLoggingConfig()
	cfg.File = path

	l, err := New(cfg, &buf)
	require.NoError(t, err)
	assert.Equal(t, path, l.FilePath())

	l.Info().Msg("to file")
	require.NoError(t, l.Close())
	assert.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(bytes.TrimSpace(data)))
	assert.Contains(t, string(data), `"message":"to file"`)
	assert.Contains(t, buf.String(), "to file")
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New(config.LoggingConfig{Level: "loud"}, nil)
	assert.Error(t, err)
}

func TestNewInvalidFormat(t *testing.T) {
	_, err := New(config.LoggingConfig{Format: "xml"}, nil)
	assert.ErrorContains(t, err, `invalid log format "xml"`)

	l, err := New(config.LoggingConfig{}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.NoError(t, l.Close())
}
