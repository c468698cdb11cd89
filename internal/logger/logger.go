// Package logger builds the zerolog logger used by the engine and every hook action.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/klauern/hookrun/internal/config"
	"github.com/rs/zerolog"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger bundles the configured zerolog logger with the rotating file behind it, if any.
type Logger struct {
	zerolog.Logger
	file *lumberjack.Logger
}

// ParseLevel maps a config level name to a zerolog level; empty means info.
func ParseLevel(name string) (zerolog.Level, error) {
	switch strings.ToLower(name) {
	case "", config.LogLevelInfo:
		return zerolog.InfoLevel, nil
	case config.LogLevelDebug:
		return zerolog.DebugLevel, nil
	case config.LogLevelWarn:
		return zerolog.WarnLevel, nil
	case config.LogLevelError:
		return zerolog.ErrorLevel, nil
	}
	return zerolog.NoLevel, fmt.Errorf("invalid log level %q", name)
}

// New builds a logger writing to console (stderr) and, when cfg.File is set, to a
// rotating JSON log file.
func New(cfg config.LoggingConfig, console io.Writer) (*Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if cfg.Format != "" && !config.IsValidLoggingFormat(cfg.Format) {
		return nil, fmt.Errorf("invalid log format %q. Valid: console, json", cfg.Format)
	}
	if console == nil {
		console = os.Stderr
	}

	var output io.Writer = console
	if cfg.Format != config.LoggingFormatJSON {
		output = zerolog.ConsoleWriter{
			Out:        console,
			TimeFormat: time.RFC3339,
			NoColor:    !isTerminal(console),
		}
	}

	l := &Logger{}
	if cfg.File != "" {
		l.file = config.SetupLogRotation(cfg.File, cfg.Rotation)
		if l.file == nil {
			return nil, fmt.Errorf("failed to set up log file %s", cfg.File)
		}
		// Console keeps its format, the file always gets JSON lines
		output = io.MultiWriter(output, l.file)
	}

	l.Logger = zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()
	return l, nil
}

// FilePath returns the rotating log file path, or "" when file logging is off.
func (l *Logger) FilePath() string {
	if l.file != nil {
		return l.file.Filename
	}
	return ""
}

// Close closes the file writer if it exists.
func (l *Logger) Close() error {
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
