package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogRotationConfig holds configuration for log rotation
type LogRotationConfig struct {
	MaxAge     int  `yaml:"maxAge" toml:"maxAge" json:"maxAge"`             // Maximum number of days to retain log files
	MaxSize    int  `yaml:"maxSize" toml:"maxSize" json:"maxSize"`          // Maximum size in megabytes before rotation
	MaxBackups int  `yaml:"maxBackups" toml:"maxBackups" json:"maxBackups"` // Maximum number of backup files to retain
	Compress   bool `yaml:"compress" toml:"compress" json:"compress"`       // Whether to compress rotated files
}

// DefaultLogRotationConfig returns sensible defaults for log rotation
func DefaultLogRotationConfig() LogRotationConfig {
	return LogRotationConfig{
		MaxAge:     30,   // 30 days default retention
		MaxSize:    10,   // 10MB per file
		MaxBackups: 5,    // Keep 5 backup files
		Compress:   true, // Compress old files
	}
}

// LoggingConfig configures the diagnostic log
type LoggingConfig struct {
	Level    string            `yaml:"level" toml:"level" json:"level"`
	Format   string            `yaml:"format" toml:"format" json:"format"`
	File     string            `yaml:"file" toml:"file" json:"file"`
	Rotation LogRotationConfig `yaml:"rotation" toml:"rotation" json:"rotation"`
}

// DefaultLoggingConfig returns console logging at info level
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level:    LogLevelInfo,
		Format:   LoggingFormatConsole,
		Rotation: DefaultLogRotationConfig(),
	}
}

// SetupLogRotation configures log rotation for a given log file path
func SetupLogRotation(logPath string, config LogRotationConfig) *lumberjack.Logger {
	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(logPath), 0o750); err != nil {
		log.Printf("Failed to create log directory: %v", err)
		return nil
	}

	return &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge,
		Compress:   config.Compress,
		LocalTime:  true, // Use local time for timestamps
	}
}

// Logging format constants
const (
	LoggingFormatConsole = "console"
	LoggingFormatJSON    = "json"
)

// Log level names
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// IsValidLoggingFormat returns true if the provided format is supported.
func IsValidLoggingFormat(f string) bool {
	return f == LoggingFormatConsole || f == LoggingFormatJSON
}

// IsValidLogLevel returns true if the provided level name is supported.
func IsValidLogLevel(l string) bool {
	switch strings.ToLower(l) {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true
	}
	return false
}

// validate checks level and format, leaving empty values to the defaults.
func (c LoggingConfig) validate() error {
	if c.Level != "" && !IsValidLogLevel(c.Level) {
		return fmt.Errorf("invalid log level %q. Valid: debug, info, warn, error", c.Level)
	}
	if c.Format != "" && !IsValidLoggingFormat(c.Format) {
		return fmt.Errorf("invalid log format %q. Valid: console, json", c.Format)
	}
	return nil
}
