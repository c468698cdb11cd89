package config

import (
	"os"
	"path/filepath"

	"github.com/klauern/hookrun/internal/constants"
)

// XDGConfig handles XDG Base Directory Specification compliant configuration
type XDGConfig struct {
	BaseDir string
}

// NewXDGConfig creates a new XDG configuration manager
func NewXDGConfig() *XDGConfig {
	baseDir := os.Getenv("XDG_CONFIG_HOME")
	if baseDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to current directory if home directory cannot be determined
			baseDir = ".config"
		} else {
			baseDir = filepath.Join(homeDir, ".config")
		}
	}

	return &XDGConfig{
		BaseDir: filepath.Join(baseDir, constants.BinaryName),
	}
}

// GetConfigDir returns the XDG configuration directory
func (x *XDGConfig) GetConfigDir() string {
	return x.BaseDir
}

// GetLogPath returns the default rotating log file location
func (x *XDGConfig) GetLogPath() string {
	return filepath.Join(x.BaseDir, "logs", constants.DefaultLogFile)
}

// configCandidates lists hooks.<ext> under dir for every recognised extension
func configCandidates(dir string) []string {
	paths := make([]string, 0, len(constants.ConfigExtensions))
	for _, ext := range constants.ConfigExtensions {
		paths = append(paths, filepath.Join(dir, constants.ConfigBaseName+ext))
	}
	return paths
}

// CandidateConfigPaths returns possible config file locations in priority order:
// project scope (<cwd>/.hookrun) first, then the XDG global directory.
func (x *XDGConfig) CandidateConfigPaths(cwd string) []string {
	paths := configCandidates(filepath.Join(cwd, constants.ProjectDir))
	return append(paths, configCandidates(x.BaseDir)...)
}
