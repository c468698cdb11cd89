package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/klauern/hookrun/internal/constants"
	yaml "gopkg.in/yaml.v3"
)

// ErrNoConfig is returned by Discover when no config file exists in any candidate location.
var ErrNoConfig = errors.New("no hooks config file found")

// Phase is an ordered list of hook specifications that runs at one lifecycle point
type Phase struct {
	Name  string   `yaml:"name" toml:"name" json:"name"`
	Fatal bool     `yaml:"fatal,omitempty" toml:"fatal" json:"fatal,omitempty"`
	Hooks []string `yaml:"hooks" toml:"hooks" json:"hooks"`
}

// Config is the root structure of a hooks config file
type Config struct {
	// Shell runs exec command lines; empty splits them into argv and runs them directly.
	Shell *string `yaml:"shell,omitempty" toml:"shell" json:"shell,omitempty"`
	// Symbols enables the call family of actions. Defaults to true.
	Symbols *bool         `yaml:"symbols,omitempty" toml:"symbols" json:"symbols,omitempty"`
	Logging LoggingConfig `yaml:"logging" toml:"logging" json:"logging"`
	Phases  []Phase       `yaml:"phases" toml:"phases" json:"phases"`

	// Sources lists the files the config was assembled from, highest priority first.
	Sources []string `yaml:"-" toml:"-" json:"-"`
}

// Default returns the configuration used when no file provides values
func Default() *Config {
	return &Config{Logging: DefaultLoggingConfig()}
}

// ShellOrDefault returns the configured shell, falling back to /bin/sh when unset.
func (c *Config) ShellOrDefault() string {
	if c.Shell == nil {
		return constants.DefaultShell
	}
	return *c.Shell
}

// SymbolsEnabled reports whether the call family should be registered.
func (c *Config) SymbolsEnabled() bool {
	return c.Symbols == nil || *c.Symbols
}

// Phase returns the phase with the given name
func (c *Config) Phase(name string) (Phase, bool) {
	for _, p := range c.Phases {
		if p.Name == name {
			return p, true
		}
	}
	return Phase{}, false
}

// PhaseNames returns phase names in configured order
func (c *Config) PhaseNames() []string {
	names := make([]string, len(c.Phases))
	for i, p := range c.Phases {
		names[i] = p.Name
	}
	return names
}

// Load reads a single config file, decoding YAML, TOML or JSON by extension.
// Unset logging values take their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path supplied by operator or discovery
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Decoding over the defaults keeps every field the file leaves out
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file extension: %s", path)
	}
	cfg.applyDefaults()
	cfg.Sources = []string{path}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	def := DefaultLoggingConfig()
	if c.Logging.Level == "" {
		c.Logging.Level = def.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = def.Format
	}
	if c.Logging.Rotation == (LogRotationConfig{}) {
		c.Logging.Rotation = def.Rotation
	}
}

// Discover loads and merges every existing candidate file. Earlier candidates win:
// settings come from the highest-priority file, and phases from lower-priority files
// are appended only when their names are new.
func Discover(x *XDGConfig, cwd string) (*Config, error) {
	var merged *Config
	for _, p := range x.CandidateConfigPaths(cwd) {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		cfg, err := Load(p)
		if err != nil {
			return nil, err
		}
		if merged == nil {
			merged = cfg
			continue
		}
		merged = Merge(merged, cfg)
	}
	if merged == nil {
		return nil, ErrNoConfig
	}
	return merged, nil
}

// Merge overlays low-priority config low beneath high. Settings explicitly set in high
// are kept; phases present in both keep the high-priority definition and position.
func Merge(high, low *Config) *Config {
	out := *high
	if out.Shell == nil {
		out.Shell = low.Shell
	}
	if out.Symbols == nil {
		out.Symbols = low.Symbols
	}
	out.Phases = append([]Phase(nil), high.Phases...)
	for _, p := range low.Phases {
		if _, exists := out.Phase(p.Name); !exists {
			out.Phases = append(out.Phases, p)
		}
	}
	out.Sources = append(append([]string(nil), high.Sources...), low.Sources...)
	return &out
}

// Validate performs structural checks: logging settings, phase names present and
// unique, and every hook specification containing a colon.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("nil config")
	}
	if err := cfg.Logging.validate(); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(cfg.Phases))
	for i, p := range cfg.Phases {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("phase[%d] missing name", i)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("phase '%s' defined more than once", p.Name)
		}
		seen[p.Name] = struct{}{}
		for j, h := range p.Hooks {
			if !strings.Contains(h, ":") {
				return fmt.Errorf("phase '%s' hook[%d] %q: invalid hook syntax, must be hook:args", p.Name, j, h)
			}
		}
	}
	return nil
}
