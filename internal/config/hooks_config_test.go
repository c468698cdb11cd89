package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

const sampleYAML = `
shell: ""
symbols: false
logging:
  level: debug
phases:
  - name: pre-start
    fatal: true
    hooks:
      - "mkdir:/run/app"
      - "!putenv:TOKEN=abc"
  - name: post-reload
    hooks:
      - "print:reloaded"
`

const sampleTOML = `
shell = "/bin/bash"

[logging]
level = "warn"
format = "json"

[[phases]]
name = "pre-start"
fatal = true
hooks = ["exec:true"]

[[phases]]
name = "shutdown"
hooks = ["unlink:/run/app/pid"]
`

const sampleJSON = `{
  "phases": [
    {"name": "pre-start", "hooks": ["print:json"]}
  ]
}`

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hooks.yml")
	writeFile(t, path, sampleYAML)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "", cfg.ShellOrDefault())
	assert.False(t, cfg.SymbolsEnabled())
	assert.Equal(t, LogLevelDebug, cfg.Logging.Level)
	assert.Equal(t, LoggingFormatConsole, cfg.Logging.Format)
	assert.Equal(t, DefaultLogRotationConfig(), cfg.Logging.Rotation)
	assert.Equal(t, []string{"pre-start", "post-reload"}, cfg.PhaseNames())

	p, ok := cfg.Phase("pre-start")
	require.True(t, ok)
	assert.True(t, p.Fatal)
	assert.Equal(t, []string{"mkdir:/run/app", "!putenv:TOKEN=abc"}, p.Hooks)
	assert.Equal(t, []string{path}, cfg.Sources)
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hooks.toml")
	writeFile(t, path, sampleTOML)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/bin/bash", cfg.ShellOrDefault())
	assert.True(t, cfg.SymbolsEnabled())
	assert.Equal(t, LogLevelWarn, cfg.Logging.Level)
	assert.Equal(t, LoggingFormatJSON, cfg.Logging.Format)
	assert.Equal(t, []string{"pre-start", "shutdown"}, cfg.PhaseNames())
}

func TestLoadJSONDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hooks.json")
	writeFile(t, path, sampleJSON)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/bin/sh", cfg.ShellOrDefault())
	assert.True(t, cfg.SymbolsEnabled())
	assert.Equal(t, LogLevelInfo, cfg.Logging.Level)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "hooks.ini")
	writeFile(t, bad, "x=y")
	_, err = Load(bad)
	assert.ErrorContains(t, err, "unsupported config file extension")

	broken := filepath.Join(dir, "broken.yml")
	writeFile(t, broken, "phases: [")
	_, err = Load(broken)
	assert.Error(t, err)
}

func TestDiscoverMergesProjectOverGlobal(t *testing.T) {
	cwd := t.TempDir()
	xdg := &XDGConfig{BaseDir: t.TempDir()}

	writeFile(t, filepath.Join(cwd, ".hookrun", "hooks.yml"), sampleYAML)
	writeFile(t, filepath.Join(xdg.BaseDir, "hooks.toml"), sampleTOML)

	cfg, err := Discover(xdg, cwd)
	require.NoError(t, err)

	// project file wins settings and same-named phases; global adds new phases
	assert.Equal(t, "", cfg.ShellOrDefault())
	assert.Equal(t, []string{"pre-start", "post-reload", "shutdown"}, cfg.PhaseNames())
	p, _ := cfg.Phase("pre-start")
	assert.Equal(t, "mkdir:/run/app", p.Hooks[0])
	assert.Len(t, cfg.Sources, 2)
}

func TestDiscoverNothing(t *testing.T) {
	_, err := Discover(&XDGConfig{BaseDir: t.TempDir()}, t.TempDir())
	assert.ErrorIs(t, err, ErrNoConfig)
}

func TestMergeInheritsUnsetSettings(t *testing.T) {
	shell := "/bin/zsh"
	off := false
	high := &Config{Phases: []Phase{{Name: "a"}}}
	low := &Config{Shell: &shell, Symbols: &off, Phases: []Phase{{Name: "a", Fatal: true}, {Name: "b"}}}

	out := Merge(high, low)
	assert.Equal(t, "/bin/zsh", out.ShellOrDefault())
	assert.False(t, out.SymbolsEnabled())
	assert.Equal(t, []Phase{{Name: "a"}, {Name: "b"}}, out.Phases)
	assert.Len(t, high.Phases, 1, "Merge must not modify its inputs")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr string
	}{
		{name: "nil", cfg: nil, wantErr: "nil config"},
		{name: "ok", cfg: &Config{Phases: []Phase{{Name: "a", Hooks: []string{"print:x"}}}}},
		{name: "missing name", cfg: &Config{Phases: []Phase{{Hooks: []string{"print:x"}}}}, wantErr: "missing name"},
		{name: "duplicate", cfg: &Config{Phases: []Phase{{Name: "a"}, {Name: "a"}}}, wantErr: "more than once"},
		{name: "no colon", cfg: &Config{Phases: []Phase{{Name: "a", Hooks: []string{"print"}}}}, wantErr: "invalid hook syntax"},
		{name: "bad level", cfg: &Config{Logging: LoggingConfig{Level: "loud"}}, wantErr: "invalid log level"},
		{name: "bad format", cfg: &Config{Logging: LoggingConfig{Format: "xml"}}, wantErr: "invalid log format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestCandidateConfigPaths(t *testing.T) {
	xdg := &XDGConfig{BaseDir: "/home/u/.config/hookrun"}
	paths := xdg.CandidateConfigPaths("/srv/app")

	require.Len(t, paths, 8)
	assert.Equal(t, filepath.Join("/srv/app", ".hookrun", "hooks.yml"), paths[0])
	assert.Equal(t, filepath.Join("/home/u/.config/hookrun", "hooks.json"), paths[7])
}

func TestNewXDGConfigHonoursEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	assert.Equal(t, filepath.Join("/tmp/xdg-test", "hookrun"), NewXDGConfig().GetConfigDir())
}

func TestLoadPartialRotationKeepsDefaults(t *testing.T) {
	files := map[string]string{
		"hooks.yml":  "logging:\n  rotation:\n    compress: false\n",
		"hooks.toml": "[logging.rotation]\ncompress = false\n",
		"hooks.json": `{"logging": {"rotation": {"compress": false}}}`,
	}
	want := DefaultLogRotationConfig()
	want.Compress = false

	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			writeFile(t, path, content)

			cfg, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, want, cfg.Logging.Rotation)
		})
	}
}
