package hooks

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauern/hookrun/internal/core"
	"github.com/klauern/hookrun/internal/symbols"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var callFamily = []string{"call", "callret", "callint", "callintret"}

func TestBuiltinsWithoutSymbols(t *testing.T) {
	r := core.NewRegistry()
	RegisterBuiltins(r, core.TestHookContext(nil), Options{})

	names := r.Names()
	for _, want := range []string{"cd", "chdir", "mkdir", "putenv", "chmod", "chown", "chown2", "exec",
		"write", "writen", "append", "appendn", "writefifo", "unlink", "hostname", "alarm", "exit", "print", "log"} {
		assert.Contains(t, names, want)
	}
	for _, name := range callFamily {
		assert.NotContains(t, names, name)
	}
	assert.Equal(t, "cd", names[0], "registration order starts with cd")
}

func TestBuiltinsWithSymbols(t *testing.T) {
	tbl := symbols.NewTable()
	tbl.MustRegister("answer", func() int { return 42 })

	r := core.NewRegistry()
	RegisterBuiltins(r, core.TestHookContext(nil), Options{Symbols: tbl})
	for _, name := range callFamily {
		_, ok := r.Lookup(name)
		assert.True(t, ok, name)
	}

	h, _ := r.Lookup("callret")
	assert.Equal(t, 42, h.Run("answer"))
	assert.Equal(t, -1, h.Run("missing_symbol"))
}

func TestBuiltinsCanBeOverridden(t *testing.T) {
	r := core.NewRegistry()
	ctx := core.TestHookContext(nil)
	RegisterBuiltins(r, ctx, Options{})
	before := r.Names()

	r.RegisterFunc("print", func(string) int { return 99 })

	assert.Equal(t, before, r.Names())
	h, _ := r.Lookup("print")
	assert.Equal(t, 99, h.Run("x"))
}

// End-to-end through the engine with the real filesystem
func TestEngineWithBuiltins(t *testing.T) {
	var logs bytes.Buffer
	ctx := core.TestHookContext(&logs)
	ctx.FileSystem = &core.RealFileSystem{}
	r := core.NewRegistry()
	RegisterBuiltins(r, ctx, Options{})
	engine := core.NewEngine(r, ctx)

	dir := t.TempDir()
	out := filepath.Join(dir, "sub", "out.txt")
	specs := []string{
		"mkdir:" + filepath.Join(dir, "sub"),
		"write:" + out + " hello",
		"append:" + out + " world",
		"!appendn:" + out + " secret",
		"print:done",
	}

	_, exited := core.CatchExit(func() { engine.Run(specs, "test-phase", true) })
	require.False(t, exited, logs.String())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "helloworldsecret\n", string(data))
	assert.NotContains(t, logs.String(), "secret")
}

func TestEngineFatalWithBuiltins(t *testing.T) {
	ctx := core.TestHookContext(nil)
	ctx.FileSystem = &core.RealFileSystem{}
	r := core.NewRegistry()
	RegisterBuiltins(r, ctx, Options{})
	engine := core.NewEngine(r, ctx)

	marker := filepath.Join(t.TempDir(), "marker")
	specs := []string{
		"unlink:" + filepath.Join(t.TempDir(), "does-not-exist"),
		"write:" + marker + " reached",
	}

	code, exited := core.CatchExit(func() { engine.Run(specs, "boot", true) })
	require.True(t, exited)
	assert.Equal(t, core.ExitFailure, code)
	_, err := os.Stat(marker)
	assert.True(t, os.IsNotExist(err), "hooks after a fatal failure must not run")

	_, exited = core.CatchExit(func() { engine.Run(specs, "boot", false) })
	require.False(t, exited)
	_, err = os.Stat(marker)
	assert.NoError(t, err)
}
