package symbols

import (
	"os"
	"runtime"
	"runtime/debug"
	"strings"
)

// RegisterRuntime adds a small set of process-level functions to t.
func RegisterRuntime(t *Table) error {
	builtins := []struct {
		name string
		fn   any
	}{
		{"runtime_gc", runtime.GC},
		{"free_os_memory", debug.FreeOSMemory},
		{"getpid", os.Getpid},
		{"set_gc_percent", debug.SetGCPercent},
		{"set_max_procs", runtime.GOMAXPROCS},
		{"setenv_line", setenvLine},
	}
	for _, b := range builtins {
		if err := t.Register(b.name, b.fn); err != nil {
			return err
		}
	}
	return nil
}

// setenvLine sets NAME=value, returning -1 for malformed input or a failed setenv.
func setenvLine(kv string) int {
	name, value, ok := strings.Cut(kv, "=")
	if !ok || name == "" {
		return -1
	}
	if err := os.Setenv(name, value); err != nil {
		return -1
	}
	return 0
}
