// Package hooks provides the built-in hook actions: filesystem and environment changes,
// process execution, diagnostics and, optionally, process-wide symbol invocation.
package hooks

import (
	"github.com/klauern/hookrun/internal/core"
	"github.com/klauern/hookrun/internal/symbols"
)

// Options selects optional parts of the built-in set.
type Options struct {
	// Symbols enables the call family. Nil leaves call, callret, callint and callintret
	// unregistered.
	Symbols symbols.Resolver
}

// Builtins returns the built-in actions in registration order.
func Builtins(ctx *core.HookContext, opts Options) []core.Entry {
	fs := &fsHooks{ctx: ctx}
	proc := &processHooks{ctx: ctx}

	entries := []core.Entry{
		{Name: "cd", Handler: core.Describe("<path>", fs.chdir)},
		{Name: "chdir", Handler: core.Describe("<path>", fs.chdir)},
		{Name: "mkdir", Handler: core.Describe("<path>", fs.mkdir)},
		{Name: "putenv", Handler: core.Describe("<NAME>=<value>", fs.putenv)},
		{Name: "chmod", Handler: core.Describe("<path> <mode>", fs.chmod)},
		{Name: "chown", Handler: core.Describe("<path> <user> <group>", fs.chown)},
		{Name: "chown2", Handler: core.Describe("<path> <uid> <gid>", fs.chown2)},

		{Name: "exec", Handler: core.Describe("<command line>", proc.exec)},

		{Name: "write", Handler: core.Describe("<path> <string>", fs.writer(writeTrunc))},
		{Name: "writen", Handler: core.Describe("<path> <string>", fs.writer(writeTruncNL))},
		{Name: "append", Handler: core.Describe("<path> <string>", fs.writer(writeAppend))},
		{Name: "appendn", Handler: core.Describe("<path> <string>", fs.writer(writeAppendNL))},
		{Name: "writefifo", Handler: core.Describe("<path> <string>", fs.writefifo)},
		{Name: "unlink", Handler: core.Describe("<path>", fs.unlink)},

		{Name: "mount", Handler: core.Describe("<fstype> <source> <target> [flags]", proc.mount)},
		{Name: "umount", Handler: core.Describe("<target> [flags]", proc.umount)},
	}

	if opts.Symbols != nil {
		inv := symbols.NewInvoker(opts.Symbols, ctx.Logger)
		entries = append(entries,
			core.Entry{Name: "call", Handler: core.Describe("<symbol>[ <string>]", inv.Call)},
			core.Entry{Name: "callret", Handler: core.Describe("<symbol>[ <string>]", inv.CallRet)},
			core.Entry{Name: "callint", Handler: core.Describe("<symbol>[ <int>]", inv.CallInt)},
			core.Entry{Name: "callintret", Handler: core.Describe("<symbol>[ <int>]", inv.CallIntRet)},
		)
	}

	entries = append(entries,
		core.Entry{Name: "hostname", Handler: core.Describe("<name>", proc.hostname)},
		core.Entry{Name: "alarm", Handler: core.Describe("<alarm> <message>", proc.alarm)},
		// diagnostics
		core.Entry{Name: "exit", Handler: core.Describe("[code]", proc.exit)},
		core.Entry{Name: "print", Handler: core.Describe("<text>", proc.print)},
		core.Entry{Name: "log", Handler: core.Describe("<text>", proc.print)},
	)
	return entries
}

// RegisterBuiltins registers the built-in actions into r. Actions registered
// earlier under the same names are overridden.
func RegisterBuiltins(r *core.Registry, ctx *core.HookContext, opts Options) {
	r.RegisterBatch(Builtins(ctx, opts))
}
