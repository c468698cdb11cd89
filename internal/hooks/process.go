package hooks

import (
	"github.com/klauern/hookrun/internal/core"
)

// processHooks implements actions that spawn commands, terminate the process or
// talk to other subsystems.
type processHooks struct {
	ctx *core.HookContext
}

// exec runs a command line and reports its exit code as the hook status.
func (h *processHooks) exec(arg string) int {
	status, err := h.ctx.CommandRunner.RunCommand(arg)
	if err != nil {
		h.ctx.ErrorEvent("exec", err).Msgf("unable to run command %q", arg)
		return -1
	}
	if status != 0 {
		h.ctx.Logger.Error().Str("action", "exec").Int("status", status).
			Msgf("command %q exited with non-zero code: %d", arg, status)
	}
	return status
}

// exit terminates the process with the given code, 0 when empty.
func (h *processHooks) exit(arg string) int {
	code := 0
	if arg != "" {
		code = core.Atoi(arg)
	}
	h.ctx.Exit(code)
	return 0
}

func (h *processHooks) print(arg string) int {
	h.ctx.Logger.Info().Msg(arg)
	return 0
}

// alarm expects "<alarm> <message>".
func (h *processHooks) alarm(arg string) int {
	name, msg, ok := core.SplitArg(arg)
	if !ok {
		h.ctx.Logger.Error().Msg("invalid alarm hook syntax, must be: <alarm> <msg>")
		return -1
	}
	if err := h.ctx.Alarms.Trigger(name, msg); err != nil {
		h.ctx.ErrorEvent("alarm", err).Msgf("unable to trigger alarm %s", name)
		return -1
	}
	return 0
}

func (h *processHooks) hostname(arg string) int {
	if err := setHostname(arg); err != nil {
		h.ctx.ErrorEvent("hostname", err).Msgf("unable to set hostname to %s", arg)
		return -1
	}
	return 0
}
