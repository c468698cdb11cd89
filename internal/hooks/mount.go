package hooks

import (
	"fmt"
	"strings"
)

// mountArgs is the decoded "<fstype> <source> <target> [flags]" argument.
type mountArgs struct {
	FSType string
	Source string
	Target string
	Flags  []string
}

func parseMountArgs(arg string) (mountArgs, error) {
	fields := strings.Fields(arg)
	if len(fields) < 3 || len(fields) > 4 {
		return mountArgs{}, fmt.Errorf("invalid mount hook syntax, must be: <fs> <src> <mountpoint> [flags]")
	}
	m := mountArgs{FSType: fields[0], Source: fields[1], Target: fields[2]}
	if len(fields) == 4 {
		m.Flags = strings.Split(fields[3], ",")
	}
	return m, nil
}

// umountArgs is the decoded "<target> [flags]" argument.
type umountArgs struct {
	Target string
	Flags  []string
}

func parseUmountArgs(arg string) (umountArgs, error) {
	fields := strings.Fields(arg)
	if len(fields) < 1 || len(fields) > 2 {
		return umountArgs{}, fmt.Errorf("invalid umount hook syntax, must be: <mountpoint> [flags]")
	}
	u := umountArgs{Target: fields[0]}
	if len(fields) == 2 {
		u.Flags = strings.Split(fields[1], ",")
	}
	return u, nil
}

func (h *processHooks) mount(arg string) int {
	args, err := parseMountArgs(arg)
	if err != nil {
		h.ctx.Logger.Error().Msg(err.Error())
		return -1
	}
	if err := doMount(args); err != nil {
		h.ctx.ErrorEvent("mount", err).Msgf("unable to mount %s on %s", args.Source, args.Target)
		return -1
	}
	return 0
}

func (h *processHooks) umount(arg string) int {
	args, err := parseUmountArgs(arg)
	if err != nil {
		h.ctx.Logger.Error().Msg(err.Error())
		return -1
	}
	if err := doUmount(args); err != nil {
		h.ctx.ErrorEvent("umount", err).Msgf("unable to umount %s", args.Target)
		return -1
	}
	return 0
}
