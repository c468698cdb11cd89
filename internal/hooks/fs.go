package hooks

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"strings"

	"github.com/klauern/hookrun/internal/core"
)

// fsHooks implements the filesystem and environment actions
type fsHooks struct {
	ctx *core.HookContext
}

func (h *fsHooks) chdir(arg string) int {
	if err := h.ctx.FileSystem.Chdir(arg); err != nil {
		h.ctx.ErrorEvent("chdir", err).Msgf("unable to change directory to %s", arg)
		return -1
	}
	return 0
}

func (h *fsHooks) mkdir(arg string) int {
	if err := h.ctx.FileSystem.Mkdir(arg, 0o777); err != nil {
		h.ctx.ErrorEvent("mkdir", err).Msgf("unable to create directory %s", arg)
		return -1
	}
	return 0
}

// putenv sets NAME=value; an argument without "=" unsets NAME.
func (h *fsHooks) putenv(arg string) int {
	name, value, ok := strings.Cut(arg, "=")
	var err error
	switch {
	case name == "":
		err = errors.New("empty variable name")
	case ok:
		err = os.Setenv(name, value)
	default:
		err = os.Unsetenv(name)
	}
	if err != nil {
		h.ctx.ErrorEvent("putenv", err).Msgf("unable to set environment %s", arg)
		return -1
	}
	return 0
}

func (h *fsHooks) unlink(arg string) int {
	if err := h.ctx.FileSystem.Remove(arg); err != nil {
		h.ctx.ErrorEvent("unlink", err).Msgf("unable to unlink %s", arg)
		return -1
	}
	return 0
}

// pathArgs is the decoded "<path> <rest>" argument shared by chmod and the write family.
type pathArgs struct {
	Path string
	Rest string
}

func parsePathArgs(action, arg, usage string) (pathArgs, error) {
	path, rest, ok := core.SplitArg(arg)
	if !ok {
		return pathArgs{}, fmt.Errorf("invalid hook %s syntax, must be: %s", action, usage)
	}
	return pathArgs{Path: path, Rest: rest}, nil
}

func (h *fsHooks) chmod(arg string) int {
	args, err := parsePathArgs("chmod", arg, "<file> <mode>")
	if err != nil {
		h.ctx.Logger.Error().Msg(err.Error())
		return -1
	}
	mode, err := ParseMode(args.Rest)
	if err != nil {
		h.ctx.ErrorEvent("chmod", err).Msgf("invalid hook chmod mask: %s", args.Rest)
		return -1
	}
	if err := h.ctx.FileSystem.Chmod(args.Path, mode); err != nil {
		h.ctx.ErrorEvent("chmod", err).Msgf("unable to chmod %s", args.Path)
		return -1
	}
	return 0
}

// ownerArgs is the decoded "<file> <uid> <gid>" argument of chown and chown2.
type ownerArgs struct {
	Path  string
	User  string
	Group string
}

func parseOwnerArgs(action, arg string) (ownerArgs, error) {
	path, rest, ok := core.SplitArg(arg)
	if ok {
		var usr, grp string
		if usr, grp, ok = core.SplitArg(rest); ok {
			return ownerArgs{Path: path, User: usr, Group: grp}, nil
		}
	}
	return ownerArgs{}, fmt.Errorf("invalid hook %s syntax, must be: <file> <uid> <gid>", action)
}

// chown resolves user and group names through the system account databases.
func (h *fsHooks) chown(arg string) int {
	args, err := parseOwnerArgs("chown", arg)
	if err != nil {
		h.ctx.Logger.Error().Msg(err.Error())
		return -1
	}
	u, err := user.Lookup(args.User)
	if err != nil {
		h.ctx.ErrorEvent("chown", err).Msgf("unable to find uid %s", args.User)
		return -1
	}
	g, err := user.LookupGroup(args.Group)
	if err != nil {
		h.ctx.ErrorEvent("chown", err).Msgf("unable to find gid %s", args.Group)
		return -1
	}
	return h.doChown("chown", args.Path, core.Atoi(u.Uid), core.Atoi(g.Gid))
}

// chown2 accepts numeric ids only.
func (h *fsHooks) chown2(arg string) int {
	args, err := parseOwnerArgs("chown2", arg)
	if err != nil {
		h.ctx.Logger.Error().Msg(err.Error())
		return -1
	}
	if !core.IsNumber(args.User) {
		h.ctx.Logger.Error().Msg("invalid hook chown2 syntax, uid must be a number")
		return -1
	}
	if !core.IsNumber(args.Group) {
		h.ctx.Logger.Error().Msg("invalid hook chown2 syntax, gid must be a number")
		return -1
	}
	return h.doChown("chown2", args.Path, core.Atoi(args.User), core.Atoi(args.Group))
}

func (h *fsHooks) doChown(action, path string, uid, gid int) int {
	if err := h.ctx.FileSystem.Chown(path, uid, gid); err != nil {
		h.ctx.ErrorEvent(action, err).Msgf("unable to chown %s to %d:%d", path, uid, gid)
		return -1
	}
	return 0
}

// writeMode selects how the write family opens its target
type writeMode struct {
	action  string
	flag    int
	newline bool
}

var (
	writeTrunc    = writeMode{action: "write", flag: os.O_WRONLY | os.O_CREATE | os.O_TRUNC}
	writeTruncNL  = writeMode{action: "writen", flag: os.O_WRONLY | os.O_CREATE | os.O_TRUNC, newline: true}
	writeAppend   = writeMode{action: "append", flag: os.O_WRONLY | os.O_CREATE | os.O_APPEND}
	writeAppendNL = writeMode{action: "appendn", flag: os.O_WRONLY | os.O_CREATE | os.O_APPEND, newline: true}
)

func (h *fsHooks) writer(m writeMode) func(string) int {
	return func(arg string) int {
		args, err := parsePathArgs(m.action, arg, "<file> <string>")
		if err != nil {
			h.ctx.Logger.Error().Msg(err.Error())
			return -1
		}
		data := args.Rest
		if m.newline {
			data += "\n"
		}
		f, err := h.ctx.FileSystem.OpenFile(args.Path, m.flag, 0o666)
		if err != nil {
			h.ctx.ErrorEvent(m.action, err).Msgf("unable to open %s", args.Path)
			return -1
		}
		return h.writeAll(m.action, f, data)
	}
}

// writeAll writes data in a single call and closes f; a short write is a failure.
func (h *fsHooks) writeAll(action string, f core.File, data string) int {
	n, err := f.Write([]byte(data))
	closeErr := f.Close()
	if err == nil && n != len(data) {
		err = fmt.Errorf("short write: %d of %d bytes", n, len(data))
	}
	if err == nil {
		err = closeErr
	}
	if err != nil {
		h.ctx.ErrorEvent(action, err).Msg("write failed")
		return -1
	}
	return 0
}

// writefifo opens without blocking; a FIFO with no reader counts as success.
func (h *fsHooks) writefifo(arg string) int {
	args, err := parsePathArgs("writefifo", arg, "<file> <string>")
	if err != nil {
		h.ctx.Logger.Error().Msg(err.Error())
		return -1
	}
	f, err := h.ctx.FileSystem.OpenFile(args.Path, os.O_WRONLY|nonBlockFlag, 0)
	if err != nil {
		h.ctx.ErrorEvent("writefifo", err).Msgf("unable to open %s", args.Path)
		if isNoReader(err) {
			return 0
		}
		return -1
	}
	return h.writeAll("writefifo", f, args.Rest)
}
