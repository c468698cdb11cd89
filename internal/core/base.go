package core

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/google/shlex"
	"github.com/klauern/hookrun/internal/constants"
	"github.com/rs/zerolog"
)

// File is the subset of *os.File that write-style actions need.
type File interface {
	io.Writer
	io.Closer
}

// FileSystem interface for dependency injection in testing
type FileSystem interface {
	Chdir(dir string) error
	Mkdir(name string, perm os.FileMode) error
	Chmod(name string, mode os.FileMode) error
	Chown(name string, uid, gid int) error
	OpenFile(name string, flag int, perm os.FileMode) (File, error)
	Remove(name string) error
}

// RealFileSystem implements FileSystem using the real filesystem
type RealFileSystem struct{}

// Chdir changes the process working directory
func (fs *RealFileSystem) Chdir(dir string) error {
	return os.Chdir(dir)
}

// Mkdir creates a single directory; perm is subject to the process umask
func (fs *RealFileSystem) Mkdir(name string, perm os.FileMode) error {
	return os.Mkdir(name, perm)
}

// Chmod changes the mode of the named file
func (fs *RealFileSystem) Chmod(name string, mode os.FileMode) error {
	return os.Chmod(name, mode)
}

// Chown changes the numeric owner and group of the named file
func (fs *RealFileSystem) Chown(name string, uid, gid int) error {
	return os.Chown(name, uid, gid)
}

// OpenFile opens a file with the specified flags and permissions
func (fs *RealFileSystem) OpenFile(name string, flag int, perm os.FileMode) (File, error) {
	return os.OpenFile(name, flag, perm) // #nosec G304 - paths come from operator configuration
}

// Remove removes the named file
func (fs *RealFileSystem) Remove(name string) error {
	return os.Remove(name)
}

// CommandRunner spawns an external command and blocks until it exits.
// The returned status is the command's exit code; err is set only when the
// command could not be started or waited for.
type CommandRunner interface {
	RunCommand(cmdline string) (int, error)
}

// ShellRunner runs command lines through Shell ("<shell> -c <cmdline>"). With an empty
// Shell the command line is split into argv with shell quoting rules and run directly.
type ShellRunner struct {
	Shell  string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// RunCommand executes cmdline and waits for it to finish
// #nosec G204 - command lines come from operator configuration
func (r *ShellRunner) RunCommand(cmdline string) (int, error) {
	var cmd *exec.Cmd
	if r.Shell != "" {
		cmd = exec.Command(r.Shell, "-c", cmdline)
	} else {
		argv, err := shlex.Split(cmdline)
		if err != nil {
			return -1, fmt.Errorf("failed to split command line: %w", err)
		}
		if len(argv) == 0 {
			return -1, errors.New("empty command line")
		}
		cmd = exec.Command(argv[0], argv[1:]...)
	}
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}

// AlarmTrigger raises a named alarm with a message.
type AlarmTrigger interface {
	Trigger(alarm, msg string) error
}

// LogAlarms is the default AlarmTrigger: alarms are written to the log at warn level.
type LogAlarms struct {
	Logger zerolog.Logger
}

// Trigger logs the alarm
func (a LogAlarms) Trigger(alarm, msg string) error {
	a.Logger.Warn().Str("alarm", alarm).Msg(msg)
	return nil
}

// HookContext provides dependencies that action handlers and the engine need
type HookContext struct {
	FileSystem    FileSystem
	CommandRunner CommandRunner
	Alarms        AlarmTrigger
	Logger        zerolog.Logger
	// Exit terminates the process. Tests replace it to observe fatal aborts.
	Exit func(code int)
}

// DefaultHookContext returns a context with real implementations
func DefaultHookContext(logger zerolog.Logger) *HookContext {
	return &HookContext{
		FileSystem: &RealFileSystem{},
		CommandRunner: &ShellRunner{
			Shell:  constants.DefaultShell,
			Stdin:  os.Stdin,
			Stdout: os.Stdout,
			Stderr: os.Stderr,
		},
		Alarms: LogAlarms{Logger: logger},
		Logger: logger,
		Exit:   os.Exit,
	}
}
