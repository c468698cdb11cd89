package core

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// MockFileSystem implements FileSystem interface for testing
type MockFileSystem struct {
	Cwd     string
	Files   map[string][]byte
	Dirs    map[string]os.FileMode
	Modes   map[string]os.FileMode
	Owners  map[string][2]int
	Removed []string
	// Errs maps an operation name ("chdir", "mkdir", "chmod", "chown", "open", "remove")
	// to the error it should return.
	Errs map[string]error
	mu   sync.RWMutex
}

// NewMockFileSystem creates a new mock filesystem for testing
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Files:  make(map[string][]byte),
		Dirs:   make(map[string]os.FileMode),
		Modes:  make(map[string]os.FileMode),
		Owners: make(map[string][2]int),
		Errs:   make(map[string]error),
	}
}

func (m *MockFileSystem) fail(op string) error {
	return m.Errs[op]
}

// Chdir records the new working directory
func (m *MockFileSystem) Chdir(dir string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("chdir"); err != nil {
		return err
	}
	m.Cwd = dir
	return nil
}

// Mkdir records a created directory
func (m *MockFileSystem) Mkdir(name string, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("mkdir"); err != nil {
		return err
	}
	if _, exists := m.Dirs[name]; exists {
		return os.ErrExist
	}
	m.Dirs[name] = perm
	return nil
}

// Chmod records a mode change
func (m *MockFileSystem) Chmod(name string, mode os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("chmod"); err != nil {
		return err
	}
	m.Modes[name] = mode
	return nil
}

// Chown records an ownership change
func (m *MockFileSystem) Chown(name string, uid, gid int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("chown"); err != nil {
		return err
	}
	m.Owners[name] = [2]int{uid, gid}
	return nil
}

// OpenFile returns an in-memory file honouring O_TRUNC and O_APPEND
func (m *MockFileSystem) OpenFile(name string, flag int, _ os.FileMode) (File, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("open"); err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	if flag&os.O_TRUNC == 0 {
		buf.Write(m.Files[name])
	}
	return &mockFile{fs: m, name: name, buf: buf}, nil
}

// Remove records a removed file
func (m *MockFileSystem) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail("remove"); err != nil {
		return err
	}
	delete(m.Files, name)
	m.Removed = append(m.Removed, name)
	return nil
}

// Contents returns the data last written to name
func (m *MockFileSystem) Contents(name string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return string(m.Files[name])
}

type mockFile struct {
	fs   *MockFileSystem
	name string
	buf  *bytes.Buffer
}

func (f *mockFile) Write(p []byte) (int, error) { return f.buf.Write(p) }

func (f *mockFile) Close() error {
	f.fs.mu.Lock()
	defer f.fs.mu.Unlock()
	f.fs.Files[f.name] = f.buf.Bytes()
	return nil
}

// MockCommandRunner implements CommandRunner for testing
type MockCommandRunner struct {
	Commands []string
	// Statuses maps a command line to the exit status it reports (default 0)
	Statuses map[string]int
	Err      error
	mu       sync.Mutex
}

// NewMockCommandRunner creates a new mock command runner for testing
func NewMockCommandRunner() *MockCommandRunner {
	return &MockCommandRunner{Statuses: make(map[string]int)}
}

// RunCommand records cmdline and returns its configured status
func (m *MockCommandRunner) RunCommand(cmdline string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Commands = append(m.Commands, cmdline)
	if m.Err != nil {
		return -1, m.Err
	}
	return m.Statuses[cmdline], nil
}

// MockAlarms records triggered alarms
type MockAlarms struct {
	Triggered [][2]string
}

// Trigger records the alarm
func (m *MockAlarms) Trigger(alarm, msg string) error {
	m.Triggered = append(m.Triggered, [2]string{alarm, msg})
	return nil
}

// ExitSignal is the panic value raised by the Exit function of TestHookContext.
type ExitSignal struct {
	Code int
}

// CatchExit runs fn and reports the exit code if fn triggered a test context Exit.
func CatchExit(fn func()) (code int, exited bool) {
	defer func() {
		if r := recover(); r != nil {
			sig, ok := r.(ExitSignal)
			if !ok {
				panic(r)
			}
			code, exited = sig.Code, true
		}
	}()
	fn()
	return 0, false
}

// TestHookContext creates a context suitable for testing. Log output goes to out
// (discarded when nil) and Exit panics with ExitSignal.
func TestHookContext(out io.Writer) *HookContext {
	if out == nil {
		out = io.Discard
	}
	logger := zerolog.New(out)
	return &HookContext{
		FileSystem:    NewMockFileSystem(),
		CommandRunner: NewMockCommandRunner(),
		Alarms:        &MockAlarms{},
		Logger:        logger,
		Exit:          func(code int) { panic(ExitSignal{Code: code}) },
	}
}
