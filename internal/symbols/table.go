// Package symbols implements the process-wide function space used by the call family of
// hook actions. Functions are registered by name with one of a fixed set of signatures
// and later resolved and invoked by name from configuration.
//
// This is an escape hatch: whatever a registered function does runs with the full
// privileges of the process. Deployments that do not need it resolve through Disabled.
package symbols

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrInvalidSignature is returned when registering a value that is not one of the
	// supported function shapes.
	ErrInvalidSignature = errors.New("unsupported symbol signature")
	// ErrDuplicateSymbol is returned when a name is already registered.
	ErrDuplicateSymbol = errors.New("symbol already registered")
)

// Resolver looks up a process-wide function by name.
type Resolver interface {
	Resolve(name string) (any, bool)
}

// Table is a concurrency-safe symbol table.
type Table struct {
	mu  sync.RWMutex
	fns map[string]any
}

// NewTable creates an empty symbol table
func NewTable() *Table {
	return &Table{fns: make(map[string]any)}
}

// Register adds fn under name. fn must be one of func(), func(string), func() int,
// func(string) int, func(int) or func(int) int.
func (t *Table) Register(name string, fn any) error {
	if name == "" {
		return errors.New("symbol name must not be empty")
	}
	if _, ok := SignatureOf(fn); !ok {
		return fmt.Errorf("%w: %s has type %T", ErrInvalidSignature, name, fn)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.fns[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateSymbol, name)
	}
	t.fns[name] = fn
	return nil
}

// MustRegister is like Register but panics on error (suitable for init()).
func (t *Table) MustRegister(name string, fn any) {
	if err := t.Register(name, fn); err != nil {
		panic(err)
	}
}

// Resolve returns the function registered under name.
func (t *Table) Resolve(name string) (any, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	fn, ok := t.fns[name]
	return fn, ok
}

// Names returns registered symbol names in sorted order.
func (t *Table) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	names := make([]string, 0, len(t.fns))
	for k := range t.fns {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Default is the process-wide symbol table.
var Default = NewTable()

// Register adds fn to the process-wide table.
func Register(name string, fn any) error {
	return Default.Register(name, fn)
}

type disabled struct{}

func (disabled) Resolve(string) (any, bool) { return nil, false }

// Disabled never resolves anything.
var Disabled Resolver = disabled{}

// SignatureOf describes fn's call shape, e.g. "func(string) int".
func SignatureOf(fn any) (string, bool) {
	switch f := fn.(type) {
	case func():
		return "func()", f != nil
	case func(string):
		return "func(string)", f != nil
	case func() int:
		return "func() int", f != nil
	case func(string) int:
		return "func(string) int", f != nil
	case func(int):
		return "func(int)", f != nil
	case func(int) int:
		return "func(int) int", f != nil
	}
	return "", false
}
