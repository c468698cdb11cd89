package core

import (
	"sync"
)

// Entry is a single registered action.
type Entry struct {
	Name    string
	Handler Handler
}

// Registry maps action names to handlers, preserving first-registration order.
// It is safe for concurrent use, so collaborators may register after startup.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewRegistry creates an empty action registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Register stores h under name. An existing entry with the same name has its handler
// replaced in place; a new name is appended.
func (r *Registry) Register(name string, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.put(name, h)
}

func (r *Registry) put(name string, h Handler) {
	for i := range r.entries {
		if r.entries[i].Name == name {
			r.entries[i].Handler = h
			return
		}
	}
	r.entries = append(r.entries, Entry{Name: name, Handler: h})
}

// RegisterFunc is a convenience wrapper around Register for plain functions.
func (r *Registry) RegisterFunc(name string, fn func(arg string) int) {
	r.Register(name, HandlerFunc(fn))
}

// RegisterBatch registers entries in slice order under a single lock.
func (r *Registry) RegisterBatch(entries []Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range entries {
		r.put(e.Name, e.Handler)
	}
}

// Lookup returns the handler registered under name.
func (r *Registry) Lookup(name string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.Name == name {
			return e.Handler, true
		}
	}
	return nil, false
}

// Names returns registered action names in registration order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name
	}
	return names
}

// Entries returns a snapshot copy of all entries in registration order.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of registered actions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
