// Package core provides the hook action registry, the phase execution engine and the
// execution context shared by all action handlers.
package core

// Handler is a named hook action. Run receives the free-form argument string that follows
// the first colon of a hook specification and returns 0 on success, nonzero on failure.
type Handler interface {
	Run(arg string) int
}

// HandlerFunc adapts an ordinary function to the Handler interface.
type HandlerFunc func(arg string) int

// Run calls f(arg).
func (f HandlerFunc) Run(arg string) int {
	return f(arg)
}

// Describer is implemented by handlers that can document their argument convention.
type Describer interface {
	Usage() string
}

// describedHandler couples a handler with its argument usage string.
type describedHandler struct {
	HandlerFunc
	usage string
}

func (d describedHandler) Usage() string { return d.usage }

// Describe wraps fn as a Handler that reports usage through Describer.
func Describe(usage string, fn func(arg string) int) Handler {
	return describedHandler{HandlerFunc: fn, usage: usage}
}

// UsageOf returns the usage string of h, or "" if h does not document one.
func UsageOf(h Handler) string {
	if d, ok := h.(Describer); ok {
		return d.Usage()
	}
	return ""
}
