package symbols

import (
	"github.com/klauern/hookrun/internal/core"
	"github.com/rs/zerolog"
)

// Invoker resolves symbols and calls them with the shape selected by the action.
// The argument of every action is "<symbol>[ <arg>]"; without an argument the
// zero-argument form of the shape is required.
type Invoker struct {
	Resolver Resolver
	Logger   zerolog.Logger
}

// NewInvoker creates an Invoker. A nil resolver disables symbol resolution.
func NewInvoker(r Resolver, logger zerolog.Logger) *Invoker {
	if r == nil {
		r = Disabled
	}
	return &Invoker{Resolver: r, Logger: logger}
}

func (i *Invoker) resolve(name string) any {
	fn, ok := i.Resolver.Resolve(name)
	if !ok {
		return nil
	}
	return fn
}

func (i *Invoker) unable(name string, args ...any) int {
	ev := i.Logger.Error().Str("symbol", name)
	if len(args) == 0 {
		ev.Msgf("unable to call function \"%s\"", name)
	} else {
		ev.Msgf("unable to call function \"%s(%v)\"", name, args[0])
	}
	return -1
}

// Call invokes func(string) or, without an argument, func(). The int-returning
// forms are accepted too and their result is dropped. Status is 0 once resolved.
func (i *Invoker) Call(arg string) int {
	name, rest, hasArg := core.SplitArg(arg)
	if hasArg {
		switch fn := i.resolve(name).(type) {
		case func(string):
			fn(rest)
		case func(string) int:
			fn(rest)
		default:
			return i.unable(name, rest)
		}
		return 0
	}
	return i.callNoArg(name)
}

// callNoArg runs func() or func() int, ignoring the result
func (i *Invoker) callNoArg(name string) int {
	switch fn := i.resolve(name).(type) {
	case func():
		fn()
	case func() int:
		fn()
	default:
		return i.unable(name)
	}
	return 0
}

// CallRet invokes func(string) int or func() int and returns its result.
func (i *Invoker) CallRet(arg string) int {
	name, rest, hasArg := core.SplitArg(arg)
	if hasArg {
		fn, ok := i.resolve(name).(func(string) int)
		if !ok {
			return i.unable(name, rest)
		}
		return fn(rest)
	}
	fn, ok := i.resolve(name).(func() int)
	if !ok {
		return i.unable(name)
	}
	return fn()
}

// CallInt invokes func(int) or func(), or their int-returning forms with the
// result dropped. The argument is parsed like atoi, so non-numeric input becomes 0.
// Status is 0 once resolved.
func (i *Invoker) CallInt(arg string) int {
	name, rest, hasArg := core.SplitArg(arg)
	if !hasArg {
		return i.callNoArg(name)
	}
	num := core.Atoi(rest)
	switch fn := i.resolve(name).(type) {
	case func(int):
		fn(num)
	case func(int) int:
		fn(num)
	default:
		return i.unable(name, num)
	}
	return 0
}

// CallIntRet invokes func(int) int or func() int and returns its result.
func (i *Invoker) CallIntRet(arg string) int {
	name, rest, hasArg := core.SplitArg(arg)
	if hasArg {
		num := core.Atoi(rest)
		fn, ok := i.resolve(name).(func(int) int)
		if !ok {
			return i.unable(name, num)
		}
		return fn(num)
	}
	fn, ok := i.resolve(name).(func() int)
	if !ok {
		return i.unable(name)
	}
	return fn()
}
