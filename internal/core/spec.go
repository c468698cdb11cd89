package core

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedSpec is returned for a hook specification without a colon.
	ErrMalformedSpec = errors.New("invalid hook syntax, must be hook:args")
	// ErrUnknownAction is returned when a specification names an unregistered action.
	ErrUnknownAction = errors.New("hook action not found")
)

// PrivatePrefix marks a hook whose invocation must not be logged in full.
const PrivatePrefix = "!"

// Spec is a parsed hook specification of the form [!]<action>:<argument>.
type Spec struct {
	// Raw is the specification exactly as configured, including any "!" prefix.
	Raw      string
	Action   string
	Argument string
	Private  bool
}

// ParseSpec splits raw at its first colon. The leading "!" is stripped from the action
// name and recorded in Private; Raw keeps it.
func ParseSpec(raw string) (Spec, error) {
	action, arg, ok := strings.Cut(raw, ":")
	if !ok {
		return Spec{}, fmt.Errorf("%w: %q", ErrMalformedSpec, raw)
	}
	spec := Spec{Raw: raw, Action: action, Argument: arg}
	if name, private := strings.CutPrefix(action, PrivatePrefix); private {
		spec.Action = name
		spec.Private = true
	}
	return spec, nil
}

// ValidateSpecs reports every malformed specification and every unknown action in specs
// without invoking anything.
func ValidateSpecs(r *Registry, specs []string) []error {
	var errs []error
	for i, raw := range specs {
		spec, err := ParseSpec(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("hook[%d]: %w", i, err))
			continue
		}
		if _, ok := r.Lookup(spec.Action); !ok {
			errs = append(errs, fmt.Errorf("hook[%d]: %w: %s", i, ErrUnknownAction, spec.Action))
		}
	}
	return errs
}
