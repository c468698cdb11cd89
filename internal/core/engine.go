package core

// ExitFailure is the process exit status used for every fatal abort.
const ExitFailure = 1

// Engine runs ordered lists of hook specifications against a Registry.
// Execution is strictly sequential; there is no cancellation and no rollback.
type Engine struct {
	registry *Registry
	ctx      *HookContext
}

// NewEngine creates an engine resolving actions from r. A nil ctx selects the default
// context with a disabled logger.
func NewEngine(r *Registry, ctx *HookContext) *Engine {
	if ctx == nil {
		ctx = DefaultHookContext(nopLogger())
	}
	return &Engine{registry: r, ctx: ctx}
}

// Registry returns the registry the engine resolves actions from.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Run executes specs in order for the given phase label.
//
// A specification without a colon, or naming an unregistered action, terminates the
// process regardless of fatal. When fatal is set, the first handler returning a nonzero
// status terminates the process too; otherwise failures are left to the handler to report
// and the next specification runs.
func (e *Engine) Run(specs []string, phase string, fatal bool) {
	log := e.ctx.Logger
	for _, raw := range specs {
		spec, err := ParseSpec(raw)
		if err != nil {
			log.Error().Str("phase", phase).Msg(ErrMalformedSpec.Error())
			e.abort()
			return
		}

		h, ok := e.registry.Lookup(spec.Action)
		if !ok {
			log.Error().Str("phase", phase).Msgf("%s: %s", ErrUnknownAction, spec.Action)
			e.abort()
			return
		}

		if spec.Private {
			log.Info().Str("phase", phase).Msgf("running --- PRIVATE HOOK --- (%s)...", phase)
		} else {
			log.Info().Str("phase", phase).Msgf("running \"%s\" (%s)...", spec.Raw, phase)
		}

		status := h.Run(spec.Argument)
		if fatal && status != 0 {
			ev := log.Error().Str("phase", phase).Int("status", status)
			if !spec.Private {
				ev = ev.Str("hook", spec.Raw)
			}
			ev.Msg("fatal hook failed, aborting")
			e.abort()
			return
		}
	}
}

func (e *Engine) abort() {
	e.ctx.Exit(ExitFailure)
}
