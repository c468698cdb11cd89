package core

import (
	"io"

	"github.com/rs/zerolog"
)

// nopLogger discards everything; used when no logger is supplied.
func nopLogger() zerolog.Logger {
	return zerolog.New(io.Discard).Level(zerolog.Disabled)
}

// ErrorEvent starts an error-level event for a failed action, attaching the underlying
// error and the action name. Handlers finish it with Msg/Msgf.
func (c *HookContext) ErrorEvent(action string, err error) *zerolog.Event {
	ev := c.Logger.Error().Str("action", action)
	if err != nil {
		ev = ev.Err(err)
	}
	return ev
}
