package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook copies command and host from the event context into the log line.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == nil || ctx == context.Background() {
		return
	}

	if command := GetCommand(ctx); command != "" {
		e.Str("command", command)
	}

	if host := GetHost(ctx); host != "" {
		e.Str("host", host)
	}
}
