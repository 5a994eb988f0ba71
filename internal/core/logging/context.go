package logging

import "context"

type contextKey string

const (
	commandKey contextKey = "command"
	hostKey    contextKey = "host"
)

// WithCommand adds the running CLI command name to the context.
func WithCommand(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, commandKey, name)
}

// WithHost adds the presentation host (tui, console) to the context.
func WithHost(ctx context.Context, host string) context.Context {
	return context.WithValue(ctx, hostKey, host)
}

// GetCommand retrieves the command name from the context.
// Returns empty string if not present.
func GetCommand(ctx context.Context) string {
	if v, ok := ctx.Value(commandKey).(string); ok {
		return v
	}
	return ""
}

// GetHost retrieves the presentation host from the context.
// Returns empty string if not present.
func GetHost(ctx context.Context) string {
	if v, ok := ctx.Value(hostKey).(string); ok {
		return v
	}
	return ""
}
