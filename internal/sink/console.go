// Package sink holds notify.Sink implementations for headless hosts.
package sink

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/colonyops/courtside/internal/core/notify"
	"github.com/colonyops/courtside/internal/core/styles"
)

// Console writes one line per sink command to w. Styling uses the active
// theme; pass Plain to get unstyled output.
type Console struct {
	mu    sync.Mutex
	w     io.Writer
	plain bool
	now   func() time.Time
	shown notify.Notification
}

// ConsoleOption configures a Console.
type ConsoleOption func(*Console)

// Plain disables ANSI styling.
func Plain() ConsoleOption {
	return func(c *Console) { c.plain = true }
}

// WithNow replaces the timestamp source.
func WithNow(now func() time.Time) ConsoleOption {
	return func(c *Console) { c.now = now }
}

// NewConsole creates a console sink writing to w.
func NewConsole(w io.Writer, opts ...ConsoleOption) *Console {
	c := &Console{w: w, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Console) Render(n notify.Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.shown = n
	c.writeLine(c.formatNotification(n))
}

func (c *Console) Exit(n notify.Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.writeLine(c.muted(fmt.Sprintf("  %s %s", styles.IconDismiss, n.Title)))
}

func (c *Console) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.shown = notify.Notification{}
}

// Shown returns the notification the console last rendered and has not yet
// cleared.
func (c *Console) Shown() (notify.Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.shown, c.shown.ID != ""
}

func (c *Console) formatNotification(n notify.Notification) string {
	var b strings.Builder

	b.WriteString(c.muted(c.now().Format(time.TimeOnly)))
	b.WriteString(" ")
	b.WriteString(c.severity(n.Severity, styles.SeverityIcon(n.Severity)+" "+n.Severity.String()))
	b.WriteString(" ")
	b.WriteString(n.Title)
	if n.HasDescription() {
		b.WriteString(c.muted(" - " + n.Description))
	}

	return b.String()
}

func (c *Console) severity(s notify.Severity, text string) string {
	if c.plain {
		return text
	}
	style, ok := styles.ConsoleSeverityStyles[s]
	if !ok {
		return text
	}
	return style.Render(text)
}

func (c *Console) muted(text string) string {
	if c.plain {
		return text
	}
	return styles.ConsoleMutedStyle.Render(text)
}

func (c *Console) writeLine(s string) {
	_, _ = fmt.Fprintln(c.w, s)
}
