// Package toast implements the notification delivery engine: a single-slot
// display scheduler fed by a FIFO queue behind a fingerprint deduplicator.
//
// Callers emit through Success, Error and Info. The engine decides what is
// visible and drives a notify.Sink with Render, Exit and Clear commands.
package toast

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/courtside/internal/core/logging"
	"github.com/colonyops/courtside/internal/core/notify"
)

const (
	DefaultDisplayDuration = 4 * time.Second
	DefaultExitDuration    = 300 * time.Millisecond
	DefaultDedupWindow     = 3 * time.Second
)

// Config holds the engine timing constants.
type Config struct {
	DisplayDuration time.Duration // how long a notification stays up
	ExitDuration    time.Duration // exit animation length; 0 clears immediately
	DedupWindow     time.Duration // identical content is dropped within this window; 0 disables
}

// DefaultConfig returns the timing used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		DisplayDuration: DefaultDisplayDuration,
		ExitDuration:    DefaultExitDuration,
		DedupWindow:     DefaultDedupWindow,
	}
}

// Stats counts engine activity since construction.
type Stats struct {
	Emitted    uint64 `json:"emitted"`    // admitted into the queue
	Suppressed uint64 `json:"suppressed"` // dropped as duplicates
	Displayed  uint64 `json:"displayed"`
	Expired    uint64 `json:"expired"`
	Dismissed  uint64 `json:"dismissed"`
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithLogger sets the engine logger.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// Engine serializes notifications onto a single display slot. It is safe for
// concurrent use; every operation runs under one mutex and sink commands are
// delivered in order, one at a time, outside that mutex.
type Engine struct {
	cfg   Config
	sink  notify.Sink
	clock Clock
	log   zerolog.Logger

	mu        sync.Mutex
	dedup     *Deduplicator
	queue     Queue
	state     State
	current   notify.Notification
	expiresAt time.Time
	gen       uint64
	timer     Timer
	closed    bool
	stats     Stats
	waiters   []chan struct{}

	outbox      []func()
	dispatching bool
}

// New constructs an idle engine that renders into sink.
func New(cfg Config, sink notify.Sink, opts ...Option) *Engine {
	if cfg.DisplayDuration <= 0 {
		cfg.DisplayDuration = DefaultDisplayDuration
	}
	if cfg.ExitDuration < 0 {
		cfg.ExitDuration = 0
	}

	if sink == nil {
		sink = notify.SinkFunc(func(notify.Notification) {})
	}

	e := &Engine{
		cfg:   cfg,
		sink:  sink,
		clock: RealClock{},
		log:   logging.Component("toast"),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.dedup = NewDeduplicator(cfg.DedupWindow, e.clock.Now)

	return e
}

// Config returns the effective timing configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Success emits a success notification.
func (e *Engine) Success(title string, description ...string) {
	e.Emit(notify.SeveritySuccess, title, optional(description))
}

// Error emits an error notification.
func (e *Engine) Error(title string, description ...string) {
	e.Emit(notify.SeverityError, title, optional(description))
}

// Info emits an info notification.
func (e *Engine) Info(title string, description ...string) {
	e.Emit(notify.SeverityInfo, title, optional(description))
}

// Emit requests a notification. Duplicates within the dedup window, unknown
// severities and emits after Shutdown are dropped without any signal to the
// caller.
func (e *Engine) Emit(severity notify.Severity, title, description string) {
	e.mu.Lock()
	switch {
	case e.closed:
		e.log.Debug().Str("title", title).Msg("engine shut down, dropping notification")
	case title == "":
		e.log.Debug().Str("severity", severity.String()).Msg("dropping notification without title")
	case !severity.Valid():
		e.log.Debug().Str("severity", severity.String()).Str("title", title).Msg("dropping notification with unknown severity")
	case !e.dedup.ShouldAdmit(title, description):
		e.stats.Suppressed++
		e.log.Debug().Str("title", title).Msg("suppressed duplicate notification")
	default:
		n := notify.New(severity, title, description, e.clock.Now())
		e.queue.Enqueue(n)
		e.stats.Emitted++
		e.log.Debug().
			Str("id", n.ID).
			Str("severity", severity.String()).
			Int("pending", e.queue.Len()).
			Msg("notification queued")
		e.tryAdvanceLocked()
	}
	e.mu.Unlock()

	e.flush()
}

// Drain blocks until the queue is empty and nothing is displayed, or ctx is
// done. A shut down engine is always drained. Drain must not be called from
// inside a Sink method.
func (e *Engine) Drain(ctx context.Context) error {
	ch := make(chan struct{})

	e.mu.Lock()
	e.waiters = append(e.waiters, ch)
	if e.drainedLocked() {
		e.releaseWaitersLocked()
	}
	e.mu.Unlock()

	e.flush()

	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown cancels the armed timer, drops the backlog and clears the sink.
// Later emits are ignored.
func (e *Engine) Shutdown() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true

	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	showing := e.state != StateIdle
	dropped := e.queue.Len()

	e.gen++
	e.state = StateIdle
	e.current = notify.Notification{}
	e.expiresAt = time.Time{}
	e.queue.Reset()

	if showing {
		e.post(e.sink.Clear)
	}
	e.releaseWaitersLocked()
	e.log.Debug().Int("dropped", dropped).Msg("engine shut down")
	e.mu.Unlock()

	e.flush()
}

// Stats returns a snapshot of the activity counters.
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stats
}

// Pending returns the number of notifications waiting for the slot.
func (e *Engine) Pending() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.queue.Len()
}

func (e *Engine) drainedLocked() bool {
	return e.closed || (e.state == StateIdle && e.queue.Len() == 0)
}

// releaseWaitersLocked wakes Drain callers after every sink command posted so
// far has been delivered.
func (e *Engine) releaseWaitersLocked() {
	if len(e.waiters) == 0 {
		return
	}
	waiters := e.waiters
	e.waiters = nil
	e.post(func() {
		for _, ch := range waiters {
			close(ch)
		}
	})
}

// post queues a sink command. Must hold e.mu.
func (e *Engine) post(cmd func()) {
	e.outbox = append(e.outbox, cmd)
}

// flush delivers posted sink commands in order. A call made while another
// goroutine (or a sink calling back into the engine) is already delivering
// returns immediately; the active deliverer picks up the new commands.
func (e *Engine) flush() {
	e.mu.Lock()
	if e.dispatching {
		e.mu.Unlock()
		return
	}
	e.dispatching = true

	for len(e.outbox) > 0 {
		cmd := e.outbox[0]
		e.outbox[0] = nil
		e.outbox = e.outbox[1:]

		e.mu.Unlock()
		cmd()
		e.mu.Lock()
	}
	e.outbox = nil
	e.dispatching = false
	e.mu.Unlock()
}

func optional(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
