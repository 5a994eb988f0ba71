// Package toasttest provides a manual clock and a recording sink for testing
// code built on the toast engine.
package toasttest

import (
	"sync"
	"time"

	"github.com/colonyops/courtside/internal/core/notify"
	"github.com/colonyops/courtside/internal/toast"
)

// Clock is a toast.Clock that only moves when Advance is called.
type Clock struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers []*timer
}

type timer struct {
	clock   *Clock
	when    time.Time
	seq     int
	fn      func()
	stopped bool
	fired   bool
}

// NewClock returns a clock starting at start.
func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) AfterFunc(d time.Duration, f func()) toast.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	t := &timer{clock: c, when: c.now.Add(d), seq: c.seq, fn: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward by d, running every timer that comes due
// in deadline order. Timers scheduled by those callbacks run too if they fall
// inside the window.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)

	for {
		next := c.nextDueLocked(target)
		if next == nil {
			break
		}
		next.fired = true
		c.now = next.when

		c.mu.Unlock()
		next.fn()
		c.mu.Lock()
	}

	c.now = target
	c.compactLocked()
	c.mu.Unlock()
}

// Armed returns the number of timers that have neither fired nor been stopped.
func (c *Clock) Armed() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, t := range c.timers {
		if !t.fired && !t.stopped {
			n++
		}
	}
	return n
}

func (c *Clock) nextDueLocked(target time.Time) *timer {
	var next *timer
	for _, t := range c.timers {
		if t.fired || t.stopped || t.when.After(target) {
			continue
		}
		if next == nil || t.when.Before(next.when) || (t.when.Equal(next.when) && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

func (c *Clock) compactLocked() {
	live := c.timers[:0]
	for _, t := range c.timers {
		if !t.fired && !t.stopped {
			live = append(live, t)
		}
	}
	c.timers = live
}

func (t *timer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// EventKind names a sink command.
type EventKind string

const (
	EventRender EventKind = "render"
	EventExit   EventKind = "exit"
	EventClear  EventKind = "clear"
)

// Event is one recorded sink command.
type Event struct {
	Kind         EventKind
	Notification notify.Notification // zero for clear
}

// Recorder is a notify.Sink and notify.Exiter that records every command.
type Recorder struct {
	mu     sync.Mutex
	events []Event

	// OnRender, when set, runs after a render is recorded.
	OnRender func(n notify.Notification)
}

func (r *Recorder) Render(n notify.Notification) {
	r.record(Event{Kind: EventRender, Notification: n})
	if r.OnRender != nil {
		r.OnRender(n)
	}
}

func (r *Recorder) Exit(n notify.Notification) {
	r.record(Event{Kind: EventExit, Notification: n})
}

func (r *Recorder) Clear() {
	r.record(Event{Kind: EventClear})
}

// Events returns a copy of all recorded commands.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Kinds returns the recorded command kinds in order.
func (r *Recorder) Kinds() []EventKind {
	events := r.Events()
	out := make([]EventKind, len(events))
	for i, ev := range events {
		out[i] = ev.Kind
	}
	return out
}

// Rendered returns every rendered notification in order.
func (r *Recorder) Rendered() []notify.Notification {
	var out []notify.Notification
	for _, ev := range r.Events() {
		if ev.Kind == EventRender {
			out = append(out, ev.Notification)
		}
	}
	return out
}

// RenderedTitles returns the titles of every rendered notification in order.
func (r *Recorder) RenderedTitles() []string {
	var out []string
	for _, n := range r.Rendered() {
		out = append(out, n.Title)
	}
	return out
}

func (r *Recorder) record(ev Event) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
}
