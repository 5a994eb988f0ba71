package toast

import (
	"time"

	"github.com/colonyops/courtside/internal/core/notify"
)

// State is the display slot state.
type State int

const (
	// StateIdle means nothing is shown.
	StateIdle State = iota
	// StateDisplaying means the current notification is shown and its
	// expiry timer is armed.
	StateDisplaying
	// StateExiting means the current notification is animating out. The slot
	// stays occupied until the exit timer fires.
	StateExiting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDisplaying:
		return "displaying"
	case StateExiting:
		return "exiting"
	default:
		return "unknown"
	}
}

// State returns the current slot state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Current returns the notification occupying the slot, if any.
func (e *Engine) Current() (notify.Notification, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == StateIdle {
		return notify.Notification{}, false
	}
	return e.current, true
}

// ExpiresAt returns when the current notification's display time ends. It is
// zero unless a notification is displaying.
func (e *Engine) ExpiresAt() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateDisplaying {
		return time.Time{}
	}
	return e.expiresAt
}

// Dismiss ends the display of the notification with the given id. Requests
// for anything other than the displayed notification are ignored, so repeated
// or late dismisses are harmless.
func (e *Engine) Dismiss(id string) {
	e.mu.Lock()
	if e.state != StateDisplaying || e.current.ID != id {
		e.log.Debug().
			Str("id", id).
			Str("state", e.state.String()).
			Msg("ignoring stale dismiss")
		e.mu.Unlock()
		return
	}

	if e.timer != nil {
		e.timer.Stop()
	}
	e.stats.Dismissed++
	e.log.Debug().Str("id", id).Msg("notification dismissed")
	e.beginExitLocked()
	e.mu.Unlock()

	e.flush()
}

// DismissCurrent dismisses whatever is displayed.
func (e *Engine) DismissCurrent() {
	e.mu.Lock()
	id := e.current.ID
	displaying := e.state == StateDisplaying
	e.mu.Unlock()

	if displaying {
		e.Dismiss(id)
	}
}

// tryAdvanceLocked fills an idle slot from the queue.
func (e *Engine) tryAdvanceLocked() {
	if e.state != StateIdle || e.closed {
		return
	}

	n, ok := e.queue.Dequeue()
	if !ok {
		e.releaseWaitersLocked()
		return
	}

	e.gen++
	gen := e.gen
	e.state = StateDisplaying
	e.current = n
	e.expiresAt = e.clock.Now().Add(e.cfg.DisplayDuration)
	e.stats.Displayed++
	e.timer = e.clock.AfterFunc(e.cfg.DisplayDuration, func() {
		e.onTimerExpire(gen)
	})

	e.log.Debug().
		Str("id", n.ID).
		Uint64("gen", gen).
		Time("expires_at", e.expiresAt).
		Msg("displaying notification")
	e.post(func() { e.sink.Render(n) })
}

func (e *Engine) onTimerExpire(gen uint64) {
	e.mu.Lock()
	if e.state != StateDisplaying || gen != e.gen {
		e.log.Debug().Uint64("gen", gen).Msg("ignoring stale display timer")
		e.mu.Unlock()
		return
	}

	e.stats.Expired++
	e.beginExitLocked()
	e.mu.Unlock()

	e.flush()
}

// beginExitLocked moves the slot into the exit animation and arms the timer
// that frees it.
func (e *Engine) beginExitLocked() {
	n := e.current
	gen := e.gen

	e.state = StateExiting
	e.expiresAt = time.Time{}
	if exiter, ok := e.sink.(notify.Exiter); ok {
		e.post(func() { exiter.Exit(n) })
	}
	e.timer = e.clock.AfterFunc(e.cfg.ExitDuration, func() {
		e.onExited(gen)
	})
}

func (e *Engine) onExited(gen uint64) {
	e.mu.Lock()
	if e.state != StateExiting || gen != e.gen {
		e.log.Debug().Uint64("gen", gen).Msg("ignoring stale exit timer")
		e.mu.Unlock()
		return
	}

	e.state = StateIdle
	e.current = notify.Notification{}
	e.timer = nil
	e.post(e.sink.Clear)
	e.tryAdvanceLocked()
	e.mu.Unlock()

	e.flush()
}
