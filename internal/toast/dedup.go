package toast

import (
	"strconv"
	"time"
)

// Fingerprint returns the dedup key for a title and optional description.
// The title is length-prefixed so no choice of bytes in either field can make
// two different pairs share a key.
func Fingerprint(title, description string) string {
	return strconv.Itoa(len(title)) + ":" + title + description
}

// Deduplicator rejects identical notifications emitted within a window.
// It is not safe for concurrent use; the engine guards it.
type Deduplicator struct {
	window    time.Duration
	now       func() time.Time
	last      map[string]time.Time
	lastPrune time.Time
}

// NewDeduplicator creates a deduplicator. A window <= 0 admits everything.
func NewDeduplicator(window time.Duration, now func() time.Time) *Deduplicator {
	if now == nil {
		now = time.Now
	}
	return &Deduplicator{
		window: window,
		now:    now,
		last:   make(map[string]time.Time),
	}
}

// ShouldAdmit reports whether a notification with this content may be shown.
// Admission records the current time for the fingerprint.
func (d *Deduplicator) ShouldAdmit(title, description string) bool {
	if d.window <= 0 {
		return true
	}

	now := d.now()
	d.prune(now)

	key := Fingerprint(title, description)
	if last, ok := d.last[key]; ok && now.Sub(last) < d.window {
		return false
	}

	d.last[key] = now
	return true
}

// Len returns the number of fingerprints currently tracked.
func (d *Deduplicator) Len() int {
	return len(d.last)
}

// prune drops expired fingerprints, at most once per window.
func (d *Deduplicator) prune(now time.Time) {
	if !d.lastPrune.IsZero() && now.Sub(d.lastPrune) < d.window {
		return
	}
	d.lastPrune = now

	for key, last := range d.last {
		if now.Sub(last) >= d.window {
			delete(d.last, key)
		}
	}
}
