package tui

import "github.com/colonyops/courtside/internal/core/notify"

// renderMsg carries an engine Render command into the update loop.
type renderMsg struct {
	notification notify.Notification
}

// exitMsg carries an engine Exit command into the update loop.
type exitMsg struct {
	notification notify.Notification
}

// clearMsg carries an engine Clear command into the update loop.
type clearMsg struct{}
