// Package notify defines the notification value type and the presentation
// boundary the toast engine drives.
package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Severity represents the kind of a notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Valid reports whether s is one of the known severities.
func (s Severity) Valid() bool {
	switch s {
	case SeveritySuccess, SeverityError, SeverityInfo:
		return true
	}
	return false
}

func (s Severity) String() string {
	return string(s)
}

// ParseSeverity converts user input into a Severity.
func ParseSeverity(value string) (Severity, error) {
	s := Severity(strings.ToLower(strings.TrimSpace(value)))
	if !s.Valid() {
		return "", fmt.Errorf("unknown severity %q (want success, error or info)", value)
	}
	return s, nil
}

// Notification is a single user-facing message. It is handled by value and
// never modified after New returns it.
type Notification struct {
	ID          string
	Severity    Severity
	Title       string
	Description string
	CreatedAt   time.Time
}

// New builds a notification with a fresh ID.
func New(severity Severity, title, description string, now time.Time) Notification {
	return Notification{
		ID:          uuid.NewString(),
		Severity:    severity,
		Title:       title,
		Description: description,
		CreatedAt:   now,
	}
}

// HasDescription reports whether the optional description is set.
func (n Notification) HasDescription() bool {
	return n.Description != ""
}
