package sink

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/courtside/internal/core/notify"
	"github.com/colonyops/courtside/internal/toast/toasttest"
)

var fixedNow = func() time.Time { return time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC) }

func TestConsole_plain_output(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, Plain(), WithNow(fixedNow))

	n := notify.Notification{ID: "1", Severity: notify.SeverityError, Title: "Failed", Description: "try again"}
	c.Render(n)

	shown, ok := c.Shown()
	require.True(t, ok)
	assert.Equal(t, "1", shown.ID)

	c.Exit(n)
	c.Clear()

	_, ok = c.Shown()
	assert.False(t, ok)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "09:30:00 ✗ error Failed - try again", lines[0])
	assert.Equal(t, "  × Failed", lines[1])
}

func TestConsole_without_description(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, Plain(), WithNow(fixedNow))

	c.Render(notify.Notification{ID: "1", Severity: notify.SeveritySuccess, Title: "Saved"})

	assert.Equal(t, "09:30:00 ✓ success Saved\n", buf.String())
}

func TestLog_Render(t *testing.T) {
	var buf bytes.Buffer
	s := NewLog(zerolog.New(&buf))

	s.Render(notify.Notification{ID: "abc", Severity: notify.SeverityInfo, Title: "Code sent"})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "render", entry["message"])
	assert.Equal(t, "abc", entry["id"])
	assert.Equal(t, "info", entry["severity"])
}

func TestTee(t *testing.T) {
	a := &toasttest.Recorder{}
	var plain []string
	b := notify.SinkFunc(func(n notify.Notification) { plain = append(plain, n.Title) })

	tee := Tee{a, b}
	n := notify.Notification{Title: "Saved"}
	tee.Render(n)
	tee.Exit(n)
	tee.Clear()

	assert.Equal(t, []toasttest.EventKind{toasttest.EventRender, toasttest.EventExit, toasttest.EventClear}, a.Kinds())
	assert.Equal(t, []string{"Saved"}, plain)
}
