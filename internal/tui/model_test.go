package tui

import (
	"sync"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/courtside/internal/core/notify"
	"github.com/colonyops/courtside/pkg/tuitest"
)

type emitCall struct {
	severity notify.Severity
	title    string
}

type fakeEngine struct {
	mu        sync.Mutex
	emits     []emitCall
	dismissed []string
	pending   int
}

func (f *fakeEngine) Emit(severity notify.Severity, title, _ string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.emits = append(f.emits, emitCall{severity: severity, title: title})
}

func (f *fakeEngine) Dismiss(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dismissed = append(f.dismissed, id)
}

func (f *fakeEngine) Pending() int {
	return f.pending
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModel_render_exit_clear(t *testing.T) {
	m := New(&fakeEngine{})
	n := notify.Notification{ID: "a", Severity: notify.SeveritySuccess, Title: "Account created"}

	m, _ = update(t, m, renderMsg{notification: n})
	cur, ok := m.Toast().Current()
	require.True(t, ok)
	assert.Equal(t, "a", cur.ID)
	assert.False(t, m.Toast().Exiting())

	m, _ = update(t, m, exitMsg{notification: notify.Notification{ID: "other"}})
	assert.False(t, m.Toast().Exiting(), "exit for another id is ignored")

	m, _ = update(t, m, exitMsg{notification: n})
	assert.True(t, m.Toast().Exiting())

	m, _ = update(t, m, clearMsg{})
	_, ok = m.Toast().Current()
	assert.False(t, ok)
}

func TestModel_emit_keys(t *testing.T) {
	eng := &fakeEngine{}
	m := New(eng)

	for _, key := range []rune{'s', 'e', 'i'} {
		var cmd tea.Cmd
		m, cmd = update(t, m, tuitest.KeyPress(key))
		require.NotNil(t, cmd)
		assert.Nil(t, cmd())
	}

	require.Len(t, eng.emits, 3)
	assert.Equal(t, notify.SeveritySuccess, eng.emits[0].severity)
	assert.Equal(t, notify.SeverityError, eng.emits[1].severity)
	assert.Equal(t, notify.SeverityInfo, eng.emits[2].severity)
}

func TestModel_burst_emits_in_order(t *testing.T) {
	eng := &fakeEngine{}
	m := New(eng)

	_, cmd := update(t, m, tuitest.KeyPress('b'))
	require.NotNil(t, cmd)
	cmd()

	require.Len(t, eng.emits, len(burst))
	for i, s := range burst {
		assert.Equal(t, s.title, eng.emits[i].title)
	}
}

func TestModel_dismiss(t *testing.T) {
	eng := &fakeEngine{}
	m := New(eng)

	_, cmd := update(t, m, tuitest.KeyPress('x'))
	assert.Nil(t, cmd, "nothing to dismiss")

	m, _ = update(t, m, renderMsg{notification: notify.Notification{ID: "a", Title: "Code sent"}})
	_, cmd = update(t, m, tuitest.KeyEsc())
	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, []string{"a"}, eng.dismissed)

	m, _ = update(t, m, exitMsg{notification: notify.Notification{ID: "a"}})
	_, cmd = update(t, m, tuitest.KeyPress('x'))
	assert.Nil(t, cmd, "already exiting")
}

func TestModel_quit(t *testing.T) {
	m := New(&fakeEngine{})

	for _, msg := range []tea.Msg{tuitest.KeyPress('q'), tuitest.CtrlKey('c')} {
		_, cmd := update(t, m, msg)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestModel_View(t *testing.T) {
	m := New(&fakeEngine{pending: 2})
	m, _ = update(t, m, tuitest.WindowSize(80, 20))

	plain := tuitest.StripANSI(m.View().Content)
	assert.Contains(t, plain, "courtside notifications")
	assert.Contains(t, plain, "waiting: 2")
	assert.NotContains(t, plain, "Sign in failed")

	m, _ = update(t, m, renderMsg{notification: notify.Notification{
		ID:          "a",
		Severity:    notify.SeverityError,
		Title:       "Sign in failed",
		Description: "Invalid email or password.",
	}})

	plain = tuitest.StripANSI(m.View().Content)
	assert.Contains(t, plain, "Sign in failed")
	assert.Contains(t, plain, "Invalid email or password.")
	assert.True(t, m.View().AltScreen)
}
