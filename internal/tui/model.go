// Package tui implements the interactive terminal host for the toast engine.
package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/courtside/internal/core/notify"
	"github.com/colonyops/courtside/internal/core/styles"
)

// Engine is the part of the toast engine the terminal host drives.
type Engine interface {
	Emit(severity notify.Severity, title, description string)
	Dismiss(id string)
	Pending() int
}

type sample struct {
	severity    notify.Severity
	title       string
	description string
}

var (
	sampleSuccess = sample{notify.SeveritySuccess, "Account created", "Check your inbox to verify your email."}
	sampleError   = sample{notify.SeverityError, "Sign in failed", "Invalid email or password."}
	sampleInfo    = sample{notify.SeverityInfo, "Code sent", "We sent a 6-digit code to your email."}
)

var burst = []sample{
	{notify.SeverityInfo, "Team invite sent", "Jordan will get an email shortly."},
	{notify.SeveritySuccess, "Profile saved", ""},
	{notify.SeverityError, "Upload failed", "Photos must be under 5 MB."},
}

// Model is the Bubble Tea model hosting the toast overlay.
type Model struct {
	engine Engine
	keys   keyMap
	toast  *ToastView
	width  int
	height int
}

// New creates a model driving engine. The engine's sink must be a
// ProgramSink attached to the program running this model.
func New(engine Engine) Model {
	return Model{
		engine: engine,
		keys:   defaultKeyMap(),
		toast:  NewToastView(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case renderMsg:
		m.toast.Show(msg.notification)
		return m, nil
	case exitMsg:
		m.toast.BeginExit(msg.notification)
		return m, nil
	case clearMsg:
		m.toast.Clear()
		return m, nil
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Dismiss):
		n, ok := m.toast.Current()
		if !ok || m.toast.Exiting() {
			return m, nil
		}
		return m, m.dismissCmd(n.ID)
	case key.Matches(msg, m.keys.Burst):
		return m, m.emitCmd(burst...)
	case key.Matches(msg, m.keys.Success):
		return m, m.emitCmd(sampleSuccess)
	case key.Matches(msg, m.keys.Error):
		return m, m.emitCmd(sampleError)
	case key.Matches(msg, m.keys.Info):
		return m, m.emitCmd(sampleInfo)
	}
	return m, nil
}

// emitCmd emits off the update loop; the engine may render synchronously and
// the sink's Send would block while Update is running.
func (m Model) emitCmd(batch ...sample) tea.Cmd {
	engine := m.engine
	return func() tea.Msg {
		for _, s := range batch {
			engine.Emit(s.severity, s.title, s.description)
		}
		return nil
	}
}

func (m Model) dismissCmd(id string) tea.Cmd {
	engine := m.engine
	return func() tea.Msg {
		engine.Dismiss(id)
		return nil
	}
}

// Toast exposes the overlay state, mainly for tests.
func (m Model) Toast() *ToastView {
	return m.toast
}

func (m Model) View() tea.View {
	content := m.toast.Overlay(m.background(), m.width, m.height)

	v := tea.NewView(content)
	v.AltScreen = true
	return v
}

func (m Model) background() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("courtside notifications"))
	b.WriteString("\n\n")

	for _, binding := range m.keys.HelpBindings() {
		h := binding.Help()
		b.WriteString(styles.HelpStyle.Render(fmt.Sprintf("%s  %s", h.Key, h.Desc)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render(fmt.Sprintf("waiting: %d", m.engine.Pending())))

	content := b.String()
	if m.height > 0 {
		if pad := m.height - strings.Count(content, "\n") - 1; pad > 0 {
			content += strings.Repeat("\n", pad)
		}
	}
	return content
}
