package tui

import (
	"sync"

	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/courtside/internal/core/notify"
)

// ProgramSink turns engine commands into Bubble Tea messages. The engine
// calls it from timer goroutines, so it must never be driven from inside
// Update: emit and dismiss go through tea.Cmds instead.
type ProgramSink struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

// NewProgramSink creates a sink with no program attached. Commands are
// dropped until Attach is called.
func NewProgramSink() *ProgramSink {
	return &ProgramSink{}
}

// Attach sets the function used to deliver messages, normally
// (*tea.Program).Send.
func (s *ProgramSink) Attach(send func(tea.Msg)) {
	s.mu.Lock()
	s.send = send
	s.mu.Unlock()
}

func (s *ProgramSink) Render(n notify.Notification) {
	s.deliver(renderMsg{notification: n})
}

func (s *ProgramSink) Exit(n notify.Notification) {
	s.deliver(exitMsg{notification: n})
}

func (s *ProgramSink) Clear() {
	s.deliver(clearMsg{})
}

func (s *ProgramSink) deliver(msg tea.Msg) {
	s.mu.Lock()
	send := s.send
	s.mu.Unlock()

	if send != nil {
		send(msg)
	}
}
