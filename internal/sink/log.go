package sink

import (
	"github.com/rs/zerolog"

	"github.com/colonyops/courtside/internal/core/notify"
)

// Log records sink commands as log events. It backs hosts that have no
// screen, and can be stacked with another sink through Tee.
type Log struct {
	log zerolog.Logger
}

// NewLog creates a log sink.
func NewLog(l zerolog.Logger) *Log {
	return &Log{log: l}
}

func (s *Log) Render(n notify.Notification) {
	s.log.Info().
		Str("id", n.ID).
		Str("severity", n.Severity.String()).
		Str("title", n.Title).
		Str("description", n.Description).
		Msg("render")
}

func (s *Log) Exit(n notify.Notification) {
	s.log.Debug().Str("id", n.ID).Msg("exit")
}

func (s *Log) Clear() {
	s.log.Debug().Msg("clear")
}

// Tee fans every command out to each sink in order. Exit is only forwarded to
// sinks that implement notify.Exiter.
type Tee []notify.Sink

func (t Tee) Render(n notify.Notification) {
	for _, s := range t {
		s.Render(n)
	}
}

func (t Tee) Exit(n notify.Notification) {
	for _, s := range t {
		if exiter, ok := s.(notify.Exiter); ok {
			exiter.Exit(n)
		}
	}
}

func (t Tee) Clear() {
	for _, s := range t {
		s.Clear()
	}
}
