package commands

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/courtside/internal/core/logging"
	"github.com/colonyops/courtside/internal/sink"
	"github.com/colonyops/courtside/internal/toast"
	"github.com/colonyops/courtside/internal/tui"
	"github.com/colonyops/courtside/pkg/profiler"
)

type TuiCmd struct {
	flags *Flags

	profilerPort int
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "profiler-port",
			Usage:       "enable pprof and /debug/toast HTTP endpoints on specified port (e.g., 6060)",
			Sources:     cli.EnvVars("COURTSIDE_PROFILER_PORT"),
			Destination: &cmd.profilerPort,
		},
	}
}

// Register adds the tui command to the application
func (cmd *TuiCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "tui",
		Usage: "Open the interactive toast playground (default)",
		Description: `Hosts the notification engine in a full-screen terminal UI.

Keys: s/e/i emit a success, error or info sample, b emits a burst, x or esc
dismisses the visible notification, q quits.`,
		Action: cmd.run,
	})

	return app
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	ctx = logging.WithHost(ctx, "tui")

	programSink := tui.NewProgramSink()
	engine := toast.New(
		cmd.flags.Config.Toast.Engine(),
		sink.Tee{programSink, sink.NewLog(logging.Component("sink"))},
		toast.WithLogger(logging.Component("toast")),
	)
	defer engine.Shutdown()

	// Start profiler server if enabled
	if cmd.profilerPort > 0 {
		profServer := profiler.New(cmd.profilerPort, func() any { return engineStatus(engine) })
		if err := profServer.Start(ctx); err != nil {
			return fmt.Errorf("failed to start profiler: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := profServer.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("failed to shutdown profiler server")
			}
		}()
		log.Info().Ctx(ctx).
			Str("url", fmt.Sprintf("http://%s/debug/toast", profServer.Addr())).
			Msg("profiler endpoint available")
	}

	p := tea.NewProgram(tui.New(engine), tea.WithContext(ctx))
	programSink.Attach(p.Send)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	log.Debug().Ctx(ctx).Interface("stats", engine.Stats()).Msg("tui closed")
	return nil
}

// EngineStatus is the /debug/toast payload.
type EngineStatus struct {
	State     string      `json:"state"`
	Current   string      `json:"current,omitempty"`
	ExpiresAt *time.Time  `json:"expires_at,omitempty"`
	Pending   int         `json:"pending"`
	Stats     toast.Stats `json:"stats"`
}

func engineStatus(engine *toast.Engine) EngineStatus {
	status := EngineStatus{
		State:   engine.State().String(),
		Pending: engine.Pending(),
		Stats:   engine.Stats(),
	}
	if n, ok := engine.Current(); ok {
		status.Current = n.Title
	}
	if at := engine.ExpiresAt(); !at.IsZero() {
		status.ExpiresAt = &at
	}
	return status
}
