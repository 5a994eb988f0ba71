package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"

	"github.com/colonyops/courtside/internal/core/logging"
	"github.com/colonyops/courtside/internal/core/notify"
	"github.com/colonyops/courtside/internal/toast"
)

// demoScript cycles through registration flow messages. Every third entry
// repeats the previous one so the dedup window is visible.
var demoScript = []struct {
	severity    notify.Severity
	title       string
	description string
}{
	{notify.SeverityInfo, "Code sent", "We sent a 6-digit code to your email."},
	{notify.SeverityError, "Invalid code", "Check the code and try again."},
	{notify.SeverityError, "Invalid code", "Check the code and try again."},
	{notify.SeveritySuccess, "Email verified", ""},
	{notify.SeveritySuccess, "Welcome to the league", "Finish your player profile to get matched."},
	{notify.SeveritySuccess, "Welcome to the league", "Finish your player profile to get matched."},
	{notify.SeverityInfo, "Password updated", ""},
}

type DemoCmd struct {
	flags *Flags

	// flags
	count int
	rate  float64
	plain bool
}

// NewDemoCmd creates a new demo command
func NewDemoCmd(flags *Flags) *DemoCmd {
	return &DemoCmd{flags: flags}
}

// Register adds the demo command to the application
func (cmd *DemoCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "demo",
		Usage:     "Flood the engine with a scripted sign-up flow",
		UsageText: "courtside demo [--count 7] [--rate 4]",
		Description: `Emits a scripted sequence of notifications at a fixed rate and prints them
as the engine displays them. Notifications queue while one is visible and
repeats inside the dedup window are dropped.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "count",
				Aliases:     []string{"n"},
				Usage:       "number of notifications to emit",
				Value:       len(demoScript),
				Destination: &cmd.count,
			},
			&cli.FloatFlag{
				Name:        "rate",
				Usage:       "emits per second",
				Value:       4,
				Destination: &cmd.rate,
			},
			&cli.BoolFlag{
				Name:        "plain",
				Usage:       "disable colors",
				Destination: &cmd.plain,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *DemoCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithHost(ctx, "console")

	if cmd.rate <= 0 {
		return fmt.Errorf("rate must be greater than zero")
	}

	engine := toast.New(cmd.flags.Config.Toast.Engine(), newConsoleSink(c.Root().Writer, cmd.plain))
	defer engine.Shutdown()

	if err := runDemo(ctx, engine, cmd.count, rate.NewLimiter(rate.Limit(cmd.rate), 1)); err != nil {
		return err
	}

	if err := engine.Drain(ctx); err != nil {
		return fmt.Errorf("wait for backlog: %w", err)
	}

	stats := engine.Stats()
	log.Info().Ctx(ctx).
		Uint64("shown", stats.Displayed).
		Uint64("suppressed", stats.Suppressed).
		Msg("demo finished")
	return nil
}

// emitter is the slice of the engine the demo drives.
type emitter interface {
	Emit(severity notify.Severity, title, description string)
}

func runDemo(ctx context.Context, e emitter, count int, limiter *rate.Limiter) error {
	for i := range count {
		if err := limiter.Wait(ctx); err != nil {
			return fmt.Errorf("demo interrupted: %w", err)
		}
		step := demoScript[i%len(demoScript)]
		e.Emit(step.severity, step.title, step.description)
	}
	return nil
}

var _ emitter = (*toast.Engine)(nil)
