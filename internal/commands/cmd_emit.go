package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/courtside/internal/core/logging"
	"github.com/colonyops/courtside/internal/core/notify"
	"github.com/colonyops/courtside/internal/sink"
	"github.com/colonyops/courtside/internal/toast"
)

type EmitCmd struct {
	flags *Flags

	// flags
	severity    string
	title       string
	description string
	plain       bool
}

// NewEmitCmd creates a new emit command
func NewEmitCmd(flags *Flags) *EmitCmd {
	return &EmitCmd{flags: flags}
}

// Register adds the emit command to the application
func (cmd *EmitCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "emit",
		Usage:     "Show a single notification on the console",
		UsageText: "courtside emit --title TITLE [--severity info] [--description TEXT]",
		Description: `Runs one notification through the engine and prints it, then waits for
its display and exit time to pass before returning.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "severity",
				Aliases:     []string{"s"},
				Usage:       "notification severity (success, error, info)",
				Value:       string(notify.SeverityInfo),
				Destination: &cmd.severity,
			},
			&cli.StringFlag{
				Name:        "title",
				Aliases:     []string{"t"},
				Usage:       "notification title",
				Required:    true,
				Destination: &cmd.title,
			},
			&cli.StringFlag{
				Name:        "description",
				Aliases:     []string{"d"},
				Usage:       "optional supporting text",
				Destination: &cmd.description,
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

func (cmd *EmitCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithHost(ctx, "console")

	severity, err := notify.ParseSeverity(cmd.severity)
	if err != nil {
		return err
	}

	engine := toast.New(cmd.flags.Config.Toast.Engine(), newConsoleSink(c.Root().Writer, cmd.plain))
	defer engine.Shutdown()

	engine.Emit(severity, cmd.title, cmd.description)

	cfg := engine.Config()
	waitCtx, cancel := context.WithTimeout(ctx, cfg.DisplayDuration+cfg.ExitDuration+time.Second)
	defer cancel()

	if err := engine.Drain(waitCtx); err != nil {
		return fmt.Errorf("wait for notification: %w", err)
	}

	log.Debug().Ctx(ctx).Interface("stats", engine.Stats()).Msg("emit finished")
	return nil
}

// newConsoleSink prints to w and mirrors every command into the log.
func newConsoleSink(w io.Writer, plain bool) notify.Sink {
	var opts []sink.ConsoleOption
	if plain {
		opts = append(opts, sink.Plain())
	}
	return sink.Tee{
		sink.NewConsole(w, opts...),
		sink.NewLog(logging.Component("sink")),
	}
}
