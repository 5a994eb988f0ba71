package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/hay-kot/criterio"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/courtside/internal/core/logging"
	"github.com/colonyops/courtside/internal/core/notify"
	"github.com/colonyops/courtside/internal/core/validate"
	"github.com/colonyops/courtside/internal/toast"
	"github.com/colonyops/courtside/pkg/iojson"
)

type BatchCmd struct {
	flags *Flags
	fr    *iojson.FileReader[BatchInput]
	plain bool

	// out receives the JSON report, errOut the rendered notifications.
	out    io.Writer
	errOut io.Writer
}

func NewBatchCmd(flags *Flags) *BatchCmd {
	return &BatchCmd{
		flags: flags,
		fr:    iojson.NewFileReader[BatchInput](),
	}
}

func (cmd *BatchCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "batch",
		Usage: "Emit notifications from JSON input",
		UsageText: `courtside batch [options]

Read from stdin:
  echo '{"notifications":[{"title":"Code sent"}]}' | courtside batch

Read from file:
  courtside batch -f notifications.json`,
		Description: `Emits every notification in the input, in order, through one engine and
waits until the last one has been shown and cleared.

Notifications are printed to stderr as they are displayed. The report on
stdout lists whether each entry was queued or dropped as a duplicate.

Input JSON schema:
  {
    "notifications": [
      {
        "severity": "success | error | info (default info)",
        "title": "required",
        "description": "optional"
      }
    ]
  }`,
		Flags: []cli.Flag{
			cmd.fr.Flag(),
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

func (cmd *BatchCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithHost(ctx, "console")

	out, errOut := cmd.out, cmd.errOut
	if out == nil {
		out = c.Root().Writer
	}
	if errOut == nil {
		errOut = c.Root().ErrWriter
	}

	input, err := cmd.fr.Read()
	if err != nil {
		log.Error().Ctx(ctx).Err(err).Msg("failed to read input")
		return iojson.WriteErrorTo(errOut, fmt.Sprintf("read input: %s", err), nil)
	}

	if err := input.Validate(); err != nil {
		log.Error().Ctx(ctx).Err(err).Msg("input validation failed")
		return iojson.WriteErrorTo(errOut, fmt.Sprintf("invalid input: %s", err), nil)
	}

	engine := toast.New(cmd.flags.Config.Toast.Engine(), newConsoleSink(errOut, cmd.plain))
	defer engine.Shutdown()

	output := emitBatch(engine, input)

	if err := engine.Drain(ctx); err != nil {
		return fmt.Errorf("wait for batch: %w", err)
	}
	output.Stats = engine.Stats()

	log.Info().Ctx(ctx).
		Int("total", len(input.Notifications)).
		Int("queued", countByStatus(output.Results, StatusQueued)).
		Int("suppressed", countByStatus(output.Results, StatusSuppressed)).
		Msg("batch complete")

	return iojson.WriteWith(out, errOut, output)
}

// emitBatch emits each entry and classifies it by watching the engine's
// suppression counter. It must be the engine's only emitter.
func emitBatch(engine *toast.Engine, input BatchInput) BatchOutput {
	output := BatchOutput{Results: make([]BatchResult, 0, len(input.Notifications))}

	for i, n := range input.Notifications {
		before := engine.Stats().Suppressed
		engine.Emit(n.severity(), n.Title, n.Description)

		status := StatusQueued
		if engine.Stats().Suppressed > before {
			status = StatusSuppressed
		}
		output.Results = append(output.Results, BatchResult{Index: i, Title: n.Title, Status: status})
	}

	return output
}

const (
	StatusQueued     = "queued"     // StatusQueued indicates the notification was accepted.
	StatusSuppressed = "suppressed" // StatusSuppressed indicates it was dropped as a duplicate.
)

// BatchInput is the JSON input schema for batch emission.
type BatchInput struct {
	Notifications []BatchNotification `json:"notifications"`
}

// BatchNotification is a single entry of BatchInput.
type BatchNotification struct {
	Severity    string `json:"severity,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

func (n BatchNotification) severity() notify.Severity {
	if n.Severity == "" {
		return notify.SeverityInfo
	}
	s, _ := notify.ParseSeverity(n.Severity)
	return s
}

// Validate checks the batch input for errors using criterio.
func (b BatchInput) Validate() error {
	if len(b.Notifications) == 0 {
		return criterio.NewFieldErrors("notifications", fmt.Errorf("array is empty"))
	}

	var errs criterio.FieldErrorsBuilder
	for i, n := range b.Notifications {
		field := fmt.Sprintf("notifications[%d]", i)

		if err := validate.Title(n.Title); err != nil {
			errs = errs.Append(field+".title", err)
		}
		if err := validate.Severity(n.Severity); err != nil {
			errs = errs.Append(field+".severity", err)
		}
	}

	return errs.ToError()
}

// BatchOutput is the JSON report written to stdout.
type BatchOutput struct {
	Results []BatchResult `json:"results"`
	Stats   toast.Stats   `json:"stats"`
}

// BatchResult reports what happened to one input entry.
type BatchResult struct {
	Index  int    `json:"index"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

func countByStatus(results []BatchResult, status string) int {
	count := 0
	for _, r := range results {
		if r.Status == status {
			count++
		}
	}
	return count
}
