package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/courtside/internal/core/config"
	"github.com/colonyops/courtside/internal/core/notify"
	"github.com/colonyops/courtside/internal/core/styles"
	"github.com/colonyops/courtside/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config command with its validate subcommand to the application
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "courtside config validate [options]",
				Description: "Validates the configuration file, checking durations and the theme name.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

// ValidationError is a single field error in the validate report.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationReport is the result of validating a config file.
type ValidationReport struct {
	Path     string                     `json:"path"`
	Valid    bool                       `json:"valid"`
	Errors   []ValidationError          `json:"errors,omitempty"`
	Warnings []config.ValidationWarning `json:"warnings,omitempty"`
}

func (cmd *ConfigValidateCmd) run(_ context.Context, c *cli.Command) error {
	report := buildReport(cmd.flags.ConfigPath, cmd.flags.Config)

	switch cmd.format {
	case "json":
		if err := iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, report); err != nil {
			return err
		}
	case "text":
		cmd.outputText(c, report)
	default:
		return fmt.Errorf("unknown format %q (want text or json)", cmd.format)
	}

	if !report.Valid {
		return cli.Exit("", 1)
	}
	return nil
}

func buildReport(path string, cfg *config.Config) ValidationReport {
	report := ValidationReport{
		Path:     path,
		Warnings: cfg.Warnings(),
	}

	if err := cfg.Validate(); err != nil {
		var fieldErrs criterio.FieldErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				report.Errors = append(report.Errors, ValidationError{Field: fe.Field, Message: fe.Err.Error()})
			}
		} else {
			report.Errors = append(report.Errors, ValidationError{Message: err.Error()})
		}
	}

	report.Valid = len(report.Errors) == 0
	return report
}

func (cmd *ConfigValidateCmd) outputText(c *cli.Command, report ValidationReport) {
	w := c.Root().Writer

	for _, warn := range report.Warnings {
		_, _ = fmt.Fprintf(w, "%s %s: %s\n", consoleIcon(notify.SeverityInfo), warn.Field, warn.Message)
	}

	for _, e := range report.Errors {
		_, _ = fmt.Fprintf(w, "%s %s: %s\n", consoleIcon(notify.SeverityError), e.Field, e.Message)
	}

	if report.Valid {
		_, _ = fmt.Fprintf(w, "%s %s is valid\n", consoleIcon(notify.SeveritySuccess), report.Path)
		return
	}

	_, _ = fmt.Fprintf(w, "\n%d error(s) found\n", len(report.Errors))
}

func consoleIcon(s notify.Severity) string {
	return styles.ConsoleSeverityStyles[s].Render(styles.SeverityIcon(s))
}
