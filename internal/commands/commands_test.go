package commands

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"

	"github.com/colonyops/courtside/internal/core/config"
	"github.com/colonyops/courtside/internal/core/notify"
)

// fastFlags returns flags with timings short enough for real-clock tests.
func fastFlags() *Flags {
	cfg := config.DefaultConfig()
	cfg.Toast.DisplayDuration = 20 * time.Millisecond
	cfg.Toast.ExitDuration = 5 * time.Millisecond
	cfg.Toast.DedupWindow = time.Minute
	return &Flags{ConfigPath: "config.yaml", Config: &cfg}
}

func newTestApp(out, errOut *bytes.Buffer) *cli.Command {
	return &cli.Command{
		Name:      "courtside",
		Writer:    out,
		ErrWriter: errOut,
		// keep cli.Exit from calling os.Exit
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
}

func runApp(t *testing.T, app *cli.Command, args ...string) error {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return app.Run(ctx, append([]string{"courtside"}, args...))
}

func TestEmitCmd(t *testing.T) {
	var out, errOut bytes.Buffer
	app := NewEmitCmd(fastFlags()).Register(newTestApp(&out, &errOut))

	err := runApp(t, app, "emit", "--plain", "--severity", "error", "--title", "Sign in failed", "--description", "Invalid email or password.")
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "error Sign in failed - Invalid email or password.")
	assert.Contains(t, got, "× Sign in failed")
}

func TestEmitCmd_bad_severity(t *testing.T) {
	var out, errOut bytes.Buffer
	app := NewEmitCmd(fastFlags()).Register(newTestApp(&out, &errOut))

	err := runApp(t, app, "emit", "--severity", "warning", "--title", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown severity")
	assert.Empty(t, out.String())
}

type recordingEmitter struct {
	titles []string
}

func (r *recordingEmitter) Emit(_ notify.Severity, title, _ string) {
	r.titles = append(r.titles, title)
}

func TestRunDemo_cycles_script(t *testing.T) {
	e := &recordingEmitter{}

	err := runDemo(context.Background(), e, len(demoScript)+2, rate.NewLimiter(rate.Inf, 1))
	require.NoError(t, err)

	require.Len(t, e.titles, len(demoScript)+2)
	assert.Equal(t, demoScript[0].title, e.titles[0])
	assert.Equal(t, demoScript[1].title, e.titles[len(demoScript)+1])
}

func TestRunDemo_cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := &recordingEmitter{}
	err := runDemo(ctx, e, 3, rate.NewLimiter(1, 1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "demo interrupted")
}

func TestDemoCmd_suppresses_repeats(t *testing.T) {
	var out, errOut bytes.Buffer
	app := NewDemoCmd(fastFlags()).Register(newTestApp(&out, &errOut))

	err := runApp(t, app, "demo", "--plain", "--rate", "1000")
	require.NoError(t, err)

	// The script repeats two entries back to back.
	assert.Equal(t, 1, strings.Count(out.String(), "error Invalid code"))
	assert.Equal(t, 1, strings.Count(out.String(), "success Welcome to the league"))
	assert.Equal(t, 1, strings.Count(out.String(), "info Password updated"))
}

func TestDemoCmd_rejects_zero_rate(t *testing.T) {
	var out, errOut bytes.Buffer
	app := NewDemoCmd(fastFlags()).Register(newTestApp(&out, &errOut))

	err := runApp(t, app, "demo", "--rate", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate must be greater than zero")
}

func TestConfigValidateCmd_valid(t *testing.T) {
	var out, errOut bytes.Buffer
	app := NewConfigValidateCmd(fastFlags()).Register(newTestApp(&out, &errOut))

	require.NoError(t, runApp(t, app, "config", "validate"))
	assert.Contains(t, out.String(), "config.yaml is valid")
}

func TestBuildReport(t *testing.T) {
	flags := fastFlags()
	flags.Config.TUI.Theme = "neon"
	flags.Config.Toast.DedupWindow = 0

	report := buildReport("c.yaml", flags.Config)

	assert.False(t, report.Valid)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, "tui.theme", report.Errors[0].Field)
	require.Len(t, report.Warnings, 1)
	assert.Equal(t, "toast.dedup_window", report.Warnings[0].Field)
}

func TestConfigValidateCmd_json_invalid(t *testing.T) {
	flags := fastFlags()
	flags.Config.Toast.ExitDuration = -time.Second

	var out, errOut bytes.Buffer
	app := NewConfigValidateCmd(flags).Register(newTestApp(&out, &errOut))

	err := runApp(t, app, "config", "validate", "--format", "json")
	require.Error(t, err)

	var exitErr cli.ExitCoder
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())

	assert.Contains(t, out.String(), `"valid": false`)
	assert.Contains(t, out.String(), `"field": "toast.exit_duration"`)
}
