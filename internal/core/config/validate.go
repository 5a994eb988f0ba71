package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/courtside/internal/core/styles"
)

// Validate checks that the configuration is valid. Errors are returned as
// criterio.FieldErrors keyed by YAML path.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("toast.display_duration", c.Toast.DisplayDuration, positiveDuration),
		criterio.Run("toast.exit_duration", c.Toast.ExitDuration, nonNegativeDuration),
		criterio.Run("toast.dedup_window", c.Toast.DedupWindow, nonNegativeDuration),
		criterio.Run("tui.theme", c.TUI.Theme, knownTheme),
	)
}

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Warnings reports settings that are valid but probably unintended.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if c.Toast.DedupWindow == 0 {
		warnings = append(warnings, ValidationWarning{
			Field:   "toast.dedup_window",
			Message: "deduplication is disabled; repeated notifications will all be shown",
		})
	}

	if c.Toast.ExitDuration >= c.Toast.DisplayDuration {
		warnings = append(warnings, ValidationWarning{
			Field:   "toast.exit_duration",
			Message: fmt.Sprintf("exit animation (%s) is not shorter than display time (%s)", c.Toast.ExitDuration, c.Toast.DisplayDuration),
		})
	}

	return warnings
}

func positiveDuration(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("must be greater than zero, got %s", d)
	}
	return nil
}

func nonNegativeDuration(d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("cannot be negative, got %s", d)
	}
	return nil
}

func knownTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}
