package styles

import "github.com/colonyops/courtside/internal/core/notify"

var (
	IconSuccess = "✓"
	IconError   = "✗"
	IconInfo    = "●"
	IconDismiss = "×"
)

// SeverityIcon returns the glyph shown next to a notification title.
func SeverityIcon(s notify.Severity) string {
	switch s {
	case notify.SeveritySuccess:
		return IconSuccess
	case notify.SeverityError:
		return IconError
	default:
		return IconInfo
	}
}
