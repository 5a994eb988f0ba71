// Package styles provides shared lipgloss v2 styles for the console and TUI hosts.
package styles

import (
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/courtside/internal/core/notify"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

var (
	ToastSuccessStyle lipgloss.Style
	ToastErrorStyle   lipgloss.Style
	ToastInfoStyle    lipgloss.Style
	ToastExitStyle    lipgloss.Style
	ToastTitleStyle   lipgloss.Style
	ToastDescStyle    lipgloss.Style

	ConsoleSeverityStyles map[notify.Severity]lipgloss.Style
	ConsoleMutedStyle     lipgloss.Style

	HelpStyle  lipgloss.Style
	TitleStyle lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	toastBase := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Background(p.Surface).
		Foreground(p.Foreground).
		Padding(0, 1)

	ToastSuccessStyle = toastBase.BorderForeground(p.Success)
	ToastErrorStyle = toastBase.BorderForeground(p.Error)
	ToastInfoStyle = toastBase.BorderForeground(p.Info)
	ToastExitStyle = toastBase.
		BorderForeground(p.Muted).
		Foreground(p.Muted)
	ToastTitleStyle = lipgloss.NewStyle().Bold(true)
	ToastDescStyle = lipgloss.NewStyle().Foreground(p.Muted)

	ConsoleSeverityStyles = map[notify.Severity]lipgloss.Style{
		notify.SeveritySuccess: lipgloss.NewStyle().Foreground(p.Success).Bold(true),
		notify.SeverityError:   lipgloss.NewStyle().Foreground(p.Error).Bold(true),
		notify.SeverityInfo:    lipgloss.NewStyle().Foreground(p.Info).Bold(true),
	}
	ConsoleMutedStyle = lipgloss.NewStyle().Foreground(p.Muted)

	HelpStyle = lipgloss.NewStyle().Foreground(p.Muted)
	TitleStyle = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
}

// ToastStyle returns the box style for a severity.
func ToastStyle(s notify.Severity) lipgloss.Style {
	switch s {
	case notify.SeveritySuccess:
		return ToastSuccessStyle
	case notify.SeverityError:
		return ToastErrorStyle
	default:
		return ToastInfoStyle
	}
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
