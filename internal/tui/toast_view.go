package tui

import (
	"strings"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/courtside/internal/core/notify"
	"github.com/colonyops/courtside/internal/core/styles"
)

const toastWidth = 44

// ToastView holds what the engine last told the terminal to show and renders
// it as an overlay. It never decides what is visible on its own.
type ToastView struct {
	current notify.Notification
	shown   bool
	exiting bool
}

func NewToastView() *ToastView {
	return &ToastView{}
}

// Show replaces the displayed toast.
func (v *ToastView) Show(n notify.Notification) {
	v.current = n
	v.shown = true
	v.exiting = false
}

// BeginExit switches the toast to its exit style. Exits for anything other
// than the displayed toast are ignored.
func (v *ToastView) BeginExit(n notify.Notification) {
	if v.shown && v.current.ID == n.ID {
		v.exiting = true
	}
}

// Clear removes the toast.
func (v *ToastView) Clear() {
	v.current = notify.Notification{}
	v.shown = false
	v.exiting = false
}

// Current returns the displayed toast.
func (v *ToastView) Current() (notify.Notification, bool) {
	return v.current, v.shown
}

// Exiting reports whether the displayed toast is animating out.
func (v *ToastView) Exiting() bool {
	return v.exiting
}

// View renders the toast box, or "" when nothing is shown.
func (v *ToastView) View() string {
	if !v.shown {
		return ""
	}

	n := v.current
	lines := []string{
		styles.SeverityIcon(n.Severity) + " " + styles.ToastTitleStyle.Render(n.Title),
	}
	if n.HasDescription() {
		lines = append(lines, styles.ToastDescStyle.Render(n.Description))
	}

	style := styles.ToastStyle(n.Severity)
	if v.exiting {
		style = styles.ToastExitStyle
	}
	return style.Width(toastWidth).Render(strings.Join(lines, "\n"))
}

// Overlay composites the toast over background in the lower-right corner.
func (v *ToastView) Overlay(background string, width, height int) string {
	content := v.View()
	if content == "" {
		return background
	}

	bgLayer := lipgloss.NewLayer(background)
	toastLayer := lipgloss.NewLayer(content)

	rightX := max(width-lipgloss.Width(content)-1, 0)
	bottomY := max(height-lipgloss.Height(content), 0)
	toastLayer.X(rightX).Y(bottomY).Z(2)

	return lipgloss.NewCompositor(bgLayer, toastLayer).Render()
}
