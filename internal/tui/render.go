package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/widgetdeck/internal/form"
)

// renderOutcome renders a result, an inline validation error, or the
// neutral placeholder when nothing has been evaluated.
func renderOutcome(out form.Outcome, placeholder string) string {
	switch out.Status {
	case form.StatusOk:
		return okStyle.Render(strings.Join(out.Lines, "\n"))
	case form.StatusInvalid:
		return errorStyle.Render("✗ " + out.Message)
	default:
		return placeholderStyle.Render(placeholder)
	}
}

// pageHeader renders a widget's title and description.
func pageHeader(title, description string) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		hintStyle.Render(description),
		"")
}

// inlineError renders a validation message, or nothing.
func inlineError(msg string) string {
	if msg == "" {
		return ""
	}
	return errorStyle.Render("✗ " + msg)
}
