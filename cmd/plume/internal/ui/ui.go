package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorColor   = lipgloss.Color("#ef4444")
	successColor = lipgloss.Color("#10b981")
	mutedColor   = lipgloss.Color("#94a3b8")

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)

// Error renders a diagnostic line.
func Error(format string, args ...interface{}) string {
	return errorStyle.Render("error:") + " " + fmt.Sprintf(format, args...)
}

// Success renders a success line.
func Success(format string, args ...interface{}) string {
	return successStyle.Render("ok:") + " " + fmt.Sprintf(format, args...)
}

// Muted renders secondary output, such as cache hits.
func Muted(format string, args ...interface{}) string {
	return mutedStyle.Render(fmt.Sprintf(format, args...))
}
