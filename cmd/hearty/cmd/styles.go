package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	// Calendar styles
	calendarBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorMuted).
				Padding(0, 1)

	weekdayStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)

	todayStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			Underline(true)
)

// keyValue renders one "label  value" line with the label padded to width
func keyValue(label, value string, width int) string {
	return labelStyle.Width(width).Render(label) + valueStyle.Render(value)
}
