package styles

import "github.com/charmbracelet/lipgloss"

// Status colors.
var (
	ColorPassed   = lipgloss.Color("#00CC00")
	ColorFindings = lipgloss.Color("#FFCC00")
	ColorFailed   = lipgloss.Color("#FF0000")
	ColorSkipped  = lipgloss.Color("#666666")
	ColorMuted    = lipgloss.Color("#666666")
	ColorAccent   = lipgloss.Color("#7D56F4")
)

// Styles used across TUI views.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(ColorAccent).
			Padding(0, 1)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			MarginBottom(1)

	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	CursorStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	StatusPassedStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorPassed)
	StatusFindingsStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorFindings)
	StatusFailedStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorFailed)
	StatusSkippedStyle  = lipgloss.NewStyle().Foreground(ColorSkipped)
)

// StatusStyle returns the appropriate style for a scan status.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "PASSED":
		return StatusPassedStyle
	case "FINDINGS":
		return StatusFindingsStyle
	case "FAILED":
		return StatusFailedStyle
	case "SKIPPED":
		return StatusSkippedStyle
	default:
		return lipgloss.NewStyle()
	}
}
