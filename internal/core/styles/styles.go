// Package styles provides shared lipgloss styles for CLI output.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Success styles confirmation lines such as the saved-file message.
	Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	// Error styles failure messages printed to stderr.
	Error = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	// Muted styles secondary output such as recorded command lines.
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// Header styles section headings in list output.
	Header = lipgloss.NewStyle().Bold(true)
)
