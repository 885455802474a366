package tui

import (
	"github.com/MKhiriev/go-pdf-desk/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)
	cursorStyle  = lipgloss.NewStyle().Bold(true)
	pendingStyle = lipgloss.NewStyle()
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// statusStyle returns the colour of the status line: neutral while pending,
// red on failure and green on success.
func statusStyle(kind models.StatusKind) lipgloss.Style {
	switch kind {
	case models.StatusFailure:
		return failureStyle
	case models.StatusSuccess:
		return successStyle
	default:
		return pendingStyle
	}
}
