package styles

import (
	"github.com/charmbracelet/lipgloss"

	"planboard/internal/domain"
)

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Status colors
	StatusOnSite     = lipgloss.Color("#10B981") // Green
	StatusSick       = lipgloss.Color("#F59E0B") // Amber
	StatusUnassigned = lipgloss.Color("#6B7280") // Gray

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Hub card styles
	HubCard = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(0, 1)

	HubCardSelected = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	HubName = lipgloss.NewStyle().
		Bold(true).
		Foreground(Secondary)

	HubAddress = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	HubCollapsed = lipgloss.NewStyle().
			Foreground(Muted)

	SlotLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60A5FA")) // Blue

	SlotEmpty = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Roster list styles
	RowSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Muted text style
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// StatusColor returns the color for an employee status
func StatusColor(status domain.Status) lipgloss.Color {
	switch status {
	case domain.StatusOnSite:
		return StatusOnSite
	case domain.StatusSick:
		return StatusSick
	default:
		return StatusUnassigned
	}
}
