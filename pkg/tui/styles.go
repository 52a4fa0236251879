package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorSelected = "236" // Dark gray for background selection
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241" // Dimmer gray
	ColorWarning  = "214" // Orange/yellow for warnings
	ColorDanger   = "196" // Red for dangerous actions and invalid fields
	ColorSuccess  = "28"  // Green for success
	ColorWhite    = "255" // White
	ColorPrimary  = "33"  // Blue for primary actions
	ColorChip     = "62"  // Indigo background for chips
)

var (
	// Field borders
	ActiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorActive))

	InactiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorInactive))

	InvalidBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorDanger))

	// Labels
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))

	ActiveLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorActive)).
				Bold(true)

	RequiredMarkStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDanger))

	// Dropdown items
	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Background(lipgloss.Color(ColorSelected)).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	ChipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWhite)).
			Background(lipgloss.Color(ColorChip)).
			Padding(0, 1).
			MarginRight(1)

	// Buttons
	ButtonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWhite)).
			Background(lipgloss.Color(ColorPrimary)).
			Padding(0, 2)

	DangerButtonStyle = ButtonStyle.
				Background(lipgloss.Color(ColorDanger))

	DisabledButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorInactive)).
				Background(lipgloss.Color(ColorSelected)).
				Padding(0, 2)

	// Headers and messages
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorActive)).
			PaddingLeft(1)

	SectionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(ColorWarning))

	NoticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning))

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim)).
			PaddingLeft(1)

	StatusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorChip)).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)

	FieldPaddingStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				PaddingRight(1)
)
