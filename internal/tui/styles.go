package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary = lipgloss.Color("#00BFFF") // cyan, primary accent
	colorAccent  = lipgloss.Color("#FFD700") // gold, ayanamsa highlight
	colorDanger  = lipgloss.Color("#FF5252") // red, errors
	colorMuted   = lipgloss.Color("#636363") // gray, de-emphasized
	colorWhite   = lipgloss.Color("#EEEEEE") // off-white, primary text
	colorSurface = lipgloss.Color("#1E1E2E") // dark surface, title bg
)

// Selection indicator prepended to the active row.
const selectionIndicator = "▎"

var (
	styleTitle = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)

	styleHeader = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleSelected = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleError = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	styleAccent = lipgloss.NewStyle().
			Foreground(colorAccent)

	styleLabel = lipgloss.NewStyle().
			Foreground(colorPrimary)
)
