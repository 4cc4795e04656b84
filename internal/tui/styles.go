package tui

import "github.com/charmbracelet/lipgloss"

// Shared palette for the browser screen.
var (
	ColorNavy   = lipgloss.Color("#1a1b4b")
	ColorBlue   = lipgloss.Color("39")
	ColorGreen  = lipgloss.Color("42")
	ColorOrange = lipgloss.Color("208")
	ColorRed    = lipgloss.Color("196")
	ColorGray   = lipgloss.Color("244")
	ColorWhite  = lipgloss.Color("252")
)

var (
	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorGray)

	activeSectionStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(ColorBlue)

	titleStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	selectedRowStyle = lipgloss.NewStyle().
				Background(ColorNavy).
				Foreground(ColorWhite).
				Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	errorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	loadingStyle = lipgloss.NewStyle().
			Foreground(ColorOrange)
)
