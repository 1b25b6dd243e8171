package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorBlue   = lipgloss.Color("39")
	ColorGray   = lipgloss.Color("244")
	ColorRed    = lipgloss.Color("196")
	ColorOrange = lipgloss.Color("208")
	ColorGreen  = lipgloss.Color("42")
	ColorWhite  = lipgloss.Color("255")
	ColorNavy   = lipgloss.Color("17")
)

var (
	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorGray).
			Padding(0, 1)

	activeSectionStyle = sectionStyle.BorderForeground(ColorBlue)

	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(ColorBlue)
	labelStyle       = lipgloss.NewStyle().Foreground(ColorWhite)
	hintStyle        = lipgloss.NewStyle().Foreground(ColorGray)
	errorStyle       = lipgloss.NewStyle().Foreground(ColorRed)
	okStyle          = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)
	selectedStyle    = lipgloss.NewStyle().Foreground(ColorBlue).Bold(true)
	placeholderStyle = lipgloss.NewStyle().Foreground(ColorGray).Italic(true)
)
