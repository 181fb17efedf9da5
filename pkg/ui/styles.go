// Package ui provides the Bubble Tea TUI for exploring error resolutions.
package ui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	ColorPrimary   = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary = lipgloss.Color("#10B981") // Green
	ColorDanger    = lipgloss.Color("#EF4444") // Red
	ColorWarning   = lipgloss.Color("#F59E0B") // Amber
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorBorder    = lipgloss.Color("#374151") // Dark gray
)

// Styles
var (
	// Box styles
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	// Title style
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(ColorPrimary).
			Padding(0, 2)

	// Source badges
	SourceLocalStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true)

	SourceAIStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)

	SourceFallbackStyle = lipgloss.NewStyle().
				Foreground(ColorDanger).
				Bold(true)

	// Value styles
	MessageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	RawStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	MatchedKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	// Help style
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)
)
