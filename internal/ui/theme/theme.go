package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette. Dark background with gold accents.
var (
	Primary   = lipgloss.Color("#D4AF37") // Gold
	Secondary = lipgloss.Color("#4A90D9") // Steel Blue
	Accent    = lipgloss.Color("#AF6025") // Ember
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#E8E6E3") // Parchment
	TextDim   = lipgloss.Color("#8A8782") // Ash
	BgDark    = lipgloss.Color("#0C0C0E") // Near Black
	BgCard    = lipgloss.Color("#1A1A1E") // Charcoal
	Border    = lipgloss.Color("#3A3A40") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	VisitedMark = lipgloss.NewStyle().
			Foreground(Success)

	PassiveMark = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)
