package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — warm and calm, built around the practice-timer orange
var (
	Primary   = lipgloss.Color("#FF9500") // Orange
	Secondary = lipgloss.Color("#34C759") // Green
	Accent    = lipgloss.Color("#FFD60A") // Gold
	Success   = lipgloss.Color("#34C759") // Green
	Error     = lipgloss.Color("#FF3B30") // Red
	Text      = lipgloss.Color("#F5F5F7") // Off-white
	TextDim   = lipgloss.Color("#8E8E93") // Gray
	BgDark    = lipgloss.Color("#1C1C1E") // Near Black
	BgCard    = lipgloss.Color("#2C2C2E") // Dark Gray
	Border    = lipgloss.Color("#3A3A3C") // Gray Border
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

	Clock = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)
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

	ActiveBadge = lipgloss.NewStyle().
			Foreground(BgDark).
			Background(Secondary).
			Bold(true).
			Padding(0, 1)

	PausedBadge = lipgloss.NewStyle().
			Foreground(BgDark).
			Background(Accent).
			Bold(true).
			Padding(0, 1)

	Mastered = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	Danger = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Primary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	BarFilled = lipgloss.NewStyle().
			Foreground(Primary)

	BarEmpty = lipgloss.NewStyle().
			Foreground(Border)
)
