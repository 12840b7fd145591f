package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary     = lipgloss.Color("#6366F1") // Indigo
	Secondary   = lipgloss.Color("#14B8A6") // Teal
	Accent      = lipgloss.Color("#F59E0B") // Amber
	Success     = lipgloss.Color("#22C55E") // Green
	Destructive = lipgloss.Color("#EF4444") // Red
	Text        = lipgloss.Color("#F8FAFC") // White
	TextDim     = lipgloss.Color("#94A3B8") // Slate
	BgDark      = lipgloss.Color("#0F172A") // Deep Navy
	BgCard      = lipgloss.Color("#1E293B") // Dark Slate
	Muted       = lipgloss.Color("#273449") // Score panel
	Border      = lipgloss.Color("#334155") // Slate
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
	Card = lipgloss.NewStyle().
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

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true)

	Faded = lipgloss.NewStyle().
		Foreground(TextDim)
)

// Components
var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(Text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)

// ForTone maps a tone name ("success", "accent", "destructive") to a colour.
func ForTone(tone string) color.Color {
	switch tone {
	case "success":
		return Success
	case "accent":
		return Accent
	default:
		return Destructive
	}
}
