package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
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
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	// CardFromReview marks a card drawn back from the review pool.
	CardFromReview = Card.
			BorderForeground(Accent)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Match = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	NoticeSuccess = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	NoticeDanger = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// RatingColors are the button colors of the hard, medium and easy ratings.
var RatingColors = [3]lipgloss.Style{
	lipgloss.NewStyle().Background(Error),
	lipgloss.NewStyle().Background(Accent),
	lipgloss.NewStyle().Background(Success),
}

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonDisabled = lipgloss.NewStyle().
			Background(BgCard).
			Foreground(TextDim).
			Padding(0, 2)
)

// Notice returns the style for a server message kind.
func Notice(kind string) lipgloss.Style {
	if kind == "danger" || kind == "error" {
		return NoticeDanger
	}
	return NoticeSuccess
}
