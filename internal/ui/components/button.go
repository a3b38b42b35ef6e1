package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/flashdeck/internal/ui/theme"
)

// Button is a styled, keyed button.
type Button struct {
	Key      string
	Label    string
	Style    lipgloss.Style
	Disabled bool
}

// View renders the button. A disabled button is dimmed.
func (b Button) View() string {
	label := b.Key + " " + b.Label
	if b.Disabled {
		return theme.ButtonDisabled.Render(label)
	}
	return b.Style.
		Foreground(theme.Text).
		Bold(true).
		Padding(0, 2).
		Render(label)
}

// RatingButtons renders the hard, medium and easy buttons side by side.
// All of them are disabled while a submission is in flight.
func RatingButtons(labels [3]string, disabled bool) string {
	views := make([]string, 0, len(labels))
	for i, label := range labels {
		b := Button{
			Key:      string(rune('1' + i)),
			Label:    label,
			Style:    theme.RatingColors[i],
			Disabled: disabled,
		}
		if i > 0 {
			views = append(views, "  ")
		}
		views = append(views, b.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, views...)
}
