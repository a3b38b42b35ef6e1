package study

import (
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/abhisek/flashdeck/internal/study"
	"github.com/abhisek/flashdeck/internal/ui/components"
	"github.com/abhisek/flashdeck/internal/ui/layout"
	"github.com/abhisek/flashdeck/internal/ui/theme"
)

var ratingLabels = [3]string{"Hard", "Medium", "Easy"}

func (s *StudyScreen) View(width, height int) string {
	if s.errMsg != "" {
		return layout.Center(
			theme.NoticeDanger.Render("Could not load cards")+"\n\n"+
				theme.Hint.Render(s.errMsg)+"\n\n"+
				theme.Hint.Render("Press any key to go back"),
			width, height)
	}
	if !s.loaded {
		return layout.Center(theme.Hint.Render("Loading cards..."), width, height)
	}

	switch s.frame.Status {
	case sess.StatusEmpty:
		return layout.Center(theme.Body.Render(s.frame.Message), width, height)
	case sess.StatusComplete:
		return layout.Center(theme.Notice(s.frame.Kind).Render(s.frame.Message), width, height)
	case sess.StatusBoard:
		return s.renderBoard(width, height)
	}
	return s.renderCard(width, height)
}

func (s *StudyScreen) renderCard(width, height int) string {
	f := s.frame
	cardWidth := min(width-8, 72)

	var b strings.Builder
	b.WriteString(components.NewProgressBar(f.Total-f.Remaining, f.Total, cardWidth).View())
	b.WriteString("\n\n")

	header := theme.Hint.Render("level " + f.Card.LevelLabel())
	if f.FromReview {
		header += "  " + lipgloss.NewStyle().Foreground(theme.Accent).Render("review")
	}
	body := header + "\n\n" + theme.Body.Bold(true).Render(f.Card.Question)
	if f.Revealed {
		body += "\n\n" + lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", cardWidth-6)) +
			"\n\n" + lipgloss.NewStyle().Foreground(theme.Secondary).Render(f.Card.Answer)
	} else {
		body += "\n\n" + theme.Hint.Render("Press space to show the answer")
	}

	style := theme.Card
	if f.FromReview {
		style = theme.CardFromReview
	}
	b.WriteString(style.Width(cardWidth).Render(body))
	b.WriteString("\n\n")
	b.WriteString(components.RatingButtons(ratingLabels, f.Busy))
	s.writeStatus(&b)

	return layout.Center(b.String(), width, height)
}

func (s *StudyScreen) renderBoard(width, height int) string {
	f := s.frame
	listWidth := min(width-8, 90)

	var b strings.Builder
	b.WriteString(components.NewProgressBar(f.Total-f.Remaining, f.Total, listWidth).View())
	b.WriteString("\n\n")

	// Keep the selected card in view when the board is taller than the screen.
	visible := max(height-10, 1)
	start := 0
	if s.selected >= visible {
		start = s.selected - visible + 1
	}
	end := min(start+visible, len(f.Cards))

	for i := start; i < end; i++ {
		c := f.Cards[i]
		line := truncate(c.Question, listWidth/2-4) + "  →  " + truncate(c.Answer, listWidth/2-4)
		if i == s.selected {
			b.WriteString(theme.Selected.Render("▸ " + line))
		} else {
			b.WriteString(theme.Unselected.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(components.RatingButtons(ratingLabels, f.Busy))
	s.writeStatus(&b)

	return layout.Center(b.String(), width, height)
}

func (s *StudyScreen) writeStatus(b *strings.Builder) {
	switch {
	case s.frame.Err != "":
		b.WriteString("\n\n" + theme.NoticeDanger.Render("Rating not saved: "+s.frame.Err))
	case s.frame.Busy:
		b.WriteString("\n\n" + theme.Hint.Render("Saving..."))
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 1 || len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
