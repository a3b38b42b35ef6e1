package deck

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/flashdeck/internal/ui/layout"
	"github.com/abhisek/flashdeck/internal/ui/theme"
)

func (d *DeckScreen) View(width, height int) string {
	if d.errMsg != "" {
		return layout.Center(theme.NoticeDanger.Render("Error: "+d.errMsg), width, height)
	}
	if !d.loaded {
		return layout.Center(theme.Hint.Render("Loading cards..."), width, height)
	}

	listWidth := min(width-4, 100)
	var b strings.Builder

	b.WriteString("  " + d.input.View() + "\n")
	b.WriteString("  " + fieldToggle("Question", d.fields.Question) + "  " + fieldToggle("Answer", d.fields.Answer))
	if d.result.Label != "" {
		b.WriteString("   " + theme.Match.Render(d.result.Label))
	}
	b.WriteString("\n\n")

	if len(d.result.Hits) == 0 {
		b.WriteString(theme.Hint.Render("  No cards yet.") + "\n")
	}

	visible := max(height-8, 1)
	start := 0
	if d.selected >= visible {
		start = d.selected - visible + 1
	}
	end := min(start+visible, len(d.result.Hits))

	half := listWidth/2 - 4
	for i := start; i < end; i++ {
		hit := d.result.Hits[i]
		line := fmt.Sprintf("%-*s  %s", half, clip(hit.Card.Question, half), clip(hit.Card.Answer, half))
		style := theme.Unselected
		if hit.Match {
			style = theme.Match
		}
		prefix := "  "
		if i == d.selected {
			prefix = "▸ "
			style = theme.Selected
		}
		b.WriteString(style.Render(prefix+line) + "\n")
	}

	b.WriteString("\n")
	switch {
	case d.confirm:
		card, _ := d.selectedCard()
		b.WriteString(theme.NoticeDanger.Render(fmt.Sprintf("  Delete %q? (y/n)", card.Question)))
	case !d.notice.Empty():
		b.WriteString("  " + theme.Notice(d.notice.Kind).Render(d.notice.Message))
	}

	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func fieldToggle(label string, on bool) string {
	if on {
		return theme.Selected.Render("[x] " + label)
	}
	return theme.Hint.Render("[ ] " + label)
}

func clip(s string, n int) string {
	r := []rune(s)
	if n <= 1 || len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
