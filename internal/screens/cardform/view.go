package cardform

import (
	"strings"

	"github.com/abhisek/flashdeck/internal/ui/layout"
	"github.com/abhisek/flashdeck/internal/ui/theme"
)

func (f *FormScreen) View(width, height int) string {
	fieldWidth := min(width-10, 70)
	for i := range f.inputs {
		f.inputs[i].Model.SetWidth(fieldWidth)
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(f.Title()))
	b.WriteString("\n\n")
	b.WriteString(f.inputs[0].View())
	b.WriteString("\n\n")
	b.WriteString(f.inputs[1].View())
	b.WriteString("\n\n")

	switch {
	case f.busy:
		b.WriteString(theme.Hint.Render("Working..."))
	case !f.notice.Empty():
		b.WriteString(theme.Notice(f.notice.Kind).Render(f.notice.Message))
	}

	return layout.Center(theme.Card.Width(fieldWidth+6).Render(b.String()), width, height)
}
