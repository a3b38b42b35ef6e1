package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestProgressBar_Fraction(t *testing.T) {
	tests := []struct {
		done, total int
		want        float64
	}{
		{0, 0, 0},
		{0, 4, 0},
		{2, 4, 0.5},
		{4, 4, 1},
		{5, 4, 1},
	}
	for _, tt := range tests {
		got := NewProgressBar(tt.done, tt.total, 40).Fraction()
		if got != tt.want {
			t.Errorf("Fraction(%d/%d) = %v, want %v", tt.done, tt.total, got, tt.want)
		}
	}
}

func TestProgressBar_ViewShowsCounter(t *testing.T) {
	v := NewProgressBar(3, 7, 40).View()
	if !strings.Contains(v, "3/7") {
		t.Errorf("View() = %q, want counter 3/7", v)
	}
}

func TestRatingButtons(t *testing.T) {
	v := RatingButtons([3]string{"Hard", "Medium", "Easy"}, false)
	for _, want := range []string{"1 Hard", "2 Medium", "3 Easy"} {
		if !strings.Contains(v, want) {
			t.Errorf("RatingButtons missing %q", want)
		}
	}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	var chosen string
	pick := func(label string) func() tea.Cmd {
		return func() tea.Cmd {
			chosen = label
			return nil
		}
	}
	m := NewMenu([]MenuItem{
		{Label: "Study", Action: pick("Study")},
		{Label: "Deck", Disabled: true},
		{Label: "History", Action: pick("History")},
	})

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 2 {
		t.Fatalf("Selected = %d, want 2", m.Selected)
	}
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if chosen != "History" {
		t.Errorf("chosen = %q, want History", chosen)
	}
}

func TestTextInput_SetValue(t *testing.T) {
	in := NewTextInput("Question", "", 10)
	in.SetValue("bonjour")
	if in.Value() != "bonjour" {
		t.Errorf("Value() = %q", in.Value())
	}
	if !strings.Contains(in.View(), "Question") {
		t.Error("View should include the label")
	}
}
