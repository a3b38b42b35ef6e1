package deck

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/flashdeck/internal/deck"
	"github.com/abhisek/flashdeck/internal/router"
	"github.com/abhisek/flashdeck/internal/screens/cardform"
	"github.com/abhisek/flashdeck/internal/study"
)

type sliceSource []study.Card

func (s sliceSource) Cards(context.Context) ([]study.Card, error) {
	return s, nil
}

type fakeEditor struct {
	deleted []string
}

func (f *fakeEditor) AddCard(context.Context, deck.CardForm) (deck.FormResult, error) {
	return deck.FormResult{Status: deck.StatusSuccess}, nil
}

func (f *fakeEditor) EditCard(context.Context, string, deck.CardForm) (deck.FormResult, error) {
	return deck.FormResult{Status: deck.StatusSuccess}, nil
}

func (f *fakeEditor) DeleteCard(_ context.Context, id string) (deck.FormResult, error) {
	f.deleted = append(f.deleted, id)
	return deck.FormResult{Status: deck.StatusSuccess, Message: "Card deleted"}, nil
}

func ctrl(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

var (
	escKey  = tea.KeyPressMsg{Code: tea.KeyEscape}
	downKey = tea.KeyPressMsg{Code: tea.KeyDown}
)

func testCards() sliceSource {
	return sliceSource{
		{ID: "1", Question: "dog", Answer: "cachorro"},
		{ID: "2", Question: "cat", Answer: "gato"},
		{ID: "3", Question: "bird", Answer: "pássaro"},
	}
}

func newLoaded(t *testing.T, editor deck.Editor) *DeckScreen {
	t.Helper()
	d := New(Deps{Cards: testCards(), Editor: editor})
	d.Init()
	d.Update(d.load()())
	if !d.loaded {
		t.Fatal("expected deck to be loaded")
	}
	return d
}

func typeText(d *DeckScreen, s string) {
	for _, r := range s {
		d.Update(key(r))
	}
}

func TestSearch_FiltersAsYouType(t *testing.T) {
	d := newLoaded(t, nil)

	if d.Result().Label != "" {
		t.Errorf("empty query label = %q, want empty", d.Result().Label)
	}

	typeText(d, "ca")
	res := d.Result()
	if res.Count != 2 || res.Label != "2 matches found" {
		t.Errorf("result = %d %q, want 2 matches", res.Count, res.Label)
	}
	if res.Hits[0].Card.ID != "1" || res.Hits[1].Card.ID != "2" || res.Hits[2].Match {
		t.Errorf("hits out of order: %+v", res.Hits)
	}
	if !strings.Contains(d.View(100, 30), "2 matches found") {
		t.Error("expected the match label in the view")
	}
}

func TestSearch_FieldToggles(t *testing.T) {
	d := newLoaded(t, nil)
	typeText(d, "ca")

	d.Update(ctrl('a'))
	if d.Result().Count != 1 || d.Result().Hits[0].Card.ID != "2" {
		t.Errorf("question-only search = %+v, want cat", d.Result())
	}

	d.Update(ctrl('q'))
	if d.Result().Count != 0 || d.Result().Label != "0 matches found" {
		t.Errorf("no-field search = %+v, want 0 matches", d.Result())
	}
}

func TestEsc_ClearsQueryThenGoesHome(t *testing.T) {
	d := newLoaded(t, nil)
	typeText(d, "dog")

	if _, cmd := d.Update(escKey); cmd != nil {
		t.Error("first esc should only clear the query")
	}
	if d.input.Value() != "" || d.Result().Label != "" {
		t.Error("expected query to be cleared")
	}

	_, cmd := d.Update(escKey)
	if nav, ok := cmd().(router.NavigateMsg); !ok || nav.Path != router.HomePath {
		t.Errorf("expected NavigateMsg home, got %+v", cmd())
	}
}

func TestDelete_ConfirmsThenReloads(t *testing.T) {
	editor := &fakeEditor{}
	d := newLoaded(t, editor)
	d.Update(downKey)

	d.Update(ctrl('d'))
	if !d.confirm {
		t.Fatal("expected a delete confirmation")
	}
	if !strings.Contains(d.View(100, 30), `Delete "cat"?`) {
		t.Error("expected the confirmation prompt in the view")
	}

	_, cmd := d.Update(key('y'))
	if cmd == nil {
		t.Fatal("expected a delete command")
	}
	d.Update(cmd())

	if len(editor.deleted) != 1 || editor.deleted[0] != "2" {
		t.Errorf("deleted = %v, want [2]", editor.deleted)
	}
	if d.notice.Message != "Card deleted" {
		t.Errorf("notice = %+v", d.notice)
	}
}

func TestDelete_Cancel(t *testing.T) {
	editor := &fakeEditor{}
	d := newLoaded(t, editor)

	d.Update(ctrl('d'))
	d.Update(key('n'))
	if d.confirm || len(editor.deleted) != 0 {
		t.Error("expected the delete to be cancelled")
	}
}

func TestReadOnlyWithoutEditor(t *testing.T) {
	d := newLoaded(t, nil)

	d.Update(ctrl('d'))
	if d.confirm {
		t.Error("delete must be unavailable without an editor")
	}
	if _, cmd := d.Update(ctrl('e')); cmd != nil {
		t.Error("edit must be unavailable without an editor")
	}
}

func TestEdit_PushesStackedForm(t *testing.T) {
	d := newLoaded(t, &fakeEditor{})

	_, cmd := d.Update(ctrl('e'))
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	form, ok := push.Screen.(*cardform.FormScreen)
	if !ok {
		t.Fatalf("expected a card form, got %T", push.Screen)
	}
	if form.Form().Question != "dog" {
		t.Errorf("form = %+v, want the selected card", form.Form())
	}
}

func TestSavedResultShowsNotice(t *testing.T) {
	d := newLoaded(t, &fakeEditor{})
	d.Update(cardform.SavedMsg{Notice: router.Notice{Kind: "success", Message: "Card updated"}})
	if d.notice.Message != "Card updated" {
		t.Errorf("notice = %+v", d.notice)
	}
}
