package cardform

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/flashdeck/internal/deck"
	"github.com/abhisek/flashdeck/internal/router"
	"github.com/abhisek/flashdeck/internal/study"
	"github.com/abhisek/flashdeck/internal/translate"
)

type editCall struct {
	id   string
	form deck.CardForm
}

type fakeEditor struct {
	result deck.FormResult
	err    error
	adds   []deck.CardForm
	edits  []editCall
}

func (f *fakeEditor) AddCard(_ context.Context, form deck.CardForm) (deck.FormResult, error) {
	f.adds = append(f.adds, form)
	return f.result, f.err
}

func (f *fakeEditor) EditCard(_ context.Context, id string, form deck.CardForm) (deck.FormResult, error) {
	f.edits = append(f.edits, editCall{id: id, form: form})
	return f.result, f.err
}

func (f *fakeEditor) DeleteCard(context.Context, string) (deck.FormResult, error) {
	return f.result, f.err
}

type fakeTranslator struct {
	text string
	err  error
}

func (f fakeTranslator) Translate(context.Context, string) (string, error) {
	return f.text, f.err
}

var (
	enterKey   = tea.KeyPressMsg{Code: tea.KeyEnter}
	tabKey     = tea.KeyPressMsg{Code: tea.KeyTab}
	escKey     = tea.KeyPressMsg{Code: tea.KeyEscape}
	suggestKey = tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl}
)

func typeText(f *FormScreen, s string) {
	for _, r := range s {
		f.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func newForm(editor deck.Editor, card *study.Card, stacked bool) *FormScreen {
	f := New(Deps{Editor: editor}, card, stacked)
	f.Init()
	return f
}

func okResult() deck.FormResult {
	return deck.FormResult{Status: deck.StatusSuccess, Message: "Card saved"}
}

func TestSubmit_ValidatesBeforeCallingEditor(t *testing.T) {
	editor := &fakeEditor{result: okResult()}
	f := newForm(editor, nil, false)

	typeText(f, "   ")
	f.Update(enterKey)

	if len(editor.adds) != 0 {
		t.Error("an invalid form must not reach the editor")
	}
	if f.notice.Kind != deck.StatusDanger {
		t.Errorf("notice kind = %q, want danger", f.notice.Kind)
	}
	if !strings.Contains(f.notice.Message, "question is required") {
		t.Errorf("notice = %q, want question error", f.notice.Message)
	}
}

func TestSubmit_AddClearsForm(t *testing.T) {
	editor := &fakeEditor{result: okResult()}
	f := newForm(editor, nil, false)

	typeText(f, " dog ")
	f.Update(tabKey)
	typeText(f, "cachorro")

	_, cmd := f.Update(enterKey)
	if cmd == nil {
		t.Fatal("expected a save command")
	}
	f.Update(cmd())

	if len(editor.adds) != 1 {
		t.Fatalf("adds = %d, want 1", len(editor.adds))
	}
	if got := editor.adds[0]; got.Question != "dog" || got.Answer != "cachorro" {
		t.Errorf("submitted %+v, want trimmed fields", got)
	}
	if f.Form().Question != "" || f.Form().Answer != "" {
		t.Errorf("form = %+v, want cleared", f.Form())
	}
	if f.notice.Message != "Card saved" {
		t.Errorf("notice = %+v", f.notice)
	}
	if f.focus != 0 {
		t.Errorf("focus = %d, want question field", f.focus)
	}
}

func TestSubmit_StackedEditPopsWithResult(t *testing.T) {
	editor := &fakeEditor{result: okResult()}
	f := newForm(editor, &study.Card{ID: "42", Question: "cat", Answer: "gato"}, true)

	if f.Title() != "Edit card" {
		t.Errorf("Title = %q", f.Title())
	}

	_, cmd := f.Update(enterKey)
	_, cmd = f.Update(cmd())
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	pop, ok := cmd().(router.PopScreenMsg)
	if !ok {
		t.Fatalf("expected PopScreenMsg, got %T", cmd())
	}
	saved, ok := pop.Result.(SavedMsg)
	if !ok || saved.Notice.Message != "Card saved" {
		t.Errorf("pop result = %+v", pop.Result)
	}
	if len(editor.edits) != 1 || editor.edits[0].id != "42" {
		t.Errorf("edits = %+v", editor.edits)
	}
}

func TestSubmit_ServerRejectionKeepsInput(t *testing.T) {
	editor := &fakeEditor{result: deck.FormResult{Status: deck.StatusDanger, Message: "Card already exists"}}
	f := newForm(editor, nil, false)
	typeText(f, "dog")
	f.Update(tabKey)
	typeText(f, "cão")

	_, cmd := f.Update(enterKey)
	f.Update(cmd())

	if f.Form().Question != "dog" {
		t.Error("a rejected card should stay in the form")
	}
	if f.notice.Kind != deck.StatusDanger || f.notice.Message != "Card already exists" {
		t.Errorf("notice = %+v", f.notice)
	}
}

func TestSubmit_TransportError(t *testing.T) {
	editor := &fakeEditor{err: errors.New("connection refused")}
	f := newForm(editor, &study.Card{ID: "1", Question: "a", Answer: "b"}, true)

	_, cmd := f.Update(enterKey)
	f.Update(cmd())

	if !strings.Contains(f.notice.Message, "connection refused") {
		t.Errorf("notice = %+v", f.notice)
	}
	if f.busy {
		t.Error("form should accept input again after a failure")
	}
}

func TestSuggest_FillsAnswer(t *testing.T) {
	f := New(Deps{Editor: &fakeEditor{}, Translator: fakeTranslator{text: "o cachorro"}}, nil, false)
	f.Init()
	typeText(f, "the dog")

	_, cmd := f.Update(suggestKey)
	if cmd == nil {
		t.Fatal("expected a suggestion command")
	}
	f.Update(cmd())

	if f.Form().Answer != "o cachorro" {
		t.Errorf("Answer = %q, want suggestion", f.Form().Answer)
	}
}

func TestSuggest_ErrorMessage(t *testing.T) {
	f := New(Deps{Translator: fakeTranslator{err: &translate.ErrRateLimit{Err: errors.New("429")}}}, nil, false)
	f.Init()
	typeText(f, "the dog")

	_, cmd := f.Update(suggestKey)
	f.Update(cmd())

	if !strings.Contains(f.notice.Message, "busy") {
		t.Errorf("notice = %q, want rate-limit message", f.notice.Message)
	}
}

func TestSuggest_DisabledWithoutTranslator(t *testing.T) {
	f := newForm(&fakeEditor{}, nil, false)
	typeText(f, "the dog")
	if _, cmd := f.Update(suggestKey); cmd != nil {
		t.Error("suggest should do nothing without a translator")
	}
}

func TestFlash_ExpiresOnlyLatest(t *testing.T) {
	f := newForm(&fakeEditor{}, nil, false)
	f.flash(router.Notice{Kind: "success", Message: "first"})
	f.flash(router.Notice{Kind: "success", Message: "second"})

	f.Update(flashExpiredMsg{seq: 1})
	if f.notice.Message != "second" {
		t.Fatalf("stale expiry cleared the newer notice")
	}
	f.Update(flashExpiredMsg{seq: 2})
	if !f.notice.Empty() {
		t.Error("expected notice to clear")
	}
}

func TestEsc(t *testing.T) {
	_, cmd := newForm(nil, nil, true).Update(escKey)
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("stacked form: expected PopScreenMsg, got %T", cmd())
	}

	_, cmd = newForm(nil, nil, false).Update(escKey)
	if nav, ok := cmd().(router.NavigateMsg); !ok || nav.Path != router.HomePath {
		t.Errorf("routed form: expected NavigateMsg home, got %+v", cmd())
	}
}
