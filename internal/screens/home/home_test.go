package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/flashdeck/internal/router"
)

func TestView_ShowsNotice(t *testing.T) {
	h := New(router.Notice{Kind: "success", Message: "All cards studied!"}, DefaultEntries())
	view := h.View(80, 24)
	if !strings.Contains(view, "All cards studied!") {
		t.Error("expected the notice in the view")
	}
	if !strings.Contains(view, "STUDY") {
		t.Error("expected the menu in the view")
	}
}

func TestView_NoNotice(t *testing.T) {
	h := New(router.Notice{}, DefaultEntries())
	if !h.Notice().Empty() {
		t.Error("expected an empty notice")
	}
}

func TestEnter_NavigatesToPath(t *testing.T) {
	h := New(router.Notice{}, DefaultEntries())

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if cmd != nil {
		t.Fatal("moving the selection should not emit a command")
	}
	_, cmd = h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	msg, ok := cmd().(router.NavigateMsg)
	if !ok {
		t.Fatalf("expected NavigateMsg, got %T", cmd())
	}
	if msg.Path != "/deck" {
		t.Errorf("Path = %q, want /deck", msg.Path)
	}
}

func TestEnter_QuitEntry(t *testing.T) {
	h := New(router.Notice{}, []Entry{{Label: "QUIT"}})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", cmd())
	}
}
