package app

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/flashdeck/internal/router"
	"github.com/abhisek/flashdeck/internal/screens/cardform"
	"github.com/abhisek/flashdeck/internal/screens/home"
	"github.com/abhisek/flashdeck/internal/study"
)

type sliceSource []study.Card

func (s sliceSource) Cards(context.Context) ([]study.Card, error) { return s, nil }

type nopRatings struct{}

func (nopRatings) SubmitRating(context.Context, study.RatingRequest) error { return nil }

func testOptions() Options {
	return Options{
		Cards:   sliceSource{{ID: "1", Question: "dog", Answer: "cachorro"}},
		Ratings: nopRatings{},
	}
}

func sized(m AppModel) AppModel {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(AppModel)
}

func TestStartsAtHome(t *testing.T) {
	m := newAppModel(testOptions())
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Fatalf("expected home screen, got %T", m.router.Active())
	}
}

func TestStartPath(t *testing.T) {
	opts := testOptions()
	opts.StartPath = PathHistory
	m := newAppModel(opts)
	if m.router.Active().Title() != "History" {
		t.Errorf("Title = %q, want History", m.router.Active().Title())
	}

	opts.StartPath = "/nowhere"
	m = newAppModel(opts)
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Errorf("unknown start path should show home, got %T", m.router.Active())
	}
}

func TestHandoffLandsOnHomeWithNotice(t *testing.T) {
	opts := testOptions()
	opts.StartPath = PathStudy
	m := sized(newAppModel(opts))

	m.Update(router.NavigateMsg{Path: "/", Notice: router.Notice{Kind: "success", Message: "All studied"}})

	h, ok := m.router.Active().(*home.HomeScreen)
	if !ok {
		t.Fatalf("expected home screen, got %T", m.router.Active())
	}
	if h.Notice().Message != "All studied" {
		t.Errorf("notice = %+v", h.Notice())
	}
	if !strings.Contains(m.router.View(100, 24), "All studied") {
		t.Error("expected the notice in the rendered screen")
	}
}

func TestAddDisabledWithoutEditor(t *testing.T) {
	m := newAppModel(testOptions())
	view := m.router.Active().View(100, 24)
	if !strings.Contains(view, "ADD CARD") {
		t.Error("expected ADD CARD entry")
	}

	// Down from STUDY skips the disabled entry.
	h := m.router.Active().(*home.HomeScreen)
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if nav, ok := cmd().(router.NavigateMsg); !ok || nav.Path != PathHistory {
		t.Errorf("expected navigation to history, got %+v", cmd())
	}
}

func TestEscLeftToCapturingScreen(t *testing.T) {
	m := newAppModel(testOptions())
	// An unstacked form answers esc with a navigation, the root with a pop.
	m.router.Push(cardform.New(cardform.Deps{}, nil, false))

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected the form to handle esc")
	}
	if _, ok := cmd().(router.NavigateMsg); !ok {
		t.Errorf("expected the form's NavigateMsg, got %T", cmd())
	}
}

func TestEscPopsNonCapturingScreen(t *testing.T) {
	m := newAppModel(testOptions())
	m.router.Push(home.New(router.Notice{}, nil))

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(testOptions())
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", cmd())
	}
}
