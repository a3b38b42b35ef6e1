package study

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/flashdeck/internal/router"
	"github.com/abhisek/flashdeck/internal/screen"
	sess "github.com/abhisek/flashdeck/internal/study"
)

type sliceSource struct {
	cards []sess.Card
	err   error
}

func (s sliceSource) Cards(context.Context) ([]sess.Card, error) {
	return s.cards, s.err
}

type fakeRatings struct {
	mu   sync.Mutex
	reqs []sess.RatingRequest
	err  error
}

func (f *fakeRatings) SubmitRating(_ context.Context, req sess.RatingRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.reqs = append(f.reqs, req)
	return nil
}

type fakeCompletion struct {
	c sess.Completion
}

func (f fakeCompletion) Complete(context.Context) (sess.Completion, error) {
	return f.c, nil
}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

var (
	spaceKey = tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	escKey   = tea.KeyPressMsg{Code: tea.KeyEscape}
	downKey  = tea.KeyPressMsg{Code: tea.KeyDown}
)

func testCards() []sess.Card {
	return []sess.Card{
		{ID: "1", Question: "dog", Answer: "cachorro"},
		{ID: "2", Question: "cat", Answer: "gato"},
	}
}

// loaded runs Init and the load round trip, returning the listen command.
func loaded(t *testing.T, s *StudyScreen) tea.Cmd {
	t.Helper()
	_, listen := s.Update(s.Init()())
	if listen == nil {
		t.Fatal("expected a listen command after loading")
	}
	if !s.loaded {
		t.Fatal("expected screen to be loaded")
	}
	return listen
}

// pump delivers the next bridge message to the screen.
func pump(t *testing.T, s *StudyScreen, listen tea.Cmd) (tea.Msg, tea.Cmd) {
	t.Helper()
	msg := listen()
	if _, ok := msg.(router.NavigateMsg); ok {
		return msg, nil
	}
	_, next := s.Update(msg)
	return msg, next
}

// press sends a key and runs the resulting rating command, if any.
func press(t *testing.T, s *StudyScreen, k tea.KeyPressMsg) {
	t.Helper()
	_, cmd := s.Update(k)
	if cmd != nil {
		s.Update(cmd())
	}
}

func TestStudy_StudentFlowHandsOffHome(t *testing.T) {
	ratings := &fakeRatings{}
	s := New(Deps{
		Cards:      sliceSource{cards: testCards()},
		Ratings:    ratings,
		Completion: fakeCompletion{c: sess.Completion{Status: "success", Message: "All done"}},
	})
	listen := loaded(t, s)

	if s.Counter() == nil || s.Counter().Remaining != 2 {
		t.Fatalf("Counter = %+v, want 2 remaining", s.Counter())
	}
	first := s.frame.Card
	if strings.Contains(s.View(80, 30), first.Answer) {
		t.Error("answer should be hidden before flipping")
	}

	press(t, s, spaceKey)
	if !s.frame.Revealed {
		t.Fatal("expected card to be revealed")
	}
	if !strings.Contains(s.View(80, 30), first.Answer) {
		t.Error("answer should be visible after flipping")
	}

	press(t, s, key('3'))
	_, listen = pump(t, s, listen)
	if s.frame.Card.ID == first.ID {
		t.Fatalf("expected the next card after rating %s", first.ID)
	}
	if s.frame.Remaining != 1 {
		t.Errorf("Remaining = %d, want 1", s.frame.Remaining)
	}

	press(t, s, key('2'))
	msg, _ := pump(t, s, listen)
	nav, ok := msg.(router.NavigateMsg)
	if !ok {
		t.Fatalf("expected NavigateMsg after the last card, got %T", msg)
	}
	if nav.Path != "/" || nav.Notice.Message != "All done" || nav.Notice.Kind != "success" {
		t.Errorf("nav = %+v", nav)
	}
	if len(ratings.reqs) != 2 {
		t.Errorf("submitted %d ratings, want 2", len(ratings.reqs))
	}
}

func TestStudy_SinkFailureShowsError(t *testing.T) {
	ratings := &fakeRatings{err: errors.New("server down")}
	s := New(Deps{
		Cards:   sliceSource{cards: testCards()},
		Ratings: ratings,
	})
	listen := loaded(t, s)
	before := s.frame.Card.ID

	press(t, s, key('3'))
	pump(t, s, listen)

	if s.frame.Card.ID != before {
		t.Error("a failed rating must keep the same card")
	}
	if !strings.Contains(s.View(80, 30), "server down") {
		t.Error("expected the submission error in the view")
	}
}

func TestStudy_ReviewerBoard(t *testing.T) {
	ratings := &fakeRatings{}
	s := New(Deps{
		Cards:     sliceSource{cards: testCards()},
		Ratings:   ratings,
		SubjectID: "student-9",
	})
	listen := loaded(t, s)

	if s.frame.Status != sess.StatusBoard || len(s.frame.Cards) != 2 {
		t.Fatalf("frame = %+v, want board of 2", s.frame)
	}
	if s.Title() != "Review" {
		t.Errorf("Title = %q, want Review", s.Title())
	}

	press(t, s, downKey)
	second := s.frame.Cards[1].ID
	press(t, s, key('2'))
	_, listen = pump(t, s, listen)

	if len(s.frame.Cards) != 1 || s.frame.Cards[0].ID == second {
		t.Fatalf("expected %s to leave the board, got %+v", second, s.frame.Cards)
	}
	if s.selected != 0 {
		t.Errorf("selected = %d, want clamp to 0", s.selected)
	}

	press(t, s, key('3'))
	msg, _ := pump(t, s, listen)
	if _, ok := msg.(router.NavigateMsg); !ok {
		t.Fatalf("expected hand-off once the board is empty, got %T", msg)
	}
	for _, req := range ratings.reqs {
		if req.SubjectID != "student-9" {
			t.Errorf("SubjectID = %q, want student-9", req.SubjectID)
		}
	}
}

func TestStudy_EmptyDeck(t *testing.T) {
	s := New(Deps{Cards: sliceSource{}, Ratings: &fakeRatings{}})
	loaded(t, s)

	if s.frame.Status != sess.StatusEmpty {
		t.Fatalf("Status = %v, want empty", s.frame.Status)
	}
	if !strings.Contains(s.View(80, 30), sess.DefaultEmptyMessage) {
		t.Error("expected the empty message")
	}
	if s.Counter() != nil {
		t.Error("empty session should not show a counter")
	}
}

func TestStudy_LoadErrorGoesHome(t *testing.T) {
	s := New(Deps{Cards: sliceSource{err: errors.New("offline")}, Ratings: &fakeRatings{}})
	s.Update(s.Init()())

	if !strings.Contains(s.View(80, 30), "offline") {
		t.Error("expected the load error in the view")
	}
	_, cmd := s.Update(key('x'))
	if cmd == nil {
		t.Fatal("expected navigation on key press")
	}
	if nav, ok := cmd().(router.NavigateMsg); !ok || nav.Path != router.HomePath {
		t.Errorf("expected NavigateMsg home, got %+v", cmd())
	}
}

func TestStudy_EscReleasesListener(t *testing.T) {
	s := New(Deps{Cards: sliceSource{cards: testCards()}, Ratings: &fakeRatings{}})
	listen := loaded(t, s)
	// Drain the frame rendered by Start.
	_, listen = pump(t, s, listen)

	_, cmd := s.Update(escKey)
	if nav, ok := cmd().(router.NavigateMsg); !ok || nav.Path != router.HomePath {
		t.Fatalf("expected NavigateMsg home, got %+v", cmd())
	}
	if msg := listen(); msg != nil {
		t.Errorf("listener after leaving = %T, want nil", msg)
	}
}

type ctxSpeaker struct {
	ctxs []context.Context
}

func (c *ctxSpeaker) Speak(ctx context.Context, _ string) {
	c.ctxs = append(c.ctxs, ctx)
}

func TestStudy_EscSilencesSpeech(t *testing.T) {
	sp := &ctxSpeaker{}
	s := New(Deps{Cards: sliceSource{cards: testCards()}, Ratings: &fakeRatings{}, Speaker: sp})
	listen := loaded(t, s)
	_, _ = pump(t, s, listen)

	s.Update(key('q'))
	if len(sp.ctxs) != 1 {
		t.Fatalf("speak calls = %d, want 1", len(sp.ctxs))
	}
	if sp.ctxs[0].Err() != nil {
		t.Fatal("utterance context cancelled before leaving")
	}

	s.Update(escKey)
	if sp.ctxs[0].Err() == nil {
		t.Error("utterance context still live after leaving the session")
	}
}

func TestStudy_BusyIgnoresRatingKeys(t *testing.T) {
	s := New(Deps{Cards: sliceSource{cards: testCards()}, Ratings: &fakeRatings{}})
	loaded(t, s)
	s.frame.Busy = true

	var scr screen.Screen
	scr, cmd := s.Update(key('1'))
	if cmd != nil {
		t.Error("rating keys must be ignored while a submission is in flight")
	}
	if scr != s {
		t.Error("Update should return the same screen")
	}
}
