package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/flashdeck/internal/store"
)

type fakeRepo struct {
	sessions []store.SessionSummary
	err      error
	limit    int
}

func (f *fakeRepo) AppendSessionEvent(context.Context, store.SessionEventData) error { return nil }
func (f *fakeRepo) AppendRatingEvent(context.Context, store.RatingEventData) error   { return nil }
func (f *fakeRepo) RecentSessions(_ context.Context, limit int) ([]store.SessionSummary, error) {
	f.limit = limit
	return f.sessions, f.err
}

func TestHistory_ListsSessions(t *testing.T) {
	repo := &fakeRepo{sessions: []store.SessionSummary{
		{SessionID: "s1", Mode: "student", StartedAt: time.Now(), Cards: 5, Ratings: 7, Hard: 2, Easy: 5, Duration: 95 * time.Second, Completed: true},
		{SessionID: "s2", Mode: "reviewer", StartedAt: time.Now(), Cards: 3, Ratings: 1},
	}}
	s := New(repo)
	s.Update(s.Init()())

	if repo.limit != Limit {
		t.Errorf("limit = %d, want %d", repo.limit, Limit)
	}
	view := s.View(120, 30)
	if !strings.Contains(view, "5 cards") || !strings.Contains(view, "1:35") {
		t.Errorf("expected first session in view:\n%s", view)
	}
	if !strings.Contains(view, "left early") {
		t.Error("expected unfinished session marker")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !strings.Contains(s.View(120, 30), "hard 2") {
		t.Error("expected rating breakdown after expanding")
	}
}

func TestHistory_Empty(t *testing.T) {
	s := New(nil)
	s.Update(s.Init()())
	if !strings.Contains(s.View(80, 24), "No sessions yet") {
		t.Error("expected empty state")
	}
}

func TestHistory_Error(t *testing.T) {
	s := New(&fakeRepo{err: errors.New("disk full")})
	s.Update(s.Init()())
	if !strings.Contains(s.View(80, 24), "disk full") {
		t.Error("expected error in view")
	}
}
