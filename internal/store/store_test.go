package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/flashdeck/ent/ratingevent"
	"github.com/abhisek/flashdeck/ent/sessionevent"
	"github.com/abhisek/flashdeck/internal/study"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)

	tests := []struct {
		pragma string
		want   string
	}{
		// journal_mode stays "memory" for in-memory databases.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}
	for _, tt := range tests {
		var got string
		if err := s.DB().QueryRow("PRAGMA " + tt.pragma).Scan(&got); err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestOpen_FileDatabaseIsReopenable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.db")
	if err := EnsureDir(path); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx := context.Background()
	if err := s.HistoryRepo().AppendSessionEvent(ctx, SessionEventData{SessionID: "a", Action: "start", Mode: "student"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil || mode != "wal" {
		t.Errorf("journal_mode = %q, %v; want wal", mode, err)
	}
	sessions, err := s.HistoryRepo().RecentSessions(ctx, 0)
	if err != nil || len(sessions) != 1 {
		t.Fatalf("RecentSessions = %v, %v; want the session from the first open", sessions, err)
	}
}

func TestSequenceSharedAcrossTables(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()

	_ = repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: "start", Mode: "student"})
	_ = repo.AppendRatingEvent(ctx, RatingEventData{SessionID: "s1", CardID: "c1", Rating: 1, Mode: "student"})
	_ = repo.AppendRatingEvent(ctx, RatingEventData{SessionID: "s1", CardID: "c1", Rating: 3, FromReview: true, Mode: "student"})
	_ = repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: "end", Mode: "student"})

	rows, err := s.DB().Query(`SELECT sequence FROM session_events UNION ALL SELECT sequence FROM rating_events ORDER BY 1`)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	defer rows.Close()
	var got []int64
	for rows.Next() {
		var seq int64
		rows.Scan(&seq)
		got = append(got, seq)
	}
	if fmt.Sprint(got) != "[1 2 3 4]" {
		t.Errorf("sequences = %v, want [1 2 3 4]", got)
	}
}

func TestAppendRatingEvent_RejectsInvalidRating(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()

	err := repo.AppendRatingEvent(ctx, RatingEventData{SessionID: "s", CardID: "c", Rating: 7, Mode: "student"})
	if err == nil {
		t.Fatal("expected validation error for rating 7")
	}

	// The rejected event must not consume a sequence number.
	if err := repo.AppendRatingEvent(ctx, RatingEventData{SessionID: "s", CardID: "c", Rating: 2, Mode: "student"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	var seq int64
	s.DB().QueryRow(`SELECT sequence FROM rating_events`).Scan(&seq)
	if seq != 1 {
		t.Errorf("sequence = %d, want 1", seq)
	}
}

func TestEventsReadableThroughClient(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("Client() = nil")
	}
	repo := s.HistoryRepo()
	ctx := context.Background()

	_ = repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: "start", Mode: "reviewer", Cards: 4})
	_ = repo.AppendRatingEvent(ctx, RatingEventData{SessionID: "s1", CardID: "c1", Rating: 2, FromReview: true, Mode: "reviewer"})

	start, err := s.Client().SessionEvent.Query().
		Where(sessionevent.SessionID("s1"), sessionevent.ActionEQ(sessionevent.ActionStart)).
		Only(ctx)
	if err != nil {
		t.Fatalf("query start: %v", err)
	}
	if start.Sequence != 1 || start.Mode != "reviewer" || start.Cards != 4 {
		t.Errorf("start = %v", start)
	}

	rating, err := s.Client().RatingEvent.Query().Where(ratingevent.CardID("c1")).Only(ctx)
	if err != nil {
		t.Fatalf("query rating: %v", err)
	}
	if rating.Sequence != 2 || rating.Rating != 2 || !rating.FromReview {
		t.Errorf("rating = %v", rating)
	}
}

func TestAppendEvents_RejectMissingFields(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()

	if err := repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s", Action: "start"}); err == nil {
		t.Error("expected error for session event without mode")
	}
	if err := repo.AppendRatingEvent(ctx, RatingEventData{SessionID: "s", Rating: 1, Mode: "student"}); err == nil {
		t.Error("expected error for rating event without card id")
	}

	n, err := s.Client().SessionEvent.Query().Count(ctx)
	if err != nil || n != 0 {
		t.Errorf("session events = %d, %v; want none stored", n, err)
	}
}

func TestAppendSessionEvent_RejectsUnknownAction(t *testing.T) {
	s := openTestStore(t)
	err := s.HistoryRepo().AppendSessionEvent(context.Background(), SessionEventData{SessionID: "s", Action: "pause"})
	if err == nil {
		t.Fatal("expected error for unknown action")
	}
}

func TestRecentSessions(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo().(*historyRepo)
	ctx := context.Background()

	clock := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return clock }

	// Finished student session.
	_ = repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: "start", Mode: "student", Cards: 2})
	_ = repo.AppendRatingEvent(ctx, RatingEventData{SessionID: "s1", CardID: "a", Rating: 1, Mode: "student"})
	_ = repo.AppendRatingEvent(ctx, RatingEventData{SessionID: "s1", CardID: "b", Rating: 3, Mode: "student"})
	_ = repo.AppendRatingEvent(ctx, RatingEventData{SessionID: "s1", CardID: "a", Rating: 2, FromReview: true, Mode: "student"})
	_ = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", Action: "end", Mode: "student", Cards: 2, Ratings: 3,
		Duration: 90 * time.Second, Message: "Done!",
	})

	// Abandoned reviewer session, started later.
	clock = clock.Add(time.Hour)
	_ = repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s2", Action: "start", Mode: "reviewer", Cards: 5})
	_ = repo.AppendRatingEvent(ctx, RatingEventData{SessionID: "s2", CardID: "x", Rating: 1, Mode: "reviewer"})

	got, err := repo.RecentSessions(ctx, 10)
	if err != nil {
		t.Fatalf("RecentSessions: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}

	latest, first := got[0], got[1]
	if latest.SessionID != "s2" || latest.Completed || latest.Ratings != 1 || latest.Hard != 1 {
		t.Errorf("latest = %+v, want abandoned s2 with one hard rating", latest)
	}
	if !latest.StartedAt.Equal(clock) {
		t.Errorf("StartedAt = %v, want %v", latest.StartedAt, clock)
	}
	if first.SessionID != "s1" || !first.Completed {
		t.Fatalf("first = %+v, want completed s1", first)
	}
	if first.Ratings != 3 || first.Hard != 1 || first.Medium != 1 || first.Easy != 1 {
		t.Errorf("s1 rating counts = %+v", first)
	}
	if first.Duration != 90*time.Second || first.Message != "Done!" || first.Cards != 2 {
		t.Errorf("s1 summary = %+v", first)
	}

	limited, err := repo.RecentSessions(ctx, 1)
	if err != nil || len(limited) != 1 || limited[0].SessionID != "s2" {
		t.Errorf("RecentSessions(1) = %+v, %v", limited, err)
	}
}

func TestRecorder(t *testing.T) {
	s := openTestStore(t)
	rec := Recorder{Repo: s.HistoryRepo()}
	ctx := context.Background()

	if err := rec.RecordSession(ctx, study.SessionRecord{SessionID: "s", Action: "start", Mode: study.ModeReviewer, Cards: 3}); err != nil {
		t.Fatalf("RecordSession: %v", err)
	}
	if err := rec.RecordRating(ctx, study.RatingRecord{SessionID: "s", CardID: "c", Rating: study.RatingEasy, Mode: study.ModeReviewer}); err != nil {
		t.Fatalf("RecordRating: %v", err)
	}

	got, err := s.HistoryRepo().RecentSessions(ctx, 0)
	if err != nil || len(got) != 1 {
		t.Fatalf("RecentSessions = %v, %v", got, err)
	}
	if got[0].Mode != study.ModeReviewer.String() || got[0].Easy != 1 {
		t.Errorf("summary = %+v", got[0])
	}
}
