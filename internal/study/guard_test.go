package study

import (
	"errors"
	"testing"
	"time"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time          { return f.now }
func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func TestGuard_RejectsWhileInFlight(t *testing.T) {
	clock := newFakeClock()
	g := NewGuard(DefaultMinSubmitInterval, clock.Now)

	if err := g.Begin(ControlKey("a", RatingEasy)); err != nil {
		t.Fatalf("first Begin: %v", err)
	}
	if !g.Busy() {
		t.Error("expected guard to be busy")
	}

	clock.Advance(time.Second)
	err := g.Begin(ControlKey("b", RatingHard))
	if !errors.Is(err, ErrSubmissionInFlight) {
		t.Errorf("Begin on other control while in flight = %v, want ErrSubmissionInFlight", err)
	}

	g.End(true)
	if err := g.Begin(ControlKey("b", RatingHard)); err != nil {
		t.Errorf("Begin after End: %v", err)
	}
}

func TestGuard_MinimumIntervalPerControl(t *testing.T) {
	clock := newFakeClock()
	g := NewGuard(700*time.Millisecond, clock.Now)
	key := ControlKey("a", RatingHard)

	if err := g.Begin(key); err != nil {
		t.Fatalf("first Begin: %v", err)
	}
	g.End(true)

	clock.Advance(300 * time.Millisecond)
	if err := g.Begin(key); !errors.Is(err, ErrTooSoon) {
		t.Errorf("Begin within interval = %v, want ErrTooSoon", err)
	}

	// A different control is not throttled.
	if err := g.Begin(ControlKey("a", RatingEasy)); err != nil {
		t.Errorf("Begin on other control: %v", err)
	}
	g.End(true)

	clock.Advance(400 * time.Millisecond)
	if err := g.Begin(key); err != nil {
		t.Errorf("Begin after interval: %v", err)
	}
}

func TestGuard_RejectedTriggerDoesNotResetInterval(t *testing.T) {
	clock := newFakeClock()
	g := NewGuard(700*time.Millisecond, clock.Now)
	key := ControlKey("a", RatingMedium)

	_ = g.Begin(key)
	g.End(true)

	clock.Advance(600 * time.Millisecond)
	if err := g.Begin(key); !errors.Is(err, ErrTooSoon) {
		t.Fatalf("expected ErrTooSoon, got %v", err)
	}

	clock.Advance(150 * time.Millisecond)
	if err := g.Begin(key); err != nil {
		t.Errorf("Begin 750ms after the accepted trigger: %v", err)
	}
}

func TestGuard_RejectedSubmissionAllowsImmediateRetry(t *testing.T) {
	clock := newFakeClock()
	g := NewGuard(700*time.Millisecond, clock.Now)
	key := ControlKey("a", RatingEasy)

	if err := g.Begin(key); err != nil {
		t.Fatalf("first Begin: %v", err)
	}
	g.End(false)

	clock.Advance(50 * time.Millisecond)
	if err := g.Begin(key); err != nil {
		t.Fatalf("retry after a rejected submission = %v, want nil", err)
	}
	g.End(true)

	clock.Advance(50 * time.Millisecond)
	if err := g.Begin(key); !errors.Is(err, ErrTooSoon) {
		t.Errorf("Begin after an accepted submission = %v, want ErrTooSoon", err)
	}
}

func TestParseRating(t *testing.T) {
	tests := []struct {
		in      string
		want    Rating
		wantErr bool
	}{
		{"1", RatingHard, false},
		{"2", RatingMedium, false},
		{"3", RatingEasy, false},
		{"0", 0, true},
		{"4", 0, true},
		{"easy", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseRating(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidRating) {
				t.Errorf("ParseRating(%q) err = %v, want ErrInvalidRating", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseRating(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}
