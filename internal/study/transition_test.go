package study

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

// rateActive selects the active card and applies r to it.
func rateActive(t *testing.T, state *SessionState, r Rating) Selection {
	t.Helper()
	sel := Select(state)
	if sel.Done {
		t.Fatal("rateActive called on a finished session")
	}
	ApplyRating(state, sel, r)
	assertPoolDisjointFromPending(t, state)
	return sel
}

func assertPoolDisjointFromPending(t *testing.T, state *SessionState) {
	t.Helper()
	pending := make(map[string]bool)
	for _, c := range state.MainQueue[state.Cursor:] {
		pending[c.ID] = true
	}
	seen := make(map[string]bool)
	for _, c := range state.ReviewPool {
		if pending[c.ID] {
			t.Errorf("review pool holds %s which is still pending in the main queue", c.ID)
		}
		if seen[c.ID] {
			t.Errorf("review pool holds %s twice", c.ID)
		}
		seen[c.ID] = true
	}
}

func poolIDs(state *SessionState) []string {
	ids := make([]string, len(state.ReviewPool))
	for i, c := range state.ReviewPool {
		ids[i] = c.ID
	}
	return ids
}

func TestApplyRating_AllEasy(t *testing.T) {
	state := orderedState("A", "B", "C")

	for i := 0; i < 3; i++ {
		rateActive(t, state, RatingEasy)
	}

	if !Select(state).Done {
		t.Error("expected session to be done after 3 easy ratings")
	}
	if state.Cursor != 3 {
		t.Errorf("Cursor = %d, want 3", state.Cursor)
	}
	if len(state.ReviewPool) != 0 {
		t.Errorf("ReviewPool = %v, want empty", poolIDs(state))
	}
}

func TestApplyRating_HardThenRetry(t *testing.T) {
	state := orderedState("A", "B")
	ratings := 0

	sel := rateActive(t, state, RatingHard)
	ratings++
	if sel.Card.ID != "A" || sel.FromReview {
		t.Fatalf("first draw = %+v, want fresh A", sel)
	}
	if state.Cursor != 1 {
		t.Errorf("Cursor after hard = %d, want 1", state.Cursor)
	}

	sel = rateActive(t, state, RatingEasy)
	ratings++
	if sel.Card.ID != "B" {
		t.Fatalf("second draw = %s, want B", sel.Card.ID)
	}

	sel = rateActive(t, state, RatingEasy)
	ratings++
	if sel.Card.ID != "A" || !sel.FromReview {
		t.Fatalf("third draw = %+v, want A from review", sel)
	}

	if !Select(state).Done {
		t.Error("expected session to be done")
	}
	if state.Cursor != 2 {
		t.Errorf("Cursor = %d, want 2", state.Cursor)
	}
	if len(state.ReviewPool) != 0 {
		t.Errorf("ReviewPool = %v, want empty", poolIDs(state))
	}
	if ratings > 3 {
		t.Errorf("ratings = %d, want at most 3", ratings)
	}
}

func TestApplyRating_HardFromReviewRotates(t *testing.T) {
	state := orderedState("A")
	state.Cursor = 1
	state.ReviewPool = testCards("A", "B", "C")

	sel := rateActive(t, state, RatingHard)
	if sel.Card.ID != "A" {
		t.Fatalf("draw = %s, want A", sel.Card.ID)
	}

	got := fmt.Sprint(poolIDs(state))
	if got != "[B C A]" {
		t.Errorf("ReviewPool = %s, want [B C A]", got)
	}
}

func TestApplyRating_ResolveFromReviewGraduates(t *testing.T) {
	state := orderedState("A", "B")
	state.Cursor = 2
	state.ReviewPool = testCards("A", "B")

	rateActive(t, state, RatingMedium)
	if got := fmt.Sprint(poolIDs(state)); got != "[B]" {
		t.Errorf("ReviewPool = %s, want [B]", got)
	}
}

func TestApplyRating_BufferThresholdInterleaves(t *testing.T) {
	ids := []string{"c0", "c1", "c2", "c3", "c4", "c5", "c6", "c7"}
	state := orderedState(ids...)

	for i := 0; i < ReviewThreshold; i++ {
		sel := rateActive(t, state, RatingHard)
		if sel.FromReview {
			t.Fatalf("draw %d came from review before the threshold", i)
		}
	}
	if len(state.ReviewPool) != ReviewThreshold {
		t.Fatalf("pool size = %d, want %d", len(state.ReviewPool), ReviewThreshold)
	}

	sel := Select(state)
	if !sel.FromReview {
		t.Fatal("expected review draw once the pool reached the threshold while main cards remain")
	}
	if sel.Card.ID != "c0" {
		t.Errorf("review draw = %s, want c0", sel.Card.ID)
	}

	// Resolving one pooled card drops the pool below the threshold again.
	rateActive(t, state, RatingEasy)
	if sel := Select(state); sel.FromReview || sel.Card.ID != "c5" {
		t.Errorf("next draw = %+v, want fresh c5", sel)
	}
}

func TestApplyRating_CursorNeverExceedsQueue(t *testing.T) {
	state := orderedState("A")
	state.Cursor = 1
	ApplyRating(state, Selection{Card: Card{ID: "A"}}, RatingEasy)
	if state.Cursor != 1 {
		t.Errorf("Cursor = %d, want clamp to 1", state.Cursor)
	}
}

func TestApplyRating_ResetsReveal(t *testing.T) {
	state := orderedState("A", "B")
	state.Revealed = true
	rateActive(t, state, RatingEasy)
	if state.Revealed {
		t.Error("expected next card to start face down")
	}
}

func TestApplyRating_LivenessWithResolvingRatings(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	ids := make([]string, 30)
	for i := range ids {
		ids[i] = fmt.Sprintf("c%d", i)
	}
	state := NewSessionState(testCards(ids...), "", "s", rng)

	steps := 0
	for !Select(state).Done {
		r := RatingMedium
		if rng.IntN(2) == 0 {
			r = RatingEasy
		}
		rateActive(t, state, r)
		steps++
		if steps > len(ids) {
			t.Fatalf("session not done after %d resolving ratings", steps)
		}
	}
	if steps != len(ids) {
		t.Errorf("steps = %d, want %d", steps, len(ids))
	}
}

func TestApplyRating_RandomRatingsTerminate(t *testing.T) {
	for seed := uint64(1); seed <= 25; seed++ {
		rng := rand.New(rand.NewPCG(seed, 3))
		ids := make([]string, 12)
		for i := range ids {
			ids[i] = fmt.Sprintf("c%d", i)
		}
		state := NewSessionState(testCards(ids...), "", "s", rng)

		resolved := make(map[string]bool)
		for steps := 0; !Select(state).Done; steps++ {
			if steps > 10_000 {
				t.Fatalf("seed %d: session did not terminate", seed)
			}
			r := Ratings[rng.IntN(len(Ratings))]
			sel := rateActive(t, state, r)
			if r.Resolves() {
				resolved[sel.Card.ID] = true
			}
		}
		for _, id := range ids {
			if !resolved[id] {
				t.Errorf("seed %d: card %s finished without a resolving rating", seed, id)
			}
		}
	}
}
