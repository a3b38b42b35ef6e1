package study

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

func testCards(ids ...string) []Card {
	cards := make([]Card, len(ids))
	for i, id := range ids {
		cards[i] = Card{ID: id, Question: "q-" + id, Answer: "a-" + id}
	}
	return cards
}

// orderedState builds a student state whose main queue keeps the given order.
func orderedState(ids ...string) *SessionState {
	return &SessionState{
		SessionID: "test-session",
		MainQueue: testCards(ids...),
		Phase:     PhaseActive,
	}
}

func TestNewSessionState_Empty(t *testing.T) {
	state := NewSessionState(nil, "", "s", nil)
	if state.Phase != PhaseEmpty {
		t.Errorf("Phase = %v, want PhaseEmpty", state.Phase)
	}
	if !Select(state).Done {
		t.Error("expected empty session to select Done")
	}
}

func TestNewSessionState_ShuffleIsPermutation(t *testing.T) {
	ids := make([]string, 50)
	for i := range ids {
		ids[i] = fmt.Sprintf("c%d", i)
	}
	cards := testCards(ids...)

	for seed := uint64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewPCG(seed, seed*7+1))
		state := NewSessionState(cards, "", "s", rng)

		if len(state.MainQueue) != len(cards) {
			t.Fatalf("seed %d: queue length = %d, want %d", seed, len(state.MainQueue), len(cards))
		}
		seen := make(map[string]int)
		for _, c := range state.MainQueue {
			seen[c.ID]++
		}
		for _, id := range ids {
			if seen[id] != 1 {
				t.Errorf("seed %d: card %s appears %d times, want 1", seed, id, seen[id])
			}
		}
	}
}

func TestNewSessionState_DoesNotModifyInput(t *testing.T) {
	cards := testCards("a", "b", "c", "d", "e")
	rng := rand.New(rand.NewPCG(1, 2))
	NewSessionState(cards, "", "s", rng)

	for i, want := range []string{"a", "b", "c", "d", "e"} {
		if cards[i].ID != want {
			t.Errorf("cards[%d] = %s, want %s", i, cards[i].ID, want)
		}
	}
}

func TestNewSessionState_ShuffleCoversPermutations(t *testing.T) {
	cards := testCards("a", "b", "c")
	rng := rand.New(rand.NewPCG(42, 42))
	orders := make(map[string]int)
	for i := 0; i < 600; i++ {
		state := NewSessionState(cards, "", "s", rng)
		key := state.MainQueue[0].ID + state.MainQueue[1].ID + state.MainQueue[2].ID
		orders[key]++
	}
	if len(orders) != 6 {
		t.Errorf("observed %d distinct orders, want all 6: %v", len(orders), orders)
	}
	for order, n := range orders {
		if n < 50 {
			t.Errorf("order %s seen %d times out of 600, shuffle looks biased", order, n)
		}
	}
}

func TestNewSessionState_ReviewerMode(t *testing.T) {
	state := NewSessionState(testCards("a", "b"), "student-7", "s", nil)
	if state.Mode != ModeReviewer {
		t.Errorf("Mode = %v, want ModeReviewer", state.Mode)
	}
	if state.Board == nil || state.Board.Len() != 2 {
		t.Fatal("expected a board with 2 cards")
	}
	if state.Remaining() != 2 {
		t.Errorf("Remaining = %d, want 2", state.Remaining())
	}
}

func TestSelect_DrawsMainQueueFirst(t *testing.T) {
	state := orderedState("a", "b")
	state.ReviewPool = testCards("x")

	sel := Select(state)
	if sel.Done || sel.FromReview {
		t.Fatalf("expected main-queue draw, got %+v", sel)
	}
	if sel.Card.ID != "a" {
		t.Errorf("Card = %s, want a", sel.Card.ID)
	}
}

func TestSelect_BufferThresholdPreemptsMainQueue(t *testing.T) {
	state := orderedState("a", "b", "c", "d", "e", "f", "g")
	state.ReviewPool = testCards("p1", "p2", "p3", "p4")

	if sel := Select(state); sel.FromReview {
		t.Fatal("pool below threshold must not preempt the main queue")
	}

	state.ReviewPool = append(state.ReviewPool, Card{ID: "p5"})
	sel := Select(state)
	if !sel.FromReview {
		t.Fatal("pool at threshold must preempt the main queue")
	}
	if sel.Card.ID != "p1" {
		t.Errorf("Card = %s, want pool head p1", sel.Card.ID)
	}
}

func TestSelect_DrainsPoolWhenMainExhausted(t *testing.T) {
	state := orderedState("a")
	state.Cursor = 1
	state.ReviewPool = testCards("a")

	sel := Select(state)
	if !sel.FromReview || sel.Card.ID != "a" {
		t.Errorf("expected pool draw of a, got %+v", sel)
	}
}

func TestSelect_Done(t *testing.T) {
	state := orderedState("a")
	state.Cursor = 1
	if !Select(state).Done {
		t.Error("expected Done with empty pool and exhausted queue")
	}
}
