package study

import (
	"encoding/json"
	"testing"
)

func TestCardUnmarshal_NumericIDAndLevel(t *testing.T) {
	var cards []Card
	data := `[
		{"id": 12, "question": "dog", "answer": "cachorro", "level": 3},
		{"id": "ab-1", "question": "cat", "answer": "gato", "level": null},
		{"id": 7, "question": "bird", "answer": "pássaro"}
	]`
	if err := json.Unmarshal([]byte(data), &cards); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(cards) != 3 {
		t.Fatalf("len = %d, want 3", len(cards))
	}
	if cards[0].ID != "12" || cards[0].Level != "3" {
		t.Errorf("cards[0] = %+v, want id 12 level 3", cards[0])
	}
	if cards[1].ID != "ab-1" || cards[1].Level != "" {
		t.Errorf("cards[1] = %+v, want id ab-1 and no level", cards[1])
	}
	if cards[2].LevelLabel() != "—" {
		t.Errorf("LevelLabel = %q, want placeholder", cards[2].LevelLabel())
	}
	if cards[2].Answer != "pássaro" {
		t.Errorf("Answer = %q", cards[2].Answer)
	}
}

func TestCardUnmarshal_MissingID(t *testing.T) {
	var c Card
	if err := json.Unmarshal([]byte(`{"question": "q", "answer": "a"}`), &c); err == nil {
		t.Error("expected error for card without id")
	}
}

func TestCardUnmarshal_InvalidID(t *testing.T) {
	var c Card
	if err := json.Unmarshal([]byte(`{"id": {"x": 1}, "question": "q"}`), &c); err == nil {
		t.Error("expected error for object id")
	}
}

func TestBoard_Resolve(t *testing.T) {
	b := NewBoard(testCards("a", "b", "c"))

	if b.Resolve("a", RatingHard) {
		t.Error("hard rating must keep the card on the board")
	}
	if !b.Resolve("b", RatingEasy) {
		t.Error("easy rating must remove the card")
	}
	if b.Resolve("b", RatingEasy) {
		t.Error("resolving a removed card must be a no-op")
	}
	if b.Len() != 2 || b.Contains("b") {
		t.Errorf("board = %v, want a and c", b.Cards())
	}

	cards := b.Cards()
	cards[0].ID = "mutated"
	if !b.Contains("a") {
		t.Error("Cards must return a copy")
	}
}
