package deck

import (
	"testing"

	"github.com/abhisek/flashdeck/internal/study"
)

func searchCards() []study.Card {
	return []study.Card{
		{ID: "1", Question: "dog", Answer: "cachorro"},
		{ID: "2", Question: "cat", Answer: "gato"},
		{ID: "3", Question: "hot dog", Answer: "cachorro-quente"},
		{ID: "4", Question: "cake", Answer: "bolo"},
	}
}

func hitIDs(res SearchResult) string {
	var s string
	for _, h := range res.Hits {
		s += h.Card.ID
	}
	return s
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		fields    Fields
		wantOrder string
		wantCount int
		wantLabel string
	}{
		{"empty query", "   ", AllFields, "1234", 0, ""},
		{"question only", "DOG", Fields{Question: true}, "1324", 2, "2 matches found"},
		{"answer only", "gato", Fields{Answer: true}, "2134", 1, "1 match found"},
		{"answer field disabled", "gato", Fields{Question: true}, "1234", 0, "0 matches found"},
		{"both fields", "ca", AllFields, "1234", 4, "4 matches found"},
		{"trimmed", "  bolo ", AllFields, "4123", 1, "1 match found"},
		{"no fields", "dog", Fields{}, "1234", 0, "0 matches found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Search(searchCards(), tt.query, tt.fields)
			if got := hitIDs(res); got != tt.wantOrder {
				t.Errorf("order = %s, want %s", got, tt.wantOrder)
			}
			if res.Count != tt.wantCount {
				t.Errorf("Count = %d, want %d", res.Count, tt.wantCount)
			}
			if res.Label != tt.wantLabel {
				t.Errorf("Label = %q, want %q", res.Label, tt.wantLabel)
			}
			for i, h := range res.Hits {
				if h.Match != (i < res.Count) {
					t.Errorf("hit %d (%s) Match = %v", i, h.Card.ID, h.Match)
				}
			}
		})
	}
}
