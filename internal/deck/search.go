package deck

import (
	"fmt"
	"strings"

	"github.com/abhisek/flashdeck/internal/study"
)

// Fields selects which card fields a search looks at.
type Fields struct {
	Question bool
	Answer   bool
}

// AllFields searches both question and answer.
var AllFields = Fields{Question: true, Answer: true}

// Hit is one card in a search result.
type Hit struct {
	Card  study.Card
	Match bool
}

// SearchResult lists every card, matches first.
type SearchResult struct {
	Hits  []Hit
	Count int
	Label string
}

// Search filters cards by a case-insensitive substring of the trimmed query.
// All cards are returned; matching ones come first and both groups keep their
// input order. An empty query matches nothing and has an empty label.
func Search(cards []study.Card, query string, fields Fields) SearchResult {
	q := strings.ToLower(strings.TrimSpace(query))

	matched := make([]Hit, 0, len(cards))
	var rest []Hit
	for _, c := range cards {
		if q != "" && matches(c, q, fields) {
			matched = append(matched, Hit{Card: c, Match: true})
			continue
		}
		rest = append(rest, Hit{Card: c})
	}

	res := SearchResult{
		Hits:  append(matched, rest...),
		Count: len(matched),
	}
	if q != "" {
		res.Label = MatchLabel(res.Count)
	}
	return res
}

// MatchLabel renders the match counter text.
func MatchLabel(n int) string {
	if n == 1 {
		return "1 match found"
	}
	return fmt.Sprintf("%d matches found", n)
}

func matches(c study.Card, q string, fields Fields) bool {
	if fields.Question && strings.Contains(strings.ToLower(c.Question), q) {
		return true
	}
	return fields.Answer && strings.Contains(strings.ToLower(c.Answer), q)
}
