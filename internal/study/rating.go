package study

import "strconv"

// Rating is the learner's self-assessment of a card.
type Rating int

const (
	RatingHard   Rating = 1
	RatingMedium Rating = 2
	RatingEasy   Rating = 3
)

// Ratings lists the rating options in display order.
var Ratings = []Rating{RatingHard, RatingMedium, RatingEasy}

// ParseRating parses the wire form ("1", "2" or "3").
func ParseRating(s string) (Rating, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrInvalidRating
	}
	r := Rating(n)
	if !r.Valid() {
		return 0, ErrInvalidRating
	}
	return r, nil
}

// Valid reports whether r is one of the three rating options.
func (r Rating) Valid() bool {
	return r >= RatingHard && r <= RatingEasy
}

// Resolves reports whether the rating finally resolves a card. Only a hard
// rating sends the card (back) to the review pool.
func (r Rating) Resolves() bool {
	return r == RatingMedium || r == RatingEasy
}

// String returns the wire form of the rating.
func (r Rating) String() string {
	return strconv.Itoa(int(r))
}

// Label returns the human-readable name of the rating.
func (r Rating) Label() string {
	switch r {
	case RatingHard:
		return "hard"
	case RatingMedium:
		return "medium"
	case RatingEasy:
		return "easy"
	}
	return "unknown"
}
