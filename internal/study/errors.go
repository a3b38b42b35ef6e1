package study

import "errors"

var (
	// ErrSessionEmpty is returned for actions on a session with no cards.
	ErrSessionEmpty = errors.New("no flashcards to study")

	// ErrSessionComplete is returned for actions after the session finished.
	ErrSessionComplete = errors.New("study session already complete")

	// ErrSubmissionInFlight is returned while another rating is being submitted.
	ErrSubmissionInFlight = errors.New("a rating submission is already in flight")

	// ErrTooSoon is returned when the same rating control is triggered again
	// before the minimum submission interval elapsed.
	ErrTooSoon = errors.New("rating submitted too soon after the previous one")

	// ErrNotActive is returned when rating a card that is not currently rateable.
	ErrNotActive = errors.New("card is not active")

	// ErrInvalidRating is returned for ratings outside 1..3.
	ErrInvalidRating = errors.New("rating must be 1, 2 or 3")
)
