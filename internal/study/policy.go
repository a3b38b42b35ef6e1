package study

// ReviewThreshold is the review pool size at which pooled cards preempt fresh
// main-queue cards.
const ReviewThreshold = 5

// Selection is the outcome of one selection step in student mode.
type Selection struct {
	// Card is the active card. Zero when Done.
	Card Card

	// FromReview is true when Card was drawn from the head of the review pool.
	FromReview bool

	// Done is true when both the main queue and the review pool are exhausted.
	Done bool
}

// Select picks the next card to show in student mode. It does not modify
// the state.
//
// The review pool is drawn from once it holds ReviewThreshold cards, or
// exclusively once the main queue is exhausted.
func Select(state *SessionState) Selection {
	hasMain := state.Cursor < len(state.MainQueue)
	hasReview := len(state.ReviewPool) > 0

	if !hasMain && !hasReview {
		return Selection{Done: true}
	}

	useReview := len(state.ReviewPool) >= ReviewThreshold || (!hasMain && hasReview)
	if useReview {
		return Selection{Card: state.ReviewPool[0], FromReview: true}
	}
	return Selection{Card: state.MainQueue[state.Cursor]}
}
