package study

import "github.com/samber/lo"

// ApplyRating moves the session forward after rating the card chosen by sel.
// It must only be called once the rating was accepted by the rating sink.
//
// A hard rating queues the card for review: a fresh card advances the cursor,
// a pooled card rotates to the back of the pool. Any other rating resolves
// the card: a pooled card leaves the pool, a fresh card advances the cursor.
func ApplyRating(state *SessionState, sel Selection, r Rating) {
	if sel.Done {
		return
	}
	card := sel.Card

	if r == RatingHard {
		if !inPool(state.ReviewPool, card.ID) {
			state.ReviewPool = append(state.ReviewPool, card)
		}
		if sel.FromReview {
			head := state.ReviewPool[0]
			state.ReviewPool = append(state.ReviewPool[1:], head)
		} else {
			state.Cursor++
		}
	} else {
		if sel.FromReview {
			state.ReviewPool = state.ReviewPool[1:]
		} else {
			state.Cursor++
			state.ReviewPool = lo.Filter(state.ReviewPool, func(c Card, _ int) bool {
				return c.ID != card.ID
			})
		}
	}

	if state.Cursor > len(state.MainQueue) {
		state.Cursor = len(state.MainQueue)
	}
	state.Revealed = false
}

func inPool(pool []Card, id string) bool {
	return lo.ContainsBy(pool, func(c Card) bool { return c.ID == id })
}
