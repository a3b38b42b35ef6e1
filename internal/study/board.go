package study

import "github.com/samber/lo"

// Board is the reviewer-mode surface model: every unresolved card at once,
// each rated independently.
type Board struct {
	cards []Card
}

// NewBoard creates a board over a copy of cards.
func NewBoard(cards []Card) *Board {
	b := &Board{cards: make([]Card, len(cards))}
	copy(b.cards, cards)
	return b
}

// Cards returns a copy of the unresolved cards in display order.
func (b *Board) Cards() []Card {
	out := make([]Card, len(b.cards))
	copy(out, b.cards)
	return out
}

// Len returns the number of unresolved cards.
func (b *Board) Len() int {
	return len(b.cards)
}

// Contains reports whether the card is still on the board.
func (b *Board) Contains(id string) bool {
	return lo.ContainsBy(b.cards, func(c Card) bool { return c.ID == id })
}

// Resolve applies a rating to the card. Medium and easy ratings remove it
// from the board; a hard rating leaves it in place. Returns true if the card
// was removed.
func (b *Board) Resolve(id string, r Rating) bool {
	if !r.Resolves() || !b.Contains(id) {
		return false
	}
	b.cards = lo.Filter(b.cards, func(c Card, _ int) bool { return c.ID != id })
	return true
}
