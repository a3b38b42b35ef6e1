package study

import sess "github.com/abhisek/flashdeck/internal/study"

// cardsLoadedMsg is sent when the card source answered.
type cardsLoadedMsg struct {
	Cards []sess.Card
	Err   error
}

// frameMsg carries the latest frame rendered by the controller.
type frameMsg sess.Frame

// rateDoneMsg is sent when a rating submission returned.
type rateDoneMsg struct {
	Err error
}
