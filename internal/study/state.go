package study

import (
	"math/rand/v2"
	"time"
)

// Mode selects how a session presents its cards.
type Mode int

const (
	// ModeStudent shows one card at a time and buffers hard cards in the
	// review pool.
	ModeStudent Mode = iota

	// ModeReviewer shows every card at once so a supervisor can rate another
	// learner's cards. No review pool or cursor bookkeeping applies.
	ModeReviewer
)

func (m Mode) String() string {
	if m == ModeReviewer {
		return "reviewer"
	}
	return "student"
}

// SessionPhase represents the current phase of the session.
type SessionPhase int

const (
	PhaseEmpty    SessionPhase = iota // No cards were supplied
	PhaseActive                       // Cards are being rated
	PhaseComplete                     // Terminal condition reached
)

// SessionState tracks the runtime state of one study session. It lives in
// memory only and is discarded when the session ends.
type SessionState struct {
	// SessionID groups history records of this session.
	SessionID string

	// Mode is fixed at session start.
	Mode Mode

	// SubjectID identifies the learner whose cards are being reviewed.
	// Empty in student mode.
	SubjectID string

	// MainQueue is the shuffled, one-pass sequence of cards.
	MainQueue []Card

	// ReviewPool holds cards rated hard, unique by id, in FIFO order.
	ReviewPool []Card

	// Cursor counts main-queue cards that have been finally resolved
	// (or drawn and sent to the review pool). It only moves forward.
	Cursor int

	// Board holds the still-unresolved cards in reviewer mode.
	Board *Board

	// Phase is the current session phase.
	Phase SessionPhase

	// Revealed is true while the active card's answer is shown.
	Revealed bool

	// RatingsSubmitted counts accepted rating submissions.
	RatingsSubmitted int

	// StartTime is when the session began.
	StartTime time.Time
}

// NewSessionState builds the state for a session over cards. The main queue
// is a uniformly shuffled copy; the caller's slice is never modified. A nil
// rng uses the package-level source.
func NewSessionState(cards []Card, subjectID, sessionID string, rng *rand.Rand) *SessionState {
	state := &SessionState{
		SessionID: sessionID,
		SubjectID: subjectID,
		StartTime: time.Now(),
	}
	if subjectID != "" {
		state.Mode = ModeReviewer
	}

	if len(cards) == 0 {
		state.Phase = PhaseEmpty
		return state
	}

	queue := make([]Card, len(cards))
	copy(queue, cards)
	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}
	shuffle(len(queue), func(i, j int) {
		queue[i], queue[j] = queue[j], queue[i]
	})

	state.MainQueue = queue
	state.Phase = PhaseActive
	if state.Mode == ModeReviewer {
		state.Board = NewBoard(queue)
	}
	return state
}

// Remaining returns the number of cards still awaiting a resolving rating.
func (s *SessionState) Remaining() int {
	if s.Mode == ModeReviewer {
		if s.Board == nil {
			return 0
		}
		return s.Board.Len()
	}
	return (len(s.MainQueue) - s.Cursor) + len(s.ReviewPool)
}

// Total returns the number of cards in the session.
func (s *SessionState) Total() int {
	return len(s.MainQueue)
}
